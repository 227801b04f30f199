package diverseseq

import (
	"bytes"
	"testing"
)

func TestWriteReadMatrixRoundTrip(t *testing.T) {
	names := []string{"seq1", "seq2", "seq3"}
	m := NewMatrix(names)
	m.set(0, 1, 0.25)
	m.set(0, 2, 0.5)
	m.set(1, 2, 0.75)

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, m); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}

	got, err := ReadMatrix(&buf)
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}

	if len(got.Names) != len(names) {
		t.Fatalf("Names = %v, want %v", got.Names, names)
	}
	for i, n := range names {
		if got.Names[i] != n {
			t.Errorf("Names[%d] = %q, want %q", i, got.Names[i], n)
		}
	}
	for i := 0; i < len(names); i++ {
		for j := 0; j < len(names); j++ {
			if got.Get(i, j) != m.Get(i, j) {
				t.Errorf("Get(%d,%d) = %v, want %v", i, j, got.Get(i, j), m.Get(i, j))
			}
		}
	}
}

func TestReadMatrixRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 16))
	if _, err := ReadMatrix(buf); err != ErrInvalidFileFormat {
		t.Errorf("got %v, want ErrInvalidFileFormat", err)
	}
}

func TestReadMatrixRejectsVersionMismatch(t *testing.T) {
	names := []string{"a", "b"}
	m := NewMatrix(names)

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, m); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	raw := buf.Bytes()
	// byte right after the 8-byte magic is MainVersion.
	raw[8] = MainVersion + 1

	if _, err := ReadMatrix(bytes.NewReader(raw)); err != ErrVersionMismatch {
		t.Errorf("got %v, want ErrVersionMismatch", err)
	}
}

func TestMatrixSetKeepsSymmetric(t *testing.T) {
	m := NewMatrix([]string{"a", "b"})
	m.set(0, 1, 0.5)
	if m.Get(0, 1) != m.Get(1, 0) {
		t.Errorf("Get(0,1) = %v, Get(1,0) = %v, want equal", m.Get(0, 1), m.Get(1, 0))
	}
}

func TestWriteReadRecordsRoundTrip(t *testing.T) {
	counts1 := NewFreqVec[int64](16)
	counts1.Set(2, 5)
	counts1.Set(9, 1)
	counts2 := NewFreqVec[int64](16)
	counts2.Set(0, 3)

	r1, err := NewRecord("seq1", 100, counts1)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	r2, err := NewRecord("seq2", 200, counts2)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	records := []*Record{r1, r2}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	got, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(records))
	}
	for i, want := range records {
		if got[i].Name != want.Name {
			t.Errorf("records[%d].Name = %q, want %q", i, got[i].Name, want.Name)
		}
		if got[i].Length != want.Length {
			t.Errorf("records[%d].Length = %d, want %d", i, got[i].Length, want.Length)
		}
		for j := 0; j < want.Kcounts.Len(); j++ {
			if got[i].Kcounts.At(j) != want.Kcounts.At(j) {
				t.Errorf("records[%d].Kcounts[%d] = %d, want %d", i, j, got[i].Kcounts.At(j), want.Kcounts.At(j))
			}
		}
	}
}

func TestReadRecordsRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 16))
	if _, err := ReadRecords(buf); err != ErrRecordsInvalidFileFormat {
		t.Errorf("got %v, want ErrRecordsInvalidFileFormat", err)
	}
}
