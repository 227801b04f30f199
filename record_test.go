package diverseseq

import "testing"

func TestNewRecordValidation(t *testing.T) {
	counts := NewFreqVec[int64](4)
	if _, err := NewRecord("", 10, counts); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewRecord("x", 0, counts); err == nil {
		t.Error("expected error for non-positive length")
	}
	if _, err := NewRecord("x", 10, nil); err == nil {
		t.Error("expected error for nil kcounts")
	}
	if _, err := NewRecord("x", 10, counts); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}
}

func TestNewRecordFromSeq(t *testing.T) {
	a, err := NewAlphabet("dna")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	r, err := NewRecordFromSeq("seq1", []byte("ATCGATCG"), a, 2)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	if r.Name != "seq1" {
		t.Errorf("Name = %q, want seq1", r.Name)
	}
	if r.Length != 8 {
		t.Errorf("Length = %d, want 8", r.Length)
	}
	if r.Kcounts.Sum() != 7 { // 8 bases, k=2 -> 7 windows
		t.Errorf("Kcounts.Sum() = %d, want 7", r.Kcounts.Sum())
	}
}

func TestNewRecordFromSeqSkipsAmbiguousWindows(t *testing.T) {
	a, err := NewAlphabet("dna")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	seq := []byte("ACGGNGGTGCA")
	r, err := NewRecordFromSeq("seq1", seq, a, 2)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	// len-k+1 = 10 windows total; only the windows starting at 3 and 4
	// touch the N at index 4, so 10 - 2 = 8 survive.
	if got := r.Kcounts.Sum(); got != 8 {
		t.Errorf("Kcounts.Sum() = %d, want 8 (ambiguous-spanning windows skipped)", got)
	}
}

func TestRecordKfreqsSumsToOne(t *testing.T) {
	a, _ := NewAlphabet("dna")
	r, err := NewRecordFromSeq("seq1", []byte("ATCGATCGATCG"), a, 3)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	var sum float64
	r.Kfreqs().IterNonzero(func(_ int, v float64) { sum += v })
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("Kfreqs sums to %v, want ~1", sum)
	}
}

func TestRecordEntropyCached(t *testing.T) {
	a, _ := NewAlphabet("dna")
	r, err := NewRecordFromSeq("seq1", []byte("ATCGATCGATCG"), a, 3)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	first := r.Entropy()
	second := r.Entropy()
	if first != second {
		t.Errorf("Entropy() not stable across calls: %v != %v", first, second)
	}
}
