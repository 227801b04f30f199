package diverseseq

import "testing"

func TestNewAlphabetKnownMoltypes(t *testing.T) {
	for _, mt := range []string{"dna", "rna", "protein"} {
		a, err := NewAlphabet(mt)
		if err != nil {
			t.Fatalf("NewAlphabet(%q): %v", mt, err)
		}
		if a.NumStates() == 0 {
			t.Errorf("%q alphabet has zero states", mt)
		}
	}
}

func TestNewAlphabetUnknownMoltype(t *testing.T) {
	if _, err := NewAlphabet("klingon"); err == nil {
		t.Fatal("expected error for unknown moltype")
	}
}

func TestAlphabetEncodeCanonicalAndCase(t *testing.T) {
	a, err := NewAlphabet("dna")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	enc := a.Encode([]byte("TCAGtcag"))
	want := []uint64{0, 1, 2, 3, 0, 1, 2, 3}
	for i, w := range want {
		if enc[i] != w {
			t.Errorf("enc[%d] = %d, want %d", i, enc[i], w)
		}
	}
}

func TestAlphabetEncodeAmbiguousSymbols(t *testing.T) {
	a, err := NewAlphabet("dna")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	enc := a.Encode([]byte("NZ"))
	if enc[0] != uint64(a.NumStates()) {
		t.Errorf("N encoded to %d, want ambiguous sentinel %d", enc[0], a.NumStates())
	}
	if enc[1] != uint64(a.NumStates()) {
		t.Errorf("Z encoded to %d, want ambiguous sentinel %d", enc[1], a.NumStates())
	}
}

func TestCheckVectorLengthRejectsOversize(t *testing.T) {
	if _, err := CheckVectorLength(20, 20); err == nil {
		t.Fatal("expected error for oversize vector")
	}
}

func TestCheckVectorLengthAccepts(t *testing.T) {
	l, err := CheckVectorLength(4, 5)
	if err != nil {
		t.Fatalf("CheckVectorLength: %v", err)
	}
	if l != 1024 {
		t.Errorf("length = %d, want 1024", l)
	}
}
