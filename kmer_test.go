package diverseseq

import "testing"

func TestCoordToIndexRoundTrip(t *testing.T) {
	coeffs := CoordConversionCoeffs(4, 3)
	coord := []uint64{1, 2, 3}
	idx, err := CoordToIndex(coord, coeffs)
	if err != nil {
		t.Fatalf("CoordToIndex: %v", err)
	}

	back := IndexToCoord(idx, coeffs)
	if len(back) != len(coord) {
		t.Fatalf("IndexToCoord returned %d dims, want %d", len(back), len(coord))
	}
	for i, c := range coord {
		if back[i] != c {
			t.Errorf("back[%d] = %d, want %d", i, back[i], c)
		}
	}
}

func TestCoordToIndexDimensionMismatch(t *testing.T) {
	coeffs := CoordConversionCoeffs(4, 3)
	if _, err := CoordToIndex([]uint64{1, 2}, coeffs); err == nil {
		t.Fatal("expected error for mismatched dimension")
	}
}

func TestCoordConversionCoeffsRowMajor(t *testing.T) {
	coeffs := CoordConversionCoeffs(4, 3)
	want := []uint64{16, 4, 1}
	for i, w := range want {
		if coeffs[i] != w {
			t.Errorf("coeffs[%d] = %d, want %d", i, coeffs[i], w)
		}
	}
}

func TestKmerCountsSkipsAmbiguous(t *testing.T) {
	// states: T=0 C=1 A=2 G=3, ambiguous=4
	seq := []uint64{2, 0, 4, 0, 2} // A T ? T A, k=2
	counts, err := KmerCounts(seq, 4, 2)
	if err != nil {
		t.Fatalf("KmerCounts: %v", err)
	}
	if counts.Len() != 16 {
		t.Fatalf("counts length = %d, want 16", counts.Len())
	}

	coeffs := CoordConversionCoeffs(4, 2)
	atIdx, _ := CoordToIndex([]uint64{2, 0}, coeffs)
	taIdx, _ := CoordToIndex([]uint64{0, 2}, coeffs)

	if counts.At(int(atIdx)) != 1 {
		t.Errorf("AT count = %d, want 1", counts.At(int(atIdx)))
	}
	if counts.At(int(taIdx)) != 1 {
		t.Errorf("TA count = %d, want 1", counts.At(int(taIdx)))
	}
	if counts.Sum() != 2 {
		t.Errorf("total kmer count = %d, want 2 (window spanning the ambiguous base skipped)", counts.Sum())
	}
}

func TestIndicesToSeqs(t *testing.T) {
	coeffs := CoordConversionCoeffs(4, 2)
	idx, _ := CoordToIndex([]uint64{2, 0}, coeffs) // A T
	out, err := IndicesToSeqs([]uint64{idx}, DNAStates, 2)
	if err != nil {
		t.Fatalf("IndicesToSeqs: %v", err)
	}
	if out[0] != "AT" {
		t.Errorf("IndicesToSeqs = %q, want %q", out[0], "AT")
	}
}

func TestIndicesToSeqsOutOfRange(t *testing.T) {
	if _, err := IndicesToSeqs([]uint64{1 << 20}, DNAStates, 2); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}
