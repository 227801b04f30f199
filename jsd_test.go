package diverseseq

import (
	"math"
	"testing"
)

func TestJSDIdenticalDistributionsIsZero(t *testing.T) {
	// two identical uniform distributions pooled: mean entropy equals
	// the entropy of the mean, so JSD is 0.
	sumFreqs := NewFreqVecFrom([]float64{0.5, 0.5})
	entropyEach := NewFreqVecFrom([]float64{0.25, 0.25}).Entropy()
	got := JSD(sumFreqs, 2*entropyEach, 2)
	if math.Abs(got) > 1e-9 {
		t.Errorf("JSD(identical) = %v, want 0", got)
	}
}

func TestJSDNonNegative(t *testing.T) {
	sumFreqs := NewFreqVecFrom([]float64{1, 0})
	got := JSD(sumFreqs, 0, 2)
	if got < 0 {
		t.Errorf("JSD = %v, want >= 0", got)
	}
}

func TestJSDZeroN(t *testing.T) {
	sumFreqs := NewFreqVecFrom([]float64{1, 0})
	if got := JSD(sumFreqs, 0, 0); got != 0 {
		t.Errorf("JSD with n=0 = %v, want 0", got)
	}
}

func TestDeltaJSDSingleRecordIsZero(t *testing.T) {
	a, _ := NewAlphabet("dna")
	r, err := NewRecordFromSeq("seq1", []byte("ATCGATCG"), a, 2)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	d, err := deltaJSD(r.Kfreqs(), r.Entropy(), 1, r)
	if err != nil {
		t.Fatalf("deltaJSD: %v", err)
	}
	if d != 0 {
		t.Errorf("deltaJSD for n=1 = %v, want 0", d)
	}
}

func TestDeltaJSDDivergentRecordIsPositive(t *testing.T) {
	a, _ := NewAlphabet("dna")
	r1, err := NewRecordFromSeq("seq1", []byte("AAAAAAAAAAAA"), a, 2)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	r2, err := NewRecordFromSeq("seq2", []byte("ATCGATCGATCG"), a, 2)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}

	sumFreqs, err := r1.Kfreqs().Add(r2.Kfreqs())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	sumEntropies := r1.Entropy() + r2.Entropy()

	d, err := deltaJSD(sumFreqs, sumEntropies, 2, r1)
	if err != nil {
		t.Fatalf("deltaJSD: %v", err)
	}
	if d <= 0 {
		t.Errorf("deltaJSD for a compositionally distinct pair = %v, want > 0", d)
	}
}
