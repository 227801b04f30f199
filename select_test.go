package diverseseq

import "testing"

func makeSelectTestRecords(t *testing.T, n int) []*Record {
	t.Helper()
	a, err := NewAlphabet("dna")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	patterns := []string{
		"AAAAAAAAAAAAAAAA",
		"ATCGATCGATCGATCG",
		"GGGGGGGGGGGGGGGG",
		"ACACACACACACACAC",
		"TTTTTTTTTTTTTTTT",
		"GATCGATCGATCGATC",
	}
	var recs []*Record
	for i := 0; i < n; i++ {
		p := patterns[i%len(patterns)]
		r, err := NewRecordFromSeq(patterns[i%len(patterns)]+string(rune('a'+i)), []byte(p), a, 3)
		if err != nil {
			t.Fatalf("NewRecordFromSeq: %v", err)
		}
		recs = append(recs, r)
	}
	return recs
}

func TestMostDivergentExactSize(t *testing.T) {
	recs := makeSelectTestRecords(t, 6)
	sr, err := MostDivergent(recs, 3, NoopProgress{})
	if err != nil {
		t.Fatalf("MostDivergent: %v", err)
	}
	if sr.Size() != 3 {
		t.Errorf("Size() = %d, want 3", sr.Size())
	}
}

func TestMostDivergentRejectsBadSize(t *testing.T) {
	recs := makeSelectTestRecords(t, 3)
	if _, err := MostDivergent(recs, 0, nil); err == nil {
		t.Error("expected error for size < 1")
	}
	if _, err := MostDivergent(recs, 10, nil); err == nil {
		t.Error("expected error for size exceeding record count")
	}
}

func TestMaxDivergentWithinBounds(t *testing.T) {
	recs := makeSelectTestRecords(t, 6)
	sr, err := MaxDivergent(recs, 2, 5, StatMeanDeltaJSD, true, NoopProgress{})
	if err != nil {
		t.Fatalf("MaxDivergent: %v", err)
	}
	if sr.Size() < 2 || sr.Size() > 5 {
		t.Errorf("Size() = %d, want in [2, 5]", sr.Size())
	}
}

func TestMaxDivergentMinEqualsLenShortCircuits(t *testing.T) {
	recs := makeSelectTestRecords(t, 3)
	sr, err := MaxDivergent(recs, 3, 3, StatTotalJSD, true, nil)
	if err != nil {
		t.Fatalf("MaxDivergent: %v", err)
	}
	if sr.Size() != 3 {
		t.Errorf("Size() = %d, want 3", sr.Size())
	}
}

func TestMaxDivergentRejectsBadArgs(t *testing.T) {
	recs := makeSelectTestRecords(t, 4)
	if _, err := MaxDivergent(recs, 0, 2, StatMeanDeltaJSD, true, nil); err == nil {
		t.Error("expected error for min_size < 2")
	}
	if _, err := MaxDivergent(recs, 3, 2, StatMeanDeltaJSD, true, nil); err == nil {
		t.Error("expected error for max_size < min_size")
	}
	if _, err := MaxDivergent(recs, 2, 10, StatMeanDeltaJSD, true, nil); err == nil {
		t.Error("expected error for max_size exceeding record count")
	}
	if _, err := MaxDivergent(recs, 2, 2, Stat("bogus"), true, nil); err == nil {
		t.Error("expected error for unknown stat")
	}
}

func TestMaxDivergentNeverShrinksBelowTwo(t *testing.T) {
	recs := makeSelectTestRecords(t, 6)
	sr, err := MaxDivergent(recs, 2, 6, StatMeanDeltaJSD, true, nil)
	if err != nil {
		t.Fatalf("MaxDivergent: %v", err)
	}
	if sr.Size() < 2 {
		t.Errorf("Size() = %d, want >= 2", sr.Size())
	}
}

func TestMaxDivergentMeanJSDStat(t *testing.T) {
	recs := makeSelectTestRecords(t, 6)
	sr, err := MaxDivergent(recs, 2, 6, StatMeanJSD, true, nil)
	if err != nil {
		t.Fatalf("MaxDivergent: %v", err)
	}
	if sr.Size() < 2 || sr.Size() > 6 {
		t.Errorf("Size() = %d, want in [2, 6]", sr.Size())
	}
}

func TestMaxDivergentWithoutMaxSetSkipsShrinkPass(t *testing.T) {
	recs := makeSelectTestRecords(t, 6)
	withShrink, err := MaxDivergent(recs, 2, 6, StatMeanDeltaJSD, true, nil)
	if err != nil {
		t.Fatalf("MaxDivergent: %v", err)
	}
	withoutShrink, err := MaxDivergent(recs, 2, 6, StatMeanDeltaJSD, false, nil)
	if err != nil {
		t.Fatalf("MaxDivergent: %v", err)
	}
	if withoutShrink.Size() < withShrink.Size() {
		t.Errorf("skipping the shrink pass should never produce a smaller set: got %d < %d", withoutShrink.Size(), withShrink.Size())
	}
}
