package cmd

import (
	"testing"

	"github.com/GavinHuttley/diverseseq"
)

func newTestRecord(t *testing.T, name, seq string) *diverseseq.Record {
	t.Helper()
	a, err := diverseseq.NewAlphabet("dna")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	r, err := diverseseq.NewRecordFromSeq(name, []byte(seq), a, 2)
	if err != nil {
		t.Fatalf("NewRecordFromSeq: %v", err)
	}
	return r
}

func TestFilterByGroupEmptyGroupIsNoop(t *testing.T) {
	recs := []*diverseseq.Record{
		newTestRecord(t, "a", "ATCGATCG"),
		newTestRecord(t, "b", "GGGGGGGG"),
	}
	got := filterByGroup(recs, map[string]string{"a": "x"}, "")
	if len(got) != len(recs) {
		t.Fatalf("filterByGroup with empty group = %d records, want %d", len(got), len(recs))
	}
}

func TestFilterByGroupRestrictsToNamedGroup(t *testing.T) {
	recs := []*diverseseq.Record{
		newTestRecord(t, "a", "ATCGATCG"),
		newTestRecord(t, "b", "GGGGGGGG"),
		newTestRecord(t, "c", "AAAAAAAA"),
	}
	groups := map[string]string{"a": "x", "b": "y", "c": "x"}
	got := filterByGroup(recs, groups, "x")
	if len(got) != 2 {
		t.Fatalf("filterByGroup = %d records, want 2", len(got))
	}
	for _, r := range got {
		if groups[r.Name] != "x" {
			t.Errorf("record %s has group %q, want x", r.Name, groups[r.Name])
		}
	}
}

func TestFilterByGroupUnmappedRecordsDropped(t *testing.T) {
	recs := []*diverseseq.Record{
		newTestRecord(t, "a", "ATCGATCG"),
		newTestRecord(t, "b", "GGGGGGGG"),
	}
	got := filterByGroup(recs, map[string]string{"a": "x"}, "x")
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("filterByGroup = %v, want only record a", got)
	}
}

func TestProgressForQuietReturnsNoop(t *testing.T) {
	p := progressFor(false)
	if _, ok := p.(diverseseq.NoopProgress); !ok {
		t.Errorf("progressFor(false) = %T, want diverseseq.NoopProgress", p)
	}
}
