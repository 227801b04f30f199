// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package diverseseq

import (
	"math"
	"sort"
)

// SummedRecords maintains the running state a greedy divergence search
// needs to add or drop one record at a time without re-summing everything
// from scratch: the pooled frequency sum and entropy sum over all records
// except the single lowest-delta_jsd one. That record, "lowest", is kept
// out of the sums deliberately: it's the next candidate for eviction, and
// keeping it split out means replacing it costs one add and one subtract
// rather than a full re-pool.
//
// Every mutator returns a new *SummedRecords rather than mutating in
// place, so a caller exploring more than one candidate next-step (the
// greedy search in select.go) can hold onto the previous state's
// membership and sums cheaply. The *Record values themselves are shared,
// though: each new state rewrites DeltaJSD on the records it holds, so a
// previous state's Records order, MeanDeltaJSD and NegativeDeltaJSDCount
// reflect the most recently built state that shares those records.
type SummedRecords struct {
	records []*Record // ascending by DeltaJSD; records[0] is "lowest" and excluded from the sums below

	sumFreqs     *FreqVec[float64]
	sumEntropies float64
	n            int
}

// NewSummedRecordsFromRecords builds the initial SummedRecords over a full
// set of records, computing each one's delta_jsd against the whole set and
// splitting off the lowest.
func NewSummedRecordsFromRecords(records []*Record) (*SummedRecords, error) {
	if len(records) == 0 {
		return nil, NewValueError("SummedRecords requires at least one record")
	}

	recs := make([]*Record, len(records))
	copy(recs, records)

	fullFreqs, fullEntropies, err := poolRecords(recs)
	if err != nil {
		return nil, err
	}
	n := len(recs)

	for _, r := range recs {
		d, err := deltaJSD(fullFreqs, fullEntropies, n, r)
		if err != nil {
			return nil, err
		}
		r.DeltaJSD = d
	}

	sortByDeltaJSD(recs)

	lowest := recs[0]
	sumFreqs, err := fullFreqs.Sub(lowest.Kfreqs())
	if err != nil {
		return nil, err
	}
	sr := &SummedRecords{
		records:      recs,
		sumFreqs:     sumFreqs,
		sumEntropies: fullEntropies - lowest.Entropy(),
		n:            n,
	}
	if err := sr.checkInvariants(); err != nil {
		return nil, err
	}
	return sr, nil
}

func poolRecords(recs []*Record) (*FreqVec[float64], float64, error) {
	sum := recs[0].Kfreqs().Clone()
	var entropies float64
	entropies += recs[0].Entropy()
	for _, r := range recs[1:] {
		if _, err := sum.AddInPlace(r.Kfreqs()); err != nil {
			return nil, 0, err
		}
		entropies += r.Entropy()
	}
	return sum, entropies, nil
}

func sortByDeltaJSD(recs []*Record) {
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].DeltaJSD < recs[j].DeltaJSD })
}

// lowest returns the record currently excluded from the running sums.
func (sr *SummedRecords) lowest() *Record { return sr.records[0] }

// Size returns the number of records currently held.
func (sr *SummedRecords) Size() int { return sr.n }

// Records returns the held records, in ascending DeltaJSD order. The
// returned slice must not be mutated by the caller.
func (sr *SummedRecords) Records() []*Record { return sr.records }

// Contains reports whether a record with the given name is already held.
func (sr *SummedRecords) Contains(name string) bool {
	for _, r := range sr.records {
		if r.Name == name {
			return true
		}
	}
	return false
}

// TotalJSD returns the Jensen-Shannon divergence of the full record set,
// lowest included: the pooled distribution's entropy minus the mean of
// its members' individual entropies.
func (sr *SummedRecords) TotalJSD() float64 {
	fullFreqs, err := sr.sumFreqs.Add(sr.lowest().Kfreqs())
	if err != nil {
		return math.NaN()
	}
	fullEntropies := sr.sumEntropies + sr.lowest().Entropy()
	return JSD(fullFreqs, fullEntropies, sr.n)
}

// MeanJSD returns TotalJSD divided by the set's size.
func (sr *SummedRecords) MeanJSD() float64 {
	return sr.TotalJSD() / float64(sr.n)
}

// MeanDeltaJSD returns the average per-record marginal contribution to the
// set's divergence: sum(r.DeltaJSD for r in records) / n. Unlike TotalJSD,
// which treats the whole set as a single pooled distribution, this
// averages the already-computed individual contributions, so it answers
// "how much is a typical member adding" rather than "what is the
// divergence of the pool".
func (sr *SummedRecords) MeanDeltaJSD() float64 {
	var total float64
	for _, r := range sr.records {
		total += r.DeltaJSD
	}
	return total / float64(sr.n)
}

// NegativeDeltaJSDCount returns how many held records have a negative
// DeltaJSD, i.e. are currently making the set less diverse than it would
// be without them. A verbose CLI reports this so a user can tell whether
// a selection has stabilized or is still churning low-value members.
func (sr *SummedRecords) NegativeDeltaJSDCount() int {
	n := 0
	for _, r := range sr.records {
		if r.DeltaJSD < 0 {
			n++
		}
	}
	return n
}

// IncreasesJSD is a cheap pruning heuristic: would rec, standing in for
// lowest, raise the set's divergence? It pools rec directly onto sumFreqs/
// sumEntropies (which already exclude lowest) but divides by the CURRENT
// size n rather than n-1+1 consistently re-derived — a deliberate
// mismatch kept for fidelity with the reference search: it is a fast
// rejection filter, not a rigorous test of what Add or ReplacedLowest
// would actually produce.
func (sr *SummedRecords) IncreasesJSD(rec *Record) (bool, error) {
	candidateFreqs, err := sr.sumFreqs.Add(rec.Kfreqs())
	if err != nil {
		return false, err
	}
	candidateEntropies := sr.sumEntropies + rec.Entropy()
	candidate := JSD(candidateFreqs, candidateEntropies, sr.n)

	return candidate > sr.TotalJSD(), nil
}

// Add returns a new SummedRecords with rec inserted into the set, all
// delta_jsd values recomputed against the new (n+1)-sized full set, and
// the lowest slot re-chosen.
func (sr *SummedRecords) Add(rec *Record) (*SummedRecords, error) {
	if sr.Contains(rec.Name) {
		return nil, NewValueError("record " + rec.Name + " is already present")
	}

	fullFreqs, err := sr.sumFreqs.Add(sr.lowest().Kfreqs())
	if err != nil {
		return nil, err
	}
	fullEntropies := sr.sumEntropies + sr.lowest().Entropy()

	fullFreqs, err = fullFreqs.Add(rec.Kfreqs())
	if err != nil {
		return nil, err
	}
	fullEntropies += rec.Entropy()
	newN := sr.n + 1

	recs := make([]*Record, 0, newN)
	recs = append(recs, sr.records...)
	recs = append(recs, rec)

	for _, r := range recs {
		d, err := deltaJSD(fullFreqs, fullEntropies, newN, r)
		if err != nil {
			return nil, err
		}
		r.DeltaJSD = d
	}
	sortByDeltaJSD(recs)

	newLowest := recs[0]

	sumFreqs, err := fullFreqs.Sub(newLowest.Kfreqs())
	if err != nil {
		return nil, err
	}

	out := &SummedRecords{
		records:      recs,
		sumFreqs:     sumFreqs,
		sumEntropies: fullEntropies - newLowest.Entropy(),
		n:            newN,
	}
	if err := out.checkInvariants(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplacedLowest returns a new SummedRecords of the same size with rec
// standing in for the current lowest-contributing member: lowest is
// dropped unconditionally (not whichever record the recomputation below
// happens to rank lowest), rec takes its place, and every delta_jsd is
// recomputed against the refreshed pool before a new lowest is chosen.
func (sr *SummedRecords) ReplacedLowest(rec *Record) (*SummedRecords, error) {
	fullFreqs, err := sr.sumFreqs.Add(rec.Kfreqs())
	if err != nil {
		return nil, err
	}
	fullEntropies := sr.sumEntropies + rec.Entropy()

	recs := make([]*Record, 0, sr.n)
	recs = append(recs, rec)
	recs = append(recs, sr.records[1:]...)

	for _, r := range recs {
		d, err := deltaJSD(fullFreqs, fullEntropies, sr.n, r)
		if err != nil {
			return nil, err
		}
		r.DeltaJSD = d
	}
	sortByDeltaJSD(recs)

	newLowest := recs[0]
	sumFreqs, err := fullFreqs.Sub(newLowest.Kfreqs())
	if err != nil {
		return nil, err
	}

	out := &SummedRecords{
		records:      recs,
		sumFreqs:     sumFreqs,
		sumEntropies: fullEntropies - newLowest.Entropy(),
		n:            sr.n,
	}
	if err := out.checkInvariants(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove returns a new SummedRecords with the named record dropped from
// the set and every remaining record's delta_jsd recomputed against the
// new (n-1)-sized full set.
func (sr *SummedRecords) Remove(name string) (*SummedRecords, error) {
	if sr.n <= 1 {
		return nil, NewValueError("cannot remove from a SummedRecords of size 1")
	}
	fullFreqs, err := sr.sumFreqs.Add(sr.lowest().Kfreqs())
	if err != nil {
		return nil, err
	}
	fullEntropies := sr.sumEntropies + sr.lowest().Entropy()

	idx := -1
	for i, r := range sr.records {
		if r.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, NewValueError("record " + name + " is not present")
	}
	removed := sr.records[idx]

	fullFreqs, err = fullFreqs.Sub(removed.Kfreqs())
	if err != nil {
		return nil, err
	}
	fullEntropies -= removed.Entropy()
	newN := sr.n - 1

	recs := make([]*Record, 0, newN)
	for i, r := range sr.records {
		if i != idx {
			recs = append(recs, r)
		}
	}

	for _, r := range recs {
		d, err := deltaJSD(fullFreqs, fullEntropies, newN, r)
		if err != nil {
			return nil, err
		}
		r.DeltaJSD = d
	}
	sortByDeltaJSD(recs)

	newLowest := recs[0]
	sumFreqs, err := fullFreqs.Sub(newLowest.Kfreqs())
	if err != nil {
		return nil, err
	}

	out := &SummedRecords{
		records:      recs,
		sumFreqs:     sumFreqs,
		sumEntropies: fullEntropies - newLowest.Entropy(),
		n:            newN,
	}
	if err := out.checkInvariants(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkInvariants verifies the two properties the rest of the package
// relies on without re-checking: records are sorted ascending by
// DeltaJSD, and no DeltaJSD is NaN. Either failing indicates a bug in the
// incremental bookkeeping above, not bad input, so it aborts via
// InvariantError rather than silently continuing with corrupted state.
func (sr *SummedRecords) checkInvariants() error {
	for i, r := range sr.records {
		if math.IsNaN(r.DeltaJSD) {
			return NewInvariantError("delta_jsd is NaN for record " + r.Name)
		}
		if i > 0 && sr.records[i-1].DeltaJSD > r.DeltaJSD {
			return NewInvariantError("records are not sorted by delta_jsd")
		}
	}
	return nil
}
