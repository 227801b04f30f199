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

// Stat names the summary value MaxDivergent optimizes during its
// stat-maximizing shrink pass.
type Stat string

const (
	// StatMeanJSD optimizes the mean Jensen-Shannon divergence (total_jsd
	// divided by set size).
	StatMeanJSD Stat = "mean_jsd"
	// StatMeanDeltaJSD optimizes the average per-record marginal
	// contribution to divergence.
	StatMeanDeltaJSD Stat = "mean_delta_jsd"
	// StatTotalJSD optimizes the divergence of the pooled set as a whole.
	StatTotalJSD Stat = "total_jsd"
)

func statValue(sr *SummedRecords, stat Stat) (float64, error) {
	switch stat {
	case StatMeanJSD:
		return sr.MeanJSD(), nil
	case StatMeanDeltaJSD:
		return sr.MeanDeltaJSD(), nil
	case StatTotalJSD:
		return sr.TotalJSD(), nil
	default:
		return 0, NewConfigError("stat", "must be one of mean_jsd, mean_delta_jsd, total_jsd, got "+string(stat))
	}
}

// MostDivergent returns the size most-divergent records from records: it
// seeds a SummedRecords with the first size records, then walks the rest
// once, swapping in any candidate that would raise the set's divergence
// for the current lowest-contributing member. The result always has
// exactly size members.
func MostDivergent(records []*Record, size int, progress Progress) (*SummedRecords, error) {
	if size < 1 {
		return nil, NewConfigError("size", "must be at least 1")
	}
	if size > len(records) {
		return nil, NewConfigError("size", "exceeds the number of available records")
	}
	if progress == nil {
		progress = NoopProgress{}
	}

	sr, err := NewSummedRecordsFromRecords(records[:size])
	if err != nil {
		return nil, err
	}

	rest := records[size:]
	task := progress.AddTask("most divergent", len(rest))
	for _, rec := range rest {
		if sr.Contains(rec.Name) {
			progress.Update(task, 1)
			continue
		}
		inc, err := sr.IncreasesJSD(rec)
		if err != nil {
			return nil, err
		}
		if inc {
			replaced, err := sr.ReplacedLowest(rec)
			if err != nil {
				return nil, err
			}
			sr = replaced
		}
		progress.Update(task, 1)
	}
	return sr, nil
}

// MaxDivergent returns a variable-size, maximally divergent subset of
// records with between minSize and maxSize members. It seeds a
// SummedRecords with the first minSize records (no remaining candidates
// beyond that seed short-circuits straight to it, skipping the
// grow/shrink passes entirely). For each remaining candidate that passes
// IncreasesJSD, it grows the set via Add when that improves stat,
// otherwise swaps the candidate in for the current lowest-contributing
// member via ReplacedLowest; growing past maxSize triggers a rebuild
// that drops the lowest member outright. When maxSet is true, a final
// pass shrinks the set one member at a time down to minSize, keeping
// whichever size scored highest on stat along the way.
func MaxDivergent(records []*Record, minSize, maxSize int, stat Stat, maxSet bool, progress Progress) (*SummedRecords, error) {
	if minSize < 2 {
		return nil, NewConfigError("min_size", "must be at least 2")
	}
	if maxSize < minSize {
		return nil, NewConfigError("max_size", "must be >= min_size")
	}
	if maxSize > len(records) {
		return nil, NewConfigError("max_size", "exceeds the number of available records")
	}
	if stat != StatMeanJSD && stat != StatMeanDeltaJSD && stat != StatTotalJSD {
		return nil, NewConfigError("stat", "must be one of mean_jsd, mean_delta_jsd, total_jsd, got "+string(stat))
	}
	if progress == nil {
		progress = NoopProgress{}
	}

	sr, err := NewSummedRecordsFromRecords(records[:minSize])
	if err != nil {
		return nil, err
	}

	if len(records) <= minSize {
		return sr, nil
	}

	rest := records[minSize:]
	task := progress.AddTask("max divergent", len(rest))
	for _, rec := range rest {
		if sr.Contains(rec.Name) {
			progress.Update(task, 1)
			continue
		}
		inc, err := sr.IncreasesJSD(rec)
		if err != nil {
			return nil, err
		}
		if !inc {
			progress.Update(task, 1)
			continue
		}

		curVal, err := statValue(sr, stat)
		if err != nil {
			return nil, err
		}
		grown, err := sr.Add(rec)
		if err != nil {
			return nil, err
		}
		grownVal, err := statValue(grown, stat)
		if err != nil {
			return nil, err
		}
		if grownVal > curVal {
			sr = grown
		} else {
			sr, err = sr.ReplacedLowest(rec)
			if err != nil {
				return nil, err
			}
		}
		if sr.Size() > maxSize {
			sr, err = NewSummedRecordsFromRecords(sr.records[1:])
			if err != nil {
				return nil, err
			}
		}
		progress.Update(task, 1)
	}

	if maxSet {
		return maximalStat(sr, stat, minSize)
	}
	return sr, nil
}

// maximalStat repeatedly drops the current lowest-contributing record,
// descending all the way to minSize (or to 2 members, below which a
// record's delta_jsd is not meaningfully defined) and recording stat at
// every size along the way, then returns whichever size scored highest.
// This mirrors the reference search's own postprocessing exactly: it does
// not stop early the first time a drop fails to help, since a later drop
// further down may still recover a higher stat than any size seen so far.
func maximalStat(sr *SummedRecords, stat Stat, minSize int) (*SummedRecords, error) {
	if sr.Size() <= 2 {
		return sr, nil
	}

	best := sr
	bestVal, err := statValue(sr, stat)
	if err != nil {
		return nil, err
	}

	cur := sr
	for cur.Size() > minSize {
		next, err := NewSummedRecordsFromRecords(cur.records[1:])
		if err != nil {
			return nil, err
		}
		cur = next
		val, err := statValue(cur, stat)
		if err != nil {
			return nil, err
		}
		if val > bestVal {
			best = cur
			bestVal = val
		}
	}
	if best != cur {
		// later rebuilds rewrote DeltaJSD on records best shares with
		// them; recompute those values against best's own member set.
		return NewSummedRecordsFromRecords(best.records)
	}
	return best, nil
}
