// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
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
	"sync"
)

// Matrix is a symmetric pairwise distance matrix over a set of named
// records, in row-major Values[i][j] order with Values[i][i] == 0.
type Matrix struct {
	Names  []string
	Values [][]float64
}

// NewMatrix allocates a zeroed n x n Matrix for the given names.
func NewMatrix(names []string) *Matrix {
	n := len(names)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}
	return &Matrix{Names: names, Values: values}
}

// Get returns the distance between i and j.
func (m *Matrix) Get(i, j int) float64 { return m.Values[i][j] }

// set mirrors an (i,j) write into both triangles, keeping the matrix
// symmetric by construction instead of by convention.
func (m *Matrix) set(i, j int, v float64) {
	m.Values[i][j] = v
	m.Values[j][i] = v
}

// MashDistance estimates the evolutionary distance between two sequences
// from their bottom-k sketches by walking both sorted hash lists in
// lockstep (a standard sorted-merge, same shape as a two-way mergesort
// merge step) to recover the Jaccard index of the underlying k-mer sets,
// then converting that to a per-site mutation rate.
//
//	j = |intersection| / |union|
//	d = -ln(2j / (1+j)) / k, clamped to [0, 1]
//
// Two identical sketches (including two empty ones) have intersection ==
// union and distance 0; that check runs before the intersection == 0 case,
// so an empty-against-empty comparison never falls through to the "no
// shared k-mers" branch. A Jaccard of 0 otherwise maps to distance 1 rather
// than +Inf, since two sequences can never be more different than
// "completely unrelated" under this model.
func MashDistance(a, b *BottomSketch, k int) float64 {
	sketchSize := targetSketchSize(a, b)

	var i, j, intersection, union int
	for i < len(a.Hashes) && j < len(b.Hashes) && union < sketchSize {
		switch {
		case a.Hashes[i] < b.Hashes[j]:
			i++
			union++
		case a.Hashes[i] > b.Hashes[j]:
			j++
			union++
		default:
			i++
			j++
			intersection++
			union++
		}
	}
	// drain whichever sketch still has entries, up to the sketch size cap
	for i < len(a.Hashes) && union < sketchSize {
		i++
		union++
	}
	for j < len(b.Hashes) && union < sketchSize {
		j++
		union++
	}

	if intersection == union {
		return 0
	}
	if intersection == 0 {
		return 1
	}
	jaccard := float64(intersection) / float64(union)
	d := -math.Log(2*jaccard/(1+jaccard)) / float64(k)
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

func cap64(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// targetSketchSize recovers the configured sketch_size s to fill the union
// up to, per sketch A and B of "target size s". Sketches built via
// NewDNASketch/NewProteinSketch carry it directly; sketches built ad hoc
// (e.g. in tests, or a serialized sketch missing the field) fall back to
// the smaller of the two observed hash-list lengths.
func targetSketchSize(a, b *BottomSketch) int {
	if a.SketchSize > 0 {
		return a.SketchSize
	}
	if b.SketchSize > 0 {
		return b.SketchSize
	}
	return cap64(len(a.Hashes), len(b.Hashes))
}

// EuclideanDistance is the straight-line distance between two k-mer
// frequency vectors, a cheaper and less approximate alternative to
// MashDistance when both records' full frequency vectors are already
// resident rather than reduced to sketches.
func EuclideanDistance(a, b *FreqVec[float64]) (float64, error) {
	if a.Len() != b.Len() {
		return 0, NewValueError("EuclideanDistance: length mismatch")
	}
	var sumSq float64
	for i := 0; i < a.Len(); i++ {
		d := a.At(i) - b.At(i)
		sumSq += d * d
	}
	return math.Sqrt(sumSq), nil
}

// MashDistances computes the full pairwise Mash distance matrix over
// sketches. Each cell is independent of every other, so cells are farmed
// out to a bounded pool of worker goroutines; the result is identical
// regardless of how many workers ran it, and each progress Update is made
// under the same mutex as the matrix write, so Update is never called
// concurrently.
func MashDistances(sketches []*BottomSketch, k int, workers int, progress Progress) (*Matrix, error) {
	if workers < 1 {
		workers = 1
	}
	if progress == nil {
		progress = NoopProgress{}
	}

	n := len(sketches)
	names := make([]string, n)
	for i, s := range sketches {
		names[i] = s.Name
	}
	m := NewMatrix(names)

	type cell struct{ i, j int }
	total := n * (n - 1) / 2
	cells := make(chan cell, total)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cells <- cell{i, j}
		}
	}
	close(cells)

	task := progress.AddTask("mash distances", total)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range cells {
				d := MashDistance(sketches[c.i], sketches[c.j], k)
				mu.Lock()
				m.set(c.i, c.j, d)
				progress.Update(task, 1)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return m, nil
}

// EuclideanDistances computes the full pairwise Euclidean distance matrix
// over a set of named frequency vectors, with the same bounded-worker-pool
// shape as MashDistances.
func EuclideanDistances(names []string, freqs []*FreqVec[float64], workers int, progress Progress) (*Matrix, error) {
	if len(names) != len(freqs) {
		return nil, NewValueError("EuclideanDistances: names and freqs length mismatch")
	}
	if workers < 1 {
		workers = 1
	}
	if progress == nil {
		progress = NoopProgress{}
	}

	n := len(names)
	m := NewMatrix(names)

	type cell struct{ i, j int }
	total := n * (n - 1) / 2
	cells := make(chan cell, total)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cells <- cell{i, j}
		}
	}
	close(cells)

	task := progress.AddTask("euclidean distances", total)
	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range cells {
				d, err := EuclideanDistance(freqs[c.i], freqs[c.j])
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				} else {
					m.set(c.i, c.j, d)
				}
				progress.Update(task, 1)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return m, nil
}
