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

import "math"

// epsilon is the machine-epsilon-scale threshold below which a value is
// treated as zero: iteration and entropy filter on it rather than testing
// for exact equality with 0, since pooled sums accumulate floating point
// noise. Div and DivScalar test their divisor for exact zero.
const epsilon = 1e-12

// Number is the set of scalar types a FreqVec can be built over: k-mer
// counts accumulate as int64, pooled frequencies and entropies as float64.
type Number interface {
	~int64 | ~float64
}

// FreqVec is a dense-backed numeric vector indexed by flat k-mer index
// (see CoordToIndex/IndexToCoord), used both for raw counts (FreqVec[int64])
// and for normalized frequencies (FreqVec[float64]). It is deliberately
// dense rather than map-backed: num_states^k is bounded by MaxVectorLength,
// and a plain slice keeps Add/Entropy tight inner loops.
type FreqVec[T Number] struct {
	data []T
}

// NewFreqVec allocates a zeroed FreqVec of length n.
func NewFreqVec[T Number](n int) *FreqVec[T] {
	return &FreqVec[T]{data: make([]T, n)}
}

// NewFreqVecFrom wraps an existing slice without copying.
func NewFreqVecFrom[T Number](data []T) *FreqVec[T] {
	return &FreqVec[T]{data: data}
}

// NewFreqVecFromMap builds a FreqVec of length L from a sparse {index:
// value} mapping, leaving every unmentioned position at its zero value.
func NewFreqVecFromMap[T Number](m map[int]T, L int) *FreqVec[T] {
	v := NewFreqVec[T](L)
	for i, x := range m {
		v.data[i] = x
	}
	return v
}

// Len returns the vector length.
func (v *FreqVec[T]) Len() int { return len(v.data) }

// At returns the value at i.
func (v *FreqVec[T]) At(i int) T { return v.data[i] }

// Set assigns the value at i.
func (v *FreqVec[T]) Set(i int, x T) { v.data[i] = x }

// Clone returns an independent copy.
func (v *FreqVec[T]) Clone() *FreqVec[T] {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return &FreqVec[T]{data: out}
}

// Sum returns the sum of all entries.
func (v *FreqVec[T]) Sum() T {
	var s T
	for _, x := range v.data {
		s += x
	}
	return s
}

// Add returns a new vector holding the elementwise sum of v and other.
// Both vectors must have equal length.
func (v *FreqVec[T]) Add(other *FreqVec[T]) (*FreqVec[T], error) {
	if v.Len() != other.Len() {
		return nil, NewValueError("FreqVec.Add: length mismatch")
	}
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.data[i] + other.data[i]
	}
	return &FreqVec[T]{data: out}, nil
}

// Sub returns a new vector holding the elementwise difference v - other.
func (v *FreqVec[T]) Sub(other *FreqVec[T]) (*FreqVec[T], error) {
	if v.Len() != other.Len() {
		return nil, NewValueError("FreqVec.Sub: length mismatch")
	}
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.data[i] - other.data[i]
	}
	return &FreqVec[T]{data: out}, nil
}

// Div returns a new float64 vector holding the elementwise quotient v /
// other, with the same zero-safe convention as DivScalar: wherever other's
// entry is 0, the result entry is 0 rather than NaN or +Inf. This is what
// lets a record be divided by a pooled sum that happens to be zero in some
// k-mer position (an index no sequence in the set ever visited) without
// poisoning downstream entropy and JSD calculations.
func (v *FreqVec[T]) Div(other *FreqVec[T]) (*FreqVec[float64], error) {
	if v.Len() != other.Len() {
		return nil, NewValueError("FreqVec.Div: length mismatch")
	}
	out := make([]float64, v.Len())
	for i, x := range v.data {
		d := float64(other.data[i])
		if d != 0 {
			out[i] = float64(x) / d
		}
	}
	return &FreqVec[float64]{data: out}, nil
}

// AddScalar returns a new vector holding v + s broadcast over every entry.
func (v *FreqVec[T]) AddScalar(s T) *FreqVec[T] {
	out := make([]T, v.Len())
	for i, x := range v.data {
		out[i] = x + s
	}
	return &FreqVec[T]{data: out}
}

// SubScalar returns a new vector holding v - s broadcast over every entry.
func (v *FreqVec[T]) SubScalar(s T) *FreqVec[T] {
	out := make([]T, v.Len())
	for i, x := range v.data {
		out[i] = x - s
	}
	return &FreqVec[T]{data: out}
}

// AddInPlace adds other into v in place, returning v for chaining.
func (v *FreqVec[T]) AddInPlace(other *FreqVec[T]) (*FreqVec[T], error) {
	if v.Len() != other.Len() {
		return nil, NewValueError("FreqVec.AddInPlace: length mismatch")
	}
	for i := range v.data {
		v.data[i] += other.data[i]
	}
	return v, nil
}

// SubInPlace subtracts other from v in place, returning v for chaining.
func (v *FreqVec[T]) SubInPlace(other *FreqVec[T]) (*FreqVec[T], error) {
	if v.Len() != other.Len() {
		return nil, NewValueError("FreqVec.SubInPlace: length mismatch")
	}
	for i := range v.data {
		v.data[i] -= other.data[i]
	}
	return v, nil
}

// DivScalar returns a new float64 FreqVec holding v / s elementwise, with
// a zero-safe convention: any entry is 0 whenever s is 0, matching numpy's
// nan_to_num rather than propagating NaN/Inf through downstream entropy
// and JSD calculations.
func (v *FreqVec[T]) DivScalar(s float64) *FreqVec[float64] {
	out := make([]float64, v.Len())
	if s != 0 {
		for i, x := range v.data {
			out[i] = float64(x) / s
		}
	}
	return &FreqVec[float64]{data: out}
}

// IterNonzero calls fn for every (index, value) pair whose absolute value
// exceeds epsilon, skipping entries that are zero or within floating point
// noise of zero.
func (v *FreqVec[T]) IterNonzero(fn func(index int, value T)) {
	for i, x := range v.data {
		if math.Abs(float64(x)) > epsilon {
			fn(i, x)
		}
	}
}

// Entropy returns the Shannon entropy, in bits, of v treated as a
// probability distribution: -sum(p * log2(p)) over entries with
// p > epsilon. Entries at or below epsilon (negative ones included)
// contribute 0 rather than NaN,
// matching the "is-close-to-zero" filtering used throughout the original
// distribution math.
func (v *FreqVec[T]) Entropy() float64 {
	var h float64
	for _, x := range v.data {
		p := float64(x)
		if p > epsilon {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Data exposes the backing slice without copying, for callers (JSD kernel,
// serialization) that need direct access to hot loops.
func (v *FreqVec[T]) Data() []T { return v.data }
