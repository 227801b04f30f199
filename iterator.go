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

// ErrInvalidK means k < 1.
var ErrInvalidK = NewValueError("invalid k-mer size")

// ErrEmptySeq means the sequence is empty.
var ErrEmptySeq = NewValueError("empty sequence")

// KmerIndexer streams the flat mixed-radix index (see CoordConversionCoeffs)
// of every valid, fully canonical k-mer window in an already-encoded
// sequence. A window spanning an ambiguous position (encoded value
// >= numStates) is skipped entirely rather than substituted or truncated.
//
// It keeps a single forward cursor: once a window is found to contain an
// ambiguous base at offset j, the next candidate start becomes pos+j+1, so
// one ambiguous base is never re-scanned k times as the window slides past
// it, mirroring the skip-ahead behaviour of get_kmers in the reference
// implementation.
type KmerIndexer struct {
	seq       []uint64
	numStates int
	k         int
	coeffs    []uint64
	pos       int
}

// NewKmerIndexer builds a streaming indexer over seq for k-mers of length k
// over an alphabet of numStates canonical symbols.
func NewKmerIndexer(seq []uint64, numStates, k int) (*KmerIndexer, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(seq) == 0 {
		return nil, ErrEmptySeq
	}
	return &KmerIndexer{
		seq:       seq,
		numStates: numStates,
		k:         k,
		coeffs:    CoordConversionCoeffs(numStates, k),
	}, nil
}

// Next returns the flat index of the next valid k-mer window, or
// (0, false) once the sequence is exhausted.
func (it *KmerIndexer) Next() (uint64, bool) {
	for it.pos+it.k <= len(it.seq) {
		window := it.seq[it.pos : it.pos+it.k]
		bad := -1
		for j, v := range window {
			if v >= uint64(it.numStates) {
				bad = j
				break
			}
		}
		if bad >= 0 {
			it.pos += bad + 1
			continue
		}
		var idx uint64
		for j, v := range window {
			idx += v * it.coeffs[j]
		}
		it.pos++
		return idx, true
	}
	return 0, false
}

// CurrentIndex returns the 0-based sequence offset of the window most
// recently returned by Next.
func (it *KmerIndexer) CurrentIndex() int {
	return it.pos - 1
}

// Reset rewinds the indexer to the start of seq.
func (it *KmerIndexer) Reset() {
	it.pos = 0
}
