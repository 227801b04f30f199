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

// CoordConversionCoeffs returns the mixed-radix weights for a k-dimensional
// coordinate over an alphabet of numStates symbols: coeffs[j] ==
// numStates^(k-1-j), matching numpy.ravel_multi_index's row-major strides
// for shape (numStates,)*k.
func CoordConversionCoeffs(numStates, k int) []uint64 {
	coeffs := make([]uint64, k)
	c := uint64(1)
	for j := k - 1; j >= 0; j-- {
		coeffs[j] = c
		c *= uint64(numStates)
	}
	return coeffs
}

// CoordToIndex flattens a k-mer coordinate (one index per position) into a
// single KmerIndex using the mixed-radix weights from CoordConversionCoeffs.
// It is the inverse of IndexToCoord.
func CoordToIndex(coord []uint64, coeffs []uint64) (uint64, error) {
	if len(coord) != len(coeffs) {
		return 0, NewValueError("coord and coeffs have mismatched dimension")
	}
	var idx uint64
	for i, c := range coord {
		idx += c * coeffs[i]
	}
	return idx, nil
}

// IndexToCoord unravels a flat KmerIndex back into its k-dimensional
// coordinate, given the weights from CoordConversionCoeffs. It is the
// inverse of CoordToIndex.
func IndexToCoord(index uint64, coeffs []uint64) []uint64 {
	coord := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		coord[i] = index / c
		index %= c
	}
	return coord
}

// KmerCounts returns a counts FreqVec of length numStates^k over the
// k-mers of seq (an already-encoded index array), skipping any k-mer that
// spans an ambiguous position (index >= numStates).
func KmerCounts(seq []uint64, numStates, k int) (*FreqVec[int64], error) {
	l, err := CheckVectorLength(numStates, k)
	if err != nil {
		return nil, err
	}
	counts := NewFreqVec[int64](l)
	iter, err := NewKmerIndexer(seq, numStates, k)
	if err != nil {
		return nil, err
	}
	for {
		idx, ok := iter.Next()
		if !ok {
			break
		}
		counts.data[idx]++
	}
	return counts, nil
}

// IndicesToSeqs decodes a slice of flat KmerIndex values back to k-length
// strings over states (the canonical alphabet in encoding order), erroring
// if any index falls outside [0, len(states)^k).
func IndicesToSeqs(indices []uint64, states []byte, k int) ([]string, error) {
	numStates := len(states)
	coeffs := CoordConversionCoeffs(numStates, k)
	limit := uint64(1)
	for i := 0; i < k; i++ {
		limit *= uint64(numStates)
	}
	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx >= limit {
			return nil, NewValueError("index out of alphabet range")
		}
		coord := IndexToCoord(idx, coeffs)
		buf := make([]byte, k)
		for j, c := range coord {
			buf[j] = states[c]
		}
		out[i] = string(buf)
	}
	return out, nil
}
