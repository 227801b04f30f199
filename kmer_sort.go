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
	"github.com/twotwotwo/sorts"
)

// HashSlice is a slice of sketch hashes (uint64), for sorting.
type HashSlice []uint64

// Len returns the length of the slice.
func (h HashSlice) Len() int { return len(h) }

// Swap swaps two elements.
func (h HashSlice) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Less compares two hashes.
func (h HashSlice) Less(i, j int) bool { return h[i] < h[j] }

// ParallelSort sorts h ascending, splitting the work across available
// cores rather than paying for a single-threaded sort.Sort. Its caller is
// bottomKHeap.sorted, which sorts the hashes retained after reduction to a
// bottom-k sketch.
func (h HashSlice) ParallelSort() {
	sorts.Quicksort(h)
}
