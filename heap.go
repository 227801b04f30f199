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

import "container/heap"

// bottomKHeap is a max-heap over the k smallest hashes seen so far: the
// root is the current largest of the k, so a new candidate only needs to
// be compared against one element to decide whether it belongs in the
// sketch at all.
type bottomKHeap struct {
	h []uint64
	k int
}

func newBottomKHeap(k int) *bottomKHeap {
	return &bottomKHeap{h: make([]uint64, 0, k), k: k}
}

func (b *bottomKHeap) Len() int            { return len(b.h) }
func (b *bottomKHeap) Less(i, j int) bool  { return b.h[i] > b.h[j] } // max-heap
func (b *bottomKHeap) Swap(i, j int)       { b.h[i], b.h[j] = b.h[j], b.h[i] }
func (b *bottomKHeap) Push(x interface{})  { b.h = append(b.h, x.(uint64)) }
func (b *bottomKHeap) Pop() interface{} {
	old := b.h
	n := len(old)
	x := old[n-1]
	b.h = old[:n-1]
	return x
}

// offer admits hash into the bottom-k set if it is smaller than the
// current largest held hash, or if the set is not yet full. Duplicate
// hashes (the same k-mer appearing twice) are not re-inserted.
func (b *bottomKHeap) offer(hash uint64) {
	for _, v := range b.h {
		if v == hash {
			return
		}
	}
	if len(b.h) < b.k {
		heap.Push(b, hash)
		return
	}
	if hash < b.h[0] {
		b.h[0] = hash
		heap.Fix(b, 0)
	}
}

// sorted returns the held hashes in ascending order, leaving the heap
// itself untouched.
func (b *bottomKHeap) sorted() []uint64 {
	out := make([]uint64, len(b.h))
	copy(out, b.h)
	HashSlice(out).ParallelSort()
	return out
}
