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
	"github.com/cespare/xxhash"
	"github.com/shenwei356/bio/seq"
	"github.com/will-rowe/nthash"
)

// ErrShortSeq means the sequence is shorter than k.
var ErrShortSeq = NewValueError("sequence shorter than k")

// BottomSketch is a MinHash bottom-k sketch: the k smallest of all hash
// values produced by hashing every k-mer of a sequence. Two sequences'
// sketches approximate the Jaccard index of their full k-mer sets without
// either one keeping its whole k-mer multiset around, which is what makes
// MashDistance cheap to compute pairwise over many records.
type BottomSketch struct {
	Name       string
	Hashes     []uint64 // ascending
	SketchSize int      // configured target size s; may exceed len(Hashes) for short sequences
}

// NewDNASketch builds a bottom-k sketch over a nucleotide sequence using a
// rolling ntHash. With canonical set, each k-mer's hash is folded onto its
// reverse-complement strand before being offered to the sketch, so the
// result does not depend on which strand was sequenced.
//
// A window spanning an ambiguous position (an N, or any byte outside
// alphabet's canonical set) is never offered to the sketch, matching the
// same enumerate-then-skip rule the frequency-vector extractor (KmerIndexer)
// applies: a sketch built over a sequence riddled with Ns must approximate
// the same underlying k-mer set the frequency vector was pooled from.
func NewDNASketch(name string, s *seq.Seq, alphabet *Alphabet, k int, sketchSize int, canonical bool) (*BottomSketch, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if sketchSize < 1 {
		return nil, NewConfigError("sketch_size", "must be at least 1")
	}
	if len(s.Seq) < k {
		return nil, ErrShortSeq
	}

	valid, err := validKmerWindows(alphabet.Encode(s.Seq), alphabet.NumStates(), k)
	if err != nil {
		return nil, err
	}

	hasher, err := nthash.NewHasher(&s.Seq, uint(k))
	if err != nil {
		return nil, err
	}

	bh := newBottomKHeap(sketchSize)
	for p := 0; ; p++ {
		h, ok := hasher.Next(canonical)
		if !ok {
			break
		}
		if valid[p] {
			bh.offer(h)
		}
	}
	return &BottomSketch{Name: name, Hashes: bh.sorted(), SketchSize: sketchSize}, nil
}

// NewProteinSketch builds a bottom-k sketch over an amino-acid sequence
// using xxhash: ntHash's rolling update is nucleotide-specific, and a
// protein k-mer has no reverse-complement strand to canonicalize against.
// As with NewDNASketch, a window spanning an ambiguous residue (X, or
// anything outside alphabet's 20-letter canonical set) is skipped.
func NewProteinSketch(name string, seqBytes []byte, alphabet *Alphabet, k int, sketchSize int) (*BottomSketch, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if sketchSize < 1 {
		return nil, NewConfigError("sketch_size", "must be at least 1")
	}
	if len(seqBytes) < k {
		return nil, ErrShortSeq
	}

	valid, err := validKmerWindows(alphabet.Encode(seqBytes), alphabet.NumStates(), k)
	if err != nil {
		return nil, err
	}

	bh := newBottomKHeap(sketchSize)
	for p := 0; p+k <= len(seqBytes); p++ {
		if valid[p] {
			bh.offer(xxhash.Sum64(seqBytes[p : p+k]))
		}
	}
	return &BottomSketch{Name: name, Hashes: bh.sorted(), SketchSize: sketchSize}, nil
}

// NewBottomSketchFromHashes reduces an arbitrary slice of k-mer hashes
// (e.g. every code read back from a precomputed .unik file) to a bottom-k
// sketch of at most sketchSize entries, via the same max-heap NewDNASketch
// and NewProteinSketch use. This is how a sketch loaded from disk is
// brought to the same shape as one built directly from a sequence, so
// MashDistance never has to special-case where a BottomSketch came from.
func NewBottomSketchFromHashes(name string, hashes []uint64, sketchSize int) *BottomSketch {
	bh := newBottomKHeap(sketchSize)
	for _, h := range hashes {
		bh.offer(h)
	}
	return &BottomSketch{Name: name, Hashes: bh.sorted(), SketchSize: sketchSize}
}

// validKmerWindows reports, for every k-mer window start position over an
// already-encoded sequence, whether that window is free of ambiguous
// positions. It reuses KmerIndexer's own skip-ahead scan rather than
// re-deriving the ambiguity rule, so the sketch path and the frequency-vector
// path (KmerCounts) can never disagree about which windows are valid.
func validKmerWindows(encoded []uint64, numStates, k int) ([]bool, error) {
	n := len(encoded) - k + 1
	if n <= 0 {
		return nil, ErrShortSeq
	}
	valid := make([]bool, n)
	iter, err := NewKmerIndexer(encoded, numStates, k)
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := iter.Next(); !ok {
			break
		}
		valid[iter.CurrentIndex()] = true
	}
	return valid, nil
}
