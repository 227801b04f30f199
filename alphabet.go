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
	"github.com/dustin/go-humanize"
)

// MaxVectorLength bounds num_states^k: above this a FreqVec allocation is
// refused outright rather than attempted silently (spec.md §5).
const MaxVectorLength = 1 << 28

// Alphabet maps a fixed ordered list of canonical symbols to small integer
// indices. Any byte outside the canonical set encodes to an index
// >= NumStates and is treated as ambiguous.
type Alphabet struct {
	Moltype string
	States  []byte      // canonical order, index == encoded value
	index   [256]uint16 // states[i] below 256 are packed, rest forced ambiguous
}

// NumStates is the size of the canonical alphabet.
func (a *Alphabet) NumStates() int { return len(a.States) }

// ambiguous is the sentinel encoded value for any non-canonical input byte.
// It is always equal to NumStates() for a well-formed Alphabet, but the
// index table clamps everything out-of-band to this single value so
// degenerate cases (IUPAC codes, gaps, any other byte) all land there;
// lowercase canonical symbols are not among them, they fold to their
// canonical index.
func (a *Alphabet) ambiguous() uint16 { return uint16(len(a.States)) }

// newAlphabet builds the symbol->index table for states: canonical symbols
// (in either case) map to their position, everything else — including
// ambiguity codes like N or X — is left at the ambiguous sentinel set
// below, per spec.md §3 ("any input symbol outside the canonical set ...
// treated as ambiguous"). Folding an ambiguity code onto a canonical state
// would silently make it stop being ambiguous, breaking the k-mer
// extractor's obligation to skip any k-mer spanning one (spec.md §4.B).
func newAlphabet(moltype string, states []byte) *Alphabet {
	a := &Alphabet{Moltype: moltype, States: states}
	amb := uint16(len(states))
	for i := range a.index {
		a.index[i] = amb
	}
	for i, s := range states {
		a.index[s] = uint16(i)
		if lower := foldLower(s); lower != s {
			a.index[lower] = uint16(i)
		}
	}
	return a
}

func foldLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// DNAStates is the canonical DNA ordering T,C,A,G (positions 0..3), chosen
// so the reverse-complement trick in the MinHash canonical reduction
// ((x+2) mod 4, reversed) holds: complement(x) = (x+2) mod 4 pairs
// T<->A (0<->2) and C<->G (1<->3).
var DNAStates = []byte{'T', 'C', 'A', 'G'}

// RNAStates mirrors DNAStates with U in place of T.
var RNAStates = []byte{'U', 'C', 'A', 'G'}

// ProteinStates is the 20-residue canonical amino acid alphabet.
var ProteinStates = []byte{
	'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y',
}

// NewAlphabet returns the canonical Alphabet for a moltype
// ("dna", "rna", "protein"), or a ConfigError for anything else.
func NewAlphabet(moltype string) (*Alphabet, error) {
	switch moltype {
	case "dna":
		return newAlphabet("dna", DNAStates), nil
	case "rna":
		return newAlphabet("rna", RNAStates), nil
	case "protein":
		return newAlphabet("protein", ProteinStates), nil
	default:
		return nil, NewConfigError("moltype", "must be one of dna, rna, protein, got "+moltype)
	}
}

// Encode maps raw sequence bytes to an index array: canonical symbols map
// to their position, everything else maps to an index >= NumStates().
func (a *Alphabet) Encode(seq []byte) []uint64 {
	out := make([]uint64, len(seq))
	for i, b := range seq {
		out[i] = uint64(a.index[b])
	}
	return out
}

// CheckVectorLength rejects a FreqVec allocation of length L when it would
// exceed MaxVectorLength, naming the requested size in the error using a
// human-readable count rather than a raw, hard-to-parse integer.
func CheckVectorLength(numStates, k int) (int, error) {
	l := 1
	for i := 0; i < k; i++ {
		if l > MaxVectorLength/numStates {
			return 0, tooLargeErr(numStates, k)
		}
		l *= numStates
		if l > MaxVectorLength {
			return 0, tooLargeErr(numStates, k)
		}
	}
	return l, nil
}

func tooLargeErr(numStates, k int) error {
	return NewConfigError(
		"k",
		"num_states^k for num_states="+humanize.Comma(int64(numStates))+", k="+humanize.Comma(int64(k))+
			" exceeds the memory budget of "+humanize.Comma(MaxVectorLength)+" entries",
	)
}
