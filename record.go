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

// Record holds one sequence's pooled k-mer statistics: its raw counts, and
// lazily-derived, cached frequencies and entropy. DeltaJSD is left mutable
// and exported since SummedRecords rewrites it in place every time the
// record's contribution to the running selection changes.
type Record struct {
	Name     string
	Length   int
	Kcounts  *FreqVec[int64]
	DeltaJSD float64

	kfreqs  *FreqVec[float64]
	entropy *float64
}

// NewRecord validates and constructs a Record from already-pooled k-mer
// counts. It mirrors attrs-style validators: a wrong length or a nil
// Kcounts is rejected immediately rather than surfacing later as a panic
// deep inside the JSD kernel.
func NewRecord(name string, length int, kcounts *FreqVec[int64]) (*Record, error) {
	if name == "" {
		return nil, &TypeError{Field: "name", Want: "non-empty string", Got: "empty string"}
	}
	if length <= 0 {
		return nil, &TypeError{Field: "length", Want: "positive int", Got: "non-positive int"}
	}
	if kcounts == nil {
		return nil, &TypeError{Field: "kcounts", Want: "*FreqVec[int64]", Got: "nil"}
	}
	return &Record{Name: name, Length: length, Kcounts: kcounts}, nil
}

// NewRecordFromSeq is a convenience composition helper: it encodes seq
// against alphabet, pools its k-mer counts, and wraps the result in a
// Record in one call, so callers outside the CLI's own streaming pipeline
// (tests, REPL-style exploration) don't have to hand-assemble the
// Alphabet/KmerIndexer/FreqVec plumbing themselves.
func NewRecordFromSeq(name string, seq []byte, alphabet *Alphabet, k int) (*Record, error) {
	encoded := alphabet.Encode(seq)
	counts, err := KmerCounts(encoded, alphabet.NumStates(), k)
	if err != nil {
		return nil, err
	}
	return NewRecord(name, len(seq), counts)
}

// Kfreqs returns the record's k-mer counts normalized to frequencies,
// computing and caching them on first use.
func (r *Record) Kfreqs() *FreqVec[float64] {
	if r.kfreqs == nil {
		total := float64(r.Kcounts.Sum())
		r.kfreqs = r.Kcounts.DivScalar(total)
	}
	return r.kfreqs
}

// Entropy returns the Shannon entropy, in bits, of the record's k-mer
// frequency distribution, computing and caching it on first use.
func (r *Record) Entropy() float64 {
	if r.entropy == nil {
		h := r.Kfreqs().Entropy()
		r.entropy = &h
	}
	return *r.entropy
}
