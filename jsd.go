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

// JSD computes the Jensen-Shannon divergence of n pooled distributions
// from their running sums: the sum of their frequency vectors (sumFreqs)
// and the sum of their individual entropies (sumEntropies).
//
//	JSD(Σf, Σh, n) = entropy(Σf/n) - Σh/n
//
// This is the single entry point for the divergence calculation: every
// caller (SummedRecords, select.go's greedy search) goes through it rather
// than each re-deriving the formula, so the kernel has exactly one
// implementation to get right.
func JSD(sumFreqs *FreqVec[float64], sumEntropies float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	mean := sumFreqs.DivScalar(float64(n))
	return mean.Entropy() - sumEntropies/float64(n)
}

// deltaJSD returns the marginal contribution of a single record to the
// divergence of the set it belongs to: the JSD computed over all n records
// minus the JSD computed over the same set with that record excluded.
// A size-1 set has no meaningful "without" baseline, so its delta is 0.
func deltaJSD(sumFreqs *FreqVec[float64], sumEntropies float64, n int, rec *Record) (float64, error) {
	if n <= 1 {
		return 0, nil
	}
	withoutFreqs, err := sumFreqs.Sub(rec.Kfreqs())
	if err != nil {
		return 0, err
	}
	full := JSD(sumFreqs, sumEntropies, n)
	without := JSD(withoutFreqs, sumEntropies-rec.Entropy(), n-1)
	return full - without, nil
}
