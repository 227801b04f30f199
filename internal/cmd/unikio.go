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

package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shenwei356/unik/v5"

	"github.com/GavinHuttley/diverseseq"
)

// LoadUnikSketch reads every k-mer code out of a .unik file (written by
// unikmer's own `unikmer encode`/`unikmer count -u` or any compatible
// writer) and reduces them to a BottomSketch, the same shape NewDNASketch
// and NewProteinSketch produce. This lets `dist --from-unik` reuse a
// sketch computed once by an external tool instead of re-pooling k-mers
// from FASTA on every run.
func LoadUnikSketch(file string, name string, sketchSize int) (*diverseseq.BottomSketch, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", file)
	}
	defer f.Close()

	reader, err := unik.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read unik header of %s", file)
	}
	if !reader.IsHashed() {
		return nil, errors.Errorf("%s stores raw k-mer codes, not hashes: unhashed .unik files are not comparable to ntHash/xxhash sketches", file)
	}

	var hashes []uint64
	for {
		code, _, err := reader.ReadCodeWithTaxid()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read unik codes of %s", file)
		}
		hashes = append(hashes, code)
	}

	return diverseseq.NewBottomSketchFromHashes(name, hashes, sketchSize), nil
}
