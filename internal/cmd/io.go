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

	gzip "github.com/klauspost/pgzip"
	"github.com/shenwei356/xopen"

	"github.com/GavinHuttley/diverseseq"
)

// outStream opens file for writing, or stdout when file is "-"/"". When
// gzipped is set the result is itself a gzip stream (xopen.WopenGzip),
// matching how unikmer's own count/dump/concat subcommands pick between
// xopen.Wopen and xopen.WopenGzip on the same --no-compress-style flag.
func outStream(file string, gzipped bool) (*bufio.Writer, io.WriteCloser, error) {
	var w *xopen.Writer
	var err error
	if gzipped {
		w, err = xopen.WopenGzip(file)
	} else {
		w, err = xopen.Wopen(file)
	}
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewWriter(w), w, nil
}

// writeMatrixBinary serializes m to file (or stdout) in the toolkit's own
// binary format, wrapped in a pgzip writer when gzipped is set. This goes
// through pgzip directly rather than xopen: the matrix format is written by
// diverseseq.WriteMatrix as a sequence of fixed-size binary.Write calls, the
// same shape unikmer/cmd/util-io.go's own outStream/inStream wrap around a
// raw pgzip stream for its compact binary k-mer format, rather than through
// the line-oriented xopen path used for FASTA and TSV I/O elsewhere in this
// package.
func writeMatrixBinary(file string, gzipped bool, m *diverseseq.Matrix) error {
	w := io.WriteCloser(os.Stdout)
	if file != "-" && file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		w = f
	}
	defer w.Close()

	if !gzipped {
		return diverseseq.WriteMatrix(w, m)
	}

	gw := gzip.NewWriter(w)
	if err := diverseseq.WriteMatrix(gw, m); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

// writeRecordsBinary caches a pooled-counts set to file (or stdout) via
// diverseseq.WriteRecords, wrapped in pgzip when gzipped is set. This is
// --save-counts: the pooling pass over a FASTA collection is the expensive
// step in nmost/max, and caching its output lets a repeat run with a
// different --stat/--size/--group skip straight to selection.
func writeRecordsBinary(file string, gzipped bool, records []*diverseseq.Record) error {
	w := io.WriteCloser(os.Stdout)
	if file != "-" && file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		w = f
	}
	defer w.Close()

	if !gzipped {
		return diverseseq.WriteRecords(w, records)
	}

	gw := gzip.NewWriter(w)
	if err := diverseseq.WriteRecords(gw, records); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

// loadRecordsBinary is --load-counts's counterpart: it reads a records
// cache written by writeRecordsBinary instead of re-pooling from FASTA.
func loadRecordsBinary(file string) ([]*diverseseq.Record, error) {
	r := io.Reader(os.Stdin)
	if file != "-" && file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return diverseseq.ReadRecords(gr)
	}
	return diverseseq.ReadRecords(br)
}
