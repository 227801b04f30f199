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
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/GavinHuttley/diverseseq"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// loadRecords streams every sequence in files through the alphabet, pools
// each one's k-mer counts, and reports progress per sequence. Records
// shorter than k are skipped with a warning rather than aborting the whole
// run, since a single short contig in an otherwise-fine genome file should
// not sink the command.
func loadRecords(files []string, alphabet *diverseseq.Alphabet, k int, progress diverseseq.Progress) ([]*diverseseq.Record, error) {
	if progress == nil {
		progress = diverseseq.NoopProgress{}
	}

	var records []*diverseseq.Record
	task := progress.AddTask("load sequences", -1)
	for _, file := range files {
		reader, err := fastx.NewReader(nil, file, "")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", file)
		}

		for {
			rec, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				reader.Close()
				return nil, errors.Wrapf(err, "failed to read %s", file)
			}

			if len(rec.Seq.Seq) < k {
				log.Warningf("skipping %s: shorter than k=%d", rec.ID, k)
				continue
			}

			r, err := diverseseq.NewRecordFromSeq(string(rec.ID), rec.Seq.Seq, alphabet, k)
			if err != nil {
				reader.Close()
				return nil, err
			}
			records = append(records, r)
			progress.Update(task, 1)
		}
		reader.Close()
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no sequences loaded from %v", files)
	}
	return records, nil
}

// loadSeqs reads every record in files into memory without pooling k-mer
// counts, for subcommands (dist --metric mash) that sketch the raw
// sequence instead of a frequency vector.
func loadSeqs(files []string) ([]*seq.Seq, []string, error) {
	var seqs []*seq.Seq
	var names []string
	for _, file := range files {
		reader, err := fastx.NewReader(nil, file, "")
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open %s", file)
		}
		for {
			rec, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				reader.Close()
				return nil, nil, errors.Wrapf(err, "failed to read %s", file)
			}
			seqs = append(seqs, rec.Seq.Clone2())
			names = append(names, string(rec.ID))
		}
		reader.Close()
	}
	return seqs, names, nil
}
