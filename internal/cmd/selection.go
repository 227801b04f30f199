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
	"os"

	"github.com/shenwei356/stable"

	"github.com/GavinHuttley/diverseseq"
)

// filterByGroup drops every record whose name is not mapped to group in
// groups, or returns records unchanged when group is empty. It is how
// --manifest/--group let a run restrict a mixed-taxon collection down to
// one named subset before divergence selection runs over it.
func filterByGroup(records []*diverseseq.Record, groups map[string]string, group string) []*diverseseq.Record {
	if group == "" {
		return records
	}
	out := make([]*diverseseq.Record, 0, len(records))
	for _, r := range records {
		if groups[r.Name] == group {
			out = append(out, r)
		}
	}
	return out
}

// progressFor returns a bar-rendering Progress when verbose is set, and a
// NoopProgress otherwise, so the selection/distance algorithms never need
// to know whether they're being watched.
func progressFor(verbose bool) diverseseq.Progress {
	if bp := newBarProgress(verbose); bp != nil {
		return bp
	}
	return diverseseq.NoopProgress{}
}

// writeSelection writes the chosen records as a TSV of name, length and
// delta_jsd, in ascending delta_jsd order (the same order SummedRecords
// holds them in), to outfile, gzip-compressed when opt.Compress is set.
func writeSelection(outfile string, opt *Options, sr *diverseseq.SummedRecords) error {
	bw, closer, err := outStream(outfile, opt.Compress && outfile != "-")
	if err != nil {
		return err
	}
	defer closer.Close()
	defer bw.Flush()

	fmt.Fprintf(bw, "name\tlength\tdelta_jsd\n")
	for _, r := range sr.Records() {
		fmt.Fprintf(bw, "%s\t%d\t%g\n", r.Name, r.Length, r.DeltaJSD)
	}
	log.Infof("selected %d of the pooled set, mean_jsd=%g, mean_delta_jsd=%g, negative_delta_jsd_count=%d",
		sr.Size(), sr.MeanJSD(), sr.MeanDeltaJSD(), sr.NegativeDeltaJSDCount())

	if opt.Verbose {
		writeSelectionSummaryTable(os.Stderr, sr)
	}
	return nil
}

// writeSelectionSummaryTable renders a per-record breakdown of a selection
// run as an aligned plain-text table, the same way `unikmer info` renders
// its per-file summary: a stable.TableStyle with no row borders, one column
// per field, right-aligned for numbers.
func writeSelectionSummaryTable(w *os.File, sr *diverseseq.SummedRecords) {
	style := &stable.TableStyle{
		Name: "plain",

		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}

	columns := []stable.Column{
		{Header: "name"},
		{Header: "length", Align: stable.AlignRight},
		{Header: "delta_jsd", Align: stable.AlignRight},
	}

	tbl := stable.New()
	tbl.HeaderWithFormat(columns)

	for _, r := range sr.Records() {
		tbl.AddRow([]interface{}{r.Name, r.Length, fmt.Sprintf("%g", r.DeltaJSD)})
	}

	w.Write(tbl.Render(style))
}
