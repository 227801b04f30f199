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

	"github.com/spf13/cobra"

	"github.com/GavinHuttley/diverseseq"
)

var maxCmd = &cobra.Command{
	Use:   "max",
	Short: "select a variable-size maximally divergent subset of a collection",
	Long: `max selects a subset whose size is chosen by the algorithm itself,
between --min-size and --max-size: it walks the sequences once, adding a
sequence that passes the divergence filter when that raises the chosen
--stat and otherwise swapping it in for the lowest-contributing member.
With --max-set it then drops the lowest-contributing member one at a time
down to --min-size and keeps the size that scored highest on --stat.`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		minSize := getFlagPositiveInt(cmd, "min-size")
		maxSize := getFlagPositiveInt(cmd, "max-size")
		statFlag := getFlagString(cmd, "stat")
		maxSet := getFlagBool(cmd, "max-set")
		files := getFlagStringSlice(cmd, "infile")
		outfile := expandPath(getFlagString(cmd, "outfile"))
		manifest := expandPath(getFlagString(cmd, "manifest"))
		group := getFlagString(cmd, "group")
		loadCounts := expandPath(getFlagString(cmd, "load-counts"))
		saveCounts := expandPath(getFlagString(cmd, "save-counts"))

		var stat diverseseq.Stat
		switch statFlag {
		case "mean_jsd":
			stat = diverseseq.StatMeanJSD
		case "mean_delta_jsd":
			stat = diverseseq.StatMeanDeltaJSD
		case "total_jsd":
			stat = diverseseq.StatTotalJSD
		default:
			checkError(fmt.Errorf("max: --stat must be mean_jsd, mean_delta_jsd or total_jsd, got %q", statFlag))
		}

		progress := progressFor(opt.Verbose)

		var records []*diverseseq.Record
		if loadCounts != "" {
			var err error
			records, err = loadRecordsBinary(loadCounts)
			checkError(err)
			log.Infof("loaded %d cached records from %s", len(records), loadCounts)
		} else {
			if len(files) == 0 {
				checkError(fmt.Errorf("max: at least one -i/--infile is required"))
			}

			alphabet, err := diverseseq.NewAlphabet(opt.Moltype)
			checkError(err)

			records, err = loadRecords(files, alphabet, opt.K, progress)
			checkError(err)
			log.Infof("loaded %d sequences", len(records))
		}

		if saveCounts != "" {
			checkError(writeRecordsBinary(saveCounts, opt.Compress && saveCounts != "-", records))
			log.Infof("cached pooled counts to %s", saveCounts)
		}

		if manifest != "" {
			groups, err := loadManifest(manifest)
			checkError(err)
			records = filterByGroup(records, groups, group)
			log.Infof("%d sequences remain after restricting to group %q", len(records), group)
		}

		sr, err := diverseseq.MaxDivergent(records, minSize, maxSize, stat, maxSet, progress)
		checkError(err)

		checkError(writeSelection(outfile, opt, sr))
	},
}

func init() {
	RootCmd.AddCommand(maxCmd)

	maxCmd.Flags().StringSliceP("infile", "i", nil, "input FASTA/FASTQ file(s)")
	maxCmd.Flags().StringP("outfile", "o", "-", "output TSV of selected sequence names and delta_jsd (\"-\" for stdout)")
	maxCmd.Flags().IntP("min-size", "", 2, "smallest subset size to consider")
	maxCmd.Flags().IntP("max-size", "", 100, "largest subset size to grow to before shrinking")
	maxCmd.Flags().StringP("stat", "", "mean_delta_jsd", "statistic to maximize while shrinking: mean_jsd, mean_delta_jsd or total_jsd")
	maxCmd.Flags().BoolP("max-set", "", true, "postprocess to find the subset size that maximizes --stat")
	maxCmd.Flags().StringP("manifest", "", "", "optional TSV of seqid<TAB>group restricting input to one group")
	maxCmd.Flags().StringP("group", "", "", "group name to restrict to, requires --manifest")
	maxCmd.Flags().StringP("save-counts", "", "", "cache pooled k-mer counts to this file for reuse by a later --load-counts run")
	maxCmd.Flags().StringP("load-counts", "", "", "load pooled k-mer counts from a --save-counts cache instead of -i/--infile")
}
