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

var nmostCmd = &cobra.Command{
	Use:   "nmost",
	Short: "select the n most divergent sequences from a collection",
	Long: `nmost selects a fixed-size subset of sequences that maximizes the
Jensen-Shannon divergence of their pooled k-mer frequency distribution.

The result always has exactly --size members: the search seeds a working
set with the first size sequences, then walks the remainder once, swapping
in any sequence that raises the set's divergence.`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		size := getFlagPositiveInt(cmd, "size")
		files := getFlagStringSlice(cmd, "infile")
		outfile := expandPath(getFlagString(cmd, "outfile"))
		manifest := expandPath(getFlagString(cmd, "manifest"))
		group := getFlagString(cmd, "group")
		loadCounts := expandPath(getFlagString(cmd, "load-counts"))
		saveCounts := expandPath(getFlagString(cmd, "save-counts"))

		progress := progressFor(opt.Verbose)

		var records []*diverseseq.Record
		if loadCounts != "" {
			var err error
			records, err = loadRecordsBinary(loadCounts)
			checkError(err)
			log.Infof("loaded %d cached records from %s", len(records), loadCounts)
		} else {
			if len(files) == 0 {
				checkError(fmt.Errorf("nmost: at least one -i/--infile is required"))
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

		sr, err := diverseseq.MostDivergent(records, size, progress)
		checkError(err)

		checkError(writeSelection(outfile, opt, sr))
	},
}

func init() {
	RootCmd.AddCommand(nmostCmd)

	nmostCmd.Flags().StringSliceP("infile", "i", nil, "input FASTA/FASTQ file(s)")
	nmostCmd.Flags().StringP("outfile", "o", "-", "output TSV of selected sequence names and delta_jsd (\"-\" for stdout)")
	nmostCmd.Flags().IntP("size", "n", 10, "number of sequences to select")
	nmostCmd.Flags().StringP("manifest", "", "", "optional TSV of seqid<TAB>group restricting input to one group")
	nmostCmd.Flags().StringP("group", "", "", "group name to restrict to, requires --manifest")
	nmostCmd.Flags().StringP("save-counts", "", "", "cache pooled k-mer counts to this file for reuse by a later --load-counts run")
	nmostCmd.Flags().StringP("load-counts", "", "", "load pooled k-mer counts from a --save-counts cache instead of -i/--infile")
}
