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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GavinHuttley/diverseseq"
)

var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "compute a pairwise distance matrix over a sequence collection",
	Long: `dist computes a full pairwise distance matrix over the input
sequences, with either:

  --metric mash       MinHash bottom-k sketches, Mash distance (fast,
                       approximate, works well on whole genomes)
  --metric euclidean   straight-line distance between k-mer frequency
                       vectors (exact, more memory per sequence)

--metric mash accepts --from-unik in place of (or alongside) -i/--infile:
one or more precomputed .unik sketch files, read straight in rather than
re-pooled from FASTA.

The matrix is written in the toolkit's own binary format unless
--text is given, in which case it is written as a TSV with a header row
of names.`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		metric := getFlagString(cmd, "metric")
		sketchSize := getFlagPositiveInt(cmd, "sketch-size")
		canonical := !getFlagBool(cmd, "no-canonical")
		text := getFlagBool(cmd, "text")
		files := getFlagStringSlice(cmd, "infile")
		fromUnik := getFlagStringSlice(cmd, "from-unik")
		outfile := expandPath(getFlagString(cmd, "outfile"))

		if len(files) == 0 && len(fromUnik) == 0 {
			checkError(fmt.Errorf("dist: at least one -i/--infile (or --from-unik) is required"))
		}

		progress := progressFor(opt.Verbose)

		var m *diverseseq.Matrix
		switch metric {
		case "mash":
			var sketches []*diverseseq.BottomSketch

			if len(fromUnik) > 0 {
				task := progress.AddTask("load unik sketches", len(fromUnik))
				for _, file := range fromUnik {
					sk, err := LoadUnikSketch(file, filepath.Base(file), sketchSize)
					checkError(err)
					sketches = append(sketches, sk)
					progress.Update(task, 1)
				}
			}

			if len(files) > 0 {
				alphabet, err := diverseseq.NewAlphabet(opt.Moltype)
				checkError(err)

				seqs, names, err := loadSeqs(files)
				checkError(err)

				task := progress.AddTask("sketch sequences", len(seqs))
				for i, s := range seqs {
					var sk *diverseseq.BottomSketch
					var err error
					if opt.Moltype == "protein" {
						sk, err = diverseseq.NewProteinSketch(names[i], s.Seq, alphabet, opt.K, sketchSize)
					} else {
						sk, err = diverseseq.NewDNASketch(names[i], s, alphabet, opt.K, sketchSize, canonical)
					}
					checkError(err)
					sketches = append(sketches, sk)
					progress.Update(task, 1)
				}
			}

			var err error
			m, err = diverseseq.MashDistances(sketches, opt.K, opt.NumCPUs, progress)
			checkError(err)

		case "euclidean":
			alphabet, err := diverseseq.NewAlphabet(opt.Moltype)
			checkError(err)

			records, err := loadRecords(files, alphabet, opt.K, progress)
			checkError(err)

			names := make([]string, len(records))
			freqs := make([]*diverseseq.FreqVec[float64], len(records))
			for i, r := range records {
				names[i] = r.Name
				freqs[i] = r.Kfreqs()
			}

			m, err = diverseseq.EuclideanDistances(names, freqs, opt.NumCPUs, progress)
			checkError(err)

		default:
			checkError(fmt.Errorf("dist: --metric must be mash or euclidean, got %q", metric))
		}

		checkError(writeMatrix(outfile, opt, m, text))
	},
}

func writeMatrix(outfile string, opt *Options, m *diverseseq.Matrix, text bool) error {
	if text {
		bw, closer, err := outStream(outfile, opt.Compress && outfile != "-")
		if err != nil {
			return err
		}
		defer closer.Close()
		defer bw.Flush()

		for i, name := range m.Names {
			if i > 0 {
				fmt.Fprint(bw, "\t")
			}
			fmt.Fprint(bw, name)
		}
		fmt.Fprint(bw, "\n")
		for i := range m.Names {
			for j := range m.Names {
				if j > 0 {
					fmt.Fprint(bw, "\t")
				}
				fmt.Fprintf(bw, "%g", m.Get(i, j))
			}
			fmt.Fprint(bw, "\n")
		}
		return nil
	}

	return writeMatrixBinary(outfile, opt.Compress && outfile != "-", m)
}

func init() {
	RootCmd.AddCommand(distCmd)

	distCmd.Flags().StringSliceP("infile", "i", nil, "input FASTA/FASTQ file(s)")
	distCmd.Flags().StringSliceP("from-unik", "", nil, "precomputed .unik sketch file(s) (--metric mash only), used instead of or alongside -i/--infile")
	distCmd.Flags().StringP("outfile", "o", "-", "output matrix file (\"-\" for stdout)")
	distCmd.Flags().StringP("metric", "", "mash", "distance metric: mash or euclidean")
	distCmd.Flags().IntP("sketch-size", "", 1000, "MinHash sketch size (--metric mash only)")
	distCmd.Flags().BoolP("no-canonical", "", false, "do not fold k-mers onto their reverse complement (--metric mash, dna/rna only)")
	distCmd.Flags().BoolP("text", "", false, "write the matrix as a TSV instead of the binary format")
}
