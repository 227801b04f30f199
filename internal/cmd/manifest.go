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
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
)

// manifestEntry maps one sequence ID to the group it belongs to, as read
// from a two-column TSV manifest (seqid, group).
type manifestEntry struct {
	SeqID string
	Group string
}

// loadManifest reads a TSV of "seqid<TAB>group" lines into a seqid->group
// map, using the package's buffered, chunked line reader so a
// many-thousand-row manifest parses with the same scaling behaviour as a
// taxonomy dump.
func loadManifest(file string) (map[string]string, error) {
	parseFunc := func(line string) (interface{}, bool, error) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			return nil, false, nil
		}
		items := strings.SplitN(line, "\t", 2)
		if len(items) < 2 {
			return nil, false, nil
		}
		return manifestEntry{SeqID: items[0], Group: items[1]}, true, nil
	}

	reader, err := breader.NewBufferedReader(file, 8, 100, parseFunc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", file)
	}

	groups := make(map[string]string, 1024)
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, errors.Wrapf(chunk.Err, "failed to parse manifest %s", file)
		}
		for _, data := range chunk.Data {
			e := data.(manifestEntry)
			groups[e.SeqID] = e.Group
		}
	}
	return groups, nil
}
