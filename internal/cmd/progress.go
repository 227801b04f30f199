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
	"os"
	"sync"

	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// barProgress implements diverseseq.Progress on top of mpb, rendering one
// bar per AddTask call. A total < 0 means the task's length is unknown
// ahead of time (streaming file input); mpb is then given a total of 0, and
// the bar carries the same counter and ETA decorators as a bounded one.
type barProgress struct {
	mu   sync.Mutex
	pbs  *mpb.Progress
	bars []*mpb.Bar
}

// newBarProgress returns nil when verbose is false, and the caller is
// expected to fall back to diverseseq.NoopProgress{} in that case so a
// quiet run pays no decorator overhead at all.
func newBarProgress(verbose bool) *barProgress {
	if !verbose {
		return nil
	}
	return &barProgress{pbs: mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))}
}

func (p *barProgress) AddTask(label string, total int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	barTotal := int64(total)
	if total < 0 {
		barTotal = 0
	}
	bar := p.pbs.AddBar(barTotal,
		mpb.PrependDecorators(
			decor.Name(label+": ", decor.WC{W: len(label) + 2, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 30), "done"),
		),
	)
	p.bars = append(p.bars, bar)
	return len(p.bars) - 1
}

func (p *barProgress) Update(taskID int, delta int) {
	p.mu.Lock()
	bar := p.bars[taskID]
	p.mu.Unlock()
	bar.IncrBy(delta)
}
