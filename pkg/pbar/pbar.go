// Copyright (c) 2025 imns1ght
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
package pbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/imns1ght/data-structures/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

// ProgressBarState holds all the data needed to render the progress bar
type ProgressBarState struct {
	Out            io.Writer
	Label          string
	Total          int64
	Done           int64
	Buckets        int
	StartTime      time.Time
	LastUpdateTime time.Time
	LastDone       int64
}

// NewProgressBarState initializes a new ProgressBarState
func NewProgressBarState(out io.Writer, label string, total int64) *ProgressBarState {
	return &ProgressBarState{
		Out:            out,
		Label:          label,
		Total:          total,
		StartTime:      time.Now(),
		LastUpdateTime: time.Unix(0, 0),
	}
}

// Render updates and prints the progress bar line
func (pbs *ProgressBarState) Render(force bool) {
	if !force && time.Since(pbs.LastUpdateTime) < MinRefreshRate {
		return
	}

	percentage := 100.0
	if pbs.Total > 0 {
		percentage = float64(pbs.Done) / float64(pbs.Total) * 100
	}

	barLength := 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	var rate float64
	if elapsed := time.Since(pbs.LastUpdateTime).Seconds(); elapsed > 0 {
		rate = float64(pbs.Done-pbs.LastDone) / elapsed
	}

	// Update last values for next speed calculation
	pbs.LastUpdateTime = time.Now()
	pbs.LastDone = pbs.Done

	// \r moves the cursor to the beginning of the line; trailing spaces
	// clear leftovers from a previous longer line.
	fmt.Fprintf(pbs.Out, "\r[INFO] %s: [%s] %3.0f%% (%s/%s) | Buckets: %d | @ %s ops/s    ",
		pbs.Label,
		bar,
		percentage,
		format.FormatCount(pbs.Done),
		format.FormatCount(pbs.Total),
		pbs.Buckets,
		format.FormatCount(int64(rate)),
	)
}

// Finish prints a newline, effectively finishing the progress bar output
func (pbs *ProgressBarState) Finish() {
	pbs.Render(true)
	fmt.Fprintln(pbs.Out)
}
