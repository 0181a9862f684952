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
package bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/imns1ght/data-structures/internal/logger"
	"github.com/imns1ght/data-structures/pkg/hashtbl"
	"github.com/imns1ght/data-structures/pkg/pbar"
)

var ErrUnknownHash = errors.New("unknown hash function")

// Hashers lists the string hash functions a workload can run with.
var Hashers = map[string]hashtbl.HashFunc[string]{
	"xxhash":  hashtbl.StringHash,
	"murmur3": hashtbl.Murmur3String,
}

type Options struct {
	Keys       int64
	Buckets    int
	Hash       string
	EraseRatio float64
	Seed       int64
	Progress   io.Writer
	Logger     *logger.Logger
}

type Result struct {
	Inserted   int64
	Erased     int64
	Missing    int64
	InsertTime time.Duration
	LookupTime time.Duration
	EraseTime  time.Duration
	Stats      hashtbl.Stats
}

// Run inserts opts.Keys distinct keys in random order, looks every one of
// them up, then erases a random opts.EraseRatio share of them. Missing
// counts lookups that failed when they should have succeeded, or the
// other way round after erasure.
func Run(opts Options) (Result, error) {
	hash, ok := Hashers[opts.Hash]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownHash, opts.Hash)
	}
	if opts.Keys < 0 {
		return Result{}, fmt.Errorf("key count must not be negative, got %d", opts.Keys)
	}
	if opts.EraseRatio < 0 || opts.EraseRatio > 1 {
		return Result{}, fmt.Errorf("erase ratio must be within [0, 1], got %v", opts.EraseRatio)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	keys := make([]string, opts.Keys)
	for i, p := range rng.Perm(int(opts.Keys)) {
		keys[i] = "key-" + strconv.Itoa(p)
	}

	tbl := hashtbl.New[string, int64](opts.Buckets, hash)
	tbl.SetLogger(log)

	var res Result

	bar := newBar(opts.Progress, "insert", opts.Keys)
	start := time.Now()
	for i, k := range keys {
		if tbl.Insert(k, int64(i)) {
			res.Inserted++
		}
		bar.update(int64(i+1), tbl.BucketCount())
	}
	res.InsertTime = time.Since(start)
	bar.finish()

	start = time.Now()
	for i, k := range keys {
		var v int64
		if !tbl.Retrieve(k, &v) || v != int64(i) {
			res.Missing++
		}
	}
	res.LookupTime = time.Since(start)

	toErase := keys[:int(float64(len(keys))*opts.EraseRatio)]
	start = time.Now()
	for _, k := range toErase {
		if tbl.Erase(k) {
			res.Erased++
		}
	}
	res.EraseTime = time.Since(start)

	for _, k := range toErase {
		if _, err := tbl.At(k); !errors.Is(err, hashtbl.ErrKeyNotFound) {
			res.Missing++
		}
	}

	res.Stats = tbl.Stats()
	log.Infof("workload done: %d inserted, %d erased, %d rehashes", res.Inserted, res.Erased, res.Stats.Rehashes)

	return res, nil
}

type bar struct {
	state *pbar.ProgressBarState
}

func newBar(out io.Writer, label string, total int64) *bar {
	if out == nil {
		return &bar{}
	}
	return &bar{state: pbar.NewProgressBarState(out, label, total)}
}

func (b *bar) update(done int64, buckets int) {
	if b.state == nil {
		return
	}
	b.state.Done = done
	b.state.Buckets = buckets
	b.state.Render(false)
}

func (b *bar) finish() {
	if b.state != nil {
		b.state.Finish()
	}
}
