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
package hashtbl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Stats summarizes the shape of a table.
type Stats struct {
	Size         int
	Buckets      int
	EmptyBuckets int
	LongestChain int
	Rehashes     int
	LoadFactor   float64
}

// Stats walks the bucket array and returns its current shape.
func (t *HashTbl[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.count,
		Buckets:    len(t.buckets),
		Rehashes:   t.rehashes,
		LoadFactor: t.LoadFactor(),
	}

	for i := range t.buckets {
		l := t.buckets[i].len
		if l == 0 {
			s.EmptyBuckets++
		}
		s.LongestChain = max(s.LongestChain, l)
	}
	return s
}

// Dump writes a human readable rendering of the table to w: every bucket
// index on its own line, followed by the values chained in that bucket.
// The format is meant for debugging and is not stable.
func (t *HashTbl[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range t.buckets {
		fmt.Fprintf(bw, "[%d]\n", i)

		for n := t.buckets[i].head; n != nil; n = n.next {
			fmt.Fprintf(bw, ">>>%v\n\n", n.value)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func (t *HashTbl[K, V]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}
