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
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/imns1ght/data-structures/internal/bench"
	"github.com/imns1ght/data-structures/pkg/hashtbl"
	"github.com/imns1ght/data-structures/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run an insert/lookup/erase workload and report table statistics",
		Long: `The 'bench' command inserts a number of distinct string keys in random order,
looks every key up, erases a share of them and then prints how the bucket array evolved:
final bucket count, load factor, number of rehashes and the longest collision chain.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunBench,
	}

	cmd.Flags().String("keys", "100K", "number of keys to insert (accepts K, M, G suffixes)")
	cmd.Flags().Int("buckets", hashtbl.DefaultSize, "initial bucket count")
	cmd.Flags().String("hash", "xxhash", "hash function (xxhash, murmur3)")
	cmd.Flags().Float64("erase", 0.1, "share of keys to erase after insertion")
	cmd.Flags().Int64("seed", 1, "seed for the key order")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")

	return cmd
}

func RunBench(cmd *cobra.Command, args []string) error {
	opts, err := parseBenchOptions(cmd)
	if err != nil {
		return err
	}

	res, err := bench.Run(opts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "inserted\t%s (%v)\n", format.FormatCount(res.Inserted), res.InsertTime)
	fmt.Fprintf(w, "looked up\t%s (%v)\n", format.FormatCount(opts.Keys), res.LookupTime)
	fmt.Fprintf(w, "erased\t%s (%v)\n", format.FormatCount(res.Erased), res.EraseTime)
	fmt.Fprintf(w, "mismatches\t%d\n", res.Missing)
	fmt.Fprintf(w, "size\t%d\n", res.Stats.Size)
	fmt.Fprintf(w, "buckets\t%d\n", res.Stats.Buckets)
	fmt.Fprintf(w, "empty buckets\t%d\n", res.Stats.EmptyBuckets)
	fmt.Fprintf(w, "longest chain\t%d\n", res.Stats.LongestChain)
	fmt.Fprintf(w, "load factor\t%.3f\n", res.Stats.LoadFactor)
	fmt.Fprintf(w, "rehashes\t%d\n", res.Stats.Rehashes)
	if err := w.Flush(); err != nil {
		return err
	}

	if res.Missing > 0 {
		return fmt.Errorf("%d lookups returned an unexpected result", res.Missing)
	}
	return nil
}

func parseBenchOptions(cmd *cobra.Command) (bench.Options, error) {
	keysStr, _ := cmd.Flags().GetString("keys")
	keys, err := format.ParseCount(keysStr)
	if err != nil {
		return bench.Options{}, fmt.Errorf("invalid --keys: %w", err)
	}

	buckets, _ := cmd.Flags().GetInt("buckets")
	hash, _ := cmd.Flags().GetString("hash")
	erase, _ := cmd.Flags().GetFloat64("erase")
	seed, _ := cmd.Flags().GetInt64("seed")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	opts := bench.Options{
		Keys:       keys,
		Buckets:    buckets,
		Hash:       hash,
		EraseRatio: erase,
		Seed:       seed,
		Logger:     newLogger(cmd),
	}
	if !noProgress {
		opts.Progress = cmd.ErrOrStderr()
	}
	return opts, nil
}
