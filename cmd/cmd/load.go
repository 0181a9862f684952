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

	"github.com/imns1ght/data-structures/internal/loader"
	osutils "github.com/imns1ght/data-structures/pkg/util/os"
	"github.com/spf13/cobra"
)

func DefineLoadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <accounts.csv|dir> ...",
		Short: "Load bank accounts from a CSV file into a hash table",
		Long: `The 'load' command reads "name,bank,agency,number,balance" records into a table
keyed by (name, bank, agency, number). Directories are scanned recursively for .csv files;
accounts found in later files replace earlier ones. It reports the resulting size and bucket count,
and can dump every bucket or look up single accounts.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunLoad,
	}

	cmd.Flags().Int("buckets", 0, "initial bucket count (0 selects the default)")
	cmd.Flags().Bool("dump", false, "print the content of every bucket")
	cmd.Flags().StringArray("find", nil, "look up an account given as name,bank,agency,number")

	return cmd
}

func RunLoad(cmd *cobra.Command, args []string) error {
	buckets, _ := cmd.Flags().GetInt("buckets")
	dump, _ := cmd.Flags().GetBool("dump")
	finds, _ := cmd.Flags().GetStringArray("find")

	var paths []string
	for _, arg := range args {
		files, err := osutils.ListFiles(arg, ".csv")
		if err != nil {
			return err
		}
		paths = append(paths, files...)
	}

	tbl, err := loader.LoadFiles(paths, loader.Options{
		Buckets: buckets,
		Logger:  newLogger(cmd),
	})
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "accounts: %d, buckets: %d\n", tbl.Size(), tbl.BucketCount())

	if dump {
		if err := tbl.Dump(out); err != nil {
			return err
		}
	}

	for _, s := range finds {
		key, err := loader.ParseKey(s)
		if err != nil {
			return err
		}

		acc, err := tbl.At(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s:%s", key, acc)
	}
	return nil
}
