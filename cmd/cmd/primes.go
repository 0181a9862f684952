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
	"strconv"

	"github.com/imns1ght/data-structures/pkg/hashtbl"
	"github.com/spf13/cobra"
)

func DefinePrimesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "primes <buckets>",
		Short:        "Print the bucket counts a table starting at <buckets> grows through",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunPrimes,
	}

	cmd.Flags().Int("steps", 8, "number of growth steps to print")
	return cmd
}

func RunPrimes(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid bucket count %q", args[0])
	}
	steps, _ := cmd.Flags().GetInt("steps")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "next prime: %d\n", hashtbl.NextPrime(n))

	size := n
	fmt.Fprint(out, size)
	for range steps {
		size = hashtbl.NextPrime(2 * size)
		fmt.Fprintf(out, " -> %d", size)
	}
	fmt.Fprintln(out)
	return nil
}
