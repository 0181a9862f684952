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
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/imns1ght/data-structures/internal/logger"
	"github.com/imns1ght/data-structures/internal/mmap"
	"github.com/imns1ght/data-structures/pkg/account"
	"github.com/imns1ght/data-structures/pkg/hashtbl"
)

// ErrMalformed is returned when a record cannot be parsed.
var ErrMalformed = errors.New("malformed account record")

// Table is a table of accounts indexed by their identifying fields.
type Table = hashtbl.HashTbl[account.Key, account.Account]

type Options struct {
	Buckets int
	Logger  *logger.Logger
}

func (opts Options) getLogger() *logger.Logger {
	if opts.Logger == nil {
		return logger.Nop()
	}
	return opts.Logger
}

func (opts Options) newTable() *Table {
	tbl := hashtbl.New[account.Key, account.Account](opts.Buckets, account.KeyHash)
	tbl.SetLogger(opts.getLogger())
	return tbl
}

// Load memory maps the CSV file at path and parses it into a new table.
func Load(path string, opts Options) (*Table, error) {
	return LoadFiles([]string{path}, opts)
}

// LoadFiles parses every file in paths, in order, into a single table.
// Accounts found in later files replace those found earlier.
func LoadFiles(paths []string, opts Options) (*Table, error) {
	tbl := opts.newTable()
	for _, path := range paths {
		if err := loadInto(tbl, path, opts.getLogger()); err != nil {
			return nil, err
		}
	}

	opts.getLogger().Debugf("loaded %d accounts into %d buckets", tbl.Size(), tbl.BucketCount())
	return tbl, nil
}

func loadInto(tbl *Table, path string, log *logger.Logger) error {
	f, err := mmap.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := parseInto(tbl, bytes.NewReader(f.Data), log.With("file", path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse reads "name,bank,agency,number,balance" records from r. Blank
// lines and lines starting with '#' are skipped, as is a leading header
// whose first field is "name". Later records for the same account
// replace earlier ones.
func Parse(r io.Reader, opts Options) (*Table, error) {
	tbl := opts.newTable()
	if err := parseInto(tbl, r, opts.getLogger()); err != nil {
		return nil, err
	}
	return tbl, nil
}

func parseInto(tbl *Table, r io.Reader, log *logger.Logger) error {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)

		if first && strings.EqualFold(rec[0], "name") {
			first = false
			continue
		}
		first = false

		a, err := parseRecord(rec)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		if !tbl.Insert(a.Key(), a) {
			log.Warnf("line %d: duplicate account %s, keeping the last one", line, a.Key())
		}
	}
}

func parseRecord(rec []string) (account.Account, error) {
	name := strings.TrimSpace(rec[0])
	if name == "" {
		return account.Account{}, fmt.Errorf("%w: empty client name", ErrMalformed)
	}

	var nums [3]int
	for i, field := range []string{"bank", "agency", "number"} {
		v, err := strconv.Atoi(strings.TrimSpace(rec[i+1]))
		if err != nil {
			return account.Account{}, fmt.Errorf("%w: invalid %s %q", ErrMalformed, field, rec[i+1])
		}
		nums[i] = v
	}

	balance, err := strconv.ParseFloat(strings.TrimSpace(rec[4]), 32)
	if err != nil {
		return account.Account{}, fmt.Errorf("%w: invalid balance %q", ErrMalformed, rec[4])
	}

	return account.Account{
		Name:    name,
		Bank:    nums[0],
		Agency:  nums[1],
		Number:  nums[2],
		Balance: float32(balance),
	}, nil
}

// ParseKey parses "name,bank,agency,number" into an account key.
func ParseKey(s string) (account.Key, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return account.Key{}, fmt.Errorf("%w: expected name,bank,agency,number, got %q", ErrMalformed, s)
	}

	a, err := parseRecord(append(parts, "0"))
	if err != nil {
		return account.Key{}, err
	}
	return a.Key(), nil
}
