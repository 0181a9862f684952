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
package account

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Account is a bank account record.
type Account struct {
	Name    string
	Bank    int
	Agency  int
	Number  int
	Balance float32
}

// Key identifies an account: client name, bank, agency and account number.
type Key struct {
	Name   string
	Bank   int
	Agency int
	Number int
}

// Key returns the identifying fields of a.
func (a Account) Key() Key {
	return Key{
		Name:   a.Name,
		Bank:   a.Bank,
		Agency: a.Agency,
		Number: a.Number,
	}
}

// KeyHash hashes every field of k with xxhash. The name is length
// prefixed so that field boundaries cannot shift between keys.
func KeyHash(k Key) uint64 {
	var buf [8]byte

	d := xxhash.New()
	binary.LittleEndian.PutUint64(buf[:], uint64(len(k.Name)))
	d.Write(buf[:])
	d.WriteString(k.Name)

	for _, v := range [...]int{k.Bank, k.Agency, k.Number} {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%d/%d", k.Name, k.Bank, k.Agency, k.Number)
}

func (a Account) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n\tClient:\t\t%s\n", a.Name)
	fmt.Fprintf(&sb, "\tBank:\t\t%d\n", a.Bank)
	fmt.Fprintf(&sb, "\tAgency:\t\t%d\n", a.Agency)
	fmt.Fprintf(&sb, "\tAccount:\t%d\n", a.Number)
	fmt.Fprintf(&sb, "\tBalance:\t%.2f\n", a.Balance)
	return sb.String()
}
