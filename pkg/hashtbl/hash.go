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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Integer is the set of key types accepted by IntHash and IdentityHash.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// StringHash hashes a string key with xxhash.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes a byte slice with xxhash. Byte slices are not
// comparable, so tables keyed by them must be built with NewFunc.
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Murmur3String hashes a string key with 64-bit murmur3.
func Murmur3String(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}

// IntHash mixes the little endian representation of v through murmur3.
func IntHash[T Integer](v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return murmur3.Sum64(buf[:])
}

// IdentityHash returns v itself. Useful when the caller needs full
// control over bucket placement.
func IdentityHash[T Integer](v T) uint64 {
	return uint64(v)
}
