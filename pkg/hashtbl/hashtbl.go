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
	"errors"
	"fmt"

	"github.com/imns1ght/data-structures/internal/logger"
)

// DefaultSize is the bucket count used when no size hint is given.
const DefaultSize = 11

// maxLoadFactor is compared against count/buckets using integer division,
// so growth happens as soon as the table holds one entry per bucket.
const maxLoadFactor = 1

// ErrKeyNotFound is returned by At when no entry matches the key.
var ErrKeyNotFound = errors.New("key not found")

// HashFunc maps a key to a hash value. The bucket address of a key is
// its hash modulo the current bucket count.
type HashFunc[K any] func(K) uint64

// EqualFunc decides whether two keys identify the same entry.
type EqualFunc[K any] func(a, b K) bool

// Entry is a key/value pair, used for bulk construction.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// HashTbl is an associative container resolving collisions by separate
// chaining. Whenever Insert adds a new key and the table holds at least
// one entry per bucket, the bucket array is rebuilt with the smallest
// prime bucket count >= twice the current one.
//
// HashTbl is not safe for concurrent use.
type HashTbl[K, V any] struct {
	buckets  []bucket[K, V]
	count    int
	rehashes int

	hash  HashFunc[K]
	equal EqualFunc[K]
	log   *logger.Logger
}

// New returns a table with size buckets whose keys are compared with ==.
// A non-positive size selects DefaultSize. The size is used as is and is
// not rounded to a prime.
func New[K comparable, V any](size int, hash HashFunc[K]) *HashTbl[K, V] {
	return NewFunc[K, V](size, hash, equalComparable[K])
}

// NewFunc is like New but compares keys with equal.
func NewFunc[K, V any](size int, hash HashFunc[K], equal EqualFunc[K]) *HashTbl[K, V] {
	if size <= 0 {
		size = DefaultSize
	}
	return newTable[K, V](size, hash, equal)
}

// FromEntries builds a table whose bucket array is sized exactly to the
// number of entries, then inserts them in order. When a key appears more
// than once the last value wins.
func FromEntries[K comparable, V any](hash HashFunc[K], entries ...Entry[K, V]) *HashTbl[K, V] {
	return FromEntriesFunc[K, V](hash, equalComparable[K], entries...)
}

// FromEntriesFunc is like FromEntries but compares keys with equal.
func FromEntriesFunc[K, V any](hash HashFunc[K], equal EqualFunc[K], entries ...Entry[K, V]) *HashTbl[K, V] {
	t := newTable[K, V](len(entries), hash, equal)
	t.insertAll(entries)
	return t
}

func newTable[K, V any](size int, hash HashFunc[K], equal EqualFunc[K]) *HashTbl[K, V] {
	if hash == nil {
		panic("hashtbl: nil hash function")
	}
	if equal == nil {
		panic("hashtbl: nil equality function")
	}

	return &HashTbl[K, V]{
		buckets: make([]bucket[K, V], size),
		hash:    hash,
		equal:   equal,
	}
}

func equalComparable[K comparable](a, b K) bool {
	return a == b
}

// SetLogger attaches l to the table. Rehashes are reported at debug level.
func (t *HashTbl[K, V]) SetLogger(l *logger.Logger) {
	t.log = l
}

// Assign replaces the whole content of the table with entries, resizing
// the bucket array to len(entries) first.
func (t *HashTbl[K, V]) Assign(entries ...Entry[K, V]) {
	t.buckets = make([]bucket[K, V], len(entries))
	t.count = 0
	t.insertAll(entries)
}

func (t *HashTbl[K, V]) insertAll(entries []Entry[K, V]) {
	for _, e := range entries {
		t.Insert(e.Key, e.Value)
	}
}

// Clone returns a deep copy of the table. The copy shares the hash and
// equality functions and the logger, but no entries.
func (t *HashTbl[K, V]) Clone() *HashTbl[K, V] {
	c := &HashTbl[K, V]{
		buckets:  make([]bucket[K, V], len(t.buckets)),
		count:    t.count,
		rehashes: t.rehashes,
		hash:     t.hash,
		equal:    t.equal,
		log:      t.log,
	}

	for i := range t.buckets {
		c.buckets[i] = t.buckets[i].clone()
	}
	return c
}

func (t *HashTbl[K, V]) addr(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// lookup returns the bucket key belongs to, or nil when the table has
// no buckets.
func (t *HashTbl[K, V]) lookup(key K) *bucket[K, V] {
	if len(t.buckets) == 0 {
		return nil
	}
	return &t.buckets[t.addr(key)]
}

// ensureBuckets allocates DefaultSize buckets on a cleared table.
func (t *HashTbl[K, V]) ensureBuckets() {
	if len(t.buckets) == 0 {
		t.buckets = make([]bucket[K, V], DefaultSize)
	}
}

// Insert associates value with key. If key is already present its value
// is overwritten and false is returned. Otherwise a new entry is added,
// the table grows if needed, and true is returned.
func (t *HashTbl[K, V]) Insert(key K, value V) bool {
	t.ensureBuckets()

	b := &t.buckets[t.addr(key)]
	if n := b.find(key, t.equal); n != nil {
		n.value = value
		return false
	}

	b.push(&node[K, V]{key: key, value: value})
	t.count++

	if t.count/len(t.buckets) >= maxLoadFactor {
		t.rehash()
	}
	return true
}

// Index returns a pointer to the value associated with key, inserting a
// zero value first if key is absent. Unlike Insert, an insertion made
// here never grows the table.
//
// The pointer stays valid until the entry is erased or the table cleared.
func (t *HashTbl[K, V]) Index(key K) *V {
	t.ensureBuckets()

	b := &t.buckets[t.addr(key)]
	if n := b.find(key, t.equal); n != nil {
		return &n.value
	}

	n := &node[K, V]{key: key}
	b.push(n)
	t.count++

	return &n.value
}

// At returns a pointer to the value associated with key. If key is not
// present, it returns an error wrapping ErrKeyNotFound.
func (t *HashTbl[K, V]) At(key K) (*V, error) {
	if b := t.lookup(key); b != nil {
		if n := b.find(key, t.equal); n != nil {
			return &n.value, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Retrieve copies the value associated with key into out and returns
// true. When key is absent out is left untouched and false is returned.
func (t *HashTbl[K, V]) Retrieve(key K, out *V) bool {
	b := t.lookup(key)
	if b == nil {
		return false
	}

	n := b.find(key, t.equal)
	if n == nil {
		return false
	}
	*out = n.value
	return true
}

// Get is a convenience wrapper around Retrieve.
func (t *HashTbl[K, V]) Get(key K) (V, bool) {
	var v V
	ok := t.Retrieve(key, &v)
	return v, ok
}

// Erase removes the entry associated with key and reports whether it
// was present. The table never shrinks.
func (t *HashTbl[K, V]) Erase(key K) bool {
	b := t.lookup(key)
	if b == nil || !b.remove(key, t.equal) {
		return false
	}
	t.count--
	return true
}

// Count returns the length of the collision chain key maps to. This
// counts every entry sharing the key's bucket, not only the entries
// equal to key.
func (t *HashTbl[K, V]) Count(key K) int {
	b := t.lookup(key)
	if b == nil {
		return 0
	}
	return b.len
}

// Size returns the number of entries.
func (t *HashTbl[K, V]) Size() int {
	return t.count
}

// Empty reports whether the table holds no entries.
func (t *HashTbl[K, V]) Empty() bool {
	return t.count == 0
}

// Clear drops every bucket. Both the entry count and the bucket count
// become zero; the next insertion allocates DefaultSize buckets again.
func (t *HashTbl[K, V]) Clear() {
	t.buckets = nil
	t.count = 0
	t.rehashes = 0
}

// BucketCount returns the current number of buckets.
func (t *HashTbl[K, V]) BucketCount() int {
	return len(t.buckets)
}

// LoadFactor returns count/buckets, or 0 for a table without buckets.
func (t *HashTbl[K, V]) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.buckets))
}

// Range calls fn for every entry, bucket by bucket, until fn returns
// false. Values may be modified through the pointer; keys must not be
// inserted or erased during the walk.
func (t *HashTbl[K, V]) Range(fn func(key K, value *V) bool) {
	for i := range t.buckets {
		for n := t.buckets[i].head; n != nil; n = n.next {
			if !fn(n.key, &n.value) {
				return
			}
		}
	}
}

// rehash moves every entry into a fresh bucket array of
// NextPrime(2*buckets) buckets. All addresses are computed before any
// node is relinked, so a panicking HashFunc leaves the table as it was.
func (t *HashTbl[K, V]) rehash() {
	size := NextPrime(2 * len(t.buckets))

	addrs := make([]int, 0, t.count)
	for i := range t.buckets {
		for n := t.buckets[i].head; n != nil; n = n.next {
			addrs = append(addrs, int(t.hash(n.key)%uint64(size)))
		}
	}

	buckets := make([]bucket[K, V], size)

	k := 0
	for i := range t.buckets {
		n := t.buckets[i].head
		for n != nil {
			next := n.next
			buckets[addrs[k]].push(n)
			n = next
			k++
		}
	}

	old := len(t.buckets)
	t.buckets = buckets
	t.rehashes++

	if t.log != nil && t.log.Enabled(logger.DebugLevel) {
		t.log.Debugf("rehash: %d -> %d buckets, %d entries", old, size, t.count)
	}
}
