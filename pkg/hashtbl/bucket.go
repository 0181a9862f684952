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

// bucket is a single collision chain. New entries are prepended, so the
// most recently inserted entry is always at the head.
type bucket[K, V any] struct {
	head *node[K, V]
	len  int
}

type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// push prepends n to the chain.
func (b *bucket[K, V]) push(n *node[K, V]) {
	n.next = b.head
	b.head = n
	b.len++
}

// find returns the node whose key matches key, or nil.
func (b *bucket[K, V]) find(key K, equal EqualFunc[K]) *node[K, V] {
	for n := b.head; n != nil; n = n.next {
		if equal(n.key, key) {
			return n
		}
	}
	return nil
}

// remove unlinks the node matching key. The predecessor cursor walks in
// lockstep with the current one so the unlink is O(1) once found.
func (b *bucket[K, V]) remove(key K, equal EqualFunc[K]) bool {
	var prev *node[K, V]
	for curr := b.head; curr != nil; prev, curr = curr, curr.next {
		if !equal(curr.key, key) {
			continue
		}

		if prev == nil {
			b.head = curr.next
		} else {
			prev.next = curr.next
		}
		curr.next = nil
		b.len--
		return true
	}
	return false
}

// clone returns a deep copy of the chain preserving its order.
func (b *bucket[K, V]) clone() bucket[K, V] {
	out := bucket[K, V]{len: b.len}

	tail := &out.head
	for n := b.head; n != nil; n = n.next {
		*tail = &node[K, V]{key: n.key, value: n.value}
		tail = &(*tail).next
	}
	return out
}
