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
package hashtbl_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/imns1ght/data-structures/internal/logger"
	"github.com/imns1ght/data-structures/pkg/hashtbl"
	"github.com/stretchr/testify/require"
)

func TestInsertRetrieve(t *testing.T) {
	tbl := hashtbl.New[string, int](0, hashtbl.StringHash)
	require.True(t, tbl.Empty())
	require.Equal(t, hashtbl.DefaultSize, tbl.BucketCount())

	for i := range 1000 {
		key := fmt.Sprintf("key-%d", i)
		require.True(t, tbl.Insert(key, i))

		var v int
		require.True(t, tbl.Retrieve(key, &v))
		require.Equal(t, i, v)
		require.Equal(t, i+1, tbl.Size())
	}
	require.False(t, tbl.Empty())
}

func TestInsertOverwrite(t *testing.T) {
	tbl := hashtbl.New[string, string](0, hashtbl.Murmur3String)

	require.True(t, tbl.Insert("k", "first"))
	require.False(t, tbl.Insert("k", "second"))
	require.Equal(t, 1, tbl.Size())

	v, ok := tbl.Get("k")
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestErase(t *testing.T) {
	tbl := hashtbl.New[int, int](0, hashtbl.IntHash[int])
	for i := range 50 {
		tbl.Insert(i, i*i)
	}

	require.True(t, tbl.Erase(7))
	require.Equal(t, 49, tbl.Size())

	var v int
	require.False(t, tbl.Retrieve(7, &v))

	require.False(t, tbl.Erase(7))
	require.False(t, tbl.Erase(1000))
	require.Equal(t, 49, tbl.Size())

	for i := range 50 {
		if i == 7 {
			continue
		}
		require.True(t, tbl.Retrieve(i, &v))
		require.Equal(t, i*i, v)
	}
}

func TestEraseWithinChain(t *testing.T) {
	// 1, 12 and 23 share bucket 1 of 11.
	tbl := hashtbl.New[int, string](11, hashtbl.IdentityHash[int])
	tbl.Insert(1, "a")
	tbl.Insert(12, "b")
	tbl.Insert(23, "c")
	require.Equal(t, 3, tbl.Count(1))

	require.True(t, tbl.Erase(12))
	require.Equal(t, 2, tbl.Count(1))

	require.True(t, tbl.Erase(23))
	require.True(t, tbl.Erase(1))
	require.Equal(t, 0, tbl.Count(1))
	require.True(t, tbl.Empty())
}

func TestGrowthKeepsPrimeBuckets(t *testing.T) {
	tbl := hashtbl.New[int, int](hashtbl.DefaultSize, hashtbl.IntHash[int])

	rng := rand.New(rand.NewSource(42))
	for range 5000 {
		tbl.Insert(rng.Int(), 0)

		require.True(t, hashtbl.IsPrime(tbl.BucketCount()))
		require.Less(t, tbl.LoadFactor(), 1.0)
	}
}

func TestRehashPreservesValues(t *testing.T) {
	tbl := hashtbl.New[string, int](11, hashtbl.StringHash)
	for i := range 12 {
		tbl.Insert(fmt.Sprintf("acct-%02d", i), i*100)
	}

	require.Equal(t, 23, tbl.BucketCount())
	require.GreaterOrEqual(t, tbl.BucketCount(), 22)
	require.True(t, hashtbl.IsPrime(tbl.BucketCount()))
	require.Equal(t, 1, tbl.Stats().Rehashes)

	for i := range 12 {
		var v int
		require.True(t, tbl.Retrieve(fmt.Sprintf("acct-%02d", i), &v))
		require.Equal(t, i*100, v)
	}
}

func TestIndexDoesNotGrow(t *testing.T) {
	tbl := hashtbl.New[int, int](11, hashtbl.IdentityHash[int])
	for i := range 10 {
		tbl.Insert(i, i)
	}
	require.Equal(t, 11, tbl.BucketCount())

	// Insert would rehash at this point; Index must not.
	v := tbl.Index(100)
	require.Equal(t, 0, *v)
	require.Equal(t, 11, tbl.Size())
	require.Equal(t, 11, tbl.BucketCount())

	*v = 7
	var got int
	require.True(t, tbl.Retrieve(100, &got))
	require.Equal(t, 7, got)

	// Existing keys are returned without inserting.
	require.Equal(t, 3, *tbl.Index(3))
	require.Equal(t, 11, tbl.Size())

	// The next Insert of a new key catches up.
	require.True(t, tbl.Insert(200, 1))
	require.Equal(t, 23, tbl.BucketCount())
	require.Equal(t, 12, tbl.Size())
}

func TestInsertAfterIndexOvershootGrowsOnce(t *testing.T) {
	tbl := hashtbl.New[int, int](3, hashtbl.IdentityHash[int])
	for i := range 10 {
		tbl.Index(i)
	}
	require.Equal(t, 3, tbl.BucketCount())

	// A single rehash to NextPrime(2*3), even though the load stays above 1.
	require.True(t, tbl.Insert(10, 10))
	require.Equal(t, 7, tbl.BucketCount())
	require.Equal(t, 11, tbl.Size())
	require.GreaterOrEqual(t, tbl.LoadFactor(), 1.0)
	require.Equal(t, 1, tbl.Stats().Rehashes)

	for i := range 11 {
		_, ok := tbl.Get(i)
		require.True(t, ok)
	}
}

func TestIndexPointerSurvivesRehash(t *testing.T) {
	tbl := hashtbl.New[int, int](3, hashtbl.IdentityHash[int])
	p := tbl.Index(1)
	*p = 10

	for i := 2; i < 20; i++ {
		tbl.Insert(i, i)
	}
	require.Greater(t, tbl.BucketCount(), 3)

	*p = 11
	v, ok := tbl.Get(1)
	require.True(t, ok)
	require.Equal(t, 11, v)
}

func TestCountIsChainLength(t *testing.T) {
	tbl := hashtbl.New[int, string](11, hashtbl.IdentityHash[int])
	tbl.Insert(3, "three")
	tbl.Insert(14, "fourteen")

	require.Equal(t, 3%11, 14%11)
	require.Equal(t, 2, tbl.Count(3))
	require.Equal(t, 2, tbl.Count(14))

	// An absent key reports the chain at its address as well.
	require.Equal(t, 2, tbl.Count(25))
	require.Equal(t, 0, tbl.Count(4))
}

func TestAt(t *testing.T) {
	tbl := hashtbl.New[string, int](0, hashtbl.StringHash)
	tbl.Insert("alice", 10)

	_, err := tbl.At("bob")
	require.ErrorIs(t, err, hashtbl.ErrKeyNotFound)
	require.Contains(t, err.Error(), "bob")
	require.Equal(t, 1, tbl.Size())

	p, err := tbl.At("alice")
	require.NoError(t, err)
	*p += 5

	var v int
	require.True(t, tbl.Retrieve("alice", &v))
	require.Equal(t, 15, v)
}

func TestRetrieveMissLeavesOutput(t *testing.T) {
	tbl := hashtbl.New[string, int](0, hashtbl.StringHash)
	tbl.Insert("a", 1)

	out := 42
	require.False(t, tbl.Retrieve("b", &out))
	require.Equal(t, 42, out)
}

func TestFromEntries(t *testing.T) {
	tbl := hashtbl.FromEntries(hashtbl.StringHash,
		hashtbl.Entry[string, int]{Key: "a", Value: 1},
		hashtbl.Entry[string, int]{Key: "b", Value: 2},
		hashtbl.Entry[string, int]{Key: "c", Value: 3},
		hashtbl.Entry[string, int]{Key: "a", Value: 4},
	)

	// Sized to the list length, not rounded to a prime.
	require.Equal(t, 4, tbl.BucketCount())
	require.Equal(t, 3, tbl.Size())

	v, ok := tbl.Get("a")
	require.True(t, ok)
	require.Equal(t, 4, v)
}

func TestFromEntriesGrows(t *testing.T) {
	var entries []hashtbl.Entry[int, int]
	for i := range 5 {
		entries = append(entries, hashtbl.Entry[int, int]{Key: i, Value: -i})
	}

	tbl := hashtbl.FromEntries(hashtbl.IdentityHash[int], entries...)
	require.Equal(t, 5, tbl.Size())
	require.Equal(t, 11, tbl.BucketCount())
}

func TestFromEntriesEmpty(t *testing.T) {
	tbl := hashtbl.FromEntries[string, int](hashtbl.StringHash)
	require.Equal(t, 0, tbl.BucketCount())
	require.Equal(t, 0, tbl.Count("x"))
	require.False(t, tbl.Erase("x"))

	_, ok := tbl.Get("x")
	require.False(t, ok)

	require.True(t, tbl.Insert("x", 1))
	require.Equal(t, hashtbl.DefaultSize, tbl.BucketCount())
}

func TestClear(t *testing.T) {
	tbl := hashtbl.New[int, int](0, hashtbl.IntHash[int])
	for i := range 30 {
		tbl.Insert(i, i)
	}

	tbl.Clear()
	require.True(t, tbl.Empty())
	require.Equal(t, 0, tbl.Size())
	require.Equal(t, 0, tbl.BucketCount())
	require.Equal(t, 0.0, tbl.LoadFactor())

	_, err := tbl.At(1)
	require.ErrorIs(t, err, hashtbl.ErrKeyNotFound)

	*tbl.Index(5) = 50
	require.Equal(t, hashtbl.DefaultSize, tbl.BucketCount())
	require.Equal(t, 1, tbl.Size())
}

func TestClone(t *testing.T) {
	tbl := hashtbl.New[string, int](0, hashtbl.StringHash)
	for i := range 20 {
		tbl.Insert(fmt.Sprint(i), i)
	}

	c := tbl.Clone()
	require.Equal(t, tbl.Size(), c.Size())
	require.Equal(t, tbl.BucketCount(), c.BucketCount())
	require.Equal(t, tbl.String(), c.String())

	c.Insert("0", 100)
	c.Erase("1")
	c.Insert("new", 1)

	v, _ := tbl.Get("0")
	require.Equal(t, 0, v)
	_, ok := tbl.Get("1")
	require.True(t, ok)
	_, ok = tbl.Get("new")
	require.False(t, ok)
	require.Equal(t, 20, tbl.Size())
}

func TestAssign(t *testing.T) {
	tbl := hashtbl.New[string, int](0, hashtbl.StringHash)
	tbl.Insert("old", 1)

	tbl.Assign(
		hashtbl.Entry[string, int]{Key: "x", Value: 1},
		hashtbl.Entry[string, int]{Key: "y", Value: 2},
		hashtbl.Entry[string, int]{Key: "z", Value: 3},
	)

	require.Equal(t, 3, tbl.Size())
	_, ok := tbl.Get("old")
	require.False(t, ok)

	// 3 entries in 3 buckets triggers a rehash on the last insert.
	require.Equal(t, 7, tbl.BucketCount())
}

func TestBytesKeys(t *testing.T) {
	tbl := hashtbl.NewFunc[[]byte, int](0, hashtbl.BytesHash, bytes.Equal)

	tbl.Insert([]byte("abc"), 1)
	require.False(t, tbl.Insert([]byte("abc"), 2))

	v, ok := tbl.Get([]byte("abc"))
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestRange(t *testing.T) {
	tbl := hashtbl.New[int, int](0, hashtbl.IntHash[int])
	for i := 1; i <= 100; i++ {
		tbl.Insert(i, i)
	}

	sum := 0
	tbl.Range(func(_ int, v *int) bool {
		sum += *v
		*v = 0
		return true
	})
	require.Equal(t, 5050, sum)

	v, _ := tbl.Get(50)
	require.Equal(t, 0, v)

	visited := 0
	tbl.Range(func(int, *int) bool {
		visited++
		return visited < 10
	})
	require.Equal(t, 10, visited)
}

func TestStats(t *testing.T) {
	tbl := hashtbl.New[int, int](11, hashtbl.IdentityHash[int])
	tbl.Insert(0, 0)
	tbl.Insert(11, 0)
	tbl.Insert(22, 0)

	s := tbl.Stats()
	require.Equal(t, hashtbl.Stats{
		Size:         3,
		Buckets:      11,
		EmptyBuckets: 10,
		LongestChain: 3,
		LoadFactor:   3.0 / 11.0,
	}, s)
}

func TestDump(t *testing.T) {
	tbl := hashtbl.New[int, string](3, hashtbl.IdentityHash[int])
	tbl.Insert(0, "a")
	tbl.Insert(3, "b")

	require.Equal(t, "[0]\n>>>b\n\n>>>a\n\n\n[1]\n\n[2]\n\n", tbl.String())
}

func TestRehashIsLogged(t *testing.T) {
	var buf bytes.Buffer

	tbl := hashtbl.New[int, int](11, hashtbl.IdentityHash[int])
	tbl.SetLogger(logger.New(&buf, logger.DebugLevel))
	for i := range 11 {
		tbl.Insert(i, i)
	}
	require.True(t, strings.Contains(buf.String(), "rehash: 11 -> 23 buckets"), buf.String())

	buf.Reset()
	quiet := hashtbl.New[int, int](11, hashtbl.IdentityHash[int])
	quiet.SetLogger(logger.New(&buf, logger.InfoLevel))
	for i := range 11 {
		quiet.Insert(i, i)
	}
	require.Equal(t, 23, quiet.BucketCount())
	require.Empty(t, buf.String())
}

func TestRandomOpsAgainstMap(t *testing.T) {
	tbl := hashtbl.New[int, int](1, hashtbl.IntHash[int])
	ref := make(map[int]int)

	rng := rand.New(rand.NewSource(7))
	for range 20000 {
		key := rng.Intn(500)

		switch rng.Intn(4) {
		case 0, 1:
			_, present := ref[key]
			require.Equal(t, !present, tbl.Insert(key, key*3))
			ref[key] = key * 3
		case 2:
			_, present := ref[key]
			require.Equal(t, present, tbl.Erase(key))
			delete(ref, key)
		case 3:
			v, ok := tbl.Get(key)
			rv, rok := ref[key]
			require.Equal(t, rok, ok)
			require.Equal(t, rv, v)
		}
		require.Equal(t, len(ref), tbl.Size())
	}
}
