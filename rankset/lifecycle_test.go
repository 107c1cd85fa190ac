package rankset

import (
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func collect[K int | uint64 | string](set *RankSet[K]) []K {
	out := make([]K, 0, set.Len())
	set.Foreach(func(idx int64, key K) bool {
		out = append(out, key)
		return true
	})
	return out
}

func TestRankSet_CloneIsDeep(t *testing.T) {
	src := New[int]()
	keys := lo.Shuffle(lo.RangeFrom(1, 500))
	for _, k := range keys {
		src.Insert(k)
	}

	dst := src.Clone()
	requireValid(t, dst)
	require.Equal(t, src.Len(), dst.Len())
	require.Equal(t, collect(src), collect(dst))

	// Mutating the clone never leaks into the source, and vice versa.
	dst.Erase(250)
	dst.Insert(10_000)
	require.Equal(t, int64(500), src.Len())
	require.Equal(t, 250, src.Find(250).Key())
	require.Equal(t, src.End(), src.Find(10_000))
	require.Equal(t, int64(249), src.OrderOfKey(250))

	src.Erase(1)
	require.Equal(t, int64(500), dst.Len())
	require.Equal(t, 1, dst.Find(1).Key())
	requireValid(t, src)
	requireValid(t, dst)
}

func TestRankSet_CloneEmpty(t *testing.T) {
	src := New[int]()
	dst := src.Clone()
	require.True(t, dst.Empty())
	dst.Insert(1)
	require.True(t, src.Empty())
}

func TestRankSet_CloneKeepsOrdering(t *testing.T) {
	src := New[int](WithRankSetDesc[int]())
	for i := 1; i <= 16; i++ {
		src.Insert(i)
	}
	dst := src.Clone()
	require.Equal(t, 16, dst.Begin().Key())
	require.Equal(t, int64(0), dst.OrderOfKey(16))
}

func TestRankSet_Move(t *testing.T) {
	src := New[uint64]()
	keys := []uint64{12, 505, 30, 1000, 10000, 100}
	for _, k := range keys {
		src.Insert(k)
	}

	dst := src.Move()
	require.Equal(t, int64(0), src.Len())
	require.True(t, src.Empty())
	require.Equal(t, src.End(), src.Begin())

	require.Equal(t, int64(6), dst.Len())
	sorted := make([]uint64, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	require.Equal(t, sorted, collect(dst))
	require.Equal(t, int64(3), dst.OrderOfKey(505))
	requireValid(t, dst)

	// The emptied source stays usable.
	src.Insert(1)
	require.Equal(t, int64(1), src.Len())
	require.Equal(t, int64(6), dst.Len())
	requireValid(t, src)
}

func TestRankSet_ClearAndReuse(t *testing.T) {
	set := New[int]()
	for i := 0; i < 1000; i++ {
		set.Insert(i)
	}
	set.Clear()
	require.True(t, set.Empty())
	require.Equal(t, int64(0), set.Len())
	require.Equal(t, set.End(), set.Begin())
	require.NoError(t, SentinelViolationValidate(set))

	for i := 0; i < 100; i++ {
		set.Insert(i)
	}
	require.Equal(t, int64(100), set.Len())
	requireValid(t, set)

	set.Clear()
	set.Clear() // idempotent on an empty set
	require.True(t, set.Empty())
}
