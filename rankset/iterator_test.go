package rankset

import (
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestIterator_ForwardBackward(t *testing.T) {
	set := New[int]()
	keys := lo.Shuffle([]int{5, 13, 1, 123, -1, 9, 12, 7, 14})
	for _, k := range keys {
		set.Insert(k)
	}
	sort.Ints(keys)

	forward := make([]int, 0, len(keys))
	for it := set.Begin(); it != set.End(); it = it.Next() {
		forward = append(forward, it.Key())
	}
	require.Equal(t, keys, forward)

	backward := make([]int, 0, len(keys))
	for it := set.Max(); it.Valid(); it = it.Prev() {
		backward = append(backward, it.Key())
	}
	require.Equal(t, lo.Reverse(forward), backward)
}

func TestIterator_EmptySet(t *testing.T) {
	set := New[int]()
	require.Equal(t, set.End(), set.Begin())
	require.Equal(t, set.End(), set.Min())
	require.Equal(t, set.End(), set.Max())
	require.False(t, set.End().Valid())
	// Walking past either end stays at the end.
	require.Equal(t, set.End(), set.End().Next())
	require.Equal(t, set.End(), set.End().Prev())
}

func TestIterator_EndDereferencePanics(t *testing.T) {
	set := New[int]()
	set.Insert(1)
	require.Panics(t, func() {
		_ = set.End().Key()
	})
}

func TestIterator_IdentityEquality(t *testing.T) {
	set := New[int]()
	set.Insert(1)
	set.Insert(2)

	require.True(t, set.Find(1) == set.Begin())
	require.True(t, set.Find(1) != set.Find(2))

	other := New[int]()
	other.Insert(1)
	other.Insert(2)
	// Same keys, different set: never the same position.
	require.True(t, set.Find(1) != other.Find(1))
	require.True(t, set.End() != other.End())
}

func TestIterator_SurvivesUnrelatedErase(t *testing.T) {
	set := New[int]()
	for i := 0; i < 100; i++ {
		set.Insert(i)
	}

	it := set.Find(50)
	require.Equal(t, int64(50), set.OrderOfKey(it.Key()))

	for i := 0; i < 50; i += 2 {
		set.Erase(i)
	}
	// The node survives; only its rank moved.
	require.Equal(t, 50, it.Key())
	require.Equal(t, int64(25), set.OrderOfKey(it.Key()))
	require.Equal(t, 51, it.Next().Key())
	require.Equal(t, 49, it.Prev().Key())
}

func TestIterator_InsertPositions(t *testing.T) {
	set := New[int]()
	it, ok := set.Insert(10)
	require.True(t, ok)
	require.Equal(t, set.Begin(), it)

	it2, ok := set.Insert(5)
	require.True(t, ok)
	require.Equal(t, set.Begin(), it2)
	require.Equal(t, it, it2.Next())
	require.Equal(t, set.End(), it.Next())
}
