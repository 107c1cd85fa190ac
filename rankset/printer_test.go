package rankset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinter_Empty(t *testing.T) {
	set := New[int]()
	require.Equal(t, "(empty_tree)", set.String())
}

func TestPrinter_SingleNode(t *testing.T) {
	set := New[int]()
	set.Insert(5)
	require.Equal(t, "(5,1,b)\n(key,size,color)", set.String())
}

func TestPrinter_SmallTree(t *testing.T) {
	set := New[int]()
	set.Insert(1)
	set.Insert(2)
	set.Insert(3)
	require.Equal(t, "      (3,1,r)\n(2,3,b)\n      (1,1,r)\n(key,size,color)", set.String())
}

func TestPrinter_EveryNodeRendered(t *testing.T) {
	set := New[int]()
	keys := []int{5, 13, 1, 123, -1, 9, 12, 7, 14}
	for _, k := range keys {
		set.Insert(k)
	}

	out := set.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(keys)+1)
	require.Equal(t, "(key,size,color)", lines[len(lines)-1])

	for _, k := range keys {
		node := set.Find(k).node
		require.Contains(t, out, fmt.Sprintf("(%d,%d,", k, node.size))
	}
}

func TestPrinter_StableAcrossReads(t *testing.T) {
	set := New[int]()
	for i := 0; i < 64; i++ {
		set.Insert(i * 3)
	}
	require.Equal(t, set.String(), set.String())
}
