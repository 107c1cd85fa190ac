package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedKeyLessDerivedEquivalence(t *testing.T) {
	// Equivalence is always derived from the predicate: two keys are
	// equivalent iff neither sorts before the other.
	less := OrderedKeyLess[string](func(i, j string) bool { return len(i) < len(j) })
	equal := func(i, j string) bool { return !less(i, j) && !less(j, i) }

	assert.True(t, equal("abc", "xyz"))
	assert.True(t, equal("a", "a"))
	assert.False(t, equal("ab", "abc"))
	assert.True(t, less("ab", "abc"))
	assert.False(t, less("abc", "ab"))
}
