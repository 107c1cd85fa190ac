package rankset

import (
	"fmt"

	"github.com/go-rankset/rankset/lib/infra"
)

// rsNode is one stored key plus its subtree bookkeeping. Every absent
// link points at the owning set's sentinel, never at a Go nil, so the
// balancing engine can read color and size branch-free.
type rsNode[K infra.OrderedKey] struct {
	parent *rsNode[K]
	left   *rsNode[K]
	right  *rsNode[K]
	size   int64
	key    K
	color  RBColor
}

func (node *rsNode[K]) isRed() bool {
	return node.color == Red
}

func (node *rsNode[K]) isBlack() bool {
	return node.color == Black
}

func (node *rsNode[K]) str() string {
	c := byte('r')
	if node.color == Black {
		c = 'b'
	}
	return fmt.Sprintf("(%v,%d,%c)", node.key, node.size, c)
}
