package rankset

import "github.com/go-rankset/rankset/lib/infra"

// Iterator is a non-owning cursor over one set's node graph,
// consistent with in-order key sequence. Two iterators are equal (==)
// exactly when they reference the same node of the same set. An
// iterator stays valid across mutations until the node it references
// is erased or the whole set is cleared, though the key's rank may
// change underneath it.
type Iterator[K infra.OrderedKey] struct {
	set  *RankSet[K]
	node *rsNode[K]
}

// Valid reports whether the iterator references a stored key, i.e. is
// not the end iterator.
func (it Iterator[K]) Valid() bool {
	return it.set != nil && it.node != it.set.niln
}

// Key returns the referenced key. Dereferencing the end iterator is a
// caller error.
func (it Iterator[K]) Key() K {
	if !it.Valid() {
		panic( /* debug assertion */ "[rankset] dereference of end iterator")
	}
	return it.node.key
}

// Next returns the position of the next key in sorted order, or the
// end iterator past the maximum. Next on the end iterator stays at the
// end.
func (it Iterator[K]) Next() Iterator[K] {
	return Iterator[K]{set: it.set, node: it.set.successor(it.node)}
}

// Prev returns the position of the previous key in sorted order, or
// the end iterator before the minimum.
func (it Iterator[K]) Prev() Iterator[K] {
	return Iterator[K]{set: it.set, node: it.set.predecessor(it.node)}
}
