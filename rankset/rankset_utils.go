package rankset

import (
	"errors"

	"github.com/go-rankset/rankset/lib/infra"
)

// rankset rule validation utilities.
// Recursive on purpose: they are test collaborators, never on the
// operation hot path.

// OrderViolationValidate checks the binary-search-tree order: an
// in-order walk yields keys that strictly increase under the set's
// ordering predicate.
func OrderViolationValidate[K infra.OrderedKey](set *RankSet[K]) error {
	var prev *rsNode[K]
	var walk func(x *rsNode[K]) error
	walk = func(x *rsNode[K]) error {
		if x == set.niln {
			return nil
		}
		if err := walk(x.left); err != nil {
			return err
		}
		if prev != nil && !set.keyLess(prev.key, x.key) {
			return errors.New("rankset order violation")
		}
		prev = x
		return walk(x.right)
	}
	return walk(set.root)
}

// RedViolationValidate checks that the root is black and no red node
// has a red child.
func RedViolationValidate[K infra.OrderedKey](set *RankSet[K]) error {
	if set.root.isRed() {
		return errors.New("rankset red violation: red root")
	}
	var walk func(x *rsNode[K]) error
	walk = func(x *rsNode[K]) error {
		if x == set.niln {
			return nil
		}
		if x.isRed() && (x.left.isRed() || x.right.isRed()) {
			return errors.New("rankset red violation")
		}
		if err := walk(x.left); err != nil {
			return err
		}
		return walk(x.right)
	}
	return walk(set.root)
}

// BlackViolationValidate checks that every path from the root to a
// sentinel passes through the same number of black nodes.
func BlackViolationValidate[K infra.OrderedKey](set *RankSet[K]) error {
	var walk func(x *rsNode[K]) (int, error)
	walk = func(x *rsNode[K]) (int, error) {
		if x == set.niln {
			return 1, nil
		}
		lh, err := walk(x.left)
		if err != nil {
			return 0, err
		}
		rh, err := walk(x.right)
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, errors.New("rankset black violation")
		}
		if x.isBlack() {
			lh++
		}
		return lh, nil
	}
	_, err := walk(set.root)
	return err
}

// SizeViolationValidate checks the order-statistics augmentation:
// every node's size equals 1 + left.size + right.size, the sentinel
// contributing 0.
func SizeViolationValidate[K infra.OrderedKey](set *RankSet[K]) error {
	var walk func(x *rsNode[K]) (int64, error)
	walk = func(x *rsNode[K]) (int64, error) {
		if x == set.niln {
			return 0, nil
		}
		ls, err := walk(x.left)
		if err != nil {
			return 0, err
		}
		rs, err := walk(x.right)
		if err != nil {
			return 0, err
		}
		if x.size != ls+rs+1 {
			return 0, errors.New("rankset size violation")
		}
		return x.size, nil
	}
	_, err := walk(set.root)
	return err
}

// SentinelViolationValidate checks the sentinel postconditions every
// public operation must restore: black, size 0, self-linked parent.
func SentinelViolationValidate[K infra.OrderedKey](set *RankSet[K]) error {
	n := set.niln
	if n.color != Black {
		return errors.New("rankset sentinel violation: not black")
	}
	if n.size != 0 {
		return errors.New("rankset sentinel violation: non-zero size")
	}
	if n.parent != n {
		return errors.New("rankset sentinel violation: parent not self")
	}
	if n.left != n || n.right != n {
		return errors.New("rankset sentinel violation: child link not self")
	}
	return nil
}
