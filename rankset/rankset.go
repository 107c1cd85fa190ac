package rankset

import (
	"github.com/go-rankset/rankset/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// Red-black tree with an order-statistics size augmentation, after
// 'Introduction to Algorithms, Third Edition' by T. H. Cormen (ch. 13/14).
// rbtree properties:
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black. Here NIL is one shared
//   sentinel per set, so p2 reduces to "the sentinel stays black".
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// Augmentation: node.size == 1 + node.left.size + node.right.size,
// with the sentinel contributing 0. Rank queries are derived from it.

// RankSet is a size-augmented red-black tree over unique keys.
// It must be created via New; the zero value has no sentinel and is
// not usable. A RankSet is not safe for concurrent mutation, callers
// serialize access externally if they share one across goroutines.
type RankSet[K infra.OrderedKey] struct {
	root   *rsNode[K]
	niln   *rsNode[K]
	less   infra.OrderedKeyLess[K]
	isDesc bool
}

var _ OrderedSet[uint64] = (*RankSet[uint64])(nil)

type RankSetOpt[K infra.OrderedKey] func(*RankSet[K])

func WithRankSetDesc[K infra.OrderedKey]() RankSetOpt[K] {
	return func(set *RankSet[K]) {
		set.isDesc = true
	}
}

// WithRankSetLess installs a custom strict weak ordering. It overrides
// WithRankSetDesc. Key equivalence is derived from it and only from it.
func WithRankSetLess[K infra.OrderedKey](less infra.OrderedKeyLess[K]) RankSetOpt[K] {
	return func(set *RankSet[K]) {
		set.less = less
	}
}

func New[K infra.OrderedKey](opts ...RankSetOpt[K]) *RankSet[K] {
	set := &RankSet[K]{}
	for _, o := range opts {
		o(set)
	}
	set.init()
	return set
}

// init installs a fresh self-linked black sentinel and empties the set.
func (set *RankSet[K]) init() {
	n := &rsNode[K]{color: Black}
	n.parent, n.left, n.right = n, n, n
	set.niln = n
	set.root = n
}

func (set *RankSet[K]) keyLess(i, j K) bool {
	if set.less != nil {
		return set.less(i, j)
	}
	if set.isDesc {
		return j < i
	}
	return i < j
}

// keyEqual is the single source of truth for key equivalence:
// neither key sorts before the other.
func (set *RankSet[K]) keyEqual(i, j K) bool {
	return !set.keyLess(i, j) && !set.keyLess(j, i)
}

func (set *RankSet[K]) keyNotEqual(i, j K) bool {
	return set.keyLess(i, j) || set.keyLess(j, i)
}

func (set *RankSet[K]) Len() int64 {
	return set.root.size
}

func (set *RankSet[K]) Empty() bool {
	return set.root == set.niln
}

func (set *RankSet[K]) minimum(x *rsNode[K]) *rsNode[K] {
	for x.left != set.niln {
		x = x.left
	}
	return x
}

func (set *RankSet[K]) maximum(x *rsNode[K]) *rsNode[K] {
	for x.right != set.niln {
		x = x.right
	}
	return x
}

// successor returns the next node in sorted order, or the sentinel when
// x is the maximum.
func (set *RankSet[K]) successor(x *rsNode[K]) *rsNode[K] {
	if x.right != set.niln {
		return set.minimum(x.right)
	}
	for x != set.niln {
		if x == x.parent.left {
			return x.parent
		}
		x = x.parent
	}
	return set.niln
}

// predecessor returns the previous node in sorted order, or the
// sentinel when x is the minimum.
func (set *RankSet[K]) predecessor(x *rsNode[K]) *rsNode[K] {
	if x.left != set.niln {
		return set.maximum(x.left)
	}
	for x != set.niln {
		if x == x.parent.right {
			return x.parent
		}
		x = x.parent
	}
	return set.niln
}

func (set *RankSet[K]) search(key K) *rsNode[K] {
	x := set.root
	for x != set.niln && set.keyNotEqual(key, x.key) {
		if set.keyLess(key, x.key) {
			x = x.left
		} else {
			x = x.right
		}
	}
	return x
}

func (set *RankSet[K]) Find(key K) Iterator[K] {
	return Iterator[K]{set: set, node: set.search(key)}
}

// OrderOfKey returns the number of stored keys that sort strictly
// before key, whether or not key itself is present.
func (set *RankSet[K]) OrderOfKey(key K) int64 {
	current := set.root.size
	x := set.root
	for x != set.niln && set.keyNotEqual(key, x.key) {
		if set.keyLess(key, x.key) {
			current -= x.right.size + 1
			x = x.left
		} else {
			x = x.right
		}
	}
	current -= x.right.size
	if x != set.niln {
		current--
	}
	return current
}

// FindByOrder returns the position holding the 0-based in-order rank,
// or the end iterator when order is out of range. The running counter
// always equals the rank of the current candidate node.
func (set *RankSet[K]) FindByOrder(order int64) Iterator[K] {
	if order < 0 {
		return set.End()
	}
	current := set.root.left.size
	x := set.root
	for x != set.niln && current != order {
		if current > order {
			current -= x.left.size
			x = x.left
			current += x.left.size
		} else {
			x = x.right
			current += x.left.size + 1
		}
	}
	return Iterator[K]{set: set, node: x}
}

func (set *RankSet[K]) Min() Iterator[K] {
	return Iterator[K]{set: set, node: set.minimum(set.root)}
}

func (set *RankSet[K]) Max() Iterator[K] {
	return Iterator[K]{set: set, node: set.maximum(set.root)}
}

func (set *RankSet[K]) Begin() Iterator[K] {
	return set.FindByOrder(0)
}

func (set *RankSet[K]) End() Iterator[K] {
	return Iterator[K]{set: set, node: set.niln}
}

// updateSize adds delta to every size on the parent chain from start up
// to, not including, end.
func (set *RankSet[K]) updateSize(start, end *rsNode[K], delta int64) {
	for start != end {
		start.size += delta
		start = start.parent
	}
}

/*
		 |                         |
		 X                         Y
		/ \      leftRotate(X)    / \
	   a   Y    =============>   X   c
		  / \                   / \
		 b   c                 a   b

Only X and Y change subtree composition; their sizes are recomputed
from the invariant size = 1 + left.size + right.size, in that order.
No other node's size is touched.
*/
func (set *RankSet[K]) leftRotate(x *rsNode[K]) {
	if x == set.niln || x.right == set.niln {
		// impossible run to here
		panic( /* debug assertion */ "[rankset] left rotate with nil pivot or nil right child")
	}
	y := x.right
	x.right = y.left
	if y.left != set.niln {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == set.niln {
		set.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	x.size = x.left.size + x.right.size + 1
	y.size = y.left.size + y.right.size + 1
}

/*
		 |                         |
		 X                         Y
		/ \      rightRotate(X)   / \
	   Y   c    ==============>  a   X
	  / \                           / \
	 a   b                         b   c
*/
func (set *RankSet[K]) rightRotate(x *rsNode[K]) {
	if x == set.niln || x.left == set.niln {
		// impossible run to here
		panic( /* debug assertion */ "[rankset] right rotate with nil pivot or nil left child")
	}
	y := x.left
	x.left = y.right
	if y.right != set.niln {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == set.niln {
		set.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.right = x
	x.parent = y
	x.size = x.left.size + x.right.size + 1
	y.size = y.left.size + y.right.size + 1
}

// transplant replaces the subtree rooted at u with the one rooted at v
// in u's parent. It never touches sizes; callers own that bookkeeping.
// v may be the sentinel, whose parent link then serves as fixup scratch
// until the mutating operation restores it.
func (set *RankSet[K]) transplant(u, v *rsNode[K]) {
	if u.parent == set.niln {
		set.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// Insert adds key and reports true, or reports false with the position
// of the already present equivalent key, in which case nothing mutates.
func (set *RankSet[K]) Insert(key K) (Iterator[K], bool) {
	x, y := set.root, set.niln
	for x != set.niln {
		y = x
		if set.keyEqual(key, x.key) {
			return Iterator[K]{set: set, node: x}, false
		}
		if set.keyLess(key, x.key) {
			x = x.left
		} else {
			x = x.right
		}
	}

	z := &rsNode[K]{
		key:    key,
		size:   1,
		left:   set.niln,
		right:  set.niln,
		parent: y,
		color:  Red,
	}
	if y == set.niln {
		set.root = z
	} else if set.keyLess(key, y.key) {
		y.left = z
	} else {
		y.right = z
	}
	set.updateSize(z.parent, set.niln, 1)
	set.insertRebalance(z)
	return Iterator[K]{set: set, node: z}, true
}

/*
<X> is a RED node.
[X] is a BLACK node (or the sentinel).

While the new node's parent is red the tree is red-violating. Case on
the uncle U of X:

im1: U is red. Repaint P and U black, grandpa G red, recurse on G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im2: U is black and X is the inner child. Rotate P outward to reduce
to im3.

	  [G]                 [G]
	  / \    l-rotate(P)  / \
	<P> [U]  ==========>  <X> [U]
	  \                  /
	  <X>              <P>

im3: U is black and X is the outer child. Rotate G, swap P and G's
colors, done.

	    [G]                 <P>               [P]
	    / \    r-rotate(G)  / \    repaint    / \
	  <P> [U]  ==========> <X> [G]  ======> <X> <G>
	  /                          \                \
	<X>                          [U]              [U]
*/
func (set *RankSet[K]) insertRebalance(z *rsNode[K]) {
	for z.parent.isRed() {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if /* im1 */ y.isRed() {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if /* im2 */ z == z.parent.right {
					z = z.parent
					set.leftRotate(z)
				}
				/* im3 */
				z.parent.color = Black
				z.parent.parent.color = Red
				set.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if /* im1 */ y.isRed() {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if /* im2 */ z == z.parent.left {
					z = z.parent
					set.rightRotate(z)
				}
				/* im3 */
				z.parent.color = Black
				z.parent.parent.color = Red
				set.leftRotate(z.parent.parent)
			}
		}
	}
	set.root.color = Black
}

// Erase removes key and returns the position of its in-order
// successor, or the end iterator when key is absent (no mutation) or
// key was the maximum.
func (set *RankSet[K]) Erase(key K) Iterator[K] {
	z := set.search(key)
	if z == set.niln {
		return set.End()
	}
	return set.eraseNode(z)
}

/*
eraseNode removes the located node z.

Ancestor sizes shrink first, while the node graph is still intact.
Then the three structural cases:

e1: z has no left child, splice z's right child into its place.
e2: z has no right child, splice z's left child into its place.
e3: z has both children. y = minimum(z.right) takes z's place and
inherits z's color. Nodes strictly between y's old parent and z lose
one from their size (y left their subtree); y's own size is recomputed
bottom-up from its final children rather than patched incrementally.

If the physically removed color was black, the black-height is broken
at the splice point and removeRebalance repairs it. The sentinel's
parent link is fixup scratch and is re-pointed at itself before return.
*/
func (set *RankSet[K]) eraseNode(z *rsNode[K]) Iterator[K] {
	set.updateSize(z.parent, set.niln, -1)
	next := Iterator[K]{set: set, node: set.successor(z)}

	y := z
	removedColor := y.color
	var x *rsNode[K]
	if /* e1 */ z.left == set.niln {
		x = z.right
		set.transplant(z, z.right)
	} else if /* e2 */ z.right == set.niln {
		x = z.left
		set.transplant(z, z.left)
	} else /* e3 */ {
		y = set.minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			set.updateSize(y.parent, z, -1)
			set.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		set.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
		y.size = y.left.size + y.right.size + 1
	}

	if removedColor == Black {
		set.removeRebalance(x)
	}

	set.niln.parent = set.niln
	if set.niln.color != Black {
		// impossible run to here
		panic( /* debug assertion */ "[rankset] sentinel repainted during erase")
	}

	z.parent, z.left, z.right = nil, nil, nil
	return next
}

/*
<X> is a RED node.
[X] is a BLACK node (or the sentinel).
{X} is either.

X carries one black deficit. S is X's sibling, Sc/Sd its near/far
children.

rm1: S is red, so P, Sc, Sd are black. Rotate P toward X, swap P and
S's colors. X's new sibling is black; fall through.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======> <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: S, Sc, Sd black, P red. Swap P and S's colors; deficit paid.

rm3: P, S, Sc, Sd all black. Repaint S red, push the deficit to P,
recurse.

rm4: S black, near child Sc red, far child Sd black. Rotate S away
from X, swap S and Sc's colors; reduces to rm5.

rm5: S black, far child Sd red. Rotate P toward X, give S P's color,
paint P and Sd black; deficit paid, terminate at the (possibly new)
root.
*/
func (set *RankSet[K]) removeRebalance(x *rsNode[K]) {
	for x != set.root && x.isBlack() {
		if x == x.parent.left {
			w := x.parent.right
			if /* rm1 */ w.isRed() {
				w.color = Black
				x.parent.color = Red
				set.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.isBlack() && w.right.isBlack() {
				/* rm2, rm3 */
				w.color = Red
				x = x.parent
			} else {
				if /* rm4 */ w.right.isBlack() {
					w.left.color = Black
					w.color = Red
					set.rightRotate(w)
					w = x.parent.right
				}
				/* rm5 */
				w.color = x.parent.color
				x.parent.color = Black
				w.right.color = Black
				set.leftRotate(x.parent)
				x = set.root
			}
		} else {
			w := x.parent.left
			if /* rm1 */ w.isRed() {
				w.color = Black
				x.parent.color = Red
				set.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.isBlack() && w.left.isBlack() {
				/* rm2, rm3 */
				w.color = Red
				x = x.parent
			} else {
				if /* rm4 */ w.left.isBlack() {
					w.right.color = Black
					w.color = Red
					set.leftRotate(w)
					w = x.parent.left
				}
				/* rm5 */
				w.color = x.parent.color
				x.parent.color = Black
				w.left.color = Black
				set.rightRotate(x.parent)
				x = set.root
			}
		}
	}
	x.color = Black
}

// Foreach runs action over the keys in sorted order until action
// returns false. idx is the in-order rank of key.
func (set *RankSet[K]) Foreach(action func(idx int64, key K) bool) {
	stack := make([]*rsNode[K], 0, set.root.size>>1)
	defer func() {
		clear(stack)
	}()

	aux := set.root
	for ; aux != set.niln; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != set.niln; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

// Clear releases every node, visiting each exactly once breadth-first.
// The set stays usable and empty; outstanding iterators are invalid.
func (set *RankSet[K]) Clear() {
	if set.root == set.niln {
		return
	}
	queue := make([]*rsNode[K], 0, set.root.size>>1+1)
	queue = append(queue, set.root)
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		if x.left != set.niln {
			queue = append(queue, x.left)
		}
		if x.right != set.niln {
			queue = append(queue, x.right)
		}
		x.parent, x.left, x.right = nil, nil, nil
	}
	set.root = set.niln
}

// Clone performs a full logical duplication: a fresh node graph over
// the same key set and ordering. Shape and colors are rebuilt by
// reinsertion in breadth-first order, not mirrored.
func (set *RankSet[K]) Clone() *RankSet[K] {
	dst := &RankSet[K]{less: set.less, isDesc: set.isDesc}
	dst.init()
	if set.root == set.niln {
		return dst
	}
	queue := make([]*rsNode[K], 0, set.root.size>>1+1)
	queue = append(queue, set.root)
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		dst.Insert(x.key)
		if x.left != set.niln {
			queue = append(queue, x.left)
		}
		if x.right != set.niln {
			queue = append(queue, x.right)
		}
	}
	return dst
}

// Move transfers the node graph to a new set and leaves the receiver
// valid and empty, with a fresh sentinel. Iterators obtained from the
// receiver before the move are invalid afterwards.
func (set *RankSet[K]) Move() *RankSet[K] {
	dst := &RankSet[K]{
		root:   set.root,
		niln:   set.niln,
		less:   set.less,
		isDesc: set.isDesc,
	}
	set.init()
	return dst
}
