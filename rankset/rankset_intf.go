package rankset

import "github.com/go-rankset/rankset/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// OrderedSet is an ordered associative container with unique keys and
// logarithmic order-statistics queries. All positions are reported as
// iterators; an absent key, an empty set and an out-of-range order all
// surface as the end iterator, never as an error.
type OrderedSet[K infra.OrderedKey] interface {
	Len() int64
	Empty() bool
	Insert(key K) (Iterator[K], bool)
	Erase(key K) Iterator[K]
	Find(key K) Iterator[K]
	FindByOrder(order int64) Iterator[K]
	OrderOfKey(key K) int64
	Min() Iterator[K]
	Max() Iterator[K]
	Begin() Iterator[K]
	End() Iterator[K]
	Foreach(action func(idx int64, key K) bool)
	Clear()
}
