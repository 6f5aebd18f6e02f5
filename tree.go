package ranktree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is an AVL-balanced order-statistics map. K is the key type, V the value
// type and R the type of the rank aggregate maintained for every subtree.
//
// Trees have to be created with New or NewOrdered. A Tree must not be copied
// by value; use Copy to create an independent tree.
type Tree[K, V, R any] struct {
	cfg  Config[K, V, R]
	root *node[K, V, R]
	size int
	min  *node[K, V, R] // cached minimum, nil iff root is nil
	max  *node[K, V, R] // cached maximum, nil iff root is nil
}

// New creates an empty tree with validated configuration.
func New[K, V, R any](cfg Config[K, V, R]) (*Tree[K, V, R], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V, R]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree for ordered keys, using the natural
// ordering of keys and Count as rank group.
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V, int] {
	return &Tree[K, V, int]{
		cfg: Config[K, V, int]{
			Compare: NaturalOrder[K],
			Rank:    Count[K, V]{},
		},
	}
}

// Config returns the effective tree configuration.
func (t *Tree[K, V, R]) Config() Config[K, V, R] {
	return t.cfg
}

// Size returns the number of entries in the tree.
func (t *Tree[K, V, R]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V, R]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the height of the tree. A tree with a single entry has
// height 0, the empty tree has height -1.
func (t *Tree[K, V, R]) Height() int {
	if t == nil {
		return -1
	}
	return t.root.safeHeight()
}

// Rank returns the rank aggregate over all entries, or Zero() for an empty tree.
func (t *Tree[K, V, R]) Rank() R {
	return t.rankOf(t.root)
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V, R]) Min() (Entry[K, V], bool) {
	if t == nil || t.min == nil {
		return Entry[K, V]{}, false
	}
	return t.min.entry(), true
}

// Max returns the entry with the greatest key.
func (t *Tree[K, V, R]) Max() (Entry[K, V], bool) {
	if t == nil || t.max == nil {
		return Entry[K, V]{}, false
	}
	return t.max.entry(), true
}

// Clear removes all entries from the tree.
func (t *Tree[K, V, R]) Clear() {
	t.root, t.min, t.max = nil, nil, nil
	t.size = 0
}

// String returns a short description of the tree, for debugging purposes.
func (t *Tree[K, V, R]) String() string {
	if t.IsEmpty() {
		return "ranktree{empty}"
	}
	return fmt.Sprintf("ranktree{size=%d height=%d min=%v max=%v}",
		t.size, t.Height(), t.min.key, t.max.key)
}

// refreshBounds re-derives the cached minimum and maximum after structural edits.
func (t *Tree[K, V, R]) refreshBounds() {
	t.min = leftmost(t.root)
	t.max = rightmost(t.root)
}
