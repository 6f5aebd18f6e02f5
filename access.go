package ranktree

import "fmt"

// Find returns an entry with the given key.
func (t *Tree[K, V, R]) Find(key K) (Entry[K, V], bool) {
	n := t.find(key)
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.entry(), true
}

// Contains reports whether an entry with the given key exists.
func (t *Tree[K, V, R]) Contains(key K) bool {
	return t.find(key) != nil
}

func (t *Tree[K, V, R]) find(key K) *node[K, V, R] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// FindByIndex returns the entry at 0-based position index, as if all entries
// were laid out in a sorted slice. An index outside of [0, Size()) results in
// ErrIndexOutOfBounds.
func (t *Tree[K, V, R]) FindByIndex(index int) (Entry[K, V], error) {
	if index < 0 || index >= t.Size() {
		return Entry[K, V]{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, index, t.Size())
	}
	return t.nodeAt(index).entry(), nil
}

// nodeAt locates the node at 0-based position index.
//
// The search keeps a 1-based counter holding the position of the current node.
// Stepping down to a right child r moves the counter by the entries up to and
// including r within r's subtree; stepping down to a left child l moves it
// back by l's right subtree plus the parent itself.
func (t *Tree[K, V, R]) nodeAt(index int) *node[K, V, R] {
	target := index + 1
	n := t.root
	counter := n.countUpTo()
	for counter != target {
		if target > counter {
			n = n.right
			assert(n != nil, "nodeAt ran off the right side of the tree")
			counter += n.countUpTo()
		} else {
			n = n.left
			assert(n != nil, "nodeAt ran off the left side of the tree")
			counter -= 1 + n.right.safeSize()
		}
	}
	return n
}

// IndexOfKey returns the 0-based position of an entry with the given key, or
// -1 if the key is not present.
func (t *Tree[K, V, R]) IndexOfKey(key K) int {
	if t == nil {
		return -1
	}
	index := 0
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c == 0:
			return index + n.countUpTo() - 1
		case c < 0:
			n = n.left
		default:
			index += n.countUpTo()
			n = n.right
		}
	}
	return -1
}

// Closest returns the neighbour of key in the given direction:
//
//	LessThan     the entry with the greatest key strictly less than key
//	GreaterThan  the entry with the smallest key strictly greater than key
//	Equal        an entry with the key itself, same as Find
//
// key itself need not be present in the tree.
func (t *Tree[K, V, R]) Closest(key K, dir Direction) (Entry[K, V], bool) {
	var n *node[K, V, R]
	switch {
	case dir == Equal:
		return t.Find(key)
	case dir < Equal:
		n = t.predecessor(key)
	default:
		n = t.successor(key)
	}
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.entry(), true
}

// predecessor finds the last node with a key strictly less than key.
func (t *Tree[K, V, R]) predecessor(key K) *node[K, V, R] {
	var candidate *node[K, V, R]
	for n := t.root; n != nil; {
		if t.cfg.Compare(key, n.key) > 0 {
			candidate = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return candidate
}

// successor finds the first node with a key strictly greater than key.
func (t *Tree[K, V, R]) successor(key K) *node[K, V, R] {
	var candidate *node[K, V, R]
	for n := t.root; n != nil; {
		if t.cfg.Compare(key, n.key) < 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

// lowerBound finds the first node with a key greater than or equal to key.
func (t *Tree[K, V, R]) lowerBound(key K) *node[K, V, R] {
	var candidate *node[K, V, R]
	for n := t.root; n != nil; {
		if t.cfg.Compare(n.key, key) >= 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

// upperBound finds the last node with a key less than or equal to key.
func (t *Tree[K, V, R]) upperBound(key K) *node[K, V, R] {
	var candidate *node[K, V, R]
	for n := t.root; n != nil; {
		if t.cfg.Compare(n.key, key) <= 0 {
			candidate = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return candidate
}
