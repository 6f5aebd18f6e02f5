package ranktree

import "fmt"

// Merge creates a new balanced tree containing the entries of both a and b.
// Entries with equal keys are all retained; entries of a precede those of b.
// The new tree uses a's configuration and shares no nodes with a or b.
//
// Merge linearizes both trees, merges the sorted sequences and builds a tree
// of minimal height from the result, in O(n+m) time and space.
func Merge[K, V, R any](a, b *Tree[K, V, R]) (*Tree[K, V, R], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	first := a.Query(Filter[K, V]{}).Entries
	second := b.Query(Filter[K, V]{}).Entries
	T().Debugf("ranktree: merging %d and %d entries", len(first), len(second))
	merged := mergeEntries(a.cfg.Compare, first, second)
	return fromEntries(a.cfg, merged), nil
}

// Copy returns an independent deep copy of the tree. The copy is perfectly
// balanced, so its shape may differ from the original.
func (t *Tree[K, V, R]) Copy() *Tree[K, V, R] {
	return fromEntries(t.cfg, t.Query(Filter[K, V]{}).Entries)
}

// FromSorted builds a tree from entries already sorted by the comparator of
// cfg, in O(n). If entries are out of order, ErrUnsorted is returned.
func FromSorted[K, V, R any](cfg Config[K, V, R], entries []Entry[K, V]) (*Tree[K, V, R], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for i := 1; i < len(entries); i++ {
		if cfg.Compare(entries[i-1].Key, entries[i].Key) > 0 {
			T().Errorf("ranktree: entries out of order at position %d", i)
			return nil, fmt.Errorf("%w: entry %d precedes entry %d", ErrUnsorted, i, i-1)
		}
	}
	return fromEntries(cfg, entries), nil
}

func fromEntries[K, V, R any](cfg Config[K, V, R], entries []Entry[K, V]) *Tree[K, V, R] {
	t := &Tree[K, V, R]{cfg: cfg}
	t.root = t.build(entries, nil)
	t.size = len(entries)
	t.refreshBounds()
	return t
}

// build creates a subtree from sorted entries. The middle entry becomes the
// subtree root, the halves left and right of it become its children. Subtree
// sizes of siblings differ by at most one, resulting in minimal height.
func (t *Tree[K, V, R]) build(entries []Entry[K, V], parent *node[K, V, R]) *node[K, V, R] {
	if len(entries) == 0 {
		return nil
	}
	mid := (len(entries) - 1) / 2
	n := t.newNode(entries[mid].Key, entries[mid].Value, parent)
	n.left = t.build(entries[:mid], n)
	n.right = t.build(entries[mid+1:], n)
	t.update(n)
	return n
}

// mergeEntries merges two sorted entry sequences. On equal keys entries of
// first are taken before entries of second.
func mergeEntries[K, V any](cmp func(K, K) int, first, second []Entry[K, V]) []Entry[K, V] {
	merged := make([]Entry[K, V], 0, len(first)+len(second))
	i, j := 0, 0
	for i < len(first) && j < len(second) {
		if cmp(second[j].Key, first[i].Key) < 0 {
			merged = append(merged, second[j])
			j++
		} else {
			merged = append(merged, first[i])
			i++
		}
	}
	merged = append(merged, first[i:]...)
	return append(merged, second[j:]...)
}
