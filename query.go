package ranktree

import "iter"

// Filter selects entries for Query, Range and CollectRank.
//
// The zero value selects every entry in ascending key order.
type Filter[K, V any] struct {
	// Limit is the maximum number of entries selected. Limit <= 0 means unlimited.
	Limit int
	// Reverse walks entries from the greatest key downwards. Together with
	// Limit it selects the last Limit entries of the range.
	Reverse bool
	// Min is an optional inclusive lower bound for keys.
	Min *K
	// Max is an optional inclusive upper bound for keys.
	Max *K
	// Accept is an optional predicate on entries. It is honored by Query and
	// Range, but not by CollectRank.
	Accept func(key K, value V) bool
}

// Between returns a filter for keys in [lo, hi].
func Between[K, V any](lo, hi K) Filter[K, V] {
	return Filter[K, V]{Min: &lo, Max: &hi}
}

// AtLeast returns a filter for keys >= lo.
func AtLeast[K, V any](lo K) Filter[K, V] {
	return Filter[K, V]{Min: &lo}
}

// AtMost returns a filter for keys <= hi.
func AtMost[K, V any](hi K) Filter[K, V] {
	return Filter[K, V]{Max: &hi}
}

// WithLimit returns a copy of f limited to n entries.
func (f Filter[K, V]) WithLimit(n int) Filter[K, V] {
	f.Limit = n
	return f
}

// Reversed returns a copy of f which walks entries from the high end.
func (f Filter[K, V]) Reversed() Filter[K, V] {
	f.Reverse = true
	return f
}

// Where returns a copy of f with predicate accept.
func (f Filter[K, V]) Where(accept func(K, V) bool) Filter[K, V] {
	f.Accept = accept
	return f
}

func (f Filter[K, V]) limited() bool {
	return f.Limit > 0
}

// QueryResult holds the entries selected by Query.
type QueryResult[K, V any] struct {
	// Entries are ordered by key, descending if the filter was reversed.
	Entries []Entry[K, V]
	// Total is the number of entries selected.
	Total int
}

// Keys returns the keys of the result entries.
func (qr QueryResult[K, V]) Keys() []K {
	keys := make([]K, len(qr.Entries))
	for i, e := range qr.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Query collects the entries selected by filter. Subtrees outside of the key
// range of filter are pruned, and the walk stops as soon as the limit is
// reached.
//
// The result slice is owned by the caller.
func (t *Tree[K, V, R]) Query(filter Filter[K, V]) QueryResult[K, V] {
	var result QueryResult[K, V]
	if t.IsEmpty() {
		return result
	}
	if filter.Min == nil && filter.Max == nil && filter.Accept == nil {
		capacity := t.size
		if filter.limited() {
			capacity = min(capacity, filter.Limit)
		}
		result.Entries = make([]Entry[K, V], 0, capacity)
	}
	t.walk(t.root, filter, func(n *node[K, V, R]) bool {
		result.Entries = append(result.Entries, n.entry())
		return !filter.limited() || len(result.Entries) < filter.Limit
	})
	result.Total = len(result.Entries)
	return result
}

// Range returns an iterator over the entries selected by filter. It is the
// lazy counterpart of Query. The tree must not be modified during iteration.
func (t *Tree[K, V, R]) Range(filter Filter[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.IsEmpty() {
			return
		}
		count := 0
		t.walk(t.root, filter, func(n *node[K, V, R]) bool {
			count++
			if !yield(n.key, n.value) {
				return false
			}
			return !filter.limited() || count < filter.Limit
		})
	}
}

// All returns an iterator over all entries in ascending key order.
func (t *Tree[K, V, R]) All() iter.Seq2[K, V] {
	return t.Range(Filter[K, V]{})
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K, V, R]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// ForEach walks all entries in ascending key order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K, V, R]) ForEach(fn func(key K, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.walk(t.root, Filter[K, V]{}, func(n *node[K, V, R]) bool {
		return fn(n.key, n.value)
	})
}

// walk performs an in-order traversal of subtree n, or a reverse in-order
// traversal if f.Reverse is set. It visits nodes within the key range of f
// which are accepted by f's predicate. The limit of f is not handled here.
// walk returns false as soon as visit has returned false.
func (t *Tree[K, V, R]) walk(n *node[K, V, R], f Filter[K, V], visit func(*node[K, V, R]) bool) bool {
	if n == nil {
		return true
	}
	if f.Min != nil && t.cfg.Compare(n.key, *f.Min) < 0 {
		return t.walk(n.right, f, visit)
	}
	if f.Max != nil && t.cfg.Compare(n.key, *f.Max) > 0 {
		return t.walk(n.left, f, visit)
	}
	first, second := n.left, n.right
	if f.Reverse {
		first, second = second, first
	}
	if !t.walk(first, f, visit) {
		return false
	}
	if f.Accept == nil || f.Accept(n.key, n.value) {
		if !visit(n) {
			return false
		}
	}
	return t.walk(second, f, visit)
}
