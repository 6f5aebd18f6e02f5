package ranktree

// CollectRank computes the rank aggregate over the entries selected by filter
// in O(log n). The filter's key range, limit and reverse flag are honored, its
// predicate is not.
//
// If no entry is selected, the result is Zero() of the tree's rank group.
func (t *Tree[K, V, R]) CollectRank(filter Filter[K, V]) R {
	g := t.cfg.Rank
	if t.IsEmpty() {
		return g.Zero()
	}
	lower, upper := t.min, t.max
	if filter.Min != nil {
		lower = t.lowerBound(*filter.Min)
	}
	if filter.Max != nil {
		upper = t.upperBound(*filter.Max)
	}
	if lower == nil || upper == nil {
		return g.Zero()
	}
	lo, hi := positionOf(lower), positionOf(upper)
	if filter.limited() {
		if filter.Reverse {
			if from := hi - filter.Limit + 1; from > lo {
				lo, lower = from, t.nodeAt(from)
			}
		} else {
			if to := lo + filter.Limit - 1; to < hi {
				hi, upper = to, t.nodeAt(to)
			}
		}
	}
	if lo > hi {
		T().Debugf("ranktree: rank window [%d,%d] is empty", lo, hi)
		return g.Zero()
	}
	if lower == upper {
		return lower.own
	}
	return t.collectBetween(lower, upper, t.commonAncestor(lo, hi))
}

// collectBetween sums up the rank aggregate of all entries from lower to upper
// (inclusive), with lca being their lowest common ancestor.
//
// Walking up from lower, every ancestor reached from its left side lies
// between lower and lca; it contributes itself and its right subtree.
// Symmetrically for the walk up from upper. Pieces are combined in key order.
func (t *Tree[K, V, R]) collectBetween(lower, upper, lca *node[K, V, R]) R {
	g := t.cfg.Rank
	left := g.Zero()
	if lower != lca {
		left = t.withoutLeft(lower)
		for n := lower; n.parent != lca; n = n.parent {
			if n == n.parent.left {
				left = g.Add(left, t.withoutLeft(n.parent))
			}
		}
	}
	right := g.Zero()
	if upper != lca {
		right = t.withoutRight(upper)
		for n := upper; n.parent != lca; n = n.parent {
			if n == n.parent.right {
				right = g.Add(t.withoutRight(n.parent), right)
			}
		}
	}
	return g.Add(g.Add(left, lca.own), right)
}

// commonAncestor finds the lowest common ancestor of the nodes at positions lo
// and hi, lo <= hi, by descending from the root until the current node does
// not separate the two positions.
func (t *Tree[K, V, R]) commonAncestor(lo, hi int) *node[K, V, R] {
	n, offset := t.root, 0 // offset = number of entries left of n's subtree
	for {
		assert(n != nil, "commonAncestor ran off the tree")
		pos := offset + n.left.safeSize()
		switch {
		case hi < pos:
			n = n.left
		case lo > pos:
			offset = pos + 1
			n = n.right
		default:
			return n
		}
	}
}
