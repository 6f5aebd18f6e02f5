package ranktree

// Entry is a key/value pair stored in a tree.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// node is a tree node. Children are owned by their parent, the parent link is
// a back-reference used for upward traversal only.
type node[K, V, R any] struct {
	key    K
	value  V
	height int // height of the subtree; a leaf has height 0, an absent node -1
	size   int // number of entries in the subtree
	own    R   // rank contribution of key/value alone
	rank   R   // rank aggregate of the subtree
	left   *node[K, V, R]
	right  *node[K, V, R]
	parent *node[K, V, R]
}

func (n *node[K, V, R]) safeHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K, V, R]) safeSize() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[K, V, R]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// balanceFactor is height(left) - height(right).
func (n *node[K, V, R]) balanceFactor() int {
	return n.left.safeHeight() - n.right.safeHeight()
}

// countUpTo is the number of entries of n's subtree which are not located in
// n's right subtree, i.e. n's 1-based position within its subtree.
func (n *node[K, V, R]) countUpTo() int {
	return n.size - n.right.safeSize()
}

func leftmost[K, V, R any](n *node[K, V, R]) *node[K, V, R] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K, V, R any](n *node[K, V, R]) *node[K, V, R] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// positionOf returns the 0-based in-order position of n within the whole tree.
func positionOf[K, V, R any](n *node[K, V, R]) int {
	pos := n.left.safeSize()
	for ; n.parent != nil; n = n.parent {
		if n == n.parent.right {
			pos += n.parent.countUpTo()
		}
	}
	return pos
}

// --- Aggregates ------------------------------------------------------------

func (t *Tree[K, V, R]) newNode(key K, value V, parent *node[K, V, R]) *node[K, V, R] {
	own := t.cfg.Rank.Of(key, value)
	return &node[K, V, R]{
		key:    key,
		value:  value,
		size:   1,
		own:    own,
		rank:   own,
		parent: parent,
	}
}

func (t *Tree[K, V, R]) rankOf(n *node[K, V, R]) R {
	if n == nil {
		return t.cfg.Rank.Zero()
	}
	return n.rank
}

// update recomputes height, size and rank aggregate of n from its children.
func (t *Tree[K, V, R]) update(n *node[K, V, R]) {
	n.height = 1 + max(n.left.safeHeight(), n.right.safeHeight())
	n.size = 1 + n.left.safeSize() + n.right.safeSize()
	n.rank = t.aggregate(n)
}

func (t *Tree[K, V, R]) aggregate(n *node[K, V, R]) R {
	g := t.cfg.Rank
	return g.Add(g.Add(t.rankOf(n.left), n.own), t.rankOf(n.right))
}

// withoutLeft is the relative rank of n excluding its left child: the share of
// n itself plus everything in its right subtree.
func (t *Tree[K, V, R]) withoutLeft(n *node[K, V, R]) R {
	return t.cfg.Rank.Sub(n.rank, t.rankOf(n.left))
}

// withoutRight is the relative rank of n excluding its right child.
func (t *Tree[K, V, R]) withoutRight(n *node[K, V, R]) R {
	return t.cfg.Rank.Sub(n.rank, t.rankOf(n.right))
}
