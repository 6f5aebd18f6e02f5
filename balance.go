package ranktree

type rotation int

const (
	rotateLeft rotation = iota
	rotateRight
)

// rotate performs a single rotation of the subtree rooted at n and returns the
// new subtree root (the pivot). The pivot takes over n's parent link; linking
// the pivot into the parent's child slot is left to the caller.
//
//	right: (n (p a b) c) => (p a (n b c))
//	left:  (n a (p b c)) => (p (n a b) c)
//
// Only n and the pivot change their subtree composition, so only these two
// nodes are updated, n first as it is now the pivot's child.
func (t *Tree[K, V, R]) rotate(n *node[K, V, R], dir rotation) *node[K, V, R] {
	var pivot *node[K, V, R]
	if dir == rotateRight {
		pivot = n.left
		assert(pivot != nil, "rotate right without left child")
		n.left = pivot.right
		if n.left != nil {
			n.left.parent = n
		}
		pivot.right = n
	} else {
		pivot = n.right
		assert(pivot != nil, "rotate left without right child")
		n.right = pivot.left
		if n.right != nil {
			n.right.parent = n
		}
		pivot.left = n
	}
	pivot.parent = n.parent
	n.parent = pivot
	t.update(n)
	t.update(pivot)
	return pivot
}

// balance restores the AVL property for n, given that both subtrees of n are
// balanced and their heights differ by at most 2. It returns the new subtree root.
func (t *Tree[K, V, R]) balance(n *node[K, V, R]) *node[K, V, R] {
	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			n.left = t.rotate(n.left, rotateLeft)
		}
		return t.rotate(n, rotateRight)
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			n.right = t.rotate(n.right, rotateRight)
		}
		return t.rotate(n, rotateLeft)
	}
	return n
}
