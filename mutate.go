package ranktree

// Insert inserts an entry into the tree. Keys need not be unique: an entry
// with a key already present is placed after all entries with an equal key.
func (t *Tree[K, V, R]) Insert(key K, value V) {
	t.root = t.insert(t.root, nil, key, value)
	t.root.parent = nil
	t.size++
	t.refreshBounds()
}

// insert inserts an entry into the subtree n and returns the new subtree root.
func (t *Tree[K, V, R]) insert(n, parent *node[K, V, R], key K, value V) *node[K, V, R] {
	if n == nil {
		return t.newNode(key, value, parent)
	}
	if t.cfg.Compare(key, n.key) < 0 {
		n.left = t.insert(n.left, n, key, value)
	} else {
		n.right = t.insert(n.right, n, key, value)
	}
	t.update(n)
	return t.balance(n)
}

// Remove removes an entry with the given key. If more than one entry has an
// equal key, exactly one of them is removed. Remove returns false if no entry
// with key exists; the tree is left unchanged in this case.
func (t *Tree[K, V, R]) Remove(key K) bool {
	if t.find(key) == nil {
		return false
	}
	t.root = t.remove(t.root, key)
	if t.root != nil {
		t.root.parent = nil
	}
	t.size--
	t.refreshBounds()
	return true
}

// remove deletes the node for key from subtree n and returns the new subtree
// root. It follows the same path as find, so the caller has to make sure the
// key is present.
//
// A node with two children is not unlinked. It takes over key, value and rank
// contribution of its in-order successor, and the successor's node is unlinked
// from the right subtree instead.
func (t *Tree[K, V, R]) remove(n *node[K, V, R], key K) *node[K, V, R] {
	assert(n != nil, "remove descended into an empty subtree")
	switch c := t.cfg.Compare(key, n.key); {
	case c < 0:
		n.left = t.remove(n.left, key)
		if n.left != nil {
			n.left.parent = n
		}
	case c > 0:
		n.right = t.remove(n.right, key)
		if n.right != nil {
			n.right.parent = n
		}
	default:
		if n.left == nil || n.right == nil {
			return unlink(n)
		}
		succ := leftmost(n.right)
		n.key, n.value, n.own = succ.key, succ.value, succ.own
		n.right = t.removeMin(n.right)
		if n.right != nil {
			n.right.parent = n
		}
	}
	t.update(n)
	return t.balance(n)
}

// removeMin unlinks the leftmost node of subtree n and returns the new subtree root.
func (t *Tree[K, V, R]) removeMin(n *node[K, V, R]) *node[K, V, R] {
	if n.left == nil {
		return unlink(n)
	}
	n.left = t.removeMin(n.left)
	if n.left != nil {
		n.left.parent = n
	}
	t.update(n)
	return t.balance(n)
}

// unlink splices out a node with at most one child and returns that child.
func unlink[K, V, R any](n *node[K, V, R]) *node[K, V, R] {
	assert(n.left == nil || n.right == nil, "unlink called for node with two children")
	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	n.left, n.right, n.parent = nil, nil, nil
	return child
}
