package ranktree

import (
	"fmt"
	"reflect"
)

// Check validates the structural invariants of the tree:
//
//   - keys are ordered in-order, with duplicates adjacent,
//   - every node is AVL balanced,
//   - heights, subtree sizes and rank aggregates are consistent,
//   - parent links mirror child links,
//   - size and cached minimum/maximum match the tree content.
//
// Violations are reported as ErrCorrupt. Check is intended to be used in tests.
func (t *Tree[K, V, R]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 || t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree with size=%d or cached bounds", ErrCorrupt, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}
	if err := t.checkNode(t.root, nil, nil); err != nil {
		return err
	}
	if t.root.size != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrCorrupt, t.root.size, t.size)
	}
	if t.min != leftmost(t.root) || t.max != rightmost(t.root) {
		return fmt.Errorf("%w: stale min/max cache", ErrCorrupt)
	}
	return nil
}

// checkNode validates subtree n. All keys of the subtree have to be within
// the keys of lower and upper, which may be nil for unbounded.
func (t *Tree[K, V, R]) checkNode(n, lower, upper *node[K, V, R]) error {
	if lower != nil && t.cfg.Compare(n.key, lower.key) < 0 {
		return fmt.Errorf("%w: key %v less than ancestor key %v", ErrCorrupt, n.key, lower.key)
	}
	if upper != nil && t.cfg.Compare(n.key, upper.key) > 0 {
		return fmt.Errorf("%w: key %v greater than ancestor key %v", ErrCorrupt, n.key, upper.key)
	}
	for _, child := range []*node[K, V, R]{n.left, n.right} {
		if child != nil && child.parent != n {
			return fmt.Errorf("%w: broken parent link below key %v", ErrCorrupt, n.key)
		}
	}
	if n.left != nil {
		if err := t.checkNode(n.left, lower, n); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := t.checkNode(n.right, n, upper); err != nil {
			return err
		}
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return fmt.Errorf("%w: node %v has balance factor %d", ErrCorrupt, n.key, bf)
	}
	if h := 1 + max(n.left.safeHeight(), n.right.safeHeight()); h != n.height {
		return fmt.Errorf("%w: node %v has height %d, expected %d", ErrCorrupt, n.key, n.height, h)
	}
	if s := 1 + n.left.safeSize() + n.right.safeSize(); s != n.size {
		return fmt.Errorf("%w: node %v has size %d, expected %d", ErrCorrupt, n.key, n.size, s)
	}
	if !t.rankEqual(n.own, t.cfg.Rank.Of(n.key, n.value)) {
		return fmt.Errorf("%w: node %v has stale rank contribution", ErrCorrupt, n.key)
	}
	if !t.rankEqual(n.rank, t.aggregate(n)) {
		return fmt.Errorf("%w: node %v has rank %v, expected %v", ErrCorrupt, n.key, n.rank, t.aggregate(n))
	}
	return nil
}

func (t *Tree[K, V, R]) rankEqual(a, b R) bool {
	if eq, ok := t.cfg.Rank.(RankEqualer[R]); ok {
		return eq.Equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}
