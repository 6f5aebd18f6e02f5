package ranktree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Direction names the outcome of comparing two keys. Closest uses it to
// select between predecessor, exact match and successor.
type Direction int

const (
	LessThan    Direction = -1
	Equal       Direction = 0
	GreaterThan Direction = 1
)

// RankGroup defines how rank aggregates are computed and propagated up the tree.
//
// For aggregates a, b, c Add must be associative and commutative, and Zero
// has to be the neutral element:
//
//	Add(Add(a, b), c) == Add(a, Add(b, c))
//	Add(Zero(), a) == a == Add(a, Zero())
//
// In addition, Sub must be the exact inverse of Add:
//
//	Sub(Add(a, b), b) == a
//
// This is a hard precondition. Range aggregation isolates the share of a node
// and one of its children by subtracting the other child's aggregate from the
// node's subtree aggregate. A rank group which breaks the contract will not be
// detected at runtime, but CollectRank will report wrong results.
type RankGroup[K, V, R any] interface {
	Zero() R
	Of(key K, value V) R
	Add(left, right R) R
	Sub(total, part R) R
}

// RankEqualer may optionally be implemented by rank groups whose aggregates
// cannot be compared with reflect.DeepEqual. Check uses it to verify the
// consistency of aggregates.
type RankEqualer[R any] interface {
	Equal(a, b R) bool
}

// Count is the default rank group. The aggregate of a subtree is the number
// of entries in it.
type Count[K, V any] struct{}

// Zero returns 0.
func (Count[K, V]) Zero() int { return 0 }

// Of returns 1 for every entry.
func (Count[K, V]) Of(K, V) int { return 1 }

// Add adds two counts.
func (Count[K, V]) Add(left, right int) int { return left + right }

// Sub subtracts part from total.
func (Count[K, V]) Sub(total, part int) int { return total - part }

// NaturalOrder compares ordered keys by Go's built-in ordering.
// It returns a negative number if a < b, a positive number if a > b, and 0 otherwise.
func NaturalOrder[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return int(LessThan)
	case a > b:
		return int(GreaterThan)
	}
	return int(Equal)
}

// Config configures a rank tree.
type Config[K, V, R any] struct {
	// Compare is a three-way comparison of keys.
	Compare func(a, b K) int
	// Rank aggregates entries up the tree.
	Rank RankGroup[K, V, R]
}

func (cfg Config[K, V, R]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Rank == nil {
		return fmt.Errorf("%w: rank group is required", ErrInvalidConfig)
	}
	return nil
}
