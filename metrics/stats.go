package metrics

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/npillmayer/ranktree"
)

// ErrEmptyRange is returned by statistics which are undefined for a range
// without entries.
var ErrEmptyRange = errors.New("metrics: no entries in range")

// Stats aggregates the number of entries and the sum of their values.
type Stats[V Number] struct {
	Count int
	Sum   V
}

// StatsGroup is a rank group aggregating Stats over entry values.
type StatsGroup[K any, V Number] struct{}

// Zero returns empty statistics.
func (StatsGroup[K, V]) Zero() Stats[V] { return Stats[V]{} }

// Of returns the statistics for a single entry.
func (StatsGroup[K, V]) Of(_ K, value V) Stats[V] {
	return Stats[V]{Count: 1, Sum: value}
}

// Add merges two statistics.
func (StatsGroup[K, V]) Add(left, right Stats[V]) Stats[V] {
	return Stats[V]{Count: left.Count + right.Count, Sum: left.Sum + right.Sum}
}

// Sub removes part from total.
func (StatsGroup[K, V]) Sub(total, part Stats[V]) Stats[V] {
	return Stats[V]{Count: total.Count - part.Count, Sum: total.Sum - part.Sum}
}

// NewStatsTree creates a tree of ordered keys which aggregates Stats of its
// values.
func NewStatsTree[K constraints.Ordered, V Number]() *ranktree.Tree[K, V, Stats[V]] {
	tree, err := ranktree.New(ranktree.Config[K, V, Stats[V]]{
		Compare: ranktree.NaturalOrder[K],
		Rank:    StatsGroup[K, V]{},
	})
	if err != nil {
		panic(err) // cannot happen for a complete configuration
	}
	return tree
}

// Sum returns the sum of the values selected by filter.
func Sum[K any, V Number](tree *ranktree.Tree[K, V, Stats[V]], filter ranktree.Filter[K, V]) V {
	return tree.CollectRank(filter).Sum
}

// Count returns the number of entries selected by filter.
func Count[K any, V Number](tree *ranktree.Tree[K, V, Stats[V]], filter ranktree.Filter[K, V]) int {
	return tree.CollectRank(filter).Count
}

// Mean returns the arithmetic mean of the values selected by filter. If the
// filter selects no entries, ErrEmptyRange is returned.
func Mean[K any, V Number](tree *ranktree.Tree[K, V, Stats[V]], filter ranktree.Filter[K, V]) (float64, error) {
	stats := tree.CollectRank(filter)
	if stats.Count == 0 {
		tracer().Debugf("metrics: mean of empty range requested")
		return 0, fmt.Errorf("metrics.Mean could not be applied: %w", ErrEmptyRange)
	}
	return float64(stats.Sum) / float64(stats.Count), nil
}
