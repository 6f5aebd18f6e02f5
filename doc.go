/*
Package ranktree implements a generic order-statistics map on top of an
AVL-balanced binary search tree.

Every node of the tree carries a rank aggregate summarizing the subtree it
roots. Aggregates are pluggable: clients provide a RankGroup, which is a
monoid with an exact inverse operation. The default rank group is Count,
where the aggregate of a subtree is simply the number of its entries.

Besides classic key lookup, trees support

  - index-based access (“what is the i-th smallest key?”) and the inverse
    operation (“at which position is key k?”),
  - predecessor and successor queries,
  - range-filtered enumeration with limits and a reverse mode,
  - computation of the rank aggregate over an arbitrary key range in O(log n),
  - construction of a balanced tree from two existing trees in O(n).

Keys may occur more than once. Duplicate keys are kept in insertion order.

	Operation     |   Time
	--------------+-----------
	Insert        |   O(log n)
	Remove        |   O(log n)
	Find          |   O(log n)
	FindByIndex   |   O(log n)
	IndexOfKey    |   O(log n)
	CollectRank   |   O(log n)
	Query         |   O(n)
	Merge         |   O(n+m)

Trees are not safe for concurrent use. Clients have to guard a tree
with a mutex if it is shared between goroutines.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ranktree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
