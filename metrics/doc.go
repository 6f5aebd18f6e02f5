/*
Package metrics provides some pre-manufactured rank groups for rank trees.

A rank group tells a tree how to aggregate entries up the tree. Package
ranktree counts entries by default; the groups in this package sum up keys,
values or user-defined weights, or combine two aggregates into one.
Helpers like Sum and Mean compute statistics over key ranges in O(log n).

Floating point aggregates are subject to rounding: subtracting a partial sum
from a total will not always reproduce the other part exactly. Clients who need
exact results should aggregate integers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/ranktree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the core tracer, as does package ranktree.
func tracer() tracing.Trace {
	return ranktree.T()
}
