package metrics

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/ranktree"
)

// Number is the set of types which may be summed up by rank groups of this
// package.
type Number interface {
	constraints.Integer | constraints.Float
}

// ValueSum is a rank group summing up the values of entries.
type ValueSum[K any, V Number] struct{}

func (ValueSum[K, V]) Zero() V             { return 0 }
func (ValueSum[K, V]) Of(_ K, value V) V   { return value }
func (ValueSum[K, V]) Add(left, right V) V { return left + right }
func (ValueSum[K, V]) Sub(total, part V) V { return total - part }

// KeySum is a rank group summing up the keys of entries.
type KeySum[K Number, V any] struct{}

func (KeySum[K, V]) Zero() K             { return 0 }
func (KeySum[K, V]) Of(key K, _ V) K     { return key }
func (KeySum[K, V]) Add(left, right K) K { return left + right }
func (KeySum[K, V]) Sub(total, part K) K { return total - part }

// Weight is a rank group summing up an arbitrary weight per entry.
//
//	byLength := metrics.Weight[string, []byte](func(_ string, v []byte) int64 {
//	    return int64(len(v))
//	})
type Weight[K, V any] func(key K, value V) int64

func (w Weight[K, V]) Zero() int64                 { return 0 }
func (w Weight[K, V]) Of(key K, value V) int64     { return w(key, value) }
func (w Weight[K, V]) Add(left, right int64) int64 { return left + right }
func (w Weight[K, V]) Sub(total, part int64) int64 { return total - part }

// Pair is an aggregate consisting of two independent aggregates.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product combines two rank groups into one, aggregating both of them at once.
// The first and second group are applied to the respective components of a
// Pair.
type Product[K, V, A, B any] struct {
	First  ranktree.RankGroup[K, V, A]
	Second ranktree.RankGroup[K, V, B]
}

// Zero returns the pair of neutral elements.
func (p Product[K, V, A, B]) Zero() Pair[A, B] {
	return Pair[A, B]{First: p.First.Zero(), Second: p.Second.Zero()}
}

// Of returns the contributions of an entry to both groups.
func (p Product[K, V, A, B]) Of(key K, value V) Pair[A, B] {
	return Pair[A, B]{First: p.First.Of(key, value), Second: p.Second.Of(key, value)}
}

// Add adds component-wise.
func (p Product[K, V, A, B]) Add(left, right Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Add(left.First, right.First),
		Second: p.Second.Add(left.Second, right.Second),
	}
}

// Sub subtracts component-wise.
func (p Product[K, V, A, B]) Sub(total, part Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Sub(total.First, part.First),
		Second: p.Second.Sub(total.Second, part.Second),
	}
}

var _ ranktree.RankGroup[int, int, int] = ValueSum[int, int]{}
var _ ranktree.RankGroup[int, string, int] = KeySum[int, string]{}
var _ ranktree.RankGroup[string, []byte, int64] = Weight[string, []byte](nil)
var _ ranktree.RankGroup[int, int, Pair[int, int]] = Product[int, int, int, int]{}
