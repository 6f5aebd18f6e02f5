package ranktree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCollectRankWindow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := oneToTen()
	if r := tree.CollectRank(Between[int, string](3, 8).WithLimit(3)); r != 3 {
		t.Errorf("expected rank 3, have %d", r)
	}
	if r := tree.CollectRank(Between[int, string](3, 8).WithLimit(3).Reversed()); r != 3 {
		t.Errorf("expected rank 3 for reversed window, have %d", r)
	}
	if r := tree.CollectRank(Between[int, string](3, 8).WithLimit(20)); r != 6 {
		t.Errorf("expected limit beyond range to select 6 entries, have %d", r)
	}
	if r := tree.CollectRank(Filter[int, string]{}); r != 10 {
		t.Errorf("expected full rank of 10, have %d", r)
	}
	if r := tree.CollectRank(Filter[int, string]{}.WithLimit(4).Reversed()); r != 4 {
		t.Errorf("expected rank of 4 for last four entries, have %d", r)
	}
}

func TestCollectRankEmptyWindows(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := oneToTen()
	if r := tree.CollectRank(AtLeast[int, string](11)); r != 0 {
		t.Errorf("expected 0 for min beyond all keys, have %d", r)
	}
	if r := tree.CollectRank(AtMost[int, string](0)); r != 0 {
		t.Errorf("expected 0 for max below all keys, have %d", r)
	}
	if r := tree.CollectRank(Between[int, string](8, 3)); r != 0 {
		t.Errorf("expected 0 for inverted range, have %d", r)
	}
	gap := treeOf(1, 3)
	if r := gap.CollectRank(Between[int, string](2, 2)); r != 0 {
		t.Errorf("expected 0 for range between keys, have %d", r)
	}
	if r := NewOrdered[int, string]().CollectRank(Filter[int, string]{}); r != 0 {
		t.Errorf("expected 0 for empty tree, have %d", r)
	}
}

func TestCollectRankSingleEntry(t *testing.T) {
	tree := oneToTen()
	if r := tree.CollectRank(Between[int, string](4, 4)); r != 1 {
		t.Errorf("expected rank 1 for single entry, have %d", r)
	}
	single := treeOf(7)
	if r := single.CollectRank(Filter[int, string]{}); r != 1 {
		t.Errorf("expected rank 1 for single entry tree, have %d", r)
	}
}

func TestCollectRankKeySum(t *testing.T) {
	tree := newKeySumTree(t)
	for _, k := range []int{7, 2, 9, 1, 5, 10, 3, 8, 4, 6} {
		tree.Insert(k, "")
	}
	if r := tree.CollectRank(Between[int, string](3, 8)); r != 33 {
		t.Errorf("expected 3+4+5+6+7+8 = 33, have %d", r)
	}
	if r := tree.CollectRank(Between[int, string](3, 8).WithLimit(3)); r != 12 {
		t.Errorf("expected 3+4+5 = 12, have %d", r)
	}
	if r := tree.CollectRank(Between[int, string](3, 8).WithLimit(3).Reversed()); r != 21 {
		t.Errorf("expected 6+7+8 = 21, have %d", r)
	}
}

func TestCollectRankIgnoresPredicate(t *testing.T) {
	tree := oneToTen()
	none := func(int, string) bool { return false }
	if r := tree.CollectRank(Between[int, string](2, 5).Where(none)); r != 4 {
		t.Errorf("expected predicate to be ignored, have rank %d", r)
	}
}

func TestCollectRankMatchesQuery(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rnd := rand.New(rand.NewSource(4711))
	for size := 1; size <= 40; size++ {
		tree := newKeySumTree(t)
		for i := 0; i < size; i++ {
			tree.Insert(rnd.Intn(30), "")
		}
		for i := 0; i < 50; i++ {
			lo, hi := rnd.Intn(34)-2, rnd.Intn(34)-2
			f := Between[int, string](lo, hi).WithLimit(rnd.Intn(size + 2))
			if rnd.Intn(2) == 0 {
				f = f.Reversed()
			}
			expected := 0
			for _, e := range tree.Query(f).Entries {
				expected += e.Key
			}
			if r := tree.CollectRank(f); r != expected {
				t.Fatalf("size %d, filter [%d,%d] limit=%d reverse=%v: expected %d, have %d",
					size, lo, hi, f.Limit, f.Reverse, expected, r)
			}
		}
	}
}
