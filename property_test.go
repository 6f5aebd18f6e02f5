package ranktree

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// valueSum sums up integer values.
type valueSum struct{}

func (valueSum) Zero() int               { return 0 }
func (valueSum) Of(_ int, v int) int     { return v }
func (valueSum) Add(left, right int) int { return left + right }
func (valueSum) Sub(total, part int) int { return total - part }

// oracleItem is an entry of the reference B-tree. Duplicate keys are kept
// apart by an insertion sequence number.
type oracleItem struct {
	key, seq int
}

func oracleLess(a, b oracleItem) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

type oracle struct {
	bt  *btree.BTreeG[oracleItem]
	seq int
}

func newOracle() *oracle {
	return &oracle{bt: btree.NewG[oracleItem](8, oracleLess)}
}

func (o *oracle) insert(key int) {
	o.seq++
	o.bt.ReplaceOrInsert(oracleItem{key: key, seq: o.seq})
}

func (o *oracle) remove(key int) bool {
	var found *oracleItem
	o.bt.AscendGreaterOrEqual(oracleItem{key: key, seq: -1}, func(item oracleItem) bool {
		if item.key == key {
			found = &item
		}
		return false
	})
	if found == nil {
		return false
	}
	o.bt.Delete(*found)
	return true
}

func (o *oracle) keys() []int {
	keys := make([]int, 0, o.bt.Len())
	o.bt.Ascend(func(item oracleItem) bool {
		keys = append(keys, item.key)
		return true
	})
	return keys
}

// window returns the keys in [lo, hi], limited and reversed like a Filter.
func (o *oracle) window(lo, hi, limit int, reverse bool) []int {
	var keys []int
	visit := func(item oracleItem) bool {
		if item.key < lo || item.key > hi {
			return true
		}
		keys = append(keys, item.key)
		return limit <= 0 || len(keys) < limit
	}
	if reverse {
		o.bt.Descend(visit)
	} else {
		o.bt.Ascend(visit)
	}
	return keys
}

func newValueSumTree(t testing.TB) *Tree[int, int, int] {
	tree, err := New(Config[int, int, int]{Compare: NaturalOrder[int], Rank: valueSum{}})
	require.NoError(t, err)
	return tree
}

func TestRandomizedAgainstOracle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(1))
	tree := newValueSumTree(t)
	ref := newOracle()
	const keyspace = 64
	for round := 0; round < 2000; round++ {
		key := rnd.Intn(keyspace)
		if rnd.Intn(3) == 0 {
			require.Equal(t, ref.remove(key), tree.Remove(key), "remove %d in round %d", key, round)
		} else {
			tree.Insert(key, 10*key)
			ref.insert(key)
		}
		if round%10 != 0 {
			continue
		}
		require.NoError(t, tree.Check(), "round %d", round)
		expected := ref.keys()
		require.Equal(t, len(expected), tree.Size())
		if len(expected) == 0 {
			require.Empty(t, keysOf(tree))
			continue
		}
		require.Equal(t, expected, keysOf(tree))
		checkOrderStatistics(t, tree, expected)
		checkWindows(t, rnd, tree, ref, keyspace)
		checkNeighbours(t, tree, ref, rnd.Intn(keyspace+2)-1)
	}
}

func checkOrderStatistics(t *testing.T, tree *Tree[int, int, int], expected []int) {
	t.Helper()
	for i, k := range expected {
		e, err := tree.FindByIndex(i)
		require.NoError(t, err)
		require.Equal(t, k, e.Key, "FindByIndex(%d)", i)
		require.Equal(t, 10*k, e.Value)
		idx := tree.IndexOfKey(k)
		require.GreaterOrEqual(t, idx, 0)
		require.Equal(t, k, expected[idx], "IndexOfKey(%d) = %d", k, idx)
	}
}

func checkWindows(t *testing.T, rnd *rand.Rand, tree *Tree[int, int, int], ref *oracle, keyspace int) {
	t.Helper()
	for i := 0; i < 8; i++ {
		lo, hi := rnd.Intn(keyspace+4)-2, rnd.Intn(keyspace+4)-2
		limit := rnd.Intn(tree.Size() + 2)
		reverse := rnd.Intn(2) == 0
		f := Between[int, int](lo, hi).WithLimit(limit)
		if reverse {
			f = f.Reversed()
		}
		keys := ref.window(lo, hi, limit, reverse)
		result := tree.Query(f)
		require.Equal(t, len(keys), result.Total)
		if len(keys) > 0 {
			require.Equal(t, keys, result.Keys(), "window [%d,%d] limit=%d reverse=%v", lo, hi, limit, reverse)
		}
		sum := 0
		for _, k := range keys {
			sum += 10 * k
		}
		require.Equal(t, sum, tree.CollectRank(f), "rank of window [%d,%d] limit=%d reverse=%v", lo, hi, limit, reverse)
	}
	require.Equal(t, tree.Rank(), tree.CollectRank(Filter[int, int]{}))
}

func checkNeighbours(t *testing.T, tree *Tree[int, int, int], ref *oracle, key int) {
	t.Helper()
	pred, hasPred := oracleItem{}, false
	ref.bt.DescendLessOrEqual(oracleItem{key: key, seq: -1}, func(item oracleItem) bool {
		pred, hasPred = item, true
		return false
	})
	e, ok := tree.Closest(key, LessThan)
	require.Equal(t, hasPred, ok, "predecessor of %d", key)
	if ok {
		require.Equal(t, pred.key, e.Key)
	}
	succ, hasSucc := oracleItem{}, false
	ref.bt.AscendGreaterOrEqual(oracleItem{key: key + 1, seq: -1}, func(item oracleItem) bool {
		succ, hasSucc = item, true
		return false
	})
	e, ok = tree.Closest(key, GreaterThan)
	require.Equal(t, hasSucc, ok, "successor of %d", key)
	if ok {
		require.Equal(t, succ.key, e.Key)
	}
}

func FuzzRandomizedOps(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{9, 9, 9, 9, 3, 3, 3, 0, 0, 0})
	f.Add([]byte{200, 13, 77, 130, 4, 66, 201, 255, 17})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := newValueSumTree(t)
		ref := newOracle()
		for _, op := range ops {
			key := int(op >> 2)
			if op&3 == 0 {
				require.Equal(t, ref.remove(key), tree.Remove(key))
			} else {
				tree.Insert(key, 10*key)
				ref.insert(key)
			}
		}
		require.NoError(t, tree.Check())
		expected := ref.keys()
		require.Equal(t, len(expected), tree.Size())
		if len(expected) > 0 {
			require.Equal(t, expected, keysOf(tree))
			require.Equal(t, tree.Rank(), tree.CollectRank(Filter[int, int]{}))
		}
	})
}
