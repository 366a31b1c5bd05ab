package segtree

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(a, b int) int { return a + b }

func TestSumAcrossVersions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	p := New(0, 5, sum)
	require.True(t, p.Insert(0, 10))
	before, _ := p.Version(p.Versions())
	require.True(t, p.Insert(1, 20))
	assert.Equal(t, maybe.Just(30), p.Query(0, 2))
	assert.Equal(t, maybe.Just(10), before.Query(0, 2))
	v1, ok := p.Version(1)
	require.True(t, ok)
	assert.Equal(t, 10, v1.Query(0, 2).WithDefault(-1))
	t.Logf("latest =\n%s", p.Latest())
}

func TestInsertAccumulates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	p := New(10, 20, sum)
	p.Insert(12, 1)
	p.Insert(12, 2)
	p.Insert(19, 4)
	assert.Equal(t, 3, p.Query(12, 13).WithDefault(0))
	assert.Equal(t, 7, p.Query(10, 20).WithDefault(0))
	assert.Equal(t, 3, p.Latest().Count())
	assert.True(t, p.Query(13, 19).IsNothing(), "expected no data in [13,19)")
	assert.False(t, p.Insert(20, 1))
	assert.False(t, p.Insert(9, 1))
	assert.Equal(t, 3, p.Versions())
}

func TestInvalidRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	p := New(0, 8, sum)
	p.Insert(3, 1)
	for _, r := range [][2]int{{2, 2}, {5, 1}, {-1, 4}, {0, 9}} {
		assert.True(t, p.Query(r[0], r[1]).IsNothing(), "range [%d,%d)", r[0], r[1])
	}
	empty, _ := p.Version(0)
	assert.True(t, empty.Query(0, 8).IsNothing())
	assert.Equal(t, "∅", strings.TrimSpace(empty.String()))
	_, ok := p.Version(2)
	assert.False(t, ok)
	assert.Panics(t, func() { New(3, 3, sum) })
}

func TestNonCommutativeCombine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	concat := func(a, b string) string { return a + b }
	p := New(0, 6, concat)
	for i, s := range []string{"d", "a", "f", "b", "e", "c"} {
		p.Insert([]int{3, 0, 5, 1, 4, 2}[i], s)
	}
	assert.Equal(t, "abcdef", p.Query(0, 6).WithDefault(""))
	assert.Equal(t, "bcd", p.Query(1, 4).WithDefault(""))
	v3, _ := p.Version(3)
	assert.Equal(t, "adf", v3.Query(0, 6).WithDefault(""))
}

func TestQueryNth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	p := New(0, 1000, sum)
	for i, v := range []int{10, 20, 30, 50, 100} {
		p.Insert(i, v)
	}
	assert.Equal(t, maybe.Just(10), p.QueryNth(0, 10, 1))
	assert.Equal(t, maybe.Just(100), p.QueryNth(0, 10, 5))
	assert.True(t, p.QueryNth(0, 10, 100).IsNothing())
	assert.Equal(t, maybe.Just(30), p.QueryNth(1, 3, 2), "window holds inserts 2 and 3")
	assert.Equal(t, maybe.Just(20), p.QueryNth(1, 3, 1))
	assert.True(t, p.QueryNth(1, 3, 3).IsNothing())
	//
	dup := New(0, 10, sum)
	for _, x := range []int{7, 2, 7} {
		dup.Insert(x, 1)
	}
	assert.Equal(t, maybe.Just(2), dup.QueryNth(0, 3, 3), "aggregate of index 7 in version 3")
	assert.Equal(t, maybe.Just(2), dup.QueryNth(1, 3, 2))
	assert.Equal(t, maybe.Just(1), dup.QueryNth(0, 1, 1))
}

func TestIndexNth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	// version i marks index a[i-1]
	a := []int{5, 1, 4, 1, 3}
	p := New(0, 10, sum)
	for _, x := range a {
		p.Insert(x, 1)
	}
	nth := func(l, r, n int) int { return p.IndexNth(l, r, n).WithDefault(-1) }
	assert.Equal(t, 1, nth(0, 5, 1))
	assert.Equal(t, 1, nth(0, 5, 2))
	assert.Equal(t, 3, nth(0, 5, 3))
	assert.Equal(t, 5, nth(0, 5, 5))
	assert.Equal(t, 4, nth(2, 3, 1))
	assert.Equal(t, 3, nth(2, 5, 2))
	assert.Equal(t, 5, nth(0, 1, 1))
	assert.Equal(t, 5, nth(0, 99, 5), "expected r to be clamped")
	assert.True(t, p.IndexNth(0, 5, 6).IsNothing())
	assert.True(t, p.IndexNth(0, 5, 0).IsNothing())
	assert.True(t, p.IndexNth(4, 3, 1).IsNothing())
	assert.True(t, p.IndexNth(3, 3, 1).IsNothing(), "empty window")
	assert.True(t, p.IndexNth(-1, 3, 1).IsNothing())
	assert.True(t, p.IndexNth(7, 99, 1).IsNothing())
}

func TestIndexNthRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	r := rand.New(rand.NewPCG(41, 42))
	const n = 300
	marks := make([]int, n)
	p := New(0, 64, sum)
	for i := range marks {
		marks[i] = r.IntN(64)
		p.Insert(marks[i], 1)
	}
	for i := 0; i < 500; i++ {
		l := r.IntN(n)
		hi := l + 1 + r.IntN(n-l)
		window := slices.Clone(marks[l:hi])
		slices.Sort(window)
		k := 1 + r.IntN(len(window))
		require.Equal(t, window[k-1], p.IndexNth(l, hi, k).WithDefault(-1),
			"window (%d,%d], k=%d", l, hi, k)
	}
}

func TestVersionsAreImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	r := rand.New(rand.NewPCG(43, 44))
	p := New(0, 50, sum)
	oracle := [][50]int{{}}
	for i := 0; i < 200; i++ {
		x, v := r.IntN(50), r.IntN(100)
		p.Insert(x, v)
		next := oracle[len(oracle)-1]
		next[x] += v
		oracle = append(oracle, next)
	}
	for i := 0; i < 1000; i++ {
		ver := r.IntN(len(oracle))
		l := r.IntN(50)
		h := l + 1 + r.IntN(50-l)
		s, ok := p.Version(ver)
		require.True(t, ok)
		want := 0
		for j := l; j < h; j++ {
			want += oracle[ver][j]
		}
		require.Equal(t, want, s.Query(l, h).WithDefault(0), "version %d, [%d,%d)", ver, l, h)
	}
}

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	defer teardown()
	//
	minimum := func(a, b int) int { return min(a, b) }
	tree := FromSlice([]int{5, 2, 8, 1, 9, 3}, minimum)
	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, 1, tree.Query(0, 6).WithDefault(-1))
	assert.Equal(t, 2, tree.Query(0, 3).WithDefault(-1))
	assert.Equal(t, 3, tree.Query(4, 6).WithDefault(-1))
	require.True(t, tree.Set(3, 10))
	assert.Equal(t, 2, tree.Query(0, 6).WithDefault(-1))
	assert.False(t, tree.Set(6, 0))
	assert.True(t, tree.Query(3, 3).IsNothing())
	assert.True(t, tree.Query(0, 7).IsNothing())
	//
	sparse := NewTree(5, func(a, b string) string { return a + b })
	assert.True(t, sparse.Query(0, 5).IsNothing())
	sparse.Set(4, "z")
	sparse.Set(0, "a")
	sparse.Set(2, "m")
	assert.Equal(t, "amz", sparse.Query(0, 5).WithDefault(""))
	assert.Equal(t, "m", sparse.Query(1, 4).WithDefault(""))
	//
	one := NewTree(1, sum)
	one.Set(0, 7)
	assert.Equal(t, 7, one.Query(0, 1).WithDefault(0))
	assert.True(t, NewTree(0, sum).Query(0, 0).IsNothing())
}

func TestTreeRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.segtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	r := rand.New(rand.NewPCG(45, 46))
	vals := make([]int, 37)
	for i := range vals {
		vals[i] = r.IntN(1000)
	}
	tree := FromSlice(vals, sum)
	for i := 0; i < 2000; i++ {
		if r.IntN(2) == 0 {
			j, v := r.IntN(len(vals)), r.IntN(1000)
			vals[j] = v
			tree.Set(j, v)
			continue
		}
		l := r.IntN(len(vals))
		h := l + 1 + r.IntN(len(vals)-l)
		want := 0
		for _, v := range vals[l:h] {
			want += v
		}
		require.Equal(t, want, tree.Query(l, h).WithDefault(-1))
	}
}
