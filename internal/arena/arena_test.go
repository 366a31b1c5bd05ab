package arena

import (
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tnode struct {
	Slot
	key  int
	next *tnode
}

func TestArenaAllocRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.arena")
	defer teardown()
	//
	a := New[tnode, *tnode](ordered.DefaultKeep)
	n1, n2 := a.Alloc(), a.Alloc()
	n1.key, n1.next = 1, n2
	require.Equal(t, 2, a.Live())
	a.Release(n1)
	assert.Equal(t, 1, a.Live())
	assert.True(t, n1.Released())
	assert.Nil(t, n1.next, "released node must drop its links")
	assert.Zero(t, n1.key)
	n3 := a.Alloc()
	assert.Same(t, n1, n3, "expected released node to be re-used")
	assert.False(t, n3.Released())
	assert.Equal(t, 1, a.Stats().Reused)
	assert.Equal(t, 2, a.Live())
}

func TestArenaDoubleRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.arena")
	defer teardown()
	//
	var a Arena[tnode, *tnode]
	n := a.Alloc()
	a.Release(n)
	assert.Panics(t, func() { a.Release(n) })
}

func TestArenaKeepsBoundedFreeList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.arena")
	defer teardown()
	//
	a := New[tnode, *tnode](2)
	nodes := make([]*tnode, 5)
	for i := range nodes {
		nodes[i] = a.Alloc()
	}
	for _, n := range nodes {
		a.Release(n)
	}
	assert.Len(t, a.free, 2)
	assert.Equal(t, 0, a.Live())
	for range nodes {
		a.Alloc()
	}
	st := a.Stats()
	assert.Equal(t, 2, st.Reused)
	assert.Equal(t, 5, st.Live())
	//
	none := New[tnode, *tnode](0)
	n := none.Alloc()
	none.Release(n)
	assert.NotSame(t, n, none.Alloc())
	//
	var zero Arena[tnode, *tnode]
	n = zero.Alloc()
	zero.Release(n)
	assert.NotSame(t, n, zero.Alloc(), "zero arena must not re-use nodes")
	assert.Equal(t, 0, zero.Stats().Reused)
}

func TestArenaReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.arena")
	defer teardown()
	//
	var a Arena[tnode, *tnode]
	for i := 0; i < 10; i++ {
		a.Alloc()
	}
	a.Reset()
	assert.Equal(t, 0, a.Live())
	t.Logf("after reset: %s", a.Stats())
}

func TestArenaAdopt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.arena")
	defer teardown()
	//
	var a, b Arena[tnode, *tnode]
	n1, n2 := b.Alloc(), b.Alloc()
	a.Adopt(&b, 2)
	assert.Equal(t, 0, b.Live())
	assert.Equal(t, 2, a.Live())
	a.Release(n1)
	a.Release(n2)
	assert.Equal(t, 0, a.Live())
	assert.Panics(t, func() { a.Adopt(&b, 1) })
	a.Adopt(&a, 0)
	assert.Equal(t, 0, a.Live())
}
