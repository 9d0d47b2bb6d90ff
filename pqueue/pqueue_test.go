package pqueue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](q Queue[T]) []T {
	var values []T
	for !q.IsEmpty() {
		top, rest := q.Pop()
		v, _ := top.Get()
		values = append(values, v)
		q = rest
	}
	return values
}

func TestEmptyQueue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.pqueue")
	defer teardown()
	//
	var q Queue[string]
	if q.Len() != 0 {
		t.Errorf("expected empty queue to have length 0, has %d", q.Len())
	}
	if !q.Peek().IsNothing() {
		t.Errorf("expected Peek on empty queue to return Nothing")
	}
	x, q2 := q.Pop()
	assert.True(t, x.IsNothing())
	assert.True(t, q2.IsEmpty())
}

func TestPriorityOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.pqueue")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	q := New[string]().Push("low", 1).Push("high", 9).Push("mid", 5)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "high", q.Peek().WithDefault(""))
	assert.Equal(t, []string{"high", "mid", "low"}, drain(q))
	assert.Equal(t, 3, q.Len(), "original queue must not change")
}

func TestFIFOAmongEqualPriorities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.pqueue")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	q := New[string]().Push("a", 2).Push("b", 7).Push("c", 2).Push("d", 7).Push("e", 7)
	assert.Equal(t, []string{"b", "d", "e", "a", "c"}, drain(q))
}

func TestMerge(t *testing.T) {
	p := New[int]().Push(1, 1).Push(3, 3)
	q := New[int]().Push(2, 2).Push(33, 3)
	assert.Equal(t, []int{3, 33, 2, 1}, drain(p.Merge(q)))
	var zero Queue[int]
	assert.Equal(t, 2, zero.Merge(p).Len())
}

func TestRandomPriorities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.pqueue")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	type pushed struct{ seq, prio int }
	rnd := rand.New(rand.NewSource(99))
	q := New[pushed]()
	var all []pushed
	for i := 0; i < 500; i++ {
		p := pushed{seq: i, prio: rnd.Intn(20)}
		q = q.Push(p, p.prio)
		all = append(all, p)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].prio > all[j].prio })
	got := drain(q)
	require.Len(t, got, len(all))
	assert.Equal(t, all, got)
}

func TestSliceValues(t *testing.T) {
	q := New[[]int]().Push([]int{1}, 1).Push([]int{2, 2}, 2)
	assert.Equal(t, []int{2, 2}, q.Peek().WithDefault(nil))
	assert.Equal(t, [][]int{{2, 2}, {1}}, drain(q))
}
