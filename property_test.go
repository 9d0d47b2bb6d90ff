package fingertree

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/fingertree/monoid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Randomized tests. Seeds are fixed, failures are reproducible.

func randomInts(rnd *rand.Rand, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rnd.Intn(1000)
	}
	return xs
}

// Sizes around the thresholds where trees get deeper.
var sizes = []int{0, 1, 2, 3, 4, 5, 8, 9, 12, 13, 20, 33, 64, 100, 257, 1000}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range sizes {
		xs := randomInts(rnd, n)
		tree := counted(xs...)
		require.Equal(t, xs, tree.Flatten(), "round trip for n=%d", n)
		require.Equal(t, n, tree.Measure())
		require.NoError(t, tree.Check(), "invariants for n=%d", n)
	}
}

func TestConcatProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(2))
	for round := 0; round < 50; round++ {
		as := randomInts(rnd, sizes[rnd.Intn(len(sizes))])
		bs := randomInts(rnd, sizes[rnd.Intn(len(sizes))])
		cs := randomInts(rnd, sizes[rnd.Intn(len(sizes))])
		a, b, c := counted(as...), counted(bs...), counted(cs...)
		ab, err := a.Concat(b)
		require.NoError(t, err)
		assert.Equal(t, concatSlices(as, bs), ab.Flatten())
		require.NoError(t, ab.Check())
		//
		abc1, _ := ab.Concat(c)
		bc, _ := b.Concat(c)
		abc2, _ := a.Concat(bc)
		assert.Equal(t, abc1.Flatten(), abc2.Flatten())
		assert.Equal(t, len(as)+len(bs)+len(cs), abc1.Measure())
		require.NoError(t, abc1.Check())
		require.NoError(t, abc2.Check())
	}
}

func TestSplitLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(3))
	for _, n := range sizes {
		xs := randomInts(rnd, n)
		tree := From[int, int](monoid.Sum[int]{}, xs...)
		total := tree.Measure()
		for k := 0; k < 20; k++ {
			limit := rnd.Intn(total + 2)
			pred := func(s int) bool { return s > limit }
			l, r := tree.Split(pred)
			assert.Equal(t, xs, concatSlices(l.Flatten(), r.Flatten()))
			if !l.IsEmpty() {
				assert.False(t, pred(l.Measure()), "pred must be false on the left part")
			}
			if !r.IsEmpty() {
				x := r.Head().WithDefault(0)
				assert.True(t, pred(l.Measure()+x), "pred must be true including the head of the right part")
			}
			require.NoError(t, l.Check())
			require.NoError(t, r.Check())
		}
	}
}

func TestMeasureHomomorphism(t *testing.T) {
	// string concatenation is associative but not commutative
	m := monoid.Of(
		func(s string) string { return s },
		func(a, b string) string { return a + b },
		func() string { return "" })
	rnd := rand.New(rand.NewSource(4))
	for _, n := range sizes {
		words := make([]string, n)
		for i := range words {
			words[i] = string(rune('a' + rnd.Intn(26)))
		}
		tree := From[string, string](m, words...)
		assert.Equal(t, strings.Join(words, ""), tree.Measure())
		if n > 2 {
			l, r := tree.Split(func(s string) bool { return len(s) > n/2 })
			assert.Equal(t, strings.Join(words[:n/2], ""), l.Measure())
			assert.Equal(t, strings.Join(words[n/2:], ""), r.Measure())
		}
	}
}

func TestPersistence(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	xs := randomInts(rnd, 300)
	tree := counted(xs...)
	snapshot := tree.Flatten()
	_ = tree.Append(1).Prepend(2).Tail().Init()
	_, _ = tree.Split(gt(150))
	_, _ = tree.Concat(tree)
	_ = tree.UpdateHead(func(int) int { return -1 })
	_ = tree.UpdateLast(func(int) int { return -1 })
	_ = tree.UpdateFirstMatch(func(int) int { return -1 }, gt(100))
	_ = tree.Map(func(x int) int { return -x })
	_ = tree.MapTrue(func(int, int, int) int { return -1 }, func(l, _ int) bool { return l > 10 })
	assert.Equal(t, snapshot, tree.Flatten())
	assert.NoError(t, tree.Check())
}

// A tree used as a deque is compared against a slice.
func TestDequeModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(6))
	tree := counted[int]()
	var model []int
	for step := 0; step < 3000; step++ {
		switch rnd.Intn(5) {
		case 0, 1:
			tree = tree.Append(step)
			model = append(model, step)
		case 2:
			tree = tree.Prepend(step)
			model = append([]int{step}, model...)
		case 3:
			tree = tree.Tail()
			if len(model) > 0 {
				model = model[1:]
			}
		case 4:
			tree = tree.Init()
			if len(model) > 0 {
				model = model[:len(model)-1]
			}
		}
		if tree.Measure() != len(model) {
			t.Fatalf("step %d: expected length %d, have %d", step, len(model), tree.Measure())
		}
		if len(model) > 0 {
			h, _ := tree.Head().Get()
			l, _ := tree.Last().Get()
			if h != model[0] || l != model[len(model)-1] {
				t.Fatalf("step %d: ends are (%d,%d), expected (%d,%d)", step, h, l, model[0], model[len(model)-1])
			}
		}
		if step%500 == 0 {
			require.NoError(t, tree.Check())
		}
	}
	assert.Equal(t, append([]int{}, model...), tree.Flatten())
}

// Cutting a tree into random pieces and gluing them together again.
func TestSplitConcatRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	xs := randomInts(rnd, 500)
	tree := counted(xs...)
	for k := 0; k < 100; k++ {
		i := rnd.Intn(len(xs) + 1)
		l, r := tree.Split(gt(i))
		glued, err := l.Concat(r)
		require.NoError(t, err)
		require.NoError(t, glued.Check())
		tree = glued
	}
	assert.Equal(t, xs, tree.Flatten())
}

func concatSlices[T any](a, b []T) []T {
	c := make([]T, 0, len(a)+len(b))
	c = append(c, a...)
	return append(c, b...)
}
