package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/fingertree/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Errorf("expected Just(7) to match Just, matched Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	matchedNothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		matchedNothing = true
	}
	if !matchedNothing || w != 0 {
		t.Errorf("expected Nothing to match Nothing and leave w at 0, have w=%#v", w)
	}
}

func TestMaybeGet(t *testing.T) {
	v, ok := Just("a").Get()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = Nothing[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, Nothing[string]().IsNothing())
	assert.False(t, Just("").IsNothing())
}

func TestMaybeOf(t *testing.T) {
	assert.False(t, Of(1, true).IsNothing())
	assert.True(t, Of(1, false).IsNothing())
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, hasn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, doesn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 14, Just(7).Map(double).WithDefault(0))
	assert.True(t, Nothing[int]().Map(double).IsNothing())

	s := Map(strconv.Itoa, Just(10))
	assert.Equal(t, "10", s.WithDefault(""))
	assert.True(t, Map(strconv.Itoa, Nothing[int]()).IsNothing())
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeString(t *testing.T) {
	assert.Equal(t, "Just(3)", Just(3).(interface{ String() string }).String())
	assert.Equal(t, "Nothing", Nothing[int]().(interface{ String() string }).String())
}

func TestMaybeUncomparableValues(t *testing.T) {
	x := Just([]int{1, 2})
	var v []int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%v)", v)
	case m.Nothing():
		t.Error("expected Just([1 2]) to match Just, matched Nothing")
	}
	assert.Equal(t, []int{1, 2}, v)

	matchedNothing := false
	switch m := Nothing[map[string]int]().Match(); m {
	case m.Just(nil):
		t.Error("expected Nothing to match Nothing, matched Just")
	case m.Nothing():
		matchedNothing = true
	}
	assert.True(t, matchedNothing)

	type pair struct {
		values []int
		n      int
	}
	n := Map(func(p pair) int { return len(p.values) + p.n }, Just(pair{values: []int{1}, n: 1}))
	assert.Equal(t, 2, n.WithDefault(0))
	assert.Equal(t, []int{7}, Just([]int{7}).Map(func(xs []int) []int { return xs }).WithDefault(nil))
}
