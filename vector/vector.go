package vector

import (
	"iter"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/maybe"
	"github.com/npillmayer/fingertree/monoid"
)

// Vector is an immutable sequence of values of type T, indexed from 0.
// The zero value is an empty vector, ready to use.
type Vector[T any] struct {
	tree fingertree.FingerTree[T, int]
}

// Immutable creates an empty vector.
func Immutable[T any]() Vector[T] {
	return Vector[T]{tree: fingertree.New[T, int](monoid.Count[T]{})}
}

// From creates a vector holding values.
func From[T any](values ...T) Vector[T] {
	return Vector[T]{tree: fingertree.From[T, int](monoid.Count[T]{}, values...)}
}

// init gives zero-value vectors a counting measure.
func (v Vector[T]) init() Vector[T] {
	if v.tree.MeasureFunc() == nil {
		return Immutable[T]()
	}
	return v
}

// atIndex is a predicate turning true for the element at index i.
func atIndex(i int) func(int) bool {
	return func(n int) bool { return n > i }
}

// --- API -------------------------------------------------------------------

func (v Vector[T]) Len() int {
	return v.init().tree.Measure()
}

func (v Vector[T]) First() maybe.Maybe[T] {
	return v.tree.Head()
}

func (v Vector[T]) Last() maybe.Maybe[T] {
	return v.tree.Last()
}

func (v Vector[T]) Get(i int) T {
	v = v.init()
	assertThat(i >= 0 && i < v.Len(), "vector index out of bounds: %d with length %d", i, v.Len())
	x, _ := v.tree.FirstMatch(atIndex(i)).Get()
	return x
}

func (v Vector[T]) Set(i int, value T) Vector[T] {
	v = v.init()
	assertThat(i >= 0 && i < v.Len(), "vector index out of bounds: %d with length %d", i, v.Len())
	return Vector[T]{tree: v.tree.UpdateFirstMatch(func(T) T { return value }, atIndex(i))}
}

// Push appends value at the end of v.
func (v Vector[T]) Push(value T) Vector[T] {
	return Vector[T]{tree: v.init().tree.Append(value)}
}

// Pop removes the last value of v.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(!v.tree.IsEmpty(), "attempt to remove item from empty vector")
	return Vector[T]{tree: v.init().tree.Init()}
}

// InsertAt inserts value at index i, shifting values at positions ≥ i to the
// right. i may be equal to Len(), appending value.
func (v Vector[T]) InsertAt(i int, value T) Vector[T] {
	v = v.init()
	assertThat(i >= 0 && i <= v.Len(), "vector index out of bounds: %d with length %d", i, v.Len())
	l, r := v.tree.Split(atIndex(i))
	tracer().Debugf("insert at %d: split into %d + %d", i, l.Measure(), r.Measure())
	return Vector[T]{tree: mustConcat(l.Append(value), r)}
}

// DeleteAt removes the value at index i.
func (v Vector[T]) DeleteAt(i int) Vector[T] {
	v = v.init()
	assertThat(i >= 0 && i < v.Len(), "vector index out of bounds: %d with length %d", i, v.Len())
	l, r := v.tree.Split(atIndex(i))
	return Vector[T]{tree: mustConcat(l, r.Tail())}
}

// Slice returns the values at indices from…to-1, like v[from:to] for slices.
func (v Vector[T]) Slice(from, to int) Vector[T] {
	v = v.init()
	assertThat(from >= 0 && from <= to && to <= v.Len(), "slice bounds out of range [%d:%d] with length %d",
		from, to, v.Len())
	rest := v.tree.DropUntil(atIndex(from))
	return Vector[T]{tree: rest.TakeUntil(atIndex(to - from))}
}

// SplitAt returns v[:i] and v[i:].
func (v Vector[T]) SplitAt(i int) (Vector[T], Vector[T]) {
	v = v.init()
	assertThat(i >= 0 && i <= v.Len(), "vector index out of bounds: %d with length %d", i, v.Len())
	l, r := v.tree.Split(atIndex(i))
	return Vector[T]{tree: l}, Vector[T]{tree: r}
}

// Concat returns a vector holding the values of v followed by the values of w.
func (v Vector[T]) Concat(w Vector[T]) Vector[T] {
	return Vector[T]{tree: mustConcat(v.init().tree, w.init().tree)}
}

// All returns an iterator over the indices and values of v, in order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := range v.tree.All() {
			if !yield(i, x) {
				return
			}
			i++
		}
	}
}

// Values returns the values of v as a slice.
func (v Vector[T]) Values() []T {
	return v.tree.Flatten()
}

// mustConcat concatenates trees of vectors. Vector measures all compare
// equal, concatenation cannot fail.
func mustConcat[T any](l, r fingertree.FingerTree[T, int]) fingertree.FingerTree[T, int] {
	t, err := l.Concat(r)
	assertThat(err == nil, "%v", err)
	return t
}
