package fingertree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fingertree/maybe"
)

// FingerTree is a persistent sequence of elements of type E, measured by a
// monoid with values of type M.
//
// FingerTree is a small value type; copying it is cheap and every copy refers
// to the same immutable structure. Create instances with New or From. The
// zero value is an empty tree without a measure: it supports adding, removing
// and iterating elements, but operations depending on measures will panic.
// Concatenation with a tree created by New lends it that tree's measure.
type FingerTree[E, M any] struct {
	ms   *measurer[E, M]
	root tree[E, M]
}

// New creates an empty finger tree with measure m.
func New[E, M any](m Measure[E, M]) FingerTree[E, M] {
	assertThat(m != nil, ErrMeasureMismatch, "finger tree needs a measure")
	return FingerTree[E, M]{ms: &measurer[E, M]{m: m}, root: emptyTree[E, M]()}
}

// From creates a finger tree with measure m, holding xs.
func From[E, M any](m Measure[E, M], xs ...E) FingerTree[E, M] {
	return New(m).AppendMany(xs...)
}

func (t FingerTree[E, M]) tree() tree[E, M] {
	if t.root == nil {
		return emptyTree[E, M]()
	}
	return t.root
}

func (t FingerTree[E, M]) with(root tree[E, M]) FingerTree[E, M] {
	return FingerTree[E, M]{ms: t.ms, root: root}
}

func (t FingerTree[E, M]) mustHaveMeasure() {
	assertThat(t.ms != nil, ErrMeasureMismatch, "finger tree has no measure, create it with New()")
}

// offset returns the optional offset argument, defaulting to the neutral element.
func (t FingerTree[E, M]) offset(offset []M) M {
	if len(offset) > 0 {
		return offset[0]
	}
	return t.ms.m.Zero()
}

// --- Ends ------------------------------------------------------------------

// Append returns a tree with x added to the right end of t.
func (t FingerTree[E, M]) Append(x E) FingerTree[E, M] {
	return t.with(appendItem(t.tree(), item[E, M](leaf[E, M]{value: x})))
}

// Prepend returns a tree with x added to the left end of t.
func (t FingerTree[E, M]) Prepend(x E) FingerTree[E, M] {
	return t.with(prependItem(t.tree(), item[E, M](leaf[E, M]{value: x})))
}

// AppendMany appends xs one after the other.
func (t FingerTree[E, M]) AppendMany(xs ...E) FingerTree[E, M] {
	root := t.tree()
	for _, x := range xs {
		root = appendItem(root, item[E, M](leaf[E, M]{value: x}))
	}
	return t.with(root)
}

// PrependMany prepends xs one after the other, i.e. the elements will appear in
// reverse order at the front of the resulting tree.
func (t FingerTree[E, M]) PrependMany(xs ...E) FingerTree[E, M] {
	root := t.tree()
	for _, x := range xs {
		root = prependItem(root, item[E, M](leaf[E, M]{value: x}))
	}
	return t.with(root)
}

// AppendSeq appends all elements of seq.
func (t FingerTree[E, M]) AppendSeq(seq iter.Seq[E]) FingerTree[E, M] {
	root := t.tree()
	for x := range seq {
		root = appendItem(root, item[E, M](leaf[E, M]{value: x}))
	}
	return t.with(root)
}

// PrependSeq prepends all elements of seq, one after the other.
func (t FingerTree[E, M]) PrependSeq(seq iter.Seq[E]) FingerTree[E, M] {
	root := t.tree()
	for x := range seq {
		root = prependItem(root, item[E, M](leaf[E, M]{value: x}))
	}
	return t.with(root)
}

// Head returns the leftmost element, if any.
func (t FingerTree[E, M]) Head() maybe.Maybe[E] {
	if x, ok := headItem(t.tree()); ok {
		return maybe.Just(asLeaf(x))
	}
	return maybe.Nothing[E]()
}

// Last returns the rightmost element, if any.
func (t FingerTree[E, M]) Last() maybe.Maybe[E] {
	if x, ok := lastItem(t.tree()); ok {
		return maybe.Just(asLeaf(x))
	}
	return maybe.Nothing[E]()
}

// Tail returns t without its leftmost element. The tail of an empty tree is
// the empty tree.
func (t FingerTree[E, M]) Tail() FingerTree[E, M] {
	_, rest, _ := viewLeft(t.tree())
	return t.with(rest)
}

// Init returns t without its rightmost element. Init of an empty tree is the
// empty tree.
func (t FingerTree[E, M]) Init() FingerTree[E, M] {
	_, rest, _ := viewRight(t.tree())
	return t.with(rest)
}

func (t FingerTree[E, M]) IsEmpty() bool {
	return t.tree().isEmpty()
}

// --- Measure ---------------------------------------------------------------

// Measure returns the sum of the measures of all elements, or Zero() for an
// empty tree. Measures are cached, this is O(1) for trees which have been
// measured before.
func (t FingerTree[E, M]) Measure() M {
	t.mustHaveMeasure()
	return t.tree().measure(t.ms)
}

// MeasureFunc returns the measure t has been created with.
func (t FingerTree[E, M]) MeasureFunc() Measure[E, M] {
	if t.ms == nil {
		return nil
	}
	return t.ms.m
}

// --- Split -----------------------------------------------------------------

// Split cuts t in two at the first element where pred turns true. pred is
// applied to the accumulated measure of all elements left of and including
// the element in question, plus an optional offset. pred has to be monotone:
// once true, it must stay true for longer prefixes.
//
// If pred is false for the measure of the whole tree, Split returns t and an
// empty tree. Splitting an empty tree returns two empty trees.
//
//	l, r := t.Split(func(n int) bool { return n > 2 })  // count measure
//	// l holds the first 2 elements, r starts with element #2
func (t FingerTree[E, M]) Split(pred func(M) bool, offset ...M) (FingerTree[E, M], FingerTree[E, M]) {
	t.mustHaveMeasure()
	root := t.tree()
	if root.isEmpty() {
		return t.with(root), t.with(root)
	}
	acc := t.offset(offset)
	if !pred(t.ms.sum(acc, root.measure(t.ms))) {
		return t.with(root), t.with(emptyTree[E, M]())
	}
	l, x, r := splitTree(t.ms, pred, acc, root)
	tracer().Debugf("split: cut before %v", asLeaf(x))
	return t.with(l), t.with(prependItem(r, x))
}

// TakeUntil returns the elements left of the first element where pred
// turns true. See Split.
func (t FingerTree[E, M]) TakeUntil(pred func(M) bool, offset ...M) FingerTree[E, M] {
	l, _ := t.Split(pred, offset...)
	return l
}

// DropUntil returns the elements starting at the first element where pred
// turns true. See Split.
func (t FingerTree[E, M]) DropUntil(pred func(M) bool, offset ...M) FingerTree[E, M] {
	_, r := t.Split(pred, offset...)
	return r
}

// TakeWhile returns the elements as long as pred is true.
func (t FingerTree[E, M]) TakeWhile(pred func(M) bool, offset ...M) FingerTree[E, M] {
	return t.TakeUntil(not(pred), offset...)
}

// DropWhile drops elements as long as pred is true.
func (t FingerTree[E, M]) DropWhile(pred func(M) bool, offset ...M) FingerTree[E, M] {
	return t.DropUntil(not(pred), offset...)
}

func not[M any](pred func(M) bool) func(M) bool {
	return func(m M) bool { return !pred(m) }
}

// FirstMatch returns the first element where pred turns true, i.e. the head
// of t.DropUntil(pred). It does not create any new tree structure.
func (t FingerTree[E, M]) FirstMatch(pred func(M) bool, offset ...M) maybe.Maybe[E] {
	t.mustHaveMeasure()
	root := t.tree()
	if root.isEmpty() {
		return maybe.Nothing[E]()
	}
	acc := t.offset(offset)
	if !pred(t.ms.sum(acc, root.measure(t.ms))) {
		return maybe.Nothing[E]()
	}
	return maybe.Just(lookupTree(t.ms, pred, acc, root))
}

// --- Concat ----------------------------------------------------------------

// Concat returns a tree holding the elements of t followed by the elements
// of other. Both trees have to share the same measure, i.e. originate from
// the same call to New, or have been created with measures comparing equal.
// Otherwise ErrMeasureMismatch is returned. A zero-value tree adopts the
// measure of the other tree.
func (t FingerTree[E, M]) Concat(other FingerTree[E, M]) (FingerTree[E, M], error) {
	ms := t.ms
	switch {
	case t.ms == nil:
		ms = other.ms
	case other.ms == nil:
	case !t.ms.sameAs(other.ms):
		tracer().Errorf("concat: measures %T and %T differ", t.MeasureFunc(), other.MeasureFunc())
		return t, fmt.Errorf("%w: trees have been created with different measures", ErrMeasureMismatch)
	}
	tracer().Debugf("concat: %T + %T", t.tree(), other.tree())
	return FingerTree[E, M]{ms: ms, root: concatWithMiddle(t.tree(), nil, other.tree())}, nil
}

// --- Updates ---------------------------------------------------------------

// UpdateHead returns a tree with the leftmost element x replaced by f(x).
// An empty tree is returned unchanged.
func (t FingerTree[E, M]) UpdateHead(f func(E) E) FingerTree[E, M] {
	switch r := t.tree().(type) {
	case single[E, M]:
		return t.with(single[E, M]{x: leaf[E, M]{value: f(asLeaf(r.x))}})
	case *deep[E, M]:
		x := leaf[E, M]{value: f(asLeaf(r.left.first()))}
		return t.with(newDeep(r.left.withItem(0, x), r.middle, r.right))
	}
	return t
}

// UpdateLast returns a tree with the rightmost element x replaced by f(x).
// An empty tree is returned unchanged.
func (t FingerTree[E, M]) UpdateLast(f func(E) E) FingerTree[E, M] {
	switch r := t.tree().(type) {
	case single[E, M]:
		return t.with(single[E, M]{x: leaf[E, M]{value: f(asLeaf(r.x))}})
	case *deep[E, M]:
		x := leaf[E, M]{value: f(asLeaf(r.right.last()))}
		return t.with(newDeep(r.left, r.middle, r.right.withItem(r.right.len()-1, x)))
	}
	return t
}

// UpdateFirstMatch returns a tree where the first element x making pred true
// (see Split) is replaced by f(x). If pred never turns true, t is returned.
// Only the path from the root to x is re-created.
func (t FingerTree[E, M]) UpdateFirstMatch(f func(E) E, pred func(M) bool, offset ...M) FingerTree[E, M] {
	t.mustHaveMeasure()
	root := t.tree()
	if root.isEmpty() {
		return t
	}
	acc := t.offset(offset)
	if !pred(t.ms.sum(acc, root.measure(t.ms))) {
		return t
	}
	return t.with(adjustTree(t.ms, pred, acc, root, f))
}

// --- Mapping ---------------------------------------------------------------

// Map returns a tree with every element x replaced by f(x), measured with the
// measure of t. The shape of the tree is retained.
func (t FingerTree[E, M]) Map(f func(E) E) FingerTree[E, M] {
	return t.with(mapTree[E, M, E, M](t.tree(), f))
}

// MapTo maps every element x of t to f(x) and measures the result with m.
// The shape of the tree is retained.
func MapTo[E, M, F, N any](t FingerTree[E, M], f func(E) F, m Measure[F, N]) FingerTree[F, N] {
	u := New(m)
	u.root = mapTree[E, M, F, N](t.tree(), f)
	return u
}

// MapTrue replaces elements x where pred is true by f(x, leftIncl, global).
//
// pred is called with the measure of all elements up to and including the
// element in question (leftIncl) and the measure of the whole tree (global).
// global reflects all replacements made so far, therefore an update may
// enable or disable later ones. For a fixed global measure, pred has to be
// monotone over leftIncl, as with Split.
//
// Runs of elements without a match are skipped by splitting and end up as
// shared subtrees in the result.
func (t FingerTree[E, M]) MapTrue(f func(x E, leftIncl, global M) E,
	pred func(leftIncl, global M) bool) FingerTree[E, M] {
	//
	t.mustHaveMeasure()
	ms := t.ms
	done, rest := emptyTree[E, M](), t.tree()
	steps := 0
	for !rest.isEmpty() {
		doneM := done.measure(ms)
		global := ms.sum(doneM, rest.measure(ms))
		p := func(m M) bool { return pred(m, global) }
		if !p(global) {
			break
		}
		l, x, r := splitTree(ms, p, doneM, rest)
		leftIncl := ms.sum(ms.sum(doneM, l.measure(ms)), x.measure(ms))
		y := f(asLeaf(x), leftIncl, global)
		done = appendItem(concatWithMiddle(done, nil, l), item[E, M](leaf[E, M]{value: y}))
		rest = r
		steps++
	}
	tracer().Debugf("mapTrue: %d elements replaced", steps)
	return t.with(concatWithMiddle(done, nil, rest))
}

// --- Iteration -------------------------------------------------------------

// All returns an iterator over the elements of t, from left to right.
func (t FingerTree[E, M]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		eachTree(t.tree(), yield)
	}
}

// Backward returns an iterator over the elements of t, from right to left.
func (t FingerTree[E, M]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		eachTreeBackward(t.tree(), yield)
	}
}

// Flatten returns the elements of t as a slice.
func (t FingerTree[E, M]) Flatten() []E {
	xs := []E{}
	for x := range t.All() {
		xs = append(xs, x)
	}
	return xs
}
