package pqueue

import (
	"math"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/maybe"
	"github.com/npillmayer/fingertree/monoid"
)

type entry[T any] struct {
	value T
	prio  int
}

// maxPriority measures entries by their priority. It has no state, all
// instances compare equal.
type maxPriority[T any] struct{}

func (maxPriority[T]) Base(e entry[T]) int { return e.prio }
func (maxPriority[T]) Sum(a, b int) int    { return max(a, b) }
func (maxPriority[T]) Zero() int           { return math.MinInt }

// stats is the measure of a queue: number of entries and maximum priority.
type stats = monoid.Pair[int, int]

// Queue is a max priority queue. The zero value is an empty queue, ready to use.
type Queue[T any] struct {
	tree fingertree.FingerTree[entry[T], stats]
}

// New creates an empty queue.
func New[T any]() Queue[T] {
	m := monoid.Both[entry[T], int, int](monoid.Count[entry[T]]{}, maxPriority[T]{})
	return Queue[T]{tree: fingertree.New[entry[T], stats](m)}
}

func (q Queue[T]) init() Queue[T] {
	if q.tree.MeasureFunc() == nil {
		return New[T]()
	}
	return q
}

func (q Queue[T]) Len() int {
	n, _ := q.init().tree.Measure().Decompose()
	return n
}

func (q Queue[T]) IsEmpty() bool {
	return q.tree.IsEmpty()
}

// Push enqueues value with priority prio.
func (q Queue[T]) Push(value T, prio int) Queue[T] {
	return Queue[T]{tree: q.init().tree.Append(entry[T]{value: value, prio: prio})}
}

// Peek returns the value with the highest priority, if any.
func (q Queue[T]) Peek() maybe.Maybe[T] {
	q = q.init()
	_, top := q.tree.Measure().Decompose()
	e := q.tree.FirstMatch(reaches(top))
	return maybe.Map(func(e entry[T]) T { return e.value }, e)
}

// Pop removes the value with the highest priority. For an empty queue, Pop
// returns Nothing and q.
func (q Queue[T]) Pop() (maybe.Maybe[T], Queue[T]) {
	q = q.init()
	if q.IsEmpty() {
		return maybe.Nothing[T](), q
	}
	_, top := q.tree.Measure().Decompose()
	l, r := q.tree.Split(reaches(top))
	e, _ := r.Head().Get()
	tracer().Debugf("pop value with priority %d at position %d", top, l.Measure().Left)
	rest, err := l.Concat(r.Tail())
	if err != nil { // cannot happen, both halves share the measure of q
		panic(err)
	}
	return maybe.Just(e.value), Queue[T]{tree: rest}
}

// Merge returns a queue holding the entries of q and p. Among equal
// priorities, entries of q come first.
func (q Queue[T]) Merge(p Queue[T]) Queue[T] {
	merged, err := q.init().tree.Concat(p.init().tree)
	if err != nil { // cannot happen, queue measures compare equal
		panic(err)
	}
	return Queue[T]{tree: merged}
}

// reaches is a predicate turning true for the first entry with priority top.
func reaches(top int) func(stats) bool {
	return func(s stats) bool { return s.Right >= top }
}
