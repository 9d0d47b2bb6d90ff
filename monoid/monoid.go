package monoid

import "cmp"

// Count measures every element with 1. A finger tree measured by Count is a
// random access sequence: splitting at n > i cuts before index i.
type Count[E any] struct{}

func (Count[E]) Base(E) int       { return 1 }
func (Count[E]) Sum(a, b int) int { return a + b }
func (Count[E]) Zero() int        { return 0 }

// Sum measures numbers by their sum.
type Sum[N Number] struct{}

func (Sum[N]) Base(x N) N   { return x }
func (Sum[N]) Sum(a, b N) N { return a + b }
func (Sum[N]) Zero() N      { return 0 }

// Product measures numbers by their product.
type Product[N Number] struct{}

func (Product[N]) Base(x N) N   { return x }
func (Product[N]) Sum(a, b N) N { return a * b }
func (Product[N]) Zero() N      { return 1 }

// --- Max / Min -------------------------------------------------------------

// Max measures elements by the maximum of a key. Bottom has to be less or
// equal than any key and serves as the neutral element.
//
//	prio := monoid.Max[task, int]{Key: func(t task) int { return t.prio }, Bottom: math.MinInt}
type Max[E any, K cmp.Ordered] struct {
	Key    func(E) K
	Bottom K
}

func (m Max[E, K]) Base(x E) K   { return m.Key(x) }
func (m Max[E, K]) Sum(a, b K) K { return max(a, b) }
func (m Max[E, K]) Zero() K      { return m.Bottom }

// Min measures elements by the minimum of a key. Top has to be greater or
// equal than any key and serves as the neutral element.
type Min[E any, K cmp.Ordered] struct {
	Key func(E) K
	Top K
}

func (m Min[E, K]) Base(x E) K   { return m.Key(x) }
func (m Min[E, K]) Sum(a, b K) K { return min(a, b) }
func (m Min[E, K]) Zero() K      { return m.Top }

// --- Funcs -----------------------------------------------------------------

// Funcs is a measure assembled from plain functions.
type Funcs[E, M any] struct {
	base func(E) M
	sum  func(M, M) M
	zero func() M
}

// Of creates a measure from a base function, an associative sum and its
// neutral element.
func Of[E, M any](base func(E) M, sum func(M, M) M, zero func() M) Funcs[E, M] {
	return Funcs[E, M]{base: base, sum: sum, zero: zero}
}

func (f Funcs[E, M]) Base(x E) M   { return f.base(x) }
func (f Funcs[E, M]) Sum(a, b M) M { return f.sum(a, b) }
func (f Funcs[E, M]) Zero() M      { return f.zero() }
