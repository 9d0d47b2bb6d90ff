package monoid

// --- Pair ------------------------------------------------------------------

// Pair is the measure value of a Both measure.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// --- Both ------------------------------------------------------------------

// Tuple measures elements with two monoids at once. Create it with Both.
type Tuple[E, A, B any] struct {
	first  Monoid[E, A]
	second Monoid[E, B]
}

// Both combines two measures into a measure of pairs, summing component-wise.
// A tree measured by Both(Count, Sum) may be split by position and still
// report the sum of all elements.
func Both[E, A, B any](first Monoid[E, A], second Monoid[E, B]) Tuple[E, A, B] {
	return Tuple[E, A, B]{first: first, second: second}
}

func (t Tuple[E, A, B]) Base(x E) Pair[A, B] {
	return P(t.first.Base(x), t.second.Base(x))
}

func (t Tuple[E, A, B]) Sum(a, b Pair[A, B]) Pair[A, B] {
	return P(t.first.Sum(a.Left, b.Left), t.second.Sum(a.Right, b.Right))
}

func (t Tuple[E, A, B]) Zero() Pair[A, B] {
	return P(t.first.Zero(), t.second.Zero())
}

// --- By --------------------------------------------------------------------

// Keyed measures elements of type E by projecting them to F and measuring the
// projection. Create it with By.
type Keyed[E, F, M any] struct {
	base func(E) M
	m    Monoid[F, M]
}

// By measures elements by key(element), using m.
//
//	words := fingertree.New[string, int](monoid.By(func(s string) int { return len(s) }, monoid.Sum[int]{}))
func By[E, F, M any](key func(E) F, m Monoid[F, M]) Keyed[E, F, M] {
	return Keyed[E, F, M]{base: Compose(key, m.Base), m: m}
}

func (k Keyed[E, F, M]) Base(x E) M   { return k.base(x) }
func (k Keyed[E, F, M]) Sum(a, b M) M { return k.m.Sum(a, b) }
func (k Keyed[E, F, M]) Zero() M      { return k.m.Zero() }

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
