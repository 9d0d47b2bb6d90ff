package fingertree

import "sync/atomic"

// Measure is a monoid summarizing elements of type E into values of type M.
//
// Sum has to be associative and Zero has to be its neutral element:
//
//	Sum(Sum(a, b), c) == Sum(a, Sum(b, c))
//	Sum(Zero(), a) == a == Sum(a, Zero())
//
// Neither property is checked. Commutativity is not required. Measures of
// groups of three or four are always evaluated right-associated, i.e.
// Sum(a, Sum(b, c)), making results deterministic even for sums which are
// associative only up to rounding (floating point).
type Measure[E, M any] interface {
	Base(E) M
	Sum(M, M) M
	Zero() M
}

// measurer is the handle a tree and all of its incarnations share. Its address
// identifies the measure instance a tree has been built with.
type measurer[E, M any] struct {
	m Measure[E, M]
}

func (ms *measurer[E, M]) sum(a, b M) M {
	return ms.m.Sum(a, b)
}

// sumItems sums the measures of items, right-associated.
func (ms *measurer[E, M]) sumItems(items []item[E, M]) M {
	if len(items) == 0 {
		return ms.m.Zero()
	}
	acc := items[len(items)-1].measure(ms)
	for i := len(items) - 2; i >= 0; i-- {
		acc = ms.m.Sum(items[i].measure(ms), acc)
	}
	return acc
}

func (ms *measurer[E, M]) sameAs(other *measurer[E, M]) (same bool) {
	if ms == other {
		return true
	}
	if ms == nil || other == nil {
		return false
	}
	defer func() {
		if recover() != nil { // measure type is not comparable
			same = false
		}
	}()
	return any(ms.m) == any(other.m)
}

// --- Measure cache ---------------------------------------------------------

// mcache is a write-once cell for a computed measure. Concurrent readers may
// compute the measure redundantly; the first stored value wins, the others are
// dropped. As shapes never change, all of them are equal anyway.
type mcache[M any] struct {
	p atomic.Pointer[M]
}

func (c *mcache[M]) get(compute func() M) M {
	if p := c.p.Load(); p != nil {
		return *p
	}
	m := compute()
	c.p.CompareAndSwap(nil, &m)
	return *c.p.Load()
}

func (c *mcache[M]) cached() bool {
	return c.p.Load() != nil
}
