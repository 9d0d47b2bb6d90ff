/*
Package monoid provides measures for finger trees.

A measure is a monoid together with a function mapping elements into it. Every
type with methods

	Base(E) M
	Sum(M, M) M
	Zero() M

may be used as a measure; this package offers the common ones and some
combinators.

	counted := fingertree.New[string, int](monoid.Count[string]{})
	summed  := fingertree.New[float64, float64](monoid.Sum[float64]{})
	both    := fingertree.New[int, monoid.Pair[int, int]](monoid.Both(monoid.Count[int]{}, monoid.Sum[int]{}))

Measures without state (Count, Sum, Product) compare equal, making trees built
from separate instances concatenable. Measures holding functions (Max, Min,
Funcs, By) are tied to the tree they have been created for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monoid

// Monoid is a measure for elements of type E. It mirrors fingertree.Measure.
type Monoid[E, M any] interface {
	Base(E) M
	Sum(M, M) M
	Zero() M
}

// Number is a constraint for types supporting + and *.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
