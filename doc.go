/*
Package fingertree implements persistent (immutable) 2-3 finger trees.

A finger tree is a general purpose sequence type. Elements are summarized by a
user-supplied monoid, the “measure”, and the cached measures drive searching and
splitting. Finger trees offer

  - access to both ends in amortized O(1),
  - splitting at an arbitrary position in O(log n), guided by a predicate on measures,
  - concatenation in O(log min(n,m)).

Choosing the measure decides what a finger tree is good for: counting elements
turns it into a random-access sequence (see sub-package vector), a maximum over
priorities turns it into a priority queue (see sub-package pqueue).

Finger trees are values. Every “modification” creates a new incarnation of the
tree, leaving the original unchanged. Untouched subtrees are shared between
incarnations. Immutable trees are inherently safe for concurrent readers; the
only mutable state is the lazily filled measure cache of tree nodes, which is a
write-once cell.

	t := fingertree.New[string, int](monoid.Count[string]{})
	t = t.AppendMany("a", "b", "c", "d")
	l, r := t.Split(func(n int) bool { return n > 2 })
	// l holds "a", "b"; r holds "c", "d"

For an introduction see Ralf Hinze and Ross Paterson: “Finger trees: a simple
general-purpose data structure”, Journal of Functional Programming 16:2 (2006).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingertree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.fingertree")
}

// assertThat panics with an error wrapping err if that is false.
func assertThat(that bool, err error, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Errorf("%w: "+msg, append([]interface{}{err}, msgargs...)...))
	}
}
