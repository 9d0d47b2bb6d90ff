/*
Package pqueue implements an immutable persistent priority queue.

Values are queued with an integer priority; the value with the highest priority
is dequeued first. Values of equal priority leave the queue in the order they
have been pushed (FIFO). Len is O(1), Push is amortized O(1), Peek, Pop and
Merge are O(log n).

The queue is a finger tree measured by the pair (count, maximum priority).
Pop splits the tree in front of the leftmost element carrying the maximum.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pqueue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.pqueue'.
func tracer() tracing.Trace {
	return tracing.Select("fp.pqueue")
}
