package fingertree

/*
Remarks:
--------

- Trees are nested: the middle tree of a deep tree holds nodes, the middle tree of
  that one holds nodes of nodes, and so on. Go generics don't allow for polymorphic
  recursion, therefore all levels store items, which are either leafs (wrapping an
  element) or nodes. Nesting levels are kept consistent by construction; Check()
  validates them.

- Item slices are never modified after construction. Functions creating new shapes
  from parts of existing ones always allocate (see join).

*/

// item is either a leaf or a *node.
type item[E, M any] interface {
	measure(*measurer[E, M]) M
}

// leaf wraps a client element.
type leaf[E, M any] struct {
	value E
}

func (l leaf[E, M]) measure(ms *measurer[E, M]) M {
	return ms.m.Base(l.value)
}

// node groups 2 or 3 items of the next lower level.
type node[E, M any] struct {
	items []item[E, M]
	cache mcache[M]
}

func (n *node[E, M]) measure(ms *measurer[E, M]) M {
	return n.cache.get(func() M {
		return ms.sumItems(n.items)
	})
}

func newNode[E, M any](items ...item[E, M]) *node[E, M] {
	assertThat(len(items) == 2 || len(items) == 3, ErrArity, "node needs 2 or 3 items, have %d", len(items))
	return &node[E, M]{items: items}
}

func asNode[E, M any](x item[E, M]) *node[E, M] {
	n, ok := x.(*node[E, M])
	assertThat(ok, ErrStructure, "expected node, have %T", x)
	return n
}

func asLeaf[E, M any](x item[E, M]) E {
	l, ok := x.(leaf[E, M])
	assertThat(ok, ErrStructure, "expected leaf, have %T", x)
	return l.value
}

// --- Affix -----------------------------------------------------------------

// affix is the buffer of 1…4 items at either end of a deep tree.
type affix[E, M any] struct {
	items []item[E, M]
	cache mcache[M]
}

func newAffix[E, M any](items ...item[E, M]) *affix[E, M] {
	assertThat(len(items) >= 1 && len(items) <= 4, ErrArity, "affix needs 1 to 4 items, have %d", len(items))
	return &affix[E, M]{items: items}
}

func (a *affix[E, M]) measure(ms *measurer[E, M]) M {
	return a.cache.get(func() M {
		return ms.sumItems(a.items)
	})
}

func (a *affix[E, M]) len() int {
	return len(a.items)
}

func (a *affix[E, M]) first() item[E, M] {
	return a.items[0]
}

func (a *affix[E, M]) last() item[E, M] {
	return a.items[len(a.items)-1]
}

func (a *affix[E, M]) prepend(x item[E, M]) *affix[E, M] {
	return newAffix(join([]item[E, M]{x}, a.items)...)
}

func (a *affix[E, M]) append(x item[E, M]) *affix[E, M] {
	return newAffix(join(a.items, []item[E, M]{x})...)
}

// withItem returns a copy of a with the item at position i replaced.
func (a *affix[E, M]) withItem(i int, x item[E, M]) *affix[E, M] {
	items := join(a.items)
	items[i] = x
	return newAffix(items...)
}

// nodeToAffix promotes a node from a middle tree to an affix.
func nodeToAffix[E, M any](x item[E, M]) *affix[E, M] {
	return newAffix(asNode(x).items...)
}

// join concatenates item lists into a freshly allocated slice.
func join[E, M any](lists ...[]item[E, M]) []item[E, M] {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	items := make([]item[E, M], 0, n)
	for _, l := range lists {
		items = append(items, l...)
	}
	return items
}

// --- Tree ------------------------------------------------------------------

// tree is one of empty, single or *deep.
type tree[E, M any] interface {
	measure(*measurer[E, M]) M
	isEmpty() bool
}

type empty[E, M any] struct{}

func emptyTree[E, M any]() tree[E, M] {
	return empty[E, M]{}
}

func (empty[E, M]) measure(ms *measurer[E, M]) M {
	return ms.m.Zero()
}

func (empty[E, M]) isEmpty() bool { return true }

type single[E, M any] struct {
	x item[E, M]
}

func (s single[E, M]) measure(ms *measurer[E, M]) M {
	return s.x.measure(ms)
}

func (single[E, M]) isEmpty() bool { return false }

type deep[E, M any] struct {
	left   *affix[E, M]
	middle tree[E, M]
	right  *affix[E, M]
	cache  mcache[M]
}

func newDeep[E, M any](left *affix[E, M], middle tree[E, M], right *affix[E, M]) *deep[E, M] {
	return &deep[E, M]{left: left, middle: middle, right: right}
}

func (d *deep[E, M]) measure(ms *measurer[E, M]) M {
	return d.cache.get(func() M {
		return ms.sum(d.left.measure(ms), ms.sum(d.middle.measure(ms), d.right.measure(ms)))
	})
}

func (*deep[E, M]) isEmpty() bool { return false }

// chunkToTree builds a tree from 0…4 items.
func chunkToTree[E, M any](items []item[E, M]) tree[E, M] {
	assertThat(len(items) <= 4, ErrArity, "cannot convert %d items to a tree", len(items))
	switch len(items) {
	case 0:
		return empty[E, M]{}
	case 1:
		return single[E, M]{x: items[0]}
	case 2:
		return newDeep(newAffix(items[0]), emptyTree[E, M](), newAffix(items[1]))
	case 3:
		return newDeep(newAffix(items[0]), emptyTree[E, M](), newAffix(items[1], items[2]))
	}
	return newDeep(newAffix(items[0], items[1]), emptyTree[E, M](), newAffix(items[2], items[3]))
}
