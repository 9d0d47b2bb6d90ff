package fingertree

// The functions in this file descend along the same path as splitTree, but don't
// cut the tree apart. lookupTree just reads the element at the split point,
// adjustTree re-creates the spine from the root to the element and shares every
// other subtree.

// lookupTree returns the element where pred first turns true.
//
// Pre-condition: t is not empty and pred(offset ⊕ measure(t)) is true.
func lookupTree[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, t tree[E, M]) E {
	var x item[E, M]
	for x == nil {
		switch tt := t.(type) {
		case single[E, M]:
			x = tt.x
		case *deep[E, M]:
			accL := ms.sum(offset, tt.left.measure(ms))
			if pred(accL) {
				i, acc := locate(ms, pred, offset, tt.left.items)
				x, offset = tt.left.items[i], acc
				break
			}
			accM := ms.sum(accL, tt.middle.measure(ms))
			if pred(accM) {
				offset, t = accL, tt.middle
				continue
			}
			i, acc := locate(ms, pred, accM, tt.right.items)
			x, offset = tt.right.items[i], acc
		default:
			badShape(t)
		}
	}
	for { // x has been found at some level; now descend to the leaf
		n, ok := x.(*node[E, M])
		if !ok {
			return asLeaf(x)
		}
		i, acc := locate(ms, pred, offset, n.items)
		x, offset = n.items[i], acc
	}
}

// adjustTree returns a copy of t where the element at the split point is
// replaced by f(element).
//
// Pre-condition: t is not empty and pred(offset ⊕ measure(t)) is true.
func adjustTree[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, t tree[E, M],
	f func(E) E) tree[E, M] {
	//
	switch t := t.(type) {
	case single[E, M]:
		return single[E, M]{x: adjustItem(ms, pred, offset, t.x, f)}
	case *deep[E, M]:
		accL := ms.sum(offset, t.left.measure(ms))
		if pred(accL) {
			return newDeep(adjustAffix(ms, pred, offset, t.left, f), t.middle, t.right)
		}
		accM := ms.sum(accL, t.middle.measure(ms))
		if pred(accM) {
			return newDeep(t.left, adjustTree(ms, pred, accL, t.middle, f), t.right)
		}
		return newDeep(t.left, t.middle, adjustAffix(ms, pred, accM, t.right, f))
	}
	return badShape(t)
}

func adjustAffix[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, a *affix[E, M],
	f func(E) E) *affix[E, M] {
	//
	i, acc := locate(ms, pred, offset, a.items)
	return a.withItem(i, adjustItem(ms, pred, acc, a.items[i], f))
}

// adjustItem re-creates a leaf or a node (recursively), applying f to the
// element at the split point.
func adjustItem[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, x item[E, M],
	f func(E) E) item[E, M] {
	//
	n, ok := x.(*node[E, M])
	if !ok {
		return leaf[E, M]{value: f(asLeaf(x))}
	}
	i, acc := locate(ms, pred, offset, n.items)
	items := join(n.items)
	items[i] = adjustItem(ms, pred, acc, n.items[i], f)
	return newNode(items...)
}

// locate returns the index of the first item of items making pred true, together
// with the accumulated measure of the items before it. It falls back to the last
// item, like splitItems.
func locate[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, items []item[E, M]) (int, M) {
	for i := 0; i < len(items)-1; i++ {
		acc := ms.sum(offset, items[i].measure(ms))
		if pred(acc) {
			return i, offset
		}
		offset = acc
	}
	return len(items) - 1, offset
}
