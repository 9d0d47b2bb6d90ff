package fingertree

// splitTree locates the item where pred, applied to the accumulated measure
// offset ⊕ measure(prefix ⊕ item), first turns true. It returns the tree left of
// this item, the item itself, and the tree right of it.
//
// Pre-condition: t is not empty and pred(offset ⊕ measure(t)) is true.
// Each level of the tree does constant work before descending into the middle
// tree, giving O(log n).
func splitTree[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, t tree[E, M]) (
	tree[E, M], item[E, M], tree[E, M]) {
	//
	switch t := t.(type) {
	case single[E, M]:
		return emptyTree[E, M](), t.x, emptyTree[E, M]()
	case *deep[E, M]:
		accL := ms.sum(offset, t.left.measure(ms))
		if pred(accL) { // split point in left affix
			before, x, after := splitItems(ms, pred, offset, t.left.items)
			if len(after) > 0 { // middle and right affix are kept
				return chunkToTree(before), x, newDeep(newAffix(join(after)...), t.middle, t.right)
			}
			return chunkToTree(before), x, deepRebalance(after, t.middle, t.right.items)
		}
		accM := ms.sum(accL, t.middle.measure(ms))
		if pred(accM) { // split point in middle tree
			ml, xn, mr := splitTree(ms, pred, accL, t.middle)
			acc := ms.sum(accL, ml.measure(ms))
			before, x, after := splitItems(ms, pred, acc, asNode(xn).items)
			return deepRebalance(t.left.items, ml, before), x, deepRebalance(after, mr, t.right.items)
		}
		// split point in right affix
		before, x, after := splitItems(ms, pred, accM, t.right.items)
		if len(before) > 0 { // left affix and middle are kept
			return newDeep(t.left, t.middle, newAffix(join(before)...)), x, chunkToTree(after)
		}
		return deepRebalance(t.left.items, t.middle, before), x, chunkToTree(after)
	}
	badShape(t)
	return nil, nil, nil
}

// splitItems scans a list of at most 4 items for the first one making pred true.
// If pred never turns true, the last item is taken.
func splitItems[E, M any](ms *measurer[E, M], pred func(M) bool, offset M, items []item[E, M]) (
	before []item[E, M], x item[E, M], after []item[E, M]) {
	//
	assertThat(len(items) > 0, ErrStructure, "cannot split empty item list")
	i, _ := locate(ms, pred, offset, items)
	return items[:i], items[i], items[i+1:]
}

// deepRebalance creates a tree from a left list of items, a middle tree and a
// right list of items. The lists may hold 0…4 items; empty lists are refilled by
// borrowing a node from the corresponding end of the middle tree.
func deepRebalance[E, M any](left []item[E, M], middle tree[E, M], right []item[E, M]) tree[E, M] {
	switch {
	case len(left) == 0 && len(right) == 0:
		n, rest, ok := viewLeft(middle)
		if !ok {
			return emptyTree[E, M]()
		}
		return deepRebalance(asNode(n).items, rest, nil)
	case len(left) == 0:
		n, rest, ok := viewLeft(middle)
		if !ok {
			return chunkToTree(right)
		}
		return deepRebalance(asNode(n).items, rest, right)
	case len(right) == 0:
		n, rest, ok := viewRight(middle)
		if !ok {
			return chunkToTree(left)
		}
		return deepRebalance(left, rest, asNode(n).items)
	}
	return newDeep(newAffix(join(left)...), middle, newAffix(join(right)...))
}
