package fingertree

// concatWithMiddle concatenates t1, a list of loose items and t2.
//
// For two deep trees, the inner affixes and the loose items are regrouped into
// nodes and pushed down to become the loose items for concatenating the middle
// trees. Recursion stops as soon as one of the trees is shallow, which happens
// after at most min(depth(t1), depth(t2)) steps.
func concatWithMiddle[E, M any](t1 tree[E, M], mid []item[E, M], t2 tree[E, M]) tree[E, M] {
	switch a := t1.(type) {
	case empty[E, M]:
		return prependItems(t2, mid)
	case single[E, M]:
		return prependItem(prependItems(t2, mid), a.x)
	}
	switch b := t2.(type) {
	case empty[E, M]:
		return appendItems(t1, mid)
	case single[E, M]:
		return appendItem(appendItems(t1, mid), b.x)
	}
	d1, ok1 := t1.(*deep[E, M])
	d2, ok2 := t2.(*deep[E, M])
	assertThat(ok1 && ok2, ErrStructure, "cannot concatenate %T and %T", t1, t2)
	nodes := nodesFrom(join(d1.right.items, mid, d2.left.items))
	return newDeep(d1.left, concatWithMiddle(d1.middle, nodes, d2.middle), d2.right)
}

// nodesFrom groups at least 2 items into nodes of 2, with a leading node of 3
// for an odd number of items.
func nodesFrom[E, M any](items []item[E, M]) []item[E, M] {
	assertThat(len(items) >= 2, ErrArity, "need at least 2 items to form nodes, have %d", len(items))
	nodes := make([]item[E, M], 0, len(items)/2)
	if len(items)%2 == 1 {
		nodes = append(nodes, newNode(items[0], items[1], items[2]))
		items = items[3:]
	}
	for i := 0; i < len(items); i += 2 {
		nodes = append(nodes, newNode(items[i], items[i+1]))
	}
	return nodes
}
