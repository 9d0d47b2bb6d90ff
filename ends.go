package fingertree

// prependItem returns a new tree with x added in front of t.
//
// A full left affix overflows: its three rightmost items are moved as a node to
// the middle tree, which is one level down.
func prependItem[E, M any](t tree[E, M], x item[E, M]) tree[E, M] {
	switch t := t.(type) {
	case empty[E, M]:
		return single[E, M]{x: x}
	case single[E, M]:
		return newDeep(newAffix(x), emptyTree[E, M](), newAffix(t.x))
	case *deep[E, M]:
		if t.left.len() == 4 {
			l := t.left.items
			n := newNode(l[1], l[2], l[3])
			return newDeep(newAffix(x, l[0]), prependItem[E, M](t.middle, n), t.right)
		}
		return newDeep(t.left.prepend(x), t.middle, t.right)
	}
	return badShape(t)
}

// appendItem returns a new tree with x added after the last item of t.
func appendItem[E, M any](t tree[E, M], x item[E, M]) tree[E, M] {
	switch t := t.(type) {
	case empty[E, M]:
		return single[E, M]{x: x}
	case single[E, M]:
		return newDeep(newAffix(t.x), emptyTree[E, M](), newAffix(x))
	case *deep[E, M]:
		if t.right.len() == 4 {
			r := t.right.items
			n := newNode(r[0], r[1], r[2])
			return newDeep(t.left, appendItem[E, M](t.middle, n), newAffix(r[3], x))
		}
		return newDeep(t.left, t.middle, t.right.append(x))
	}
	return badShape(t)
}

func prependItems[E, M any](t tree[E, M], items []item[E, M]) tree[E, M] {
	for i := len(items) - 1; i >= 0; i-- {
		t = prependItem(t, items[i])
	}
	return t
}

func appendItems[E, M any](t tree[E, M], items []item[E, M]) tree[E, M] {
	for _, x := range items {
		t = appendItem(t, x)
	}
	return t
}

// badShape is called for tree variants a type switch did not cover.
func badShape[E, M any](t tree[E, M]) tree[E, M] {
	assertThat(false, ErrStructure, "unexpected tree variant %T", t)
	return nil
}
