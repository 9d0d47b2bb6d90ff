package fingertree

// viewLeft splits t into its leftmost item and the remaining tree.
// ok is false for an empty tree.
//
// If the left affix runs out of items, it is refilled with a node from the
// middle tree. If the middle tree is empty as well, the right affix is
// re-distributed.
func viewLeft[E, M any](t tree[E, M]) (x item[E, M], rest tree[E, M], ok bool) {
	switch t := t.(type) {
	case empty[E, M]:
		return nil, t, false
	case single[E, M]:
		return t.x, emptyTree[E, M](), true
	case *deep[E, M]:
		l := t.left.items
		if len(l) > 1 {
			return l[0], newDeep(newAffix(join(l[1:])...), t.middle, t.right), true
		}
		if n, mrest, ok := viewLeft(t.middle); ok {
			return l[0], newDeep(nodeToAffix(n), mrest, t.right), true
		}
		r := t.right.items
		switch len(r) {
		case 1:
			return l[0], single[E, M]{x: r[0]}, true
		case 2:
			return l[0], newDeep(newAffix(r[0]), emptyTree[E, M](), newAffix(r[1])), true
		case 3:
			return l[0], newDeep(newAffix(r[0], r[1]), emptyTree[E, M](), newAffix(r[2])), true
		case 4:
			return l[0], newDeep(newAffix(r[0], r[1], r[2]), emptyTree[E, M](), newAffix(r[3])), true
		}
	}
	return nil, badShape(t), false
}

// viewRight splits t into its rightmost item and the remaining tree.
// ok is false for an empty tree.
func viewRight[E, M any](t tree[E, M]) (x item[E, M], rest tree[E, M], ok bool) {
	switch t := t.(type) {
	case empty[E, M]:
		return nil, t, false
	case single[E, M]:
		return t.x, emptyTree[E, M](), true
	case *deep[E, M]:
		r := t.right.items
		if len(r) > 1 {
			return r[len(r)-1], newDeep(t.left, t.middle, newAffix(join(r[:len(r)-1])...)), true
		}
		if n, mrest, ok := viewRight(t.middle); ok {
			return r[0], newDeep(t.left, mrest, nodeToAffix(n)), true
		}
		l := t.left.items
		switch len(l) {
		case 1:
			return r[0], single[E, M]{x: l[0]}, true
		case 2:
			return r[0], newDeep(newAffix(l[0]), emptyTree[E, M](), newAffix(l[1])), true
		case 3:
			return r[0], newDeep(newAffix(l[0]), emptyTree[E, M](), newAffix(l[1], l[2])), true
		case 4:
			return r[0], newDeep(newAffix(l[0]), emptyTree[E, M](), newAffix(l[1], l[2], l[3])), true
		}
	}
	return nil, badShape(t), false
}

// headItem returns the leftmost item of a non-empty tree.
func headItem[E, M any](t tree[E, M]) (item[E, M], bool) {
	switch t := t.(type) {
	case empty[E, M]:
		return nil, false
	case single[E, M]:
		return t.x, true
	case *deep[E, M]:
		return t.left.first(), true
	}
	badShape(t)
	return nil, false
}

// lastItem returns the rightmost item of a non-empty tree.
func lastItem[E, M any](t tree[E, M]) (item[E, M], bool) {
	switch t := t.(type) {
	case empty[E, M]:
		return nil, false
	case single[E, M]:
		return t.x, true
	case *deep[E, M]:
		return t.right.last(), true
	}
	badShape(t)
	return nil, false
}
