package fingertree

// eachTree calls yield for every element of t, from left to right.
// It returns false as soon as yield returns false.
func eachTree[E, M any](t tree[E, M], yield func(E) bool) bool {
	switch t := t.(type) {
	case empty[E, M]:
		return true
	case single[E, M]:
		return eachItem(t.x, yield)
	case *deep[E, M]:
		return eachItems(t.left.items, yield) &&
			eachTree(t.middle, yield) &&
			eachItems(t.right.items, yield)
	}
	badShape(t)
	return false
}

func eachItems[E, M any](items []item[E, M], yield func(E) bool) bool {
	for _, x := range items {
		if !eachItem(x, yield) {
			return false
		}
	}
	return true
}

func eachItem[E, M any](x item[E, M], yield func(E) bool) bool {
	if n, ok := x.(*node[E, M]); ok {
		return eachItems(n.items, yield)
	}
	return yield(asLeaf(x))
}

// eachTreeBackward calls yield for every element of t, from right to left.
func eachTreeBackward[E, M any](t tree[E, M], yield func(E) bool) bool {
	switch t := t.(type) {
	case empty[E, M]:
		return true
	case single[E, M]:
		return eachItemBackward(t.x, yield)
	case *deep[E, M]:
		return eachItemsBackward(t.right.items, yield) &&
			eachTreeBackward(t.middle, yield) &&
			eachItemsBackward(t.left.items, yield)
	}
	badShape(t)
	return false
}

func eachItemsBackward[E, M any](items []item[E, M], yield func(E) bool) bool {
	for i := len(items) - 1; i >= 0; i-- {
		if !eachItemBackward(items[i], yield) {
			return false
		}
	}
	return true
}

func eachItemBackward[E, M any](x item[E, M], yield func(E) bool) bool {
	if n, ok := x.(*node[E, M]); ok {
		return eachItemsBackward(n.items, yield)
	}
	return yield(asLeaf(x))
}

// --- Map -------------------------------------------------------------------

// mapTree re-creates the shape of t with every element replaced by f(element).
// Measure caches of the result are empty and will be filled on demand.
func mapTree[E, M, F, N any](t tree[E, M], f func(E) F) tree[F, N] {
	switch t := t.(type) {
	case empty[E, M]:
		return emptyTree[F, N]()
	case single[E, M]:
		return single[F, N]{x: mapItem[E, M, F, N](t.x, f)}
	case *deep[E, M]:
		return newDeep(
			mapAffix[E, M, F, N](t.left, f),
			mapTree[E, M, F, N](t.middle, f),
			mapAffix[E, M, F, N](t.right, f))
	}
	badShape(t)
	return nil
}

func mapAffix[E, M, F, N any](a *affix[E, M], f func(E) F) *affix[F, N] {
	return newAffix(mapItems[E, M, F, N](a.items, f)...)
}

func mapItems[E, M, F, N any](items []item[E, M], f func(E) F) []item[F, N] {
	mapped := make([]item[F, N], len(items))
	for i, x := range items {
		mapped[i] = mapItem[E, M, F, N](x, f)
	}
	return mapped
}

func mapItem[E, M, F, N any](x item[E, M], f func(E) F) item[F, N] {
	if n, ok := x.(*node[E, M]); ok {
		return newNode(mapItems[E, M, F, N](n.items, f)...)
	}
	return leaf[F, N]{value: f(asLeaf(x))}
}
