package fingertree

import "fmt"

// Check validates the structural invariants of a tree:
//
//   - affixes hold 1…4 items, nodes hold 2 or 3 items,
//   - affixes of the outermost tree hold elements, affixes of a middle tree at
//     nesting level k hold nodes of height k,
//   - all items of a node have equal height.
//
// Trees created through the API always pass. Check is meant for tests and
// debugging; it walks the whole tree.
func (t FingerTree[E, M]) Check() error {
	if t.ms == nil {
		return fmt.Errorf("%w: tree has no measure, use New()", ErrStructure)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrStructure)
	}
	return checkTree(t.root, 0)
}

func checkTree[E, M any](t tree[E, M], level int) error {
	switch t := t.(type) {
	case empty[E, M]:
		return nil
	case single[E, M]:
		return checkItem(t.x, level)
	case *deep[E, M]:
		if t.left == nil || t.right == nil || t.middle == nil {
			return fmt.Errorf("%w: incomplete deep tree at level %d", ErrStructure, level)
		}
		if err := checkAffix(t.left, level); err != nil {
			return err
		}
		if err := checkTree(t.middle, level+1); err != nil {
			return err
		}
		return checkAffix(t.right, level)
	}
	return fmt.Errorf("%w: unknown tree variant %T at level %d", ErrStructure, t, level)
}

func checkAffix[E, M any](a *affix[E, M], level int) error {
	if a.len() < 1 || a.len() > 4 {
		return fmt.Errorf("%w: affix of length %d at level %d", ErrArity, a.len(), level)
	}
	for _, x := range a.items {
		if err := checkItem(x, level); err != nil {
			return err
		}
	}
	return nil
}

// checkItem verifies that x has height h (leafs have height 0).
func checkItem[E, M any](x item[E, M], h int) error {
	switch x := x.(type) {
	case leaf[E, M]:
		if h != 0 {
			return fmt.Errorf("%w: leaf found where a node of height %d is expected", ErrStructure, h)
		}
		return nil
	case *node[E, M]:
		if h == 0 {
			return fmt.Errorf("%w: node found where a leaf is expected", ErrStructure)
		}
		if len(x.items) < 2 || len(x.items) > 3 {
			return fmt.Errorf("%w: node of arity %d at height %d", ErrArity, len(x.items), h)
		}
		for _, ch := range x.items {
			if err := checkItem(ch, h-1); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown item type %T", ErrStructure, x)
}
