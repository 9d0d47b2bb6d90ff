package fingertree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String returns a multi-line print of the internal structure of a tree
// (for debugging purposes).
func (t FingerTree[E, M]) String() string {
	printer := tp.New()
	printTree(printer, t.tree(), 0)
	return "FingerTree\n" + printer.String()
}

func printTree[E, M any](printer tp.Tree, t tree[E, M], level int) {
	switch t := t.(type) {
	case empty[E, M]:
		printer.AddNode(fmt.Sprintf("Empty @%d", level))
	case single[E, M]:
		branch := printer.AddBranch(fmt.Sprintf("Single @%d", level))
		printItem(branch, t.x)
	case *deep[E, M]:
		branch := printer.AddBranch(fmt.Sprintf("Deep @%d", level))
		left := branch.AddBranch(fmt.Sprintf("left #%d", t.left.len()))
		for _, x := range t.left.items {
			printItem(left, x)
		}
		printTree(branch, t.middle, level+1)
		right := branch.AddBranch(fmt.Sprintf("right #%d", t.right.len()))
		for _, x := range t.right.items {
			printItem(right, x)
		}
	default:
		printer.AddNode(fmt.Sprintf("?? %T", t))
	}
}

func printItem[E, M any](printer tp.Tree, x item[E, M]) {
	switch x := x.(type) {
	case leaf[E, M]:
		printer.AddNode(fmt.Sprintf("%v", x.value))
	case *node[E, M]:
		branch := printer.AddBranch(fmt.Sprintf("Node%d", len(x.items)))
		for _, ch := range x.items {
			printItem(branch, ch)
		}
	}
}
