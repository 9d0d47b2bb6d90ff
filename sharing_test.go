package fingertree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Updates re-create the path to the changed element only, all other subtrees
// are shared with the original tree.

// sharedTree holds 1…20 as
//
//	left affix [1], middle tree with 5 nodes (2…16), right affix [17 18 19 20]
func sharedTree(t *testing.T) (FingerTree[int, int], *deep[int, int]) {
	tree := counted(ints(1, 20)...)
	d := deepRoot(t, tree)
	require.Equal(t, 1, d.left.len())
	require.Equal(t, 4, d.right.len())
	_, ok := d.middle.(*deep[int, int])
	require.True(t, ok, "middle tree expected to be deep")
	return tree, d
}

func deepRoot(t *testing.T, tree FingerTree[int, int]) *deep[int, int] {
	d, ok := tree.root.(*deep[int, int])
	require.True(t, ok, "expected a deep tree, have %T", tree.root)
	return d
}

func TestUpdateEndsShareSubtrees(t *testing.T) {
	tree, orig := sharedTree(t)
	inc := func(x int) int { return x + 1 }
	//
	head := deepRoot(t, tree.UpdateHead(inc))
	assert.NotSame(t, orig.left, head.left)
	assert.Same(t, orig.middle, head.middle)
	assert.Same(t, orig.right, head.right)
	//
	last := deepRoot(t, tree.UpdateLast(inc))
	assert.Same(t, orig.left, last.left)
	assert.Same(t, orig.middle, last.middle)
	assert.NotSame(t, orig.right, last.right)
}

func TestUpdateFirstMatchSharesSubtrees(t *testing.T) {
	tree, orig := sharedTree(t)
	upd := tree.UpdateFirstMatch(func(x int) int { return -x }, gt(9))
	d := deepRoot(t, upd)
	assert.Same(t, orig.left, d.left)
	assert.Same(t, orig.right, d.right)
	assert.NotSame(t, orig.middle, d.middle)
	// only one of the nodes of the middle tree has been re-created
	om, um := orig.middle.(*deep[int, int]), d.middle.(*deep[int, int])
	shared := 0
	for i, x := range om.right.items {
		if x == um.right.items[i] {
			shared++
		}
	}
	if om.left.first() == um.left.first() {
		shared++
	}
	assert.Equal(t, 4, shared, "nodes of the middle tree shared with the original")
	assert.Equal(t, -10, upd.FirstMatch(gt(9)).WithDefault(0))
}

func TestMapTrueSharesPrefix(t *testing.T) {
	tree, orig := sharedTree(t)
	doubled := tree.MapTrue(
		func(x int, _, _ int) int { return 2 * x },
		func(left, _ int) bool { return left > 18 })
	assert.Equal(t, append(ints(1, 18), 38, 40), doubled.Flatten())
	d := deepRoot(t, doubled)
	assert.Same(t, orig.left, d.left)
	assert.Same(t, orig.middle, d.middle)
}

func TestSplitInRightAffixSharesPrefix(t *testing.T) {
	tree, orig := sharedTree(t)
	l, r := tree.Split(gt(18))
	assert.Equal(t, ints(1, 18), l.Flatten())
	assert.Equal(t, ints(19, 20), r.Flatten())
	d := deepRoot(t, l)
	assert.Same(t, orig.left, d.left)
	assert.Same(t, orig.middle, d.middle)
	require.NoError(t, l.Check())
}
