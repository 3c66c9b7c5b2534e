package sgtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Renders the tree as an indented outline, one key per line, with each child tagged "L" or "R".
func Pretty(t *Tree) string {
	if t.root == nil {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(t.root.key)
	addChildren(tree, t.root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n *Node) {
	for _, c := range []struct {
		side  string
		child *Node
	}{{"L", n.left}, {"R", n.right}} {
		if c.child == nil {
			continue
		}
		label := fmt.Sprintf("%s %d", c.side, c.child.key)
		if c.child.IsLeaf() {
			tree.AddNode(label)
			continue
		}
		addChildren(tree.AddBranch(label), c.child)
	}
}

func DebugPrintTree(w io.Writer, t *Tree) {
	fmt.Fprintf(w, "tree size=%d height=%d threshold=%d\n", t.size, t.Height(), t.HeightThreshold())
	fmt.Fprint(w, Pretty(t))
}

// Returns all keys in ascending order. Walks the whole tree; intended for debugging and tests.
func DebugKeys(t *Tree) []int {
	return t.root.appendKeys(make([]int, 0, t.size))
}
