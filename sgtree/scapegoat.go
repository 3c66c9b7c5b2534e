package sgtree

// Finds the node whose sub-tree should be rebuilt after inserting `inserted`, or nil if no rebuild is warranted.
//
// The path from root to `inserted` is walked by key. On the way back up, the first node whose on-path child holds more than alpha of its weight is returned; that is the deepest weight-unbalanced ancestor. Picking a higher ancestor would rebuild more than needed and break the amortized cost bound.
//
// The check does not depend on how deep `inserted` landed: a tree left over-height by a skipped rebuild gets repaired by any later insertion whose path crosses the unbalanced node.
//
// root: top of the tree. must contain `inserted`
// inserted: node which was just linked in
func findScapegoat(root, inserted *Node, alpha float64) *Node {
	sg, _ := locateScapegoat(root, inserted, alpha)
	return sg
}

// Recursive helper for findScapegoat. Returns the scapegoat (if found below or at n), and the size of n's sub-tree.
//
// Parent sizes are derived from the on-path child size plus the sibling's size, so each level only recounts the sibling sub-tree.
func locateScapegoat(n, inserted *Node, alpha float64) (*Node, int) {
	if n == nil {
		// `inserted` was not on the expected path
		return nil, 0
	}
	if n == inserted {
		return nil, subtreeSize(n)
	}

	child, sibling := n.right, n.left
	if inserted.key < n.key {
		child, sibling = n.left, n.right
	}

	sg, childSize := locateScapegoat(child, inserted, alpha)
	if sg != nil {
		return sg, 0
	}
	if childSize == 0 {
		return nil, 0
	}

	size := 1 + childSize + subtreeSize(sibling)
	if float64(childSize) > alpha*float64(size) {
		return n, size
	}
	return nil, size
}
