package sgtree

// Number of nodes in the sub-tree, recomputed on every call
func subtreeSize(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + subtreeSize(n.left) + subtreeSize(n.right)
}

// Height of the sub-tree counted in nodes (a single leaf has height 1), recomputed on every call
func subtreeHeight(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}
