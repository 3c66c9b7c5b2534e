package sgtree

import (
	"fmt"
)

// Re-links the sub-tree under `scapegoat` into a minimum-height tree, and returns the new top node. The caller is responsible for pointing the scapegoat's parent (or the tree root) at the returned node.
//
// The same Node values are reused; only child links change. If scratch space can not be obtained, the sub-tree is left exactly as it was and an error is returned.
//
// size: number of nodes under scapegoat (inclusive)
func rebuildSubtree(scapegoat *Node, size int, alloc Allocator) (*Node, error) {
	nodes, err := alloc.Scratch(size)
	if err != nil {
		return nil, fmt.Errorf("allocating rebuild scratch: %w", err)
	}

	nodes = collectNodes(scapegoat, nodes)
	if len(nodes) != size {
		alloc.ReleaseScratch(nodes[:0])
		return nil, fmt.Errorf("%w: sub-tree has %d nodes, expected %d", ErrInvalidTree, len(nodes), size)
	}
	top := buildBalanced(nodes, 0, len(nodes)-1)

	// scratch only ever borrowed the nodes
	clear(nodes)
	alloc.ReleaseScratch(nodes[:0])
	return top, nil
}

// in-order traversal, appending node pointers (not keys)
func collectNodes(n *Node, out []*Node) []*Node {
	if n == nil {
		return out
	}
	out = collectNodes(n.left, out)
	out = append(out, n)
	return collectNodes(n.right, out)
}

// Builds a balanced tree out of nodes[lo..hi] (inclusive), which must be sorted by key. The middle element becomes the local root.
func buildBalanced(nodes []*Node, lo, hi int) *Node {
	if lo > hi {
		return nil
	}
	mid := (lo + hi) / 2
	n := nodes[mid]
	n.left = buildBalanced(nodes, lo, mid-1)
	n.right = buildBalanced(nodes, mid+1, hi)
	return n
}
