package sgtree

// Represents a single key in the tree, along with the sub-trees of smaller (left) and larger (right) keys.
//
// Nodes are owned by exactly one parent (or the Tree, for the root). There are no parent pointers. The key never changes once the node is created; rebuilds only rewrite the child links.
type Node struct {
	key   int
	left  *Node
	right *Node
}

func (n *Node) Key() int {
	return n.key
}

// Returns nil if there is no left sub-tree
func (n *Node) Left() *Node {
	return n.left
}

// Returns nil if there is no right sub-tree
func (n *Node) Right() *Node {
	return n.right
}

func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Looks for an exact key in the sub-tree. Returns nil if not found.
func (n *Node) find(key int) *Node {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// appends keys of the sub-tree, in order
func (n *Node) appendKeys(out []int) []int {
	if n == nil {
		return out
	}
	out = n.left.appendKeys(out)
	out = append(out, n.key)
	return n.right.appendKeys(out)
}
