package sgtree

import (
	"fmt"
)

// Checks structural invariants: strict key ordering across every sub-tree, and that the size bookkeeping matches the nodes actually present.
func (t *Tree) Verify() error {
	if t.destroyed {
		return ErrTreeDestroyed
	}
	count, err := t.root.verifyStructure(nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tree holds %d nodes but size is %d", ErrInvalidTree, count, t.size)
	}
	if t.maxSize < t.size {
		return fmt.Errorf("%w: max size %d below size %d", ErrInvalidTree, t.maxSize, t.size)
	}
	return nil
}

// lower and upper are exclusive bounds; nil means unbounded. returns the number of nodes in the sub-tree
func (n *Node) verifyStructure(lower, upper *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lower != nil && n.key <= *lower {
		return 0, fmt.Errorf("%w: key %d not greater than %d", ErrInvalidTree, n.key, *lower)
	}
	if upper != nil && n.key >= *upper {
		return 0, fmt.Errorf("%w: key %d not less than %d", ErrInvalidTree, n.key, *upper)
	}
	left, err := n.left.verifyStructure(lower, &n.key)
	if err != nil {
		return 0, err
	}
	right, err := n.right.verifyStructure(&n.key, upper)
	if err != nil {
		return 0, err
	}
	return 1 + left + right, nil
}
