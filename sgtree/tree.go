package sgtree

import (
	"errors"
	"fmt"
	"log/slog"
)

// Outcome of an Insert call.
type InsertResult int

const (
	// no node was created; see the returned error
	Failed InsertResult = iota
	// a new node was linked in. the returned error may still be non-nil if rebalancing had to be skipped
	Inserted
	// key was already present; the tree is unchanged
	Duplicate
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	default:
		return "failed"
	}
}

// Tree is an ordered set of integer keys, kept balanced by scapegoat rebuilds.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	// number of keys currently in the tree
	size int
	// largest value `size` has ever had. equal to size until deletion is supported
	maxSize int

	alpha     float64
	alloc     Allocator
	logger    *slog.Logger
	name      string
	stats     Stats
	destroyed bool
}

// Counters describing the rebalancing work a tree has done so far.
type Stats struct {
	// completed sub-tree rebuilds
	Rebuilds int
	// total nodes re-linked across all rebuilds
	RebuiltNodes int
	// rebuilds abandoned because scratch space could not be allocated
	SkippedRebuilds int
}

// Creates an empty tree. A nil config means DefaultConfig().
func NewTree(config *Config) (*Tree, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	alloc := config.Allocator
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	if err := alloc.Reserve(); err != nil {
		return nil, fmt.Errorf("creating tree: %w", err)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default().With("system", "sgtree")
	}
	name := config.Name
	if name == "" {
		name = "default"
	}

	return &Tree{
		alpha:  config.Alpha,
		alloc:  alloc,
		logger: logger,
		name:   name,
	}, nil
}

// Adds a key to the tree.
//
// Returns Duplicate (with nil error) if the key was already present, in which case nothing changes. Returns Failed if a node could not be allocated, also with nothing changed.
//
// Returns Inserted when the key was linked in. If the tree then needed a rebuild and scratch space for it could not be allocated, the error wraps both ErrRebuildSkipped and ErrAllocationFailure: the key is present and the tree is valid, just taller than it should be until a later rebuild.
func (t *Tree) Insert(key int) (InsertResult, error) {
	if t.destroyed {
		return Failed, ErrTreeDestroyed
	}

	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			insertsCounter.WithLabelValues(t.name, Duplicate.String()).Inc()
			return Duplicate, nil
		}
	}

	node, err := t.alloc.NewNode(key)
	if err != nil {
		insertsCounter.WithLabelValues(t.name, Failed.String()).Inc()
		return Failed, fmt.Errorf("inserting key %d: %w", key, err)
	}
	*link = node
	t.size++
	if t.size > t.maxSize {
		t.maxSize = t.size
	}
	insertsCounter.WithLabelValues(t.name, Inserted.String()).Inc()

	if err := t.rebalance(node); err != nil {
		return Inserted, fmt.Errorf("inserting key %d: %w", key, err)
	}
	return Inserted, nil
}

// checks the height bound after `inserted` was linked in, and rebuilds the scapegoat sub-tree if needed
func (t *Tree) rebalance(inserted *Node) error {
	if !isUnbalanced(t.size, subtreeHeight(t.root), t.alpha) {
		return nil
	}

	sg := findScapegoat(t.root, inserted, t.alpha)
	if sg == nil {
		return nil
	}

	size := subtreeSize(sg)
	top, err := rebuildSubtree(sg, size, t.alloc)
	if err != nil {
		if !errors.Is(err, ErrAllocationFailure) {
			return err
		}
		t.stats.SkippedRebuilds++
		rebuildFailuresCounter.WithLabelValues(t.name).Inc()
		t.logger.Warn("skipping scapegoat rebuild", "scapegoat", sg.key, "size", size, "err", err)
		return fmt.Errorf("%w: %w", ErrRebuildSkipped, err)
	}
	t.replace(sg, top)

	t.stats.Rebuilds++
	t.stats.RebuiltNodes += size
	rebuildsCounter.WithLabelValues(t.name).Inc()
	rebuildNodesCounter.WithLabelValues(t.name).Add(float64(size))
	t.logger.Debug("rebuilt scapegoat sub-tree", "scapegoat", sg.key, "size", size, "top", top.key, "treeSize", t.size)
	return nil
}

// Points whichever link referenced `old` (the root, or a child slot of its parent) at `top`. The parent is found by descending from the root by old's key; everything above `old` is untouched by a rebuild, so the descent is still valid.
func (t *Tree) replace(old, top *Node) {
	link := &t.root
	for *link != old {
		if old.key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = top
}

// Looks up a key. Returns nil if the key is not in the tree, or if the tree was destroyed.
//
// The returned node must be treated as read-only.
func (t *Tree) Find(key int) *Node {
	if t.destroyed {
		return nil
	}
	return t.root.find(key)
}

func (t *Tree) Contains(key int) bool {
	return t.Find(key) != nil
}

// Releases every node back to the allocator (children before parents) and invalidates the tree. Later Insert calls fail with ErrTreeDestroyed, Find returns nil. Calling Destroy twice is a no-op.
func (t *Tree) Destroy() {
	if t.destroyed {
		return
	}
	freeNodes(t.root, t.alloc)
	t.root = nil
	t.size = 0
	t.destroyed = true
}

func freeNodes(n *Node, alloc Allocator) {
	if n == nil {
		return
	}
	freeNodes(n.left, alloc)
	freeNodes(n.right, alloc)
	n.left = nil
	n.right = nil
	alloc.FreeNode(n)
}

// Number of keys in the tree
func (t *Tree) Len() int {
	return t.size
}

// High-water mark of Len()
func (t *Tree) MaxSize() int {
	return t.maxSize
}

// Height of the tree in nodes; 0 for an empty tree
func (t *Tree) Height() int {
	return subtreeHeight(t.root)
}

// Largest height tolerated for the current size before a rebuild is attempted
func (t *Tree) HeightThreshold() int {
	if t.size <= 1 {
		return t.size
	}
	return heightThreshold(t.size, t.alpha)
}

func (t *Tree) Alpha() float64 {
	return t.alpha
}

// Top node of the tree, or nil if empty
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Stats() Stats {
	return t.stats
}

func (t *Tree) IsDestroyed() bool {
	return t.destroyed
}
