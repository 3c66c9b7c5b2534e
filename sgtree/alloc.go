package sgtree

import (
	"fmt"
)

// Allocator hands out tree nodes and the temporary slices used by rebuilds.
//
// Implementations are not required to be safe for concurrent use; a Tree calls its allocator only from within its own (caller-serialized) operations.
type Allocator interface {
	// Called once when a tree is created
	Reserve() error
	NewNode(key int) (*Node, error)
	// Returns an empty slice with capacity for at least n node pointers
	Scratch(n int) ([]*Node, error)
	ReleaseScratch(s []*Node)
	// Called for every node when a tree is destroyed
	FreeNode(n *Node)
}

// HeapAllocator allocates from the Go heap and never fails.
type HeapAllocator struct{}

func (HeapAllocator) Reserve() error {
	return nil
}

func (HeapAllocator) NewNode(key int) (*Node, error) {
	return &Node{key: key}, nil
}

func (HeapAllocator) Scratch(n int) ([]*Node, error) {
	return make([]*Node, 0, n), nil
}

func (HeapAllocator) ReleaseScratch(s []*Node) {}

func (HeapAllocator) FreeNode(n *Node) {}

// LimitAllocator is a heap allocator with caps. It is mostly useful for exercising allocation failure handling, and for bounding memory in tools.
//
// A zero limit means "unlimited".
type LimitAllocator struct {
	// maximum number of nodes live at once
	MaxNodes int
	// maximum length of a single rebuild scratch slice
	MaxScratch int
	// if set, Reserve fails
	RefuseReserve bool

	live      int
	allocated int
	freed     int
}

func (a *LimitAllocator) Reserve() error {
	if a.RefuseReserve {
		return fmt.Errorf("reserving tree: %w", ErrAllocationFailure)
	}
	return nil
}

func (a *LimitAllocator) NewNode(key int) (*Node, error) {
	if a.MaxNodes > 0 && a.live >= a.MaxNodes {
		return nil, fmt.Errorf("node limit reached (%d): %w", a.MaxNodes, ErrAllocationFailure)
	}
	a.live++
	a.allocated++
	return &Node{key: key}, nil
}

func (a *LimitAllocator) Scratch(n int) ([]*Node, error) {
	if a.MaxScratch > 0 && n > a.MaxScratch {
		return nil, fmt.Errorf("scratch of %d nodes exceeds limit (%d): %w", n, a.MaxScratch, ErrAllocationFailure)
	}
	return make([]*Node, 0, n), nil
}

func (a *LimitAllocator) ReleaseScratch(s []*Node) {}

func (a *LimitAllocator) FreeNode(n *Node) {
	a.live--
	a.freed++
}

// Number of nodes handed out and not yet freed
func (a *LimitAllocator) Live() int {
	return a.live
}

func (a *LimitAllocator) Freed() int {
	return a.freed
}
