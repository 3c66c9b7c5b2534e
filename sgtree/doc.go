/*
Implementation of a scapegoat tree: an ordered set of integer keys stored in a binary search tree which stays approximately height-balanced through occasional full rebuilds of a sub-tree, instead of per-node rotations.

## Terminology

alpha: the balance factor of a tree, strictly between 0.5 and 1. a lower alpha keeps the tree flatter at the cost of more frequent rebuilds

threshold: the maximum height tolerated for a tree of a given size, floor(log(size) / log(1/alpha)). heights and depths count nodes, so a lone root has depth 1

weight-unbalanced: a node is weight-unbalanced if the child on the insertion path holds more than alpha times the node's own sub-tree size

scapegoat: the deepest weight-unbalanced ancestor of a freshly inserted node, looked for whenever the tree is taller than the threshold. its whole sub-tree gets rebuilt

rebuild: in-order collection of a sub-tree's nodes into a scratch slice, then re-linking them as a minimum-height tree. node values are reused, never copied

## Allocation

Nodes and rebuild scratch space are obtained through an Allocator. The default HeapAllocator never fails; LimitAllocator enforces caps, which makes the ErrAllocationFailure paths reachable. A failed node allocation leaves the tree untouched. A failed scratch allocation leaves the new key in place and skips only the rebalancing step.

## Hacking

Sizes and heights are recomputed on demand rather than cached on nodes. Deletion is not implemented; if it gets added, the balance threshold should be driven by MaxSize() rather than Len(), and the whole tree rebuilt once Len() drops below alpha * MaxSize().

A Tree does no internal locking. Callers must serialize every call against a given tree.
*/
package sgtree
