package sgtree

import (
	"math"
)

// Maximum tolerated height (in nodes) for a tree holding size keys: floor(log(size) / log(1/alpha)).
//
// Only meaningful for size > 1.
func heightThreshold(size int, alpha float64) int {
	return int(math.Floor(math.Log(float64(size)) / math.Log(1/alpha)))
}

// Reports whether a node at the given depth (or a tree of the given height) breaks the height bound for a tree of the given size. Trees of size 0 or 1 are always balanced.
func isUnbalanced(size, depth int, alpha float64) bool {
	if size <= 1 {
		return false
	}
	return depth > heightThreshold(size, alpha)
}
