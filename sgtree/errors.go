package sgtree

import (
	"errors"
)

var ErrAllocationFailure = errors.New("sgtree allocation failed")

// Returned (wrapped, alongside ErrAllocationFailure) when a key was inserted but the follow-up rebuild could not get scratch space.
var ErrRebuildSkipped = errors.New("scapegoat rebuild skipped")

var ErrInvalidAlpha = errors.New("alpha must be strictly between 0.5 and 1")

var ErrTreeDestroyed = errors.New("tree has been destroyed")

var ErrInvalidTree = errors.New("invalid scapegoat tree structure")
