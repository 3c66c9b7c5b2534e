package sgtree

import (
	"fmt"
	"log/slog"
)

// Default balance factor. Matches the reference behavior of inserting the demo sequence.
const DefaultAlpha = 0.6

type Config struct {
	// balance factor, in the open interval (0.5, 1)
	Alpha float64
	// source of nodes and rebuild scratch space. nil means HeapAllocator
	Allocator Allocator
	// nil means slog.Default(), tagged with the "sgtree" system
	Logger *slog.Logger
	// label value used on prometheus metrics
	Name string
}

func DefaultConfig() *Config {
	return &Config{
		Alpha:     DefaultAlpha,
		Allocator: HeapAllocator{},
		Name:      "default",
	}
}

func (c *Config) validate() error {
	if !(c.Alpha > 0.5 && c.Alpha < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidAlpha, c.Alpha)
	}
	return nil
}
