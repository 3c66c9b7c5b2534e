package sgtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitAllocator(t *testing.T) {
	assert := assert.New(t)

	alloc := &LimitAllocator{MaxNodes: 2, MaxScratch: 8}
	assert.NoError(alloc.Reserve())

	a, err := alloc.NewNode(1)
	assert.NoError(err)
	assert.Equal(1, a.Key())
	_, err = alloc.NewNode(2)
	assert.NoError(err)
	_, err = alloc.NewNode(3)
	assert.True(errors.Is(err, ErrAllocationFailure))
	assert.Equal(2, alloc.Live())

	alloc.FreeNode(a)
	assert.Equal(1, alloc.Live())
	assert.Equal(1, alloc.Freed())
	_, err = alloc.NewNode(3)
	assert.NoError(err)

	s, err := alloc.Scratch(8)
	assert.NoError(err)
	assert.Equal(0, len(s))
	assert.Equal(8, cap(s))
	_, err = alloc.Scratch(9)
	assert.True(errors.Is(err, ErrAllocationFailure))

	unlimited := &LimitAllocator{}
	_, err = unlimited.Scratch(1 << 20)
	assert.NoError(err)
}
