package sgtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightThreshold(t *testing.T) {
	msg := "height threshold floor(log(n) / log(1/alpha))"

	testVec := []struct {
		Size      int
		Alpha     float64
		Threshold int
	}{
		{2, 0.6, 1},
		{3, 0.6, 2},
		{4, 0.6, 2},
		{7, 0.6, 3},
		{100, 0.6, 9},
		{2, 0.8, 3},
		{7, 0.8, 8},
		{1000, 0.8, 30},
		{1024, 0.75, 24},
	}

	for _, c := range testVec {
		assert.Equal(t, c.Threshold, heightThreshold(c.Size, c.Alpha), msg)
	}
}

func TestIsUnbalanced(t *testing.T) {
	assert := assert.New(t)

	// tiny trees never trigger a rebuild, whatever the depth
	assert.False(isUnbalanced(0, 5, 0.6))
	assert.False(isUnbalanced(1, 5, 0.6))

	assert.False(isUnbalanced(7, 3, 0.6))
	assert.True(isUnbalanced(7, 4, 0.6))
	assert.False(isUnbalanced(7, 8, 0.8))
	assert.True(isUnbalanced(7, 9, 0.8))
}
