package sgtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPretty(t *testing.T) {
	assert := assert.New(t)

	tree := mustTree(t, 0.6)
	assert.Equal("(empty)\n", Pretty(tree))

	for _, k := range []int{20, 10, 30, 25} {
		_, err := tree.Insert(k)
		assert.NoError(err)
	}
	out := Pretty(tree)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(4, len(lines))
	assert.Equal("20", lines[0])
	assert.Contains(lines[1], "L 10")
	assert.Contains(lines[2], "R 30")
	assert.Contains(lines[3], "L 25")

	var buf bytes.Buffer
	DebugPrintTree(&buf, tree)
	assert.True(strings.HasPrefix(buf.String(), "tree size=4 height=3 threshold=2\n"))
}
