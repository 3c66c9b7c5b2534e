package sgtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindScapegoatChain(t *testing.T) {
	assert := assert.New(t)

	// 1 -> 2 -> 3: the new key sits at depth 3, past the threshold of 2 for three keys
	root := rightSpine(1, 2, 3)
	inserted := root.right.right
	assert.Equal(root, findScapegoat(root, inserted, 0.6))
}

func TestFindScapegoatDeepest(t *testing.T) {
	assert := assert.New(t)

	// both 1 and 2 are weight-unbalanced; the deeper one must be picked
	root := rightSpine(1, 2, 3, 4)
	inserted := root.right.right.right
	sg := findScapegoat(root, inserted, 0.6)
	assert.NotNil(sg)
	assert.Equal(2, sg.Key())
}

func TestFindScapegoatShallow(t *testing.T) {
	assert := assert.New(t)

	root := &Node{
		key:   2,
		left:  &Node{key: 1},
		right: &Node{key: 3},
	}
	assert.Nil(findScapegoat(root, root.left, 0.6))
	assert.Nil(findScapegoat(root, root, 0.6))

	// lopsided, but no node is weight-unbalanced at 0.8
	spine := rightSpine(1, 2, 3)
	assert.Nil(findScapegoat(spine, spine.right.right, 0.8))
}

func TestFindScapegoatMissingNode(t *testing.T) {
	assert := assert.New(t)

	root := rightSpine(1, 2, 3)
	stray := &Node{key: 10}
	assert.Nil(findScapegoat(root, stray, 0.6))
}

func TestFindScapegoatShallowPathInTallTree(t *testing.T) {
	assert := assert.New(t)

	// 50 -> 60 -> 70 -> 80 -> 90, with 55 hanging off 60: the new key sits well within the height threshold, but the root is weight-unbalanced
	root := rightSpine(50, 60, 70, 80, 90)
	inserted := &Node{key: 55}
	root.right.left = inserted

	sg := findScapegoat(root, inserted, 0.6)
	assert.NotNil(sg)
	assert.Equal(50, sg.Key())

	// with a looser alpha neither 60 nor the root (5 <= 0.85 * 6) counts as unbalanced
	assert.Nil(findScapegoat(root, inserted, 0.85))
}
