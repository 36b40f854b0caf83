package structural

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeShowInsertionOrder(t *testing.T) {
	a := NewLeaf("A")
	b := NewLeaf("B")
	c := NewLeaf("C")

	tree := NewComposite()
	tree.Add(a)
	tree.Add(b)
	tree.Add(c)

	lines := strings.Split(tree.Show(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "size: 3", lines[0])
	assert.Equal(t, a.Show(), lines[1])
	assert.Equal(t, b.Show(), lines[2])
	assert.Equal(t, c.Show(), lines[3])
}

func TestCompositeNesting(t *testing.T) {
	inner := NewComposite()
	inner.Add(NewLeaf("Leaf"))
	inner.Add(NewLeaf("Leaf2"))

	tree := NewComposite()
	tree.Add(NewLeaf("Leaf"))
	tree.Add(inner)

	out := tree.Show()
	assert.True(t, strings.HasPrefix(out, "size: 2\n"))
	assert.Contains(t, out, "size: 2\nLeaf")
	// Show recurses into the nested composite.
	assert.Contains(t, out, inner.Show())
}

func TestCompositeRemove(t *testing.T) {
	a := NewLeaf("A")
	b := NewLeaf("B")

	tree := NewComposite()
	tree.Add(a)
	tree.Add(b)

	t.Run("removes by identity", func(t *testing.T) {
		tree.Remove(a)
		children := tree.Children()
		require.Len(t, children, 1)
		assert.Same(t, b, children[0])
	})

	t.Run("removing absent child is a no-op", func(t *testing.T) {
		tree.Remove(NewLeaf("B")) // equal name, different identity
		require.Len(t, tree.Children(), 1)
	})
}

func TestLeavesAreDistinguishable(t *testing.T) {
	a := NewLeaf("Leaf")
	b := NewLeaf("Leaf")
	assert.NotEqual(t, a.Show(), b.Show())
}
