package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer() *Container {
	return NewContainer(func(n *Node, i int) string {
		return fmt.Sprintf("%d:%s", i, n.Text())
	})
}

func TestContainerAppendKeepsOrder(t *testing.T) {
	c := newTestContainer()
	a, b := NewNode("row", "a"), NewNode("row", "b")
	c.Append(a)
	c.Append(b)

	require.Equal(t, 2, c.Len())
	assert.Same(t, a, c.ChildAt(0))
	assert.Same(t, b, c.ChildAt(1))
	assert.Equal(t, "0:a\n1:b", c.Render())
}

func TestContainerInsertBefore(t *testing.T) {
	c := newTestContainer()
	a, b := NewNode("row", "a"), NewNode("row", "b")
	c.Append(a)
	c.Append(b)

	mid := NewNode("row", "mid")
	c.InsertBefore(mid, b)

	require.Equal(t, 3, c.Len())
	assert.Same(t, a, c.ChildAt(0))
	assert.Same(t, mid, c.ChildAt(1))
	assert.Same(t, b, c.ChildAt(2))
}

func TestContainerInsertBeforeNilRefAppends(t *testing.T) {
	c := newTestContainer()
	c.Append(NewNode("row", "a"))

	tail := NewNode("row", "tail")
	c.InsertBefore(tail, nil)

	assert.Same(t, tail, c.ChildAt(1))
}

func TestContainerInsertBeforeUnknownRefAppends(t *testing.T) {
	c := newTestContainer()
	c.Append(NewNode("row", "a"))

	stranger := NewNode("row", "not-a-child")
	n := NewNode("row", "n")
	c.InsertBefore(n, stranger)

	require.Equal(t, 2, c.Len())
	assert.Same(t, n, c.ChildAt(1))
}

func TestContainerChildAtOutOfRange(t *testing.T) {
	c := newTestContainer()
	c.Append(NewNode("row", "a"))

	assert.Nil(t, c.ChildAt(-1))
	assert.Nil(t, c.ChildAt(1))
	assert.Nil(t, c.ChildAt(99))
}

func TestContainerClear(t *testing.T) {
	c := newTestContainer()
	c.Append(NewNode("row", "a"))
	c.Append(NewNode("row", "b"))

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Render())
	assert.Empty(t, c.Children())
}

func TestContainerReflowAccounting(t *testing.T) {
	c := newTestContainer()
	require.Equal(t, 0, c.Reflows())

	c.Append(NewNode("row", "a"))
	c.Append(NewNode("row", "b"))
	assert.Equal(t, 2, c.Reflows(), "one reflow per live append")

	c.Clear()
	assert.Equal(t, 3, c.Reflows())

	c.Repaint()
	assert.Equal(t, 3, c.Reflows(), "repaint is not a structural change")

	c.SetRenderer(func(n *Node, _ int) string { return n.Text() })
	assert.Equal(t, 4, c.Reflows(), "renderer swap relays out the tree")
}

func TestFragmentAppendCostsNothingUntilSpliced(t *testing.T) {
	c := newTestContainer()
	f := NewFragment()
	for i := 0; i < 50; i++ {
		f.Append(NewNode("row", fmt.Sprintf("n%d", i)))
	}
	require.Equal(t, 50, f.Len())
	require.Equal(t, 0, c.Reflows(), "fragment appends must not touch the container")

	c.AppendFragment(f)

	assert.Equal(t, 50, c.Len())
	assert.Equal(t, 1, c.Reflows(), "splice is a single reflow")
	assert.Equal(t, 0, f.Len(), "splice empties the fragment")
}

func TestContainerChildrenReturnsCopy(t *testing.T) {
	c := newTestContainer()
	a := NewNode("row", "a")
	c.Append(a)

	kids := c.Children()
	kids[0] = nil

	assert.Same(t, a, c.ChildAt(0))
}

func TestRepaintPicksUpNodeState(t *testing.T) {
	c := NewContainer(func(n *Node, _ int) string {
		return fmt.Sprintf("%s@%d", n.Text(), n.Phase())
	})
	n := NewNode("row", "a")
	c.Append(n)
	require.Equal(t, "a@0", c.Render())

	n.Advance()
	assert.Equal(t, "a@0", c.Render(), "layout is cached until repaint")

	c.Repaint()
	assert.Equal(t, "a@1", c.Render())
}
