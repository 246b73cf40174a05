package view

import "strings"

// RenderFunc renders one node at its current index into a single row.
// Containers call it on every layout pass, so it should be cheap.
type RenderFunc func(n *Node, index int) string

// Container is the on-screen mount point: an ordered child list plus a
// cached layout. Every structural mutation of a live container (append,
// insert, clear, splice) triggers exactly one layout pass; Reflows reports
// the running count so the cost of a synchronization strategy is observable
// rather than a comment-only claim.
type Container struct {
	children []*Node
	render   RenderFunc
	layout   string
	reflows  int
}

// NewContainer creates an empty container. A nil render falls back to the
// node's raw text.
func NewContainer(render RenderFunc) *Container {
	if render == nil {
		render = func(n *Node, _ int) string { return n.Text() }
	}
	return &Container{render: render}
}

// Append attaches n as the last child. One reflow.
func (c *Container) Append(n *Node) {
	c.children = append(c.children, n)
	c.reflow()
}

// InsertBefore inserts n immediately before ref, shifting ref and everything
// after it one position right. A nil ref appends, as does a ref that is not
// currently a child; both match how the original resolved an invalid
// reference node.
func (c *Container) InsertBefore(n *Node, ref *Node) {
	if ref != nil {
		for i, ch := range c.children {
			if ch == ref {
				c.children = append(c.children, nil)
				copy(c.children[i+1:], c.children[i:])
				c.children[i] = n
				c.reflow()
				return
			}
		}
	}
	c.children = append(c.children, n)
	c.reflow()
}

// AppendFragment splices every node buffered in f onto the end of the child
// list in a single reflow, emptying the fragment (move semantics).
func (c *Container) AppendFragment(f *Fragment) {
	c.children = append(c.children, f.take()...)
	c.reflow()
}

// Clear removes all children. One reflow.
func (c *Container) Clear() {
	c.children = nil
	c.reflow()
}

// ChildAt returns the child at index i, or nil when i is out of range.
func (c *Container) ChildAt(i int) *Node {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Len reports the number of children.
func (c *Container) Len() int { return len(c.children) }

// Children returns a copy of the child list in display order.
func (c *Container) Children() []*Node {
	out := make([]*Node, len(c.children))
	copy(out, c.children)
	return out
}

// Render returns the cached layout: one row per child, joined by newlines.
func (c *Container) Render() string { return c.layout }

// Reflows reports how many layout passes this container has performed.
func (c *Container) Reflows() int { return c.reflows }

// SetRenderer swaps the row renderer and lays the children out again, e.g.
// after a window resize. Counts as a reflow.
func (c *Container) SetRenderer(render RenderFunc) {
	if render == nil {
		return
	}
	c.render = render
	c.reflow()
}

// Repaint refreshes the cached rows without a structural change, for purely
// presentational updates such as the animation tick. Not counted as a
// reflow.
func (c *Container) Repaint() { c.layout = c.renderRows() }

func (c *Container) reflow() {
	c.layout = c.renderRows()
	c.reflows++
}

func (c *Container) renderRows() string {
	if len(c.children) == 0 {
		return ""
	}
	rows := make([]string, len(c.children))
	for i, n := range c.children {
		rows[i] = c.render(n, i)
	}
	return strings.Join(rows, "\n")
}
