package view

// Fragment is an off-screen aggregation buffer: nodes appended here cost no
// reflow because nothing is rendered until the fragment is spliced into a
// live container with Container.AppendFragment.
type Fragment struct {
	nodes []*Node
}

// NewFragment returns an empty buffer.
func NewFragment() *Fragment { return &Fragment{} }

// Append buffers n. Zero reflows.
func (f *Fragment) Append(n *Node) { f.nodes = append(f.nodes, n) }

// Len reports the number of buffered nodes.
func (f *Fragment) Len() int { return len(f.nodes) }

// take hands over the buffered nodes and empties the fragment.
func (f *Fragment) take() []*Node {
	ns := f.nodes
	f.nodes = nil
	return ns
}
