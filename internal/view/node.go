package view

import "github.com/oklog/ulid/v2"

// Node is a single renderable row in a Container. It carries presentation
// only: a style class, optional text, and a transient animation phase that
// the UI tick advances while the node stays on screen. Identity is the
// pointer; the ULID is a stable label for logs.
type Node struct {
	id    ulid.ULID
	class string
	text  string
	phase int
}

// NewNode creates a fresh node with a new identity and zero phase.
func NewNode(class, text string) *Node {
	return &Node{id: ulid.Make(), class: class, text: text}
}

func (n *Node) ID() string    { return n.id.String() }
func (n *Node) Class() string { return n.class }
func (n *Node) Text() string  { return n.text }
func (n *Node) Phase() int    { return n.phase }

// Advance bumps the animation phase. The phase survives as long as the node
// itself does; rebuilding a node resets it, which is exactly the state-loss
// the redraw strategies differ on.
func (n *Node) Advance() { n.phase++ }
