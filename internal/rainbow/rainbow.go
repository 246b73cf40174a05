// Package rainbow builds the styled item rows and the two output labels of
// the demo.
package rainbow

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/view"
)

const minRowWidth = 8

type swatch struct {
	name  string
	style lipgloss.Style
}

func newSwatch(name string, color lipgloss.Color) swatch {
	return swatch{name: name, style: lipgloss.NewStyle().Foreground(color)}
}

var (
	palette = []swatch{
		newSwatch("red", lipgloss.Color("196")),
		newSwatch("orange", lipgloss.Color("208")),
		newSwatch("yellow", lipgloss.Color("226")),
		newSwatch("green", lipgloss.Color("46")),
		newSwatch("blue", lipgloss.Color("33")),
		newSwatch("indigo", lipgloss.Color("57")),
		newSwatch("violet", lipgloss.Color("129")),
	}

	fallbackStyle = lipgloss.NewStyle().Faint(true)
)

// SetPalette replaces the color cycle, e.g. from config. An empty list keeps
// the default seven-color arc.
func SetPalette(colors []string) {
	if len(colors) == 0 {
		return
	}
	p := make([]swatch, 0, len(colors))
	for _, c := range colors {
		p = append(p, newSwatch(c, lipgloss.Color(c)))
	}
	palette = p
}

// ClassAt returns the style class assigned to the i-th rainbow.
func ClassAt(i int) string {
	return "rainbow-" + palette[i%len(palette)].name
}

// New builds a fresh rainbow row. The index selects the color; identity and
// animation phase start from zero.
func New(i int) *view.Node {
	s := palette[i%len(palette)]
	return view.NewNode("rainbow-"+s.name, s.name)
}

// Items builds n fresh rainbows: the off-tree item list the redraw
// strategies consume. Negative n yields an empty list.
func Items(n int) []*view.Node {
	if n < 0 {
		n = 0
	}
	items := make([]*view.Node, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, New(i))
	}
	return items
}

// Row renders one rainbow as a solid bar with a single travelling gap. The
// gap position is the node's animation phase, so a node rebuilt by a redraw
// visibly restarts from the left edge while an inserted neighbor keeps
// going.
func Row(n *view.Node, width int) string {
	if width < minRowWidth {
		width = minRowWidth
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = '█'
	}
	cells[n.Phase()%width] = '░'
	return styleFor(n.Class()).Render(string(cells))
}

// Renderer adapts Row to the container's per-node render hook.
func Renderer(width int) view.RenderFunc {
	return func(n *view.Node, _ int) string { return Row(n, width) }
}

func styleFor(class string) lipgloss.Style {
	for _, s := range palette {
		if class == "rainbow-"+s.name {
			return s.style
		}
	}
	return fallbackStyle
}
