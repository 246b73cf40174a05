// Package tui is the interactive front of the demo: a count field, four
// triggers, and a live container contrasting the three synchronization
// strategies.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/rainbow"
	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows taken by title, labels, input, help and the panel frame
	chromeHeight = 9

	tickInterval = 120 * time.Millisecond
)

// tickMsg advances every on-screen animation phase.
type tickMsg time.Time

// Model owns the ordered item list and the on-screen container; the
// synchronization strategies take both as explicit parameters.
type Model struct {
	log  zerolog.Logger
	sync *view.Synchronizer

	items     []*view.Node
	container *view.Container

	input textinput.Model
	vp    viewport.Model
	help  help.Model
	keys  keyMap

	last          *view.Result
	width, height int
}

// NewModel builds the controller with the count field pre-filled.
func NewModel(log zerolog.Logger, initialCount int) Model {
	ti := textinput.New()
	ti.Prompt = "How many rainbows? "
	ti.Placeholder = "0"
	ti.CharLimit = 6
	if initialCount > 0 {
		ti.SetValue(strconv.Itoa(initialCount))
	}
	ti.Focus()

	return Model{
		log:       log,
		sync:      view.NewSynchronizer(log),
		container: view.NewContainer(rainbow.Renderer(rowWidth(defaultWidth))),
		input:     ti,
		vp:        viewport.New(defaultWidth-4, defaultHeight-chromeHeight),
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.container.SetRenderer(rainbow.Renderer(rowWidth(m.width)))
		m.vp.Width = m.width - 4
		m.vp.Height = max(m.height-chromeHeight, 3)
		m.vp.SetContent(m.container.Render())
		return m, nil

	case tickMsg:
		for _, n := range m.container.Children() {
			n.Advance()
		}
		m.container.Repaint()
		m.vp.SetContent(m.container.Render())
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keys.PrependFull):
			m.prependFullRedraw()
			return m, nil
		case key.Matches(msg, m.keys.PrependInsert):
			m.prependInsertOne()
			return m, nil
		}
		var cmd tea.Cmd
		if isScrollKey(msg) {
			m.vp, cmd = m.vp.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd
	}

	var inputCmd, vpCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.vp, vpCmd = m.vp.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Touching the terminal with rainbows"))
	b.WriteString("\n")
	b.WriteString(countStyle.Render(rainbow.CountLabel(len(m.items))))
	b.WriteString("\n")
	if m.last != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(
			"%s · %d reflows · %s",
			rainbow.DurationLabel(m.last.Elapsed), m.last.Reflows, m.last.Strategy,
		)))
	} else {
		b.WriteString(mutedStyle.Render("Nothing drawn yet"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return panelStyle.Render(b.String())
}

// submit rebuilds the item list from the count field and draws it with the
// batched strategy: off-tree build, single splice.
func (m *Model) submit() {
	m.items = rainbow.Items(coerceCount(m.input.Value()))
	res := m.sync.BatchedRedraw(m.container, m.items)
	m.last = &res
	m.refresh()
}

// prependFullRedraw grows the list by one and redraws every row from
// scratch: all animation phases restart, the worst case the demo contrasts.
func (m *Model) prependFullRedraw() {
	m.items = rainbow.Items(len(m.items) + 1)
	res := m.sync.FullRedraw(m.container, m.items)
	m.last = &res
	m.refresh()
}

// prependInsertOne creates one fresh row and inserts it at the top; every
// row already on screen keeps its node and its phase.
func (m *Model) prependInsertOne() {
	item := rainbow.New(len(m.items))
	m.items = append([]*view.Node{item}, m.items...)
	res := m.sync.InsertOne(m.container, item, 0)
	m.last = &res
	m.refresh()
}

func (m *Model) reset() {
	m.items = nil
	m.container.Clear()
	m.last = nil
	m.refresh()
}

func (m *Model) refresh() {
	m.vp.SetContent(m.container.Render())
	m.vp.GotoTop()
}

// coerceCount turns the raw count field into a loop bound: non-numeric or
// negative input degrades to zero iterations.
func coerceCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func rowWidth(termWidth int) int {
	return max(termWidth-6, 8)
}

func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "down", "pgup", "pgdown":
		return true
	}
	return false
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Run starts the interactive program and blocks until it exits.
func Run(log zerolog.Logger, initialCount int) error {
	p := tea.NewProgram(NewModel(log, initialCount), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
