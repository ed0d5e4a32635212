// Package tui is the interactive terminal front end. It consumes the
// core's state-change events and never computes constraints itself
// beyond calling the grid's win check.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Cycle key.Binding
	Hint  key.Binding
	New   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Cycle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "mark cell")),
		Hint:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
		New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new puzzle")),
		Help:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "toggle help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Hint, k.New, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Cycle, k.Hint, k.New},
		{k.Help, k.Quit},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// Model is the bubbletea model for manual play. Each new puzzle gets a
// fresh grid; the model subscribes to it to count moves.
type Model struct {
	gen    ports.Generator
	hinter ports.Hinter
	spec   domain.GenerateSpec

	puzzle *domain.Puzzle
	grid   *domain.Grid
	cursor domain.CellCoord

	keys     keyMap
	help     help.Model
	moves    int
	won      bool
	status   string
	quitting bool
}

// NewModel starts a play session on the given puzzle. gen is used for
// the "new puzzle" action; hinter may be nil.
func NewModel(p *domain.Puzzle, gen ports.Generator, hinter ports.Hinter, spec domain.GenerateSpec) (Model, error) {
	grid, err := domain.NewGrid(p)
	if err != nil {
		return Model{}, err
	}
	return Model{
		gen:    gen,
		hinter: hinter,
		spec:   spec,
		puzzle: p,
		grid:   grid,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Cycle):
			if !m.won {
				m.cycleCell()
			}
		case key.Matches(msg, m.keys.Hint):
			m.showHint()
		case key.Matches(msg, m.keys.New):
			m.newPuzzle()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	n := m.grid.Size()
	m.cursor.Row = clamp(m.cursor.Row+dr, 0, n-1)
	m.cursor.Col = clamp(m.cursor.Col+dc, 0, n-1)
}

// cycleCell walks the original click sequence: blank, X, circle, blank.
func (m *Model) cycleCell() {
	st, err := m.grid.State(m.cursor.Row, m.cursor.Col)
	if err != nil {
		return
	}
	var next domain.CellState
	switch st {
	case domain.Undetermined:
		next = domain.Excluded
	case domain.Excluded:
		next = domain.Included
	default:
		next = domain.Undetermined
	}
	_ = m.grid.SetState(m.cursor.Row, m.cursor.Col, next)
	m.moves++
	m.status = ""
	if m.grid.IsSolved() {
		m.won = true
	}
}

func (m *Model) showHint() {
	if m.hinter == nil {
		return
	}
	if h, ok := m.hinter.Hint(m.grid); ok {
		m.status = h.Message
		if len(h.Cells) > 0 {
			m.cursor = h.Cells[0]
		}
	} else {
		m.status = "no forced cells right now"
	}
}

func (m *Model) newPuzzle() {
	if m.gen == nil {
		return
	}
	spec := m.spec
	spec.Seed = 0 // fresh puzzle, not a replay
	p, err := m.gen.Generate(context.Background(), spec)
	if err != nil {
		m.status = err.Error()
		return
	}
	grid, err := domain.NewGrid(p)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.puzzle = p
	m.grid = grid
	m.cursor = domain.CellCoord{}
	m.moves = 0
	m.won = false
	m.status = ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := titleStyle.Render(fmt.Sprintf("Sumplete %dx%d", m.grid.Size(), m.grid.Size())) + "\n"
	s += RenderGrid(m.grid, &m.cursor)
	s += "\n"
	if m.won {
		s += wonStyle.Render(fmt.Sprintf("Congratulations! You won in %d moves.", m.moves)) + "\n"
	} else if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}
	s += "\n" + m.help.View(m.keys)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
