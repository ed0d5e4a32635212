package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a coordinate outside [0,size).
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is the live playing state of one puzzle. It exclusively owns its
// cell matrix; targets are fixed at construction and never re-derived.
// A grid is single-goroutine: exactly one solver or player mutates it at
// a time. Puzzle resets are a fresh Grid, never a field reset, so stale
// targets cannot survive a new game.
type Grid struct {
	size       int
	cells      [][]cell
	rowTargets []int
	colTargets []int
	observers  []Observer
}

// NewGrid builds a grid from a puzzle with all cells Undetermined.
func NewGrid(p *Puzzle) (*Grid, error) {
	if p == nil || p.Size < 1 {
		return nil, errors.New("puzzle size must be at least 1")
	}
	n := p.Size
	if len(p.Values) != n || len(p.RowTargets) != n || len(p.ColTargets) != n {
		return nil, fmt.Errorf("puzzle shape mismatch for size %d", n)
	}
	cells := make([][]cell, n)
	for r := 0; r < n; r++ {
		if len(p.Values[r]) != n {
			return nil, fmt.Errorf("row %d has %d values, want %d", r, len(p.Values[r]), n)
		}
		cells[r] = make([]cell, n)
		for c := 0; c < n; c++ {
			if p.Values[r][c] < 1 {
				return nil, fmt.Errorf("cell (%d,%d) value must be positive", r, c)
			}
			cells[r][c] = cell{value: p.Values[r][c]}
		}
	}
	g := &Grid{
		size:       n,
		cells:      cells,
		rowTargets: append([]int(nil), p.RowTargets...),
		colTargets: append([]int(nil), p.ColTargets...),
	}
	return g, nil
}

// Subscribe registers an observer for subsequent state changes.
func (g *Grid) Subscribe(obs Observer) {
	g.observers = append(g.observers, obs)
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

// Value returns the fixed value of a cell.
func (g *Grid) Value(r, c int) (int, error) {
	if !g.inBounds(r, c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	return g.cells[r][c].value, nil
}

// State returns the current state of a cell.
func (g *Grid) State(r, c int) (CellState, error) {
	if !g.inBounds(r, c) {
		return Undetermined, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	return g.cells[r][c].state, nil
}

// SetState mutates exactly one cell and notifies observers. Targets may
// be violated transiently; that is the normal course of search.
func (g *Grid) SetState(r, c int, s CellState) error {
	if !g.inBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	old := g.cells[r][c].state
	g.cells[r][c].state = s
	if old != s {
		for _, obs := range g.observers {
			obs(StateChange{Row: r, Col: c, Old: old, New: s})
		}
	}
	return nil
}

// Toggle flips a cell between Included and Excluded. An Undetermined
// cell becomes Included, matching the original toggle sequence; toggling
// never returns a cell to Undetermined.
func (g *Grid) Toggle(r, c int) error {
	st, err := g.State(r, c)
	if err != nil {
		return err
	}
	if st == Included {
		return g.SetState(r, c, Excluded)
	}
	return g.SetState(r, c, Included)
}

// RowTarget returns the fixed target sum for row i.
func (g *Grid) RowTarget(i int) int { return g.rowTargets[i] }

// ColTarget returns the fixed target sum for column j.
func (g *Grid) ColTarget(j int) int { return g.colTargets[j] }

// RowSum sums cell values in row i where pred(state) holds.
func (g *Grid) RowSum(i int, pred func(CellState) bool) (int, error) {
	if i < 0 || i >= g.size {
		return 0, fmt.Errorf("%w: row %d", ErrOutOfBounds, i)
	}
	sum := 0
	for c := 0; c < g.size; c++ {
		if pred(g.cells[i][c].state) {
			sum += g.cells[i][c].value
		}
	}
	return sum, nil
}

// ColSum sums cell values in column j where pred(state) holds.
func (g *Grid) ColSum(j int, pred func(CellState) bool) (int, error) {
	if j < 0 || j >= g.size {
		return 0, fmt.Errorf("%w: col %d", ErrOutOfBounds, j)
	}
	sum := 0
	for r := 0; r < g.size; r++ {
		if pred(g.cells[r][j].state) {
			sum += g.cells[r][j].value
		}
	}
	return sum, nil
}

// IsFullyDetermined reports whether no cell remains Undetermined.
func (g *Grid) IsFullyDetermined() bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].state == Undetermined {
				return false
			}
		}
	}
	return true
}

// IsSolved is the win check: every cell determined and every row and
// column included-sum equal to its target. It is side-effect-free.
func (g *Grid) IsSolved() bool {
	if !g.IsFullyDetermined() {
		return false
	}
	for i := 0; i < g.size; i++ {
		rs, _ := g.RowSum(i, Is(Included))
		if rs != g.rowTargets[i] {
			return false
		}
		cs, _ := g.ColSum(i, Is(Included))
		if cs != g.colTargets[i] {
			return false
		}
	}
	return true
}

// States returns a snapshot of all cell states.
func (g *Grid) States() [][]CellState {
	out := make([][]CellState, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = make([]CellState, g.size)
		for c := 0; c < g.size; c++ {
			out[r][c] = g.cells[r][c].state
		}
	}
	return out
}
