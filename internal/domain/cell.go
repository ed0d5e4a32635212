package domain

// CellState is the player- or solver-controlled marker on a cell. Only
// Included cells count toward row and column sums; Undetermined is the
// initial state of a fresh puzzle and is never re-entered by toggling.
type CellState int

const (
	Undetermined CellState = iota
	Included
	Excluded
)

func (s CellState) String() string {
	switch s {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "undetermined"
	}
}

// Is returns a predicate matching exactly the given state, for use with
// Grid.RowSum and Grid.ColSum.
func Is(want CellState) func(CellState) bool {
	return func(s CellState) bool { return s == want }
}

// cell is one square of the grid: a fixed value and a mutable state.
// The hidden generator assignment lives on Puzzle, not here, so solving
// code cannot reach it.
type cell struct {
	value int
	state CellState
}
