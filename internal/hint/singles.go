package hint

import (
	"fmt"

	"svw.info/sumplete/internal/domain"
)

// Singles implements a minimal Hinter that finds lines whose remaining
// undetermined cells are forced one way by the target sum.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first forced line found: if a row or column already
// meets its target, its undetermined cells must all be excluded; if the
// target needs every remaining value, they must all be included.
func (h *Singles) Hint(g *domain.Grid) (domain.Hint, bool) {
	n := g.Size()
	for i := 0; i < n; i++ {
		if hn, ok := forcedLine(g, i, true); ok {
			return hn, true
		}
		if hn, ok := forcedLine(g, i, false); ok {
			return hn, true
		}
	}
	return domain.Hint{}, false
}

func forcedLine(g *domain.Grid, i int, isRow bool) (domain.Hint, bool) {
	sum := func(pred func(domain.CellState) bool) int {
		if isRow {
			s, _ := g.RowSum(i, pred)
			return s
		}
		s, _ := g.ColSum(i, pred)
		return s
	}
	target := g.ColTarget(i)
	kind := "column"
	if isRow {
		target = g.RowTarget(i)
		kind = "row"
	}

	undetermined := sum(domain.Is(domain.Undetermined))
	if undetermined == 0 {
		return domain.Hint{}, false
	}
	included := sum(domain.Is(domain.Included))

	var state domain.CellState
	switch {
	case included == target:
		state = domain.Excluded
	case included+undetermined == target:
		state = domain.Included
	default:
		return domain.Hint{}, false
	}

	cells := make([]domain.CellCoord, 0, g.Size())
	for j := 0; j < g.Size(); j++ {
		r, c := i, j
		if !isRow {
			r, c = j, i
		}
		if st, _ := g.State(r, c); st == domain.Undetermined {
			cells = append(cells, domain.CellCoord{Row: r, Col: c})
		}
	}
	msg := fmt.Sprintf("%s %d is forced: remaining cells must be %s", kind, i+1, state)
	return domain.Hint{Message: msg, Cells: cells, State: state}, true
}
