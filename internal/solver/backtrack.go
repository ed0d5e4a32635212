package solver

import (
	"context"
	"time"

	"svw.info/sumplete/internal/constraint"
	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
)

// VariableOrder selects which undetermined cell backtracking assigns next.
type VariableOrder int

const (
	// OrderRowMajor scans for the first undetermined cell.
	OrderRowMajor VariableOrder = iota
	// OrderMRVDegree picks the cell with fewest feasible states left,
	// ties broken by the count of undetermined cells sharing its row or
	// column.
	OrderMRVDegree
)

// ValueOrder selects which state backtracking tries first for a cell.
type ValueOrder int

const (
	// ValuesIncludeFirst always tries Included before Excluded.
	ValuesIncludeFirst ValueOrder = iota
	// ValuesLeastConstraining tries the state that pushes fewer rows and
	// columns over their targets.
	ValuesLeastConstraining
)

// Backtracking is the systematic, complete strategy. On any puzzle from
// this module's generator it terminates with a solved grid; on arbitrary
// targets it reports ErrNoSolution once the root choice is exhausted.
type Backtracking struct {
	name string
	vars VariableOrder
	vals ValueOrder
}

// NewBacktracking builds a backtracking strategy with the given
// orderings, registered under name for reporting.
func NewBacktracking(name string, vars VariableOrder, vals ValueOrder) *Backtracking {
	return &Backtracking{name: name, vars: vars, vals: vals}
}

func (s *Backtracking) Name() string { return s.name }

func (s *Backtracking) Attempt(ctx context.Context, g *domain.Grid) (ports.Result, error) {
	start := time.Now()
	moves := 0

	var dfs func() (bool, error)
	dfs = func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		r, c, found := s.nextCell(g)
		if !found {
			return g.IsSolved(), nil
		}
		for _, st := range s.orderedStates(g, r, c) {
			moves++
			_ = g.SetState(r, c, st)
			if consistent(g, r, c) {
				ok, err := dfs()
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			_ = g.SetState(r, c, domain.Undetermined)
		}
		return false, nil
	}

	solved, err := dfs()
	res := ports.Result{Solved: solved, Moves: moves, Duration: time.Since(start)}
	if err != nil {
		return res, err
	}
	if !solved {
		return res, ErrNoSolution
	}
	return res, nil
}

// consistent checks the just-assigned cell's row and column: sums must
// not overshoot their targets, and once a line is fully determined its
// sum must match exactly.
func consistent(g *domain.Grid, r, c int) bool {
	rs, _ := g.RowSum(r, domain.Is(domain.Included))
	if constraint.RowComplete(g, r) {
		if rs != g.RowTarget(r) {
			return false
		}
	} else if rs > g.RowTarget(r) {
		return false
	}
	cs, _ := g.ColSum(c, domain.Is(domain.Included))
	if constraint.ColComplete(g, c) {
		if cs != g.ColTarget(c) {
			return false
		}
	} else if cs > g.ColTarget(c) {
		return false
	}
	return true
}

func (s *Backtracking) nextCell(g *domain.Grid) (int, int, bool) {
	if s.vars == OrderMRVDegree {
		return s.nextCellMRV(g)
	}
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			st, _ := g.State(r, c)
			if st == domain.Undetermined {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// nextCellMRV applies MRV with the degree heuristic as tie-breaker.
func (s *Backtracking) nextCellMRV(g *domain.Grid) (int, int, bool) {
	n := g.Size()
	bestR, bestC := -1, -1
	minRemaining := 3
	maxDegree := -1
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			st, _ := g.State(r, c)
			if st != domain.Undetermined {
				continue
			}
			remaining := legalStates(g, r, c)
			switch {
			case remaining < minRemaining:
				minRemaining = remaining
				maxDegree = degree(g, r, c)
				bestR, bestC = r, c
			case remaining == minRemaining:
				if d := degree(g, r, c); d > maxDegree {
					maxDegree = d
					bestR, bestC = r, c
				}
			}
		}
	}
	if bestR < 0 {
		return 0, 0, false
	}
	return bestR, bestC, true
}

// legalStates trial-assigns Included and Excluded and counts how many
// keep the cell's row and column feasible. Result is 0, 1, or 2.
func legalStates(g *domain.Grid, r, c int) int {
	count := 0
	for _, st := range [2]domain.CellState{domain.Included, domain.Excluded} {
		_ = g.SetState(r, c, st)
		if constraint.RowFeasible(g, r) && constraint.ColFeasible(g, c) {
			count++
		}
	}
	_ = g.SetState(r, c, domain.Undetermined)
	return count
}

// degree counts the other undetermined cells sharing the row or column.
func degree(g *domain.Grid, r, c int) int {
	n := g.Size()
	d := 0
	for i := 0; i < n; i++ {
		if i != r {
			if st, _ := g.State(i, c); st == domain.Undetermined {
				d++
			}
		}
		if i != c {
			if st, _ := g.State(r, i); st == domain.Undetermined {
				d++
			}
		}
	}
	return d
}

func (s *Backtracking) orderedStates(g *domain.Grid, r, c int) [2]domain.CellState {
	if s.vals != ValuesLeastConstraining {
		return [2]domain.CellState{domain.Included, domain.Excluded}
	}
	costInc := constrainingCost(g, r, c, domain.Included)
	costExc := constrainingCost(g, r, c, domain.Excluded)
	if costExc < costInc {
		return [2]domain.CellState{domain.Excluded, domain.Included}
	}
	return [2]domain.CellState{domain.Included, domain.Excluded}
}

// constrainingCost trial-assigns a state and counts every row and column
// whose included-sum would overshoot its target.
func constrainingCost(g *domain.Grid, r, c int, st domain.CellState) int {
	_ = g.SetState(r, c, st)
	n := g.Size()
	cost := 0
	for i := 0; i < n; i++ {
		if !constraint.RowFeasible(g, i) {
			cost++
		}
		if !constraint.ColFeasible(g, i) {
			cost++
		}
	}
	_ = g.SetState(r, c, domain.Undetermined)
	return cost
}
