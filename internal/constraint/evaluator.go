// Package constraint holds the pure sum checks shared by every solver.
package constraint

import "svw.info/sumplete/internal/domain"

// ViolationCount counts rows and columns whose included-sum differs from
// its target, treating Undetermined as Excluded. Range 0..2N. This is
// the hill-climbing objective.
func ViolationCount(g *domain.Grid) int {
	violations := 0
	for i := 0; i < g.Size(); i++ {
		rs, _ := g.RowSum(i, domain.Is(domain.Included))
		if rs != g.RowTarget(i) {
			violations++
		}
		cs, _ := g.ColSum(i, domain.Is(domain.Included))
		if cs != g.ColTarget(i) {
			violations++
		}
	}
	return violations
}

// Deviation is the total absolute error Σ|rowSum−rowTarget| +
// Σ|colSum−colTarget|, a smoother objective than ViolationCount. Used by
// annealing and the genetic fitness.
func Deviation(g *domain.Grid) int {
	err := 0
	for i := 0; i < g.Size(); i++ {
		rs, _ := g.RowSum(i, domain.Is(domain.Included))
		err += abs(rs - g.RowTarget(i))
		cs, _ := g.ColSum(i, domain.Is(domain.Included))
		err += abs(cs - g.ColTarget(i))
	}
	return err
}

// RowFeasible reports whether row i can still reach its target: the
// included-sum has not overshot. Necessary, not sufficient; inclusion
// only ever raises a sum, so an overshoot can never recover.
func RowFeasible(g *domain.Grid, i int) bool {
	rs, err := g.RowSum(i, domain.Is(domain.Included))
	if err != nil {
		return false
	}
	return rs <= g.RowTarget(i)
}

// ColFeasible is the column counterpart of RowFeasible.
func ColFeasible(g *domain.Grid, j int) bool {
	cs, err := g.ColSum(j, domain.Is(domain.Included))
	if err != nil {
		return false
	}
	return cs <= g.ColTarget(j)
}

// RowComplete reports whether every cell in row i is determined, which
// upgrades the feasibility check to an exact-sum requirement.
func RowComplete(g *domain.Grid, i int) bool {
	und, err := g.RowSum(i, domain.Is(domain.Undetermined))
	if err != nil {
		return false
	}
	return und == 0
}

// ColComplete is the column counterpart of RowComplete.
func ColComplete(g *domain.Grid, j int) bool {
	und, err := g.ColSum(j, domain.Is(domain.Undetermined))
	if err != nil {
		return false
	}
	return und == 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
