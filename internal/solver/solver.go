// Package solver implements the search strategies that drive a grid to
// a solved state: systematic backtracking with selectable variable and
// value orderings, and the stochastic metaheuristics (hill climbing with
// random restart, simulated annealing, a genetic algorithm). Trial-and-
// revert is the normal control mechanism here, not an error path; only
// exhausted searches and spent iteration budgets surface as errors.
package solver

import "errors"

var (
	// ErrNoSolution means backtracking exhausted every branch under its
	// ordering. Cannot happen for puzzles from this module's generator,
	// whose hidden assignment is always a witness, but externally
	// supplied targets may admit no assignment at all.
	ErrNoSolution = errors.New("no solution found")

	// ErrBudgetExhausted means a stochastic solver hit its iteration cap
	// short of zero violations. The final, imperfect grid state is left
	// in place, not reverted.
	ErrBudgetExhausted = errors.New("iteration budget exhausted")
)
