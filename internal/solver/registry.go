package solver

import (
	"fmt"
	"math/rand"

	"svw.info/sumplete/internal/ports"
)

// Strategy names accepted by the CLI and the HTTP API. The MRV and LCV
// variants mirror the backtracking heuristics they enable.
const (
	NameBacktracking    = "backtracking"
	NameBacktrackingMRV = "backtracking-mrv"
	NameBacktrackingLCV = "backtracking-lcv"
	NameHillClimbing    = "hill-climbing"
	NameAnnealing       = "annealing"
	NameGenetic         = "genetic"
)

// Names lists every registered strategy in presentation order.
func Names() []string {
	return []string{
		NameBacktracking,
		NameBacktrackingMRV,
		NameBacktrackingLCV,
		NameHillClimbing,
		NameAnnealing,
		NameGenetic,
	}
}

// New builds the named strategy with its reference defaults. The rng is
// shared by stochastic strategies; nil means a time-seeded source.
func New(name string, rng *rand.Rand) (ports.Strategy, error) {
	switch name {
	case NameBacktracking:
		return NewBacktracking(name, OrderRowMajor, ValuesIncludeFirst), nil
	case NameBacktrackingMRV:
		return NewBacktracking(name, OrderMRVDegree, ValuesIncludeFirst), nil
	case NameBacktrackingLCV:
		return NewBacktracking(name, OrderRowMajor, ValuesLeastConstraining), nil
	case NameHillClimbing:
		return NewHillClimbing(rng), nil
	case NameAnnealing:
		return NewAnnealing(rng), nil
	case NameGenetic:
		return NewGenetic(rng), nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}
