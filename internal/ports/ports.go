package ports

import (
	"context"
	"time"

	"svw.info/sumplete/internal/domain"
)

// Result captures the outcome of one solve attempt. Moves counts state
// assignments and toggles applied to the grid, not trial probes used by
// ordering heuristics.
type Result struct {
	Solved   bool
	Moves    int
	Duration time.Duration
}

// Strategy attempts to drive a grid to a solved state. Implementations
// mutate the grid through its state-transition API only, check ctx once
// per step, and on failure leave the best state reached in place.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, g *domain.Grid) (Result, error)
}

// Generator creates new puzzles with derived targets.
type Generator interface {
	Generate(ctx context.Context, spec domain.GenerateSpec) (*domain.Puzzle, error)
}

// Hinter suggests cells whose state is forced by the current sums.
type Hinter interface {
	Hint(g *domain.Grid) (domain.Hint, bool)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
