package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
	"svw.info/sumplete/internal/solver"
)

// Session runs one strategy against a sequence of freshly generated
// puzzles, one grid per game. Each game gets a new Grid instance; fields
// are never reset in place.
type Session struct {
	Strategy  ports.Strategy
	Generator ports.Generator
	Games     int
	Logger    *slog.Logger
	// Observer, when set, is subscribed to every game's grid.
	Observer domain.Observer
}

// GameReport is the externally reported outcome of one game: status,
// toggles performed, and wall-clock time.
type GameReport struct {
	Game     int           `json:"game"`
	PuzzleID string        `json:"puzzleId,omitempty"`
	Solved   bool          `json:"solved"`
	Moves    int           `json:"moves"`
	Duration time.Duration `json:"duration"`
}

// Run plays Games rounds, generating a fresh puzzle for each. A non-zero
// spec seed is advanced per game so rounds stay reproducible without
// replaying the identical puzzle. Budget-exhausted games are reported,
// not fatal; any other solver error stops the run.
func (s *Session) Run(ctx context.Context, spec domain.GenerateSpec) ([]GameReport, error) {
	if s.Strategy == nil || s.Generator == nil {
		return nil, errNotConfigured
	}
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	reports := make([]GameReport, 0, s.Games)
	games := s.Games
	if games < 1 {
		games = 1
	}
	for game := 1; game <= games; game++ {
		gameSpec := spec
		if spec.Seed != 0 {
			gameSpec.Seed = spec.Seed + int64(game-1)
		}
		p, err := s.Generator.Generate(ctx, gameSpec)
		if err != nil {
			return reports, err
		}
		grid, err := domain.NewGrid(p)
		if err != nil {
			return reports, err
		}
		if s.Observer != nil {
			grid.Subscribe(s.Observer)
		}

		res, err := s.Strategy.Attempt(ctx, grid)
		report := GameReport{
			Game:     game,
			PuzzleID: p.ID,
			Solved:   res.Solved,
			Moves:    res.Moves,
			Duration: res.Duration,
		}
		reports = append(reports, report)
		log.Info("game finished",
			"game", game,
			"of", games,
			"solver", s.Strategy.Name(),
			"solved", res.Solved,
			"moves", res.Moves,
			"dur", res.Duration.Round(time.Microsecond),
		)
		if err != nil && !errors.Is(err, solver.ErrBudgetExhausted) && !errors.Is(err, solver.ErrNoSolution) {
			return reports, err
		}
	}
	return reports, nil
}

// SolveGrid runs one strategy against an existing grid and reports the
// outcome. Budget exhaustion and unsolvable instances come back as the
// result plus the sentinel error, with the grid left as the solver
// finished it.
func SolveGrid(ctx context.Context, strat ports.Strategy, g *domain.Grid) (ports.Result, error) {
	if strat == nil {
		return ports.Result{}, errNotConfigured
	}
	return strat.Attempt(ctx, g)
}
