package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/generator"
	"svw.info/sumplete/internal/ports"
	"svw.info/sumplete/internal/solver"
)

func TestSessionRunsEveryGame(t *testing.T) {
	strat, err := solver.New(solver.NameBacktrackingLCV, nil)
	require.NoError(t, err)

	session := &Session{
		Strategy:  strat,
		Generator: generator.New(),
		Games:     3,
	}
	reports, err := session.Run(context.Background(), domain.GenerateSpec{Size: 3, Seed: 17})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	seen := map[string]bool{}
	for i, r := range reports {
		assert.Equal(t, i+1, r.Game)
		assert.True(t, r.Solved, "game %d", r.Game)
		assert.Greater(t, r.Moves, 0)
		assert.False(t, seen[r.PuzzleID], "each game gets a fresh puzzle")
		seen[r.PuzzleID] = true
	}
}

type stubStrategy struct {
	err   error
	calls int
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Attempt(ctx context.Context, g *domain.Grid) (ports.Result, error) {
	s.calls++
	return ports.Result{Solved: false, Moves: 1}, s.err
}

func TestSessionTreatsBudgetExhaustionAsReportable(t *testing.T) {
	stub := &stubStrategy{err: solver.ErrBudgetExhausted}
	session := &Session{
		Strategy:  stub,
		Generator: generator.New(),
		Games:     2,
	}
	reports, err := session.Run(context.Background(), domain.GenerateSpec{Size: 2, Seed: 1})
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 2, stub.calls, "budget exhaustion must not abort the run")
	for _, r := range reports {
		assert.False(t, r.Solved)
	}
}

func TestSessionStopsOnUnexpectedError(t *testing.T) {
	stub := &stubStrategy{err: context.DeadlineExceeded}
	session := &Session{
		Strategy:  stub,
		Generator: generator.New(),
		Games:     5,
	}
	reports, err := session.Run(context.Background(), domain.GenerateSpec{Size: 2, Seed: 1})
	assert.Error(t, err)
	assert.Len(t, reports, 1)
}

func TestSessionObserverSeesMoves(t *testing.T) {
	strat, err := solver.New(solver.NameBacktracking, nil)
	require.NoError(t, err)

	events := 0
	session := &Session{
		Strategy:  strat,
		Generator: generator.New(),
		Games:     1,
		Observer:  func(domain.StateChange) { events++ },
	}
	_, err = session.Run(context.Background(), domain.GenerateSpec{Size: 2, Seed: 9})
	require.NoError(t, err)
	assert.Greater(t, events, 0)
}
