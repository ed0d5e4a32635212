package solver

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sumplete/internal/constraint"
	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
)

// restartProbability is the chance each cell is toggled when a sweep
// produces no improvement.
const restartProbability = 0.3

// sweepsPerCell scales the iteration budget with grid size.
const sweepsPerCell = 1000

// HillClimbing minimizes the violation count by greedy toggling with a
// random restart whenever a full sweep stalls. Incomplete: it stops at
// its budget with the best grid reached, which need not be solved.
type HillClimbing struct {
	rng *rand.Rand
}

func NewHillClimbing(rng *rand.Rand) *HillClimbing {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HillClimbing{rng: rng}
}

func (s *HillClimbing) Name() string { return NameHillClimbing }

func (s *HillClimbing) Attempt(ctx context.Context, g *domain.Grid) (ports.Result, error) {
	start := time.Now()
	n := g.Size()
	moves := 0
	best := constraint.ViolationCount(g)

	done := func(err error) (ports.Result, error) {
		return ports.Result{Solved: g.IsSolved(), Moves: moves, Duration: time.Since(start)}, err
	}

	for iter := 0; iter < sweepsPerCell*n; iter++ {
		if err := ctx.Err(); err != nil {
			return done(err)
		}
		improved := false
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				_ = g.Toggle(r, c)
				moves++
				if v := constraint.ViolationCount(g); v < best {
					best = v
					improved = true
				} else {
					_ = g.Toggle(r, c)
					moves++
				}
			}
		}
		if best == 0 {
			break
		}
		if !improved {
			s.randomRestart(g, &moves)
			best = constraint.ViolationCount(g)
		}
	}

	if !g.IsSolved() {
		return done(ErrBudgetExhausted)
	}
	return done(nil)
}

func (s *HillClimbing) randomRestart(g *domain.Grid, moves *int) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s.rng.Float64() < restartProbability {
				_ = g.Toggle(r, c)
				*moves++
			}
		}
	}
}
