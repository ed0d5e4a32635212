package solver

import (
	"context"
	"math"
	"math/rand"
	"time"

	"svw.info/sumplete/internal/constraint"
	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
)

// Annealing minimizes the total absolute deviation from the targets,
// accepting worsening toggles with the Metropolis probability under a
// geometrically cooling temperature.
type Annealing struct {
	InitialTemperature float64
	CoolingRate        float64
	MaxIterations      int

	rng *rand.Rand
}

func NewAnnealing(rng *rand.Rand) *Annealing {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Annealing{
		InitialTemperature: 100.0,
		CoolingRate:        0.99,
		MaxIterations:      1000,
		rng:                rng,
	}
}

func (s *Annealing) Name() string { return NameAnnealing }

func (s *Annealing) Attempt(ctx context.Context, g *domain.Grid) (ports.Result, error) {
	start := time.Now()
	n := g.Size()
	moves := 0

	// Deviation counts undetermined cells as excluded; pin them there so
	// a zero error always coincides with a fully determined, solved grid.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if st, _ := g.State(r, c); st == domain.Undetermined {
				_ = g.SetState(r, c, domain.Excluded)
			}
		}
	}

	temp := s.InitialTemperature
	cur := constraint.Deviation(g)

	done := func(err error) (ports.Result, error) {
		return ports.Result{Solved: g.IsSolved(), Moves: moves, Duration: time.Since(start)}, err
	}

	for i := 0; i < s.MaxIterations && cur > 0; i++ {
		if err := ctx.Err(); err != nil {
			return done(err)
		}
		r, c := s.rng.Intn(n), s.rng.Intn(n)
		_ = g.Toggle(r, c)
		moves++
		next := constraint.Deviation(g)
		if next < cur || s.rng.Float64() < math.Exp(float64(cur-next)/temp) {
			cur = next
		} else {
			_ = g.Toggle(r, c)
			moves++
		}
		temp *= s.CoolingRate
	}

	if cur != 0 {
		return done(ErrBudgetExhausted)
	}
	return done(nil)
}
