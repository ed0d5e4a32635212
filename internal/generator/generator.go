// Package generator builds random Sumplete puzzles: random cell values,
// an independent hidden include flag per cell, and row/column targets
// derived once from that hidden assignment. The hidden assignment is a
// witness, so every generated puzzle is satisfiable; it is not promised
// to be the only solution.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/sumplete/internal/domain"
)

type Random struct{}

func New() *Random { return &Random{} }

// Generate fills an N×N grid with values drawn uniformly from the spec's
// range and marks each cell included with the spec's probability, then
// derives the targets. Seed 0 means a fresh seed from the clock.
func (g *Random) Generate(ctx context.Context, spec domain.GenerateSpec) (*domain.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()
	if err := validate(spec); err != nil {
		return nil, err
	}
	seed := spec.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	n := spec.Size
	values := make([][]int, n)
	solution := make([][]bool, n)
	for r := 0; r < n; r++ {
		values[r] = make([]int, n)
		solution[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			values[r][c] = spec.MinValue + rng.Intn(spec.MaxValue-spec.MinValue+1)
			solution[r][c] = rng.Float64() < spec.InclusionProbability
		}
	}

	rowTargets := make([]int, n)
	colTargets := make([]int, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if solution[r][c] {
				rowTargets[r] += values[r][c]
				colTargets[c] += values[r][c]
			}
		}
	}

	return &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Size:       n,
		Values:     values,
		Solution:   solution,
		RowTargets: rowTargets,
		ColTargets: colTargets,
		CreatedAt:  time.Now().UnixNano(),
	}, nil
}

func validate(spec domain.GenerateSpec) error {
	if spec.Size < 1 {
		return fmt.Errorf("grid size must be at least 1, got %d", spec.Size)
	}
	if spec.MinValue < 1 || spec.MaxValue < spec.MinValue {
		return fmt.Errorf("invalid value range [%d,%d]", spec.MinValue, spec.MaxValue)
	}
	if spec.InclusionProbability <= 0 || spec.InclusionProbability > 1 {
		return fmt.Errorf("inclusion probability must be in (0,1], got %v", spec.InclusionProbability)
	}
	return nil
}
