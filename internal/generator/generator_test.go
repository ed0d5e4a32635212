package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sumplete/internal/domain"
)

func TestTargetsDerivedFromHiddenAssignment(t *testing.T) {
	gen := New()
	for _, seed := range []int64{1, 42, 12345} {
		for _, size := range []int{1, 2, 4, 7} {
			p, err := gen.Generate(context.Background(), domain.GenerateSpec{Size: size, Seed: seed})
			require.NoError(t, err)
			require.Equal(t, size, p.Size)

			for r := 0; r < size; r++ {
				sum := 0
				for c := 0; c < size; c++ {
					if p.Solution[r][c] {
						sum += p.Values[r][c]
					}
				}
				assert.Equal(t, p.RowTargets[r], sum, "row %d seed %d size %d", r, seed, size)
			}
			for c := 0; c < size; c++ {
				sum := 0
				for r := 0; r < size; r++ {
					if p.Solution[r][c] {
						sum += p.Values[r][c]
					}
				}
				assert.Equal(t, p.ColTargets[c], sum, "col %d seed %d size %d", c, seed, size)
			}
		}
	}
}

func TestHiddenAssignmentIsAlwaysAWitness(t *testing.T) {
	gen := New()
	p, err := gen.Generate(context.Background(), domain.GenerateSpec{Size: 5, Seed: 99})
	require.NoError(t, err)

	g, err := domain.NewGrid(p)
	require.NoError(t, err)
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			st := domain.Excluded
			if p.Solution[r][c] {
				st = domain.Included
			}
			require.NoError(t, g.SetState(r, c, st))
		}
	}
	assert.True(t, g.IsSolved())
}

func TestValuesStayInRange(t *testing.T) {
	gen := New()
	p, err := gen.Generate(context.Background(), domain.GenerateSpec{
		Size: 6, MinValue: 3, MaxValue: 5, InclusionProbability: 0.5, Seed: 7,
	})
	require.NoError(t, err)
	for r := range p.Values {
		for _, v := range p.Values[r] {
			assert.GreaterOrEqual(t, v, 3)
			assert.LessOrEqual(t, v, 5)
		}
	}
}

func TestSameSeedSamePuzzle(t *testing.T) {
	gen := New()
	spec := domain.GenerateSpec{Size: 4, Seed: 2024}
	a, err := gen.Generate(context.Background(), spec)
	require.NoError(t, err)
	b, err := gen.Generate(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, a.RowTargets, b.RowTargets)
	assert.NotEqual(t, a.ID, b.ID, "each generation is a distinct puzzle")
}

func TestGenerateRejectsBadSpecs(t *testing.T) {
	gen := New()
	cases := []struct {
		name string
		spec domain.GenerateSpec
	}{
		{"negative size", domain.GenerateSpec{Size: -1}},
		{"inverted range", domain.GenerateSpec{Size: 3, MinValue: 9, MaxValue: 2}},
		{"probability above one", domain.GenerateSpec{Size: 3, InclusionProbability: 1.5}},
		{"negative probability", domain.GenerateSpec{Size: 3, InclusionProbability: -0.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gen.Generate(context.Background(), tc.spec)
			assert.Error(t, err)
		})
	}
}

func TestDefaultsApplied(t *testing.T) {
	gen := New()
	p, err := gen.Generate(context.Background(), domain.GenerateSpec{Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSize, p.Size)
	for r := range p.Values {
		for _, v := range p.Values[r] {
			assert.GreaterOrEqual(t, v, domain.DefaultMinValue)
			assert.LessOrEqual(t, v, domain.DefaultMaxValue)
		}
	}
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, int64(5), p.Seed)
}
