package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sumplete/internal/domain"
)

func newGrid(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(&domain.Puzzle{
		Size:       2,
		Values:     [][]int{{3, 5}, {2, 4}},
		RowTargets: []int{3, 4},
		ColTargets: []int{3, 4},
	})
	require.NoError(t, err)
	return g
}

func TestHintForcedExclusion(t *testing.T) {
	g := newGrid(t)
	// row 0 already meets its target: 3
	require.NoError(t, g.SetState(0, 0, domain.Included))

	h, ok := NewSingles().Hint(g)
	require.True(t, ok)
	assert.Equal(t, domain.Excluded, h.State)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 1}}, h.Cells)
}

func TestHintForcedInclusion(t *testing.T) {
	g := newGrid(t)
	// row 0 and column 0 settled; row 1 needs 4 and only the 4 remains
	require.NoError(t, g.SetState(0, 0, domain.Included))
	require.NoError(t, g.SetState(0, 1, domain.Excluded))
	require.NoError(t, g.SetState(1, 0, domain.Excluded))

	h, ok := NewSingles().Hint(g)
	require.True(t, ok)
	assert.Equal(t, domain.Included, h.State)
	assert.Equal(t, []domain.CellCoord{{Row: 1, Col: 1}}, h.Cells)
}

func TestNoHintOnFreshAmbiguousGrid(t *testing.T) {
	g, err := domain.NewGrid(&domain.Puzzle{
		Size:       2,
		Values:     [][]int{{2, 2}, {2, 2}},
		RowTargets: []int{2, 2},
		ColTargets: []int{2, 2},
	})
	require.NoError(t, err)

	_, ok := NewSingles().Hint(g)
	assert.False(t, ok)
}

func TestNoHintOnCompletedGrid(t *testing.T) {
	g := newGrid(t)
	require.NoError(t, g.SetState(0, 0, domain.Included))
	require.NoError(t, g.SetState(0, 1, domain.Excluded))
	require.NoError(t, g.SetState(1, 0, domain.Excluded))
	require.NoError(t, g.SetState(1, 1, domain.Included))

	_, ok := NewSingles().Hint(g)
	assert.False(t, ok)
}
