package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sumplete/internal/domain"
)

func testGrid(t *testing.T) *domain.Grid {
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

func TestRenderGridShowsValuesAndTargets(t *testing.T) {
	g := testGrid(t)
	out := RenderGrid(g, nil)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "3")
	assert.Contains(t, lines[0], "5")
	assert.Contains(t, lines[1], "2")
	assert.Contains(t, lines[2], "4")
}

func TestRenderGridMarksStates(t *testing.T) {
	g := testGrid(t)
	require.NoError(t, g.SetState(0, 0, domain.Included))
	require.NoError(t, g.SetState(0, 1, domain.Excluded))

	out := RenderGrid(g, nil)
	assert.Contains(t, out, "○3")
	assert.Contains(t, out, "✗5")
	assert.NotContains(t, out, "○5")
}
