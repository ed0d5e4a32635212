package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture is the reference 2x2 puzzle: values [[3,5],[2,4]] with hidden
// flags [[T,F],[F,T]], giving targets rows [3,4] and cols [3,4].
func fixture() *Puzzle {
	return &Puzzle{
		Size:       2,
		Values:     [][]int{{3, 5}, {2, 4}},
		Solution:   [][]bool{{true, false}, {false, true}},
		RowTargets: []int{3, 4},
		ColTargets: []int{3, 4},
	}
}

func TestNewGridValidation(t *testing.T) {
	cases := []struct {
		name string
		p    *Puzzle
	}{
		{"nil", nil},
		{"zero size", &Puzzle{Size: 0}},
		{"shape mismatch", &Puzzle{Size: 2, Values: [][]int{{1}}, RowTargets: []int{1, 2}, ColTargets: []int{1, 2}}},
		{"ragged row", &Puzzle{Size: 2, Values: [][]int{{1, 2}, {3}}, RowTargets: []int{1, 2}, ColTargets: []int{1, 2}}},
		{"non-positive value", &Puzzle{Size: 1, Values: [][]int{{0}}, RowTargets: []int{0}, ColTargets: []int{0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.p)
			assert.Error(t, err)
		})
	}
}

func TestSetStateOutOfBounds(t *testing.T) {
	g, err := NewGrid(fixture())
	require.NoError(t, err)

	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		err := g.SetState(coord[0], coord[1], Included)
		assert.ErrorIs(t, err, ErrOutOfBounds, "coord %v", coord)
	}
	_, err = g.RowSum(2, Is(Included))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.ColSum(-1, Is(Included))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestHiddenSolutionSolves(t *testing.T) {
	p := fixture()
	g, err := NewGrid(p)
	require.NoError(t, err)

	assert.False(t, g.IsSolved())
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			st := Excluded
			if p.Solution[r][c] {
				st = Included
			}
			require.NoError(t, g.SetState(r, c, st))
		}
	}
	assert.True(t, g.IsFullyDetermined())
	assert.True(t, g.IsSolved())
}

func TestIsSolvedIsPure(t *testing.T) {
	p := fixture()
	g, err := NewGrid(p)
	require.NoError(t, err)
	require.NoError(t, g.SetState(0, 0, Included))

	before := g.States()
	first := g.IsSolved()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.IsSolved())
	}
	assert.Equal(t, before, g.States())
}

func TestToggleTwiceRestores(t *testing.T) {
	g, err := NewGrid(fixture())
	require.NoError(t, err)
	require.NoError(t, g.SetState(0, 0, Included))

	sumBefore, _ := g.RowSum(0, Is(Included))
	require.NoError(t, g.Toggle(0, 0))
	require.NoError(t, g.Toggle(0, 0))

	st, _ := g.State(0, 0)
	assert.Equal(t, Included, st)
	sumAfter, _ := g.RowSum(0, Is(Included))
	assert.Equal(t, sumBefore, sumAfter)
}

func TestToggleNeverReturnsToUndetermined(t *testing.T) {
	g, err := NewGrid(fixture())
	require.NoError(t, err)

	require.NoError(t, g.Toggle(0, 0)) // undetermined -> included
	st, _ := g.State(0, 0)
	assert.Equal(t, Included, st)
	require.NoError(t, g.Toggle(0, 0))
	st, _ = g.State(0, 0)
	assert.Equal(t, Excluded, st)
	require.NoError(t, g.Toggle(0, 0))
	st, _ = g.State(0, 0)
	assert.Equal(t, Included, st)
}

func TestObserverNotifiedOnEveryChange(t *testing.T) {
	g, err := NewGrid(fixture())
	require.NoError(t, err)

	var events []StateChange
	g.Subscribe(func(ev StateChange) { events = append(events, ev) })

	require.NoError(t, g.SetState(1, 0, Included))
	require.NoError(t, g.Toggle(1, 0))
	// setting the same state again is not a change
	require.NoError(t, g.SetState(1, 0, Excluded))

	require.Len(t, events, 2)
	assert.Equal(t, StateChange{Row: 1, Col: 0, Old: Undetermined, New: Included}, events[0])
	assert.Equal(t, StateChange{Row: 1, Col: 0, Old: Included, New: Excluded}, events[1])
}

func TestRowSumByPredicate(t *testing.T) {
	g, err := NewGrid(fixture())
	require.NoError(t, err)
	require.NoError(t, g.SetState(0, 0, Included))
	require.NoError(t, g.SetState(0, 1, Excluded))

	inc, err := g.RowSum(0, Is(Included))
	require.NoError(t, err)
	assert.Equal(t, 3, inc)
	exc, err := g.RowSum(0, Is(Excluded))
	require.NoError(t, err)
	assert.Equal(t, 5, exc)
	und, err := g.ColSum(0, Is(Undetermined))
	require.NoError(t, err)
	assert.Equal(t, 2, und)
}
