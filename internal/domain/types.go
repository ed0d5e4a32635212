package domain

// Puzzle is a generated Sumplete instance as persisted and transported.
// Solution is the hidden generator assignment the targets were derived
// from; it is kept here, away from Grid, so no solver can consult it.
type Puzzle struct {
	ID         string   `json:"id,omitempty"`
	Seed       int64    `json:"seed,omitempty"`
	Size       int      `json:"size"`
	Values     [][]int  `json:"values"`
	Solution   [][]bool `json:"solution,omitempty"`
	RowTargets []int    `json:"rowTargets"`
	ColTargets []int    `json:"colTargets"`
	CreatedAt  int64    `json:"createdAt,omitempty"`
	Name       string   `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GenerateSpec configures puzzle generation. Zero fields take the
// reference defaults via WithDefaults.
type GenerateSpec struct {
	Size                 int     `json:"size" yaml:"size" validate:"gte=1"`
	MinValue             int     `json:"minValue,omitempty" yaml:"minValue" validate:"gte=1"`
	MaxValue             int     `json:"maxValue,omitempty" yaml:"maxValue" validate:"gtefield=MinValue"`
	InclusionProbability float64 `json:"inclusionProbability,omitempty" yaml:"inclusionProbability" validate:"gt=0,lte=1"`
	Seed                 int64   `json:"seed,omitempty" yaml:"-"`
}

// Reference defaults from the original game: 4x4 grid, values 1..9,
// 60% of cells in the hidden solution.
const (
	DefaultSize                 = 4
	DefaultMinValue             = 1
	DefaultMaxValue             = 9
	DefaultInclusionProbability = 0.6
)

// WithDefaults fills unset fields with the reference defaults.
func (s GenerateSpec) WithDefaults() GenerateSpec {
	if s.Size == 0 {
		s.Size = DefaultSize
	}
	if s.MinValue == 0 {
		s.MinValue = DefaultMinValue
	}
	if s.MaxValue == 0 {
		s.MaxValue = DefaultMaxValue
	}
	if s.InclusionProbability == 0 {
		s.InclusionProbability = DefaultInclusionProbability
	}
	return s
}

// Hint suggests states for cells forced by the current sums.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	State   CellState   `json:"state"`
}
