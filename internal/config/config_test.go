package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "backtracking-lcv", cfg.Solver.Name)
	assert.Equal(t, 4, cfg.Puzzle.Size)
	assert.Equal(t, 0.6, cfg.Puzzle.InclusionProbability)
	assert.Equal(t, 100.0, cfg.Solver.Annealing.InitialTemperature)
	assert.Equal(t, 50, cfg.Solver.Genetic.PopulationSize)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
logLevel: debug
dataDir: /tmp/puzzles
puzzle:
  size: 6
solver:
  name: annealing
  games: 10
  annealing:
    maxIterations: 5000
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/puzzles", cfg.DataDir)
	assert.Equal(t, 6, cfg.Puzzle.Size)
	assert.Equal(t, "annealing", cfg.Solver.Name)
	assert.Equal(t, 10, cfg.Solver.Games)
	assert.Equal(t, 5000, cfg.Solver.Annealing.MaxIterations)
	// Untouched sections keep their defaults.
	assert.Equal(t, 0.99, cfg.Solver.Annealing.CoolingRate)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad log level", "logLevel: loud"},
		{"unknown solver", "solver:\n  name: oracle"},
		{"negative games", "solver:\n  games: -1"},
		{"cooling rate above one", "solver:\n  annealing:\n    coolingRate: 1.5"},
		{"tournament larger than population", "solver:\n  genetic:\n    populationSize: 10\n    tournamentSize: 20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: [not a map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
