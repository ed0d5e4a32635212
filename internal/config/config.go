// Package config loads the optional config.yaml and validates it. Flags
// override file values; the file overrides built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"svw.info/sumplete/internal/domain"
)

type Config struct {
	LogLevel string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	DataDir  string `yaml:"dataDir" validate:"required"`

	Puzzle domain.GenerateSpec `yaml:"puzzle" validate:"required"`

	Solver SolverConfig `yaml:"solver"`

	Server ServerConfig `yaml:"server"`
}

type SolverConfig struct {
	Name  string `yaml:"name" validate:"omitempty,oneof=backtracking backtracking-mrv backtracking-lcv hill-climbing annealing genetic"`
	Games int    `yaml:"games" validate:"gte=1"`
	Seed  int64  `yaml:"seed"`

	Annealing AnnealingConfig `yaml:"annealing"`
	Genetic   GeneticConfig   `yaml:"genetic"`
}

type AnnealingConfig struct {
	InitialTemperature float64 `yaml:"initialTemperature" validate:"gt=0"`
	CoolingRate        float64 `yaml:"coolingRate" validate:"gt=0,lt=1"`
	MaxIterations      int     `yaml:"maxIterations" validate:"gte=1"`
}

type GeneticConfig struct {
	PopulationSize int `yaml:"populationSize" validate:"gte=2"`
	Generations    int `yaml:"generations" validate:"gte=1"`
	EliteSize      int `yaml:"eliteSize" validate:"gte=0,ltefield=PopulationSize"`
	TournamentSize int `yaml:"tournamentSize" validate:"gte=1,ltefield=PopulationSize"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		DataDir:  "./data",
		Puzzle:   domain.GenerateSpec{}.WithDefaults(),
		Solver: SolverConfig{
			Name:  "backtracking-lcv",
			Games: 1,
			Annealing: AnnealingConfig{
				InitialTemperature: 100.0,
				CoolingRate:        0.99,
				MaxIterations:      1000,
			},
			Genetic: GeneticConfig{
				PopulationSize: 50,
				Generations:    100,
				EliteSize:      10,
				TournamentSize: 25,
			},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// present but invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate runs struct-tag validation over the whole tree.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
