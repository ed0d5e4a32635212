package main

import (
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sumplete/internal/config"
	"svw.info/sumplete/internal/ports"
	"svw.info/sumplete/internal/solver"
)

var (
	cfg        config.Config
	configPath string
	logLevel   string

	// generation flags, applied over the config file
	gridSize             int
	minValue             int
	maxValue             int
	inclusionProbability float64
	seed                 int64

	rootCmd = &cobra.Command{
		Use:   "sumplete",
		Short: "Generate, play, and auto-solve Sumplete puzzles",
		Long: `Sumplete is an additive constraint puzzle: mark every cell of a grid
included or excluded so each row and column of included values matches
its target sum. This tool generates puzzles and solves them with
backtracking or stochastic local search.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			setupLogging(cfg.LogLevel)
			applyGenerationFlags(cmd)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	rootCmd.PersistentFlags().IntVar(&gridSize, "size", 0, "grid size N for an NxN puzzle")
	rootCmd.PersistentFlags().IntVar(&minValue, "min-value", 0, "smallest cell value")
	rootCmd.PersistentFlags().IntVar(&maxValue, "max-value", 0, "largest cell value")
	rootCmd.PersistentFlags().Float64Var(&inclusionProbability, "inclusion-probability", 0, "chance a cell is in the hidden solution")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "rng seed (0 = random)")

	rootCmd.AddCommand(generateCmd, solveCmd, playCmd, serveCmd)
}

func setupLogging(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

func applyGenerationFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("size") {
		cfg.Puzzle.Size = gridSize
	}
	if cmd.Flags().Changed("min-value") {
		cfg.Puzzle.MinValue = minValue
	}
	if cmd.Flags().Changed("max-value") {
		cfg.Puzzle.MaxValue = maxValue
	}
	if cmd.Flags().Changed("inclusion-probability") {
		cfg.Puzzle.InclusionProbability = inclusionProbability
	}
	if cmd.Flags().Changed("seed") {
		cfg.Puzzle.Seed = seed
	}
}

// buildStrategy constructs the named solver with the config's tuning
// parameters applied.
func buildStrategy(name string) (ports.Strategy, error) {
	rngSeed := cfg.Solver.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	strat, err := solver.New(name, rng)
	if err != nil {
		return nil, err
	}
	switch s := strat.(type) {
	case *solver.Annealing:
		s.InitialTemperature = cfg.Solver.Annealing.InitialTemperature
		s.CoolingRate = cfg.Solver.Annealing.CoolingRate
		s.MaxIterations = cfg.Solver.Annealing.MaxIterations
	case *solver.Genetic:
		s.PopulationSize = cfg.Solver.Genetic.PopulationSize
		s.Generations = cfg.Solver.Genetic.Generations
		s.EliteSize = cfg.Solver.Genetic.EliteSize
		s.TournamentSize = cfg.Solver.Genetic.TournamentSize
	}
	return strat, nil
}
