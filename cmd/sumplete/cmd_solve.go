package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/generator"
	"svw.info/sumplete/internal/infrastructure/storage"
	"svw.info/sumplete/internal/ports"
	"svw.info/sumplete/internal/solver"
	"svw.info/sumplete/internal/tui"
	"svw.info/sumplete/internal/usecase"
)

var (
	solveSolver string
	solveGames  int
	solveShow   bool
	solveID     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run an automated solver against generated or stored puzzles",
	Long: `Solve runs one solver against freshly generated puzzles, or against a
stored puzzle given --puzzle. Available solvers: ` + strings.Join(solver.Names(), ", ") + `.
Stochastic solvers stop at their iteration budget and may not solve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := solveSolver
		if name == "" {
			name = cfg.Solver.Name
		}
		strat, err := buildStrategy(name)
		if err != nil {
			return err
		}
		if solveID != "" {
			return solveStored(cmd, strat)
		}

		games := solveGames
		if games == 0 {
			games = cfg.Solver.Games
		}
		session := &usecase.Session{
			Strategy:  strat,
			Generator: generator.New(),
			Games:     games,
			Logger:    slog.Default(),
		}
		reports, err := session.Run(cmd.Context(), cfg.Puzzle)
		if err != nil {
			return err
		}
		solved := 0
		for _, r := range reports {
			if r.Solved {
				solved++
			}
		}
		fmt.Printf("%s: %d/%d solved\n", strat.Name(), solved, len(reports))
		return nil
	},
}

func solveStored(cmd *cobra.Command, strat ports.Strategy) error {
	st := storage.NewFS(cfg.DataDir)
	p, err := st.Load(cmd.Context(), solveID)
	if err != nil {
		return fmt.Errorf("load puzzle %s: %w", solveID, err)
	}
	grid, err := domain.NewGrid(p)
	if err != nil {
		return err
	}
	res, err := usecase.SolveGrid(cmd.Context(), strat, grid)
	if err != nil && !errors.Is(err, solver.ErrBudgetExhausted) && !errors.Is(err, solver.ErrNoSolution) {
		return err
	}
	status := "not solved"
	if res.Solved {
		status = "solved"
	}
	if solveShow {
		fmt.Println(tui.RenderGrid(grid, nil))
	}
	fmt.Printf("puzzle %s: %s, %d moves, %v\n",
		p.ID, status, res.Moves, res.Duration.Round(time.Microsecond))
	return nil
}

func init() {
	solveCmd.Flags().StringVar(&solveSolver, "solver", "", "solver to use (default from config)")
	solveCmd.Flags().IntVar(&solveGames, "games", 0, "number of games to solve")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "print the final grid when solving a stored puzzle")
	solveCmd.Flags().StringVar(&solveID, "puzzle", "", "solve a stored puzzle by id")
}
