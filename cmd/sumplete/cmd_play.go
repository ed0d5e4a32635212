package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/generator"
	"svw.info/sumplete/internal/hint"
	"svw.info/sumplete/internal/infrastructure/storage"
	"svw.info/sumplete/internal/tui"
)

var playID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := generator.New()

		var p *domain.Puzzle
		var err error
		if playID != "" {
			st := storage.NewFS(cfg.DataDir)
			p, err = st.Load(cmd.Context(), playID)
			if err != nil {
				return fmt.Errorf("load puzzle %s: %w", playID, err)
			}
		} else {
			p, err = gen.Generate(cmd.Context(), cfg.Puzzle)
			if err != nil {
				return err
			}
		}

		model, err := tui.NewModel(p, gen, hint.NewSingles(), cfg.Puzzle)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(model).Run()
		return err
	},
}

func init() {
	playCmd.Flags().StringVar(&playID, "puzzle", "", "play a stored puzzle by id")
}
