package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/generator"
	"svw.info/sumplete/internal/infrastructure/storage"
	"svw.info/sumplete/internal/tui"
)

var generateName string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle and store it",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := generator.New()
		p, err := gen.Generate(cmd.Context(), cfg.Puzzle)
		if err != nil {
			return err
		}
		p.Name = generateName
		st := storage.NewFS(cfg.DataDir)
		if err := st.Save(cmd.Context(), p); err != nil {
			return err
		}
		grid, err := domain.NewGrid(p)
		if err != nil {
			return err
		}
		fmt.Println(tui.RenderGrid(grid, nil))
		fmt.Printf("saved puzzle %s (seed %d)\n", p.ID, p.Seed)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateName, "name", "", "optional puzzle name")
}
