package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exactcover/generator"
)

// newGenerateCommand emits freshly carved puzzles, one 81-cell line
// each, prefixed by a comment line with identity and provenance.
func newGenerateCommand() *cobra.Command {
	var (
		difficulty string
		seed       int64
		count      int
		solution   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles with a unique solution",
		Long: `Generate fills a random board and carves givens away while the
puzzle keeps exactly one completion. Each puzzle is printed as a
comment line (id, difficulty, clues, seed) followed by the givens in
the 81-cell form; --solution appends the completed grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := generator.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				opts := []generator.Option{
					generator.WithDifficulty(d),
					generator.WithContext(cmd.Context()),
				}
				if seed != 0 {
					opts = append(opts, generator.WithSeed(seed+int64(i)))
				}

				p, st, err := generator.Generate(opts...)
				if err != nil {
					return err
				}
				log.WithFields(logrus.Fields{
					"id":       p.ID,
					"seed":     p.Seed,
					"clues":    p.Clues,
					"steps":    st.Steps,
					"duration": st.Duration,
				}).Debug("generated")

				fmt.Fprintf(cmd.OutOrStdout(), "# %s %s clues=%d seed=%d\n",
					p.ID, p.Difficulty, p.Clues, p.Seed)
				fmt.Fprintln(cmd.OutOrStdout(), p.Givens.Flat())
				if solution {
					fmt.Fprintln(cmd.OutOrStdout(), p.Solution.Flat())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", generator.Medium.String(), "easy, medium, hard or expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fix the random seed; batch items use seed, seed+1, ... (0 derives from the clock)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many puzzles to emit")
	cmd.Flags().BoolVar(&solution, "solution", false, "also print each completed grid")

	return cmd
}
