package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exactcover/sudoku"
)

// newSolveCommand reads one puzzle from an argument, a file or stdin,
// solves it and prints the completed grid.
func newSolveCommand() *cobra.Command {
	var (
		file     string
		timeout  time.Duration
		maxSteps int
		stats    bool
	)

	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve one puzzle",
		Long: `Solve reads a puzzle in the 81-cell text form from the argument,
from --file, or from stdin, and prints the completed grid. Inconsistent
givens and unsolvable puzzles are reported as errors, not partial
boards.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPuzzle(cmd, args, file)
			if err != nil {
				return err
			}
			board, err := sudoku.Parse(text)
			if err != nil {
				return err
			}
			if ok, conflicts := sudoku.Validate(board); !ok {
				return fmt.Errorf("conflicting givens at %v", conflicts)
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			opts := []sudoku.Option{sudoku.WithContext(ctx)}
			if maxSteps > 0 {
				opts = append(opts, sudoku.WithStepLimit(maxSteps))
			}

			log.WithFields(logrus.Fields{"blanks": board.Blanks()}).Debug("solving")
			solved, st, err := sudoku.Solve(board, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), solved)
			if stats {
				log.WithFields(logrus.Fields{
					"steps":    st.Steps,
					"duration": st.Duration,
				}).Info("solved")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the puzzle from this file")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort after visiting this many candidate placements")
	cmd.Flags().BoolVar(&stats, "stats", false, "log step count and timing")

	return cmd
}

// readPuzzle picks the input source: argument, file, then stdin.
func readPuzzle(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) == 1 && file != "":
		return "", errors.New("puzzle given both as argument and as --file")
	case len(args) == 1:
		return args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}

		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}

		return string(data), nil
	}
}
