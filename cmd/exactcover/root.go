package main

import (
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

// newRootCommand wires the command tree and the flags shared by every
// subcommand.
func newRootCommand() *cobra.Command {
	var (
		verbose    bool
		cpuprofile bool
		prof       interface{ Stop() }
	)

	root := &cobra.Command{
		Use:   "exactcover",
		Short: "Solve and generate sudoku puzzles with Dancing Links",
		Long: `exactcover maps sudoku onto the exact-cover problem and searches it
with Knuth's Dancing Links. Puzzles are read and written in an 81-cell
text form: digits are givens, '0', '.' or '_' are blanks, and anything
else (spaces, newlines, grid rules) is ignored.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if cpuprofile {
				prof = profile.Start(profile.ProfilePath("."))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&cpuprofile, "cpuprofile", false, "write cpu.pprof to the working directory")

	root.AddCommand(newSolveCommand())
	root.AddCommand(newGenerateCommand())

	return root
}
