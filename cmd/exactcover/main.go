// Command exactcover solves and generates sudoku puzzles on top of the
// Dancing Links engine.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
