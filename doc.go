// Package exactcover solves exact-cover problems with Knuth's Dancing
// Links and ships a complete sudoku toolchain built on top of it.
//
// 🚀 What is exactcover?
//
//	A small, deterministic solver stack in three layers:
//		• dlx/       — the engine: sparse circular matrix, cover/uncover,
//		               Algorithm X with the min-count column heuristic
//		• sudoku/    — the front end: 9×9 boards, parsing, solving,
//		               uniqueness checks and conflict reporting
//		• generator/ — puzzles by difficulty, carved against a
//		               uniqueness probe, reproducible from a seed
//
// ✨ Why choose exactcover?
//
//   - Deterministic – identical inputs walk identical branches, step
//     counts included; seeds pin generated content
//   - Honest failure – no solution, step budgets and cancellation are
//     ordinary return values, never partial boards
//   - Inspectable – matrices verify their own link invariants, solves
//     report how much work they did
//
// Layout:
//
//	dlx/            — generalized exact-cover engine
//	sudoku/         — board model and solver front end
//	generator/      — unique-solution puzzle generation
//	cmd/exactcover/ — batch CLI over the three packages
//	examples/       — runnable end-to-end scenarios
//
// Quick taste, the whole pipeline in three calls:
//
//	b, _ := sudoku.Parse("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
//	solved, stats, _ := sudoku.Solve(b)
//	fmt.Println(solved, stats.Steps)
//
//	go get github.com/katalvlaran/exactcover
package exactcover
