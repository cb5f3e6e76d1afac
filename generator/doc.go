// Package generator produces sudoku puzzles with a single completion,
// graded by clue count.
//
// What:
//
//   - Generate: fills an empty board with randomized backtracking,
//     then carves givens away in random order, keeping a removal only
//     if the puzzle still has exactly one solution (checked through
//     sudoku.Unique), until the difficulty's clue target is reached.
//   - Difficulty: Easy, Medium, Hard, Expert map to 40, 34, 28 and 24
//     target clues; carving never goes below 17, the known minimum for
//     a unique puzzle.
//   - Puzzle: the carved givens, the full solution, the seed that
//     produced them and a uuid identity.
//
// Why:
//
//   - Carving against a uniqueness probe is what makes the output a
//     proper puzzle rather than a grid with holes; the probe rides the
//     same exact-cover engine as the solver, so generation doubles as
//     a workout for it.
//
// Board content is a pure function of the seed; only the uuid differs
// between runs. Fewer clues means a harder search for a human, not a
// harder generation: most of the cost is the uniqueness probes.
//
// Errors:
//
//   - ErrBadDifficulty                     unknown difficulty name
//   - context.Canceled / DeadlineExceeded  via WithContext, between probes
package generator
