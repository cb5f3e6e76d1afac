// Package dlx solves generalized exact-cover problems with Knuth's
// Dancing Links technique (Algorithm X on a sparse, circularly linked
// boolean matrix).
//
// What:
//
//   - Builder: collects candidate rows, each an ordered tuple of
//     constraint labels, and links them into a Matrix.
//   - Matrix: the sparse 0/1 matrix. Nodes live in a single flat arena
//     and reference their four neighbors (row ring, column ring) by
//     index, so the structure has no pointer cycles and cover/uncover
//     stay O(1) per unlink.
//   - Solve: depth-first search with exact backtracking. Columns are
//     chosen by the fewest-live-rows heuristic; covering a column hides
//     it and every row that would conflict with satisfying it, and
//     uncovering restores the links in exactly reverse order.
//
// Why:
//
//   - Exact cover is the natural formulation for tiling, pairing and
//     placement puzzles: pick a subset of rows so that every column is
//     covered exactly once.
//   - The sibling sudoku package maps digit placements onto rows with
//     four labels each; any other client can do the same with its own
//     label vocabulary.
//
// Key Types:
//
//   - Builder, Matrix
//   - Option: functional options for Solve (context, step budget,
//     solution limit)
//   - Result: solutions as row-index slices, plus the visited-row count
//
// Determinism:
//
//   - Column headers are created in lexicographic label order and rows
//     keep insertion order, so repeated solves of the same input walk
//     the identical branch sequence.
//
// Complexity:
//
//   - Build:   O(R·L + C log C) time, O(R·L + C) memory
//     (R rows, L labels per row, C distinct columns)
//   - Solve:   exponential in the worst case; the min-count column
//     heuristic keeps the branching factor small on puzzle instances.
//
// Errors:
//
//   - ErrEmptyRow, ErrDuplicateLabel  rejected at AddRow
//   - ErrNilMatrix                    Solve received a nil matrix
//   - ErrNoSolution                   search exhausted every branch
//   - ErrStepLimit                    step budget exceeded
//   - context.Canceled / DeadlineExceeded when cancelled via WithContext
//
// A Matrix is built for one Solve call and owned by it: searches mutate
// the links in place, and nothing here is safe for concurrent use.
package dlx
