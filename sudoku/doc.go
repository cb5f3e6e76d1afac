// Package sudoku models the classic 9×9 board and solves it through
// the dlx exact-cover engine.
//
// What:
//
//   - Board: immutable-by-convention 9×9 grid; constructors validate,
//     accessors copy out, and solving never mutates its input.
//   - Solve: maps every legal (cell, digit) placement for the blank
//     cells onto a dlx row with four constraint labels, runs the
//     search, and writes the chosen digits into a clone of the input.
//   - Unique: counts solutions up to two and reports whether exactly
//     one exists.
//   - Validate: reports duplicated givens per row, column and box.
//
// Why:
//
//   - A placement (r,c,v) satisfies four constraints at once: cell
//     occupancy, digit-in-row, digit-in-column and digit-in-box. That
//     makes sudoku a textbook exact-cover instance, and the label
//     vocabulary here (cell:R:C, row:R:V, col:C:V, box:B:V) keeps the
//     mapping readable and deterministically ordered.
//   - Only placements that are legal against the givens become rows,
//     so the constraint universe stays proportional to the blanks.
//
// Errors:
//
//   - ErrNilBoard, ErrBadDimensions, ErrBadValue  rejected at the boundary
//   - ErrBadFormat                                Parse input malformed
//   - ErrNoSolution, ErrStepLimit                 surfaced from the engine
//   - context.Canceled / DeadlineExceeded         via WithContext
//
// Solving is synchronous and single-threaded; each call builds its own
// matrix, owns it for the duration, and discards it. Boards themselves
// are safe to share between goroutines as long as nobody writes.
package sudoku
