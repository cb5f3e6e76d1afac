// SPDX-License-Identifier: MIT
// Package sudoku — exact-cover front end.
//
// A placement of digit v at blank cell (r,c) becomes one dlx row with
// four labels: cell:R:C, row:R:V, col:C:V and box:B:V. Covering all
// labels exactly once is precisely a valid completion of the board.
package sudoku

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/exactcover/dlx"
)

// placement is one candidate digit assignment for a blank cell.
type placement struct {
	r, c int
	v    uint8
}

// candidates lists every placement that is legal against the givens:
// a digit absent from the cell's row, column and box. Cells are walked
// row-major and digits ascending, so the order is deterministic. A
// full board yields no placements.
//
// Complexity: O(81·9) time, O(blanks·9) memory worst case.
func candidates(b *Board) []placement {
	// 1) One used-digit bitmask per house.
	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.cells[r][c]; v != 0 {
				bit := uint16(1) << v
				rows[r] |= bit
				cols[c] |= bit
				boxes[boxOf(r, c)] |= bit
			}
		}
	}

	// 2) Enumerate the legal digits for each blank cell.
	var out []placement
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.cells[r][c] != 0 {
				continue
			}
			used := rows[r] | cols[c] | boxes[boxOf(r, c)]
			for v := uint8(1); v <= 9; v++ {
				if used&(uint16(1)<<v) == 0 {
					out = append(out, placement{r: r, c: c, v: v})
				}
			}
		}
	}

	return out
}

// buildMatrix links the placements into an exact-cover matrix. Row i
// of the matrix corresponds to ps[i]; the constraint universe is
// exactly the labels these placements mention, nothing is declared up
// front.
func buildMatrix(ps []placement) (*dlx.Matrix, error) {
	bld := dlx.NewBuilder()
	for _, p := range ps {
		if _, err := bld.AddRow(
			fmt.Sprintf("cell:%d:%d", p.r, p.c),
			fmt.Sprintf("row:%d:%d", p.r, p.v),
			fmt.Sprintf("col:%d:%d", p.c, p.v),
			fmt.Sprintf("box:%d:%d", boxOf(p.r, p.c), p.v),
		); err != nil {
			return nil, err
		}
	}

	return bld.Build(), nil
}

// Solve completes the board and returns the solved copy. The input is
// never mutated; givens are carried into the result untouched. With no
// blanks the board is already an exact cover and comes back as a plain
// clone.
//
// Returns ErrNoSolution when the givens admit no completion,
// ErrStepLimit when the WithStepLimit budget runs out, or the context
// error when cancelled; Stats is meaningful in every case.
//
// Complexity: exponential worst case; the engine's min-count column
// heuristic solves ordinary puzzles in well under 10^4 steps.
func Solve(b *Board, opts ...Option) (*Board, Stats, error) {
	start := time.Now()
	if b == nil {
		return nil, Stats{}, ErrNilBoard
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	ps := candidates(b)
	m, err := buildMatrix(ps)
	if err != nil {
		return nil, Stats{Duration: time.Since(start)}, err
	}

	res, err := dlx.Solve(m,
		dlx.WithContext(o.Ctx),
		dlx.WithMaxSteps(o.StepLimit),
	)
	stats := Stats{Duration: time.Since(start)}
	if res != nil {
		stats.Steps = res.Steps
	}
	if err != nil {
		return nil, stats, err
	}

	// Reconstruction: write each chosen placement into a clone.
	out := b.Clone()
	for _, ri := range res.Solutions[0] {
		p := ps[ri]
		out.cells[p.r][p.c] = p.v
	}

	return out, stats, nil
}

// Unique reports whether the board has exactly one completion. The
// engine is asked for up to two solutions and stops as soon as the
// second is found, so "false" for ambiguous boards costs little more
// than one solve. An unsolvable board is simply not unique: (false,
// stats, nil), not an error.
//
// Consistency of the givens themselves is not checked here; see
// Validate for that.
func Unique(b *Board, opts ...Option) (bool, Stats, error) {
	start := time.Now()
	if b == nil {
		return false, Stats{}, ErrNilBoard
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	ps := candidates(b)
	m, err := buildMatrix(ps)
	if err != nil {
		return false, Stats{Duration: time.Since(start)}, err
	}

	res, err := dlx.Solve(m,
		dlx.WithContext(o.Ctx),
		dlx.WithMaxSteps(o.StepLimit),
		dlx.WithMaxSolutions(2),
	)
	stats := Stats{Duration: time.Since(start)}
	if res != nil {
		stats.Steps = res.Steps
	}
	if errors.Is(err, dlx.ErrNoSolution) {
		return false, stats, nil
	}
	if err != nil {
		return false, stats, err
	}

	return len(res.Solutions) == 1, stats, nil
}
