package sudoku

import (
	"sort"

	"github.com/spjmurray/go-util/pkg/set"
	"github.com/spjmurray/go-util/pkg/slices"
)

// Validate checks the givens for duplicates within a row, column or
// box and returns every cell involved in a conflict, deduplicated and
// sorted row-major. A board with no givens is trivially valid, as is
// a nil board.
//
// The solver never calls this: option generation already refuses
// illegal placements, and inconsistent givens simply leave some
// constraint uncoverable. Validate exists for friendlier diagnostics
// at the boundaries (CLI input, tests asserting soundness).
//
// Complexity: O(27·9²) pairwise scans, O(conflicts) memory.
func Validate(b *Board) (bool, []Cell) {
	if b == nil {
		return true, nil
	}

	conflicts := set.New[Cell]()
	// check records every same-digit pair within one house.
	check := func(filled []Cell) {
		for p, q := range slices.Permute(filled) {
			if b.cells[p.Row][p.Col] == b.cells[q.Row][q.Col] {
				conflicts.Add(p)
				conflicts.Add(q)
			}
		}
	}

	for r := 0; r < 9; r++ {
		var filled []Cell
		for c := 0; c < 9; c++ {
			if b.cells[r][c] != 0 {
				filled = append(filled, Cell{Row: r, Col: c})
			}
		}
		check(filled)
	}
	for c := 0; c < 9; c++ {
		var filled []Cell
		for r := 0; r < 9; r++ {
			if b.cells[r][c] != 0 {
				filled = append(filled, Cell{Row: r, Col: c})
			}
		}
		check(filled)
	}
	for box := 0; box < 9; box++ {
		var filled []Cell
		for i := 0; i < 9; i++ {
			r := (box/3)*3 + i/3
			c := (box%3)*3 + i%3
			if b.cells[r][c] != 0 {
				filled = append(filled, Cell{Row: r, Col: c})
			}
		}
		check(filled)
	}

	var out []Cell
	for cell := range conflicts.All() {
		out = append(out, cell)
	}
	if len(out) == 0 {
		return true, nil
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return false, out
}
