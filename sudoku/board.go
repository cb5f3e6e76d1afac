package sudoku

import (
	"fmt"
	"strings"
)

// Board is a 9×9 sudoku grid. Zero cells are blanks. The storage is
// unexported: only the constructors and the solver's reconstruction
// step write to it, everything else copies out.
type Board struct {
	cells [9][9]uint8
}

// boxOf maps a coordinate to its 3×3 box index, row-major 0..8.
func boxOf(r, c int) int { return (r/3)*3 + c/3 }

// New builds a Board from a 9×9 grid of values, 0 meaning blank.
// The input is deep-copied; later mutations of values do not reach
// the Board.
//
// Errors:
//   - ErrBadDimensions  if values is not exactly 9 rows of 9
//   - ErrBadValue       if any cell is outside 0..9
func New(values [][]int) (*Board, error) {
	if len(values) != 9 {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadDimensions, len(values))
	}
	b := &Board{}
	for r, row := range values {
		if len(row) != 9 {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadDimensions, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadValue, v, r, c)
			}
			b.cells[r][c] = uint8(v)
		}
	}

	return b, nil
}

// Parse reads a Board from text. Runes '1'..'9' are givens and '0',
// '.' and '_' are blanks; every other rune (spaces, newlines, grid
// decoration) is ignored. The text must contain exactly 81 cell runes.
//
// Errors: ErrBadFormat when the cell count is off.
func Parse(s string) (*Board, error) {
	b := &Board{}
	n := 0
	for _, r := range s {
		var v uint8
		switch {
		case r >= '1' && r <= '9':
			v = uint8(r - '0')
		case r == '0' || r == '.' || r == '_':
			v = 0
		default:
			continue
		}
		if n < 81 {
			b.cells[n/9][n%9] = v
		}
		n++
	}
	if n != 81 {
		return nil, fmt.Errorf("%w: got %d", ErrBadFormat, n)
	}

	return b, nil
}

// At returns the value at row r, column c (0..8); 0 means blank.
// Out-of-range coordinates panic, as with any array index.
func (b *Board) At(r, c int) int { return int(b.cells[r][c]) }

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	out := *b

	return &out
}

// Grid copies the board out as a 9×9 grid of ints, blanks as 0.
func (b *Board) Grid() [][]int {
	out := make([][]int, 9)
	for r := range out {
		out[r] = make([]int, 9)
		for c := range out[r] {
			out[r][c] = int(b.cells[r][c])
		}
	}

	return out
}

// Blanks counts the empty cells.
func (b *Board) Blanks() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.cells[r][c] == 0 {
				n++
			}
		}
	}

	return n
}

// Full reports whether every cell holds a digit.
func (b *Board) Full() bool { return b.Blanks() == 0 }

// String renders the board as nine display rows with box rules,
// blanks as dots:
//
//	5 3 . | . 7 . | . . .
//	...
//	------+-------+------
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			if v := b.cells[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		if r < 8 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Flat renders the canonical 81-rune form, row-major, blanks as dots.
// It round-trips through Parse.
func (b *Board) Flat() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.cells[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}

	return sb.String()
}
