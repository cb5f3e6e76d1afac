package sudoku_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactcover/sudoku"
)

// classicPuzzle is the well-known single-solution grid; 51 blanks.
const classicPuzzle = "" +
	"530070000" +
	"600195000" +
	"098000060" +
	"800060003" +
	"400803001" +
	"700020006" +
	"060000280" +
	"000419005" +
	"000080079"

// classicSolution is its unique completion.
const classicSolution = "" +
	"534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

// mustParse is a fixture helper; fails the test on malformed text.
func mustParse(t *testing.T, s string) *sudoku.Board {
	t.Helper()
	b, err := sudoku.Parse(s)
	require.NoError(t, err)

	return b
}

func TestNew_BadDimensions(t *testing.T) {
	_, err := sudoku.New(make([][]int, 8))
	assert.ErrorIs(t, err, sudoku.ErrBadDimensions)

	rows := make([][]int, 9)
	for i := range rows {
		rows[i] = make([]int, 9)
	}
	rows[4] = make([]int, 8) // one short row
	_, err = sudoku.New(rows)
	assert.ErrorIs(t, err, sudoku.ErrBadDimensions)
}

func TestNew_BadValue(t *testing.T) {
	rows := make([][]int, 9)
	for i := range rows {
		rows[i] = make([]int, 9)
	}
	rows[2][3] = 10
	_, err := sudoku.New(rows)
	assert.ErrorIs(t, err, sudoku.ErrBadValue)

	rows[2][3] = -1
	_, err = sudoku.New(rows)
	assert.ErrorIs(t, err, sudoku.ErrBadValue)
}

func TestNew_DeepCopiesInput(t *testing.T) {
	rows := make([][]int, 9)
	for i := range rows {
		rows[i] = make([]int, 9)
	}
	rows[0][0] = 5
	b, err := sudoku.New(rows)
	require.NoError(t, err)

	rows[0][0] = 9
	assert.Equal(t, 5, b.At(0, 0), "board must not alias the caller's slice")
}

func TestParse_BlankRunes(t *testing.T) {
	// '0', '.' and '_' all mean blank.
	b := mustParse(t, strings.Repeat("0._", 27))
	assert.Equal(t, 81, b.Blanks())
}

func TestParse_IgnoresDecoration(t *testing.T) {
	// The display form is full of spaces, pipes and rules; Parse must
	// read straight through them.
	b := mustParse(t, classicPuzzle)
	decorated := b.String()
	again, err := sudoku.Parse(decorated)
	require.NoError(t, err)
	assert.Equal(t, b.Flat(), again.Flat())
}

func TestParse_BadCount(t *testing.T) {
	_, err := sudoku.Parse(strings.Repeat(".", 80))
	assert.ErrorIs(t, err, sudoku.ErrBadFormat)

	_, err = sudoku.Parse(strings.Repeat(".", 82))
	assert.ErrorIs(t, err, sudoku.ErrBadFormat)

	_, err = sudoku.Parse("")
	assert.ErrorIs(t, err, sudoku.ErrBadFormat)
}

func TestFlat_RoundTrip(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	flat := b.Flat()
	assert.Len(t, flat, 81)
	assert.Equal(t, strings.ReplaceAll(classicPuzzle, "0", "."), flat)

	again, err := sudoku.Parse(flat)
	require.NoError(t, err)
	assert.Equal(t, flat, again.Flat())
}

func TestString_Layout(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 11, "9 cell rows plus 2 box rules")
	assert.Equal(t, "5 3 . | . 7 . | . . .", lines[0])
	assert.Equal(t, "------+-------+------", lines[3])
	assert.Equal(t, ". 9 8 | . . . | . 6 .", lines[2])
	assert.Equal(t, ". . . | . 8 . | . 7 9", lines[10])
}

func TestGrid_CopiesOut(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	g := b.Grid()
	assert.Equal(t, 5, g[0][0])

	g[0][0] = 9
	assert.Equal(t, 5, b.At(0, 0), "Grid must hand out a copy")
}

func TestClone_Independent(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	c := b.Clone()
	assert.Equal(t, b.Flat(), c.Flat())

	// Boards only change through the package, so identity is the
	// meaningful independence check here.
	assert.NotSame(t, b, c)
}

func TestBlanksAndFull(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	assert.Equal(t, 51, b.Blanks())
	assert.False(t, b.Full())

	s := mustParse(t, classicSolution)
	assert.Equal(t, 0, s.Blanks())
	assert.True(t, s.Full())
}

func TestValidate_CleanBoard(t *testing.T) {
	ok, conflicts := sudoku.Validate(mustParse(t, classicPuzzle))
	assert.True(t, ok)
	assert.Empty(t, conflicts)

	ok, _ = sudoku.Validate(nil)
	assert.True(t, ok, "nil board has nothing to conflict")
}

func TestValidate_RowConflict(t *testing.T) {
	b := mustParse(t, "55"+strings.Repeat(".", 79))
	ok, conflicts := sudoku.Validate(b)
	assert.False(t, ok)
	// Same row and same box, but each cell reported once.
	assert.Equal(t, []sudoku.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, conflicts)
}

func TestValidate_ColumnAndBoxConflicts(t *testing.T) {
	// 7s at (0,0) and (4,0) share a column; 3s at (6,6) and (8,8) a box.
	grid := make([][]int, 9)
	for i := range grid {
		grid[i] = make([]int, 9)
	}
	grid[0][0], grid[4][0] = 7, 7
	grid[6][6], grid[8][8] = 3, 3
	b, err := sudoku.New(grid)
	require.NoError(t, err)

	ok, conflicts := sudoku.Validate(b)
	assert.False(t, ok)
	assert.Equal(t, []sudoku.Cell{
		{Row: 0, Col: 0},
		{Row: 4, Col: 0},
		{Row: 6, Col: 6},
		{Row: 8, Col: 8},
	}, conflicts, "conflicts sorted row-major")
}
