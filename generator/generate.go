// SPDX-License-Identifier: MIT
// Package generator — randomized fill and uniqueness-guarded carving.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/exactcover/sudoku"
)

// Generate builds one puzzle: complete a random solution, then remove
// givens in random order while sudoku.Unique still answers true, until
// the difficulty's clue target (or the random order's limit) is hit.
//
// Returns the puzzle, aggregate stats (summed steps of every
// uniqueness probe, total wall time), and the context's error when
// cancelled between probes.
//
// Complexity: one backtracking fill plus up to 81 Unique probes; the
// probes dominate.
func Generate(opts ...Option) (*Puzzle, sudoku.Stats, error) {
	start := time.Now()
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	target, known := targetClues[o.Difficulty]
	if !known {
		return nil, sudoku.Stats{}, fmt.Errorf("%w: %v", ErrBadDifficulty, o.Difficulty)
	}

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) Complete a board from scratch, digit order shuffled per cell.
	grid := make([][]int, 9)
	for i := range grid {
		grid[i] = make([]int, 9)
	}
	if !fill(grid, 0, rng) {
		return nil, sudoku.Stats{Duration: time.Since(start)}, fmt.Errorf("generator: fill produced no board")
	}
	solution, err := sudoku.New(grid)
	if err != nil {
		return nil, sudoku.Stats{Duration: time.Since(start)}, err
	}

	// 2) Carve: visit the cells once in random order, keep a removal
	//    only while the completion stays unique.
	clues := 81
	steps := 0
	for _, p := range rng.Perm(81) {
		if clues <= target || clues <= minClues {
			break
		}
		select {
		case <-o.Ctx.Done():
			return nil, sudoku.Stats{Steps: steps, Duration: time.Since(start)}, o.Ctx.Err()
		default:
		}

		r, c := p/9, p%9
		kept := grid[r][c]
		grid[r][c] = 0
		probe, err := sudoku.New(grid)
		if err != nil {
			return nil, sudoku.Stats{Steps: steps, Duration: time.Since(start)}, err
		}
		ok, st, err := sudoku.Unique(probe, sudoku.WithContext(o.Ctx))
		steps += st.Steps
		if err != nil {
			return nil, sudoku.Stats{Steps: steps, Duration: time.Since(start)}, err
		}
		if ok {
			clues--
		} else {
			grid[r][c] = kept
		}
	}

	givens, err := sudoku.New(grid)
	if err != nil {
		return nil, sudoku.Stats{Steps: steps, Duration: time.Since(start)}, err
	}

	return &Puzzle{
		ID:         uuid.New().String(),
		Seed:       seed,
		Difficulty: o.Difficulty,
		Clues:      clues,
		Givens:     givens,
		Solution:   solution,
	}, sudoku.Stats{Steps: steps, Duration: time.Since(start)}, nil
}

// fill completes the grid from cell idx onward, row-major, trying the
// digits in shuffled order. Standard backtracking; an empty 9×9 grid
// always completes.
func fill(grid [][]int, idx int, rng *rand.Rand) bool {
	if idx == 81 {
		return true
	}
	r, c := idx/9, idx%9

	digits := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(len(digits), func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	for _, v := range digits {
		if !legal(grid, r, c, v) {
			continue
		}
		grid[r][c] = v
		if fill(grid, idx+1, rng) {
			return true
		}
		grid[r][c] = 0
	}

	return false
}

// legal reports whether v can sit at (r,c) without clashing in the
// row, column or box.
func legal(grid [][]int, r, c, v int) bool {
	for i := 0; i < 9; i++ {
		if grid[r][i] == v || grid[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for i := br; i < br+3; i++ {
		for j := bc; j < bc+3; j++ {
			if grid[i][j] == v {
				return false
			}
		}
	}

	return true
}
