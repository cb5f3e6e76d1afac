package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/exactcover/sudoku"
)

// ErrBadDifficulty is returned by ParseDifficulty for unknown names.
var ErrBadDifficulty = errors.New("generator: unknown difficulty")

// minClues is the floor carving never crosses; 17 givens is the proven
// minimum for a uniquely solvable sudoku.
const minClues = 17

// Difficulty grades a puzzle by how many givens survive carving.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// targetClues maps each difficulty to the clue count carving aims for.
var targetClues = map[Difficulty]int{
	Easy:   40,
	Medium: 34,
	Hard:   28,
	Expert: 24,
}

// String returns the lowercase name used on the wire and in flags.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty reads a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDifficulty, s)
	}
}

// Puzzle is one generated instance.
type Puzzle struct {
	// ID is a fresh uuid, identity metadata only; two runs with the
	// same seed share board content but not IDs.
	ID string

	// Seed reproduces the board content.
	Seed int64

	// Difficulty the puzzle was carved for.
	Difficulty Difficulty

	// Clues counts the surviving givens. Equal to the difficulty's
	// target when carving got there, greater when the random order ran
	// out of safely removable cells first.
	Clues int

	// Givens is the puzzle board; Solution its unique completion.
	Givens   *sudoku.Board
	Solution *sudoku.Board
}

// Options configures Generate.
// Zero value is not ready to use; start from DefaultOptions.
type Options struct {
	// Ctx aborts generation between uniqueness probes. Never nil.
	Ctx context.Context

	// Seed drives all randomness; 0 means derive from the clock.
	Seed int64

	// Difficulty selects the clue target.
	Difficulty Difficulty
}

// Option mutates Options prior to a Generate call.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//
//	Ctx:        context.Background()
//	Seed:       0 (clock-derived)
//	Difficulty: Medium
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Seed:       0,
		Difficulty: Medium,
	}
}

// WithContext installs ctx for cancellation and deadlines.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the random source so the board content is
// reproducible. Zero keeps the clock-derived default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDifficulty selects the clue target to carve toward.
func WithDifficulty(d Difficulty) Option {
	return func(o *Options) { o.Difficulty = d }
}
