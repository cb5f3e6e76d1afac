package sudoku

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/exactcover/dlx"
)

// Sentinel errors for the board boundary. Engine outcomes keep their
// dlx identity, re-exported below so callers need only this package.
var (
	// ErrNilBoard is returned when a nil *Board is passed in.
	ErrNilBoard = errors.New("sudoku: board must be non-nil")

	// ErrBadDimensions is returned by New when the input is not 9×9.
	ErrBadDimensions = errors.New("sudoku: board must be 9x9")

	// ErrBadValue is returned by New when a cell is outside 0..9.
	ErrBadValue = errors.New("sudoku: cell value must be 0..9")

	// ErrBadFormat is returned by Parse when the text does not contain
	// exactly 81 cell runes.
	ErrBadFormat = errors.New("sudoku: text form must contain 81 cells")

	// ErrNoSolution reports that the givens admit no completion.
	// Identical to dlx.ErrNoSolution, so errors.Is matches either name.
	ErrNoSolution = dlx.ErrNoSolution

	// ErrStepLimit reports that the budget set with WithStepLimit ran
	// out mid-search. Identical to dlx.ErrStepLimit.
	ErrStepLimit = dlx.ErrStepLimit
)

// Cell addresses one board position, rows and columns 0..8.
type Cell struct {
	Row, Col int
}

// Stats reports how much work one solver call did.
type Stats struct {
	// Steps is the number of candidate placements the search visited.
	// Equal boards and options always yield equal step counts.
	Steps int

	// Duration is the wall-clock time of the call.
	Duration time.Duration
}

// Options configures Solve and Unique.
// Zero value is not ready to use; start from DefaultOptions.
type Options struct {
	// Ctx cancels the search between placement visits. Never nil.
	Ctx context.Context

	// StepLimit caps visited placements; negative means no limit.
	StepLimit int
}

// Option mutates Options prior to a solver call.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//
//	Ctx:       context.Background()
//	StepLimit: -1 (unlimited)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		StepLimit: -1,
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

// WithStepLimit caps how many candidate placements the search may
// visit before giving up with ErrStepLimit. Negative means no limit.
func WithStepLimit(n int) Option {
	return func(o *Options) { o.StepLimit = n }
}
