package dlx

import (
	"context"
	"errors"
)

// Sentinel errors returned by Builder and Solve. Callers should match
// them with errors.Is.
var (
	// ErrEmptyRow is returned by AddRow when the row names no labels.
	ErrEmptyRow = errors.New("dlx: row must name at least one label")

	// ErrDuplicateLabel is returned by AddRow when the same label
	// appears twice in one row.
	ErrDuplicateLabel = errors.New("dlx: duplicate label in row")

	// ErrNilMatrix is returned by Solve when the matrix is nil.
	ErrNilMatrix = errors.New("dlx: matrix must be non-nil")

	// ErrNoSolution is returned by Solve when every branch of the
	// search is exhausted without covering all columns. The Result is
	// still returned so callers can read the step count.
	ErrNoSolution = errors.New("dlx: no exact cover exists")

	// ErrStepLimit is returned by Solve when the step budget set with
	// WithMaxSteps is exceeded before the search finishes.
	ErrStepLimit = errors.New("dlx: step limit exceeded")
)

// Options configures a single Solve run.
// Zero value is not ready to use; start from DefaultOptions.
type Options struct {
	// Ctx cancels the search between node visits. Never nil.
	Ctx context.Context

	// MaxSteps caps how many candidate rows the search may visit.
	// Negative means no limit.
	MaxSteps int

	// MaxSolutions stops the search after this many solutions have
	// been collected. Must be at least 1.
	MaxSolutions int
}

// Option mutates Options prior to a Solve run.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//
//	Ctx:          context.Background()
//	MaxSteps:     -1 (unlimited)
//	MaxSolutions: 1  (stop at the first exact cover)
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxSteps:     -1,
		MaxSolutions: 1,
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

// WithMaxSteps caps the number of candidate rows the search may visit
// before giving up with ErrStepLimit. Negative values mean no limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithMaxSolutions asks the search to keep going until n solutions are
// found (or the matrix is exhausted). Values below 1 are ignored.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxSolutions = n
		}
	}
}

// Result carries the outcome of one Solve run.
type Result struct {
	// Solutions lists each exact cover found, as the row indices
	// (in AddRow order) that make it up. Row order within a solution
	// follows the search's cover order, not numeric order.
	Solutions [][]int

	// Steps counts candidate rows visited during the search. Equal
	// inputs and options always produce equal step counts.
	Steps int
}
