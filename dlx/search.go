// SPDX-License-Identifier: MIT
// Package dlx — Algorithm X search driver.
package dlx

// Solve runs the Dancing Links search over m and returns the collected
// solutions. The search stops at the first exact cover unless
// WithMaxSolutions raised the limit, and aborts early on context
// cancellation or when the WithMaxSteps budget runs out.
//
// Solve mutates m's links in place but always unwinds its covers, so m
// is structurally restored on every return path; still, a Matrix is
// meant to be built for one Solve call, not pooled or shared.
//
// Returns:
//   - (res, nil)            at least one solution was found
//   - (res, ErrNoSolution)  the search space was exhausted
//   - (res, ErrStepLimit)   the step budget ran out
//   - (res, ctx.Err())      the context fired
//
// In every case res carries the step count and whatever solutions were
// found before stopping.
func Solve(m *Matrix, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	s := &searcher{m: m, opts: o, res: res, stack: make([]int, 0, m.Columns())}
	if _, err := s.search(); err != nil {
		return res, err
	}
	if len(res.Solutions) == 0 {
		return res, ErrNoSolution
	}
	return res, nil
}

// searcher carries one Solve run's state: the matrix under mutation,
// the options, the accumulating result and the row stack of the
// current partial solution.
type searcher struct {
	m     *Matrix
	opts  Options
	res   *Result
	stack []int
}

// search is one recursion level of Algorithm X. It reports done=true
// once enough solutions have been collected, so every level above can
// stop branching. Whatever the exit path, all covers taken at this
// level are unwound before returning.
func (s *searcher) search() (bool, error) {
	// 1) Poll for cancellation between node visits.
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	n := s.m.nodes

	// 2) Empty header ring: every column is covered, record a solution.
	if n[root].right == root {
		sol := make([]int, len(s.stack))
		copy(sol, s.stack)
		s.res.Solutions = append(s.res.Solutions, sol)
		return len(s.res.Solutions) >= s.opts.MaxSolutions, nil
	}

	// 3) Choose the column with the fewest live rows. A count of zero
	//    means some constraint can no longer be satisfied: dead branch.
	col := s.chooseColumn()
	if n[col].count == 0 {
		return false, nil
	}

	s.m.cover(col)

	var (
		done bool
		err  error
	)
	for i := n[col].down; i != col; {
		// 4) One candidate row visited; charge the step budget.
		s.res.Steps++
		if s.opts.MaxSteps >= 0 && s.res.Steps > s.opts.MaxSteps {
			err = ErrStepLimit
			break
		}
		// The successor is read now, while this row's links are still
		// untouched by the covers below.
		next := n[i].down

		// 5) Commit the row: push it and cover its remaining columns
		//    left to right.
		s.stack = append(s.stack, n[i].row)
		for j := n[i].right; j != i; j = n[j].right {
			s.m.cover(n[j].head)
		}

		done, err = s.search()

		// 6) Retract in reverse: uncover right to left, pop the row.
		for j := n[i].left; j != i; j = n[j].left {
			s.m.uncover(n[j].head)
		}
		s.stack = s.stack[:len(s.stack)-1]

		if done || err != nil {
			break
		}
		i = next
	}

	s.m.uncover(col)
	return done, err
}

// chooseColumn scans the header ring for the column with the fewest
// live rows; on ties the first (lexicographically smallest) wins. A
// zero-count column short-circuits the scan since no smaller count
// exists.
func (s *searcher) chooseColumn() int {
	n := s.m.nodes
	best := n[root].right
	for c := n[best].right; c != root; c = n[c].right {
		if n[c].count < n[best].count {
			best = c
			if n[c].count == 0 {
				break
			}
		}
	}
	return best
}
