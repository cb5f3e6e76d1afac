// SPDX-License-Identifier: MIT
// Package dlx — sparse matrix construction.
//
// The matrix is stored as a single flat arena of nodes that reference
// one another by index. Index 0 is the root header; indices 1..C are
// the column headers in lexicographic label order; option nodes follow
// in row insertion order. Integer links keep the hot loops free of
// pointer chasing and make the whole structure trivially copyable.
package dlx

import (
	"fmt"
	"sort"
)

// root is the arena index of the root header. Its horizontal ring
// threads every live column header; the ring being empty is the
// search's success condition.
const root = 0

// node is one cell of the arena. Column headers and option nodes share
// the layout; count is meaningful on headers only, row on option nodes
// only (headers and the root carry -1).
type node struct {
	left, right int // horizontal ring neighbors
	up, down    int // vertical ring neighbors
	head        int // owning column header; the root points to itself
	row         int // owning option row, in AddRow order
	count       int // live option nodes in this column (headers only)
}

// Builder accumulates candidate rows and links them into a Matrix.
// The zero value is ready to use.
type Builder struct {
	rows [][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddRow appends one candidate row naming the constraint labels it
// satisfies, and returns the row's index (0-based, in insertion order).
// The labels are copied; the caller may reuse the slice.
//
// Errors:
//   - ErrEmptyRow        if no labels are given
//   - ErrDuplicateLabel  if the same label appears twice in this row
func (b *Builder) AddRow(labels ...string) (int, error) {
	if len(labels) == 0 {
		return 0, ErrEmptyRow
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}
	row := make([]string, len(labels))
	copy(row, labels)
	b.rows = append(b.rows, row)
	return len(b.rows) - 1, nil
}

// Rows reports how many rows have been added so far.
func (b *Builder) Rows() int { return len(b.rows) }

// Build links the accumulated rows into a Matrix and returns it. The
// column universe is exactly the set of labels the rows mention: a
// label nobody names simply does not exist as a column. Headers are
// laid out in lexicographic label order so that identical inputs yield
// an identical link structure, independent of insertion order.
//
// The Builder stays usable afterwards; each Build call produces an
// independent Matrix.
func (b *Builder) Build() *Matrix {
	// 1) Collect the distinct labels and the total node count.
	labelSet := make(map[string]struct{})
	total := 0
	for _, row := range b.rows {
		total += len(row)
		for _, l := range row {
			labelSet[l] = struct{}{}
		}
	}
	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	// 2) Allocate the arena: root, one header per label, one node per
	//    row/label incidence.
	m := &Matrix{
		nodes:  make([]node, 1, 1+len(labels)+total),
		labels: labels,
		rows:   len(b.rows),
	}
	m.nodes[root] = node{left: root, right: root, up: root, down: root, head: root, row: -1}

	// 3) Thread the column headers into the root's horizontal ring.
	headAt := make(map[string]int, len(labels))
	for _, l := range labels {
		h := len(m.nodes)
		prev := m.nodes[root].left
		m.nodes = append(m.nodes, node{left: prev, right: root, up: h, down: h, head: h, row: -1})
		m.nodes[prev].right = h
		m.nodes[root].left = h
		headAt[l] = h
	}

	// 4) Append each row's nodes: splice into the column rings bottom-up
	//    and into the row's own horizontal ring left to right.
	for r, row := range b.rows {
		first := -1
		for _, l := range row {
			h := headAt[l]
			i := len(m.nodes)
			above := m.nodes[h].up
			m.nodes = append(m.nodes, node{up: above, down: h, head: h, row: r})
			m.nodes[above].down = i
			m.nodes[h].up = i
			m.nodes[h].count++

			if first < 0 {
				first = i
				m.nodes[i].left = i
				m.nodes[i].right = i
			} else {
				last := m.nodes[first].left
				m.nodes[i].left = last
				m.nodes[i].right = first
				m.nodes[last].right = i
				m.nodes[first].left = i
			}
		}
	}
	return m
}

// Matrix is the linked sparse form of an exact-cover instance.
// Construct one with Builder.Build; a Matrix is consumed by a single
// Solve call and must not be shared across goroutines.
type Matrix struct {
	nodes  []node
	labels []string // lexicographically sorted column labels
	rows   int
}

// Rows reports the number of candidate rows linked into the matrix.
func (m *Matrix) Rows() int { return m.rows }

// Columns reports the number of distinct constraint columns.
func (m *Matrix) Columns() int { return len(m.labels) }

// Labels returns the column labels in lexicographic order, which is
// also their header order in the horizontal ring. The slice is a copy.
func (m *Matrix) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}
