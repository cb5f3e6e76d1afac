package dlx

import "fmt"

// cover removes column h from the header ring and unlinks every row
// that has a node in h from all other columns those rows touch. The
// unlinked nodes keep their own link values, which is what lets
// uncover restore them in O(1) each.
func (m *Matrix) cover(h int) {
	n := m.nodes
	n[n[h].left].right = n[h].right
	n[n[h].right].left = n[h].left
	for i := n[h].down; i != h; i = n[i].down {
		for j := n[i].right; j != i; j = n[j].right {
			n[n[j].up].down = n[j].down
			n[n[j].down].up = n[j].up
			n[n[j].head].count--
		}
	}
}

// uncover is the exact inverse of cover: it relinks rows bottom-up and
// right-to-left, then restores the header, so that the matrix returns
// to the state it had before the matching cover call. Covers and
// uncovers must therefore nest LIFO.
func (m *Matrix) uncover(h int) {
	n := m.nodes
	for i := n[h].up; i != h; i = n[i].up {
		for j := n[i].left; j != i; j = n[j].left {
			n[n[j].head].count++
			n[n[j].up].down = j
			n[n[j].down].up = j
		}
	}
	n[n[h].left].right = h
	n[n[h].right].left = h
}

// Verify walks the live structure and checks its invariants:
//
//  1. every reachable link is symmetric (n.right.left == n, n.down.up == n);
//  2. every header's count equals the number of nodes on its column ring;
//  3. every node on a column ring points back to that header;
//  4. every node on a row ring belongs to the same row.
//
// Covered nodes are intentionally unreachable and carry stale links, so
// Verify inspects only what the rings can currently reach. It is valid
// on a fresh matrix and at any point where no cover or uncover call is
// mid-flight.
func (m *Matrix) Verify() error {
	n := m.nodes
	for h := n[root].right; h != root; h = n[h].right {
		if n[n[h].right].left != h || n[n[h].left].right != h {
			return fmt.Errorf("dlx: header %d: asymmetric horizontal links", h)
		}
		if n[h].row != -1 {
			return fmt.Errorf("dlx: header ring reached non-header node %d", h)
		}
		live := 0
		for i := n[h].down; i != h; i = n[i].down {
			if n[n[i].down].up != i || n[n[i].up].down != i {
				return fmt.Errorf("dlx: node %d: asymmetric vertical links", i)
			}
			if n[i].head != h {
				return fmt.Errorf("dlx: node %d: head %d, want %d", i, n[i].head, h)
			}
			for j := n[i].right; j != i; j = n[j].right {
				if n[n[j].right].left != j || n[n[j].left].right != j {
					return fmt.Errorf("dlx: node %d: asymmetric horizontal links", j)
				}
				if n[j].row != n[i].row {
					return fmt.Errorf("dlx: node %d: row %d, want %d", j, n[j].row, n[i].row)
				}
			}
			live++
		}
		if live != n[h].count {
			return fmt.Errorf("dlx: header %d: count %d, walked %d", h, n[h].count, live)
		}
	}
	return nil
}
