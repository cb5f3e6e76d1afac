package dlx_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/exactcover/dlx"
)

// buildLatin links the order-n Latin square as an exact cover: one row
// per (cell, value) placement with cell, row-value and column-value
// labels. n^3 rows over 3·n^2 columns.
func buildLatin(b *testing.B, n int) *dlx.Matrix {
	b.Helper()
	bld := dlx.NewBuilder()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				_, err := bld.AddRow(
					fmt.Sprintf("cell:%d:%d", r, c),
					fmt.Sprintf("row:%d:%d", r, v),
					fmt.Sprintf("col:%d:%d", c, v),
				)
				if err != nil {
					b.Fatalf("AddRow failed: %v", err)
				}
			}
		}
	}

	return bld.Build()
}

// benchmarkSolve runs Solve repeatedly on one matrix. Solve restores
// the links on every return path, so reuse across iterations is sound.
func benchmarkSolve(b *testing.B, m *dlx.Matrix, opts ...dlx.Option) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dlx.Solve(m, opts...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Latin4 finds the first order-4 Latin square (64 rows).
func BenchmarkSolve_Latin4(b *testing.B) {
	benchmarkSolve(b, buildLatin(b, 4))
}

// BenchmarkSolve_Latin6 finds the first order-6 Latin square (216 rows).
func BenchmarkSolve_Latin6(b *testing.B) {
	benchmarkSolve(b, buildLatin(b, 6))
}

// BenchmarkSolve_Latin3Exhaustive sweeps all 12 order-3 Latin squares.
func BenchmarkSolve_Latin3Exhaustive(b *testing.B) {
	benchmarkSolve(b, buildLatin(b, 3), dlx.WithMaxSolutions(12))
}

// BenchmarkBuild_Latin6 measures linking alone for 216 rows over 108 columns.
func BenchmarkBuild_Latin6(b *testing.B) {
	bld := dlx.NewBuilder()
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			for v := 1; v <= 6; v++ {
				if _, err := bld.AddRow(
					fmt.Sprintf("cell:%d:%d", r, c),
					fmt.Sprintf("row:%d:%d", r, v),
					fmt.Sprintf("col:%d:%d", c, v),
				); err != nil {
					b.Fatalf("AddRow failed: %v", err)
				}
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bld.Build()
	}
}
