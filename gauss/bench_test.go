package gauss_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{4, 16, 64} {
		rows := diagDominant(n, 7)
		src, err := matrix.NewDenseFrom(rows)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := gauss.SolveCopy(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolveAll(b *testing.B) {
	systems := make([]*matrix.Dense, 64)
	for i := range systems {
		m, err := matrix.NewDenseFrom(diagDominant(16, int64(i)))
		if err != nil {
			b.Fatal(err)
		}
		systems[i] = m
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gauss.SolveAll(context.Background(), systems, 0); err != nil {
			b.Fatal(err)
		}
	}
}
