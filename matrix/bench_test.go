// Package matrix_test provides benchmarks for the sparse kernels on
// 5-point grid Laplacians, the shape random-walker systems take.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rwseg/matrix"
)

var benchSides = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.CSR
	sinkV []float64
)

func gridLaplacian(b *testing.B, side int) *matrix.CSR {
	b.Helper()
	n := side * side
	tr, err := matrix.NewTriplets(n, n, 5*n)
	if err != nil {
		b.Fatal(err)
	}
	link := func(u, v int) {
		_ = tr.Add(u, v, -1)
		_ = tr.Add(v, u, -1)
		_ = tr.Add(u, u, 1)
		_ = tr.Add(v, v, 1)
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				link(v, v+1)
			}
			if r+1 < side {
				link(v, v+side)
			}
		}
	}

	return tr.ToCSR()
}

func BenchmarkToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, side := range benchSides {
		b.Run(fmt.Sprintf("side=%d", side), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkM = gridLaplacian(b, side)
			}
		})
	}
}

func BenchmarkMulVecTo(b *testing.B) {
	b.ReportAllocs()
	for _, side := range benchSides {
		b.Run(fmt.Sprintf("side=%d", side), func(b *testing.B) {
			m := gridLaplacian(b, side)
			x := make([]float64, m.Cols())
			for i := range x {
				x[i] = float64(i % 13)
			}
			y := make([]float64, m.Rows())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.MulVecTo(y, x)
			}
			sinkV = y
		})
	}
}

func BenchmarkGalerkin(b *testing.B) {
	b.ReportAllocs()
	m := gridLaplacian(b, 64)
	p, err := matrix.Transpose(m)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ap, _ := matrix.Mul(m, p)
		sinkM, _ = matrix.Mul(p, ap)
	}
}
