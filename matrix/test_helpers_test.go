// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic sparse fixtures for kernels and validators.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rwseg/matrix"
)

// MustCSR compresses the dense rows into a CSR or fails the test.
func MustCSR(t testing.TB, rows [][]float64) *matrix.CSR {
	t.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	tr, err := matrix.NewTriplets(r, c, r*c)
	if err != nil {
		t.Fatalf("NewTriplets(%d,%d): %v", r, c, err)
	}
	for i, row := range rows {
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err = tr.Add(i, j, v); err != nil {
				t.Fatalf("Add(%d,%d): %v", i, j, err)
			}
		}
	}

	return tr.ToCSR()
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.CSR, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// randomSparse returns an r×c matrix with roughly density·r·c non-zeros,
// drawn from a fixed seed.
func randomSparse(t testing.TB, r, c int, density float64, seed int64) *matrix.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	tr, err := matrix.NewTriplets(r, c, int(density*float64(r*c))+1)
	if err != nil {
		t.Fatalf("NewTriplets: %v", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				if err = tr.Add(i, j, rng.Float64()*2-1); err != nil {
					t.Fatalf("Add: %v", err)
				}
			}
		}
	}

	return tr.ToCSR()
}
