// SPDX-License-Identifier: MIT

package amg

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rwseg/matrix"
)

// level is one grid of the hierarchy. The coarsest level has p == nil.
type level struct {
	a    *matrix.CSR // operator on this level
	diag []float64   // diagonal of a (strictly positive on the fine level)
	p    *matrix.CSR // prolongation to this level from the next coarser one
	pt   *matrix.CSR // restriction (pᵀ)
}

// LevelInfo summarizes one level for logging.
type LevelInfo struct {
	Rows int // operator size
	NNZ  int // stored entries of the operator
}

// Hierarchy is a smoothed-aggregation multigrid hierarchy. It is immutable
// after Build and safe for concurrent Apply calls: per-call work vectors come
// from an internal pool.
type Hierarchy struct {
	levels []level
	coarse *mat.Cholesky // nil when the coarsest factorization failed
	opts   Options
	pool   sync.Pool
}

// workspace holds per-level vectors of one V-cycle.
type workspace struct {
	x, b, r [][]float64
}

// Build constructs the hierarchy for a symmetric operator a.
//
// Stages per level: strength of connection → aggregation → tentative
// prolongator → optional Jacobi smoothing → Galerkin product Pᵀ·A·P.
// Coarsening stops at maxCoarse rows, at maxLevels, or when aggregation no
// longer reduces the size. The coarsest operator is factorized densely.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix, ErrNonPositiveDiagonal,
// or a wrapped matrix kernel error.
func Build(a *matrix.CSR, opts ...Option) (*Hierarchy, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, ErrNonSquare
	}
	if a.Rows() == 0 {
		return nil, ErrEmptyMatrix
	}
	o := gatherOptions(opts...)

	diag := a.Diagonal()
	for i, d := range diag {
		if d <= 0 {
			return nil, fmt.Errorf("amg: level 0 row %d: %w", i, ErrNonPositiveDiagonal)
		}
	}

	h := &Hierarchy{opts: o}
	cur := level{a: a, diag: diag}
	for len(h.levels)+1 < o.maxLevels && cur.a.Rows() > o.maxCoarse {
		strong := strongNeighbors(cur.a, cur.diag, o.theta)
		agg, count := aggregate(strong)
		if count >= cur.a.Rows() || count == 0 {
			break // no reduction: this level becomes the coarsest
		}
		t, err := tentative(agg, count)
		if err != nil {
			return nil, fmt.Errorf("amg: level %d tentative: %w", len(h.levels), err)
		}
		p := t
		if o.smoothP {
			if p, err = smoothProlongator(cur.a, cur.diag, t); err != nil {
				return nil, fmt.Errorf("amg: level %d smoothing: %w", len(h.levels), err)
			}
		}
		pt, err := matrix.Transpose(p)
		if err != nil {
			return nil, fmt.Errorf("amg: level %d restriction: %w", len(h.levels), err)
		}
		ap, err := matrix.Mul(cur.a, p)
		if err != nil {
			return nil, fmt.Errorf("amg: level %d galerkin: %w", len(h.levels), err)
		}
		ac, err := matrix.Mul(pt, ap)
		if err != nil {
			return nil, fmt.Errorf("amg: level %d galerkin: %w", len(h.levels), err)
		}
		cur.p, cur.pt = p, pt
		h.levels = append(h.levels, cur)
		cur = level{a: ac, diag: ac.Diagonal()}
	}
	h.levels = append(h.levels, cur)
	h.coarse = factorCoarse(cur.a)

	sizes := make([]int, len(h.levels))
	for l := range h.levels {
		sizes[l] = h.levels[l].a.Rows()
	}
	h.pool.New = func() any {
		ws := &workspace{
			x: make([][]float64, len(sizes)),
			b: make([][]float64, len(sizes)),
			r: make([][]float64, len(sizes)),
		}
		for l, n := range sizes {
			ws.x[l] = make([]float64, n)
			ws.b[l] = make([]float64, n)
			ws.r[l] = make([]float64, n)
		}

		return ws
	}

	return h, nil
}

// factorCoarse returns the dense Cholesky factor of the symmetrized coarsest
// operator, or nil when it is not positive definite.
func factorCoarse(a *matrix.CSR) *mat.Cholesky {
	d, err := matrix.ToDense(a)
	if err != nil {
		return nil
	}
	n := a.Rows()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, 0.5*(d.At(i, j)+d.At(j, i)))
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return nil
	}

	return &chol
}

// Levels returns per-level sizes, finest first.
func (h *Hierarchy) Levels() []LevelInfo {
	out := make([]LevelInfo, len(h.levels))
	for l, lv := range h.levels {
		out[l] = LevelInfo{Rows: lv.a.Rows(), NNZ: lv.a.NNZ()}
	}

	return out
}

// OperatorComplexity is Σ nnz(A_l) / nnz(A_0).
func (h *Hierarchy) OperatorComplexity() float64 {
	fine := h.levels[0].a.NNZ()
	if fine == 0 {
		return 1
	}
	total := 0
	for _, lv := range h.levels {
		total += lv.a.NNZ()
	}

	return float64(total) / float64(fine)
}

// Apply writes dst ≈ A⁻¹·src using one V-cycle with a zero initial guess.
// The cycle is symmetric (forward Gauss–Seidel before restriction, backward
// after prolongation), so it is a valid conjugate-gradient preconditioner.
// Panics with ErrDimensionMismatch when the vector lengths differ from the
// fine operator size.
func (h *Hierarchy) Apply(dst, src []float64) {
	n := h.levels[0].a.Rows()
	if len(dst) != n || len(src) != n {
		panic(ErrDimensionMismatch)
	}
	ws := h.pool.Get().(*workspace)
	defer h.pool.Put(ws)

	copy(ws.b[0], src)
	clear(ws.x[0])
	h.cycle(0, ws)
	copy(dst, ws.x[0])
}

func (h *Hierarchy) cycle(l int, ws *workspace) {
	lv := &h.levels[l]
	x, b := ws.x[l], ws.b[l]
	if l == len(h.levels)-1 {
		h.solveCoarse(lv, x, b)
		return
	}

	for s := 0; s < h.opts.preSweeps; s++ {
		gaussSeidel(lv.a, lv.diag, x, b, true)
	}

	// restrict the residual
	r := ws.r[l]
	lv.a.MulVecTo(r, x)
	floats.SubTo(r, b, r)
	lv.pt.MulVecTo(ws.b[l+1], r)
	clear(ws.x[l+1])
	h.cycle(l+1, ws)

	// prolongate the correction
	lv.p.MulVecTo(r, ws.x[l+1])
	floats.Add(x, r)

	for s := 0; s < h.opts.postSweeps; s++ {
		gaussSeidel(lv.a, lv.diag, x, b, false)
	}
}

func (h *Hierarchy) solveCoarse(lv *level, x, b []float64) {
	if h.coarse != nil {
		xv := mat.NewVecDense(len(x), x)
		err := h.coarse.SolveVecTo(xv, mat.NewVecDense(len(b), b))
		var cond mat.Condition
		if err == nil || errors.As(err, &cond) {
			return // an ill-conditioned coarse solve is still a usable correction
		}
		clear(x)
	}
	for s := 0; s < h.opts.coarseSweeps; s++ {
		gaussSeidel(lv.a, lv.diag, x, b, true)
		gaussSeidel(lv.a, lv.diag, x, b, false)
	}
}

// gaussSeidel performs one in-place sweep of x ← x + D⁻¹(b − A·x) row by row,
// ascending when forward is true and descending otherwise. Rows with a zero
// diagonal are skipped.
func gaussSeidel(a *matrix.CSR, diag, x, b []float64, forward bool) {
	n := a.Rows()
	step := func(i int) {
		if diag[i] == 0 {
			return
		}
		cols, vals, _ := a.Row(i)
		s := b[i]
		for p, j := range cols {
			if j != i {
				s -= vals[p] * x[j]
			}
		}
		x[i] = s / diag[i]
	}
	if forward {
		for i := 0; i < n; i++ {
			step(i)
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		step(i)
	}
}
