// SPDX-License-Identifier: MIT

package randomwalker

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/rwseg/matrix"
)

// identity is the no-op preconditioner of plain CG.
type identity struct{}

func (identity) Apply(dst, src []float64) { copy(dst, src) }

// jacobi scales by the inverse diagonal. Non-positive diagonal entries
// (isolated unlabeled nodes) are left unscaled.
type jacobi struct{ inv []float64 }

func newJacobi(a *matrix.CSR) jacobi {
	d := a.Diagonal()
	for i, v := range d {
		if v > 0 {
			d[i] = 1 / v
		} else {
			d[i] = 1
		}
	}

	return jacobi{inv: d}
}

func (j jacobi) Apply(dst, src []float64) {
	for i, v := range src {
		dst[i] = v * j.inv[i]
	}
}

// selectPreconditioner resolves the preconditioner for an iterative mode and
// returns the effective mode. Multigrid is a runtime capability: a nil
// backend or a failed hierarchy build degrades to Jacobi with a warning.
func selectPreconditioner(a *matrix.CSR, o *Options) (Preconditioner, Mode, []Warning) {
	switch o.mode {
	case ModeCG:
		return identity{}, ModeCG, nil
	case ModeCGMultigrid:
		if o.multigrid == nil {
			w := Warning{
				Kind:    ErrPreconditionerUnavailable,
				Message: "no multigrid backend configured, using cg_j",
			}
			return newJacobi(a), ModeCGJacobi, []Warning{w}
		}
		pre, err := o.multigrid(a)
		if err != nil {
			o.logger.Debug("multigrid build failed", zap.Error(err))
			w := Warning{
				Kind:    ErrPreconditionerUnavailable,
				Message: "multigrid build failed (" + err.Error() + "), using cg_j",
			}
			return newJacobi(a), ModeCGJacobi, []Warning{w}
		}
		return pre, ModeCGMultigrid, nil
	default:
		return newJacobi(a), ModeCGJacobi, nil
	}
}
