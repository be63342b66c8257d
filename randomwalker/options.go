// SPDX-License-Identifier: MIT

// Package randomwalker: functional configuration for Solve and SolveSystem.
//
// Design goals:
//   - Deterministic behavior: no global state; every knob lives in Options.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error). The solver mode is the exception: an unknown Mode
//     is a caller input error and is reported as ErrUnsupportedMode by Solve.
//   - Optional capabilities are explicit values: the multigrid backend is a
//     field that may be nil, checked at solve time with a logged fallback.
package randomwalker

import (
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/rwseg/amg"
	"github.com/katalvlaran/rwseg/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultMode is Jacobi-preconditioned conjugate gradient.
	DefaultMode = ModeCGJacobi

	// DefaultTolerance is the relative residual target ‖r‖ <= tol·‖b‖.
	DefaultTolerance = 1e-3

	// DefaultIterationFactor bounds plain and Jacobi CG at factor·m iterations.
	DefaultIterationFactor = 10

	// DefaultMultigridMaxIterations bounds multigrid-preconditioned CG.
	DefaultMultigridMaxIterations = 30

	// DefaultFullProbabilities returns the K×n probability volume.
	DefaultFullProbabilities = true

	// DefaultClamp leaves solver output unclamped.
	DefaultClamp = false
)

const (
	panicToleranceInvalid = "randomwalker: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "randomwalker: WithMaxIterations: n must be >= 0"
	panicWorkersInvalid   = "randomwalker: WithWorkers: n must be >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	mode      Mode
	tol       float64
	maxIter   int // 0 → mode default
	workers   int // 0 → GOMAXPROCS
	full      bool
	clamp     bool
	logger    *zap.Logger
	multigrid MultigridBackend
	observer  Observer
}

// WithMode selects the solver strategy. Unknown modes are rejected by Solve.
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithTolerance sets the relative residual tolerance of iterative modes.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps CG iterations per column; 0 restores the mode default
// (10·m for cg/cg_j, 30 for cg_mg).
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithWorkers bounds the number of columns solved concurrently; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithFullProbabilities toggles the K×n probability volume in the result.
// The hard segmentation is always returned.
func WithFullProbabilities(full bool) Option {
	return func(o *Options) { o.full = full }
}

// WithClamp clamps solved probabilities to [0,1]. Iterative modes may
// overshoot slightly within tolerance; clamping hides that, so it is off by default.
func WithClamp(clamp bool) Option {
	return func(o *Options) { o.clamp = clamp }
}

// WithLogger sets the structured logger; nil installs a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithMultigrid replaces the multigrid backend. nil marks multigrid as
// unavailable: ModeCGMultigrid then falls back to ModeCGJacobi with an
// ErrPreconditionerUnavailable warning.
func WithMultigrid(b MultigridBackend) Option {
	return func(o *Options) { o.multigrid = b }
}

// WithObserver registers a hook called after each successful Solve.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// AMGBackend returns a MultigridBackend built on package amg with the given options.
func AMGBackend(opts ...amg.Option) MultigridBackend {
	return func(a *matrix.CSR) (Preconditioner, error) {
		h, err := amg.Build(a, opts...)
		if err != nil {
			return nil, err
		}

		return h, nil
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		mode:      DefaultMode,
		tol:       DefaultTolerance,
		full:      DefaultFullProbabilities,
		clamp:     DefaultClamp,
		logger:    zap.NewNop(),
		multigrid: AMGBackend(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate reports input errors carried by options.
func (o *Options) validate() error {
	if !o.mode.Valid() {
		return fmt.Errorf("%v: %w", o.mode, ErrUnsupportedMode)
	}

	return nil
}

// workerCount resolves the worker bound for k columns.
func (o *Options) workerCount(k int) int {
	w := o.workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}

	return max(1, min(w, k))
}

// iterationCap resolves the CG iteration cap for the effective mode.
func (o *Options) iterationCap(effective Mode, m int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}
	if effective == ModeCGMultigrid {
		return DefaultMultigridMaxIterations
	}

	return DefaultIterationFactor * m
}
