// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultStrengthTheta is the symmetric strength-of-connection threshold:
	// j is a strong neighbor of i when |a_ij| >= θ·sqrt(a_ii·a_jj).
	DefaultStrengthTheta = 0.08

	// DefaultMaxLevels caps the hierarchy depth (fine level included).
	DefaultMaxLevels = 10

	// DefaultMaxCoarse is the size below which coarsening stops and the level
	// is solved directly.
	DefaultMaxCoarse = 64

	// DefaultPreSweeps / DefaultPostSweeps are Gauss–Seidel sweeps per level.
	DefaultPreSweeps  = 1
	DefaultPostSweeps = 1

	// DefaultSmoothProlongation enables Jacobi smoothing of the tentative prolongator.
	DefaultSmoothProlongation = true

	// DefaultCoarseSweeps are the symmetric Gauss–Seidel sweeps used on the coarsest
	// level when its dense Cholesky factorization fails.
	DefaultCoarseSweeps = 20
)

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// Options holds the resolved hierarchy configuration.
type Options struct {
	theta        float64
	maxLevels    int
	maxCoarse    int
	preSweeps    int
	postSweeps   int
	coarseSweeps int
	smoothP      bool
}

// WithStrengthTheta sets the strength-of-connection threshold in [0, 1].
func WithStrengthTheta(theta float64) Option {
	if math.IsNaN(theta) || theta < 0 || theta > 1 {
		panic(fmt.Sprintf("amg: WithStrengthTheta: theta must be in [0,1], got %g", theta))
	}

	return func(o *Options) { o.theta = theta }
}

// WithMaxLevels sets the maximum number of levels (>= 1).
func WithMaxLevels(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("amg: WithMaxLevels: n must be >= 1, got %d", n))
	}

	return func(o *Options) { o.maxLevels = n }
}

// WithMaxCoarse sets the coarsest level size threshold (>= 1).
func WithMaxCoarse(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("amg: WithMaxCoarse: n must be >= 1, got %d", n))
	}

	return func(o *Options) { o.maxCoarse = n }
}

// WithSweeps sets pre- and post-smoothing sweeps. Equal counts keep the V-cycle
// symmetric, which conjugate gradient requires of its preconditioner.
func WithSweeps(pre, post int) Option {
	if pre < 0 || post < 0 {
		panic(fmt.Sprintf("amg: WithSweeps: sweeps must be >= 0, got %d/%d", pre, post))
	}

	return func(o *Options) { o.preSweeps, o.postSweeps = pre, post }
}

// WithoutProlongationSmoothing uses the piecewise-constant tentative prolongator
// directly (plain aggregation AMG).
func WithoutProlongationSmoothing() Option {
	return func(o *Options) { o.smoothP = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		theta:        DefaultStrengthTheta,
		maxLevels:    DefaultMaxLevels,
		maxCoarse:    DefaultMaxCoarse,
		preSweeps:    DefaultPreSweeps,
		postSweeps:   DefaultPostSweeps,
		coarseSweeps: DefaultCoarseSweeps,
		smoothP:      DefaultSmoothProlongation,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
