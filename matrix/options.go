// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for triplet assembly and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Compaction drops summed entries whose magnitude is <= eps. With the
//     default eps=0 only exact zeros vanish, which is what keeps zero-weight
//     graph edges from creating structural entries.
//   - validateNaNInf controls whether Triplets.Add rejects NaN/±Inf.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the drop tolerance applied at compaction time.
	DefaultEpsilon = 0.0

	// DefaultSymmetryEpsilon is the tolerance used by ValidateSymmetric callers
	// that do not carry their own policy.
	DefaultSymmetryEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultKeepZeros keeps explicit zero entries after summation when true.
	DefaultKeepZeros = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	keepZeros      bool    // DefaultKeepZeros
}

// WithEpsilon sets the drop tolerance used at compaction.
// Entries whose summed magnitude is <= eps are not stored (unless WithKeepZeros).
// Panics when eps is negative or non-finite.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables finite-value validation on ingestion.
// AI-Hints: only for controlled experiments; solvers assume finite data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithKeepZeros keeps explicit zeros produced by cancellation or inserted on
// purpose. Useful when the sparsity pattern itself matters (e.g., AMG strength
// graphs built from a fixed stencil).
func WithKeepZeros() Option {
	return func(o *Options) { o.keepZeros = true }
}

// gatherOptions resolves user options over documented defaults.
// Later options override earlier ones (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		keepZeros:      DefaultKeepZeros,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
