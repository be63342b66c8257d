// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, leaves)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates that the configured WeightFn produced a negative,
// NaN or infinite weight, which the solver would reject anyway.
var ErrInvalidWeight = errors.New("builder: invalid edge weight")

// ErrConstructFailed indicates that Build could not run a constructor
// (e.g. a nil Constructor in the list).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name, keeping it matchable.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//    • ErrTooFewVertices     — size checks first (n, rows, cols).
//    • ErrInvalidProbability — then probability ranges.
//    • ErrNeedRandSource     — then RNG presence for stochastic constructors.
//    • ErrInvalidWeight      — detected lazily, per emitted edge.
