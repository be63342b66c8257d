// SPDX-License-Identifier: MIT

package segeval

import "errors"

var (
	// ErrLengthMismatch indicates labelings (or the seed mask) of different lengths.
	ErrLengthMismatch = errors.New("segeval: length mismatch")

	// ErrEmpty indicates that nothing is left to score (empty input, or every
	// position masked out by seeds).
	ErrEmpty = errors.New("segeval: nothing to score")
)
