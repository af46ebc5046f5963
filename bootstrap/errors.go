// SPDX-License-Identifier: MIT
// Package bootstrap: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All entry points
// MUST return these sentinels and tests MUST check them via errors.Is.
// Every validation failure is raised before any resampling begins; no
// partial computation is ever returned.

package bootstrap

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "bootstrap: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> length mismatch -> empty input -> replicate count -> level.

var (
	// ErrNilInput indicates a nil matrix or nil table was passed where
	// observations were required.
	ErrNilInput = errors.New("bootstrap: nil input")

	// ErrLengthMismatch indicates x and wts do not have the same length.
	ErrLengthMismatch = errors.New("bootstrap: x and wts must have the same length")

	// ErrNoObservations indicates x contains no observations (length or
	// row count of zero).
	ErrNoObservations = errors.New("bootstrap: x must contain at least one observation")

	// ErrReplicates indicates Options.NReps is not a positive integer.
	ErrReplicates = errors.New("bootstrap: NReps must be a positive integer")

	// ErrConfidenceLevel indicates a confidence level outside (0, 1).
	ErrConfidenceLevel = errors.New("bootstrap: confidence level must lie in (0, 1)")

	// ErrLabelMismatch indicates a table's label count does not match its
	// column count.
	ErrLabelMismatch = errors.New("bootstrap: column label count must match column count")
)
