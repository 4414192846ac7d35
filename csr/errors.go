// SPDX-License-Identifier: MIT
// Package csr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csr
// package. All constructors and methods MUST return these sentinels and tests
// MUST check them via errors.Is. No code path panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) —
// callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	// Constructors must validate shape before any allocation.
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrBadRowPointers signals a malformed row-pointer array: wrong length,
	// nonzero first entry, a decreasing step, or a final entry that does not
	// equal the number of stored values.
	ErrBadRowPointers = errors.New("csr: malformed row pointers")

	// ErrBadColumnIndex signals a column index outside [0, cols).
	ErrBadColumnIndex = errors.New("csr: column index out of range")

	// ErrDuplicateColumn signals that the same column appears twice within a
	// single row, which the CSR invariant forbids.
	ErrDuplicateColumn = errors.New("csr: duplicate column within row")

	// ErrLengthMismatch signals that the column-index and value arrays differ
	// in length (they must describe the same stored entries).
	ErrLengthMismatch = errors.New("csr: column/value length mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("csr: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row (or column) index passed to an
	// accessor is outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("csr: index out of range")
)
