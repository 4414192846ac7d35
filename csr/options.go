// SPDX-License-Identifier: MIT

// Package csr: functional configuration for constructors and the numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package csr

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the magnitude below which FromDense treats an entry
	// as a structural zero. Zero means "keep every entry that is not exactly 0".
	DefaultEpsilon = 0.0

	// DefaultValidate toggles structural validation (row pointers, column
	// ranges, uniqueness) in New. Disable only for trusted, pre-validated input.
	DefaultValidate = true

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultCopyData makes New copy the caller's arrays so the Matrix never
	// aliases caller-owned storage.
	DefaultCopyData = true
)

// panicEpsilonInvalid is the stable message for a nonsensical epsilon.
const panicEpsilonInvalid = "csr: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; FromDense zero threshold
	validate       bool    // structural validation in New
	validateNaNInf bool    // finite-value validation on ingestion
	copyData       bool    // copy caller arrays in New
}

// WithEpsilon sets the zero threshold used by FromDense: entries with
// |v| <= eps are dropped. Panics on NaN/Inf or negative eps.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidate skips structural validation in New. Intended for inputs
// that are provably well-formed (e.g. output of another csr constructor);
// feeding malformed arrays under this option is undefined behavior.
// Complexity: O(1).
func WithNoValidate() Option {
	return func(o *Options) { o.validate = false }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithNoCopy adopts the caller's arrays instead of copying them.
// The caller MUST NOT mutate the arrays afterwards; ownership transfers to
// the Matrix. Kernels use this to hand over freshly built result buffers.
// Complexity: O(1).
func WithNoCopy() Option {
	return func(o *Options) { o.copyData = false }
}

// gatherOptions applies user-provided Option setters on top of the documented
// defaults. Last-writer-wins semantics; stable for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validate:       DefaultValidate,
		validateNaNInf: DefaultValidateNaNInf,
		copyData:       DefaultCopyData,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
