// Package topn: sentinel errors and configuration options for the top-n
// selection kernels.
//
// Errors (sentinel):
//
//	– ErrNilMatrix         if either operand is nil.
//	– ErrDimensionMismatch if A's column count differs from B's row count.
//	– ErrInvalidArgument   if ntop < 1, a bound is NaN, or upperBound < lowerBound.
//	– ErrAllocationFailure if the result cannot be sized (capacity overflow).
//
// Options:
//
//	– Workers: number of goroutines processing row ranges (1 = sequential).
package topn

import "errors"

// Sentinel errors returned by the topn kernels. All are detected eagerly,
// before the first pass over input data; failure is all-or-nothing per call.
var (
	// ErrNilMatrix indicates that a nil *csr.Matrix operand was passed.
	ErrNilMatrix = errors.New("topn: nil matrix operand")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// A is m×k and B must be k×n.
	ErrDimensionMismatch = errors.New("topn: dimension mismatch")

	// ErrInvalidArgument indicates a nonsensical parameter: ntop < 1,
	// a NaN bound, or upperBound < lowerBound. The returned error wraps
	// this sentinel with the offending detail; match via errors.Is.
	ErrInvalidArgument = errors.New("topn: invalid argument")

	// ErrAllocationFailure indicates the result buffers cannot be sized —
	// the rows×ntop capacity estimate overflows. Surfaced, not recovered.
	ErrAllocationFailure = errors.New("topn: result allocation failure")
)

// DefaultWorkers is the number of row-range workers when none is configured.
// One worker means the kernel runs sequentially on the calling goroutine.
const DefaultWorkers = 1

// panicBadWorkers is the stable message for a nonsensical worker count.
const panicBadWorkers = "topn: WithWorkers: n must be >= 1"

// Options configures kernel execution. The zero value is NOT ready to use;
// obtain defaults via DefaultOptions and override with functional options.
//
// Workers – number of goroutines that process contiguous row ranges of A.
// Parallel execution is byte-identical to sequential: each worker writes a
// disjoint output segment, merged after the wait.
type Options struct {
	Workers int // >= 1; effective count is capped at the row count
}

// Option represents a functional option for configuring a kernel call.
type Option func(*Options)

// WithWorkers sets the number of row-range workers.
// n must be >= 1; nonsensical values panic (programmer error, same policy
// as option constructors elsewhere in the module).
// A useful production choice is runtime.GOMAXPROCS(0) for large inputs.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use as a starting point for functional overrides.
//
// Defaults:
//   - Workers: DefaultWorkers (sequential execution).
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers}
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
