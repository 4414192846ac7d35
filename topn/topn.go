// Package topn: public entry points for the bounded-selection product.
package topn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsetopn/csr"
)

// TopN computes C = A·B restricted, for each row, to the at most ntop
// highest-scoring entries with score >= lowerBound.
//
// Contract:
//   - Every result row holds ≤ ntop entries, each with score >= lowerBound
//     (the threshold is inclusive: a score equal to lowerBound is retained).
//   - Rows are ordered by descending score; ties by ascending column index,
//     so identical inputs always produce identical output.
//   - Pure function: operands are read-only for the call, the result is a
//     fresh Matrix owned solely by the caller, no state survives the call.
//
// Errors:
//   - ErrNilMatrix          if a or b is nil.
//   - ErrDimensionMismatch  if a.Cols() != b.Rows().
//   - ErrInvalidArgument    if ntop < 1 or lowerBound is NaN.
//   - ErrAllocationFailure  if the rows×ntop capacity estimate overflows.
//
// Complexity: O(Σ fillᵢ·log ntop) time, O(cols) per worker.
func TopN(a, b *csr.Matrix, ntop int, lowerBound float64, opts ...Option) (*csr.Matrix, error) {
	c, _, err := compute("TopN", a, b, ntop, lowerBound, 0, false, opts)

	return c, err
}

// TopNWithFill is TopN plus the maximum unbounded row fill: the largest
// number of distinct product columns any row of A·B would have with
// unlimited ntop. A fill ≤ ntop proves the result was not truncated;
// a larger fill tells callers exactly which ntop would be lossless.
//
// Same contract and errors as TopN.
func TopNWithFill(a, b *csr.Matrix, ntop int, lowerBound float64, opts ...Option) (*csr.Matrix, int, error) {
	return compute("TopNWithFill", a, b, ntop, lowerBound, 0, false, opts)
}

// compute is the shared driver behind every selecting entry point.
//
// Stage 1 (Validate): operands, ntop, bounds — eagerly, before any pass over
// data; failure is all-or-nothing.
// Stage 2 (Plan): resolve options, cap workers at the row count, guard the
// capacity estimate.
// Stage 3 (Execute): run the kernel sequentially or over the worker pool.
// Stage 4 (Assemble): merge range results into a fresh CSR triple.
func compute(op string, a, b *csr.Matrix, ntop int, lower, upper float64, bounded bool, opts []Option) (*csr.Matrix, int, error) {
	// Validate operands and parameters before touching any data.
	if err := validateOperands(op, a, b); err != nil {
		return nil, 0, err
	}
	if err := validateNTop(op, ntop); err != nil {
		return nil, 0, err
	}
	if err := validateBounds(op, lower, upper, bounded); err != nil {
		return nil, 0, err
	}

	rows, cols := a.Rows(), b.Cols()
	// Guard the capacity estimate; Go cannot trap heap exhaustion, but an
	// overflowing size is computable and must fail closed.
	if ntop > math.MaxInt/rows {
		return nil, 0, fmt.Errorf("%s: rows=%d ntop=%d: %w", op, rows, ntop, ErrAllocationFailure)
	}

	// Build the kernel over the operands' raw storage (read-only aliasing).
	aPtr, aInd, aVal := a.Raw()
	bPtr, bInd, bVal := b.Raw()
	k := &kernel{
		aPtr: aPtr, aInd: aInd, aVal: aVal,
		bPtr: bPtr, bInd: bInd, bVal: bVal,
		cols:    cols,
		ntop:    ntop,
		lower:   lower,
		upper:   upper,
		bounded: bounded,
	}

	// Resolve worker count; more workers than rows is pointless.
	o := gatherOptions(opts...)
	workers := o.Workers
	if workers > rows {
		workers = rows
	}

	var results []rangeResult
	if workers <= 1 {
		// Sequential: a single range on the calling goroutine.
		results = []rangeResult{k.run(0, rows)}
	} else {
		var err error
		if results, err = runRanges(k, rows, workers); err != nil {
			return nil, 0, err
		}
	}

	c, err := assemble(rows, cols, results)
	if err != nil {
		return nil, 0, err
	}
	maxFill := 0
	for _, r := range results {
		if r.maxFill > maxFill {
			maxFill = r.maxFill
		}
	}

	return c, maxFill, nil
}

// assemble concatenates range results (ordered by row range) into a fresh
// CSR matrix. The triple is built by this package and handed over without
// revalidation or copying.
// Complexity: O(nnz + rows).
func assemble(rows, cols int, results []rangeResult) (*csr.Matrix, error) {
	nnz := 0
	for _, r := range results {
		nnz += len(r.cols)
	}

	rowPtr := make([]int, rows+1)
	colInd := make([]int, 0, nnz)
	values := make([]float64, 0, nnz)
	i := 1
	for _, r := range results {
		for _, c := range r.counts {
			rowPtr[i] = rowPtr[i-1] + c // running prefix over kept counts
			i++
		}
		colInd = append(colInd, r.cols...)
		values = append(values, r.vals...)
	}

	// Structure is correct by construction; scores may legitimately reach
	// ±Inf when huge finite inputs overflow the product, so the finite-value
	// policy is relaxed for the hand-over.
	return csr.New(rows, cols, rowPtr, colInd, values,
		csr.WithNoValidate(), csr.WithNoCopy(), csr.WithNoValidateNaNInf())
}

// validateOperands checks operand presence and shape compatibility.
func validateOperands(op string, a, b *csr.Matrix) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%s: A(%d×%d)·B(%d×%d): %w",
			op, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// validateNTop rejects non-positive ntop.
func validateNTop(op string, ntop int) error {
	if ntop < 1 {
		return fmt.Errorf("%s: ntop=%d must be >= 1: %w", op, ntop, ErrInvalidArgument)
	}

	return nil
}

// validateBounds rejects NaN bounds and, for the bounded variant, an upper
// bound below the lower bound.
func validateBounds(op string, lower, upper float64, bounded bool) error {
	if math.IsNaN(lower) {
		return fmt.Errorf("%s: lowerBound is NaN: %w", op, ErrInvalidArgument)
	}
	if !bounded {
		return nil
	}
	if math.IsNaN(upper) {
		return fmt.Errorf("%s: upperBound is NaN: %w", op, ErrInvalidArgument)
	}
	if upper < lower {
		return fmt.Errorf("%s: upperBound=%g < lowerBound=%g: %w", op, upper, lower, ErrInvalidArgument)
	}

	return nil
}
