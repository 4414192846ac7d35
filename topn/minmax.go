// Package topn: the true min/max variant and the fill probe.
package topn

import (
	"github.com/katalvlaran/sparsetopn/csr"
)

// TrueMinMaxTopN computes C = A·B restricted, per row, to the at most ntop
// highest-scoring entries with lowerBound <= score <= upperBound.
//
// The "true" in the name is the soundness guarantee: both bounds are
// evaluated only on fully accumulated dot products. A kernel that pruned on
// partial sums could discard an entry whose running sum exceeded upperBound
// even though later terms would have brought the final score back inside the
// band — this implementation structurally cannot (the filter runs in the
// drain pass, after the row's accumulation loop has finished).
//
// Contract: as TopN, with the additional upper bound.
//
// Errors: as TopN, plus ErrInvalidArgument when upperBound < lowerBound or
// upperBound is NaN.
func TrueMinMaxTopN(a, b *csr.Matrix, ntop int, lowerBound, upperBound float64, opts ...Option) (*csr.Matrix, error) {
	c, _, err := compute("TrueMinMaxTopN", a, b, ntop, lowerBound, upperBound, true, opts)

	return c, err
}

// MaxRowFill returns the maximum number of distinct product columns over all
// rows of A·B — the fill every row would have with unlimited ntop. Values
// are never read: this is a structure-only probe for sizing ntop (or result
// buffers) ahead of a selecting call.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(Σ fillᵢ) time, O(cols) space.
func MaxRowFill(a, b *csr.Matrix) (int, error) {
	if err := validateOperands("MaxRowFill", a, b); err != nil {
		return 0, err
	}

	aPtr, aInd, _ := a.Raw()
	bPtr, bInd, _ := b.Raw()

	// stamp[k] == i+1 marks column k as already counted for row i;
	// stamping avoids any per-row reset work.
	stamp := make([]int, b.Cols())
	best := 0
	for i := 0; i < a.Rows(); i++ {
		fill := 0
		for p := aPtr[i]; p < aPtr[i+1]; p++ {
			j := aInd[p]
			for q := bPtr[j]; q < bPtr[j+1]; q++ {
				if k := bInd[q]; stamp[k] != i+1 {
					stamp[k] = i + 1
					fill++
				}
			}
		}
		if fill > best {
			best = fill
		}
	}

	return best, nil
}
