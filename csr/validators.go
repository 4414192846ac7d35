// SPDX-License-Identifier: MIT
// Package csr: canonical validation checks.
//
// Purpose:
//  - Provide a single source of truth for structural CSR validation.
//  - Keep constructors minimal by delegating shape/pointer/index checks here.
//  - Return plain sentinel errors wrapped with a validator tag so call sites
//    stay grep-able while errors.Is keeps matching.

package csr

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures rows > 0 and cols > 0.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateShape", ErrBadShape)
	}

	return nil
}

// validateTriple checks the full structural CSR invariant set over a triple:
// pointer length and monotonicity, array-length agreement, column ranges and
// per-row column uniqueness.
//
// Assumes shape was already validated. The pointer array is vetted in full
// before any row span is walked, so malformed pointers can never drive an
// out-of-bounds read of the entry arrays. Uses a column stamp array so the
// uniqueness check is O(nnz) with O(cols) scratch, no per-row maps.
// Complexity: O(nnz + rows + cols) time, O(cols) space.
func validateTriple(rows, cols int, rowPtr, colInd []int, values []float64) error {
	// Pointer array must have exactly rows+1 entries.
	if len(rowPtr) != rows+1 {
		return validatorErrorf("validateTriple: len(rowPtr)", ErrBadRowPointers)
	}
	// The first pointer anchors the first row at offset zero.
	if rowPtr[0] != 0 {
		return validatorErrorf("validateTriple: rowPtr[0]", ErrBadRowPointers)
	}
	// Column and value arrays describe the same entries.
	if len(colInd) != len(values) {
		return validatorErrorf("validateTriple", ErrLengthMismatch)
	}
	// The last pointer must account for every stored entry.
	if rowPtr[rows] != len(colInd) {
		return validatorErrorf("validateTriple: rowPtr[rows]", ErrBadRowPointers)
	}
	// Vet the entire pointer array before any span is dereferenced: a row
	// span may only be walked once every pointer is known to be monotone
	// and inside the entry arrays, otherwise an overshooting intermediate
	// pointer would index out of bounds below.
	for i := 0; i < rows; i++ {
		// Row spans must never step backwards.
		if rowPtr[i+1] < rowPtr[i] {
			return validatorErrorf("validateTriple: monotonicity", ErrBadRowPointers)
		}
		// Every span must end inside the stored entries.
		if rowPtr[i+1] > len(colInd) {
			return validatorErrorf("validateTriple: span bounds", ErrBadRowPointers)
		}
	}

	// stamp[j] holds 1+<last row that used column j>; zero means "never used".
	stamp := make([]int, cols)
	for i := 0; i < rows; i++ {
		for p := rowPtr[i]; p < rowPtr[i+1]; p++ {
			j := colInd[p]
			// Every column index must land inside the matrix.
			if j < 0 || j >= cols {
				return validatorErrorf("validateTriple", ErrBadColumnIndex)
			}
			// A repeated stamp within the same row is a duplicate column.
			if stamp[j] == i+1 {
				return validatorErrorf("validateTriple", ErrDuplicateColumn)
			}
			stamp[j] = i + 1
		}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf values under the numeric policy.
// Complexity: O(nnz).
func validateFinite(values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("validateFinite", ErrNaNInf)
		}
	}

	return nil
}
