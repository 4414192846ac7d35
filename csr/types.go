// SPDX-License-Identifier: MIT

// Package csr: the CSR domain type and its cheap accessors.
// This file intentionally contains ONLY the Matrix struct and O(1)/O(row)
// read accessors. Errors live in errors.go, construction in csr.go,
// structural helpers in methods.go, per the package conventions.
package csr

// Matrix is an immutable-by-convention Compressed Sparse Row matrix.
//
// Representation (the classic three-array CSR triple):
//
//	rowPtr — len rows+1; row i owns the half-open span [rowPtr[i], rowPtr[i+1])
//	colInd — column index of each stored entry, unique within a row
//	values — stored entry values, len(values) == len(colInd)
//
// Invariants (enforced by New unless WithNoValidate):
//   - rowPtr[0] == 0, rowPtr is monotone non-decreasing, rowPtr[rows] == nnz
//   - every colInd[p] ∈ [0, cols)
//   - columns are unique within each row (order is NOT required)
//   - values are finite under the numeric policy
//
// Mutating methods (NormalizeRows) are explicit; everything else treats the
// receiver as read-only, so a Matrix may be shared across goroutines for
// concurrent reads.
type Matrix struct {
	rows, cols int       // logical shape, both > 0
	rowPtr     []int     // row pointer array, len == rows+1
	colInd     []int     // column indices, len == nnz
	values     []float64 // stored values, len == nnz
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored (explicit) entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.colInd) }

// RowNNZ returns the number of stored entries in row i.
// Returns ErrOutOfRange when i is outside [0, rows).
// Complexity: O(1).
func (m *Matrix) RowNNZ(i int) (int, error) {
	// Bounds check first; accessors fail closed, never panic.
	if i < 0 || i >= m.rows {
		return 0, ErrOutOfRange
	}

	return m.rowPtr[i+1] - m.rowPtr[i], nil
}

// Row returns the column-index and value slices of row i.
// The returned slices alias internal storage and MUST be treated as
// read-only; mutate via Clone instead.
// Complexity: O(1).
func (m *Matrix) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.rows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1] // span owned by row i

	return m.colInd[lo:hi], m.values[lo:hi], nil
}

// At returns the value stored at (i, j), or 0 when no entry exists.
// Rows are not required to be column-sorted, so lookup is a linear scan
// over the row's stored entries.
// Returns ErrOutOfRange for indices outside the matrix shape.
// Complexity: O(RowNNZ(i)).
func (m *Matrix) At(i, j int) (float64, error) {
	// Validate row index.
	if i < 0 || i >= m.rows {
		return 0, ErrOutOfRange
	}
	// Validate column index.
	if j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	// Scan the row span for column j.
	for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
		if m.colInd[p] == j {
			return m.values[p], nil
		}
	}

	// Structural zero.
	return 0, nil
}

// Raw exposes the internal CSR triple without copying.
// The returned slices alias internal storage and MUST be treated as
// read-only; they exist so kernels can walk the matrix at full speed.
// Complexity: O(1).
func (m *Matrix) Raw() (rowPtr, colInd []int, values []float64) {
	return m.rowPtr, m.colInd, m.values
}
