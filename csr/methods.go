// SPDX-License-Identifier: MIT

// Package csr: structural helpers over an existing Matrix.
// Clone and Transpose are pure (fresh result, receiver untouched);
// NormalizeRows is the one explicit mutator in the package.
package csr

import "math"

// Clone returns a deep copy of m. The copy shares no storage with the
// receiver.
// Errors: ErrNilMatrix for a nil receiver.
// Complexity: O(nnz + rows).
func (m *Matrix) Clone() (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: append(make([]int, 0, len(m.rowPtr)), m.rowPtr...),
		colInd: append(make([]int, 0, len(m.colInd)), m.colInd...),
		values: append(make([]float64, 0, len(m.values)), m.values...),
	}, nil
}

// Transpose returns mᵀ as a fresh cols×rows Matrix using the standard
// CSR→CSC counting transpose. Output rows are column-sorted regardless of
// the receiver's row order.
//
// Stage 1 (Count): tally entries per output row (input column).
// Stage 2 (Offsets): prefix-sum the counts into row pointers.
// Stage 3 (Scatter): place every entry at its output row's write head.
//
// Errors: ErrNilMatrix for a nil receiver.
// Complexity: O(nnz + rows + cols) time, O(nnz + cols) space.
func (m *Matrix) Transpose() (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	nnz := len(m.colInd)
	rowPtr := make([]int, m.cols+1)
	colInd := make([]int, nnz)
	values := make([]float64, nnz)

	// Count entries per output row.
	for _, j := range m.colInd {
		rowPtr[j+1]++
	}
	// Prefix sums turn counts into offsets.
	for j := 0; j < m.cols; j++ {
		rowPtr[j+1] += rowPtr[j]
	}

	// Scatter; cursor tracks each output row's write head.
	cursor := append(make([]int, 0, m.cols), rowPtr[:m.cols]...)
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			j := m.colInd[p]
			dst := cursor[j]
			colInd[dst] = i // input row becomes output column
			values[dst] = m.values[p]
			cursor[j]++
		}
	}

	return &Matrix{rows: m.cols, cols: m.rows, rowPtr: rowPtr, colInd: colInd, values: values}, nil
}

// NormalizeRows scales every row of m in place to unit L2 norm, the standard
// preprocessing step that turns A·Bᵀ dot products into cosine similarities.
// Rows with zero norm are left untouched (there is nothing to scale).
//
// Errors: ErrNilMatrix for a nil receiver.
// Complexity: O(nnz).
func (m *Matrix) NormalizeRows() error {
	if m == nil {
		return ErrNilMatrix
	}

	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		// Accumulate the squared norm of row i.
		var sq float64
		for p := lo; p < hi; p++ {
			sq += m.values[p] * m.values[p]
		}
		if sq == 0 {
			continue // empty or all-zero row: nothing to scale
		}
		inv := 1 / math.Sqrt(sq)
		for p := lo; p < hi; p++ {
			m.values[p] *= inv
		}
	}

	return nil
}

// MaxRowNNZ returns the largest stored-entry count over all rows.
// Errors: ErrNilMatrix for a nil receiver.
// Complexity: O(rows).
func (m *Matrix) MaxRowNNZ() (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}

	best := 0
	for i := 0; i < m.rows; i++ {
		if n := m.rowPtr[i+1] - m.rowPtr[i]; n > best {
			best = n
		}
	}

	return best, nil
}
