// SPDX-License-Identifier: MIT

// Package csr: dense interop with gonum.org/v1/gonum/mat.
// FromDense sparsifies any mat.Matrix; ToDense materializes a *mat.Dense.
// These are boundary adapters: inside the module everything stays CSR.
package csr

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDense sparsifies d into a fresh Matrix, dropping entries with
// |v| <= eps (DefaultEpsilon keeps everything that is not exactly zero;
// widen via WithEpsilon for noisy data). Output rows are column-sorted.
//
// Stage 1 (Validate): non-nil input, positive shape, numeric policy.
// Stage 2 (Sweep): row-major scan appending qualifying entries.
//
// Errors: ErrNilMatrix for a nil input, ErrBadShape for an empty one,
// ErrNaNInf for non-finite entries under the numeric policy.
// Complexity: O(rows·cols) time, O(nnz) result space.
func FromDense(d mat.Matrix, opts ...Option) (*Matrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)

	rows, cols := d.Dims()
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	rowPtr := make([]int, rows+1)
	colInd := make([]int, 0, rows) // grows as entries qualify
	values := make([]float64, 0, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			// Numeric policy applies to every dense cell, kept or dropped.
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, validatorErrorf("FromDense", ErrNaNInf)
			}
			if math.Abs(v) <= o.eps {
				continue // structural zero under the threshold
			}
			colInd = append(colInd, j)
			values = append(values, v)
		}
		rowPtr[i+1] = len(colInd)
	}

	return &Matrix{rows: rows, cols: cols, rowPtr: rowPtr, colInd: colInd, values: values}, nil
}

// ToDense materializes m as a fresh *mat.Dense. Unstored positions are zero.
// Errors: ErrNilMatrix for a nil receiver.
// Complexity: O(rows·cols) time and space.
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	d := mat.NewDense(m.rows, m.cols, nil) // zero-initialized backing
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			d.Set(i, m.colInd[p], m.values[p])
		}
	}

	return d, nil
}
