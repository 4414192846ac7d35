// SPDX-License-Identifier: MIT

// Package csr: constructors. New ingests a caller-supplied CSR triple,
// Zero builds an empty matrix, FromCOO converts coordinate triples.
// Validation is delegated to validators.go; numeric policy and ownership
// are controlled by options.go.
package csr

import "sort"

// New builds a Matrix from a caller-supplied CSR triple.
//
// Stage 1 (Validate): shape, then structural triple checks and the numeric
// policy, unless relaxed via options.
// Stage 2 (Ingest): copy the arrays (default) or adopt them (WithNoCopy).
// Stage 3 (Finalize): return the assembled Matrix.
//
// Errors:
//   - ErrBadShape for rows<=0 or cols<=0.
//   - ErrBadRowPointers / ErrBadColumnIndex / ErrDuplicateColumn /
//     ErrLengthMismatch for structural violations.
//   - ErrNaNInf for non-finite values under the numeric policy.
//
// Complexity: O(nnz + cols) time, O(nnz) space (O(1) extra with WithNoCopy).
func New(rows, cols int, rowPtr, colInd []int, values []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Shape is always validated; everything downstream indexes by it.
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	if o.validate {
		if err := validateTriple(rows, cols, rowPtr, colInd, values); err != nil {
			return nil, err
		}
	}
	if o.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return nil, err
		}
	}

	m := &Matrix{rows: rows, cols: cols}
	if o.copyData {
		// Defensive copies: the Matrix never aliases caller storage.
		m.rowPtr = append(make([]int, 0, len(rowPtr)), rowPtr...)
		m.colInd = append(make([]int, 0, len(colInd)), colInd...)
		m.values = append(make([]float64, 0, len(values)), values...)
	} else {
		// Ownership transfer; caller promised not to touch these again.
		m.rowPtr = rowPtr
		m.colInd = colInd
		m.values = values
	}

	return m, nil
}

// Zero builds a rows×cols matrix with no stored entries.
// Errors: ErrBadShape for non-positive dimensions.
// Complexity: O(rows).
func Zero(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Matrix{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1), // all-zero pointers: every row is empty
		colInd: []int{},
		values: []float64{},
	}, nil
}

// FromCOO builds a Matrix from coordinate triples (rowIdx[p], colIdx[p],
// vals[p]). Duplicate (row, col) coordinates are summed, matching the
// conventional COO→CSR compaction. Output rows are column-sorted.
//
// Stage 1 (Validate): shape, triple lengths, index ranges, numeric policy.
// Stage 2 (Bucket): counting pass over rows, then scatter entries per row.
// Stage 3 (Compact): sort each row by column and merge duplicates by summing.
//
// Errors: ErrBadShape, ErrLengthMismatch, ErrOutOfRange (coordinate outside
// the shape), ErrNaNInf.
// Complexity: O(nnz·log r̄ + rows) where r̄ is the mean row fill.
func FromCOO(rows, cols int, rowIdx, colIdx []int, vals []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	// All three coordinate arrays must describe the same entries.
	if len(rowIdx) != len(colIdx) || len(colIdx) != len(vals) {
		return nil, validatorErrorf("FromCOO", ErrLengthMismatch)
	}
	// Coordinates must land inside the shape.
	for p := range rowIdx {
		if rowIdx[p] < 0 || rowIdx[p] >= rows || colIdx[p] < 0 || colIdx[p] >= cols {
			return nil, validatorErrorf("FromCOO", ErrOutOfRange)
		}
	}
	if o.validateNaNInf {
		if err := validateFinite(vals); err != nil {
			return nil, err
		}
	}

	// Counting pass: how many raw entries land in each row.
	rowPtr := make([]int, rows+1)
	for _, i := range rowIdx {
		rowPtr[i+1]++
	}
	for i := 0; i < rows; i++ {
		rowPtr[i+1] += rowPtr[i] // prefix sums turn counts into offsets
	}

	// Scatter pass: place every raw entry into its row bucket.
	colInd := make([]int, len(colIdx))
	values := make([]float64, len(vals))
	cursor := append([]int{}, rowPtr[:rows]...) // per-row write heads
	for p := range rowIdx {
		dst := cursor[rowIdx[p]]
		colInd[dst] = colIdx[p]
		values[dst] = vals[p]
		cursor[rowIdx[p]]++
	}

	// Compact pass: per-row column sort, then in-place duplicate merge.
	nnz := 0
	outPtr := make([]int, rows+1)
	for i := 0; i < rows; i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		row := rowSlice{cols: colInd[lo:hi], vals: values[lo:hi]}
		sort.Sort(row)
		for p := lo; p < hi; p++ {
			if nnz > outPtr[i] && colInd[nnz-1] == colInd[p] {
				values[nnz-1] += values[p] // duplicate coordinate: sum
				continue
			}
			colInd[nnz] = colInd[p]
			values[nnz] = values[p]
			nnz++
		}
		outPtr[i+1] = nnz
	}

	return &Matrix{
		rows:   rows,
		cols:   cols,
		rowPtr: outPtr,
		colInd: colInd[:nnz:nnz],
		values: values[:nnz:nnz],
	}, nil
}

// rowSlice sorts a row's (column, value) pairs by column in lockstep.
type rowSlice struct {
	cols []int
	vals []float64
}

func (r rowSlice) Len() int           { return len(r.cols) }
func (r rowSlice) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowSlice) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}
