package csr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsetopn/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a matrix or fails the test; keeps table bodies short.
func mustNew(t *testing.T, rows, cols int, ptr, ind []int, val []float64) *csr.Matrix {
	t.Helper()
	m, err := csr.New(rows, cols, ptr, ind, val)
	require.NoError(t, err, "fixture matrix must construct")

	return m
}

// TestNew_ValidTriple verifies a well-formed triple constructs and the
// accessors report the expected shape and entries.
func TestNew_ValidTriple(t *testing.T) {
	// A = [[1,0,2],[0,3,0]]
	m := mustNew(t, 2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 2, 3})

	assert.Equal(t, 2, m.Rows(), "row count")
	assert.Equal(t, 3, m.Cols(), "column count")
	assert.Equal(t, 3, m.NNZ(), "stored entries")

	n0, err := m.RowNNZ(0)
	assert.NoError(t, err)
	assert.Equal(t, 2, n0, "row 0 holds two entries")

	v, err := m.At(0, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v, "stored entry readable")

	v, err = m.At(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v, "structural zero reads as 0")
}

// TestNew_BadShape ensures non-positive dimensions error with ErrBadShape.
func TestNew_BadShape(t *testing.T) {
	_, err := csr.New(0, 3, []int{0}, nil, nil)
	assert.ErrorIs(t, err, csr.ErrBadShape, "zero rows must error")

	_, err = csr.New(2, -1, []int{0, 0, 0}, nil, nil)
	assert.ErrorIs(t, err, csr.ErrBadShape, "negative cols must error")
}

// TestNew_StructuralViolations walks every structural invariant of the
// CSR triple and checks the matching sentinel.
func TestNew_StructuralViolations(t *testing.T) {
	cases := []struct {
		name string
		ptr  []int
		ind  []int
		val  []float64
		want error
	}{
		{"pointer length", []int{0, 2}, []int{0, 1}, []float64{1, 2}, csr.ErrBadRowPointers},
		{"nonzero first pointer", []int{1, 2, 2}, []int{0}, []float64{1}, csr.ErrBadRowPointers},
		{"decreasing pointers", []int{0, 2, 1}, []int{0, 1}, []float64{1, 2}, csr.ErrBadRowPointers},
		{"overshooting intermediate pointer", []int{0, 3, 2}, []int{0, 1}, []float64{1, 2}, csr.ErrBadRowPointers},
		{"final pointer mismatch", []int{0, 1, 3}, []int{0, 1}, []float64{1, 2}, csr.ErrBadRowPointers},
		{"column/value mismatch", []int{0, 1, 2}, []int{0, 1}, []float64{1}, csr.ErrLengthMismatch},
		{"column out of range", []int{0, 1, 2}, []int{0, 3}, []float64{1, 2}, csr.ErrBadColumnIndex},
		{"negative column", []int{0, 1, 2}, []int{0, -1}, []float64{1, 2}, csr.ErrBadColumnIndex},
		{"duplicate column in row", []int{0, 2, 2}, []int{1, 1}, []float64{1, 2}, csr.ErrDuplicateColumn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.New(2, 3, tc.ptr, tc.ind, tc.val)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_SameColumnAcrossRows confirms uniqueness is per row: the same
// column may of course appear in different rows.
func TestNew_SameColumnAcrossRows(t *testing.T) {
	_, err := csr.New(2, 3, []int{0, 1, 2}, []int{1, 1}, []float64{1, 2})
	assert.NoError(t, err, "column 1 in both rows is legal")
}

// TestNew_NumericPolicy checks NaN/Inf rejection and its explicit opt-out.
func TestNew_NumericPolicy(t *testing.T) {
	ptr, ind := []int{0, 1, 1}, []int{0}

	_, err := csr.New(2, 3, ptr, ind, []float64{math.NaN()})
	assert.ErrorIs(t, err, csr.ErrNaNInf, "NaN rejected by default")

	_, err = csr.New(2, 3, ptr, ind, []float64{math.Inf(1)})
	assert.ErrorIs(t, err, csr.ErrNaNInf, "+Inf rejected by default")

	_, err = csr.New(2, 3, ptr, ind, []float64{math.NaN()}, csr.WithNoValidateNaNInf())
	assert.NoError(t, err, "policy opt-out admits NaN")
}

// TestNew_CopySemantics verifies the default defensive copy and the
// WithNoCopy ownership transfer.
func TestNew_CopySemantics(t *testing.T) {
	ptr := []int{0, 1, 1}
	ind := []int{0}
	val := []float64{7}

	copied := mustNew(t, 2, 3, ptr, ind, val)
	val[0] = 99 // caller mutates after construction
	v, err := copied.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "default copy isolates the matrix from the caller")

	adoptedVal := []float64{7}
	adopted, err := csr.New(2, 3, []int{0, 1, 1}, []int{0}, adoptedVal, csr.WithNoCopy())
	require.NoError(t, err)
	adoptedVal[0] = 99
	v, err = adopted.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 99.0, v, "WithNoCopy adopts the caller's storage")
}

// TestZero builds an empty matrix and checks every row is empty.
func TestZero(t *testing.T) {
	m, err := csr.Zero(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, m.NNZ(), "no stored entries")
	for i := 0; i < 3; i++ {
		n, rerr := m.RowNNZ(i)
		assert.NoError(t, rerr)
		assert.Zero(t, n, "row %d must be empty", i)
	}

	_, err = csr.Zero(0, 4)
	assert.ErrorIs(t, err, csr.ErrBadShape)
}

// TestFromCOO_SumsDuplicatesAndSorts checks the COO→CSR compaction:
// duplicates summed, rows column-sorted.
func TestFromCOO_SumsDuplicatesAndSorts(t *testing.T) {
	// Entries deliberately unsorted, with (0,2) appearing twice.
	m, err := csr.FromCOO(2, 3,
		[]int{0, 1, 0, 0},
		[]int{2, 0, 0, 2},
		[]float64{1, 5, 4, 2},
	)
	require.NoError(t, err)

	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cols, "row 0 column-sorted")
	assert.Equal(t, []float64{4, 3}, vals, "duplicate (0,2) summed to 3")

	cols, vals, err = m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cols)
	assert.Equal(t, []float64{5}, vals)
}

// TestFromCOO_Validation exercises coordinate and length failures.
func TestFromCOO_Validation(t *testing.T) {
	_, err := csr.FromCOO(2, 3, []int{0, 2}, []int{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, csr.ErrOutOfRange, "row coordinate beyond shape")

	_, err = csr.FromCOO(2, 3, []int{0}, []int{3}, []float64{1})
	assert.ErrorIs(t, err, csr.ErrOutOfRange, "column coordinate beyond shape")

	_, err = csr.FromCOO(2, 3, []int{0, 1}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, csr.ErrLengthMismatch, "triple arrays must agree in length")
}

// TestAccessors_OutOfRange confirms indexers fail closed with ErrOutOfRange.
func TestAccessors_OutOfRange(t *testing.T) {
	m := mustNew(t, 2, 3, []int{0, 1, 1}, []int{0}, []float64{1})

	_, err := m.RowNNZ(2)
	assert.ErrorIs(t, err, csr.ErrOutOfRange)

	_, _, err = m.Row(-1)
	assert.ErrorIs(t, err, csr.ErrOutOfRange)

	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, csr.ErrOutOfRange)

	_, err = m.At(5, 0)
	assert.ErrorIs(t, err, csr.ErrOutOfRange)
}

// TestWithEpsilon_PanicsOnNonsense pins the option-constructor policy:
// nonsensical parameters are programmer errors and panic.
func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { csr.WithEpsilon(-1) }, "negative eps must panic")
	assert.Panics(t, func() { csr.WithEpsilon(math.NaN()) }, "NaN eps must panic")
}
