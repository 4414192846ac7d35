package csr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsetopn/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFromDense_Sparsifies checks the dense→CSR sweep: exact zeros dropped,
// everything else kept, rows column-sorted.
func TestFromDense_Sparsifies(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{
		1, 0, 2,
		0, 3, 0,
	})

	m, err := csr.FromDense(d)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 3, m.NNZ(), "three nonzero cells survive")

	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cols)
	assert.Equal(t, []float64{1, 2}, vals)
}

// TestFromDense_Epsilon verifies WithEpsilon widens the zero threshold.
func TestFromDense_Epsilon(t *testing.T) {
	d := mat.NewDense(1, 3, []float64{1e-12, 0.5, -1e-12})

	m, err := csr.FromDense(d, csr.WithEpsilon(1e-9))
	require.NoError(t, err)
	assert.Equal(t, 1, m.NNZ(), "sub-epsilon noise dropped")

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

// TestFromDense_Validation covers nil input and the numeric policy.
func TestFromDense_Validation(t *testing.T) {
	_, err := csr.FromDense(nil)
	assert.ErrorIs(t, err, csr.ErrNilMatrix)

	d := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = csr.FromDense(d)
	assert.ErrorIs(t, err, csr.ErrNaNInf, "NaN cell rejected by default")

	m, err := csr.FromDense(d, csr.WithNoValidateNaNInf())
	require.NoError(t, err, "policy opt-out admits the NaN cell")
	assert.Equal(t, 2, m.NNZ())
}

// TestDenseRoundTrip pins FromDense∘ToDense as the identity on dense data.
func TestDenseRoundTrip(t *testing.T) {
	d := mat.NewDense(3, 4, []float64{
		0, 1, 0, 2,
		0, 0, 0, 0,
		3, 0, 4, 5,
	})

	m, err := csr.FromDense(d)
	require.NoError(t, err)
	back, err := m.ToDense()
	require.NoError(t, err)

	assert.True(t, mat.Equal(d, back), "round trip must reproduce the dense matrix")

	var nilM *csr.Matrix
	_, err = nilM.ToDense()
	assert.ErrorIs(t, err, csr.ErrNilMatrix)
}
