// Package csr provides validated Compressed Sparse Row (CSR) matrices:
// the three-array representation (row pointers, column indices, values)
// used by every kernel in sparsetopn.
//
// 🚀 What is csr?
//
//	A small, strict data-model package:
//	  • New / Zero / FromCOO — validating constructors
//	  • FromDense / ToDense  — gonum.org/v1/gonum/mat interop
//	  • Clone / Transpose / NormalizeRows — structural helpers
//	  • Rows / Cols / NNZ / RowNNZ / Row / At — accessors
//
// ✨ Guarantees:
//
//   - Structural invariants are enforced at construction: monotone row
//     pointers, in-range column indices, unique columns per row, matching
//     array lengths, finite values under the numeric policy.
//   - Column order inside a row is NOT an invariant: kernels such as
//     topn emit rows ordered by score, not by column. Constructors that
//     build rows themselves (FromCOO, FromDense, Transpose) emit
//     column-sorted rows.
//   - Matrices are never shared implicitly: New copies its inputs unless
//     WithNoCopy is requested, and Clone is always a deep copy.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sparsetopn/csr"
//
//	a, err := csr.New(2, 3,
//	    []int{0, 2, 3},        // row pointers
//	    []int{0, 2, 1},        // column indices
//	    []float64{1, 2, 3},    // values
//	)
//
// All user-triggered failures are sentinel errors (errors.Is friendly);
// the package never panics on bad data.
package csr
