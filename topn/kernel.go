// Package topn: the row-range kernel.
//
// One kernel value describes a whole call (both operands' raw CSR arrays
// plus the selection parameters); run executes it over a contiguous row
// range into range-local buffers. Ranges never share mutable state, so the
// same kernel value can be run concurrently over disjoint ranges.
package topn

// preallocRowCap caps the per-row capacity hint used when sizing range
// buffers, so a huge ntop does not balloon the initial allocation.
const preallocRowCap = 16

// kernel is the immutable description of one top-n call.
// All slices alias the operands' internal storage (read-only for the call).
type kernel struct {
	aPtr, aInd []int     // A: row pointers and column indices
	aVal       []float64 // A: values
	bPtr, bInd []int     // B: row pointers and column indices
	bVal       []float64 // B: values
	cols       int       // columns of B (= columns of C)
	ntop       int       // max retained entries per row, >= 1
	lower      float64   // inclusive lower score bound
	upper      float64   // inclusive upper score bound (bounded variant)
	bounded    bool      // whether the upper bound is active
}

// rangeResult holds one worker's output: per-row kept counts plus the
// concatenated (column, score) pairs for the rows of its range, and the
// largest unbounded row fill observed.
type rangeResult struct {
	counts  []int     // kept entries per row, len == hi-lo
	cols    []int     // result columns, row-major
	vals    []float64 // result scores, row-major
	maxFill int       // max distinct product columns over the range's rows
}

// run executes the kernel over rows [lo, hi) of A.
//
// Per row: accumulate the full sparse dot products into the linked-list
// accumulator, then drain it through the bounded heap. The bound filter runs
// inside drain, i.e. strictly after the row's accumulation loop finished —
// scores are always final when compared against the bounds.
//
// Complexity: O(Σ fill · log ntop) time over the range,
// O(cols + ntop) worker-local space.
func (k *kernel) run(lo, hi int) rangeResult {
	acc := newAccumulator(k.cols)

	// The heap can never hold more than cols distinct columns.
	bound := k.ntop
	if bound > k.cols {
		bound = k.cols
	}
	cand := make(candidateHeap, 0, bound)

	// Capacity hints only; append grows past them when rows are dense.
	hint := bound
	if hint > preallocRowCap {
		hint = preallocRowCap
	}
	res := rangeResult{
		counts: make([]int, 0, hi-lo),
		cols:   make([]int, 0, (hi-lo)*hint),
		vals:   make([]float64, 0, (hi-lo)*hint),
	}

	for i := lo; i < hi; i++ {
		// Accumulation: expand row i of A against the rows of B it touches.
		for p := k.aPtr[i]; p < k.aPtr[i+1]; p++ {
			j, v := k.aInd[p], k.aVal[p]
			for q := k.bPtr[j]; q < k.bPtr[j+1]; q++ {
				acc.add(k.bInd[q], v*k.bVal[q])
			}
		}

		if acc.fill > res.maxFill {
			res.maxFill = acc.fill
		}

		// Selection: filter on the fully accumulated score, then keep the
		// best ≤ ntop candidates.
		acc.drain(func(col int, sum float64) {
			if sum < k.lower {
				return // below the inclusive threshold
			}
			if k.bounded && sum > k.upper {
				return // above the true upper bound
			}
			cand.offer(candidate{col: col, score: sum}, bound)
		})

		// Emission: append row i's survivors in final order.
		before := len(res.cols)
		res.cols, res.vals = cand.emit(res.cols, res.vals)
		res.counts = append(res.counts, len(res.cols)-before)
	}

	return res
}
