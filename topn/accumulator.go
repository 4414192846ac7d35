// Package topn: per-row sparse accumulator.
//
// The accumulator is a dense sums array over B's columns plus an intrusive
// singly linked list threading the columns touched by the current row.
// Touching a column is O(1), iterating touched columns is O(fill), and the
// drain pass resets both arrays as it walks, so the structure is reusable
// across every row a worker processes with no per-row allocation.
package topn

// List sentinels for the intrusive touched-column list.
// unused marks a column not yet touched by the current row; listEnd
// terminates the chain at the most recently touched column.
const (
	unused  = -1
	listEnd = -2
)

// accumulator holds the per-row dot-product state for one worker.
// It is strictly worker-local; nothing here is shared across goroutines.
type accumulator struct {
	sums []float64 // running dot products, indexed by column of B
	next []int     // intrusive list: next[j] chains touched columns
	head int       // most recently touched column, listEnd when empty
	fill int       // number of distinct columns touched this row
}

// newAccumulator allocates accumulator state for a matrix with cols columns.
// Complexity: O(cols).
func newAccumulator(cols int) *accumulator {
	next := make([]int, cols)
	for j := range next {
		next[j] = unused
	}

	return &accumulator{
		sums: make([]float64, cols),
		next: next,
		head: listEnd,
		fill: 0,
	}
}

// add accumulates v into column j, threading j onto the touched list the
// first time it appears in the current row.
// Complexity: O(1).
func (acc *accumulator) add(j int, v float64) {
	acc.sums[j] += v
	if acc.next[j] == unused {
		acc.next[j] = acc.head // thread j in front of the previous head
		acc.head = j
		acc.fill++
	}
}

// drain visits every touched column with its fully accumulated sum, then
// resets the accumulator for the next row. Visit order is reverse touch
// order (a property of the intrusive list), which is deterministic for a
// given input; the selection stage imposes the final ordering.
// Complexity: O(fill).
func (acc *accumulator) drain(visit func(col int, sum float64)) {
	for j := acc.head; j != listEnd; {
		visit(j, acc.sums[j])
		nxt := acc.next[j]
		acc.next[j] = unused // reset as we walk: O(1) amortized cleanup
		acc.sums[j] = 0
		j = nxt
	}
	acc.head = listEnd
	acc.fill = 0
}
