// Package topn: bounded candidate selection.
//
// A size-ntop min-heap keeps the current best candidates while a row is
// drained; when full, a new candidate evicts the root only if it beats it.
// This keeps selection at O(fill·log ntop) instead of sorting the whole
// product row, which is the performance-critical choice when ntop ≪ fill.
package topn

import (
	"container/heap"
	"sort"
)

// candidate is one provisional result entry: a column of C and its fully
// accumulated score.
type candidate struct {
	col   int
	score float64
}

// beats reports whether c outranks d in the result order:
// higher score wins, equal scores go to the smaller column index.
// This single comparator defines both which candidates survive selection
// and how the surviving row is finally ordered, so the output is
// deterministic end to end.
func (c candidate) beats(d candidate) bool {
	if c.score != d.score {
		return c.score > d.score
	}

	return c.col < d.col
}

// candidateHeap is a min-heap over the result order: the root is the worst
// retained candidate, i.e. the next to be evicted.
type candidateHeap []candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[j].beats(h[i]) } // worst at the root
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends a candidate; pointer receiver because the length changes.
func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

// Pop removes and returns the root (worst retained candidate).
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// offer inserts c, keeping at most bound candidates: below the bound it is
// a plain push; at the bound c replaces the root only when it beats it.
// Complexity: O(log bound).
func (h *candidateHeap) offer(c candidate, bound int) {
	if len(*h) < bound {
		heap.Push(h, c)

		return
	}
	// Full: evict the worst retained candidate only for a strict improvement.
	if c.beats((*h)[0]) {
		(*h)[0] = c
		heap.Fix(h, 0)
	}
}

// emit appends the retained candidates to cols/vals in final result order
// (descending score, ties by ascending column) and empties the heap for
// reuse. Sorting ≤ bound elements keeps this O(ntop·log ntop).
func (h *candidateHeap) emit(cols []int, vals []float64) ([]int, []float64) {
	s := *h
	// The heap array is unordered; impose the result order directly.
	sort.Slice(s, func(i, j int) bool { return s[i].beats(s[j]) })
	for _, c := range s {
		cols = append(cols, c.col)
		vals = append(vals, c.score)
	}
	*h = s[:0] // reuse backing storage for the next row

	return cols, vals
}
