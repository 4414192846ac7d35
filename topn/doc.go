// Package topn computes sparse matrix products restricted, per row, to the
// n best-scoring entries above a threshold — the "top-n of A·B" kernel used
// for cosine-similarity shortlisting, record linkage and deduplication.
//
// 🚀 What is topn?
//
//	Given A (m×k CSR) and B (k×n CSR), the package computes C = A·B but
//	keeps only the strongest entries of each row:
//	  • TopN           — ≤ ntop entries per row, scores ≥ lowerBound
//	  • TrueMinMaxTopN — additionally scores ≤ upperBound, with the bound
//	    evaluated ONLY on fully accumulated dot products (a partial-sum
//	    prune would be unsound for an upper bound)
//	  • TopNWithFill   — TopN plus the maximum unbounded row fill, so
//	    callers can tell whether ntop truncated anything
//	  • MaxRowFill     — the fill probe alone; values are never read
//
// ✨ Key properties:
//
//   - Bounded selection – a size-ntop min-heap per row, O(fill·log ntop),
//     never a full sort of the product row
//   - Deterministic – rows sorted by descending score, ties broken by
//     ascending column; identical inputs give identical bytes
//   - Pure – no state between calls; inputs are read-only; the result is
//     freshly allocated and owned by the caller
//   - Parallel on demand – WithWorkers(n) fans contiguous row ranges out
//     over a goroutine pool; each worker owns a disjoint output segment
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/sparsetopn/csr"
//	    "github.com/katalvlaran/sparsetopn/topn"
//	)
//
//	// a: queries (m×k), b: corpus transposed (k×n), rows L2-normalised
//	c, err := topn.TopN(a, b, 10, 0.8, topn.WithWorkers(4))
//
// Complexity per row: O(Σ fill) accumulation + O(fill·log ntop) selection.
// Memory per worker: O(cols) accumulator + O(ntop) heap.
package topn
