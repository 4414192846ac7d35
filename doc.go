// Package sparsetopn is a sparse top-n similarity selection library:
// multiply two CSR matrices and keep, per row, only the n best-scoring
// entries above a threshold — without ever materializing the full product.
//
// 🚀 What is sparsetopn?
//
//	A pure-Go library for the "top-n of A·B" problem that dominates
//	record linkage, deduplication and nearest-neighbour shortlisting:
//		• csr/  — validated Compressed Sparse Row matrices + gonum interop
//		• topn/ — the bounded selection kernel: TopN, TrueMinMaxTopN,
//		          TopNWithFill, MaxRowFill
//
// ✨ Why choose sparsetopn?
//
//   - Bounded memory – per-row results are selected with a size-n heap,
//     never a full product row sort
//   - Deterministic – ties broken by ascending column, byte-stable output
//   - Parallel – independent rows fan out over a goroutine pool on demand
//   - Pure Go – no cgo, no hidden deps
//
// Quick sketch:
//
//	A (queries, m×k)  ·  Bᵀ (corpus, k×n)  →  C (m×n, ≤ ntop per row)
//
// With L2-normalised rows the retained scores are cosine similarities.
// See csr and topn package docs for the full API.
//
//	go get github.com/katalvlaran/sparsetopn
package sparsetopn
