// Package cluster groups 3-D points into clusters by consuming the
// pairwise edges produced by package edge, shortest first, and answers two
// questions about the result.
//
// What it does
//
//	A Tracker starts with every point untouched. Each consumed edge either
//	  - is Skipped   (both endpoints already share a cluster),
//	  - Merges       two existing clusters into one,
//	  - Extends      an existing cluster by its untouched endpoint, or
//	  - Creates      a new cluster from two untouched endpoints.
//	Untouched points count as singleton clusters of size 1 when sizes are
//	reported, but are not part of any cluster id until an edge reaches them.
//
// Queries
//
//   - SizesAfter(points, k) / Connect(n, edges, k)
//     Consume the k shortest edges and report every cluster size,
//     largest first. If k exceeds the number of edges, all edges are used.
//     ProductOfLargest multiplies the top n sizes and refuses to guess when
//     fewer than n clusters exist (ErrTooFewClusters).
//
//   - ConvergenceEdge(points) / Converge(n, edges)
//     Consume edges until every point is connected and exactly one cluster
//     remains; return the edge that closed the gap. Running out of edges
//     first is ErrNonConvergence. With every pair enumerated this cannot
//     happen for N ≥ 2, but callers passing a truncated edge list can hit it.
//
// Implementation
//
//	The Tracker is a disjoint-set forest with union by size and path
//	compression. Each root carries the cluster id that the relabeling
//	formulation would report: ids are allocated from 1 only when a brand-new
//	cluster is created, and on a merge the first endpoint's id survives.
//
// Complexity: Consume is O(α(N)) amortized; Sizes is O(N log N).
//
// A Tracker is not safe for concurrent use; edge order matters, so there is
// nothing to parallelize.
package cluster
