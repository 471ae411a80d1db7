// Package edge enumerates every unordered pair of input points together with
// its Euclidean distance, in strictly ascending distance order.
//
// Two ways to walk the pairs are provided and both yield the same sequence:
//
//   - Enumerate(points) []Edge
//     Builds all C(N,2) pairs and sorts them once. Best when most pairs will
//     be consumed (e.g. waiting for every point to join a single cluster).
//     Complexity: O(N² log N) time, O(N²) memory.
//
//   - NewQueue(points) *Queue
//     Builds all pairs and heapifies them in O(N²); each Pop costs
//     O(log N). Best when only the K shortest pairs are needed.
//
// Ordering
//
//	Edges are ordered by Distance. Equal distances are broken by the input
//	positions of the endpoints: (I, J) lexicographically, where I < J are
//	indices into the original point slice. This is exactly the order in
//	which the pairs are enumerated, so a stable sort and the heap agree.
//
// Fewer than two points produce no edges.
package edge
