// Package circuits joins 3-D junction boxes into circuits, closest pairs
// first, and answers two questions about the result.
//
// What is inside?
//
//	point/   — Point (x,y,z), Euclidean distance (gonum r3), input parsing
//	edge/    — every pair of points with its distance, in ascending order:
//	           a sorted slice (Enumerate) or a lazy min-heap (Queue)
//	cluster/ — union-find Tracker that consumes edges one by one, plus the
//	           two queries:
//	             SizesAfter       — circuit sizes after the k closest pairs
//	             ConvergenceEdge  — the pair that first makes one circuit
//	report/  — "Solution #1 / #2" output with per-part timings
//	cmd/circuits — command-line solver wiring the packages together
//
// Quick example:
//
//	points, _ := point.Parse(f)
//	sizes, _ := cluster.SizesAfter(points, 1000)
//	one, _ := cluster.ProductOfLargest(sizes, 3)
//	e, _ := cluster.ConvergenceEdge(points)
//	two := e.A.X * e.B.X
//
// Ties between equal distances are broken by input order, so every result
// is reproducible for a given input file.
package circuits
