// Package point defines the 3-D integer Point used throughout circuits,
// its Euclidean distance, and the line-oriented input parser.
//
// Input format:
//
//	162,817,812
//	57,618,57
//	906,360,560
//
// One point per line, three comma-separated integers. Blank lines are
// ignored; anything else that does not parse is reported with its 1-based
// line number and wraps ErrMalformedPoint.
//
// Distances are computed with gonum's spatial/r3 vector type:
//
//	d := point.Distance(a, b) // sqrt(Δx² + Δy² + Δz²)
package point
