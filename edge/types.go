package edge

import (
	"fmt"

	"github.com/katalvlaran/circuits/point"
)

// Edge is an unordered pair of two input positions with their distance.
// I < J always holds; A and B are points[I] and points[J].
type Edge struct {
	I, J     int
	A, B     point.Point
	Distance float64
}

// String renders e as "A-B (distance)".
func (e Edge) String() string {
	return fmt.Sprintf("%v-%v (%.3f)", e.A, e.B, e.Distance)
}

// Less reports whether a comes before b: shorter distance first, then
// lower I, then lower J.
func Less(a, b Edge) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.I != b.I {
		return a.I < b.I
	}

	return a.J < b.J
}

// Count returns the number of unordered pairs among n points, C(n,2).
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
