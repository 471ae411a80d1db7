package point

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMalformedPoint indicates a line that is not three comma-separated integers.
var ErrMalformedPoint = errors.New("point: expected three comma-separated integers")

// Point is an immutable position in 3-D integer space.
// Two points are the same point when all three coordinates are equal.
type Point struct {
	X, Y, Z int
}

// Vec converts p into a gonum r3 vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// String renders p in the input format "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Distance returns the Euclidean distance between a and b.
// The squared distance of integer points is exact below 2^53, so equal true
// distances always produce equal results.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Sqrt(r3.Norm2(r3.Sub(a.Vec(), b.Vec())))
}
