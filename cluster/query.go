package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/circuits/edge"
	"github.com/katalvlaran/circuits/point"
	"go.uber.org/zap"
)

// SizesAfter connects the k closest pairs of points and returns every
// cluster size, largest first, untouched points counting as 1.
//
// Only the k shortest pairs are ordered (see edge.Queue). If k exceeds the
// number of pairs, all pairs are consumed. Fewer than two points yield the
// sizes of the lone points.
//
// Error Conditions:
//   - ErrNegativeConnections: k < 0.
//
// Complexity: O(N² + k log N) time, O(N²) memory.
func SizesAfter(points []point.Point, k int, opts ...Option) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeConnections, k)
	}
	t := NewTracker(len(points), opts...)
	q := edge.NewQueue(points)
	for i := 0; i < k; i++ {
		e, ok := q.Pop()
		if !ok {
			break
		}
		t.Consume(e)
	}

	return t.Sizes(), nil
}

// Connect builds a Tracker over n points and consumes the first k edges of
// an ascending edge list. If k exceeds len(edges), every edge is consumed.
//
// Error Conditions:
//   - ErrNegativeConnections: k < 0.
func Connect(n int, edges []edge.Edge, k int, opts ...Option) (*Tracker, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeConnections, k)
	}
	if k > len(edges) {
		k = len(edges)
	}
	t := NewTracker(n, opts...)
	for _, e := range edges[:k] {
		t.Consume(e)
	}

	return t, nil
}

// ProductOfLargest multiplies the n largest sizes.
//
// Error Conditions:
//   - ErrTooFewClusters: n < 1 or fewer than n sizes are available.
func ProductOfLargest(sizes []int, n int) (int, error) {
	if n < 1 || len(sizes) < n {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrTooFewClusters, n, len(sizes))
	}
	sorted := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	product := 1
	for _, s := range sorted[:n] {
		product *= s
	}

	return product, nil
}

// ConvergenceEdge returns the first edge, in ascending distance order,
// after which all points form a single cluster.
//
// Fewer than two points are already converged: the zero Edge is returned
// with a nil error.
//
// Complexity: O(N² log N) time, O(N²) memory.
func ConvergenceEdge(points []point.Point, opts ...Option) (edge.Edge, error) {
	e, _, err := Converge(len(points), edge.Enumerate(points), opts...)

	return e, err
}

// Converge consumes an ascending edge list over n points until every point
// is connected and one cluster remains. It returns the edge that completed
// the cluster and its 1-based position in edges.
//
// Error Conditions:
//   - ErrNonConvergence: edges ran out first.
func Converge(n int, edges []edge.Edge, opts ...Option) (edge.Edge, int, error) {
	if n < 2 {
		return edge.Edge{}, 0, nil
	}
	o := buildOptions(opts)
	t := NewTracker(n, opts...)
	for i, e := range edges {
		t.Consume(e)
		if t.Converged() {
			o.Logger.Debug("single cluster reached",
				zap.Int("points", n),
				zap.Int("edge", i+1),
				zap.Stringer("pair", e))

			return e, i + 1, nil
		}
	}

	return edge.Edge{}, 0, fmt.Errorf("%w: %d points, %d clusters, %d untouched after %d edges",
		ErrNonConvergence, n, t.Clusters(), n-t.Connected(), len(edges))
}
