package edge

import (
	"sort"

	"github.com/katalvlaran/circuits/point"
)

// pairs builds every (i, j) pair with i < j in enumeration order.
func pairs(points []point.Point) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}
	out := make([]Edge, 0, Count(n))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Edge{
				I:        i,
				J:        j,
				A:        points[i],
				B:        points[j],
				Distance: point.Distance(points[i], points[j]),
			})
		}
	}

	return out
}

// Enumerate returns all C(N,2) pairs of points sorted by ascending distance.
//
// Steps:
//  1. Enumerate pairs (i, j), i < j, row by row.
//  2. Stable sort by Distance, so equal distances keep enumeration order,
//     which is the (I, J) order used by Less.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Enumerate(points []point.Point) []Edge {
	edges := pairs(points)
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Distance < edges[b].Distance
	})

	return edges
}
