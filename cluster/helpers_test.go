package cluster_test

import (
	"github.com/katalvlaran/circuits/edge"
	"github.com/katalvlaran/circuits/point"
)

// edgeBetween builds the edge between points[i] and points[j].
func edgeBetween(points []point.Point, i, j int) edge.Edge {
	return edge.Edge{I: i, J: j, A: points[i], B: points[j], Distance: point.Distance(points[i], points[j])}
}
