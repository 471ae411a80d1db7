package edge_test

import (
	"fmt"

	"github.com/katalvlaran/circuits/edge"
	"github.com/katalvlaran/circuits/point"
)

// ExampleEnumerate lists all pairs of four collinear points, shortest first.
func ExampleEnumerate() {
	points := []point.Point{{Z: 0}, {Z: 1}, {Z: 2}, {X: 10, Y: 10, Z: 10}}
	for _, e := range edge.Enumerate(points) {
		fmt.Println(e.I, e.J, e)
	}
	// Output:
	// 0 1 0,0,0-0,0,1 (1.000)
	// 1 2 0,0,1-0,0,2 (1.000)
	// 0 2 0,0,0-0,0,2 (2.000)
	// 2 3 0,0,2-10,10,10 (16.248)
	// 1 3 0,0,1-10,10,10 (16.763)
	// 0 3 0,0,0-10,10,10 (17.321)
}

// ExampleQueue pops only the two shortest pairs.
func ExampleQueue() {
	q := edge.NewQueue([]point.Point{{Z: 0}, {Z: 5}, {Z: 1}})
	for i := 0; i < 2; i++ {
		e, _ := q.Pop()
		fmt.Println(e.I, e.J, e.Distance)
	}
	fmt.Println("left:", q.Len())
	// Output:
	// 0 2 1
	// 1 2 4
	// left: 1
}
