package edge

import (
	"container/heap"

	"github.com/katalvlaran/circuits/point"
)

// Queue is a min-priority queue over all pairs of a point set, ordered by Less.
// It avoids sorting pairs that are never popped.
type Queue struct {
	pq edgePQ
}

// NewQueue builds a Queue holding every pair of points.
//
// Complexity: O(N²) time and memory (heap.Init is linear).
func NewQueue(points []point.Point) *Queue {
	q := &Queue{pq: pairs(points)}
	heap.Init(&q.pq)

	return q
}

// Len returns the number of edges not yet popped.
func (q *Queue) Len() int { return q.pq.Len() }

// Pop removes and returns the next edge in ascending order.
// ok is false once the queue is empty.
//
// Complexity: O(log E).
func (q *Queue) Pop() (e Edge, ok bool) {
	if q.pq.Len() == 0 {
		return Edge{}, false
	}

	return heap.Pop(&q.pq).(Edge), true
}

// edgePQ implements heap.Interface for a min-heap of Edge values.
type edgePQ []Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return Less(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an Edge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

// Pop removes the last element. Called by heap.Pop after it has moved the
// minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
