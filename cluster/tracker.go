package cluster

import (
	"sort"

	"github.com/katalvlaran/circuits/edge"
	"go.uber.org/zap"
)

// Tracker holds the cluster state for n points while edges are consumed.
// Points are addressed by their index in the input slice.
type Tracker struct {
	parent  []int  // -1 marks a root
	size    []int  // valid at roots
	label   []int  // cluster id, valid at touched roots
	touched []bool // reached by at least one consumed edge

	connected int // number of touched points
	clusters  int // distinct clusters among touched points
	nextID    int // next cluster id to allocate

	log *zap.Logger
}

// NewTracker returns a Tracker for n points, all untouched.
//
// Complexity: O(n).
func NewTracker(n int, opts ...Option) *Tracker {
	if n < 0 {
		n = 0
	}
	o := buildOptions(opts)
	t := &Tracker{
		parent:  make([]int, n),
		size:    make([]int, n),
		label:   make([]int, n),
		touched: make([]bool, n),
		nextID:  1,
		log:     o.Logger,
	}
	for i := range t.parent {
		t.parent[i] = -1
		t.size[i] = 1
	}

	return t
}

// find returns the root of x, compressing the path behind it.
func (t *Tracker) find(x int) int {
	root := x
	for t.parent[root] != -1 {
		root = t.parent[root]
	}
	for t.parent[x] != -1 {
		x, t.parent[x] = t.parent[x], root
	}

	return root
}

// link joins the trees rooted at ra and rb under the larger one and stamps
// id on the surviving root.
func (t *Tracker) link(ra, rb, id int) {
	if t.size[ra] < t.size[rb] {
		ra, rb = rb, ra
	}
	t.parent[rb] = ra
	t.size[ra] += t.size[rb]
	t.label[ra] = id
}

// Consume applies one edge. Edges must be fed in ascending distance order
// for the queries in this package to be meaningful; the Tracker itself
// accepts any order. A self-pair (I == J) is Skipped before anything is read.
//
// Other endpoint indices outside [0, Len()) panic.
func (t *Tracker) Consume(e edge.Edge) Outcome {
	a, b := e.I, e.J
	if a == b {
		return Skipped
	}
	ta, tb := t.touched[a], t.touched[b]

	switch {
	case ta && tb:
		ra, rb := t.find(a), t.find(b)
		if ra == rb {
			return Skipped
		}
		survivor, absorbed := t.label[ra], t.label[rb]
		t.link(ra, rb, survivor)
		t.clusters--
		t.log.Debug("clusters merged",
			zap.Int("survivor", survivor),
			zap.Int("absorbed", absorbed),
			zap.Int("clusters", t.clusters),
			zap.Float64("distance", e.Distance))

		return Merged

	case ta:
		ra := t.find(a)
		t.link(ra, b, t.label[ra])
		t.touched[b] = true
		t.connected++

		return Extended

	case tb:
		rb := t.find(b)
		t.link(rb, a, t.label[rb])
		t.touched[a] = true
		t.connected++

		return Extended

	default:
		id := t.nextID
		t.nextID++
		t.link(a, b, id)
		t.touched[a], t.touched[b] = true, true
		t.connected += 2
		t.clusters++

		return Created
	}
}

// Len returns the number of points tracked.
func (t *Tracker) Len() int { return len(t.parent) }

// Connected returns how many points have been touched by a consumed edge.
func (t *Tracker) Connected() int { return t.connected }

// Clusters returns the number of distinct clusters among touched points.
func (t *Tracker) Clusters() int { return t.clusters }

// Components returns the number of clusters including untouched singletons.
func (t *Tracker) Components() int { return t.clusters + t.Len() - t.connected }

// ClusterID returns the cluster id of point i. ok is false while i is untouched.
func (t *Tracker) ClusterID(i int) (id int, ok bool) {
	if !t.touched[i] {
		return 0, false
	}

	return t.label[t.find(i)], true
}

// Same reports whether points i and j are in the same cluster.
// An untouched point is only the same as itself.
func (t *Tracker) Same(i, j int) bool {
	if i == j {
		return true
	}
	if !t.touched[i] || !t.touched[j] {
		return false
	}

	return t.find(i) == t.find(j)
}

// Converged reports whether every point is connected and exactly one
// cluster remains. Zero or one point is trivially converged.
func (t *Tracker) Converged() bool {
	if t.Len() <= 1 {
		return true
	}

	return t.connected == t.Len() && t.clusters == 1
}

// Sizes returns the size of every component, untouched points counting as
// 1, largest first. The sizes always sum to Len().
//
// Complexity: O(N log N).
func (t *Tracker) Sizes() []int {
	sizes := make([]int, 0, t.Components())
	for i, p := range t.parent {
		if p == -1 {
			sizes = append(sizes, t.size[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}
