package cluster_test

import (
	"testing"

	"github.com/katalvlaran/circuits/cluster"
	"github.com/katalvlaran/circuits/edge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pair builds a bare edge between input positions i and j.
func pair(i, j int) edge.Edge { return edge.Edge{I: i, J: j} }

// TestTracker_Outcomes walks through every Consume case on six points and
// checks the cluster ids a relabeling implementation would report.
func TestTracker_Outcomes(t *testing.T) {
	tr := cluster.NewTracker(6)
	require.Equal(t, 6, tr.Len())
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, tr.Sizes())

	// Neither endpoint touched: new cluster 1.
	assert.Equal(t, cluster.Created, tr.Consume(pair(0, 1)))
	// Another fresh pair: new cluster 2.
	assert.Equal(t, cluster.Created, tr.Consume(pair(2, 3)))
	assert.Equal(t, 2, tr.Clusters())
	assert.Equal(t, 4, tr.Connected())

	// First endpoint touched: 4 joins cluster 1.
	assert.Equal(t, cluster.Extended, tr.Consume(pair(1, 4)))
	// Second endpoint touched: 5 joins cluster 2.
	assert.Equal(t, cluster.Extended, tr.Consume(pair(5, 2)))
	id, ok := tr.ClusterID(4)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	id, ok = tr.ClusterID(5)
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	// Same cluster: no-op.
	assert.Equal(t, cluster.Skipped, tr.Consume(pair(0, 4)))
	assert.Equal(t, []int{3, 3}, tr.Sizes())

	// Different clusters: the first endpoint's id (2) survives.
	assert.Equal(t, cluster.Merged, tr.Consume(pair(3, 0)))
	for i := 0; i < 6; i++ {
		id, ok := tr.ClusterID(i)
		assert.True(t, ok)
		assert.Equal(t, 2, id, "point %d", i)
	}
	assert.Equal(t, 1, tr.Clusters())
	assert.Equal(t, 6, tr.Connected())
	assert.Equal(t, []int{6}, tr.Sizes())
	assert.True(t, tr.Converged())
}

func TestTracker_UntouchedPoints(t *testing.T) {
	tr := cluster.NewTracker(4)
	tr.Consume(pair(1, 2))

	_, ok := tr.ClusterID(0)
	assert.False(t, ok)
	assert.True(t, tr.Same(0, 0))
	assert.False(t, tr.Same(0, 3))
	assert.True(t, tr.Same(1, 2))
	assert.False(t, tr.Same(1, 3))

	assert.Equal(t, 1, tr.Clusters())
	assert.Equal(t, 3, tr.Components())
	assert.Equal(t, []int{2, 1, 1}, tr.Sizes())
	assert.False(t, tr.Converged())
}

func TestTracker_NewIDsAfterMerge(t *testing.T) {
	tr := cluster.NewTracker(6)
	tr.Consume(pair(0, 1)) // 1
	tr.Consume(pair(2, 3)) // 2
	tr.Consume(pair(1, 2)) // merge, 1 survives
	tr.Consume(pair(4, 5)) // 3: the counter never goes back

	id, _ := tr.ClusterID(3)
	assert.Equal(t, 1, id)
	id, _ = tr.ClusterID(5)
	assert.Equal(t, 3, id)
	assert.Equal(t, 2, tr.Clusters())
}

func TestTracker_SelfPairSkipped(t *testing.T) {
	tr := cluster.NewTracker(2)
	assert.Equal(t, cluster.Skipped, tr.Consume(pair(1, 1)))
	assert.Zero(t, tr.Connected())
	assert.Zero(t, tr.Clusters())
}

func TestTracker_Trivial(t *testing.T) {
	assert.True(t, cluster.NewTracker(0).Converged())
	assert.True(t, cluster.NewTracker(1).Converged())
	assert.Empty(t, cluster.NewTracker(0).Sizes())
	assert.Equal(t, []int{1}, cluster.NewTracker(1).Sizes())
	assert.Zero(t, cluster.NewTracker(-3).Len())
}

func TestTracker_OutOfRangePanics(t *testing.T) {
	tr := cluster.NewTracker(2)
	assert.Panics(t, func() { tr.Consume(pair(0, 2)) })
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "skipped", cluster.Skipped.String())
	assert.Equal(t, "merged", cluster.Merged.String())
	assert.Equal(t, "extended", cluster.Extended.String())
	assert.Equal(t, "created", cluster.Created.String())
	assert.Equal(t, "unknown", cluster.Outcome(42).String())
}
