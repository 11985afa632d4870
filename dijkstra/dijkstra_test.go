// Package dijkstra_test validates the Dijkstra implementation: input validation,
// distances, predecessors, MaxDistance, InfEdgeThreshold and tie-breaking.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build creates a graph from (a, b, cost) triples, adding vertices as needed.
func build(t *testing.T, links ...core.Link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range links {
		for _, id := range []string{l.From, l.To} {
			if !g.HasVertex(id) {
				require.NoError(t, g.AddVertex(id))
			}
		}
		_, err := g.SetLink(l.From, l.To, l.Cost)
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph())
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	g := build(t, core.Link{"A", "B", 1}, core.Link{"B", "C", 2}, core.Link{"A", "C", 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"])
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")
}

func TestDijkstra_SimpleTriangle_WithPath(t *testing.T) {
	g := build(t, core.Link{"A", "B", 1}, core.Link{"B", "C", 2}, core.Link{"A", "C", 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev)
}

func TestDijkstra_ChainWithPath(t *testing.T) {
	// A-B-C-D-E
	//         |
	//         F-G
	g := build(t,
		core.Link{"A", "B", 1}, core.Link{"B", "C", 1}, core.Link{"C", "D", 1},
		core.Link{"D", "E", 1}, core.Link{"D", "F", 1}, core.Link{"F", "G", 1},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	want := map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5}
	for v, d := range want {
		assert.Equal(t, d, dist[v], "dist[%s]", v)
	}
	assert.Equal(t, "F", prev["G"])
	assert.Equal(t, "D", prev["F"])
}

func TestDijkstra_Disconnected(t *testing.T) {
	g := build(t, core.Link{"A", "B", 1})
	require.NoError(t, g.AddVertex("Z"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist["Z"])
	assert.Equal(t, "", prev["Z"])
}

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"X": 0}, dist)
}

func TestDijkstra_ZeroWeightLinks(t *testing.T) {
	g := build(t, core.Link{"A", "B", 0}, core.Link{"B", "C", 0}, core.Link{"A", "C", 1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["C"])
}

// ------------------------------------------------------------------------
// 3. MaxDistance and InfEdgeThreshold
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := build(t, core.Link{"A", "B", 1}, core.Link{"B", "C", 1}, core.Link{"C", "D", 1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, dijkstra.Unreachable, dist["C"])
	assert.Equal(t, dijkstra.Unreachable, dist["D"])
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := build(t, core.Link{"A", "B", 2}, core.Link{"B", "C", 4}, core.Link{"A", "C", 10}, core.Link{"C", "D", 6})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist["C"])
	assert.Equal(t, dijkstra.Unreachable, dist["D"], "C-D(6) is impassable")
}

// ------------------------------------------------------------------------
// 4. Tie-breaking
// ------------------------------------------------------------------------

func TestDijkstra_HugeCostsDoNotOverflow(t *testing.T) {
	const half = int64(1) << 62
	g := build(t,
		core.Link{From: "A", To: "B", Cost: half},
		core.Link{From: "B", To: "C", Cost: half},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, "", prev["A"], "the source is never relaxed")
	assert.Equal(t, half, dist["B"])
	assert.Equal(t, dijkstra.Unreachable, dist["C"], "2^63 does not fit below Unreachable")
	for v, d := range dist {
		assert.GreaterOrEqual(t, d, int64(0), v)
	}
}

func TestDijkstra_MaxCostLinkIsPassable(t *testing.T) {
	g := build(t, core.Link{From: "A", To: "B", Cost: core.MaxCost})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, core.MaxCost, dist["B"])
}

func TestDijkstra_EqualCostTieBreakIsLexicographic(t *testing.T) {
	// A-B-D and A-C-D both cost 2; B pops before C, so D is reached through B.
	g := build(t, core.Link{"A", "C", 1}, core.Link{"A", "B", 1}, core.Link{"C", "D", 1}, core.Link{"B", "D", 1})

	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		require.Equal(t, "B", prev["D"], "run %d", i)
	}
}
