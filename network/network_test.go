package network_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "A B 5\nA C 10\nB C 2\nB D 3\nC D 1\n"

func loadSample(t *testing.T, opts ...network.Option) *network.Network {
	t.Helper()
	n := network.New(opts...)
	rep, err := n.LoadTopology(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 5, rep.Links)
	require.Equal(t, 4, rep.RoutersAdded)

	return n
}

func TestAddRouter_Idempotent(t *testing.T) {
	n := loadSample(t)
	before, err := n.Table("A")
	require.NoError(t, err)

	require.ErrorIs(t, n.AddRouter("A"), network.ErrRouterExists)
	after, err := n.Table("A")
	require.NoError(t, err)
	assert.Equal(t, before, after, "duplicate add must not touch the table")
	assert.Equal(t, []string{"A", "B", "C", "D"}, n.Routers())

	require.ErrorIs(t, n.AddRouter(""), network.ErrEmptyRouterID)
}

func TestAddRouter_NoRecompute(t *testing.T) {
	n := loadSample(t)
	gen := n.Stats().Generation

	require.NoError(t, n.AddRouter("E"))
	assert.Equal(t, gen, n.Stats().Generation)

	table, err := n.Table("E")
	require.NoError(t, err)
	assert.Empty(t, table)

	n.RecomputeAll()
	c, err := n.Cost("E", "E")
	require.NoError(t, err)
	assert.Zero(t, c)
	_, err = n.Cost("E", "A")
	require.ErrorIs(t, err, network.ErrNoRoute)
}

func TestSelfCostIsZero(t *testing.T) {
	n := loadSample(t)
	n.RecomputeAll()

	for _, id := range n.Routers() {
		c, err := n.Cost(id, id)
		require.NoError(t, err)
		assert.Zero(t, c, id)

		p, err := n.Path(id, id)
		require.NoError(t, err)
		assert.Equal(t, []string{id}, p)
	}
}

func TestSampleTopology_CostAndPath(t *testing.T) {
	n := loadSample(t)

	c, err := n.Cost("A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(8), c)

	p, err := n.Path("A", "D")
	require.NoError(t, err)
	require.NotEmpty(t, p)
	assert.Equal(t, "A", p[0])
	assert.Equal(t, "D", p[len(p)-1])
	assert.Equal(t, []string{"A", "B", "D"}, p)

	table, err := n.Table("A")
	require.NoError(t, err)
	assert.Equal(t, []router.Route{
		{Destination: "A", Cost: 0, NextHop: "A"},
		{Destination: "B", Cost: 5, NextHop: "B"},
		{Destination: "C", Cost: 7, NextHop: "B"},
		{Destination: "D", Cost: 8, NextHop: "B"},
	}, table)
}

func TestAddLink_Symmetric(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddRouter("X"))
	require.NoError(t, n.AddRouter("Y"))
	require.NoError(t, n.AddLink("X", "Y", 4))

	xy, err := n.Cost("X", "Y")
	require.NoError(t, err)
	yx, err := n.Cost("Y", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(4), xy)
	assert.Equal(t, xy, yx)

	// overwrite is idempotent and recomputes
	require.NoError(t, n.AddLink("Y", "X", 6))
	xy, _ = n.Cost("X", "Y")
	assert.Equal(t, int64(6), xy)
	assert.Len(t, n.Links(), 1)
}

func TestAddLink_Validation(t *testing.T) {
	n := loadSample(t)

	require.ErrorIs(t, n.AddLink("A", "Z", 1), network.ErrRouterNotFound)
	require.ErrorIs(t, n.AddLink("A", "B", -1), network.ErrNegativeCost)
	require.ErrorIs(t, n.AddLink("A", "A", 1), network.ErrSelfLink)
	require.ErrorIs(t, n.AddLink("", "A", 1), network.ErrEmptyRouterID)
	assert.False(t, n.HasRouter("Z"))
}

func TestRemoveLink(t *testing.T) {
	n := loadSample(t)

	require.NoError(t, n.RemoveLink("B", "D"))
	c, err := n.Cost("A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(8), c, "A-B-C-D still costs 8")

	p, err := n.Path("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p)

	require.ErrorIs(t, n.RemoveLink("B", "D"), network.ErrLinkNotFound)
}

func TestRemoveRouter_PurgesTables(t *testing.T) {
	n := loadSample(t)

	require.NoError(t, n.RemoveRouter("B"))
	require.ErrorIs(t, n.RemoveRouter("B"), network.ErrRouterNotFound)

	for _, l := range n.Links() {
		assert.NotEqual(t, "B", l.A)
		assert.NotEqual(t, "B", l.B)
	}
	for _, rt := range n.Snapshot().Routers {
		for _, e := range rt.Routes {
			assert.NotEqual(t, "B", e.Destination, "router %s", rt.Router)
			assert.NotEqual(t, "B", e.NextHop, "router %s", rt.Router)
		}
	}

	c, err := n.Cost("A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(11), c)
}

func TestUnreachable(t *testing.T) {
	n := loadSample(t)
	require.NoError(t, n.AddRouter("Z"))
	n.RecomputeAll()

	c, err := n.Cost("A", "Z")
	require.ErrorIs(t, err, network.ErrNoRoute)
	assert.Equal(t, network.NoRoute, c)

	p, err := n.Path("A", "Z")
	require.ErrorIs(t, err, network.ErrNoRoute)
	assert.Empty(t, p)

	table, err := n.Table("A")
	require.NoError(t, err)
	for _, rt := range table {
		assert.NotEqual(t, "Z", rt.Destination, "unreachable destinations are omitted")
	}
}

func TestUnknownOrigin(t *testing.T) {
	n := loadSample(t)

	c, err := n.Cost("Q", "A")
	require.ErrorIs(t, err, network.ErrRouterNotFound)
	assert.Equal(t, network.NoRoute, c)

	_, err = n.Path("Q", "A")
	require.ErrorIs(t, err, network.ErrRouterNotFound)

	_, err = n.Table("Q")
	require.ErrorIs(t, err, network.ErrRouterNotFound)
}

func TestAutoRecomputeOff(t *testing.T) {
	n := loadSample(t, network.WithAutoRecompute(false))
	gen := n.Stats().Generation

	require.NoError(t, n.AddLink("A", "D", 1))
	assert.Equal(t, gen, n.Stats().Generation)
	c, _ := n.Cost("A", "D")
	assert.Equal(t, int64(8), c, "stale until the next pass")

	n.RecomputeAll()
	c, _ = n.Cost("A", "D")
	assert.Equal(t, int64(1), c)
}

func TestAutoRecomputeOff_RemoveRouterPurgesTables(t *testing.T) {
	n := loadSample(t, network.WithAutoRecompute(false))
	gen := n.Stats().Generation

	require.NoError(t, n.RemoveRouter("B"))
	assert.Equal(t, gen, n.Stats().Generation, "no pass ran")

	for _, id := range n.Routers() {
		routes, err := n.Table(id)
		require.NoError(t, err)
		for _, r := range routes {
			assert.NotEqual(t, "B", r.Destination, "%s still routes to B", id)
			assert.NotEqual(t, "B", r.NextHop, "%s still forwards via B", id)
		}
	}
	_, err := n.Cost("A", "B")
	require.ErrorIs(t, err, network.ErrNoRoute)
	_, err = n.Cost("A", "D")
	require.ErrorIs(t, err, network.ErrNoRoute, "A reached D via B")

	c, err := n.Cost("C", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c, "routes not via B survive")

	n.RecomputeAll()
	c, err = n.Cost("A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(11), c)
}

func TestAddRouter_RejectsWhitespace(t *testing.T) {
	n := network.New()
	for _, id := range []string{"A B", "A\tB", " A"} {
		require.ErrorIs(t, n.AddRouter(id), network.ErrInvalidRouterID, "%q", id)
	}
	assert.Empty(t, n.Routers())

	err := n.Update(func(tx *network.Tx) error { return tx.AddRouter("X Y") })
	require.ErrorIs(t, err, network.ErrInvalidRouterID)
}

func TestHugeCosts_NeverNegative(t *testing.T) {
	n := network.New()
	_, err := n.LoadTopology(strings.NewReader("A B 4611686018427387904\nB C 4611686018427387904\n"))
	require.NoError(t, err)

	c, err := n.Cost("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, c)

	c, err = n.Cost("A", "A")
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = n.Cost("A", "C")
	require.ErrorIs(t, err, network.ErrNoRoute, "the sum does not fit in a cost")

	require.ErrorIs(t, n.AddLink("A", "C", math.MaxInt64), network.ErrCostOutOfRange)
}

func TestZeroCostLinksTerminate(t *testing.T) {
	n := network.New()
	_, err := n.LoadTopology(strings.NewReader("A B 0\nB C 0\nA C 0\nC D 2\n"))
	require.NoError(t, err)

	for _, o := range n.Routers() {
		for _, d := range n.Routers() {
			p, err := n.Path(o, d)
			require.NoError(t, err, "%s→%s", o, d)
			assert.Equal(t, o, p[0])
			assert.Equal(t, d, p[len(p)-1])
			assert.LessOrEqual(t, len(p), 4)
		}
	}
}

func TestStats(t *testing.T) {
	n := loadSample(t)
	st := n.Stats()
	assert.Equal(t, 4, st.Routers)
	assert.Equal(t, 5, st.Links)
	assert.Equal(t, 16, st.Routes)
	assert.Equal(t, uint64(1), st.Generation)
}

func TestHops_FewestLinks(t *testing.T) {
	n := loadSample(t)
	require.NoError(t, n.AddLink("A", "D", 100))

	hops, err := n.Hops("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, hops)

	cheapest, err := n.Path("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, cheapest)

	require.NoError(t, n.AddRouter("Z"))
	_, err = n.Hops("A", "Z")
	require.ErrorIs(t, err, network.ErrNoRoute)
	_, err = n.Hops("Q", "A")
	require.ErrorIs(t, err, network.ErrRouterNotFound)
}

func TestPartitions(t *testing.T) {
	n := loadSample(t)
	parts, err := n.Partitions()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}}, parts)

	require.NoError(t, n.RemoveLink("B", "D"))
	require.NoError(t, n.RemoveLink("C", "D"))
	require.NoError(t, n.AddRouter("E"))

	parts, err = n.Partitions()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D"}, {"E"}}, parts)
}
