package network

import (
	"sort"

	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/router"
	"go.uber.org/zap"
)

// recomputeLocked runs one full pass: every router gets a fresh table built
// from its own shortest-path tree. Caller holds the write lock.
func (n *Network) recomputeLocked() PassStats {
	start := n.now()
	n.generation++
	gen := n.generation

	routes := 0
	for _, id := range n.graph.Vertices() {
		r := n.routers[id]
		tree, err := dijkstra.ShortestTree(n.graph, id)
		if err != nil {
			// unreachable with a consistent graph: id is present and costs are validated on insert
			n.logger.Error("shortest path search failed", zap.String("router", id), zap.Error(err))
			r.Replace(nil, gen)
			continue
		}
		table := tableFromTree(tree)
		r.Replace(table, gen)
		routes += len(table)
	}

	stats := PassStats{
		Generation: gen,
		Routers:    len(n.routers),
		Links:      n.graph.ArcCount() / 2,
		Routes:     routes,
		Duration:   n.now().Sub(start),
	}
	n.observer.ObserveRecompute(stats)
	n.logger.Debug("routing tables recomputed",
		zap.Uint64("generation", gen),
		zap.Int("routers", stats.Routers),
		zap.Int("routes", routes),
		zap.Duration("took", stats.Duration))

	return stats
}

func tableFromTree(t *dijkstra.Tree) []router.Route {
	out := make([]router.Route, 0, len(t.Dist))
	for dest, cost := range t.Dist {
		out = append(out, router.Route{Destination: dest, Cost: cost, NextHop: t.NextHop[dest]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Destination < out[j].Destination })

	return out
}
