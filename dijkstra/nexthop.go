package dijkstra

import "github.com/katalvlaran/netroute/core"

// FirstHops derives the next-hop of every reachable destination from a
// predecessor map produced by Dijkstra(..., WithReturnPath()).
//
// For destination d the chain d, prev[d], prev[prev[d]], ... is walked
// backward and stops at the first node whose predecessor is source, or whose
// predecessor is empty. That node is the first hop: the second node of the
// shortest path source→d. The source maps to itself and direct neighbours map
// to themselves. Destinations with dist == Unreachable are omitted.
func FirstHops(source string, dist map[string]int64, prev map[string]string) map[string]string {
	hops := make(map[string]string, len(dist))
	for d, cost := range dist {
		if cost == Unreachable {
			continue
		}
		next := d
		// The source's own prev is "", so the walk always terminates on a
		// well-formed tree; the step bound guards a corrupted map.
		for steps := 0; prev[next] != source && prev[next] != "" && steps <= len(prev); steps++ {
			next = prev[next]
		}
		hops[d] = next
	}

	return hops
}

// ShortestTree runs Dijkstra from source with paths enabled and returns the
// reachable part of the shortest-path tree together with its first hops.
func ShortestTree(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	all := append([]Option{Source(source), WithReturnPath()}, opts...)
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		Source:  source,
		Dist:    make(map[string]int64, len(dist)),
		Prev:    make(map[string]string, len(dist)),
		NextHop: FirstHops(source, dist, prev),
	}
	for v, d := range dist {
		if d == Unreachable {
			continue
		}
		t.Dist[v] = d
		t.Prev[v] = prev[v]
	}

	return t, nil
}
