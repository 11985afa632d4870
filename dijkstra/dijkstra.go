package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum cost (Unreachable if no path).
//   - prev: predecessor map when WithReturnPath() is set, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; "" for the
//     source and for unreachable vertices.
//   - err:  validation failure, checked in order: ErrEmptySource, ErrNilGraph,
//     ErrVertexNotFound, ErrNegativeWeight.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// Pre-scan so relaxation never sees a negative arc.
	for _, a := range g.Arcs() {
		if a.Cost < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, a.From, a.To, a.Cost)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist=+∞ and prev="" everywhere, then seeds the heap with Source=0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited vertex until the heap drains or the
// closest candidate lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry: a shorter distance was pushed after this one
		if r.visited[u] || d > r.dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves neighbours of u whose tentative distance is strictly larger
// than dist[u]+cost. Arcs at or above InfEdgeThreshold are skipped, and so
// are arcs whose sum would not fit below Unreachable: such destinations stay
// unreachable rather than wrapping to a negative distance.
func (r *runner) relax(u string) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, a := range arcs {
		if a.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		if a.Cost < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, a.To, a.Cost)
		}

		// dist[u]+cost would reach or pass Unreachable
		if a.Cost >= Unreachable-r.dist[u] {
			continue
		}
		alt := r.dist[u] + a.Cost
		if alt > r.options.MaxDistance || alt >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = alt
		r.prev[a.To] = u
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: alt})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
