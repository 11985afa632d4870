package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable walk state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search on g from start.
func Walk(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.visited[id] = true
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		arcs, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		next := item.hops + 1
		if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
			continue
		}
		for _, a := range arcs {
			if w.visited[a.To] || !w.opts.Filter(a.From, a.To, a.Cost) {
				continue
			}
			w.enqueue(a.To, next, item.id)
		}
	}

	return nil
}

// Components partitions the vertices of g into connected groups. Each group
// is in visit order from its smallest ID; groups are ordered by that ID.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var groups [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := Walk(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		groups = append(groups, res.Order)
	}

	return groups, nil
}
