// File: methods_links.go
// Role: Link lifecycle (mirrored arc pairs) and arc enumeration.
//
// Determinism:
//   - Neighbors() is sorted by target id, Links() and Arcs() by (From, To).
package core

import "sort"

// SetLink installs or overwrites both arcs a→b and b→a with cost.
//
// Steps:
//  1. Validate ids, cost sign and the loop policy.
//  2. Under the write lock, require both endpoints to exist.
//  3. Write both arcs; report whether a link was already present.
//
// Errors:
//   - ErrEmptyVertexID, ErrNegativeWeight, ErrCostOutOfRange, ErrLoopNotAllowed,
//     ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) SetLink(a, b string, cost int64) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyVertexID
	}
	if cost < 0 {
		return false, ErrNegativeWeight
	}
	if cost > MaxCost {
		return false, ErrCostOutOfRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if a == b && !g.allowLoops {
		return false, ErrLoopNotAllowed
	}
	if _, ok := g.vertices[a]; !ok {
		return false, ErrVertexNotFound
	}
	if _, ok := g.vertices[b]; !ok {
		return false, ErrVertexNotFound
	}

	_, replaced := g.arcs[a][b]
	g.arcs[a][b] = cost
	g.arcs[b][a] = cost

	return replaced, nil
}

// RemoveLink deletes both arcs between a and b.
// Returns ErrEdgeNotFound when no link exists; the graph is then unchanged.
func (g *Graph) RemoveLink(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.arcs[a][b]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.arcs[a], b)
	delete(g.arcs[b], a)

	return nil
}

// HasLink reports whether the arc a→b (and therefore b→a) exists.
func (g *Graph) HasLink(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.arcs[a][b]

	return ok
}

// Cost returns the cost of arc a→b.
func (g *Graph) Cost(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.arcs[a][b]

	return c, ok
}

// Neighbors returns the arcs leaving id, sorted by target id.
// Returns ErrVertexNotFound for an unknown id.
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.arcs[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Arc, 0, len(bucket))
	for to, c := range bucket {
		out = append(out, Arc{From: id, To: to, Cost: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Arcs returns every directed arc sorted by (From, To).
func (g *Graph) Arcs() []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc, 0, g.arcCountLocked())
	for from, bucket := range g.arcs {
		for to, c := range bucket {
			out = append(out, Arc{From: from, To: to, Cost: c})
		}
	}
	sortArcs(out)

	return out
}

// Links returns one entry per logical link with From <= To, sorted.
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, 0, g.arcCountLocked()/2)
	for from, bucket := range g.arcs {
		for to, c := range bucket {
			if from <= to {
				out = append(out, Link{From: from, To: to, Cost: c})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// ArcCount returns the number of directed arcs (twice the link count, self-links once).
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCountLocked()
}

func (g *Graph) arcCountLocked() int {
	n := 0
	for _, bucket := range g.arcs {
		n += len(bucket)
	}

	return n
}

func sortArcs(arcs []Arc) {
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}
		return arcs[i].To < arcs[j].To
	})
}
