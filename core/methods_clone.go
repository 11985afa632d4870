// File: methods_clone.go
// Role: Deep copies for copy-on-write batch updates.
package core

// Clone returns a deep copy of g: same options, vertices and arcs, no shared maps.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		arcs:       make(map[string]map[string]int64, len(g.arcs)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, bucket := range g.arcs {
		nb := make(map[string]int64, len(bucket))
		for to, cost := range bucket {
			nb[to] = cost
		}
		c.arcs[from] = nb
	}

	return c
}
