// Package bfs walks a core.Graph breadth-first, counting hops instead of
// cost. The network uses it to split the routers into partitions: groups
// that can reach each other over at least one chain of links.
//
// Neighbours are expanded in ascending ID order, so Order, Hops and Parent
// are deterministic for a given graph.
//
//	res, err := bfs.Walk(g, "A", bfs.WithMaxHops(2))
//	path, _ := res.PathTo("D")
//
// Link costs are ignored except by a WithFilter predicate.
package bfs
