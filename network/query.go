package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/router"
	"github.com/katalvlaran/netroute/topology"
)

// Cost returns the cost stored in origin's table for destination.
// On failure it returns NoRoute with ErrRouterNotFound (unknown origin) or
// ErrNoRoute (no entry, including unreachable destinations).
func (n *Network) Cost(origin, destination string) (int64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	r, ok := n.routers[origin]
	if !ok {
		return NoRoute, fmt.Errorf("%w: %q", ErrRouterNotFound, origin)
	}
	rt, ok := r.Route(destination)
	if !ok {
		return NoRoute, fmt.Errorf("%w: %s → %s", ErrNoRoute, origin, destination)
	}

	return rt.Cost, nil
}

// Path follows next hops from origin toward destination, asking each visited
// router for its own entry for destination. It returns the full sequence
// origin, ..., destination, or nil with ErrNoRoute when the chain breaks or
// revisits more routers than exist. Path(x, x) is [x].
func (n *Network) Path(origin, destination string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.routers[origin]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouterNotFound, origin)
	}

	noRoute := fmt.Errorf("%w: %s → %s", ErrNoRoute, origin, destination)
	path := []string{}
	cur := origin
	for cur != destination {
		if len(path) >= len(n.routers) {
			return nil, noRoute
		}
		path = append(path, cur)
		r, ok := n.routers[cur]
		if !ok {
			return nil, noRoute
		}
		rt, ok := r.Route(destination)
		if !ok || rt.NextHop == "" {
			return nil, noRoute
		}
		cur = rt.NextHop
	}

	return append(path, destination), nil
}

// Hops returns the route from origin to destination with the fewest links,
// ignoring cost. It answers from the current topology, not from the tables.
func (n *Network) Hops(origin, destination string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	res, err := bfs.Walk(n.graph, origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrRouterNotFound, origin)
	}
	path, err := res.PathTo(destination)
	if errors.Is(err, bfs.ErrUnreached) {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoRoute, origin, destination)
	}

	return path, err
}

// Partitions groups routers that can reach one another. A fully connected
// network has a single partition; an isolated router forms its own.
func (n *Network) Partitions() ([][]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	groups, err := bfs.Components(n.graph)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		sort.Strings(g)
	}

	return groups, nil
}

// Table returns a sorted copy of id's routing table.
func (n *Network) Table(id string) ([]router.Route, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	r, ok := n.routers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouterNotFound, id)
	}

	return r.Routes(), nil
}

// HasRouter reports whether id is in the network.
func (n *Network) HasRouter(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.routers[id]

	return ok
}

// Routers returns every router id sorted ascending.
func (n *Network) Routers() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.routerIDsLocked()
}

// Links returns every link once, with A < B, sorted.
func (n *Network) Links() []topology.Link {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.linksLocked()
}

// Stats reports the current sizes and last pass generation.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	routes := 0
	for _, r := range n.routers {
		routes += r.Len()
	}

	return Stats{
		Generation: n.generation,
		Routers:    len(n.routers),
		Links:      n.graph.ArcCount() / 2,
		Routes:     routes,
	}
}

// Snapshot copies every table and link under a single read lock, so all
// non-empty tables come from the same pass.
func (n *Network) Snapshot() Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := n.routerIDsLocked()
	s := Snapshot{
		Generation: n.generation,
		Routers:    make([]RouterTable, 0, len(ids)),
		Links:      n.linksLocked(),
	}
	for _, id := range ids {
		s.Routers = append(s.Routers, RouterTable{Router: id, Routes: n.routers[id].Routes()})
	}

	return s
}

func (n *Network) routerIDsLocked() []string {
	ids := make([]string, 0, len(n.routers))
	for id := range n.routers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (n *Network) linksLocked() []topology.Link {
	links := n.graph.Links()
	out := make([]topology.Link, 0, len(links))
	for _, l := range links {
		out = append(out, topology.Link{A: l.From, B: l.To, Cost: l.Cost})
	}

	return out
}
