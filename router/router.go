// Package router defines a simulated router and its routing table.
//
// A Router only stores what it is told: SetRoute and Replace overwrite entries
// without validation. Correctness of the table (reachable destinations only,
// first-hop next hops) is owned by the network that computes it. A Router is
// not safe for concurrent use on its own; its owner serializes access.
package router

import "sort"

// Route is one routing-table entry: reach Destination at Cost by forwarding to NextHop.
type Route struct {
	Destination string `json:"destination" yaml:"destination" toml:"destination"`
	Cost        int64  `json:"cost" yaml:"cost" toml:"cost"`
	NextHop     string `json:"next_hop" yaml:"next_hop" toml:"next_hop"`
}

// Router is a named node holding a routing table.
type Router struct {
	id         string
	table      map[string]Route
	generation uint64
}

// New returns a Router with an empty table.
func New(id string) *Router {
	return &Router{id: id, table: make(map[string]Route)}
}

// ID returns the router's name.
func (r *Router) ID() string { return r.id }

// SetRoute unconditionally overwrites the entry for destination.
func (r *Router) SetRoute(destination string, cost int64, nextHop string) {
	r.table[destination] = Route{Destination: destination, Cost: cost, NextHop: nextHop}
}

// Route looks up destination. A missing entry means no known route.
func (r *Router) Route(destination string) (Route, bool) {
	rt, ok := r.table[destination]
	return rt, ok
}

// Routes returns a copy of the table sorted by destination.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.table))
	for _, rt := range r.table {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Destination < out[j].Destination })

	return out
}

// Forget deletes every entry that names id as destination or next hop and
// returns how many were dropped.
func (r *Router) Forget(id string) int {
	n := 0
	for dest, rt := range r.table {
		if dest == id || rt.NextHop == id {
			delete(r.table, dest)
			n++
		}
	}
	return n
}

// Len returns the number of entries.
func (r *Router) Len() int { return len(r.table) }

// Replace discards the whole table and installs routes, stamping the
// recomputation pass that produced them.
func (r *Router) Replace(routes []Route, generation uint64) {
	table := make(map[string]Route, len(routes))
	for _, rt := range routes {
		table[rt.Destination] = rt
	}
	r.table = table
	r.generation = generation
}

// Generation returns the recomputation pass the table came from (0 = never computed).
func (r *Router) Generation() uint64 { return r.generation }
