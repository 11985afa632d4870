// Package dijkstra computes single-source shortest paths over a core.Graph
// and derives the first-hop table a router forwards with.
//
// Overview:
//
//   - Dijkstra returns the minimum cost from Source to every vertex
//     (Unreachable when no path exists) and, WithReturnPath, the predecessor map.
//   - FirstHops turns a predecessor map into next-hop entries by walking each
//     destination's chain backward until the node right after the source.
//   - Tree bundles both for callers that rebuild a routing table.
//
// Frontier ordering:
//
//	The min-heap orders by tentative distance, then by vertex id ascending.
//	Neighbours are relaxed in ascending id order and only a strictly shorter
//	distance replaces a predecessor, so equal-cost paths resolve the same way
//	on every run.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key.
//   - Space: O(V + E) for distance/predecessor maps and stale heap entries.
//
// Preconditions:
//
//	All arc costs must be non-negative. core.Graph enforces this on insert and
//	Dijkstra re-checks with an upfront scan (ErrNegativeWeight).
package dijkstra
