// Package core provides the thread-safe topology store behind a simulated
// router network: a set of router ids and a set of directed, weighted arcs.
//
// A logical link between routers A and B is stored as two independent arcs,
// A→B and B→A, that always carry the same cost. SetLink and RemoveLink write
// and delete both arcs together, so a link is never partially present.
//
// Invariants:
//
//   - Every arc references ids currently present in the vertex set.
//   - RemoveVertex deletes every arc touching the vertex before the vertex itself.
//   - Arc costs are non-negative (ErrNegativeWeight otherwise).
//   - Self-links are rejected unless the Graph was built WithLoops().
//
// Determinism:
//
//	Vertices(), Neighbors() and Links() return results sorted by id, so
//	algorithms built on top of core iterate in a reproducible order.
//
// Concurrency:
//
//	One sync.RWMutex guards vertices and arcs. Mutations take the write lock,
//	queries the read lock.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//	HasVertex(id string) bool           // O(1)
//
//	// Link lifecycle
//	SetLink(a, b string, cost int64) (replaced bool, err error) // O(1)
//	RemoveLink(a, b string) error                              // O(1)
//	HasLink(a, b string) bool                                  // O(1)
//	Cost(a, b string) (int64, bool)                            // O(1)
//
//	// Enumeration
//	Vertices() []string                 // O(V log V)
//	Neighbors(id string) ([]Arc, error) // O(deg log deg)
//	Links() []Link                      // O(E log E)
//	Arcs() []Arc                        // O(E log E)
//	Clone() *Graph                      // O(V+E)
package core
