// File: types.go
// Role: Graph, Arc and Link types, GraphOption, sentinel errors and NewGraph.
package core

import (
	"errors"
	"math"
	"sync"
)

// MaxCost is the largest accepted link cost. math.MaxInt64 itself is
// reserved as the "unreachable" distance.
const MaxCost int64 = math.MaxInt64 - 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates that AddVertex was called for an ID already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent link.
	ErrEdgeNotFound = errors.New("core: link not found")

	// ErrNegativeWeight indicates a negative link cost.
	ErrNegativeWeight = errors.New("core: negative link cost")

	// ErrCostOutOfRange indicates a link cost above MaxCost.
	ErrCostOutOfRange = errors.New("core: link cost out of range")

	// ErrLoopNotAllowed indicates a self-link was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-link not allowed")
)

// Arc is one traversal direction of a link: From→To with a non-negative Cost.
type Arc struct {
	From string
	To   string
	Cost int64
}

// Link is the undirected view of a pair of mirrored arcs.
// Links() always reports From < To.
type Link struct {
	From string
	To   string
	Cost int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-links (SetLink(v, v, ...)).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory topology store.
//
// arcs[from][to] holds the cost of the directed arc from→to; every vertex
// owns a (possibly empty) bucket so Neighbors never has to allocate one.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices map[string]struct{}
	arcs     map[string]map[string]int64
}

// NewGraph creates an empty Graph. By default self-links are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		arcs:     make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-links are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
