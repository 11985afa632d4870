package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/topology"
)

// Build applies cons in order to an empty graph and returns its links.
// Later constructors may reuse router IDs; a repeated link keeps the last
// cost drawn for it.
func Build(opts []Option, cons ...Constructor) ([]topology.Link, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph()
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, err
		}
	}

	links := g.Links()
	out := make([]topology.Link, len(links))
	for i, l := range links {
		out[i] = topology.Link{A: l.From, B: l.To, Cost: l.Cost}
	}

	return out, nil
}

// Shapes lists the names accepted by Shape.
func Shapes() []string {
	return []string{"ring", "line", "star", "grid", "full", "random"}
}

// Shape resolves a shape name to a Constructor over n routers. For "grid",
// n is the side length; for "random", p is the link probability.
func Shape(name string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(name) {
	case "ring":
		return Ring(n), nil
	case "line":
		return Line(n), nil
	case "star":
		return Star(n), nil
	case "grid":
		return Grid(n, n), nil
	case "full":
		return Full(n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, name, strings.Join(Shapes(), ", "))
	}
}
