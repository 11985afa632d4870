package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Constructor adds routers and links to g.
type Constructor func(g *core.Graph, cfg config) error

const (
	minRingRouters = 3
	minLineRouters = 2
	minStarRouters = 2
	minGridSide    = 1
	minFullRouters = 2
)

func addRouters(g *core.Graph, cfg config, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil && !errors.Is(err, core.ErrVertexExists) {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

func link(g *core.Graph, cfg config, method, a, b string) error {
	cost := cfg.costFn(cfg.rng)
	if _, err := g.SetLink(a, b, cost); err != nil {
		return fmt.Errorf("%s: SetLink(%s-%s, %d): %w", method, a, b, cost, err)
	}
	return nil
}

// Ring connects n routers in a cycle.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRingRouters {
			return fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, "Ring", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, "Ring", cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Line connects n routers in a chain.
func Line(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minLineRouters {
			return fmt.Errorf("Line: n=%d < min=%d: %w", n, minLineRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, "Line", n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, "Line", cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star links router 0 to each of the other n-1 routers.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarRouters {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, "Star", n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, "Star", hub, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid lays rows×cols routers out row-major and links orthogonal
// neighbours.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, "Grid", rows*cols); err != nil {
			return err
		}
		at := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, "Grid", at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, "Grid", at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// Full links every pair of n routers.
func Full(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minFullRouters {
			return fmt.Errorf("Full: n=%d < min=%d: %w", n, minFullRouters, ErrTooFewRouters)
		}
		return randomPairs(g, cfg, "Full", n, 1)
	}
}

// RandomSparse links each pair of n routers independently with probability
// p. A random source is required when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewRouters)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		return randomPairs(g, cfg, "RandomSparse", n, p)
	}
}

// randomPairs visits unordered pairs {i<j} in ascending order so a fixed
// seed yields a fixed topology.
func randomPairs(g *core.Graph, cfg config, method string, n int, p float64) error {
	if err := addRouters(g, cfg, method, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p < 1 && (cfg.rng == nil || cfg.rng.Float64() >= p) {
				continue
			}
			if err := link(g, cfg, method, cfg.idFn(i), cfg.idFn(j)); err != nil {
				return err
			}
		}
	}
	return nil
}
