package network

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/router"
	"go.uber.org/zap"
)

// Network is the routing simulator's aggregate. The zero value is not usable;
// call New.
type Network struct {
	mu sync.RWMutex

	graph      *core.Graph
	routers    map[string]*router.Router
	generation uint64

	autoRecompute bool
	logger        *zap.Logger
	observer      Observer
	now           func() time.Time
}

// New returns an empty network.
func New(opts ...Option) *Network {
	n := &Network{
		graph:         core.NewGraph(),
		routers:       make(map[string]*router.Router),
		autoRecompute: true,
		logger:        zap.NewNop(),
		observer:      nopObserver{},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// AddRouter inserts a router with an empty table. An existing id yields
// ErrRouterExists and leaves its table untouched; an id with whitespace
// yields ErrInvalidRouterID. Never recomputes.
func (n *Network) AddRouter(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := addRouter(n.graph, id)
	if err == nil {
		n.routers[id] = router.New(id)
	}

	return n.finish(OpAddRouter, err, false, zap.String("router", id))
}

// RemoveRouter deletes every link touching id and then the router itself.
// Without auto-recompute the remaining tables still drop every entry that
// names id, so no table ever references a removed router.
func (n *Network) RemoveRouter(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := removeRouter(n.graph, id)
	if err == nil {
		delete(n.routers, id)
		if !n.autoRecompute {
			dropped := 0
			for _, r := range n.routers {
				dropped += r.Forget(id)
			}
			n.logger.Debug("stale routes dropped", zap.String("router", id), zap.Int("routes", dropped))
		}
	}

	return n.finish(OpRemoveRouter, err, n.autoRecompute, zap.String("router", id))
}

// AddLink installs (or overwrites) the symmetric link a-b with cost.
// Both routers must already exist.
func (n *Network) AddLink(a, b string, cost int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := addLink(n.graph, n.logger, a, b, cost)

	return n.finish(OpAddLink, err, n.autoRecompute,
		zap.String("from", a), zap.String("to", b), zap.Int64("cost", cost))
}

// RemoveLink deletes the link a-b in both directions.
func (n *Network) RemoveLink(a, b string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := removeLink(n.graph, a, b)

	return n.finish(OpRemoveLink, err, n.autoRecompute, zap.String("from", a), zap.String("to", b))
}

// RecomputeAll rebuilds every routing table from the current topology.
func (n *Network) RecomputeAll() PassStats {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.recomputeLocked()
}

// finish reports a mutation and, on success, optionally runs a pass.
// Caller holds the write lock.
func (n *Network) finish(op string, err error, recompute bool, fields ...zap.Field) error {
	n.observer.ObserveMutation(op, err)
	if err != nil {
		n.logger.Debug("mutation rejected", append(fields, zap.String("op", op), zap.Error(err))...)
		return err
	}
	n.logger.Info("topology changed", append(fields, zap.String("op", op))...)
	if recompute {
		n.recomputeLocked()
	}

	return nil
}

// The helpers below are shared by Network and Tx; they only touch g.

func addRouter(g *core.Graph, id string) error {
	if strings.ContainsFunc(id, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrInvalidRouterID, id)
	}
	return translate(g.AddVertex(id), "%q", id)
}

func removeRouter(g *core.Graph, id string) error {
	return translate(g.RemoveVertex(id), "%q", id)
}

func addLink(g *core.Graph, logger *zap.Logger, a, b string, cost int64) error {
	replaced, err := g.SetLink(a, b, cost)
	if err != nil {
		return translate(err, "%s-%s", a, b)
	}
	if replaced {
		logger.Info("link cost overwritten", zap.String("from", a), zap.String("to", b), zap.Int64("cost", cost))
	}

	return nil
}

func removeLink(g *core.Graph, a, b string) error {
	return translate(g.RemoveLink(a, b), "%s-%s", a, b)
}
