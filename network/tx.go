package network

import (
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/router"
	"go.uber.org/zap"
)

// Tx stages mutations for Update on a private copy of the topology.
// A Tx is only valid inside the Update callback.
type Tx struct {
	graph  *core.Graph
	logger *zap.Logger
	added  int
}

// AddRouter stages a new router. ErrRouterExists when already present.
func (tx *Tx) AddRouter(id string) error {
	err := addRouter(tx.graph, id)
	if err == nil {
		tx.added++
	}

	return err
}

// RemoveRouter stages removal of id and its links.
func (tx *Tx) RemoveRouter(id string) error { return removeRouter(tx.graph, id) }

// AddLink stages the symmetric link a-b.
func (tx *Tx) AddLink(a, b string, cost int64) error { return addLink(tx.graph, tx.logger, a, b, cost) }

// RemoveLink stages removal of a-b.
func (tx *Tx) RemoveLink(a, b string) error { return removeLink(tx.graph, a, b) }

// HasRouter reports whether id exists in the staged topology.
func (tx *Tx) HasRouter(id string) bool { return tx.graph.HasVertex(id) }

// Update runs fn against a copy of the topology. If fn returns nil the copy
// replaces the live topology and one recomputation pass runs, all under the
// write lock. If fn fails nothing changes and the error is returned as is.
func (n *Network) Update(fn func(tx *Tx) error) error {
	_, err := n.update(fn)
	return err
}

func (n *Network) update(fn func(tx *Tx) error) (*Tx, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	tx := &Tx{graph: n.graph.Clone(), logger: n.logger}
	if err := fn(tx); err != nil {
		n.observer.ObserveMutation(OpUpdate, err)
		n.logger.Debug("update rolled back", zap.Error(err))
		return nil, err
	}

	n.commitLocked(tx.graph)
	n.observer.ObserveMutation(OpUpdate, nil)
	n.recomputeLocked()

	return tx, nil
}

// commitLocked installs g and reconciles the router set with its vertices.
func (n *Network) commitLocked(g *core.Graph) {
	ids := g.Vertices()
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
		if _, ok := n.routers[id]; !ok {
			n.routers[id] = router.New(id)
		}
	}
	for id := range n.routers {
		if _, ok := keep[id]; !ok {
			delete(n.routers, id)
		}
	}
	n.graph = g
}
