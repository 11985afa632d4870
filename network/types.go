package network

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/router"
	"github.com/katalvlaran/netroute/topology"
	"go.uber.org/zap"
)

// NoRoute is the cost returned together with a non-nil error from Cost.
const NoRoute int64 = -1

// Sentinel errors for network operations.
var (
	// ErrEmptyRouterID indicates an empty router name.
	ErrEmptyRouterID = errors.New("network: router ID is empty")

	// ErrRouterExists indicates AddRouter for a router already in the network.
	ErrRouterExists = errors.New("network: router already exists")

	// ErrRouterNotFound indicates an operation or query named an unknown router.
	ErrRouterNotFound = errors.New("network: router not found")

	// ErrLinkNotFound indicates RemoveLink for routers that are not linked.
	ErrLinkNotFound = errors.New("network: link not found")

	// ErrNegativeCost indicates a link cost below zero.
	ErrNegativeCost = errors.New("network: link cost is negative")

	// ErrCostOutOfRange indicates a link cost above core.MaxCost.
	ErrCostOutOfRange = errors.New("network: link cost out of range")

	// ErrInvalidRouterID indicates a router name containing whitespace,
	// which the topology file format cannot represent.
	ErrInvalidRouterID = errors.New("network: router ID contains whitespace")

	// ErrSelfLink indicates a link from a router to itself.
	ErrSelfLink = errors.New("network: link endpoints are identical")

	// ErrNoRoute indicates the origin's table has no entry for the destination.
	ErrNoRoute = errors.New("network: no route")
)

// Mutation names reported to an Observer.
const (
	OpAddRouter    = "add_router"
	OpRemoveRouter = "remove_router"
	OpAddLink      = "add_link"
	OpRemoveLink   = "remove_link"
	OpUpdate       = "update"
)

// PassStats summarizes one recomputation pass.
type PassStats struct {
	Generation uint64
	Routers    int
	Links      int
	Routes     int
	Duration   time.Duration
}

// Observer receives notifications about mutations and recomputation passes.
// Calls happen while the network's write lock is held and must not call back
// into the Network.
type Observer interface {
	ObserveMutation(op string, err error)
	ObserveRecompute(stats PassStats)
}

type nopObserver struct{}

func (nopObserver) ObserveMutation(string, error) {}
func (nopObserver) ObserveRecompute(PassStats)    {}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the structured logger. Default zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithObserver installs an Observer, e.g. a metrics recorder.
func WithObserver(o Observer) Option {
	return func(n *Network) {
		if o != nil {
			n.observer = o
		}
	}
}

// WithAutoRecompute controls whether RemoveRouter, AddLink and RemoveLink
// trigger a recomputation pass. Default true.
func WithAutoRecompute(on bool) Option {
	return func(n *Network) { n.autoRecompute = on }
}

// WithClock replaces time.Now for pass durations.
func WithClock(now func() time.Time) Option {
	return func(n *Network) {
		if now != nil {
			n.now = now
		}
	}
}

// RouterTable is one router's table inside a Snapshot.
type RouterTable struct {
	Router string         `json:"router" yaml:"router" toml:"router"`
	Routes []router.Route `json:"routes" yaml:"routes" toml:"routes"`
}

// Snapshot is a consistent copy of the network taken under one read lock.
type Snapshot struct {
	Generation uint64          `json:"generation" yaml:"generation" toml:"generation"`
	Routers    []RouterTable   `json:"routers" yaml:"routers" toml:"routers"`
	Links      []topology.Link `json:"links" yaml:"links" toml:"links"`
}

// Stats reports sizes of the current network.
type Stats struct {
	Generation uint64
	Routers    int
	Links      int
	Routes     int
}

// LoadReport describes the outcome of LoadTopology.
type LoadReport struct {
	Links        int
	RoutersAdded int
	Skipped      []*topology.LineError
}

// translate maps core sentinels onto network sentinels, keeping context.
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var target error
	switch {
	case errors.Is(err, core.ErrEmptyVertexID):
		target = ErrEmptyRouterID
	case errors.Is(err, core.ErrVertexExists):
		target = ErrRouterExists
	case errors.Is(err, core.ErrVertexNotFound):
		target = ErrRouterNotFound
	case errors.Is(err, core.ErrEdgeNotFound):
		target = ErrLinkNotFound
	case errors.Is(err, core.ErrNegativeWeight):
		target = ErrNegativeCost
	case errors.Is(err, core.ErrCostOutOfRange):
		target = ErrCostOutOfRange
	case errors.Is(err, core.ErrLoopNotAllowed):
		target = ErrSelfLink
	default:
		return fmt.Errorf("network: "+format+": %w", append(args, err)...)
	}

	return fmt.Errorf("%w: "+format, append([]any{target}, args...)...)
}
