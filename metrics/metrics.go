// Package metrics exposes recomputation and mutation activity of a
// network.Network as Prometheus metrics.
package metrics

import (
	"github.com/katalvlaran/netroute/network"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "netroute"

// Recorder implements network.Observer on top of a Prometheus registry.
type Recorder struct {
	recomputes prometheus.Counter
	duration   prometheus.Histogram
	routers    prometheus.Gauge
	links      prometheus.Gauge
	routes     prometheus.Gauge
	generation prometheus.Gauge
	mutations  *prometheus.CounterVec
}

var _ network.Observer = (*Recorder)(nil)

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompute_total",
			Help:      "Full routing-table recomputation passes.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Wall time of one recomputation pass.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 10),
		}),
		routers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "routers",
			Help:      "Routers in the network after the last pass.",
		}),
		links: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "links",
			Help:      "Bidirectional links after the last pass.",
		}),
		routes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "routes",
			Help:      "Routing-table entries across all routers after the last pass.",
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation",
			Help:      "Sequence number of the last recomputation pass.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Topology mutations by operation and result.",
		}, []string{"op", "result"}),
	}

	for _, c := range []prometheus.Collector{
		r.recomputes, r.duration, r.routers, r.links, r.routes, r.generation, r.mutations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveMutation counts one mutation attempt.
func (r *Recorder) ObserveMutation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.mutations.WithLabelValues(op, result).Inc()
}

// ObserveRecompute records one recomputation pass.
func (r *Recorder) ObserveRecompute(s network.PassStats) {
	r.recomputes.Inc()
	r.duration.Observe(s.Duration.Seconds())
	r.routers.Set(float64(s.Routers))
	r.links.Set(float64(s.Links))
	r.routes.Set(float64(s.Routes))
	r.generation.Set(float64(s.Generation))
}
