package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/network"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_WithNetwork(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	n := network.New(network.WithObserver(rec))
	_, err = n.LoadTopology(strings.NewReader("A B 5\nA C 10\nB C 2\nB D 3\nC D 1\n"))
	require.NoError(t, err)
	require.Error(t, n.AddRouter("A"))
	require.NoError(t, n.RemoveLink("A", "C"))

	expected := `
# HELP netroute_links Bidirectional links after the last pass.
# TYPE netroute_links gauge
netroute_links 4
# HELP netroute_routers Routers in the network after the last pass.
# TYPE netroute_routers gauge
netroute_routers 4
# HELP netroute_routes Routing-table entries across all routers after the last pass.
# TYPE netroute_routes gauge
netroute_routes 16
# HELP netroute_recompute_total Full routing-table recomputation passes.
# TYPE netroute_recompute_total counter
netroute_recompute_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"netroute_links", "netroute_routers", "netroute_routes", "netroute_recompute_total"))

	series, err := testutil.GatherAndCount(reg, "netroute_mutations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, series)
}

func TestRecorder_ObserveMutationLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.ObserveMutation(network.OpAddLink, nil)
	rec.ObserveMutation(network.OpAddLink, errors.New("x"))
	rec.ObserveMutation(network.OpAddLink, nil)
	rec.ObserveRecompute(network.PassStats{Generation: 7, Duration: time.Millisecond})

	expected := `
# HELP netroute_mutations_total Topology mutations by operation and result.
# TYPE netroute_mutations_total counter
netroute_mutations_total{op="add_link",result="error"} 1
netroute_mutations_total{op="add_link",result="ok"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "netroute_mutations_total"))

	gen := `
# HELP netroute_generation Sequence number of the last recomputation pass.
# TYPE netroute_generation gauge
netroute_generation 7
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(gen), "netroute_generation"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	rec.ObserveRecompute(network.PassStats{Generation: 1, Routers: 2})

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

