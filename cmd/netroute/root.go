package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/logging"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/topology"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries process-wide state shared by all subcommands.
type app struct {
	fs     afero.Fs
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
	reg     *prometheus.Registry
	net     *network.Network
}

func run(ctx context.Context, args []string, a *app) int {
	root := newRootCmd(a)
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(a.errOut, "netroute: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "netroute",
		Short: "Shortest-path routing simulator",
		Long: `netroute loads an undirected weighted topology (one "A B cost" link per
line), computes a routing table for every router with Dijkstra, and answers
cost and path queries. Run without a subcommand for the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (yaml, toml or json)")
	pf.String("topology", topology.DefaultFile, "topology file")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("log-format", "console", "log format: console|json")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	pf.Bool("auto-recompute", true, "recompute routing tables after every change")

	root.AddCommand(
		newShellCmd(a),
		newCostCmd(a),
		newPathCmd(a),
		newHopsCmd(a),
		newPartitionsCmd(a),
		newTableCmd(a),
		newExportCmd(a),
		newInitCmd(a),
	)

	return root
}

// configure resolves settings and builds the logger.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.NewWithWriter(cfg.Log, a.errOut)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// open builds the network and loads the configured topology file,
// writing the sample topology first when bootstrapping is enabled.
func (a *app) open() error {
	path := a.cfg.Topology.File
	if a.cfg.Topology.Bootstrap {
		created, err := topology.EnsureFile(a.fs, path)
		if err != nil {
			return err
		}
		if created {
			a.logger.Info("wrote sample topology", zap.String("file", path))
		}
	}

	a.reg = prometheus.NewRegistry()
	rec, err := metrics.New(a.reg)
	if err != nil {
		return err
	}
	a.net = network.New(
		network.WithLogger(a.logger),
		network.WithObserver(rec),
		network.WithAutoRecompute(a.cfg.Network.AutoRecompute),
	)

	report, err := a.net.LoadTopologyFile(a.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("topology file %s not found; run 'netroute init' or enable topology.bootstrap: %w", path, err)
		}
		return err
	}
	a.logger.Info("topology loaded",
		zap.Int("links", report.Links),
		zap.Int("routers_added", report.RoutersAdded),
		zap.Int("skipped", len(report.Skipped)))

	return nil
}
