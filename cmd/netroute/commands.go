package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/export"
	"github.com/katalvlaran/netroute/internal/shell"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/topology"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

// runShell serves metrics next to the menu when an address is configured;
// leaving the menu stops the server. Without a log file, info records would
// land between menu lines, so the shell logs at warn unless debug was asked
// for. An interrupt ends the menu like the exit option.
func (a *app) runShell(ctx context.Context) error {
	if a.cfg.Log.File == "" && !a.logger.Core().Enabled(zapcore.DebugLevel) && a.logger.Core().Enabled(zapcore.InfoLevel) {
		a.logger = a.logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	}
	if err := a.open(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		err := shell.New(a.net, a.in, a.out, a.logger).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if addr := a.cfg.Metrics.Addr; addr != "" {
		g.Go(func() error {
			return metrics.Serve(ctx, addr, a.reg, a.logger)
		})
	}

	return g.Wait()
}

func newCostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cost ORIGIN DESTINATION",
		Short: "Print the cost of the cheapest route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			c, err := a.net.Cost(args[0], args[1])
			if err != nil {
				return noRoute(args[0], args[1], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path ORIGIN DESTINATION",
		Short: "Print the hop-by-hop route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			p, err := a.net.Path(args[0], args[1])
			if err != nil {
				return noRoute(args[0], args[1], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p, " "))
			return err
		},
	}
}

func newHopsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hops ORIGIN DESTINATION",
		Short: "Print the route with the fewest links, ignoring cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			p, err := a.net.Hops(args[0], args[1])
			if err != nil {
				return noRoute(args[0], args[1], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p, " "))
			return err
		},
	}
}

func newPartitionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "partitions",
		Short: "List groups of routers that can reach each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			parts, err := a.net.Partitions()
			if err != nil {
				return err
			}
			for _, p := range parts {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func noRoute(origin, destination string, err error) error {
	if errors.Is(err, network.ErrNoRoute) {
		return fmt.Errorf("no route available between %s and %s: %w", origin, destination, err)
	}
	return err
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table [ROUTER]",
		Short: "Show the routing table of one router, or of all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			ids := args
			if len(ids) == 0 {
				ids = a.net.Routers()
			}
			for _, id := range ids {
				routes, err := a.net.Table(id)
				if err != nil {
					return err
				}
				if err := shell.RenderTable(cmd.OutOrStdout(), id, routes); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump topology and routing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := a.open(); err != nil {
				return err
			}
			if output == "" {
				return export.Encode(cmd.OutOrStdout(), a.net.Snapshot(), f)
			}

			var buf bytes.Buffer
			if err := export.Encode(&buf, a.net.Snapshot(), f); err != nil {
				return err
			}
			return afero.WriteFile(a.fs, output, buf.Bytes(), 0o644)
		},
	}
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatText), "output format: "+strings.Join(names, "|"))
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func newInitCmd(a *app) *cobra.Command {
	var (
		force            bool
		shape            string
		size             int
		seed             int64
		minCost, maxCost int64
		prob             float64
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a topology file: the sample, or a generated shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfg.Topology.File
			links := topology.Sample()
			if shape != "" {
				if minCost < 0 || maxCost < minCost {
					return fmt.Errorf("cost range [%d, %d] must satisfy 0 <= min <= max", minCost, maxCost)
				}
				con, err := builder.Shape(shape, size, prob)
				if err != nil {
					return err
				}
				links, err = builder.Build([]builder.Option{
					builder.WithSeed(seed),
					builder.WithCostFn(builder.UniformCostFn(minCost, maxCost)),
				}, con)
				if err != nil {
					return err
				}
			}

			if !force {
				exists, err := afero.Exists(a.fs, path)
				if err != nil {
					return err
				}
				if exists {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already exists; use --force to overwrite.\n", path)
					return nil
				}
			}
			if err := topology.WriteFile(a.fs, path, links); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d links to %s.\n", len(links), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&force, "force", false, "overwrite an existing file")
	f.StringVar(&shape, "shape", "", "generate instead of the sample: "+strings.Join(builder.Shapes(), "|"))
	f.IntVar(&size, "size", 5, "routers in the shape (side length for grid)")
	f.Int64Var(&seed, "seed", 1, "random seed for costs and random links")
	f.Int64Var(&minCost, "min-cost", 1, "lowest generated link cost")
	f.Int64Var(&maxCost, "max-cost", 10, "highest generated link cost")
	f.Float64Var(&prob, "p", 0.3, "link probability for the random shape")

	return cmd
}
