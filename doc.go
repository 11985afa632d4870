// Package netroute is a link-state routing simulator: routers joined by
// undirected weighted links, each holding a routing table of
// destination → (cost, next hop) computed with Dijkstra.
//
// 🚀 What is in the box?
//
//	• Full recomputation of every table after each topology change
//	• Deterministic tie-breaking, so equal-cost routes never flap
//	• Cost, hop-by-hop path, fewest-hop route and partition queries
//	• Topology files ("A B cost" per line), sample bootstrap and generators
//	• Snapshots as text, JSON, YAML or TOML; Prometheus counters
//
// Packages:
//
//	core/      — thread-safe undirected weighted graph of routers
//	dijkstra/  — single-source shortest paths and first-hop extraction
//	bfs/       — hop-count walks and connected partitions
//	router/    — a router and its routing table
//	topology/  — topology file format, sample and afero-backed I/O
//	builder/   — ring, line, star, grid, full and random topologies
//	network/   — routers + links + recompute, the main entry point
//	export/    — snapshot encoders
//	metrics/   — Prometheus observer and /metrics endpoint
//	logging/   — zap logger construction
//	config/    — viper-based configuration
//
// Quick ASCII example (the bootstrap topology):
//
//	    A──5──B
//	    │    /│
//	   10  2  3
//	    │/    │
//	    C──1──D
//
// A reaches D at cost 8 via A B D.
//
//	go install github.com/katalvlaran/netroute/cmd/netroute@latest
package netroute
