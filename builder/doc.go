// Package builder generates synthetic router topologies for experiments
// and for `netroute init --shape`.
//
// A Constructor adds routers and links to a core.Graph; Build applies one or
// more constructors to a fresh graph and returns its links in the form the
// topology package writes to disk:
//
//	links, err := builder.Build([]builder.Option{builder.WithSeed(7),
//		builder.WithCostFn(builder.UniformCostFn(1, 10))}, builder.Ring(6))
//
// Router IDs come from an IDFn (spreadsheet-column letters by default:
// A..Z, AA, AB, ...). Costs come from a CostFn (constant 1 by default).
// Output is deterministic for a fixed seed.
//
// Topology files only carry links, so any router a constructor leaves
// without links is lost on the round trip through disk.
package builder
