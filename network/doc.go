// Package network owns a simulated router network: the router set, the
// mirrored link costs between them, and every router's routing table.
//
// Control flow:
//
//	mutation (AddRouter / RemoveRouter / AddLink / RemoveLink / Update)
//	  → full recomputation pass (RecomputeAll)
//	  → queries (Cost / Path / Table / Snapshot)
//
// Every recomputation pass rebuilds all tables from scratch: one Dijkstra run
// per router, O(R · E log R) overall. Tables are never patched incrementally,
// so an entry can never reference a removed router or an unreachable one.
//
// AddRouter never recomputes; the new router's table stays empty until the
// next pass. With auto-recompute enabled (the default) RemoveRouter, AddLink
// and RemoveLink run a pass inside the same critical section. Update batches
// several mutations on a copy of the topology and commits them together with
// exactly one pass, or not at all.
//
// Concurrency:
//
//	A sync.RWMutex serializes mutation+recompute against everything else.
//	Queries share the read lock and never observe a half-applied change or
//	tables from two different passes.
//
// Errors:
//
//	Every condition is non-fatal and reported through sentinel errors
//	matched with errors.Is. Cost and Path treat an unknown origin as
//	ErrRouterNotFound rather than a silent "no route".
package network
