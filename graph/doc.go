// Package graph implements the weighted activation graph underlying both
// Nexus pipelines: named nodes carrying a mutable scalar activation, symmetric
// neighbor links for energy propagation and directed weighted edges for
// confluence scoring.
//
// The central operation is Resonate: inject energy into a node and propagate
// half of it to each direct neighbor in a single, non-recursive hop. Settle
// repeats bounded re-resonance rounds over nodes whose activation exceeds a
// threshold, visiting nodes in insertion order so results are reproducible.
//
// A Graph is not safe for concurrent mutation. Activation updates are plain
// read-modify-write operations on shared floats; callers sharing an instance
// across goroutines must provide external locking.
package graph
