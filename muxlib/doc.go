// Package muxlib is the build-once registry of mux graphs, keyed by
// (circuit model, implemented size).
//
// What:
//
//   - GraphFor materializes the graph for a key on first request and
//     returns the cached MuxID afterwards; the library owns the canonical
//     graph instance for the rest of the generation run.
//   - Muxes iterates MuxIDs in creation order, so every consumer that walks
//     the library emits artifacts in the same, reproducible order.
//
// Why:
//
//   - The bitstream generator and the netlist synthesizer never talk to
//     each other; correctness rests entirely on both indexing into the same
//     graph instance with the same stable numbering. A shared write-once
//     registry is the whole mechanism.
//
// Concurrency:
//
//   - GraphFor is guarded by a mutex: exclusive, at-most-once construction
//     per key; concurrent requesters of the same key reuse the first build.
//     All other methods are read-only after construction.
//
// Errors:
//
//   - ErrNotMux: the model exists but is not a multiplexer.
//   - ErrMuxNotFound: a MuxID does not resolve.
//   - circuit.ErrModelNotFound and muxgraph.ErrInvalidSize pass through
//     from the underlying lookups and the graph builder.
package muxlib
