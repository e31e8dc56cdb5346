// Package muxgraph models the internal topology of one configurable
// multiplexer as an immutable typed graph, and derives from it everything
// the two generation backends need: the per-path configuration-bit decode
// and the structural decomposition into branch (basis) multiplexers.
//
// What:
//
//   - Four disjoint index spaces: InputID, OutputID, MemID, EdgeID (plus
//     NodeID for internal routing nodes). They are distinct Go types so the
//     compiler rejects cross-kind misuse.
//   - Levels: an ordered partition of the memory-bit id space; each level is
//     the group of bits a local encoder would jointly re-encode.
//   - Edges: (from node, to node, controlling MemID, use-inverted-memory).
//     At most one edge connects a given (input, output) pair.
//   - Build constructs a graph for a circuit model and datapath size in one
//     of three structures: one-level, tree, or multi-level.
//   - DecodeMemoryBits walks the unique input→output path and returns the
//     raw configuration vector.
//   - BuildBranchGraphs returns the minimal set of single-level,
//     single-output basis graphs whose composition reproduces the original
//     input→output reachability.
//
// Invariants:
//
//   - Graphs are immutable after Build; ids are assigned once and never
//     renumbered, so the bitstream generator and the netlist synthesizer can
//     index into the same numbering without cross-communication.
//   - Every non-decomposed graph handed to module synthesis has exactly one
//     output; branch graphs additionally have exactly one level.
//
// Errors:
//
//   - ErrInvalidSize: zero/negative size, or size < 2 with a constant input.
//   - ErrInvalidPath: an input/output id outside the graph's id spaces.
//   - ErrUnsupportedTopology: connectivity invariant violated (missing
//     expected edge, duplicate out-edge, unreachable output). Never repaired
//     silently.
//
// Complexity: Build is O(N) nodes+edges for all structures;
// DecodeMemoryBits is O(levels); BuildBranchGraphs is O(N).
package muxgraph
