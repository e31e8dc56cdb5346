// Package muxgraph: sentinel error set.
package muxgraph

import "errors"

// Sentinel errors for mux-graph construction and queries.
var (
	// ErrInvalidSize indicates a datapath size the builder cannot realize:
	// fewer than one input, or fewer than two inputs when the model adds a
	// constant input.
	ErrInvalidSize = errors.New("muxgraph: invalid datapath size")

	// ErrInvalidStructure indicates an unknown topology structure or an
	// unrealizable level count for a multi-level request.
	ErrInvalidStructure = errors.New("muxgraph: invalid mux structure")

	// ErrInvalidPath indicates an input or output id outside the graph's
	// id spaces.
	ErrInvalidPath = errors.New("muxgraph: path id out of range")

	// ErrUnsupportedTopology indicates a connectivity invariant violation:
	// a node with no out-edge before the output, more than one out-edge,
	// or a walk that fails to reach the requested output.
	ErrUnsupportedTopology = errors.New("muxgraph: unsupported topology")
)
