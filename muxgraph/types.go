// Package muxgraph core types: the four public index spaces, edges, and the
// immutable MuxGraph container with its read-only accessors.
package muxgraph

import (
	"fmt"
	"math/bits"
)

// InputID indexes a multiplexer input (0 .. NumInputs-1).
type InputID int

// OutputID indexes a multiplexer output (0 .. NumOutputs-1).
type OutputID int

// MemID indexes a configuration-memory bit (0 .. NumMemBits-1).
type MemID int

// EdgeID indexes a directed routing edge (0 .. NumEdges-1).
type EdgeID int

// NodeID indexes a routing node: inputs first, then internal nodes level by
// level, then outputs. Exposed so Edge endpoints stay strongly typed.
type NodeID int

// Invalid ids returned by failed lookups. Each id space has its own
// sentinel so the types never mix.
const (
	InvalidInputID  InputID  = -1
	InvalidOutputID OutputID = -1
	InvalidMemID    MemID    = -1
	InvalidEdgeID   EdgeID   = -1
	InvalidNodeID   NodeID   = -1
)

// Valid reports whether the id is non-negative.
func (id InputID) Valid() bool  { return id >= 0 }
func (id OutputID) Valid() bool { return id >= 0 }
func (id MemID) Valid() bool    { return id >= 0 }
func (id EdgeID) Valid() bool   { return id >= 0 }
func (id NodeID) Valid() bool   { return id >= 0 }

// Edge is one directed routing connection, controlled by exactly one
// configuration-memory bit.
//
// When UseInvertedMem is false the connection conducts while Mem's rail is
// asserted; when true it conducts while the companion inverted rail is
// asserted. Branch synthesis and bitstream decode both read this flag from
// the same edge, which keeps netlist polarity and bitstream polarity in
// agreement by construction.
type Edge struct {
	From           NodeID
	To             NodeID
	Mem            MemID
	UseInvertedMem bool
}

// node is an internal routing node. Every node on a datapath has exactly
// one out-edge; fan-in is bounded by the branch basis size.
type node struct {
	in  []EdgeID
	out []EdgeID
}

// MuxGraph is the immutable topology of one multiplexer shape.
// Built once by Build (or by the mux library on first request for a
// (model, size) key), then read by both generation backends.
type MuxGraph struct {
	inputs  []NodeID // InputID -> NodeID
	outputs []NodeID // OutputID -> NodeID
	nodes   []node
	edges   []Edge
	levels  [][]MemID // ordered partition of the MemID space
	numMems int
}

// NumInputs returns the number of multiplexer inputs.
func (g *MuxGraph) NumInputs() int { return len(g.inputs) }

// NumOutputs returns the number of multiplexer outputs.
func (g *MuxGraph) NumOutputs() int { return len(g.outputs) }

// NumMemBits returns the number of configuration-memory bits.
func (g *MuxGraph) NumMemBits() int { return g.numMems }

// NumLevels returns the number of level groups in the memory partition.
func (g *MuxGraph) NumLevels() int { return len(g.levels) }

// NumEdges returns the number of routing edges.
func (g *MuxGraph) NumEdges() int { return len(g.edges) }

// Inputs returns all input ids in ascending order.
func (g *MuxGraph) Inputs() []InputID {
	out := make([]InputID, len(g.inputs))
	for i := range g.inputs {
		out[i] = InputID(i)
	}

	return out
}

// Outputs returns all output ids in ascending order.
func (g *MuxGraph) Outputs() []OutputID {
	out := make([]OutputID, len(g.outputs))
	for i := range g.outputs {
		out[i] = OutputID(i)
	}

	return out
}

// MemsAtLevel returns a copy of the MemIDs grouped into level l.
func (g *MuxGraph) MemsAtLevel(l int) ([]MemID, error) {
	if l < 0 || l >= len(g.levels) {
		return nil, fmt.Errorf("level %d of %d: %w", l, len(g.levels), ErrInvalidPath)
	}
	out := make([]MemID, len(g.levels[l]))
	copy(out, g.levels[l])

	return out, nil
}

// Levels returns a copy of the full ordered memory partition.
func (g *MuxGraph) Levels() [][]MemID {
	out := make([][]MemID, len(g.levels))
	for i, lvl := range g.levels {
		out[i] = make([]MemID, len(lvl))
		copy(out[i], lvl)
	}

	return out
}

// Edge resolves an edge id to its record.
func (g *MuxGraph) Edge(id EdgeID) (Edge, error) {
	if !id.Valid() || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("edge id %d: %w", id, ErrInvalidPath)
	}

	return g.edges[id], nil
}

// FindEdges returns the direct edges from input in to output out.
// For a well-formed graph the result holds zero or one edge; callers treat
// anything larger as a topology violation.
func (g *MuxGraph) FindEdges(in InputID, out OutputID) ([]EdgeID, error) {
	if !in.Valid() || int(in) >= len(g.inputs) {
		return nil, fmt.Errorf("input %d of %d: %w", in, len(g.inputs), ErrInvalidPath)
	}
	if !out.Valid() || int(out) >= len(g.outputs) {
		return nil, fmt.Errorf("output %d of %d: %w", out, len(g.outputs), ErrInvalidPath)
	}
	var found []EdgeID
	target := g.outputs[out]
	for _, eid := range g.nodes[g.inputs[in]].out {
		if g.edges[eid].To == target {
			found = append(found, eid)
		}
	}

	return found, nil
}

// SameStructure reports whether g and other have identical connectivity:
// same id-space sizes, same level partition, and edge-for-edge identical
// records. Two independently built graphs for the same (model, size) key
// compare equal, which is what library dedup relies on.
func (g *MuxGraph) SameStructure(other *MuxGraph) bool {
	if other == nil {
		return false
	}
	if len(g.inputs) != len(other.inputs) ||
		len(g.outputs) != len(other.outputs) ||
		g.numMems != other.numMems ||
		len(g.edges) != len(other.edges) ||
		len(g.levels) != len(other.levels) {
		return false
	}
	for l := range g.levels {
		if len(g.levels[l]) != len(other.levels[l]) {
			return false
		}
		for i := range g.levels[l] {
			if g.levels[l][i] != other.levels[l][i] {
				return false
			}
		}
	}
	for i := range g.edges {
		if g.edges[i] != other.edges[i] {
			return false
		}
	}

	return true
}

// AddrWidth returns the minimal binary address width for selecting among
// dataSize one-hot bits: ceil(log2(dataSize)). Sizes below two need no
// address and yield zero.
func AddrWidth(dataSize int) int {
	if dataSize < 2 {
		return 0
	}

	return bits.Len(uint(dataSize - 1))
}
