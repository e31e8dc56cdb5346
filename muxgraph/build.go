// Graph construction: one-level, tree, and multi-level mux topologies.
//
// All three structures share one stage-wise builder. Node ids are assigned
// inputs-first, then stage by stage toward the output; MemIDs are assigned
// level-major in the same sweep. The numbering is fixed at construction and
// never changes afterwards.
package muxgraph

import (
	"fmt"

	"github.com/fpgakit/muxgen/circuit"
)

// Build constructs the mux graph for model m at the given implemented size
// (total inputs, including the constant rail when m.AddConstInput is set).
//
// Returns ErrInvalidSize when size < 1, or size < 2 for const-input models;
// ErrInvalidStructure for unknown structures or a non-positive level count
// on multi-level requests.
func Build(m circuit.Model, size int) (*MuxGraph, error) {
	if size < 1 {
		return nil, fmt.Errorf("model %q size %d: %w", m.Name, size, ErrInvalidSize)
	}
	if m.AddConstInput && size < 2 {
		return nil, fmt.Errorf("model %q size %d with constant input: %w", m.Name, size, ErrInvalidSize)
	}

	switch m.Structure {
	case circuit.StructOneLevel:
		return buildStages(size, size, false), nil
	case circuit.StructTree:
		return buildStages(size, 2, true), nil
	case circuit.StructMultiLevel:
		if m.NumLevels < 1 {
			return nil, fmt.Errorf("model %q requests %d levels: %w", m.Name, m.NumLevels, ErrInvalidStructure)
		}

		return buildStages(size, basisFor(size, m.NumLevels), false), nil
	default:
		return nil, fmt.Errorf("model %q structure %d: %w", m.Name, m.Structure, ErrInvalidStructure)
	}
}

// basisFor returns the smallest branch size b >= 2 with b^levels >= n,
// i.e. ceil(n^(1/levels)) computed without floating point.
func basisFor(n, levels int) int {
	if levels == 1 || n < 2 {
		return n
	}
	for b := 2; ; b++ {
		pow := 1
		for l := 0; l < levels && pow < n; l++ {
			pow *= b
		}
		if pow >= n {
			return b
		}
	}
}

// buildStages assembles the graph stage by stage from the inputs toward the
// single output.
//
// Non-tree stages allocate one memory bit per branch slot (one-hot
// selection, shared by every node in the stage); tree stages allocate a
// single shared select bit, wiring slot 0 through the inverted rail and
// slot 1 through the plain rail.
//
// Complexity: O(n) nodes and edges overall.
func buildStages(n, basis int, tree bool) *MuxGraph {
	g := &MuxGraph{}

	// Input nodes occupy NodeIDs 0..n-1.
	g.inputs = make([]NodeID, n)
	prev := make([]NodeID, n)
	for i := 0; i < n; i++ {
		g.inputs[i] = NodeID(i)
		prev[i] = NodeID(i)
		g.nodes = append(g.nodes, node{})
	}

	for len(prev) > 1 {
		k := len(prev)
		next := make([]NodeID, (k+basis-1)/basis)
		for m := range next {
			next[m] = NodeID(len(g.nodes))
			g.nodes = append(g.nodes, node{})
		}

		// Allocate this level's memory bits.
		slots := 1
		if !tree {
			slots = basis
			if k < basis {
				slots = k
			}
		}
		lvl := make([]MemID, slots)
		for j := range lvl {
			lvl[j] = MemID(g.numMems)
			g.numMems++
		}
		g.levels = append(g.levels, lvl)

		// Wire every stage node's children to its branch slots.
		for i := 0; i < k; i++ {
			m, j := i/basis, i%basis
			e := Edge{From: prev[i], To: next[m]}
			if tree {
				e.Mem = lvl[0]
				e.UseInvertedMem = j == 0
			} else {
				e.Mem = lvl[j]
			}
			eid := EdgeID(len(g.edges))
			g.edges = append(g.edges, e)
			g.nodes[e.From].out = append(g.nodes[e.From].out, eid)
			g.nodes[e.To].in = append(g.nodes[e.To].in, eid)
		}
		prev = next
	}

	g.outputs = []NodeID{prev[0]}

	return g
}
