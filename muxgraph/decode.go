// Path decoding: requested input -> raw configuration-bit vector.
package muxgraph

import "fmt"

// DecodeMemoryBits walks the unique routing path from input in to output
// out and returns the raw configuration vector, one entry per memory bit.
//
// An edge on the path asserts its controlling bit when its invert-flag is
// false; an inverted edge conducts through the companion inverted rail, so
// its raw bit stays false. For a single-level graph the result is therefore
// one-hot (or all-false when the selected edge is inverted).
//
// Returns ErrInvalidPath for out-of-range ids and ErrUnsupportedTopology
// when the walk meets a node with no out-edge, a node with more than one
// out-edge, or fails to terminate at the requested output.
//
// Complexity: O(levels); the vector is a pure function of (graph, in, out).
func (g *MuxGraph) DecodeMemoryBits(in InputID, out OutputID) ([]bool, error) {
	if !in.Valid() || int(in) >= len(g.inputs) {
		return nil, fmt.Errorf("input %d of %d: %w", in, len(g.inputs), ErrInvalidPath)
	}
	if !out.Valid() || int(out) >= len(g.outputs) {
		return nil, fmt.Errorf("output %d of %d: %w", out, len(g.outputs), ErrInvalidPath)
	}

	bits := make([]bool, g.numMems)
	cur, target := g.inputs[in], g.outputs[out]
	for steps := 0; cur != target; steps++ {
		if steps > len(g.nodes) {
			return nil, fmt.Errorf("input %d never reaches output %d: %w", in, out, ErrUnsupportedTopology)
		}
		outs := g.nodes[cur].out
		switch {
		case len(outs) == 0:
			return nil, fmt.Errorf("no edge from input %d toward output %d: %w", in, out, ErrUnsupportedTopology)
		case len(outs) > 1:
			return nil, fmt.Errorf("duplicate out-edges at node %d: %w", cur, ErrUnsupportedTopology)
		}
		e := g.edges[outs[0]]
		if !e.UseInvertedMem {
			bits[e.Mem] = true
		}
		cur = e.To
	}

	return bits, nil
}
