// Bitstream generation: path resolution, raw decode, local-encoder
// re-encoding, and technology dispatch.
package bitstream

import (
	"fmt"

	"github.com/fpgakit/muxgen/circuit"
	"github.com/fpgakit/muxgen/muxgraph"
	"github.com/fpgakit/muxgen/muxlib"
)

// PathID is a requested datapath selection. DefaultPathID asks for the
// model's implicit selection instead of a concrete input.
type PathID int

// DefaultPathID is the sentinel "no explicit path requested" value.
const DefaultPathID PathID = -1

// FindDefaultPath binds the default path to the implemented structure:
// the constant rail (last input) for const-input models, input 0 otherwise.
func FindDefaultPath(m circuit.Model, size int) PathID {
	if m.AddConstInput {
		return PathID(size - 1)
	}

	return 0
}

// Build computes the configuration vector routing input path to the sole
// output of the (model, size) multiplexer.
//
// CMOS models follow the full recipe below; resistive models yield an
// empty vector and nil error by design; any other technology value returns
// ErrUnsupportedTechnology.
//
// The vector length is a pure function of (model, size, encoder flag):
// NumMemBits without a local encoder, otherwise the sum over levels of
// 1 for single-bit levels and AddrWidth(levelSize) for the rest.
func Build(circuits *circuit.Library, lib *muxlib.Library, model circuit.ModelID, size int, path PathID) ([]bool, error) {
	m, err := circuits.Model(model)
	if err != nil {
		return nil, err
	}

	switch m.Tech {
	case circuit.TechCMOS:
		return buildCMOS(lib, m, model, size, path)
	case circuit.TechResistive:
		// Resistive muxes embed configuration in the datapath; bitstream
		// generation is intentionally not implemented for them.
		return nil, nil
	default:
		return nil, fmt.Errorf("model %q technology %d: %w", m.Name, m.Tech, ErrUnsupportedTechnology)
	}
}

// buildCMOS runs steps 1-5 of the recipe against the shared mux graph.
func buildCMOS(lib *muxlib.Library, m circuit.Model, model circuit.ModelID, size int, path PathID) ([]bool, error) {
	// The graph is keyed by the implemented topology; with a constant
	// input the last of the size inputs is the constant rail, not a real
	// datapath input.
	id, err := lib.GraphFor(model, size)
	if err != nil {
		return nil, err
	}
	g, err := lib.Graph(id)
	if err != nil {
		return nil, err
	}

	datapath := path
	if path == DefaultPathID {
		datapath = FindDefaultPath(m, size)
	} else if path < 0 || int(path) >= size {
		return nil, fmt.Errorf("path %d of mux size %d: %w", path, size, ErrPathOutOfRange)
	}
	if int(datapath) >= g.NumInputs() {
		return nil, fmt.Errorf("path %d exceeds %d graph inputs: %w", datapath, g.NumInputs(), ErrPathOutOfRange)
	}
	if g.NumOutputs() != 1 {
		return nil, fmt.Errorf("mux graph has %d outputs: %w", g.NumOutputs(), muxgraph.ErrUnsupportedTopology)
	}

	raw, err := g.DecodeMemoryBits(muxgraph.InputID(datapath), muxgraph.OutputID(0))
	if err != nil {
		return nil, err
	}

	if !m.LocalEncoder {
		return raw, nil
	}

	return encodeLevels(g, raw)
}

// encodeLevels re-encodes the raw vector level by level: single-bit levels
// pass through unchanged, larger levels become LSB-first binary addresses
// of the selected position (0 when nothing is selected).
func encodeLevels(g *muxgraph.MuxGraph, raw []bool) ([]bool, error) {
	var out []bool
	for l := 0; l < g.NumLevels(); l++ {
		mems, err := g.MemsAtLevel(l)
		if err != nil {
			return nil, err
		}
		if len(mems) == 1 {
			out = append(out, raw[mems[0]])
			continue
		}
		pos, err := levelPosition(raw, mems)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", l, err)
		}
		width := muxgraph.AddrWidth(len(mems))
		for i := 0; i < width; i++ {
			out = append(out, pos>>i&1 == 1)
		}
	}

	return out, nil
}

// levelPosition returns the zero-based position of the asserted bit within
// one level's raw group. At most one bit may be asserted (one-hot-or-none);
// none asserted means position 0, the idle selection.
func levelPosition(raw []bool, mems []muxgraph.MemID) (int, error) {
	pos, found := 0, false
	for i, mem := range mems {
		if !raw[mem] {
			continue
		}
		if found {
			return 0, fmt.Errorf("more than one asserted bit in a one-hot group: %w", muxgraph.ErrUnsupportedTopology)
		}
		pos, found = i, true
	}

	return pos, nil
}

// EncodedLength returns the final vector length for a graph under a local
// encoder: the sum over levels of 1 for single-bit levels and
// AddrWidth(levelSize) otherwise.
func EncodedLength(g *muxgraph.MuxGraph) int {
	total := 0
	for _, lvl := range g.Levels() {
		if len(lvl) == 1 {
			total++
			continue
		}
		total += muxgraph.AddrWidth(len(lvl))
	}

	return total
}
