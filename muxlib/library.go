// The mux-graph registry: guarded build-once cache plus creation-order
// iteration.
package muxlib

import (
	"fmt"
	"sync"

	"github.com/fpgakit/muxgen/circuit"
	"github.com/fpgakit/muxgen/muxgraph"
)

// MuxID identifies one registered (model, size) mux shape.
type MuxID int

// InvalidMuxID is returned by failed lookups.
const InvalidMuxID MuxID = -1

// Valid reports whether the id refers to a registered mux slot.
func (id MuxID) Valid() bool { return id >= 0 }

// muxKey is the registry key: circuit model plus implemented size.
type muxKey struct {
	model circuit.ModelID
	size  int
}

// Library owns one mux graph per distinct (model, size) pair.
type Library struct {
	mu       sync.Mutex
	circuits *circuit.Library
	ids      map[muxKey]MuxID
	keys     []muxKey
	graphs   []*muxgraph.MuxGraph
}

// NewLibrary returns an empty registry bound to the given circuit facts.
func NewLibrary(circuits *circuit.Library) *Library {
	return &Library{
		circuits: circuits,
		ids:      make(map[muxKey]MuxID),
	}
}

// GraphFor returns the MuxID for (model, size), constructing the graph on
// first request. The build is guarded: exactly one construction per key,
// later (or concurrent) requesters reuse it.
//
// Returns ErrNotMux for non-multiplexer models and passes through
// circuit.ErrModelNotFound and muxgraph builder errors (zero inputs,
// size < 2 with a constant input).
func (l *Library) GraphFor(model circuit.ModelID, size int) (MuxID, error) {
	m, err := l.circuits.Model(model)
	if err != nil {
		return InvalidMuxID, err
	}
	if m.Kind != circuit.KindMux {
		return InvalidMuxID, fmt.Errorf("model %q: %w", m.Name, ErrNotMux)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := muxKey{model: model, size: size}
	if id, ok := l.ids[key]; ok {
		return id, nil
	}

	g, err := muxgraph.Build(m, size)
	if err != nil {
		return InvalidMuxID, err
	}
	id := MuxID(len(l.graphs))
	l.ids[key] = id
	l.keys = append(l.keys, key)
	l.graphs = append(l.graphs, g)

	return id, nil
}

// Graph resolves a MuxID to its owned, immutable graph.
func (l *Library) Graph(id MuxID) (*muxgraph.MuxGraph, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !id.Valid() || int(id) >= len(l.graphs) {
		return nil, fmt.Errorf("mux id %d: %w", id, ErrMuxNotFound)
	}

	return l.graphs[id], nil
}

// Model returns the circuit model a MuxID was registered under.
func (l *Library) Model(id MuxID) (circuit.ModelID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !id.Valid() || int(id) >= len(l.keys) {
		return circuit.InvalidModelID, fmt.Errorf("mux id %d: %w", id, ErrMuxNotFound)
	}

	return l.keys[id].model, nil
}

// Size returns the implemented size a MuxID was registered under.
func (l *Library) Size(id MuxID) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !id.Valid() || int(id) >= len(l.keys) {
		return 0, fmt.Errorf("mux id %d: %w", id, ErrMuxNotFound)
	}

	return l.keys[id].size, nil
}

// Muxes returns all MuxIDs in creation order. The order is stable and
// deterministic, which keeps downstream text output reproducible.
func (l *Library) Muxes() []MuxID {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]MuxID, len(l.graphs))
	for i := range l.graphs {
		out[i] = MuxID(i)
	}

	return out
}

// MaxMuxSize returns the largest registered implemented size, or zero for
// an empty library.
func (l *Library) MaxMuxSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	max := 0
	for _, k := range l.keys {
		if k.size > max {
			max = k.size
		}
	}

	return max
}
