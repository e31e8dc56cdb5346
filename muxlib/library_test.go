// Package muxlib_test exercises the registry contract: at-most-once
// construction per key, creation-order iteration, and request validation.
package muxlib_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fpgakit/muxgen/circuit"
	"github.com/fpgakit/muxgen/muxgraph"
	"github.com/fpgakit/muxgen/muxlib"
)

// fixture registers a pass-gate and two mux models and returns both
// libraries.
func fixture(t *testing.T) (*circuit.Library, *muxlib.Library, circuit.ModelID, circuit.ModelID) {
	t.Helper()
	circuits := circuit.NewLibrary()

	tgate, err := circuits.AddModel(circuit.Model{
		Name: "tgate",
		Kind: circuit.KindPassGate,
		Tech: circuit.TechCMOS,
		Ports: []circuit.Port{
			{Name: "in", Width: 1, Kind: circuit.PortInput},
			{Name: "sel", Width: 1, Kind: circuit.PortInput},
			{Name: "selb", Width: 1, Kind: circuit.PortInput},
			{Name: "out", Width: 1, Kind: circuit.PortOutput},
		},
	})
	require.NoError(t, err)

	muxOne, err := circuits.AddModel(circuit.Model{
		Name:      "mux_1level",
		Kind:      circuit.KindMux,
		Tech:      circuit.TechCMOS,
		Structure: circuit.StructOneLevel,
		PassGate:  tgate,
	})
	require.NoError(t, err)

	muxTree, err := circuits.AddModel(circuit.Model{
		Name:      "mux_tree",
		Kind:      circuit.KindMux,
		Tech:      circuit.TechCMOS,
		Structure: circuit.StructTree,
		PassGate:  tgate,
	})
	require.NoError(t, err)

	return circuits, muxlib.NewLibrary(circuits), muxOne, muxTree
}

// TestGraphFor_BuildOnce: the second request for a key returns the same id
// and the same owned graph instance.
func TestGraphFor_BuildOnce(t *testing.T) {
	_, lib, muxOne, _ := fixture(t)

	first, err := lib.GraphFor(muxOne, 4)
	require.NoError(t, err)
	second, err := lib.GraphFor(muxOne, 4)
	require.NoError(t, err)
	require.Equal(t, first, second)

	g1, err := lib.Graph(first)
	require.NoError(t, err)
	g2, err := lib.Graph(second)
	require.NoError(t, err)
	require.Same(t, g1, g2)
}

// TestMuxes_CreationOrder: iteration follows first-request order, not key
// order.
func TestMuxes_CreationOrder(t *testing.T) {
	_, lib, muxOne, muxTree := fixture(t)

	idTree16, err := lib.GraphFor(muxTree, 16)
	require.NoError(t, err)
	idOne4, err := lib.GraphFor(muxOne, 4)
	require.NoError(t, err)
	idOne2, err := lib.GraphFor(muxOne, 2)
	require.NoError(t, err)

	require.Equal(t, []muxlib.MuxID{idTree16, idOne4, idOne2}, lib.Muxes())
	require.Equal(t, 16, lib.MaxMuxSize())

	model, err := lib.Model(idOne4)
	require.NoError(t, err)
	require.Equal(t, muxOne, model)
	size, err := lib.Size(idOne4)
	require.NoError(t, err)
	require.Equal(t, 4, size)
}

// TestGraphFor_InvalidRequests: non-mux models, unknown models, zero
// inputs, and const-input size conflicts are all rejected.
func TestGraphFor_InvalidRequests(t *testing.T) {
	circuits, lib, _, _ := fixture(t)

	tgate := circuits.FindModel("tgate")
	_, err := lib.GraphFor(tgate, 4)
	require.ErrorIs(t, err, muxlib.ErrNotMux)

	_, err = lib.GraphFor(circuit.ModelID(99), 4)
	require.ErrorIs(t, err, circuit.ErrModelNotFound)

	muxOne := circuits.FindModel("mux_1level")
	_, err = lib.GraphFor(muxOne, 0)
	require.ErrorIs(t, err, muxgraph.ErrInvalidSize)

	constMux, err := circuits.AddModel(circuit.Model{
		Name:          "mux_const",
		Kind:          circuit.KindMux,
		Tech:          circuit.TechCMOS,
		Structure:     circuit.StructOneLevel,
		PassGate:      tgate,
		AddConstInput: true,
	})
	require.NoError(t, err)
	_, err = lib.GraphFor(constMux, 1)
	require.ErrorIs(t, err, muxgraph.ErrInvalidSize)
}

// TestGraph_NotFound: invalid MuxIDs never resolve.
func TestGraph_NotFound(t *testing.T) {
	_, lib, _, _ := fixture(t)

	_, err := lib.Graph(muxlib.MuxID(0))
	require.ErrorIs(t, err, muxlib.ErrMuxNotFound)
	_, err = lib.Graph(muxlib.InvalidMuxID)
	require.ErrorIs(t, err, muxlib.ErrMuxNotFound)
}

// TestGraphFor_Concurrent: concurrent requesters of one key all observe the
// same id (exclusive, at-most-once construction).
func TestGraphFor_Concurrent(t *testing.T) {
	_, lib, muxOne, _ := fixture(t)

	const workers = 16
	ids := make([]muxlib.MuxID, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			id, err := lib.GraphFor(muxOne, 32)
			if err != nil {
				t.Error(err)
				return
			}
			ids[w] = id
		}(w)
	}
	wg.Wait()

	for _, id := range ids {
		require.Equal(t, ids[0], id)
	}
	require.Len(t, lib.Muxes(), 1)
}
