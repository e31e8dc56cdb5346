// Package circuit_test validates model registration and port queries.
package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fpgakit/muxgen/circuit"
)

func TestAddModel_Validation(t *testing.T) {
	lib := circuit.NewLibrary()

	_, err := lib.AddModel(circuit.Model{})
	require.ErrorIs(t, err, circuit.ErrInvalidModel)

	// A mux needs a pass-gate binding.
	_, err = lib.AddModel(circuit.Model{Name: "mux", Kind: circuit.KindMux})
	require.ErrorIs(t, err, circuit.ErrInvalidModel)

	// Duplicate port names within one model.
	_, err = lib.AddModel(circuit.Model{
		Name: "sram",
		Kind: circuit.KindStorage,
		Ports: []circuit.Port{
			{Name: "out", Width: 1, Kind: circuit.PortOutput},
			{Name: "out", Width: 1, Kind: circuit.PortOutput},
		},
	})
	require.ErrorIs(t, err, circuit.ErrDuplicatePort)

	// Zero-width ports are rejected.
	_, err = lib.AddModel(circuit.Model{
		Name:  "sram",
		Kind:  circuit.KindStorage,
		Ports: []circuit.Port{{Name: "out", Width: 0, Kind: circuit.PortOutput}},
	})
	require.ErrorIs(t, err, circuit.ErrInvalidModel)

	id, err := lib.AddModel(circuit.Model{Name: "sram", Kind: circuit.KindStorage})
	require.NoError(t, err)
	require.True(t, id.Valid())

	_, err = lib.AddModel(circuit.Model{Name: "sram", Kind: circuit.KindStorage})
	require.ErrorIs(t, err, circuit.ErrDuplicateModel)
}

func TestLookupsAndPortQueries(t *testing.T) {
	lib := circuit.NewLibrary()

	id, err := lib.AddModel(circuit.Model{
		Name: "lut4",
		Kind: circuit.KindOther,
		Tech: circuit.TechCMOS,
		Ports: []circuit.Port{
			{Name: "in", Width: 4, Kind: circuit.PortInput},
			{Name: "prog_clk", Width: 1, Kind: circuit.PortInput, Global: true},
			{Name: "out", Width: 1, Kind: circuit.PortOutput},
			{Name: "sram", Width: 16, Kind: circuit.PortConfig},
			{Name: "mode", Width: 2, Kind: circuit.PortConfig},
		},
	})
	require.NoError(t, err)

	require.Equal(t, id, lib.FindModel("lut4"))
	require.Equal(t, circuit.InvalidModelID, lib.FindModel("nope"))
	require.Equal(t, []circuit.ModelID{id}, lib.Models())

	m, err := lib.Model(id)
	require.NoError(t, err)
	require.Equal(t, "lut4", m.Name)

	_, err = lib.Model(circuit.ModelID(7))
	require.ErrorIs(t, err, circuit.ErrModelNotFound)

	inputs, err := lib.PortsByKind(id, circuit.PortInput, false)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	require.Equal(t, "in", inputs[0].Name)

	withGlobals, err := lib.PortsByKind(id, circuit.PortInput, true)
	require.NoError(t, err)
	require.Len(t, withGlobals, 2)

	globals, err := lib.GlobalPortsByKind(id, circuit.PortInput)
	require.NoError(t, err)
	require.Len(t, globals, 1)
	require.Equal(t, "prog_clk", globals[0].Name)

	bits, err := lib.NumConfigBits(id)
	require.NoError(t, err)
	require.Equal(t, 18, bits)
}
