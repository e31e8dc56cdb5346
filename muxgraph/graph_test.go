// Package muxgraph tests: construction of the three structures, path
// decoding, branch decomposition, and topology-violation detection.
package muxgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fpgakit/muxgen/circuit"
)

func oneLevelModel() circuit.Model {
	return circuit.Model{Name: "mux_1level", Structure: circuit.StructOneLevel}
}

func treeModel() circuit.Model {
	return circuit.Model{Name: "mux_tree", Structure: circuit.StructTree}
}

func multiLevelModel(levels int) circuit.Model {
	return circuit.Model{Name: "mux_multilevel", Structure: circuit.StructMultiLevel, NumLevels: levels}
}

// TestBuild_OneLevel4 checks the canonical 4:1 one-level shape:
// 4 inputs, 1 output, 4 memory bits in a single level, one edge per input.
func TestBuild_OneLevel4(t *testing.T) {
	g, err := Build(oneLevelModel(), 4)
	require.NoError(t, err)

	require.Equal(t, 4, g.NumInputs())
	require.Equal(t, 1, g.NumOutputs())
	require.Equal(t, 4, g.NumMemBits())
	require.Equal(t, 1, g.NumLevels())
	require.Equal(t, 4, g.NumEdges())

	lvl, err := g.MemsAtLevel(0)
	require.NoError(t, err)
	require.Equal(t, []MemID{0, 1, 2, 3}, lvl)

	// Every input has exactly one direct edge to the sole output.
	for _, in := range g.Inputs() {
		edges, err := g.FindEdges(in, OutputID(0))
		require.NoError(t, err)
		require.Len(t, edges, 1)
		e, err := g.Edge(edges[0])
		require.NoError(t, err)
		require.Equal(t, MemID(in), e.Mem)
		require.False(t, e.UseInvertedMem)
	}
}

// TestDecode_OneLevel verifies the one-hot decode of a single-level graph:
// exactly one true entry, at the selected input's memory bit.
func TestDecode_OneLevel(t *testing.T) {
	g, err := Build(oneLevelModel(), 4)
	require.NoError(t, err)

	for in := 0; in < 4; in++ {
		bits, err := g.DecodeMemoryBits(InputID(in), OutputID(0))
		require.NoError(t, err)
		require.Len(t, bits, g.NumMemBits())
		for m, b := range bits {
			require.Equal(t, m == in, b, "input %d bit %d", in, m)
		}
	}
}

// TestDecode_Idempotent: identical arguments yield identical vectors.
func TestDecode_Idempotent(t *testing.T) {
	g, err := Build(treeModel(), 8)
	require.NoError(t, err)

	first, err := g.DecodeMemoryBits(InputID(5), OutputID(0))
	require.NoError(t, err)
	second, err := g.DecodeMemoryBits(InputID(5), OutputID(0))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestBuild_Tree4 checks the binary-tree shape: one shared select bit per
// level, slot 0 through the inverted rail.
func TestBuild_Tree4(t *testing.T) {
	g, err := Build(treeModel(), 4)
	require.NoError(t, err)

	require.Equal(t, 4, g.NumInputs())
	require.Equal(t, 2, g.NumLevels())
	require.Equal(t, 2, g.NumMemBits())

	// The decoded vector of input i spells i's binary digits, LSB at the
	// input-side level.
	for in := 0; in < 4; in++ {
		bits, err := g.DecodeMemoryBits(InputID(in), OutputID(0))
		require.NoError(t, err)
		require.Equal(t, in&1 == 1, bits[0], "input %d level 0", in)
		require.Equal(t, in&2 == 2, bits[1], "input %d level 1", in)
	}
}

// TestBuild_Tree5 covers a non-power-of-two tree: stage sizes 5-3-2-1 give
// three levels, and the odd tail nodes are wires rather than muxes.
func TestBuild_Tree5(t *testing.T) {
	g, err := Build(treeModel(), 5)
	require.NoError(t, err)

	require.Equal(t, 3, g.NumLevels())
	require.Equal(t, 3, g.NumMemBits())

	for in := 0; in < 5; in++ {
		bits, err := g.DecodeMemoryBits(InputID(in), OutputID(0))
		require.NoError(t, err)
		require.Len(t, bits, 3)
	}
}

// TestBuild_MultiLevel9x2 checks a 9:1 mux in two levels of 3:1 basis
// muxes: 3 one-hot bits per level, shared across the level's nodes.
func TestBuild_MultiLevel9x2(t *testing.T) {
	g, err := Build(multiLevelModel(2), 9)
	require.NoError(t, err)

	require.Equal(t, 9, g.NumInputs())
	require.Equal(t, 2, g.NumLevels())
	require.Equal(t, 6, g.NumMemBits())

	for in := 0; in < 9; in++ {
		bits, err := g.DecodeMemoryBits(InputID(in), OutputID(0))
		require.NoError(t, err)
		// Base-3 digits of the input select one bit per level.
		require.True(t, bits[in%3], "input %d level 0", in)
		require.True(t, bits[3+in/3%3], "input %d level 1", in)
		count := 0
		for _, b := range bits {
			if b {
				count++
			}
		}
		require.Equal(t, 2, count, "input %d asserts one bit per level", in)
	}
}

// TestBuildBranchGraphs_OneLevel: a one-level graph decomposes into a
// single basis graph with identical connectivity (round-trip property).
func TestBuildBranchGraphs_OneLevel(t *testing.T) {
	g, err := Build(oneLevelModel(), 4)
	require.NoError(t, err)

	branches := g.BuildBranchGraphs()
	require.Len(t, branches, 1)
	b := branches[0]
	require.Equal(t, 1, b.NumLevels())
	require.Equal(t, 1, b.NumOutputs())
	require.True(t, b.SameStructure(g))

	// Edge-for-edge round trip against the original.
	for _, in := range g.Inputs() {
		orig, err := g.FindEdges(in, OutputID(0))
		require.NoError(t, err)
		comp, err := b.FindEdges(in, OutputID(0))
		require.NoError(t, err)
		require.Equal(t, len(orig), len(comp))
	}
}

// TestBuildBranchGraphs_Tree: every mux node of a tree is a 2:1 basis, so
// the decomposition yields exactly one branch shape.
func TestBuildBranchGraphs_Tree(t *testing.T) {
	g, err := Build(treeModel(), 8)
	require.NoError(t, err)

	branches := g.BuildBranchGraphs()
	require.Len(t, branches, 1)
	b := branches[0]
	require.Equal(t, 2, b.NumInputs())
	require.Equal(t, 1, b.NumLevels())
	require.Equal(t, 1, b.NumMemBits())

	// Slot 0 rides the inverted rail, slot 1 the plain rail.
	e0, err := b.FindEdges(InputID(0), OutputID(0))
	require.NoError(t, err)
	require.Len(t, e0, 1)
	edge0, _ := b.Edge(e0[0])
	require.True(t, edge0.UseInvertedMem)

	e1, err := b.FindEdges(InputID(1), OutputID(0))
	require.NoError(t, err)
	require.Len(t, e1, 1)
	edge1, _ := b.Edge(e1[0])
	require.False(t, edge1.UseInvertedMem)
}

// TestBuildBranchGraphs_MultiLevelTail: 8:1 in two levels of 3:1 basis has
// stage sizes 8-3-1, producing a full 3:1 basis and a 2:1 tail shape.
func TestBuildBranchGraphs_MultiLevelTail(t *testing.T) {
	g, err := Build(multiLevelModel(2), 8)
	require.NoError(t, err)

	branches := g.BuildBranchGraphs()
	require.Len(t, branches, 2)
	require.Equal(t, 3, branches[0].NumInputs())
	require.Equal(t, 2, branches[1].NumInputs())
	for _, b := range branches {
		require.Equal(t, 1, b.NumLevels())
		require.Equal(t, 1, b.NumOutputs())
	}
}

// TestBuild_InvalidRequests covers the builder's fatal input conditions.
func TestBuild_InvalidRequests(t *testing.T) {
	_, err := Build(oneLevelModel(), 0)
	require.ErrorIs(t, err, ErrInvalidSize)

	constModel := oneLevelModel()
	constModel.AddConstInput = true
	_, err = Build(constModel, 1)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = Build(multiLevelModel(0), 8)
	require.ErrorIs(t, err, ErrInvalidStructure)

	bad := circuit.Model{Name: "mux_bad", Structure: circuit.Structure(99)}
	_, err = Build(bad, 4)
	require.ErrorIs(t, err, ErrInvalidStructure)
}

// TestDecode_InvalidPath rejects out-of-range ids.
func TestDecode_InvalidPath(t *testing.T) {
	g, err := Build(oneLevelModel(), 4)
	require.NoError(t, err)

	_, err = g.DecodeMemoryBits(InputID(4), OutputID(0))
	require.ErrorIs(t, err, ErrInvalidPath)
	_, err = g.DecodeMemoryBits(InputID(-1), OutputID(0))
	require.ErrorIs(t, err, ErrInvalidPath)
	_, err = g.DecodeMemoryBits(InputID(0), OutputID(1))
	require.ErrorIs(t, err, ErrInvalidPath)
}

// TestDecode_TopologyViolations hand-builds broken graphs: a node with two
// out-edges (duplicate edge) and a node with none (missing edge). Both must
// surface ErrUnsupportedTopology, never a silent repair.
func TestDecode_TopologyViolations(t *testing.T) {
	// Duplicate out-edges from input 0.
	dup := &MuxGraph{
		inputs:  []NodeID{0},
		outputs: []NodeID{1},
		nodes: []node{
			{out: []EdgeID{0, 1}},
			{in: []EdgeID{0, 1}},
		},
		edges: []Edge{
			{From: 0, To: 1, Mem: 0},
			{From: 0, To: 1, Mem: 1},
		},
		levels:  [][]MemID{{0, 1}},
		numMems: 2,
	}
	_, err := dup.DecodeMemoryBits(InputID(0), OutputID(0))
	require.ErrorIs(t, err, ErrUnsupportedTopology)

	// Input 0 has no out-edge at all.
	missing := &MuxGraph{
		inputs:  []NodeID{0},
		outputs: []NodeID{1},
		nodes:   []node{{}, {}},
		levels:  [][]MemID{{0}},
		numMems: 1,
	}
	_, err = missing.DecodeMemoryBits(InputID(0), OutputID(0))
	require.ErrorIs(t, err, ErrUnsupportedTopology)
	require.True(t, errors.Is(err, ErrUnsupportedTopology))
}

// TestSameStructure compares independently built graphs.
func TestSameStructure(t *testing.T) {
	a, err := Build(treeModel(), 8)
	require.NoError(t, err)
	b, err := Build(treeModel(), 8)
	require.NoError(t, err)
	c, err := Build(treeModel(), 16)
	require.NoError(t, err)

	require.True(t, a.SameStructure(b))
	require.False(t, a.SameStructure(c))
	require.False(t, a.SameStructure(nil))
}

// TestAddrWidth pins the minimal-address-width convention.
func TestAddrWidth(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4}
	for size, want := range cases {
		require.Equal(t, want, AddrWidth(size), "AddrWidth(%d)", size)
	}
}
