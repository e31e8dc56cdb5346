// Package circuit core types: model identifiers, technology and structure
// enums, typed ports, and the Model fact record.
package circuit

// ModelID identifies a registered circuit model within a Library.
// IDs are dense indices assigned in registration order and are never reused.
type ModelID int

// InvalidModelID is returned by lookups that fail to resolve a model.
const InvalidModelID ModelID = -1

// Valid reports whether the id refers to a registered model slot.
func (id ModelID) Valid() bool { return id >= 0 }

// Technology enumerates the supported design technologies.
// The set is closed: dispatch sites must handle every constant and treat
// any other value as a configuration error.
type Technology int

const (
	// TechCMOS is a static CMOS implementation (pass-gates + SRAM cells).
	TechCMOS Technology = iota
	// TechResistive is a resistive (RRAM) implementation. Bitstream
	// generation for this technology is deliberately unimplemented: the
	// generator yields an empty vector, and no discrete memory module is
	// synthesized because configuration is embedded in the datapath.
	TechResistive
)

// String returns the canonical lower-case technology name.
func (t Technology) String() string {
	switch t {
	case TechCMOS:
		return "cmos"
	case TechResistive:
		return "resistive"
	default:
		return "unknown"
	}
}

// Kind enumerates what a circuit model implements.
type Kind int

const (
	// KindMux is a configurable multiplexer model.
	KindMux Kind = iota
	// KindGate is a combinational gate primitive (including MUX2 cells).
	KindGate
	// KindPassGate is a transmission-gate switching primitive.
	KindPassGate
	// KindStorage is a configuration-memory cell (SRAM-like).
	KindStorage
	// KindOther covers models the mux core does not synthesize (LUTs,
	// IO pads, ...) but whose configuration ports may still need a
	// companion memory module.
	KindOther
)

// GateKind refines KindGate models.
type GateKind int

const (
	// GateNone marks models that are not gates.
	GateNone GateKind = iota
	// GateMux2 is a primitive 2-input mux gate. Branch synthesis skips
	// these: they are atomic library cells, not decomposed further.
	GateMux2
	// GateOther is any other gate primitive.
	GateOther
)

// Structure selects the internal topology of a multiplexer model.
type Structure int

const (
	// StructOneLevel implements an N:1 mux as a single level of N
	// pass-gates with one-hot selection (N memory bits in one level).
	StructOneLevel Structure = iota
	// StructTree implements an N:1 mux as a binary tree of 2:1 stages
	// with one shared select bit per level.
	StructTree
	// StructMultiLevel implements an N:1 mux as a fixed number of levels
	// of basis muxes with one-hot selection per level.
	StructMultiLevel
)

// PortKind enumerates the roles a model port can play.
type PortKind int

const (
	// PortInput is a datapath or control input.
	PortInput PortKind = iota
	// PortOutput is a datapath output.
	PortOutput
	// PortConfig is a configuration-memory port (SRAM bit inputs).
	PortConfig
)

// Port is one named, directioned bus of a circuit model.
type Port struct {
	// Name is unique within the owning model.
	Name string
	// Width is the bus width in bits (>= 1).
	Width int
	// Kind classifies the port role.
	Kind PortKind
	// Global marks ports wired from the global scope (supplies, enables)
	// rather than from the parent module's local signals.
	Global bool
	// Storage binds a PortConfig port to the storage-cell model that
	// implements its bits. InvalidModelID for non-config ports.
	Storage ModelID
}

// Model is one read-only circuit-model fact record.
//
// For KindMux models, PassGate binds the switching primitive instanced per
// realized edge, Structure/NumLevels select the internal topology,
// AddConstInput reserves the last input as a hard-wired constant, and
// LocalEncoder compresses each level's one-hot bits into a binary address.
type Model struct {
	// Name is unique within the Library.
	Name string
	// Tech is the design technology.
	Tech Technology
	// Kind classifies the model.
	Kind Kind
	// Gate refines gate models; GateNone otherwise.
	Gate GateKind
	// Structure selects the mux topology; ignored for non-mux models.
	Structure Structure
	// NumLevels fixes the level count for StructMultiLevel; ignored
	// otherwise.
	NumLevels int
	// AddConstInput reserves the last mux input as a constant rail.
	AddConstInput bool
	// LocalEncoder enables per-level address encoding of config bits.
	LocalEncoder bool
	// PassGate is the switching primitive of a mux model.
	PassGate ModelID
	// ExplicitPortMap requests by-name port binding when this model is
	// instanced in generated netlists.
	ExplicitPortMap bool
	// Ports lists the model's ports in declaration order.
	Ports []Port
}
