// Package module core types: ids, port directions, ports, bit slices, and
// child-instance records.
package module

import "fmt"

// ModuleID identifies a registered module. IDs are dense indices assigned
// in registration order and stay valid for the whole run.
type ModuleID int

// InvalidModuleID is returned by lookups that fail to resolve a module.
const InvalidModuleID ModuleID = -1

// Valid reports whether the id is non-negative.
func (id ModuleID) Valid() bool { return id >= 0 }

// Direction classifies a module port.
type Direction int

const (
	// DirInput is a locally driven input port.
	DirInput Direction = iota
	// DirOutput is an output port.
	DirOutput
	// DirGlobal is an input wired from the global scope (supplies,
	// programming clocks) rather than from the parent's local signals.
	DirGlobal
)

// String returns the Verilog-facing direction keyword.
func (d Direction) String() string {
	switch d {
	case DirOutput:
		return "output"
	default:
		// Global ports are declared as inputs; their scope is a wiring
		// concern, not a declaration concern.
		return "input"
	}
}

// Port is one named bus of a module.
type Port struct {
	Name      string
	Width     int
	Direction Direction
}

// BitSlice addresses bits [LSB..MSB] of a named parent-side signal.
type BitSlice struct {
	Name     string
	LSB, MSB int
}

// Bit returns the single-bit slice name[i].
func Bit(name string, i int) BitSlice { return BitSlice{Name: name, LSB: i, MSB: i} }

// Bus returns the full-width slice of a width-bit signal.
func Bus(name string, width int) BitSlice { return BitSlice{Name: name, LSB: 0, MSB: width - 1} }

// Width returns the number of bits the slice addresses.
func (s BitSlice) Width() int { return s.MSB - s.LSB + 1 }

// String renders the slice in Verilog range syntax.
func (s BitSlice) String() string {
	if s.LSB == s.MSB {
		return fmt.Sprintf("%s[%d]", s.Name, s.LSB)
	}

	return fmt.Sprintf("%s[%d:%d]", s.Name, s.MSB, s.LSB)
}

// ChildInstance is the completed record of one child instanced inside a
// parent: the child module, the instance name, and the mapping from child
// port names to parent-side slices.
type ChildInstance struct {
	Child ModuleID
	Name  string
	Conns map[string]BitSlice
}
