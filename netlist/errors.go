// Package netlist: sentinel error set.
package netlist

import "errors"

// Sentinel errors for netlist synthesis. Stream failures are not sentinels:
// they carry the underlying I/O error wrapped with call-site context.
var (
	// ErrUnsupportedTechnology indicates a technology value outside the
	// closed set. Fatal: the circuit description is broken.
	ErrUnsupportedTechnology = errors.New("netlist: unsupported design technology")

	// ErrBadPassGate indicates a pass-gate model whose port shape cannot
	// implement a routing edge (three inputs, one output expected).
	ErrBadPassGate = errors.New("netlist: pass-gate model must expose three inputs and one output")

	// ErrBadStorage indicates a storage-cell model whose port shape cannot
	// implement a configuration bit (programming inputs plus the bit and
	// its complement as outputs).
	ErrBadStorage = errors.New("netlist: storage model must expose programming inputs and two outputs")

	// ErrNoStorageBinding indicates a configuration port without a valid
	// storage-cell model, or one model mixing storage cells.
	ErrNoStorageBinding = errors.New("netlist: configuration port lacks a storage-cell binding")

	// ErrMissingConnection indicates a positional instance whose connection
	// map leaves a child port unbound.
	ErrMissingConnection = errors.New("netlist: positional instance misses a port connection")
)
