// Package bitstream: sentinel error set.
package bitstream

import "errors"

// Sentinel errors for bitstream generation.
var (
	// ErrPathOutOfRange indicates a requested path id outside
	// [0, mux size); a caller contract violation, never clamped.
	ErrPathOutOfRange = errors.New("bitstream: path id out of range")

	// ErrUnsupportedTechnology indicates a design-technology value the
	// generator does not recognize. Resistive technology is NOT this case:
	// it is a deliberate empty-vector no-op.
	ErrUnsupportedTechnology = errors.New("bitstream: unsupported design technology")
)
