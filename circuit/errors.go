// Package circuit: sentinel error set.
package circuit

import "errors"

// Sentinel errors for circuit-library operations.
var (
	// ErrDuplicateModel indicates a model name was registered twice.
	ErrDuplicateModel = errors.New("circuit: duplicate model name")

	// ErrModelNotFound indicates a ModelID or model name does not resolve.
	ErrModelNotFound = errors.New("circuit: model not found")

	// ErrInvalidModel indicates a model record violates a structural
	// constraint (missing pass-gate binding, empty name, bad port width).
	ErrInvalidModel = errors.New("circuit: invalid model record")

	// ErrDuplicatePort indicates two ports of one model share a name.
	ErrDuplicatePort = errors.New("circuit: duplicate port name")
)
