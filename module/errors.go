// Package module: sentinel error set.
package module

import "errors"

// Sentinel errors for module-registry operations.
var (
	// ErrDuplicateModule indicates a module name was registered twice.
	ErrDuplicateModule = errors.New("module: duplicate module name")

	// ErrDuplicatePort indicates two ports of one module share a name.
	ErrDuplicatePort = errors.New("module: duplicate port name")

	// ErrModuleNotFound indicates a ModuleID or name does not resolve to a
	// registered module.
	ErrModuleNotFound = errors.New("module: module not found")

	// ErrInvalidPort indicates an empty port name or non-positive width.
	ErrInvalidPort = errors.New("module: invalid port")
)
