// Package muxlib: sentinel error set.
package muxlib

import "errors"

// Sentinel errors for mux-library operations.
var (
	// ErrNotMux indicates a GraphFor request for a non-multiplexer model.
	ErrNotMux = errors.New("muxlib: model is not a multiplexer")

	// ErrMuxNotFound indicates a MuxID that does not resolve to a graph.
	ErrMuxNotFound = errors.New("muxlib: mux id not found")
)
