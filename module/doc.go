// Package module is the hierarchical registry of generated hardware
// modules: named, directioned ports plus child-instance records bound via
// named port-to-slice maps.
//
// What:
//
//   - Manager hands out stable ModuleIDs; modules are created once during
//     synthesis and never deleted, so instances reference modules by id,
//     never by pointer into a resizable container.
//   - A module's ports carry a direction (input, output, global) and a bus
//     width; no two ports within one module share a name.
//   - AddChildModule records a completed parent/child relationship — it is
//     called after the corresponding instance has been emitted, not as a
//     request to emit one. Instancing never transfers ownership: many
//     parents may instance the same child.
//
// Errors:
//
//   - ErrDuplicateModule: re-adding an existing module name.
//   - ErrDuplicatePort: two ports of one module share a name.
//   - ErrModuleNotFound: an id or name fails to resolve; emission helpers
//     treat this as an ordering bug in the caller and never auto-create.
//   - ErrInvalidPort: empty name or non-positive width.
//
// The registry is write-once-per-name / read-many and is not synchronized;
// synthesis is single-threaded by design.
package module
