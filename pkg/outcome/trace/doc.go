// Package trace adds diagnostics around Outcome[E]: a Traced wrapper
// stamping each outcome with a uuid and UTC creation time, zap field
// rendering, and side-effect logging helpers that return their input
// unchanged.
//
// Key constructs:
// - Wrap: stamp an outcome with id and createdAt
// - Fields: render a Traced value as zap fields
// - Tee/TeeBoth: log the failure (or both lanes) without altering flow
package trace
