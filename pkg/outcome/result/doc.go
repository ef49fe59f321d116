// Package result provides the companion two-variant Result[T, E] that
// Outcome[E] converts to and from. It is a conversion target only, not a
// chaining framework.
//
// Common usage:
// - Ok/Err: construct a Result[T, E]
// - Value/Err: comma-ok access to the payload or the error
// - Unit: empty payload, so Result[Unit, E] models "success with nothing"
package result
