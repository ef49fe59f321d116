// Package outcome defines Outcome[E], the result of an operation that
// either succeeds with no payload or fails with an error value of type E.
// It is an Option with inverted short-circuit semantics: success
// continues execution, failure propagates upward.
//
// Highlights:
// - Succeed/Fail: construct an Outcome[E]
// - IsSuccess/IsFailure, Err: inspect without consuming
// - Take: destructive read, resetting the receiver to success
// - Map/Flatten/Contains: transform or compare the contained error
// - Result/ErrOr/FromResult: convert to and from the companion result
// - Must/MustErr: panicking escape hatches for contract violations
//
// The early-return propagation operator lives in the guard subpackage;
// diagnostics (id, timestamps, structured logging) live in trace.
package outcome
