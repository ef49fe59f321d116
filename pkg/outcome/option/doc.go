// Package option provides a minimal optional value Option[T] used as the
// companion type for non-consuming and destructive error accessors.
//
// Common usage:
// - Some/None: construct an Option[T]
// - Get: comma-ok access to the contained value
// - Unwrap/UnwrapOr: extract the value, panicking or falling back on None
package option
