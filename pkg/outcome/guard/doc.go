// Package guard provides the short-circuiting propagation operator for
// Outcome[E]. Go has no overridable try operator, so propagation is an
// explicit pair: Check panics with a private residual when the outcome
// failed, and a deferred Handle variant recovers that residual at the
// enclosing function's boundary, storing the failure in a named return.
//
// Key operations:
// - Check/CheckResult: continue on success, short-circuit on failure
// - Handle: recover a residual into an Outcome[E] return
// - HandleAs: recover and convert the error type at the boundary
// - HandleResult/HandleResultAs: recover into a companion result return
//
// A guarded function that runs to completion yields success through its
// named return's zero value, or by assigning Succeed explicitly:
//
//	func sync(ctx context.Context) (out outcome.Outcome[SyncError]) {
//		defer guard.HandleAs(&out, SyncErrorFromFetch)
//		guard.Check(fetch(ctx)) // short-circuits on failure
//		return outcome.Succeed[SyncError]()
//	}
//
// Residuals of a different error type than the handler expects, and
// panics that are not residuals at all, continue unwinding untouched.
package guard
