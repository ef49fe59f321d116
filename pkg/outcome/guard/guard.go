package guard

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/result"
)

// residual carries a failure out of the enclosing function until a
// deferred handler recovers it.
type residual struct {
	err any
}

// Check continues execution on success and short-circuits the enclosing
// function on failure. The residual must be recovered by a deferred
// Handle variant in the same function.
func Check[E any](o outcome.Outcome[E]) {
	if e, failed := o.Err().Get(); failed {
		panic(residual{err: e})
	}
}

// CheckResult is Check for the companion result type, yielding the
// success payload when no short-circuit occurs.
func CheckResult[T, E any](r result.Result[T, E]) T {
	if e, failed := r.Err(); failed {
		panic(residual{err: e})
	}
	v, _ := r.Value()
	return v
}

// Handle recovers a residual of error type E and stores the failure in
// out. Must be deferred. Residuals of other error types and foreign
// panics continue unwinding.
func Handle[E any](out *outcome.Outcome[E]) {
	if e := take[E](recover()); e.IsFailure() {
		*out = e
	}
}

// HandleAs recovers a residual of error type E, converts it, and stores
// the converted failure in out. This is the propagation boundary between
// layers with different error types. Must be deferred.
func HandleAs[E, F any](out *outcome.Outcome[F], convert func(E) F) {
	if e := take[E](recover()); e.IsFailure() {
		*out = outcome.Map(e, convert)
	}
}

// HandleResult recovers a residual of error type E into a companion
// result return. Must be deferred.
func HandleResult[T, E any](out *result.Result[T, E]) {
	if e := take[E](recover()); e.IsFailure() {
		*out = result.Err[T, E](e.MustErr())
	}
}

// HandleResultAs recovers a residual of error type E, converts it, and
// stores the converted error in a companion result return. Must be
// deferred.
func HandleResultAs[E, F, T any](out *result.Result[T, F], convert func(E) F) {
	if e := take[E](recover()); e.IsFailure() {
		*out = result.Err[T, F](convert(e.MustErr()))
	}
}

// take extracts a residual of error type E from a recovered panic value,
// re-panicking on anything else.
func take[E any](r any) outcome.Outcome[E] {
	if r == nil {
		return outcome.Succeed[E]()
	}
	res, ok := r.(residual)
	if !ok {
		panic(r)
	}
	e, ok := res.err.(E)
	if !ok {
		panic(r)
	}
	return outcome.Fail(e)
}
