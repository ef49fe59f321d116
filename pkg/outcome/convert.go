package outcome

import "github.com/ib-77/outcome/pkg/outcome/result"

// Result converts to the companion result type: success becomes
// Ok(Unit{}), failure becomes Err(e). Lossless and invertible via
// FromResult.
func (o Outcome[E]) Result() result.Result[result.Unit, E] {
	if !o.failed {
		return result.Ok[result.Unit, E](result.Unit{})
	}
	return result.Err[result.Unit, E](o.err)
}

// ErrOr converts to a companion result carrying the supplied success
// payload: success becomes Ok(value), failure becomes Err(e).
func ErrOr[T, E any](o Outcome[E], value T) result.Result[T, E] {
	if !o.failed {
		return result.Ok[T, E](value)
	}
	return result.Err[T, E](o.err)
}

// FromResult converts a companion result, discarding any success
// payload: Ok maps to success, Err(e) maps to failure.
func FromResult[T, E any](r result.Result[T, E]) Outcome[E] {
	if e, failed := r.Err(); failed {
		return Fail(e)
	}
	return Succeed[E]()
}
