package outcome

// Map applies op to the contained error, passing success through
// unchanged. Package-level because a method cannot introduce the target
// type parameter.
func Map[E, F any](o Outcome[E], op func(E) F) Outcome[F] {
	if !o.failed {
		return Succeed[F]()
	}
	return Fail(op(o.err))
}

// Flatten collapses one level of nesting: an outer success stays a
// success, an outer failure yields its inner outcome directly.
func Flatten[E any](o Outcome[Outcome[E]]) Outcome[E] {
	if !o.failed {
		return Succeed[E]()
	}
	return o.err
}

// Contains reports whether o failed with an error equal to candidate.
func Contains[E comparable](o Outcome[E], candidate E) bool {
	return o.failed && o.err == candidate
}

// AndThen runs next only if o succeeded; a failure short-circuits and is
// returned as-is. This is the continuation form of the propagation
// operator in package guard.
func AndThen[E any](o Outcome[E], next func() Outcome[E]) Outcome[E] {
	if o.failed {
		return o
	}
	return next()
}

// Finally collapses the outcome to a concrete value via one of the two
// handlers.
func Finally[E, T any](o Outcome[E], onSuccess func() T, onFailure func(err E) T) T {
	if o.failed {
		return onFailure(o.err)
	}
	return onSuccess()
}
