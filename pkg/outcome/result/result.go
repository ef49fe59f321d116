package result

// Unit is the empty payload for results that carry no success value.
type Unit struct{}

type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success payload and whether the result is Ok.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the error and whether the result is Err.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}
