package outcome

// Cloner is implemented by error types that can produce an owned copy of
// themselves.
type Cloner[E any] interface {
	Clone() E
}

// Ref produces a view borrowing the contained error in place. Mutating
// through the returned pointer mutates the original; success maps to
// success.
func (o *Outcome[E]) Ref() Outcome[*E] {
	if !o.failed {
		return Succeed[*E]()
	}
	return Fail(&o.err)
}

// Deref materializes an owned error from a borrowed outcome by copying
// through one level of indirection. Success passes through.
func Deref[E any](o Outcome[*E]) Outcome[E] {
	if !o.failed {
		return Succeed[E]()
	}
	return Fail(*o.err)
}

// Cloned materializes an owned error from a borrowed outcome by cloning
// the pointee. Success passes through.
func Cloned[E Cloner[E]](o Outcome[*E]) Outcome[E] {
	if !o.failed {
		return Succeed[E]()
	}
	return Fail((*o.err).Clone())
}
