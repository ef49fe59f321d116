package outcome

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/option"
)

// Outcome is a closed two-variant value: either the operation succeeded
// with no payload, or it failed with an error of type E. The zero value
// is the success variant.
type Outcome[E any] struct {
	err    E
	failed bool
}

func Succeed[E any]() Outcome[E] {
	return Outcome[E]{}
}

// Fail wraps a bare error value. There is no success path through this
// constructor; it models "an error occurred, of this concrete type".
func Fail[E any](err E) Outcome[E] {
	return Outcome[E]{err: err, failed: true}
}

func (o Outcome[E]) IsSuccess() bool {
	return !o.failed
}

func (o Outcome[E]) IsFailure() bool {
	return o.failed
}

// Err returns the contained error without consuming it: Some on failure,
// None on success.
func (o Outcome[E]) Err() option.Option[E] {
	if !o.failed {
		return option.None[E]()
	}
	return option.Some(o.err)
}

// Take removes the error, resetting the receiver to success. A second
// Take always returns None; the extracted error is yielded exactly once.
func (o *Outcome[E]) Take() option.Option[E] {
	if !o.failed {
		return option.None[E]()
	}
	err := o.err
	*o = Outcome[E]{}
	return option.Some(err)
}

// MustErr returns the contained error or panics if the outcome succeeded.
func (o Outcome[E]) MustErr() E {
	if !o.failed {
		panic("called Outcome.MustErr() on a succeeded Outcome")
	}
	return o.err
}

// Must is a no-op on success and panics with the formatted error on
// failure. It is an escape hatch for call sites where failure is a
// programming-logic violation, not a recoverable condition.
func (o Outcome[E]) Must() {
	if o.failed {
		panic(fmt.Sprintf("called Outcome.Must() on a failed Outcome: %+v", o.err))
	}
}

func (o Outcome[E]) String() string {
	if !o.failed {
		return "Succeeded"
	}
	return fmt.Sprintf("Failed(%v)", o.err)
}
