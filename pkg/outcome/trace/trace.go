package trace

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Traced stamps an outcome with an id and creation time for correlation
// in logs. The core type stays payload-free; diagnostics live here.
type Traced[E any] struct {
	id        uuid.UUID
	createdAt time.Time
	out       outcome.Outcome[E]
}

func Wrap[E any](o outcome.Outcome[E]) Traced[E] {
	return Traced[E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		out:       o,
	}
}

func (t Traced[E]) Id() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t Traced[E]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Traced[E]) Outcome() outcome.Outcome[E] {
	return t.out
}

// Fields renders the traced outcome for structured logging.
func (t Traced[E]) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Stringer("id", t.id),
		zap.Time("created_at", t.createdAt),
		zap.Bool("success", t.out.IsSuccess()),
	}
	if e, failed := t.out.Err().Get(); failed {
		fields = append(fields, zap.Any("err", e))
	}
	return fields
}

// Tee logs a failure and returns the input unchanged; success passes
// through silently.
func Tee[E any](o outcome.Outcome[E], log *zap.Logger, msg string) outcome.Outcome[E] {
	if e, failed := o.Err().Get(); failed {
		log.Error(msg, zap.Any("err", e))
	}
	return o
}

// TeeBoth logs both lanes and returns the input unchanged.
func TeeBoth[E any](o outcome.Outcome[E], log *zap.Logger, msg string) outcome.Outcome[E] {
	if e, failed := o.Err().Get(); failed {
		log.Error(msg, zap.Any("err", e))
	} else {
		log.Info(msg)
	}
	return o
}
