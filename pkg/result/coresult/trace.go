package coresult

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/result/internal/logging"
)

type fieldKey string

const (
	keyComputation fieldKey = "computation"
	keyID          fieldKey = "id"
	keySource      fieldKey = "source"
	keySourceID    fieldKey = "source_id"
	keyFunction    fieldKey = "function"
	keyLine        fieldKey = "line"
)

var current atomic.Pointer[logging.Logger]

func init() {
	current.Store(logging.Nop())
}

// SetLogger routes short-circuit traces to l at Debug level. A nil logger
// turns tracing off, which is the default.
func SetLogger(l *zap.Logger) {
	current.Store(logging.Wrap(l))
}

func traceShortCircuit[Ok, E any](name string, id uuid.UUID, aw Awaiter[Ok, E]) {
	fields := []logging.Field{
		logging.String(keyComputation, name),
		logging.Stringer(keyID, id),
		logging.String(keySource, aw.sourceName),
		logging.Stringer(keySourceID, aw.sourceID),
	}
	if aw.location != nil {
		fields = append(fields,
			logging.String(keyFunction, aw.location.function),
			logging.Int(keyLine, aw.location.line))
	}

	current.Load().Debug("computation short-circuited", fields...)
}
