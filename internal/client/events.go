package client

import (
	"context"
	"time"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// Emitter forwards mutation events to an optional publisher. A failed
// publish is logged and never fails the operation that caused it.
type Emitter struct {
	publisher fastbill.EventPublisher
	logger    fastbill.Logger
	now       func() time.Time
}

// NewEmitter creates an emitter. A nil publisher disables events.
func NewEmitter(publisher fastbill.EventPublisher, logger fastbill.Logger) *Emitter {
	return &Emitter{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (e *Emitter) emit(ctx context.Context, service string, id fastbill.ID, result any) {
	if e == nil || e.publisher == nil {
		return
	}

	event := &fastbill.Event{
		Service:    service,
		ID:         id,
		Result:     result,
		OccurredAt: e.now().UTC(),
	}

	err := e.publisher.Publish(ctx, event)
	if err != nil && e.logger != nil {
		e.logger.Warn("publishing event failed", map[string]interface{}{
			"service": service,
			"id":      int64(id),
			"error":   err.Error(),
		})
	}
}
