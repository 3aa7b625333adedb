package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/collections/internal/event/topic"
)

// Envelope is the message delivered to handlers for one Trigger call.
// A fresh envelope is built for every dispatch pass and dropped afterwards.
type Envelope struct {
	// ID uniquely identifies the dispatch pass.
	ID string

	// Topic is the topic that was triggered.
	Topic topic.Topic

	// Params is the topic-specific payload. It may be nil.
	Params any

	// Caller is the object that raised the event, usually a collection.
	Caller any

	// Receiver is the binding value of the registration currently being
	// invoked (see WithReceiver). It changes as the pass advances.
	Receiver any

	// Timestamp is when the envelope was created.
	Timestamp time.Time

	stopped bool
}

// NewEnvelope creates an envelope for the given topic.
func NewEnvelope(t topic.Topic, params, caller any) *Envelope {
	return &Envelope{
		ID:        uuid.NewString(),
		Topic:     t,
		Params:    params,
		Caller:    caller,
		Timestamp: time.Now(),
	}
}

// Stop prevents the remaining handlers of this pass from running.
func (e *Envelope) Stop() {
	e.stopped = true
}

// IsStopped reports whether Stop has been called.
func (e *Envelope) IsStopped() bool {
	return e.stopped
}

// ParamsAs returns the envelope params asserted to T.
func ParamsAs[T any](env *Envelope) (T, bool) {
	if env == nil {
		var zero T
		return zero, false
	}
	p, ok := env.Params.(T)
	return p, ok
}
