package event

import (
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/collections/internal/event/topic"
)

// Emitter is a topic-keyed publish/subscribe hub with synchronous delivery.
//
// Handlers run in the goroutine that calls Trigger, in registration order.
// Each pass iterates a snapshot of the topic's registrations, so handlers
// registered during a pass are first invoked by the next Trigger.
type Emitter struct {
	registry *Registry
	logger   *slog.Logger

	triggered atomic.Uint64
	delivered atomic.Uint64
	stopped   atomic.Uint64
	failed    atomic.Uint64
}

// NewEmitter creates an empty emitter.
func NewEmitter(opts ...EmitterOption) *Emitter {
	config := defaultEmitterConfig()
	for _, opt := range opts {
		opt(&config)
	}

	logger := config.logger
	if config.source != "" {
		logger = logger.With(slog.String("source", config.source))
	}

	return &Emitter{
		registry: NewRegistry(),
		logger:   logger,
	}
}

// On registers h for every topic in the space/comma delimited list.
// Either all topics are registered or, on error, none.
func (e *Emitter) On(topics string, h Handler, opts ...SubscriptionOption) (Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	list, err := topic.ParseList(topics)
	if err != nil {
		return nil, ErrInvalidTopic
	}

	sub := newSubscription(uuid.NewString(), list, h, opts...)
	e.registry.Add(sub)
	return sub, nil
}

// OnFunc is a convenience method for registering a function handler.
func (e *Emitter) OnFunc(topics string, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return e.On(topics, fn, opts...)
}

// Once registers h so that each topic registration fires at most once.
func (e *Emitter) Once(topics string, h Handler, opts ...SubscriptionOption) (Subscription, error) {
	opts = append(opts, WithOnce())
	return e.On(topics, h, opts...)
}

// OnceFunc is Once with a function handler.
func (e *Emitter) OnceFunc(topics string, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return e.Once(topics, fn, opts...)
}

// Off removes matching registrations and returns how many were removed.
//
// An empty topics list selects every topic. A nil sub matches any callback;
// a nil receiver matches any receiver. An unparsable topic list matches
// nothing.
func (e *Emitter) Off(topics string, sub Subscription, receiver any) int {
	var list []topic.Topic
	if topics != "" {
		parsed, err := topic.ParseList(topics)
		if err != nil {
			return 0
		}
		list = parsed
	}

	var subID string
	if sub != nil {
		subID = sub.ID()
	}

	return e.registry.RemoveWhere(list, func(reg *registration) bool {
		if subID != "" && reg.sub.ID() != subID {
			return false
		}
		if receiver != nil && !reg.sub.hasReceiver(receiver) {
			return false
		}
		return true
	})
}

// Unsubscribe removes every registration of sub.
func (e *Emitter) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}
	if !e.registry.RemoveSubscription(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Trigger delivers an envelope for t to the topic's current registrations.
//
// Delivery stops early when a handler calls Envelope.Stop. A handler error
// aborts the pass and is returned as a *HandlerError. Panics are not
// recovered. Registrations removed during the pass are skipped if they
// have not run yet.
func (e *Emitter) Trigger(t topic.Topic, params, caller any) error {
	if !t.IsValid() {
		return ErrInvalidTopic
	}
	e.triggered.Add(1)

	regs := e.registry.Snapshot(t)
	if len(regs) == 0 {
		return nil
	}

	env := NewEnvelope(t, params, caller)
	for _, reg := range regs {
		if !reg.deliverable() {
			continue
		}
		env.Receiver = reg.sub.Receiver()
		if f := reg.sub.config.Filter; f != nil && !f(env) {
			continue
		}
		// One-shot registrations leave the registry before they run, so a
		// reentrant Trigger from inside the handler cannot fire them again.
		if reg.sub.IsOnce() && !e.registry.Claim(reg) {
			continue
		}

		if err := reg.sub.handler.Handle(env); err != nil {
			e.failed.Add(1)
			e.logger.Warn("event handler failed",
				slog.String("topic", t.String()),
				slog.String("subscription", reg.sub.ID()),
				slog.Any("error", err),
			)
			return &HandlerError{
				SubscriptionID: reg.sub.ID(),
				Topic:          t.String(),
				Err:            err,
			}
		}
		e.delivered.Add(1)

		if env.IsStopped() {
			e.stopped.Add(1)
			e.logger.Debug("event propagation stopped",
				slog.String("topic", t.String()),
				slog.String("subscription", reg.sub.ID()),
			)
			break
		}
	}
	return nil
}

// Reset discards every registration.
func (e *Emitter) Reset() {
	e.registry.Clear()
}

// Count returns the number of registrations for a topic.
func (e *Emitter) Count(t topic.Topic) int {
	return e.registry.CountByTopic(t)
}

// Topics returns the topics that have at least one registration.
func (e *Emitter) Topics() []topic.Topic {
	return e.registry.Topics()
}

// Stats returns emitter statistics.
func (e *Emitter) Stats() Stats {
	return Stats{
		Triggered:     e.triggered.Load(),
		Delivered:     e.delivered.Load(),
		Stopped:       e.stopped.Load(),
		Failed:        e.failed.Load(),
		Subscriptions: e.registry.Count(),
	}
}
