package event

import (
	"reflect"
	"sync/atomic"

	"github.com/dshills/collections/internal/event/topic"
)

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving events.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStatePaused means the subscription is temporarily not receiving events.
	SubscriptionStatePaused

	// SubscriptionStateCancelled means every registration of the subscription
	// has been removed.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStatePaused:
		return "paused"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription is the handle returned by Emitter.On. It is the identity of
// the registered callback: pass it to Off or Unsubscribe to remove it.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Topics returns the topics the subscription was registered for.
	Topics() []topic.Topic

	// Receiver returns the binding value given with WithReceiver, or nil.
	Receiver() any

	// IsOnce reports whether each registration fires at most once.
	IsOnce() bool

	// State returns the current subscription state.
	State() SubscriptionState

	// IsActive returns true if the subscription can receive events.
	IsActive() bool

	// Pause temporarily stops event delivery to this subscription.
	Pause()

	// Resume restarts event delivery after a pause.
	Resume()
}

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig struct {
	// Receiver is exposed to the handler as Envelope.Receiver and used by
	// Off to select registrations.
	Receiver any

	// Once removes each topic registration right before its first delivery.
	Once bool

	// Filter is an optional predicate to filter envelopes.
	// If set, the handler only runs when Filter returns true.
	Filter FilterFunc
}

// SubscriptionOption is a function that configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithReceiver binds a receiver value to the subscription.
func WithReceiver(v any) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Receiver = v
	}
}

// WithOnce sets the subscription to fire once per topic.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

// subscription is the internal implementation of Subscription.
type subscription struct {
	id      string
	topics  []topic.Topic
	handler Handler
	config  SubscriptionConfig
	state   atomic.Int32

	// live counts registrations still present in the registry.
	live atomic.Int32
}

// newSubscription creates a new subscription.
func newSubscription(id string, topics []topic.Topic, h Handler, opts ...SubscriptionOption) *subscription {
	var config SubscriptionConfig
	for _, opt := range opts {
		opt(&config)
	}

	s := &subscription{
		id:      id,
		topics:  topics,
		handler: h,
		config:  config,
	}
	s.state.Store(int32(SubscriptionStateActive))
	return s
}

// ID returns the subscription ID.
func (s *subscription) ID() string {
	return s.id
}

// Topics returns a copy of the subscribed topics.
func (s *subscription) Topics() []topic.Topic {
	out := make([]topic.Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// Receiver returns the bound receiver.
func (s *subscription) Receiver() any {
	return s.config.Receiver
}

// IsOnce reports whether the subscription is one-shot.
func (s *subscription) IsOnce() bool {
	return s.config.Once
}

// State returns the current subscription state.
func (s *subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription is active.
func (s *subscription) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

// IsCancelled returns true if the subscription is cancelled.
func (s *subscription) IsCancelled() bool {
	return s.State() == SubscriptionStateCancelled
}

// Pause temporarily stops event delivery.
func (s *subscription) Pause() {
	s.state.CompareAndSwap(int32(SubscriptionStateActive), int32(SubscriptionStatePaused))
}

// Resume restarts event delivery.
func (s *subscription) Resume() {
	s.state.CompareAndSwap(int32(SubscriptionStatePaused), int32(SubscriptionStateActive))
}

// cancel permanently cancels the subscription.
func (s *subscription) cancel() {
	s.state.Store(int32(SubscriptionStateCancelled))
}

// hasReceiver reports whether v is the bound receiver.
func (s *subscription) hasReceiver(v any) bool {
	r := s.config.Receiver
	if r == nil {
		return false
	}
	// Comparing two identical uncomparable dynamic types panics.
	if t := reflect.TypeOf(r); !t.Comparable() {
		return false
	}
	return r == v
}

// registration is one subscription bound to one topic.
type registration struct {
	sub     *subscription
	topic   topic.Topic
	removed atomic.Bool
}

// deliverable reports whether the registration may still be invoked.
func (r *registration) deliverable() bool {
	return !r.removed.Load() && r.sub.IsActive()
}
