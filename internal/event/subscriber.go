package event

import (
	"errors"
	"sync"
)

// ErrSubscriberClosed is returned when subscribing through a closed Subscriber.
var ErrSubscriberClosed = errors.New("subscriber is closed")

// Subscriber tracks the subscriptions a component makes on an emitter and
// removes them all on Close.
type Subscriber struct {
	emitter       *Emitter
	subscriptions []Subscription
	mu            sync.Mutex
	closed        bool
}

// NewSubscriber creates a new Subscriber wrapping the given emitter.
func NewSubscriber(emitter *Emitter) *Subscriber {
	return &Subscriber{
		emitter:       emitter,
		subscriptions: make([]Subscription, 0),
	}
}

// Subscribe registers handler for topics and tracks the subscription.
func (s *Subscriber) Subscribe(topics string, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSubscriberClosed
	}

	sub, err := s.emitter.On(topics, handler, opts...)
	if err != nil {
		return nil, err
	}

	s.subscriptions = append(s.subscriptions, sub)
	return sub, nil
}

// SubscribeFunc registers a function handler.
func (s *Subscriber) SubscribeFunc(topics string, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return s.Subscribe(topics, fn, opts...)
}

// SubscribeTyped registers a handler that receives params asserted to T.
func SubscribeTyped[T any](s *Subscriber, topics string, fn TypedHandlerFunc[T], opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return s.Subscribe(topics, AsHandler(fn), opts...)
}

// Unsubscribe removes a specific subscription.
func (s *Subscriber) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tracked := range s.subscriptions {
		if tracked.ID() == sub.ID() {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
			break
		}
	}

	return s.emitter.Unsubscribe(sub)
}

// PauseAll pauses every tracked subscription.
func (s *Subscriber) PauseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subscriptions {
		sub.Pause()
	}
}

// ResumeAll resumes every tracked subscription.
func (s *Subscriber) ResumeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subscriptions {
		sub.Resume()
	}
}

// Close removes all subscriptions and prevents new ones.
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, sub := range s.subscriptions {
		// Once-subscriptions may already be gone.
		_ = s.emitter.Unsubscribe(sub)
	}
	s.subscriptions = nil
	return nil
}

// Count returns the number of tracked subscriptions.
func (s *Subscriber) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscriptions)
}

// IsClosed returns true if the subscriber has been closed.
func (s *Subscriber) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
