package collection

import (
	"github.com/dshills/collections/internal/event"
	"github.com/dshills/collections/internal/event/topic"
)

// Collection event topics.
const (
	// TopicAdd is triggered when items are added. Params: Added[T].
	TopicAdd topic.Topic = "add"

	// TopicChange is triggered last by every mutation. Params: Changed.
	TopicChange topic.Topic = "change"

	// TopicRemove is triggered when items are removed. Params: Removed[T].
	TopicRemove topic.Topic = "remove"

	// TopicReplace is triggered when an item is swapped. Params: Replaced[T].
	TopicReplace topic.Topic = "replace"

	// TopicClear is triggered when the collection is emptied. Params: Cleared.
	TopicClear topic.Topic = "clear"

	// TopicSort is triggered by Sorted after re-ordering. Params: Resorted.
	TopicSort topic.Topic = "sort"
)

// Event is the closed set of collection event payloads: Added, Removed,
// Replaced, Cleared, Resorted and Changed.
type Event interface {
	// Topic returns the topic the payload is delivered on.
	Topic() topic.Topic

	isEvent()
}

// Operation records one item and its position.
// For additions Index is where the item ended up; for removals it is where
// the item was before removal.
type Operation[T any] struct {
	Item  T
	Index int
}

// Added is the payload of TopicAdd.
type Added[T any] struct {
	Items      []T
	Operations []Operation[T]
}

// Removed is the payload of TopicRemove.
type Removed[T any] struct {
	Items      []T
	Operations []Operation[T]

	// Clear is true when the removal is part of Clear.
	Clear bool
}

// Replaced is the payload of TopicReplace.
type Replaced[T any] struct {
	Source      T
	Replacement T
	Index       int
}

// Cleared is the payload of TopicClear.
type Cleared struct{}

// Resorted is the payload of TopicSort.
type Resorted struct{}

// Changed is the payload of TopicChange.
type Changed struct{}

func (Added[T]) Topic() topic.Topic    { return TopicAdd }
func (Removed[T]) Topic() topic.Topic  { return TopicRemove }
func (Replaced[T]) Topic() topic.Topic { return TopicReplace }
func (Cleared) Topic() topic.Topic     { return TopicClear }
func (Resorted) Topic() topic.Topic    { return TopicSort }
func (Changed) Topic() topic.Topic     { return TopicChange }

func (Added[T]) isEvent()    {}
func (Removed[T]) isEvent()  {}
func (Replaced[T]) isEvent() {}
func (Cleared) isEvent()     {}
func (Resorted) isEvent()    {}
func (Changed) isEvent()     {}

// Listen subscribes fn to the topic of payload type E.
//
//	collection.Listen(list.Events(), func(e collection.Added[string], _ *event.Envelope) error {
//	    fmt.Println("added", e.Items)
//	    return nil
//	})
//
// E must be a concrete payload type; the interface type Event itself is
// rejected with ErrUntypedEvent.
func Listen[E Event](em *event.Emitter, fn func(e E, env *event.Envelope) error, opts ...event.SubscriptionOption) (event.Subscription, error) {
	var zero E
	if any(zero) == nil {
		return nil, ErrUntypedEvent
	}
	if fn == nil {
		return nil, event.ErrNilHandler
	}
	return em.On(zero.Topic().String(), event.AsHandler(event.TypedHandlerFunc[E](fn)), opts...)
}
