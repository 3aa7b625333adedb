package event

import "github.com/dshills/collections/internal/event/topic"

// Publisher binds an emitter to the object raising events, so producers do
// not repeat the caller on every Trigger.
type Publisher struct {
	emitter *Emitter
	caller  any
}

// NewPublisher creates a Publisher that triggers on emitter as caller.
func NewPublisher(emitter *Emitter, caller any) *Publisher {
	return &Publisher{
		emitter: emitter,
		caller:  caller,
	}
}

// Publish triggers t with params.
func (p *Publisher) Publish(t topic.Topic, params any) error {
	return p.emitter.Trigger(t, params, p.caller)
}

// PublishAll triggers each topic in order with its params, stopping at the
// first handler error.
func (p *Publisher) PublishAll(steps ...Step) error {
	for _, s := range steps {
		if err := p.emitter.Trigger(s.Topic, s.Params, p.caller); err != nil {
			return err
		}
	}
	return nil
}

// SetCaller changes the caller reported in envelopes.
func (p *Publisher) SetCaller(caller any) {
	p.caller = caller
}

// Caller returns the caller reported in envelopes.
func (p *Publisher) Caller() any {
	return p.caller
}

// Emitter returns the underlying emitter.
func (p *Publisher) Emitter() *Emitter {
	return p.emitter
}

// Step is one topic/params pair of a PublishAll sequence.
type Step struct {
	Topic  topic.Topic
	Params any
}
