package event

import (
	"errors"
	"testing"
)

func TestPublisher_Publish(t *testing.T) {
	em := NewEmitter()
	owner := &struct{}{}
	p := NewPublisher(em, owner)

	var caller any
	em.OnFunc("x", func(env *Envelope) error {
		caller = env.Caller
		return nil
	})

	if err := p.Publish("x", nil); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}
	if caller != owner {
		t.Errorf("expected caller %p, got %v", owner, caller)
	}
	if p.Emitter() != em {
		t.Error("expected Emitter() to return the wrapped emitter")
	}
}

func TestPublisher_PublishAll(t *testing.T) {
	em := NewEmitter()
	p := NewPublisher(em, nil)
	rec := &recorder{}
	boom := errors.New("boom")

	em.OnFunc("a", rec.handler("a"))
	em.OnFunc("b", func(env *Envelope) error {
		rec.calls = append(rec.calls, "b")
		return boom
	})
	em.OnFunc("c", rec.handler("c"))

	err := p.PublishAll(Step{Topic: "a"}, Step{Topic: "b"}, Step{Topic: "c"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if rec.String() != "a,b" {
		t.Errorf("expected sequence to stop at b, got %s", rec)
	}
}

func TestPublisher_SetCaller(t *testing.T) {
	p := NewPublisher(NewEmitter(), "first")
	p.SetCaller("second")
	if p.Caller() != "second" {
		t.Errorf("expected caller 'second', got %v", p.Caller())
	}
}
