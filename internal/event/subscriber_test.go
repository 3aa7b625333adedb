package event

import "testing"

func TestSubscriber_Close(t *testing.T) {
	em := NewEmitter()
	s := NewSubscriber(em)
	rec := &recorder{}

	if _, err := s.SubscribeFunc("x", rec.handler("a")); err != nil {
		t.Fatalf("SubscribeFunc() failed: %v", err)
	}
	if _, err := s.SubscribeFunc("y", rec.handler("b")); err != nil {
		t.Fatalf("SubscribeFunc() failed: %v", err)
	}
	if s.Count() != 2 {
		t.Errorf("expected 2 tracked subscriptions, got %d", s.Count())
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if !s.IsClosed() {
		t.Error("expected subscriber closed")
	}
	if em.Stats().Subscriptions != 0 {
		t.Errorf("expected emitter to have no subscriptions, got %d", em.Stats().Subscriptions)
	}

	if _, err := s.SubscribeFunc("x", rec.handler("c")); err != ErrSubscriberClosed {
		t.Errorf("expected ErrSubscriberClosed, got %v", err)
	}
	// Closing twice is harmless.
	if err := s.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestSubscriber_Unsubscribe(t *testing.T) {
	em := NewEmitter()
	s := NewSubscriber(em)
	rec := &recorder{}

	sub, _ := s.SubscribeFunc("x", rec.handler("a"))
	if err := s.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe() failed: %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("expected 0 tracked subscriptions, got %d", s.Count())
	}
	if err := s.Unsubscribe(nil); err != ErrInvalidSubscription {
		t.Errorf("expected ErrInvalidSubscription, got %v", err)
	}
}

func TestSubscriber_PauseResumeAll(t *testing.T) {
	em := NewEmitter()
	s := NewSubscriber(em)
	rec := &recorder{}

	s.SubscribeFunc("x", rec.handler("a"))
	s.SubscribeFunc("x", rec.handler("b"))

	s.PauseAll()
	em.Trigger("x", nil, nil)
	if len(rec.calls) != 0 {
		t.Errorf("expected no deliveries while paused, got %s", rec)
	}

	s.ResumeAll()
	em.Trigger("x", nil, nil)
	if rec.String() != "a,b" {
		t.Errorf("expected a,b, got %s", rec)
	}
}

func TestSubscribeTyped(t *testing.T) {
	em := NewEmitter()
	s := NewSubscriber(em)
	var got []int

	_, err := SubscribeTyped(s, "x", func(n int, env *Envelope) error {
		got = append(got, n)
		return nil
	})
	if err != nil {
		t.Fatalf("SubscribeTyped() failed: %v", err)
	}

	em.Trigger("x", 7, nil)
	em.Trigger("x", "not an int", nil)

	if len(got) != 1 || got[0] != 7 {
		t.Errorf("expected [7], got %v", got)
	}
}
