package event

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event.
	// Returning an error aborts the current dispatch pass; the error is
	// returned from Trigger.
	Handle(env *Envelope) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(env *Envelope) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(env *Envelope) error {
	return f(env)
}

// TypedHandlerFunc receives the envelope's params already asserted to T.
type TypedHandlerFunc[T any] func(params T, env *Envelope) error

// AsHandler converts a TypedHandlerFunc to a generic Handler.
// Envelopes whose params are not a T are skipped silently.
func AsHandler[T any](fn TypedHandlerFunc[T]) Handler {
	return HandlerFunc(func(env *Envelope) error {
		params, ok := ParamsAs[T](env)
		if !ok {
			return nil
		}
		return fn(params, env)
	})
}

// Stats contains emitter statistics.
type Stats struct {
	// Triggered is the total number of Trigger calls.
	Triggered uint64

	// Delivered is the number of handler invocations that returned nil.
	Delivered uint64

	// Stopped is the number of dispatch passes ended early by Envelope.Stop.
	Stopped uint64

	// Failed is the number of handler invocations that returned an error.
	Failed uint64

	// Subscriptions is the current number of live subscriptions.
	Subscriptions int
}
