package event

// FilterFunc is a predicate evaluated before a handler runs.
// Return true to deliver the envelope, false to skip this handler.
type FilterFunc func(env *Envelope) bool

// WithFilter sets a filter predicate on the subscription.
// A filtered-out one-shot registration stays registered.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// FilterByCaller only delivers envelopes raised by caller.
func FilterByCaller(caller any) FilterFunc {
	return func(env *Envelope) bool {
		return env.Caller == caller
	}
}

// FilterParams creates a filter based on the params.
// Envelopes whose params are not a T are filtered out.
func FilterParams[T any](predicate func(params T) bool) FilterFunc {
	return func(env *Envelope) bool {
		p, ok := env.Params.(T)
		if !ok {
			return false
		}
		return predicate(p)
	}
}

// FilterAnd combines multiple filters with AND logic.
// All filters must pass for the envelope to be delivered.
func FilterAnd(filters ...FilterFunc) FilterFunc {
	return func(env *Envelope) bool {
		for _, f := range filters {
			if !f(env) {
				return false
			}
		}
		return true
	}
}

// FilterOr combines multiple filters with OR logic.
func FilterOr(filters ...FilterFunc) FilterFunc {
	return func(env *Envelope) bool {
		for _, f := range filters {
			if f(env) {
				return true
			}
		}
		return false
	}
}

// FilterNot negates a filter.
func FilterNot(filter FilterFunc) FilterFunc {
	return func(env *Envelope) bool {
		return !filter(env)
	}
}
