package event

import (
	"sort"
	"sync"

	"github.com/dshills/collections/internal/event/topic"
)

// Registry stores registrations per topic in registration order.
// Reads hand out copies so a dispatch pass iterates a stable snapshot.
type Registry struct {
	mu   sync.RWMutex
	regs map[topic.Topic][]*registration
	byID map[string]*subscription
}

// NewRegistry creates a new subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		regs: make(map[topic.Topic][]*registration),
		byID: make(map[string]*subscription),
	}
}

// Add appends one registration per topic of sub.
func (r *Registry) Add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range sub.topics {
		r.regs[t] = append(r.regs[t], &registration{sub: sub, topic: t})
		sub.live.Add(1)
	}
	r.byID[sub.ID()] = sub
}

// Snapshot returns a copy of the registrations for a topic.
func (r *Registry) Snapshot(t topic.Topic) []*registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := r.regs[t]
	if len(regs) == 0 {
		return nil
	}

	result := make([]*registration, len(regs))
	copy(result, regs)
	return result
}

// Claim removes a registration and reports whether this call removed it.
// Exactly one caller wins for a given registration.
func (r *Registry) Claim(reg *registration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeLocked(reg)
}

// RemoveWhere removes the registrations of the given topics matching fn.
// A nil topics slice means every topic. Returns the number removed.
func (r *Registry) RemoveWhere(topics []topic.Topic, fn func(*registration) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if topics == nil {
		topics = make([]topic.Topic, 0, len(r.regs))
		for t := range r.regs {
			topics = append(topics, t)
		}
	}

	removed := 0
	for _, t := range topics {
		// removeLocked rewrites r.regs[t]; iterate over a copy.
		regs := append([]*registration(nil), r.regs[t]...)
		for _, reg := range regs {
			if fn(reg) && r.removeLocked(reg) {
				removed++
			}
		}
	}
	return removed
}

// RemoveSubscription removes every registration of the subscription.
func (r *Registry) RemoveSubscription(subID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, exists := r.byID[subID]
	if !exists {
		return false
	}

	for _, t := range sub.topics {
		regs := append([]*registration(nil), r.regs[t]...)
		for _, reg := range regs {
			if reg.sub == sub {
				r.removeLocked(reg)
			}
		}
	}
	return true
}

// removeLocked drops reg from its topic list. Callers hold r.mu.
func (r *Registry) removeLocked(reg *registration) bool {
	if !reg.removed.CompareAndSwap(false, true) {
		return false
	}

	regs := r.regs[reg.topic]
	for i, s := range regs {
		if s == reg {
			r.regs[reg.topic] = append(regs[:i], regs[i+1:]...)
			break
		}
	}

	// Clean up empty topic entries
	if len(r.regs[reg.topic]) == 0 {
		delete(r.regs, reg.topic)
	}

	if reg.sub.live.Add(-1) == 0 {
		reg.sub.cancel()
		delete(r.byID, reg.sub.ID())
	}
	return true
}

// Get returns a subscription by ID.
func (r *Registry) Get(subID string) (*subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, exists := r.byID[subID]
	return sub, exists
}

// Count returns the number of live subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// CountByTopic returns the number of registrations for a topic.
func (r *Registry) CountByTopic(t topic.Topic) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.regs[t])
}

// Topics returns all topics with registrations, sorted.
func (r *Registry) Topics() []topic.Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.regs) == 0 {
		return nil
	}

	topics := make([]topic.Topic, 0, len(r.regs))
	for t := range r.regs {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i] < topics[j]
	})
	return topics
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, regs := range r.regs {
		for _, reg := range regs {
			reg.removed.Store(true)
		}
	}
	for _, sub := range r.byID {
		sub.live.Store(0)
		sub.cancel()
	}

	r.regs = make(map[topic.Topic][]*registration)
	r.byID = make(map[string]*subscription)
}
