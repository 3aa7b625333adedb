package collection

import (
	"log/slog"
	"slices"

	"github.com/dshills/collections/internal/event"
)

// Option configures a collection.
type Option func(*options)

type options struct {
	emitter *event.Emitter
	logger  *slog.Logger
}

// WithEmitter makes the collection trigger on an existing emitter instead of
// creating its own.
func WithEmitter(em *event.Emitter) Option {
	return func(o *options) {
		o.emitter = em
	}
}

// WithLogger sets the logger of the collection's own emitter.
// It has no effect together with WithEmitter.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// core holds the backing sequence and the read-only API shared by List,
// Set and Sorted. Mutators live on the concrete types so each flavor
// controls exactly which writes it exposes.
type core[T comparable] struct {
	items []T
	pub   *event.Publisher
}

func newCore[T comparable](items []T, kind string, opts []Option) *core[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	em := o.emitter
	if em == nil {
		em = event.NewEmitter(event.WithLogger(o.logger), event.WithSource(kind))
	}

	return &core[T]{
		items: slices.Clone(items),
		pub:   event.NewPublisher(em, nil),
	}
}

// Events returns the emitter the collection triggers on.
func (c *core[T]) Events() *event.Emitter {
	return c.pub.Emitter()
}

// Len returns the number of items.
func (c *core[T]) Len() int {
	return len(c.items)
}

// Count returns the number of items. Same as Len.
func (c *core[T]) Count() int {
	return len(c.items)
}

// IsEmpty reports whether the collection has no items.
func (c *core[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// First returns the first item.
func (c *core[T]) First() (T, bool) {
	return c.Get(0)
}

// Last returns the last item.
func (c *core[T]) Last() (T, bool) {
	return c.Get(len(c.items) - 1)
}

// Get returns the item at index.
func (c *core[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (c *core[T]) IndexOf(item T) int {
	return slices.Index(c.items, item)
}

// Contains reports whether item is present.
func (c *core[T]) Contains(item T) bool {
	return c.IndexOf(item) >= 0
}

// Where returns the items accepted by m, in order.
func (c *core[T]) Where(m Matcher[T]) []T {
	return c.Find(m.Match)
}

// WhereFirst returns the first item accepted by m.
func (c *core[T]) WhereFirst(m Matcher[T]) (T, bool) {
	return c.FindFirst(m.Match)
}

// Find returns the items for which fn returns true, in order.
func (c *core[T]) Find(fn func(T) bool) []T {
	var out []T
	for _, item := range c.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindFirst returns the first item for which fn returns true.
func (c *core[T]) FindFirst(fn func(T) bool) (T, bool) {
	for _, item := range c.items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Each calls fn for every item with its index.
func (c *core[T]) Each(fn func(item T, index int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ToSlice returns a copy of the items.
func (c *core[T]) ToSlice() []T {
	return slices.Clone(c.items)
}

// All returns a copy of the items. Same as ToSlice.
func (c *core[T]) All() []T {
	return c.ToSlice()
}

// insertAt splices items in at index, which the caller has range-checked.
func (c *core[T]) insertAt(index int, items []T) []Operation[T] {
	c.items = slices.Insert(c.items, index, items...)

	ops := make([]Operation[T], len(items))
	for i, item := range items {
		ops[i] = Operation[T]{Item: item, Index: index + i}
	}
	return ops
}

// removeAll drops every occurrence of the given items. It returns the
// distinct items that were present, in argument order, and one operation
// per dropped element.
func (c *core[T]) removeAll(items []T) ([]T, []Operation[T]) {
	want := make(map[T]bool, len(items))
	for _, item := range items {
		want[item] = false
	}

	var ops []Operation[T]
	kept := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if _, ok := want[item]; ok {
			want[item] = true
			ops = append(ops, Operation[T]{Item: item, Index: i})
			continue
		}
		kept = append(kept, item)
	}
	if len(ops) == 0 {
		return nil, nil
	}
	c.items = kept

	removed := make([]T, 0, len(want))
	for _, item := range items {
		if want[item] {
			removed = append(removed, item)
			// Report each item once even if listed twice.
			want[item] = false
		}
	}
	return removed, ops
}

// removeFirst drops the first occurrence of item.
func (c *core[T]) removeFirst(item T) ([]Operation[T], bool) {
	i := c.IndexOf(item)
	if i < 0 {
		return nil, false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return []Operation[T]{{Item: item, Index: i}}, true
}

// replaceAt swaps the item at index and emits REPLACE, CHANGE.
// Out-of-range indexes are a silent no-op.
func (c *core[T]) replaceAt(index int, item T) (T, bool, error) {
	old, ok := c.Get(index)
	if !ok {
		return old, false, nil
	}
	c.items[index] = item

	err := c.pub.PublishAll(
		event.Step{Topic: TopicReplace, Params: Replaced[T]{Source: old, Replacement: item, Index: index}},
		event.Step{Topic: TopicChange, Params: Changed{}},
	)
	return old, true, err
}

// clear empties the sequence and emits REMOVE, CLEAR, CHANGE.
func (c *core[T]) clear() error {
	previous := c.items
	c.items = nil

	ops := make([]Operation[T], len(previous))
	for i, item := range previous {
		ops[i] = Operation[T]{Item: item, Index: i}
	}

	return c.pub.PublishAll(
		event.Step{Topic: TopicRemove, Params: Removed[T]{Items: previous, Operations: ops, Clear: true}},
		event.Step{Topic: TopicClear, Params: Cleared{}},
		event.Step{Topic: TopicChange, Params: Changed{}},
	)
}

// sortStable re-orders the sequence without emitting anything.
func (c *core[T]) sortStable(cmp Comparator[T]) {
	slices.SortStableFunc(c.items, cmp)
}

func (c *core[T]) emitAdded(items []T, ops []Operation[T]) error {
	return c.pub.PublishAll(
		event.Step{Topic: TopicAdd, Params: Added[T]{Items: items, Operations: ops}},
		event.Step{Topic: TopicChange, Params: Changed{}},
	)
}

func (c *core[T]) emitRemoved(items []T, ops []Operation[T]) error {
	return c.pub.PublishAll(
		event.Step{Topic: TopicRemove, Params: Removed[T]{Items: items, Operations: ops}},
		event.Step{Topic: TopicChange, Params: Changed{}},
	)
}
