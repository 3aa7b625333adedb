package collection

import (
	"slices"

	"github.com/dshills/collections/internal/event"
)

// List is an ordered collection that allows duplicates and emits an event
// sequence for every mutation.
//
// Mutators return the error of a failing event handler. The mutation has
// already been applied when that happens.
type List[T comparable] struct {
	*core[T]
}

// New creates a List holding a copy of items.
func New[T comparable](items []T, opts ...Option) *List[T] {
	l := &List[T]{core: newCore(items, "list", opts)}
	l.pub.SetCaller(l)
	return l
}

// Add appends item. Emits ADD, CHANGE.
func (l *List[T]) Add(item T) error {
	return l.insert(len(l.items), []T{item})
}

// AddMany appends items in order. Emits one ADD, CHANGE for the batch;
// an empty batch emits nothing.
func (l *List[T]) AddMany(items []T) error {
	return l.insert(len(l.items), items)
}

// Prepend inserts item at index 0. Emits ADD, CHANGE.
func (l *List[T]) Prepend(item T) error {
	return l.insert(0, []T{item})
}

// PrependMany inserts items at index 0, keeping their order.
func (l *List[T]) PrependMany(items []T) error {
	return l.insert(0, items)
}

// Insert puts item at index, shifting later items right.
// Returns ErrIndexOutOfRange, without mutating, unless 0 <= index <= Len().
func (l *List[T]) Insert(item T, index int) error {
	if index < 0 || index > len(l.items) {
		return ErrIndexOutOfRange
	}
	return l.insert(index, []T{item})
}

func (l *List[T]) insert(index int, items []T) error {
	if len(items) == 0 {
		return nil
	}
	items = slices.Clone(items)
	ops := l.insertAt(index, items)
	return l.emitAdded(items, ops)
}

// Remove drops the first occurrence of item. Emits REMOVE, CHANGE; an absent
// item is a silent no-op.
func (l *List[T]) Remove(item T) error {
	ops, ok := l.removeFirst(item)
	if !ok {
		return nil
	}
	return l.emitRemoved([]T{item}, ops)
}

// RemoveMany drops every occurrence of each listed item. REMOVE lists the
// items that were present; when none were, nothing is emitted.
func (l *List[T]) RemoveMany(items []T) error {
	removed, ops := l.removeAll(items)
	if len(removed) == 0 {
		return nil
	}
	return l.emitRemoved(removed, ops)
}

// RemoveWhere removes the items accepted by m.
func (l *List[T]) RemoveWhere(m Matcher[T]) error {
	return l.RemoveMany(l.Where(m))
}

// Replace swaps the item at index and returns the previous one.
// An index outside [0, Len()) returns ok == false and emits nothing.
func (l *List[T]) Replace(index int, item T) (old T, ok bool, err error) {
	return l.replaceAt(index, item)
}

// ReplaceItem replaces the first occurrence of source.
func (l *List[T]) ReplaceItem(source, replacement T) (old T, ok bool, err error) {
	return l.replaceAt(l.IndexOf(source), replacement)
}

// Clear empties the list. Emits REMOVE with the previous contents, CLEAR,
// CHANGE.
func (l *List[T]) Clear() error {
	return l.clear()
}

// SortFunc stable-sorts the list with cmp and emits CHANGE.
func (l *List[T]) SortFunc(cmp Comparator[T]) error {
	l.sortStable(cmp)
	return l.pub.Publish(TopicChange, Changed{})
}

// Reject returns a new List without the items for which fn returns true.
// The new list has its own emitter.
func (l *List[T]) Reject(fn func(T) bool) *List[T] {
	return New(l.Find(func(item T) bool { return !fn(item) }))
}

// Clone returns a copy of the list with its own emitter.
func (l *List[T]) Clone() *List[T] {
	return New(l.items)
}

// Reader is the read side shared by List, Set and Sorted.
type Reader[T any] interface {
	Len() int
	ToSlice() []T
	Events() *event.Emitter
}

// Pluck extracts one value per item.
func Pluck[T, S any](r Reader[T], fn func(T) S) []S {
	items := r.ToSlice()
	out := make([]S, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Map returns a new List of fn applied to every item.
func Map[T any, S comparable](r Reader[T], fn func(T) S) *List[S] {
	return New(Pluck(r, fn))
}
