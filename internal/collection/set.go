package collection

import "slices"

// Set is an ordered collection without duplicates. Writes that would
// introduce a duplicate are dropped silently and emit nothing.
type Set[T comparable] struct {
	*core[T]
}

// NewSet creates a Set from items, keeping the first of any duplicates.
func NewSet[T comparable](items []T, opts ...Option) *Set[T] {
	return newSet(items, "set", opts)
}

func newSet[T comparable](items []T, kind string, opts []Option) *Set[T] {
	s := &Set[T]{core: newCore(unique(items), kind, opts)}
	s.pub.SetCaller(s)
	return s
}

// Add appends item unless present. Reports whether it was added.
func (s *Set[T]) Add(item T) (bool, error) {
	accepted, err := s.insert(len(s.items), []T{item})
	return len(accepted) == 1, err
}

// AddMany appends the items not yet present, in input order, and returns
// them. ADD lists only accepted items; with none accepted nothing is emitted.
func (s *Set[T]) AddMany(items []T) ([]T, error) {
	return s.insert(len(s.items), items)
}

// Prepend inserts item at index 0 unless present.
func (s *Set[T]) Prepend(item T) (bool, error) {
	accepted, err := s.insert(0, []T{item})
	return len(accepted) == 1, err
}

// PrependMany inserts the items not yet present at index 0.
func (s *Set[T]) PrependMany(items []T) ([]T, error) {
	return s.insert(0, items)
}

// Insert puts item at index unless present.
func (s *Set[T]) Insert(item T, index int) (bool, error) {
	if index < 0 || index > len(s.items) {
		return false, ErrIndexOutOfRange
	}
	accepted, err := s.insert(index, []T{item})
	return len(accepted) == 1, err
}

func (s *Set[T]) insert(index int, items []T) ([]T, error) {
	accepted := s.missing(items)
	if len(accepted) == 0 {
		return nil, nil
	}
	ops := s.insertAt(index, accepted)
	return accepted, s.emitAdded(accepted, ops)
}

// missing returns the items not in the set, without repeats.
func (s *Set[T]) missing(items []T) []T {
	var out []T
	for _, item := range items {
		if s.Contains(item) || slices.Contains(out, item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Remove drops item. Emits REMOVE, CHANGE when it was present.
func (s *Set[T]) Remove(item T) error {
	ops, ok := s.removeFirst(item)
	if !ok {
		return nil
	}
	return s.emitRemoved([]T{item}, ops)
}

// RemoveMany drops the listed items that are present.
func (s *Set[T]) RemoveMany(items []T) error {
	removed, ops := s.removeAll(items)
	if len(removed) == 0 {
		return nil
	}
	return s.emitRemoved(removed, ops)
}

// RemoveWhere removes the items accepted by m.
func (s *Set[T]) RemoveWhere(m Matcher[T]) error {
	return s.RemoveMany(s.Where(m))
}

// Replace swaps the item at index. It is refused, silently, when index is
// out of range or when item already sits at another index.
func (s *Set[T]) Replace(index int, item T) (old T, ok bool, err error) {
	if at := s.IndexOf(item); at >= 0 && at != index {
		var zero T
		return zero, false, nil
	}
	return s.replaceAt(index, item)
}

// ReplaceItem replaces source with replacement.
func (s *Set[T]) ReplaceItem(source, replacement T) (old T, ok bool, err error) {
	return s.Replace(s.IndexOf(source), replacement)
}

// Clear empties the set. Emits REMOVE, CLEAR, CHANGE.
func (s *Set[T]) Clear() error {
	return s.clear()
}

// Clone returns a copy of the set with its own emitter.
func (s *Set[T]) Clone() *Set[T] {
	return NewSet(s.items)
}

func unique[T comparable](items []T) []T {
	out := make([]T, 0, len(items))
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
