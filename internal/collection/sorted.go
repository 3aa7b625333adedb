package collection

// Sorted is a Set kept in comparator order. Every mutation runs the Set
// operation with its events, then re-sorts and emits SORT, CHANGE.
// Positional inserts are not offered.
type Sorted[T comparable] struct {
	*core[T]
	set *Set[T]
	cmp Comparator[T]
}

// NewSorted creates a Sorted from items ordered by cmp. The initial sort
// emits nothing. A nil cmp keeps insertion order until SetComparator.
func NewSorted[T comparable](items []T, cmp Comparator[T], opts ...Option) *Sorted[T] {
	set := newSet(items, "sorted", opts)
	s := &Sorted[T]{core: set.core, set: set, cmp: cmp}
	s.pub.SetCaller(s)
	if cmp != nil {
		s.sortStable(cmp)
	}
	return s
}

// Comparator returns the current ordering.
func (s *Sorted[T]) Comparator() Comparator[T] {
	return s.cmp
}

// SetComparator replaces the ordering and re-sorts.
func (s *Sorted[T]) SetComparator(cmp Comparator[T]) error {
	s.cmp = cmp
	return s.Sort()
}

// Sort stable-sorts the items and emits SORT, CHANGE. Without a comparator
// it does nothing.
func (s *Sorted[T]) Sort() error {
	if s.cmp == nil {
		return nil
	}
	s.sortStable(s.cmp)
	return s.emitSorted()
}

func (s *Sorted[T]) emitSorted() error {
	if err := s.pub.Publish(TopicSort, Resorted{}); err != nil {
		return err
	}
	return s.pub.Publish(TopicChange, Changed{})
}

// after finishes a mutation. When the Set operation failed in a handler the
// order is restored without events and the error is returned.
func (s *Sorted[T]) after(err error) error {
	if err != nil {
		if s.cmp != nil {
			s.sortStable(s.cmp)
		}
		return err
	}
	return s.Sort()
}

// Add inserts item unless present, then re-sorts.
func (s *Sorted[T]) Add(item T) (bool, error) {
	added, err := s.set.Add(item)
	return added, s.after(err)
}

// AddMany inserts the items not yet present, then re-sorts.
func (s *Sorted[T]) AddMany(items []T) ([]T, error) {
	accepted, err := s.set.AddMany(items)
	return accepted, s.after(err)
}

// Remove drops item, then re-sorts.
func (s *Sorted[T]) Remove(item T) error {
	return s.after(s.set.Remove(item))
}

// RemoveMany drops the listed items, then re-sorts.
func (s *Sorted[T]) RemoveMany(items []T) error {
	return s.after(s.set.RemoveMany(items))
}

// RemoveWhere drops the items accepted by m, then re-sorts.
func (s *Sorted[T]) RemoveWhere(m Matcher[T]) error {
	return s.after(s.set.RemoveWhere(m))
}

// Replace swaps the item at index, then re-sorts.
func (s *Sorted[T]) Replace(index int, item T) (old T, ok bool, err error) {
	old, ok, err = s.set.Replace(index, item)
	return old, ok, s.after(err)
}

// ReplaceItem swaps source for replacement, then re-sorts.
func (s *Sorted[T]) ReplaceItem(source, replacement T) (old T, ok bool, err error) {
	old, ok, err = s.set.ReplaceItem(source, replacement)
	return old, ok, s.after(err)
}

// Clear empties the collection. Emits REMOVE, CLEAR, CHANGE.
func (s *Sorted[T]) Clear() error {
	return s.set.Clear()
}

// Clone returns a copy with the same comparator and its own emitter.
func (s *Sorted[T]) Clone() *Sorted[T] {
	return NewSorted(s.items, s.cmp)
}
