package collection

import "cmp"

// Matcher selects items for Where, WhereFirst and RemoveWhere.
type Matcher[T any] interface {
	Match(item T) bool
}

// Predicate is a function Matcher.
type Predicate[T any] func(item T) bool

// Match implements Matcher.
func (p Predicate[T]) Match(item T) bool {
	return p(item)
}

// Field matches items whose key equals want.
//
//	list.Where(collection.Field(func(a *Animal) string { return a.Name }, "Cat"))
func Field[T any, K comparable](key func(T) K, want K) Predicate[T] {
	return func(item T) bool {
		return key(item) == want
	}
}

// AllOf matches items accepted by every matcher.
func AllOf[T any](matchers ...Matcher[T]) Predicate[T] {
	return func(item T) bool {
		for _, m := range matchers {
			if !m.Match(item) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches items accepted by at least one matcher.
func AnyOf[T any](matchers ...Matcher[T]) Predicate[T] {
	return func(item T) bool {
		for _, m := range matchers {
			if m.Match(item) {
				return true
			}
		}
		return false
	}
}

// Comparator orders two items: negative when a sorts before b, zero when
// they rank equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// By builds a Comparator from a key extractor.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reverse inverts a Comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then breaks ties of c with next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}
