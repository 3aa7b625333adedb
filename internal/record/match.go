package record

import "github.com/dshills/collections/internal/collection"

// Props matches records whose fields equal every listed value, compared
// with Equal. Keys may be dot-separated paths.
//
//	books.Where(record.Props{"author": "Shakespeare", "year": 1611})
type Props map[string]any

// Match implements collection.Matcher.
func (p Props) Match(r *Record) bool {
	for path, want := range p {
		got, ok := r.Get(path)
		if !ok || !Equal(got, want) {
			return false
		}
	}
	return true
}

// Field returns an extractor for the value at path, for collection.Pluck.
func Field(path string) func(*Record) any {
	return func(r *Record) any {
		v, _ := r.Get(path)
		return v
	}
}

// ByField orders records by the value at path.
func ByField(path string) collection.Comparator[*Record] {
	return func(a, b *Record) int {
		va, _ := a.Get(path)
		vb, _ := b.Get(path)
		return Compare(va, vb)
	}
}

// ByFields orders records by each path in turn.
func ByFields(paths ...string) collection.Comparator[*Record] {
	return func(a, b *Record) int {
		for _, p := range paths {
			if c := ByField(p)(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

var _ collection.Matcher[*Record] = Props(nil)
