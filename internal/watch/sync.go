package watch

import "github.com/dshills/collections/internal/record"

// Target is the collection a fixture is synced into. *collection.Set and
// *collection.Sorted satisfy it.
type Target interface {
	ToSlice() []*record.Record
	AddMany(items []*record.Record) ([]*record.Record, error)
	RemoveMany(items []*record.Record) error
	ReplaceItem(source, replacement *record.Record) (*record.Record, bool, error)
}

// Result counts what Sync changed.
type Result struct {
	Added    int
	Removed  int
	Replaced int
	Kept     int
}

// Changed reports whether Sync mutated the target.
func (r Result) Changed() bool {
	return r.Added+r.Removed+r.Replaced > 0
}

// Sync makes dst hold the records of next. Records are matched by the text
// of their key field; with an empty key they match only when all fields are
// equal. Unmatched current records are removed, matched records whose
// fields differ are replaced, and new records are added in fixture order.
//
// Sync stops at the first handler error.
func Sync(dst Target, next []*record.Record, key string) (Result, error) {
	keyOf := func(r *record.Record) string {
		if key == "" {
			return r.GoString()
		}
		return r.Text(key)
	}

	incoming := make(map[string]*record.Record, len(next))
	var extra []*record.Record
	for _, r := range next {
		k := keyOf(r)
		if _, dup := incoming[k]; dup {
			extra = append(extra, r)
			continue
		}
		incoming[k] = r
	}

	var (
		res     Result
		removed []*record.Record
		pairs   [][2]*record.Record
	)
	matched := make(map[string]bool, len(incoming))
	for _, cur := range dst.ToSlice() {
		k := keyOf(cur)
		nr, ok := incoming[k]
		if !ok || matched[k] {
			removed = append(removed, cur)
			continue
		}
		matched[k] = true
		if cur.Equal(nr) {
			res.Kept++
			continue
		}
		pairs = append(pairs, [2]*record.Record{cur, nr})
	}

	var added []*record.Record
	for _, r := range next {
		if !matched[keyOf(r)] && incoming[keyOf(r)] == r {
			added = append(added, r)
		}
	}
	added = append(added, extra...)

	if len(removed) > 0 {
		if err := dst.RemoveMany(removed); err != nil {
			return res, err
		}
		res.Removed = len(removed)
	}
	for _, p := range pairs {
		_, ok, err := dst.ReplaceItem(p[0], p[1])
		if err != nil {
			return res, err
		}
		if ok {
			res.Replaced++
		}
	}
	if len(added) > 0 {
		accepted, err := dst.AddMany(added)
		res.Added = len(accepted)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}
