// Package record provides dynamic key/value records for collections whose
// item shape is only known at runtime, such as fixtures loaded from TOML or
// YAML files.
//
// Records are used by pointer, so two records with equal fields are still
// distinct collection items.
package record

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Record is a set of named fields. Nested tables are stored as
// map[string]any and arrays as []any, the shapes the TOML and YAML decoders
// produce.
type Record struct {
	fields map[string]any
}

// New creates a record holding a deep copy of fields.
func New(fields map[string]any) *Record {
	return &Record{fields: cloneMap(fields)}
}

// Get returns the value at a dot-separated path.
func (r *Record) Get(path string) (any, bool) {
	var cur any = r.fields
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether path is set.
func (r *Record) Has(path string) bool {
	_, ok := r.Get(path)
	return ok
}

// String returns the value at path as a string.
// Missing fields return "", nil; non-string values return a *TypeError.
func (r *Record) String(path string) (string, error) {
	val, ok := r.Get(path)
	if !ok || val == nil {
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", val)}
	}
	return s, nil
}

// Number returns the value at path as a float64.
func (r *Record) Number(path string) (float64, error) {
	val, ok := r.Get(path)
	if !ok || val == nil {
		return 0, nil
	}
	f, ok := toFloat(val)
	if !ok {
		return 0, &TypeError{Path: path, Expected: "number", Actual: fmt.Sprintf("%T", val)}
	}
	return f, nil
}

// Bool returns the value at path as a bool.
func (r *Record) Bool(path string) (bool, error) {
	val, ok := r.Get(path)
	if !ok || val == nil {
		return false, nil
	}
	b, ok := val.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: fmt.Sprintf("%T", val)}
	}
	return b, nil
}

// Text formats the value at path for display. Missing fields format as "".
func (r *Record) Text(path string) string {
	val, ok := r.Get(path)
	if !ok || val == nil {
		return ""
	}
	return fmt.Sprint(val)
}

// Keys returns the top-level field names in sorted order.
func (r *Record) Keys() []string {
	return slices.Sorted(maps.Keys(r.fields))
}

// Fields returns a deep copy of the fields.
func (r *Record) Fields() map[string]any {
	return cloneMap(r.fields)
}

// Equal reports whether both records hold loosely equal fields.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	return Equal(r.fields, other.fields)
}

// GoString formats the record as {key=value ...} in key order.
func (r *Record) GoString() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range r.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, r.fields[k])
	}
	b.WriteByte('}')
	return b.String()
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
