package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/collections/internal/collection"
	"github.com/dshills/collections/internal/record"
)

// Filter selects records with a Lua match(item) function.
type Filter struct {
	state *State
	fn    *lua.LFunction
	err   error
}

// NewFilter compiles src, which must define match(item).
func NewFilter(src string, opts ...Option) (*Filter, error) {
	state, fn, err := compile(src, "match", opts)
	if err != nil {
		return nil, err
	}
	return &Filter{state: state, fn: fn}, nil
}

// Match reports whether match(item) returned a truthy value.
// Errors count as no match.
func (f *Filter) Match(r *record.Record) bool {
	ret, err := f.state.Call(f.fn, r)
	if err != nil {
		if f.err == nil {
			f.err = err
		}
		return false
	}
	return lua.LVAsBool(ret)
}

// Err returns the first error raised while matching.
func (f *Filter) Err() error {
	return f.err
}

// Close releases the Lua state.
func (f *Filter) Close() error {
	return f.state.Close()
}

var _ collection.Matcher[*record.Record] = (*Filter)(nil)
