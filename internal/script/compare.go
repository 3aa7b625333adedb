package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/collections/internal/collection"
	"github.com/dshills/collections/internal/record"
)

// Comparator orders records with a Lua compare(a, b) function.
type Comparator struct {
	state *State
	fn    *lua.LFunction
	err   error
}

// NewComparator compiles src, which must define compare(a, b).
func NewComparator(src string, opts ...Option) (*Comparator, error) {
	state, fn, err := compile(src, "compare", opts)
	if err != nil {
		return nil, err
	}
	return &Comparator{state: state, fn: fn}, nil
}

// Compare returns the ordering of a and b. A boolean result means "a sorts
// before b"; false is resolved by asking again with the arguments swapped.
// Errors and other result types rank the records equal.
func (c *Comparator) Compare(a, b *record.Record) int {
	ret, ok := c.call(a, b)
	if !ok {
		return 0
	}

	switch v := ret.(type) {
	case lua.LNumber:
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	case lua.LBool:
		if v {
			return -1
		}
		if rev, ok := c.call(b, a); ok && lua.LVAsBool(rev) {
			return 1
		}
		return 0
	}
	c.fail(&ResultError{Func: "compare", Got: ret.Type().String()})
	return 0
}

func (c *Comparator) call(a, b *record.Record) (lua.LValue, bool) {
	ret, err := c.state.Call(c.fn, a, b)
	if err != nil {
		c.fail(err)
		return nil, false
	}
	return ret, true
}

func (c *Comparator) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Func returns the comparator as a collection.Comparator.
func (c *Comparator) Func() collection.Comparator[*record.Record] {
	return c.Compare
}

// Err returns the first error raised while comparing.
func (c *Comparator) Err() error {
	return c.err
}

// Close releases the Lua state.
func (c *Comparator) Close() error {
	return c.state.Close()
}

// compile runs src in a fresh state and looks up the global function name.
func compile(src, name string, opts []Option) (*State, *lua.LFunction, error) {
	state := NewState(opts...)
	if err := state.DoString(src); err != nil {
		state.Close()
		return nil, nil, &CompileError{Func: name, Err: err}
	}
	fn, err := state.Func(name)
	if err != nil {
		state.Close()
		return nil, nil, err
	}
	return state, fn, nil
}
