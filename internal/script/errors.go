package script

import (
	"errors"
	"fmt"
)

var (
	// ErrStateClosed is returned when calling into a closed script.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrTimeout is returned when a call runs longer than its timeout.
	ErrTimeout = errors.New("lua execution timeout")
)

// MissingFuncError is returned when a script does not define the function
// it is compiled for.
type MissingFuncError struct {
	Name string
	Got  string
}

func (e *MissingFuncError) Error() string {
	if e.Got == "nil" {
		return fmt.Sprintf("script does not define function %q", e.Name)
	}
	return fmt.Sprintf("%q is not a function (got %s)", e.Name, e.Got)
}

// CompileError wraps a failure to load a script.
type CompileError struct {
	Func string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling %s script: %v", e.Func, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ResultError reports a script function returning an unusable type.
type ResultError struct {
	Func string
	Got  string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s returned %s", e.Func, e.Got)
}
