package record

import "fmt"

// TypeError is returned by the typed getters when a field holds a value of
// another type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("field %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}
