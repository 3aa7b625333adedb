package collection

import "errors"

var (
	// ErrIndexOutOfRange is returned by positional inserts outside [0, Len()].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUntypedEvent is returned by Listen when E is not a concrete payload type.
	ErrUntypedEvent = errors.New("listen requires a concrete event payload type")
)
