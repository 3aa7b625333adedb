package topic

import "errors"

// ErrEmptyList is returned when a topic list contains no topics.
var ErrEmptyList = errors.New("topic list is empty")

// InvalidError reports a malformed topic inside a topic list.
type InvalidError struct {
	Topic string
}

func (e *InvalidError) Error() string {
	return "invalid topic " + `"` + e.Topic + `"`
}
