package topic

import (
	"strings"
	"unicode"
)

// Topic identifies a class of event (e.g., "add", "change").
type Topic string

// Separator is the character used to separate namespace segments.
const Separator = "."

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// IsValid returns true if the topic is valid.
// A valid topic:
//   - Is not empty
//   - Contains no whitespace and no commas (those delimit topic lists)
//   - Does not start or end with a separator
//   - Does not contain consecutive separators
func (t Topic) IsValid() bool {
	s := string(t)
	if s == "" {
		return false
	}
	if strings.IndexFunc(s, isListDelimiter) >= 0 {
		return false
	}
	if strings.HasPrefix(s, Separator) || strings.HasSuffix(s, Separator) {
		return false
	}
	return !strings.Contains(s, Separator+Separator)
}

// ParseList splits a space and/or comma delimited topic list.
// Duplicate topics are collapsed, keeping the first occurrence.
// Returns ErrEmptyList when the list names no topic and an *InvalidError
// for the first malformed topic.
func ParseList(s string) ([]Topic, error) {
	fields := strings.FieldsFunc(s, isListDelimiter)
	if len(fields) == 0 {
		return nil, ErrEmptyList
	}

	topics := make([]Topic, 0, len(fields))
	seen := make(map[Topic]struct{}, len(fields))
	for _, f := range fields {
		t := Topic(f)
		if !t.IsValid() {
			return nil, &InvalidError{Topic: f}
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		topics = append(topics, t)
	}
	return topics, nil
}

// Join joins topics into a list accepted by ParseList.
func Join(topics ...Topic) string {
	parts := make([]string, len(topics))
	for i, t := range topics {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

func isListDelimiter(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
