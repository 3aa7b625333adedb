// Package topic provides the topic type used to key event registrations.
//
// # Topic Format
//
// A topic is a single word naming a class of event:
//
//	add
//	change
//	remove
//
// Dot-notation is accepted for namespacing (for example "view.redraw"), but
// topics are matched exactly; there are no wildcards.
//
// # Topic Lists
//
// Registration calls accept several topics at once, separated by spaces
// and/or commas:
//
//	topics, err := topic.ParseList("add remove, change")
//	// topics == []Topic{"add", "remove", "change"}
package topic
