// Package sse decodes a server-sent event stream into discrete events.
//
// See the SSE specification:
// https://html.spec.whatwg.org/multipage/server-sent-events.html
package sse

// Event represents a single parsed SSE event, delimited by a blank line
// in the upstream byte stream.
type Event struct {
	// Type is the SSE event type from the "event:" field.
	// An empty string means the default "message" type per the SSE spec.
	Type string

	// Data is the concatenated contents of all "data:" lines for this event,
	// joined with "\n".
	Data string

	// ID is the last event ID from the "id:" field, if present.
	ID string
}

// IsMessage reports whether the event would be dispatched to an
// EventSource's onmessage handler.
func (e Event) IsMessage() bool {
	return e.Type == "" || e.Type == "message"
}
