// Package scan turns the text events of a competitor scan stream into log
// lines and a formatted report.
package scan

import "strings"

const (
	statusPrefix = "STATUS:"
	reportPrefix = "REPORT:"
	doneMarker   = "DONE"

	// lineSeparator stands in for newlines inside a single REPORT payload.
	lineSeparator = "|||"
)

// Kind discriminates scan events.
type Kind int

const (
	KindUnknown Kind = iota
	KindStatus
	KindReport
	KindDone
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindReport:
		return "report"
	case KindDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is one parsed scan stream message.
type Event struct {
	Kind Kind
	// Text is the status text, or the report with line separators decoded.
	Text string
}

// ParseEvent classifies a raw stream payload.
func ParseEvent(data string) Event {
	switch {
	case strings.HasPrefix(data, statusPrefix):
		text := strings.TrimPrefix(data, statusPrefix)
		return Event{Kind: KindStatus, Text: strings.TrimPrefix(text, " ")}
	case strings.HasPrefix(data, reportPrefix):
		text := strings.TrimPrefix(data, reportPrefix)
		return Event{Kind: KindReport, Text: strings.ReplaceAll(text, lineSeparator, "\n")}
	case data == doneMarker:
		return Event{Kind: KindDone}
	default:
		return Event{Kind: KindUnknown, Text: data}
	}
}
