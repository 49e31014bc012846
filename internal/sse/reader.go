package sse

import (
	"bufio"
	"io"
	"strings"
)

// Reader decodes events from an event stream. Lines have no length limit.
type Reader struct {
	r      *bufio.Reader
	lastID string
}

// NewReader returns a Reader that reads events from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// readLine returns the next line without its terminator. A final line
// without a terminator is returned along with io.EOF.
func (r *Reader) readLine() (string, error) {
	line, err := r.r.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

// Next returns the next dispatched event. It returns io.EOF once the stream
// ends; a trailing event without its terminating blank line is discarded.
func (r *Reader) Next() (Event, error) {
	var (
		eventType string
		data      strings.Builder
		hasData   bool
	)

	for {
		line, err := r.readLine()
		if err != nil {
			// A trailing event without its blank line is never dispatched.
			return Event{}, err
		}

		if line == "" {
			if !hasData {
				eventType = ""
				continue
			}
			return Event{
				Type: eventType,
				Data: strings.TrimSuffix(data.String(), "\n"),
				ID:   r.lastID,
			}, nil
		}

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			eventType = value
		case "data":
			data.WriteString(value)
			data.WriteByte('\n')
			hasData = true
		case "id":
			if !strings.ContainsRune(value, 0) {
				r.lastID = value
			}
		}
	}
}
