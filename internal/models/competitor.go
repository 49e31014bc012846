package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CompetitorID is the opaque identifier the backend assigns to a competitor.
// The backend may encode it as a JSON number or a JSON string.
type CompetitorID string

func (id *CompetitorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid competitor id: %w", err)
		}
		*id = CompetitorID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid competitor id: %w", err)
	}
	*id = CompetitorID(n.String())
	return nil
}

func (id CompetitorID) String() string {
	return string(id)
}

// Competitor represents a tracked competitor URL.
type Competitor struct {
	ID  CompetitorID `json:"id"`
	URL string       `json:"url"`
}

// CompetitorRequest is the body sent when adding a competitor or asking for suggestions.
type CompetitorRequest struct {
	URL string `json:"url"`
}

// SuggestResponse carries either candidate competitor URLs or a backend error message.
// A nil Suggestions means the reply had no list at all; an empty list decodes non-nil.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
	Error       string   `json:"error,omitempty"`
}

// FindCompetitor returns the competitor with the given id, if present.
func FindCompetitor(competitors []Competitor, id CompetitorID) (Competitor, bool) {
	for _, c := range competitors {
		if c.ID == id {
			return c, true
		}
	}
	return Competitor{}, false
}
