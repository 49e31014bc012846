package views

import (
	"html/template"

	"github.com/SirClappington/competitor-watch/internal/models"
)

// Fragments is the set of page regions re-rendered by one manager operation.
// Regions that were not touched are omitted.
type Fragments struct {
	Competitors *template.HTML `json:"competitors,omitempty"`
	Suggestions *template.HTML `json:"suggestions,omitempty"`
	AddedButton *template.HTML `json:"added_button,omitempty"`
	Loading     bool           `json:"loading"`
}

// ManagerView collects the fragments produced by a CompetitorService call.
type ManagerView struct {
	fragments Fragments
	err       error
}

func NewManagerView() *ManagerView {
	return &ManagerView{}
}

func (v *ManagerView) set(dst **template.HTML, html template.HTML, err error) {
	if err != nil {
		if v.err == nil {
			v.err = err
		}
		return
	}
	*dst = &html
}

func (v *ManagerView) RenderCompetitors(competitors []models.Competitor) {
	html, err := CompetitorList(competitors)
	v.set(&v.fragments.Competitors, html, err)
}

func (v *ManagerView) SetSuggestionsLoading(loading bool) {
	v.fragments.Loading = loading
	if loading {
		v.set(&v.fragments.Suggestions, "", nil)
	}
}

func (v *ManagerView) RenderSuggestions(urls []string) {
	html, err := SuggestionList(urls)
	v.set(&v.fragments.Suggestions, html, err)
}

func (v *ManagerView) RenderSuggestionError(message string) {
	html, err := SuggestionError(message)
	v.set(&v.fragments.Suggestions, html, err)
}

func (v *ManagerView) MarkSuggestionAdded(url string) {
	html, err := AddedButton(url)
	v.set(&v.fragments.AddedButton, html, err)
}

// Fragments returns what has been rendered so far.
func (v *ManagerView) Fragments() Fragments {
	return v.fragments
}

// Err returns the first template error, if any.
func (v *ManagerView) Err() error {
	return v.err
}
