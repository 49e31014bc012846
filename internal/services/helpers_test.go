package services

import (
	"io"
	"log"

	"github.com/SirClappington/competitor-watch/internal/models"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// fakeView records every call made by CompetitorService.
type fakeView struct {
	renders     [][]models.Competitor
	loading     []bool
	suggestions []string
	errMessage  string
	added       []string
}

func (v *fakeView) RenderCompetitors(c []models.Competitor) { v.renders = append(v.renders, c) }
func (v *fakeView) SetSuggestionsLoading(l bool)            { v.loading = append(v.loading, l) }
func (v *fakeView) RenderSuggestions(urls []string)         { v.suggestions = urls }
func (v *fakeView) RenderSuggestionError(msg string)        { v.errMessage = msg }
func (v *fakeView) MarkSuggestionAdded(url string)          { v.added = append(v.added, url) }
