package services

import (
	"context"
	"log"
	"strings"

	"github.com/SirClappington/competitor-watch/internal/models"
)

const suggestFailedMessage = "An error occurred."

// CompetitorView is the surface the competitor manager renders to.
type CompetitorView interface {
	// RenderCompetitors replaces the whole list.
	RenderCompetitors(competitors []models.Competitor)
	// SetSuggestionsLoading toggles the loading indicator. Showing it clears
	// the previous suggestion result.
	SetSuggestionsLoading(loading bool)
	RenderSuggestions(urls []string)
	RenderSuggestionError(message string)
	// MarkSuggestionAdded disables the add button of a suggestion.
	MarkSuggestionAdded(url string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer func(prompt string) bool

// AlwaysConfirm is used where confirmation already happened upstream.
func AlwaysConfirm(string) bool { return true }

// CompetitorService drives the competitor list and the suggestion panel.
// Add and delete failures are logged but never shown; the list is refreshed
// either way.
type CompetitorService struct {
	api    CompetitorAPI
	logger *log.Logger
}

func NewCompetitorService(api CompetitorAPI, logger *log.Logger) *CompetitorService {
	return &CompetitorService{
		api:    api,
		logger: logger,
	}
}

// Refresh fetches the competitor list and renders it. On failure the view is
// left as it was.
func (s *CompetitorService) Refresh(ctx context.Context, view CompetitorView) error {
	competitors, err := s.api.ListCompetitors(ctx)
	if err != nil {
		s.logger.Printf("Error fetching competitors: %v", err)
		return err
	}
	view.RenderCompetitors(competitors)
	return nil
}

// Add submits a competitor URL and refreshes the list. It returns false
// without any network call when the trimmed input is empty.
func (s *CompetitorService) Add(ctx context.Context, view CompetitorView, rawURL string) bool {
	competitorURL := strings.TrimSpace(rawURL)
	if competitorURL == "" {
		return false
	}

	if err := s.api.AddCompetitor(ctx, competitorURL); err != nil {
		s.logger.Printf("Error adding competitor %s: %v", competitorURL, err)
	} else {
		s.logger.Printf("Competitor %s added", competitorURL)
	}

	s.Refresh(ctx, view)
	return true
}

// Delete removes a competitor after confirmation and refreshes the list. It
// returns false when the user declined.
func (s *CompetitorService) Delete(ctx context.Context, view CompetitorView, id models.CompetitorID, confirm Confirmer) bool {
	if !confirm("Are you sure?") {
		return false
	}

	if err := s.api.DeleteCompetitor(ctx, id); err != nil {
		s.logger.Printf("Error deleting competitor %s: %v", id, err)
	} else {
		s.logger.Printf("Competitor %s deleted", id)
	}

	s.Refresh(ctx, view)
	return true
}

// Suggest asks the backend for competitors of the user's own URL and renders
// the result panel. Blank input is ignored.
func (s *CompetitorService) Suggest(ctx context.Context, view CompetitorView, rawURL string) bool {
	userURL := strings.TrimSpace(rawURL)
	if userURL == "" {
		return false
	}

	view.SetSuggestionsLoading(true)
	defer view.SetSuggestionsLoading(false)

	result, err := s.api.SuggestCompetitors(ctx, userURL)
	switch {
	case err != nil:
		s.logger.Printf("Error requesting suggestions for %s: %v", userURL, err)
		view.RenderSuggestionError(suggestFailedMessage)
	case result.Error != "":
		view.RenderSuggestionError(result.Error)
	case result.Suggestions == nil:
		s.logger.Printf("Suggestion reply for %s carried no suggestion list", userURL)
		view.RenderSuggestionError(suggestFailedMessage)
	default:
		view.RenderSuggestions(result.Suggestions)
	}
	return true
}

// AddSuggestion adds a suggested URL and marks it as added. The mark does
// not depend on the outcome of the add.
func (s *CompetitorService) AddSuggestion(ctx context.Context, view CompetitorView, suggestionURL string) {
	s.Add(ctx, view, suggestionURL)
	view.MarkSuggestionAdded(suggestionURL)
}
