package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/SirClappington/competitor-watch/internal/models"
)

// fakeAPI is an in-memory CompetitorAPI that counts calls.
type fakeAPI struct {
	competitors []models.Competitor
	suggest     *models.SuggestResponse
	suggestErr  error
	addErr      error
	deleteErr   error
	listErr     error

	listCalls   int
	added       []string
	deleted     []models.CompetitorID
	suggestedOf []string
}

func (f *fakeAPI) ListCompetitors(context.Context) ([]models.Competitor, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Competitor(nil), f.competitors...), nil
}

func (f *fakeAPI) AddCompetitor(_ context.Context, url string) error {
	f.added = append(f.added, url)
	if f.addErr != nil {
		return f.addErr
	}
	f.competitors = append(f.competitors, models.Competitor{ID: models.CompetitorID(url), URL: url})
	return nil
}

func (f *fakeAPI) DeleteCompetitor(_ context.Context, id models.CompetitorID) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeAPI) SuggestCompetitors(_ context.Context, url string) (*models.SuggestResponse, error) {
	f.suggestedOf = append(f.suggestedOf, url)
	return f.suggest, f.suggestErr
}

func (f *fakeAPI) calls() int {
	return f.listCalls + len(f.added) + len(f.deleted) + len(f.suggestedOf)
}

func TestRefreshRendersList(t *testing.T) {
	api := &fakeAPI{competitors: []models.Competitor{{ID: "1", URL: "http://a.com"}}}
	view := &fakeView{}

	if err := NewCompetitorService(api, testLogger()).Refresh(context.Background(), view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.renders) != 1 || !reflect.DeepEqual(view.renders[0], api.competitors) {
		t.Errorf("unexpected renders: %+v", view.renders)
	}
}

func TestRefreshFailureKeepsView(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("down")}
	view := &fakeView{}

	if err := NewCompetitorService(api, testLogger()).Refresh(context.Background(), view); err == nil {
		t.Fatal("expected error")
	}
	if len(view.renders) != 0 {
		t.Error("view should not be re-rendered on failure")
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		addErr        error
		wantSubmitted bool
		wantAdded     []string
		wantRenders   int
	}{
		{"whitespace only", "   \t ", nil, false, nil, 0},
		{"empty", "", nil, false, nil, 0},
		{"trims input", "  http://c.com  ", nil, true, []string{"http://c.com"}, 1},
		{"failed add still refreshes", "http://d.com", errors.New("500"), true, []string{"http://d.com"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{addErr: tt.addErr}
			view := &fakeView{}

			submitted := NewCompetitorService(api, testLogger()).Add(context.Background(), view, tt.input)
			if submitted != tt.wantSubmitted {
				t.Errorf("expected submitted=%v, got %v", tt.wantSubmitted, submitted)
			}
			if !reflect.DeepEqual(api.added, tt.wantAdded) {
				t.Errorf("expected added %v, got %v", tt.wantAdded, api.added)
			}
			if len(view.renders) != tt.wantRenders {
				t.Errorf("expected %d renders, got %d", tt.wantRenders, len(view.renders))
			}
			if !tt.wantSubmitted && api.calls() != 0 {
				t.Errorf("expected no network calls, got %d", api.calls())
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		api := &fakeAPI{}
		view := &fakeView{}
		var prompt string

		ok := NewCompetitorService(api, testLogger()).Delete(context.Background(), view, "4", func(p string) bool {
			prompt = p
			return false
		})
		if ok || api.calls() != 0 || len(view.renders) != 0 {
			t.Errorf("declined delete should do nothing (ok=%v calls=%d)", ok, api.calls())
		}
		if prompt != "Are you sure?" {
			t.Errorf("unexpected prompt %q", prompt)
		}
	})

	t.Run("confirmed with failure", func(t *testing.T) {
		api := &fakeAPI{deleteErr: errors.New("gone")}
		view := &fakeView{}

		ok := NewCompetitorService(api, testLogger()).Delete(context.Background(), view, "4", AlwaysConfirm)
		if !ok {
			t.Fatal("expected delete to proceed")
		}
		if !reflect.DeepEqual(api.deleted, []models.CompetitorID{"4"}) {
			t.Errorf("unexpected deletes %v", api.deleted)
		}
		if len(view.renders) != 1 {
			t.Errorf("expected list refresh after delete, got %d renders", len(view.renders))
		}
	})
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name            string
		response        *models.SuggestResponse
		err             error
		wantSuggestions []string
		wantError       string
	}{
		{
			name:            "suggestions",
			response:        &models.SuggestResponse{Suggestions: []string{"http://a.com", "http://b.com"}},
			wantSuggestions: []string{"http://a.com", "http://b.com"},
		},
		{
			name:      "backend error message",
			response:  &models.SuggestResponse{Error: "bad url"},
			wantError: "bad url",
		},
		{
			name:            "empty suggestion list",
			response:        &models.SuggestResponse{Suggestions: []string{}},
			wantSuggestions: []string{},
		},
		{
			name:      "reply without suggestions",
			response:  &models.SuggestResponse{},
			wantError: "An error occurred.",
		},
		{
			name:      "network failure",
			err:       errors.New("connection refused"),
			wantError: "An error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{suggest: tt.response, suggestErr: tt.err}
			view := &fakeView{}

			if !NewCompetitorService(api, testLogger()).Suggest(context.Background(), view, " http://mine.com ") {
				t.Fatal("expected suggest to run")
			}
			if !reflect.DeepEqual(api.suggestedOf, []string{"http://mine.com"}) {
				t.Errorf("unexpected suggest input %v", api.suggestedOf)
			}
			if !reflect.DeepEqual(view.suggestions, tt.wantSuggestions) {
				t.Errorf("expected suggestions %v, got %v", tt.wantSuggestions, view.suggestions)
			}
			if view.errMessage != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, view.errMessage)
			}
			if !reflect.DeepEqual(view.loading, []bool{true, false}) {
				t.Errorf("expected loading shown then hidden, got %v", view.loading)
			}
		})
	}
}

func TestSuggestBlankIsIgnored(t *testing.T) {
	api := &fakeAPI{}
	view := &fakeView{}

	if NewCompetitorService(api, testLogger()).Suggest(context.Background(), view, "  ") {
		t.Error("blank suggest should not run")
	}
	if api.calls() != 0 || len(view.loading) != 0 {
		t.Error("blank suggest should not touch the network or the view")
	}
}

func TestAddSuggestionMarksEvenOnFailure(t *testing.T) {
	api := &fakeAPI{addErr: errors.New("500")}
	view := &fakeView{}

	NewCompetitorService(api, testLogger()).AddSuggestion(context.Background(), view, "http://a.com")

	if !reflect.DeepEqual(api.added, []string{"http://a.com"}) {
		t.Errorf("unexpected adds %v", api.added)
	}
	if !reflect.DeepEqual(view.added, []string{"http://a.com"}) {
		t.Errorf("expected suggestion marked added, got %v", view.added)
	}
}
