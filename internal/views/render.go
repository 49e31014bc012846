package views

import (
	"bytes"
	"html/template"
	"io"

	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/scan"
)

const connectionLostLine = "> Connection to server lost. Please try again."

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// CompetitorList renders the tracked competitors, or the placeholder when
// there are none.
func CompetitorList(competitors []models.Competitor) (template.HTML, error) {
	return execute("competitor-list", competitors)
}

// SuggestionList renders each suggested URL with its add button.
func SuggestionList(urls []string) (template.HTML, error) {
	return execute("suggestion-list", urls)
}

// SuggestionError renders a suggestion failure message in red.
func SuggestionError(message string) (template.HTML, error) {
	return execute("suggestion-error", message)
}

// AddedButton renders the disabled button that replaces an added suggestion.
func AddedButton(url string) (template.HTML, error) {
	return execute("added-button", url)
}

// LogLine renders one progress log entry.
func LogLine(line scan.LogLine) (template.HTML, error) {
	return execute("log-line", line)
}

// IndexPage writes the competitor list page with the list pre-rendered.
func IndexPage(w io.Writer, list template.HTML) error {
	return indexPage.Execute(w, list)
}

// ScanPage writes the scan-result page for a competitor.
func ScanPage(w io.Writer, competitor models.Competitor) error {
	lost, err := LogLine(scan.LogLine{Text: connectionLostLine, Error: true})
	if err != nil {
		return err
	}
	return scanPage.Execute(w, struct {
		URL            string
		ConnectionLost string
	}{
		URL:            competitor.URL,
		ConnectionLost: string(lost),
	})
}
