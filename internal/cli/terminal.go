package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/scan"
	"github.com/SirClappington/competitor-watch/internal/services"
	"github.com/SirClappington/competitor-watch/internal/views"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)

// terminalView renders the competitor manager to a terminal.
type terminalView struct {
	out         io.Writer
	suggestions []string
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{out: out}
}

func (v *terminalView) RenderCompetitors(competitors []models.Competitor) {
	if len(competitors) == 0 {
		fmt.Fprintln(v.out, views.EmptyListMessage)
		return
	}

	idWidth := runewidth.StringWidth("ID")
	for _, c := range competitors {
		if w := runewidth.StringWidth(c.ID.String()); w > idWidth {
			idWidth = w
		}
	}

	fmt.Fprintln(v.out, mutedStyle.Render(runewidth.FillRight("ID", idWidth)+"  URL"))
	for _, c := range competitors {
		fmt.Fprintln(v.out, runewidth.FillRight(c.ID.String(), idWidth)+"  "+c.URL)
	}
}

func (v *terminalView) SetSuggestionsLoading(loading bool) {
	if loading {
		v.suggestions = nil
		fmt.Fprintln(v.out, mutedStyle.Render("Searching for competitors..."))
	}
}

func (v *terminalView) RenderSuggestions(urls []string) {
	v.suggestions = urls
	for i, u := range urls {
		fmt.Fprintf(v.out, "%2d. %s\n", i+1, u)
	}
}

func (v *terminalView) RenderSuggestionError(message string) {
	fmt.Fprintln(v.out, errorStyle.Render(message))
}

func (v *terminalView) MarkSuggestionAdded(url string) {
	fmt.Fprintln(v.out, addedStyle.Render(views.AddedLabel)+" "+url)
}

// Suggestions returns the URLs of the last rendered suggestion list.
func (v *terminalView) Suggestions() []string {
	return v.suggestions
}

var _ services.CompetitorView = (*terminalView)(nil)

// terminalScanView prints scan progress and the final report.
type terminalScanView struct {
	out io.Writer
}

func newTerminalScanView(out io.Writer) *terminalScanView {
	return &terminalScanView{out: out}
}

func (v *terminalScanView) AppendLog(line scan.LogLine) {
	if line.Error {
		fmt.Fprintln(v.out, errorStyle.Render(line.Text))
		return
	}
	fmt.Fprintln(v.out, mutedStyle.Render(line.Text))
}

func (v *terminalScanView) ShowReport(report scan.Report) {
	fmt.Fprintln(v.out)
	for _, line := range scan.FormatReportText(report.Text) {
		if line.Heading {
			fmt.Fprintln(v.out, headingStyle.Render(line.Text))
			continue
		}
		fmt.Fprintln(v.out, line.Text)
	}
}

// terminalConfirmer asks on the terminal unless assumeYes is set. Without an
// interactive terminal it declines.
func terminalConfirmer(in *os.File, out io.Writer, assumeYes bool) services.Confirmer {
	return func(prompt string) bool {
		if assumeYes {
			return true
		}
		if !term.IsTerminal(int(in.Fd())) {
			fmt.Fprintln(out, "Not an interactive terminal; pass --yes to confirm.")
			return false
		}
		return readConfirmation(in, out, prompt)
	}
}

func readConfirmation(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
