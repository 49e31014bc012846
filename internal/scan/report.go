package scan

import (
	"html/template"
	"strings"
)

const (
	headingPrefix  = "### "
	listItemPrefix = "- "
)

// FormatReport converts the report markup to HTML. Lines starting with "### "
// become <h3> headings, lines starting with "- " become <li> items, and the
// remaining lines are joined with <br>. Headings and items absorb the line
// break that follows them. All text is escaped.
func FormatReport(text string) template.HTML {
	var b strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		last := i == len(lines)-1

		switch {
		case strings.HasPrefix(line, headingPrefix):
			b.WriteString("<h3>")
			b.WriteString(template.HTMLEscapeString(strings.TrimPrefix(line, headingPrefix)))
			b.WriteString("</h3>")
		case strings.HasPrefix(line, listItemPrefix):
			b.WriteString("<li>")
			b.WriteString(template.HTMLEscapeString(strings.TrimPrefix(line, listItemPrefix)))
			b.WriteString("</li>")
		default:
			b.WriteString(template.HTMLEscapeString(line))
			if !last {
				b.WriteString("<br>")
			}
		}
	}

	return template.HTML(b.String())
}

// FormatReportText renders the report markup for a plain-text surface.
// Headings are returned separately so the caller can style them.
func FormatReportText(text string) []ReportLine {
	var out []ReportLine
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, headingPrefix):
			out = append(out, ReportLine{Text: strings.TrimPrefix(line, headingPrefix), Heading: true})
		case strings.HasPrefix(line, listItemPrefix):
			out = append(out, ReportLine{Text: "• " + strings.TrimPrefix(line, listItemPrefix)})
		default:
			out = append(out, ReportLine{Text: line})
		}
	}
	return out
}

// ReportLine is one line of a report prepared for a terminal.
type ReportLine struct {
	Text    string
	Heading bool
}
