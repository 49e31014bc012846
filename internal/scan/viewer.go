package scan

import "html/template"

const (
	completeLine   = "> Process complete."
	connectionLost = "> Connection to server lost. Please try again."
)

// LogLine is one entry of the progress log.
type LogLine struct {
	Text  string
	Error bool
}

// View receives the display changes produced by a Viewer.
type View interface {
	AppendLog(line LogLine)
	ShowReport(report Report)
}

// Report is a received scan report in both raw and formatted form.
type Report struct {
	Text string
	HTML template.HTML
}

// Viewer is the state machine behind a scan-result display. It starts with
// the log visible and the report hidden. A REPORT event hides the log and
// shows the report. DONE or a stream failure closes it; a closed Viewer
// ignores every further message.
type Viewer struct {
	view   View
	log    []LogLine
	report *Report
	closed bool
}

// NewViewer creates a Viewer that mirrors its changes to view. view may be nil.
func NewViewer(view View) *Viewer {
	return &Viewer{view: view}
}

// Handle applies one raw stream payload and reports whether the stream
// should now be closed.
func (v *Viewer) Handle(data string) bool {
	if v.closed {
		return true
	}

	ev := ParseEvent(data)
	switch ev.Kind {
	case KindStatus:
		v.appendLog(LogLine{Text: "> " + ev.Text})
	case KindReport:
		r := Report{Text: ev.Text, HTML: FormatReport(ev.Text)}
		v.report = &r
		if v.view != nil {
			v.view.ShowReport(r)
		}
	case KindDone:
		v.closed = true
		if v.report == nil || v.report.HTML == "" {
			v.appendLog(LogLine{Text: completeLine})
		}
	}
	return v.closed
}

// Fail records a stream-level error and closes the Viewer. It is a no-op once
// the Viewer is closed.
func (v *Viewer) Fail() {
	if v.closed {
		return
	}
	v.appendLog(LogLine{Text: connectionLost, Error: true})
	v.closed = true
}

func (v *Viewer) appendLog(line LogLine) {
	v.log = append(v.log, line)
	if v.view != nil {
		v.view.AppendLog(line)
	}
}

// Closed reports whether the stream has been closed.
func (v *Viewer) Closed() bool { return v.closed }

// LogVisible reports whether the progress log is shown.
func (v *Viewer) LogVisible() bool { return v.report == nil }

// ReportVisible reports whether the report area is shown.
func (v *Viewer) ReportVisible() bool { return v.report != nil }

// Log returns a copy of the log lines appended so far.
func (v *Viewer) Log() []LogLine {
	return append([]LogLine(nil), v.log...)
}

// Report returns the shown report, if any.
func (v *Viewer) Report() (Report, bool) {
	if v.report == nil {
		return Report{}, false
	}
	return *v.report, true
}
