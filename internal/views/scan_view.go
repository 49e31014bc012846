package views

import (
	"github.com/SirClappington/competitor-watch/internal/scan"
)

// Scan event names understood by the scan page.
const (
	EventLog    = "log"
	EventReport = "report"
	EventClose  = "close"
)

// Emitter delivers one named event with an HTML payload to the browser.
type Emitter func(event string, data string)

// ScanStreamView turns Viewer changes into rendered events for the scan page.
type ScanStreamView struct {
	emit Emitter
	err  error
}

func NewScanStreamView(emit Emitter) *ScanStreamView {
	return &ScanStreamView{emit: emit}
}

func (v *ScanStreamView) AppendLog(line scan.LogLine) {
	html, err := LogLine(line)
	if err != nil {
		v.err = err
		return
	}
	v.emit(EventLog, string(html))
}

func (v *ScanStreamView) ShowReport(report scan.Report) {
	v.emit(EventReport, string(report.HTML))
}

// Close tells the page the stream is finished so it does not reconnect.
// The payload is never empty since browsers drop events without data.
func (v *ScanStreamView) Close() {
	v.emit(EventClose, "end")
}

// Err returns the last template error, if any.
func (v *ScanStreamView) Err() error {
	return v.err
}
