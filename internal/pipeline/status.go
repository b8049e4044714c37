package pipeline

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes progress lines for a run. Step labels are coloured when
// the terminal supports it.
type Reporter struct {
	w     io.Writer
	label func(a ...interface{}) string
	warn  func(a ...interface{}) string
}

// NewReporter returns a reporter writing to w. A nil w discards output.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{
		w:     w,
		label: color.New(color.FgCyan, color.Bold).SprintFunc(),
		warn:  color.New(color.FgYellow).SprintFunc(),
	}
}

// Step reports the start of a stage.
func (r *Reporter) Step(label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		fmt.Fprintln(r.w, r.label(label))
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.label(label), msg)
}

// Detail reports a count or other detail of the current stage.
func (r *Reporter) Detail(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "  "+format+"\n", args...)
}

// Warn reports a condition that does not stop the run but likely needs a
// look at the output.
func (r *Reporter) Warn(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "  %s "+format+"\n", append([]interface{}{r.warn("warning:")}, args...)...)
}
