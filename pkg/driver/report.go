package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"lox/interpreter-go/pkg/diag"
	"lox/interpreter-go/pkg/interpreter"
)

// Report is one error as shown to the user.
type Report struct {
	Phase   diag.Phase
	Line    int
	Where   string
	Message string
}

func (r Report) String() string {
	return fmt.Sprintf("[line %d] Error: %s", r.Line, r.Message)
}

// Detail is String with the token location, e.g.
// `[line 1] Error at ';': Expect expression.`.
func (r Report) Detail() string {
	return fmt.Sprintf("[line %d] Error%s: %s", r.Line, r.Where, r.Message)
}

// Reports flattens a scan/parse diagnostic list or a runtime error into
// reports. Any other error becomes a single report with line 0.
func Reports(err error) []Report {
	if err == nil {
		return nil
	}
	var list diag.List
	if errors.As(err, &list) {
		out := make([]Report, 0, len(list))
		for _, d := range list {
			out = append(out, Report{Phase: d.Phase, Line: d.Line, Where: d.Where, Message: d.Message})
		}
		return out
	}
	var single *diag.Diagnostic
	if errors.As(err, &single) {
		return []Report{{Phase: single.Phase, Line: single.Line, Where: single.Where, Message: single.Message}}
	}
	var rt *interpreter.RuntimeError
	if errors.As(err, &rt) {
		return []Report{{Phase: diag.PhaseRuntime, Line: rt.Line(), Message: rt.Message}}
	}
	return []Report{{Message: err.Error()}}
}

// Reporter writes reports to a writer, in red when color is enabled.
type Reporter struct {
	w        io.Writer
	paint    *color.Color
	location bool
}

// NewReporter builds a reporter for w. ColorAuto colors only when w itself is
// a terminal.
func NewReporter(w io.Writer, mode ColorMode) *Reporter {
	paint := color.New(color.FgRed)
	switch mode {
	case ColorAlways:
		paint.EnableColor()
	case ColorNever:
		paint.DisableColor()
	default:
		if smartTerminal(w) {
			paint.EnableColor()
		} else {
			paint.DisableColor()
		}
	}
	return &Reporter{w: w, paint: paint}
}

// ShowLocation switches reports to the Detail form.
func (r *Reporter) ShowLocation(on bool) {
	r.location = on
}

// Report writes every report derived from err and returns how many were written.
func (r *Reporter) Report(err error) int {
	reports := Reports(err)
	for _, rep := range reports {
		line := rep.String()
		if r.location {
			line = rep.Detail()
		}
		r.paint.Fprintln(r.w, line)
	}
	return len(reports)
}

// smartTerminal follows ninja's line printer: a tty with a TERM that is set
// and not "dumb". NO_COLOR turns color off as in fatih/color.
func smartTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
