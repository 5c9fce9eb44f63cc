// Package diag holds the line-tracked diagnostics produced by the scanner and
// parser.
package diag

import (
	"fmt"
	"strings"
)

// Phase names the pipeline stage that produced a diagnostic.
type Phase string

const (
	PhaseScan    Phase = "scan"
	PhaseParse   Phase = "parse"
	PhaseRuntime Phase = "runtime"
)

// Diagnostic is one reported error. Where is the token location suffix
// (" at end", " at 'x'") for parse errors and empty otherwise.
type Diagnostic struct {
	Phase   Phase
	Line    int
	Where   string
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
}

// List aggregates diagnostics from a single scan or parse.
type List []*Diagnostic

// Add appends a diagnostic.
func (l *List) Add(phase Phase, line int, where, message string) {
	*l = append(*l, &Diagnostic{Phase: phase, Line: line, Where: where, Message: message})
}

// Err returns the list as an error, or nil when empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, d := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

// Unwrap exposes each diagnostic to errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, d := range l {
		errs[i] = d
	}
	return errs
}
