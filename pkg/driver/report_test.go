package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lox/interpreter-go/pkg/diag"
)

func TestReports(t *testing.T) {
	if Reports(nil) != nil {
		t.Fatalf("expected no reports for nil error")
	}

	var list diag.List
	list.Add(diag.PhaseScan, 1, "", "Unexpected character '@'.")
	list.Add(diag.PhaseParse, 4, " at end", "Expect ';' after value.")
	want := []Report{
		{Phase: diag.PhaseScan, Line: 1, Message: "Unexpected character '@'."},
		{Phase: diag.PhaseParse, Line: 4, Where: " at end", Message: "Expect ';' after value."},
	}
	if diff := cmp.Diff(want, Reports(fmt.Errorf("compile: %w", list))); diff != "" {
		t.Fatalf("reports mismatch (-want +got):\n%s", diff)
	}

	runErr := NewSession(nil, &bytes.Buffer{}, nil).Run("\nprint -nil;")
	got := Reports(runErr)
	if len(got) != 1 || got[0].Phase != diag.PhaseRuntime || got[0].Line != 2 || got[0].Message != "Operand must be a number" {
		t.Fatalf("unexpected runtime report %#v", got)
	}

	got = Reports(errors.New("disk on fire"))
	if len(got) != 1 || got[0].String() != "[line 0] Error: disk on fire" {
		t.Fatalf("unexpected fallback report %#v", got)
	}
}

func TestReporterWritesPlainLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ColorNever)
	err := NewSession(nil, &bytes.Buffer{}, nil).Run("print ;\nvar = 1;")
	if n := reporter.Report(err); n != 2 {
		t.Fatalf("expected two reports, got %d", n)
	}
	want := "[line 1] Error: Expect expression.\n[line 2] Error: Expect variable name.\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("reporter output mismatch (-want +got):\n%s", diff)
	}
}

func TestReporterShowLocation(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ColorNever)
	reporter.ShowLocation(true)
	session := NewSession(nil, &bytes.Buffer{}, nil)

	reporter.Report(session.Run("print (1;"))
	reporter.Report(session.Run("print 1"))
	reporter.Report(session.Run("print -nil;"))
	want := "[line 1] Error at ';': Expect ')' after expression.\n" +
		"[line 1] Error at end: Expect ';' after value.\n" +
		"[line 1] Error: Operand must be a number\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("reporter output mismatch (-want +got):\n%s", diff)
	}
}

func TestReporterColorAutoIgnoresNonTerminals(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	NewReporter(&buf, ColorAuto).Report(errors.New("boom"))
	if buf.String() != "[line 0] Error: boom\n" {
		t.Fatalf("expected plain output for a buffer, got %q", buf.String())
	}

	logFile, err := os.Create(filepath.Join(t.TempDir(), "err.log"))
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	defer logFile.Close()
	NewReporter(logFile, ColorAuto).Report(errors.New("boom"))
	data, err := os.ReadFile(logFile.Name())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "[line 0] Error: boom\n" {
		t.Fatalf("expected no escape codes in a redirected file, got %q", data)
	}
}

func TestReporterColorAlways(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, ColorAlways).Report(errors.New("boom"))
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[31m")) {
		t.Fatalf("expected red escape sequence, got %q", buf.String())
	}
}

func TestExitCode(t *testing.T) {
	session := NewSession(nil, &bytes.Buffer{}, nil)
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, ExitOK},
		{"scan", session.Run("@"), ExitDataErr},
		{"parse", session.Run("print"), ExitDataErr},
		{"runtime", session.Run("print undefined;"), ExitSoftware},
		{"io", errors.New("read main.lox: permission denied"), ExitIOErr},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("%s: ExitCode = %d, want %d (err %v)", tc.name, got, tc.want, tc.err)
		}
	}
}
