package driver

import (
	"errors"

	"lox/interpreter-go/pkg/diag"
	"lox/interpreter-go/pkg/interpreter"
)

// Process exit codes, following sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// ExitCode maps a Run/RunFile error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var rt *interpreter.RuntimeError
	if errors.As(err, &rt) {
		return ExitSoftware
	}
	var list diag.List
	if errors.As(err, &list) {
		return ExitDataErr
	}
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		return ExitDataErr
	}
	return ExitIOErr
}
