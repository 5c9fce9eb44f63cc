package interpreter

import (
	"fmt"
	"io"
	"os"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/token"
)

// Interpreter walks parsed statements against a chain of environments. The
// global environment lives as long as the Interpreter, so reusing one
// instance keeps bindings between calls.
type Interpreter struct {
	global *runtime.Environment
	out    io.Writer
}

// New returns an interpreter with an empty global environment that prints to
// out (os.Stdout when nil).
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{
		global: runtime.NewEnvironment(nil),
		out:    out,
	}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Interpret executes statements in order and stops at the first runtime
// error, which is returned as a *RuntimeError.
func (i *Interpreter) Interpret(statements []ast.Statement) error {
	for _, stmt := range statements {
		if err := i.evaluateStatement(stmt, i.global); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression in the global environment.
func (i *Interpreter) Evaluate(expr ast.Expression) (runtime.Value, error) {
	return i.evaluateExpression(expr, i.global)
}

// RuntimeError aborts interpretation. Token is the operator or identifier the
// failure is attributed to.
type RuntimeError struct {
	Token   token.Token
	Message string
	Err     error
}

func newRuntimeError(tok token.Token, err error) *RuntimeError {
	return &RuntimeError{Token: tok, Message: err.Error(), Err: err}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Line is the source line of the offending token.
func (e *RuntimeError) Line() int {
	return e.Token.Line
}
