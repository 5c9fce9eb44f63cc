package interpreter

import (
	"bytes"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/scanner"
)

func parseProgram(t *testing.T, source string) []ast.Statement {
	t.Helper()
	tokens, err := scanner.Scan(source)
	if err != nil {
		t.Fatalf("scan %q: %v", source, err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return program
}

func parseExpression(t *testing.T, source string) ast.Expression {
	t.Helper()
	tokens, err := scanner.Scan(source)
	if err != nil {
		t.Fatalf("scan %q: %v", source, err)
	}
	expr, err := parser.New(tokens).ParseExpression()
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return expr
}

func runSource(t *testing.T, source string) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(&out).Interpret(parseProgram(t, source)); err != nil {
		t.Fatalf("interpret %q: %v", source, err)
	}
	return out.String()
}

func evalSource(t *testing.T, source string) runtime.Value {
	t.Helper()
	val, err := New(&bytes.Buffer{}).Evaluate(parseExpression(t, source))
	if err != nil {
		t.Fatalf("evaluate %q: %v", source, err)
	}
	return val
}

func evalSourceError(t *testing.T, source string) error {
	t.Helper()
	_, err := New(&bytes.Buffer{}).Evaluate(parseExpression(t, source))
	if err == nil {
		t.Fatalf("evaluate %q: expected an error", source)
	}
	return err
}

func globalNames(interp *Interpreter) []string {
	var names []string
	for _, b := range interp.GlobalEnvironment().Bindings() {
		names = append(names, b.Name)
	}
	return names
}
