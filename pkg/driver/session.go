package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/diag"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/scanner"
	"lox/interpreter-go/pkg/token"
)

// Session feeds source units through scanner, parser and interpreter. One
// Session owns one Interpreter, so bindings persist across Run calls.
type Session struct {
	cfg    *Config
	interp *interpreter.Interpreter
	out    io.Writer
	trace  io.Writer
}

// NewSession builds a session printing program output to out and trace dumps
// to trace. A nil cfg means DefaultConfig; a nil trace discards dumps.
func NewSession(cfg *Config, out, trace io.Writer) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	if trace == nil {
		trace = io.Discard
	}
	return &Session{cfg: cfg, interp: interpreter.New(out), out: out, trace: trace}
}

// Config returns the session configuration.
func (s *Session) Config() *Config {
	return s.cfg
}

// Interpreter exposes the underlying interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Run executes one source unit. Scan and parse errors are returned together
// as a diag.List and nothing is executed; a runtime failure is returned as
// *interpreter.RuntimeError.
func (s *Session) Run(source string) error {
	statements, err := s.compile(source)
	if err != nil {
		return err
	}
	err = s.interp.Interpret(statements)
	if err != nil {
		s.tracef("runtime error: %v", err)
	}
	s.dumpGlobals()
	return err
}

func (s *Session) compile(source string) ([]ast.Statement, error) {
	tokens, scanErr := scanner.Scan(source)
	s.tracef("scanned %d tokens", len(tokens))
	if s.cfg.Trace.Tokens {
		s.dumpTokens(tokens)
	}
	statements, parseErr := parser.Parse(tokens)
	if scanErr != nil || parseErr != nil {
		return nil, mergeDiagnostics(scanErr, parseErr)
	}
	s.tracef("parsed %d statements", len(statements))
	if s.cfg.Trace.AST {
		fmt.Fprintln(s.trace, ast.FormatProgram(statements))
	}
	return statements, nil
}

// RunLine runs one prompt line. A line that is a bare expression (no trailing
// semicolon) is evaluated and its value printed.
func (s *Session) RunLine(line string) error {
	tokens, scanErr := scanner.Scan(line)
	if scanErr == nil && !hasSemicolonOrBrace(tokens) {
		if expr, err := parser.New(tokens).ParseExpression(); err == nil {
			val, err := s.interp.Evaluate(expr)
			s.dumpGlobals()
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, runtime.Stringify(val))
			return nil
		}
	}
	return s.Run(line)
}

// RunFile reads and runs a script.
func (s *Session) RunFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if s.cfg.Banner {
		fmt.Fprintf(s.out, "Running file %s\n", path)
	}
	return s.Run(string(content))
}

// Prompt reads lines from in until EOF or the exit command. Errors on a line
// are reported through reporter and the loop continues.
func (s *Session) Prompt(in io.Reader, reporter *Reporter) error {
	lines := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, s.cfg.Prompt)
		if !lines.Scan() {
			break
		}
		line := lines.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == s.cfg.ExitCommand {
			return nil
		}
		if trimmed == "" {
			continue
		}
		if err := s.RunLine(line); err != nil {
			reporter.Report(err)
		}
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("read prompt: %w", err)
	}
	return nil
}

func (s *Session) dumpTokens(tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(s.trace, tok.String())
	}
}

// dumpGlobals writes one `env: name = value` line per global binding.
func (s *Session) dumpGlobals() {
	if !s.cfg.Trace.Env {
		return
	}
	for _, b := range s.interp.GlobalEnvironment().Bindings() {
		fmt.Fprintf(s.trace, "env: %s = %s\n", b.Name, runtime.Inspect(b.Value))
	}
}

func (s *Session) tracef(format string, args ...any) {
	if !s.cfg.Trace.Phases {
		return
	}
	fmt.Fprintf(s.trace, "trace: "+format+"\n", args...)
}

func hasSemicolonOrBrace(tokens []token.Token) bool {
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Semicolon, token.LeftBrace, token.RightBrace:
			return true
		}
	}
	return false
}

func mergeDiagnostics(errs ...error) error {
	var merged diag.List
	for _, err := range errs {
		if err == nil {
			continue
		}
		var list diag.List
		if errors.As(err, &list) {
			merged = append(merged, list...)
			continue
		}
		merged.Add(diag.PhaseParse, 0, "", err.Error())
	}
	return merged.Err()
}
