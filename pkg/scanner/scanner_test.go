package scanner

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lox/interpreter-go/pkg/diag"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/token"
)

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func mustScan(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, err := Scan(source)
	if err != nil {
		t.Fatalf("Scan(%q) returned error: %v", source, err)
	}
	return tokens
}

func TestScanWhitespaceAndCommentsOnly(t *testing.T) {
	sources := []string{
		"",
		"   \t\r\n",
		"// just a comment",
		"// one\n// two\n\n   // three",
	}
	for _, src := range sources {
		tokens := mustScan(t, src)
		if diff := cmp.Diff([]token.Kind{token.EOF}, kindsOf(tokens)); diff != "" {
			t.Fatalf("Scan(%q) kinds mismatch (-want +got):\n%s", src, diff)
		}
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens := mustScan(t, "(){},.-+;/* ! != = == > >= < <=")
	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Slash, token.Star,
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
		token.EOF,
	}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanMaximalMunch(t *testing.T) {
	tokens := mustScan(t, "!==>=")
	want := []token.Kind{token.BangEqual, token.EqualEqual, token.GreaterEqual, token.EOF}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanNumbers(t *testing.T) {
	for _, text := range []string{"0", "7", "123", "1.5", "3.14159", "0.1", "1234567890.0987654321"} {
		tokens := mustScan(t, text)
		if len(tokens) != 2 || tokens[0].Kind != token.Number {
			t.Fatalf("Scan(%q) = %v, want single NUMBER", text, tokens)
		}
		want, _ := strconv.ParseFloat(text, 64)
		if !runtime.Equal(tokens[0].Literal, runtime.NumberValue{Val: want}) {
			t.Fatalf("Scan(%q) literal = %#v, want %v", text, tokens[0].Literal, want)
		}
		if tokens[0].Lexeme != text {
			t.Fatalf("Scan(%q) lexeme = %q", text, tokens[0].Lexeme)
		}
	}
}

func TestScanTrailingDotIsNotPartOfNumber(t *testing.T) {
	tokens := mustScan(t, "12.")
	want := []token.Kind{token.Number, token.Dot, token.EOF}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if tokens[0].Lexeme != "12" {
		t.Fatalf("expected lexeme 12, got %q", tokens[0].Lexeme)
	}
	tokens = mustScan(t, "1.foo")
	want = []token.Kind{token.Number, token.Dot, token.Identifier, token.EOF}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanStringLiteral(t *testing.T) {
	tokens := mustScan(t, "\"hello\nworld\" x")
	want := []token.Token{
		{Kind: token.String, Lexeme: "\"hello\nworld\"", Literal: runtime.StringValue{Val: "hello\nworld"}, Line: 2},
		{Kind: token.Identifier, Lexeme: "x", Literal: runtime.NilValue{}, Line: 2},
		{Kind: token.EOF, Lexeme: "", Literal: runtime.NilValue{}, Line: 2},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens := mustScan(t, "var answer = nil; if else print true false and or class fun for return super this while _x1")
	want := []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Nil, token.Semicolon,
		token.If, token.Else, token.Print, token.True, token.False, token.And, token.Or,
		token.Class, token.Fun, token.For, token.Return, token.Super, token.This, token.While,
		token.Identifier, token.EOF,
	}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTracksLines(t *testing.T) {
	tokens := mustScan(t, "a\n\nb // c\nd")
	lines := make([]int, len(tokens))
	for i, tok := range tokens {
		lines[i] = tok.Line
	}
	if diff := cmp.Diff([]int{1, 3, 4, 4}, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	tokens, err := Scan("1 @ 2\n#")
	if err == nil {
		t.Fatalf("expected scan error")
	}
	want := []token.Kind{token.Number, token.Number, token.EOF}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("scanning should continue past bad characters (-want +got):\n%s", diff)
	}
	var list diag.List
	if !errors.As(err, &list) || len(list) != 2 {
		t.Fatalf("expected two diagnostics, got %v", err)
	}
	if list[0].Line != 1 || list[0].Message != "Unexpected character '@'." {
		t.Fatalf("unexpected first diagnostic %#v", list[0])
	}
	if list[1].Line != 2 || list[1].Phase != diag.PhaseScan {
		t.Fatalf("unexpected second diagnostic %#v", list[1])
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, err := Scan("print \"oops\n")
	var list diag.List
	if !errors.As(err, &list) || len(list) != 1 {
		t.Fatalf("expected one diagnostic, got %v", err)
	}
	if list[0].Message != "Unterminated string." || list[0].Line != 2 {
		t.Fatalf("unexpected diagnostic %#v", list[0])
	}
	if diff := cmp.Diff([]token.Kind{token.Print, token.EOF}, kindsOf(tokens)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if err.Error() != "[line 2] Error: Unterminated string." {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestScanNonASCIICharacterReportedOnce(t *testing.T) {
	_, err := Scan("é")
	var list diag.List
	if !errors.As(err, &list) || len(list) != 1 {
		t.Fatalf("expected a single diagnostic for a multi-byte rune, got %v", err)
	}
	if list[0].Message != "Unexpected character 'é'." {
		t.Fatalf("unexpected message %q", list[0].Message)
	}
}
