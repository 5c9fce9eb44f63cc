package scanner

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"lox/interpreter-go/pkg/diag"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/token"
)

// Scanner turns source text into tokens in a single left-to-right pass.
type Scanner struct {
	source  string
	tokens  []token.Token
	errors  diag.List
	start   int
	current int
	line    int
}

// New returns a scanner positioned at the start of source.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes source. The returned slice is always complete and ends with
// EOF; a non-nil error (a diag.List) means at least one character could not
// be scanned.
func Scan(source string) ([]token.Token, error) {
	return New(source).ScanTokens()
}

// ScanTokens consumes the whole source.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens, s.errors.Err()
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		s.addToken(s.either('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.either('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.either('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.either('=', token.GreaterEqual, token.Greater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.current++
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.stringLiteral()
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			s.unexpected()
		}
	}
}

func (s *Scanner) stringLiteral() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}
	if s.isAtEnd() {
		s.errors.Add(diag.PhaseScan, s.line, "", "Unterminated string.")
		return
	}
	// closing quote
	s.current++
	value := s.source[s.start+1 : s.current-1]
	s.addLiteral(token.String, runtime.StringValue{Val: value})
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.current++
	}
	// A '.' only belongs to the number when a digit follows it.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}
	text := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.errors.Add(diag.PhaseScan, s.line, "", fmt.Sprintf("Invalid number '%s'.", text))
		return
	}
	s.addLiteral(token.Number, runtime.NumberValue{Val: value})
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	s.addToken(token.LookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) unexpected() {
	r, size := utf8.DecodeRuneInString(s.source[s.start:])
	if r != utf8.RuneError && size > 1 {
		s.current = s.start + size
	}
	s.errors.Add(diag.PhaseScan, s.line, "", fmt.Sprintf("Unexpected character '%c'.", r))
}

func (s *Scanner) addToken(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(kind, s.source[s.start:s.current], s.line))
}

func (s *Scanner) addLiteral(kind token.Kind, literal runtime.Value) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

// either consumes expected when present and picks the two-character kind.
func (s *Scanner) either(expected byte, long, short token.Kind) token.Kind {
	if s.match(expected) {
		return long
	}
	return short
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
