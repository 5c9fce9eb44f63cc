package parser

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/diag"
	"lox/interpreter-go/pkg/token"
)

// Parser is a recursive-descent parser over a scanned token slice. The cursor
// only moves forward.
type Parser struct {
	tokens  []token.Token
	current int
	errors  diag.List
}

// New returns a parser for tokens. A missing EOF sentinel is appended.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, "", line))
	}
	return &Parser{tokens: tokens}
}

// Parse is shorthand for New(tokens).Parse().
func Parse(tokens []token.Token) ([]ast.Statement, error) {
	return New(tokens).Parse()
}

// Parse consumes the program. When a declaration fails the parser records the
// diagnostic, resynchronizes at the next statement boundary and keeps going so
// that every syntax error is reported; any error discards the whole program.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var statements []ast.Statement
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	if err := p.errors.Err(); err != nil {
		return nil, err
	}
	return statements, nil
}

// ParseExpression parses a single expression followed by EOF.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	expr, err := p.expression()
	if err != nil {
		p.record(err)
		return nil, p.errors.Err()
	}
	if !p.isAtEnd() {
		p.record(p.errorAt(p.peek(), "Expect end of expression."))
		return nil, p.errors.Err()
	}
	return expr, nil
}

func (p *Parser) record(err error) {
	if d, ok := err.(*diag.Diagnostic); ok {
		p.errors = append(p.errors, d)
		return
	}
	p.errors.Add(diag.PhaseParse, p.peek().Line, "", err.Error())
}

// synchronize discards tokens until a likely statement boundary.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

func (p *Parser) errorAt(tok token.Token, message string) *diag.Diagnostic {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = " at end"
	}
	return &diag.Diagnostic{Phase: diag.PhaseParse, Line: tok.Line, Where: where, Message: message}
}
