package ast

import (
	"fmt"

	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/token"
)

// Builders for constructing trees by hand, mostly in tests. Synthesised
// tokens carry line 1 unless built with Tok.

var operatorKinds = map[string]token.Kind{
	"-":  token.Minus,
	"+":  token.Plus,
	"/":  token.Slash,
	"*":  token.Star,
	"!":  token.Bang,
	"!=": token.BangEqual,
	"==": token.EqualEqual,
	">":  token.Greater,
	">=": token.GreaterEqual,
	"<":  token.Less,
	"<=": token.LessEqual,
	"=":  token.Equal,
}

// Op returns the operator token for lexeme.
func Op(lexeme string) token.Token {
	kind, ok := operatorKinds[lexeme]
	if !ok {
		panic(fmt.Sprintf("ast: unknown operator %q", lexeme))
	}
	return token.New(kind, lexeme, 1)
}

// Tok returns an identifier token on the given line.
func Tok(name string, line int) token.Token {
	return token.New(token.Identifier, name, line)
}

func Num(v float64) *LiteralExpression {
	return NewLiteralExpression(runtime.NumberValue{Val: v})
}

func Str(v string) *LiteralExpression {
	return NewLiteralExpression(runtime.StringValue{Val: v})
}

func Bool(v bool) *LiteralExpression {
	return NewLiteralExpression(runtime.BoolValue{Val: v})
}

func Nil() *LiteralExpression {
	return NewLiteralExpression(runtime.NilValue{})
}

func Group(inner Expression) *GroupingExpression {
	return NewGroupingExpression(inner)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(Op("-"), operand)
}

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression(Op("!"), operand)
}

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(Op(op), left, right)
}

func Var(name string) *VariableExpression {
	return NewVariableExpression(Tok(name, 1))
}

func Set(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(Tok(name, 1), value)
}

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Print(expr Expression) *PrintStatement {
	return NewPrintStatement(expr)
}

// Decl declares name; pass a nil initializer for `var name;`.
func Decl(name string, initializer Expression) *VarStatement {
	return NewVarStatement(Tok(name, 1), initializer)
}

func Block(statements ...Statement) *BlockStatement {
	return NewBlockStatement(statements)
}

// If builds an if statement; otherwise may be nil.
func If(condition Expression, then, otherwise Statement) *IfStatement {
	return NewIfStatement(condition, then, otherwise)
}
