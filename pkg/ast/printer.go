package ast

import (
	"fmt"
	"strings"

	"lox/interpreter-go/pkg/runtime"
)

// Format renders a node as a parenthesized prefix expression, e.g.
// `(* (- 123) (group 45.67))`.
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// FormatProgram renders one statement per line.
func FormatProgram(statements []Statement) string {
	var b strings.Builder
	for i, stmt := range statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeNode(&b, stmt)
	}
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *LiteralExpression:
		b.WriteString(runtime.Inspect(n.Value))
	case *GroupingExpression:
		parenthesize(b, "group", n.Inner)
	case *UnaryExpression:
		parenthesize(b, n.Operator.Lexeme, n.Operand)
	case *BinaryExpression:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *VariableExpression:
		b.WriteString(n.Name.Lexeme)
	case *AssignmentExpression:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *ExpressionStatement:
		parenthesize(b, ";", n.Expression)
	case *PrintStatement:
		parenthesize(b, "print", n.Expression)
	case *VarStatement:
		if n.Initializer == nil {
			parenthesize(b, "var "+n.Name.Lexeme)
			return
		}
		parenthesize(b, "var "+n.Name.Lexeme, n.Initializer)
	case *BlockStatement:
		nodes := make([]Node, len(n.Statements))
		for i, stmt := range n.Statements {
			nodes[i] = stmt
		}
		parenthesize(b, "block", nodes...)
	case *IfStatement:
		if n.Else == nil {
			parenthesize(b, "if", n.Condition, n.Then)
			return
		}
		parenthesize(b, "if", n.Condition, n.Then, n.Else)
	case nil:
		b.WriteString("<nil>")
	default:
		fmt.Fprintf(b, "<%s>", n.NodeType())
	}
}

func parenthesize(b *strings.Builder, name string, parts ...Node) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		writeNode(b, part)
	}
	b.WriteByte(')')
}
