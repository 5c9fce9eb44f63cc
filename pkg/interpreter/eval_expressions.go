package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/token"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.LiteralExpression:
		return n.Value, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Inner, env)
	case *ast.VariableExpression:
		val, err := env.Get(n.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(n.Name, err)
		}
		return val, nil
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case nil:
		return nil, fmt.Errorf("nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

// evaluateAssignment yields the assigned value.
func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(assign.Name.Lexeme, val); err != nil {
		return nil, newRuntimeError(assign.Name, err)
	}
	return val, nil
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case token.Minus:
		n, err := runtime.AsNumber(operand)
		if err != nil {
			return nil, newRuntimeError(expr.Operator, err)
		}
		return runtime.NumberValue{Val: -n}, nil
	case token.Bang:
		return runtime.BoolValue{Val: !runtime.IsTruthy(operand)}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator.Lexeme)
	}
}

// evaluateBinaryExpression evaluates left before right.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	op := expr.Operator
	switch op.Kind {
	case token.Plus:
		sum, err := runtime.Add(left, right)
		if err != nil {
			return nil, newRuntimeError(op, err)
		}
		return sum, nil
	case token.Minus, token.Slash, token.Star:
		l, r, err := numberOperands(left, right)
		if err != nil {
			return nil, newRuntimeError(op, err)
		}
		return runtime.NumberValue{Val: evaluateArithmetic(op.Kind, l, r)}, nil
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		l, r, err := numberOperands(left, right)
		if err != nil {
			return nil, newRuntimeError(op, err)
		}
		return runtime.BoolValue{Val: evaluateComparison(op.Kind, l, r)}, nil
	case token.EqualEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case token.BangEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", op.Lexeme)
	}
}

func numberOperands(left, right runtime.Value) (float64, float64, error) {
	l, err := runtime.AsNumber(left)
	if err != nil {
		return 0, 0, err
	}
	r, err := runtime.AsNumber(right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// evaluateArithmetic follows IEEE-754; division by zero yields ±Inf or NaN.
func evaluateArithmetic(kind token.Kind, left, right float64) float64 {
	switch kind {
	case token.Minus:
		return left - right
	case token.Slash:
		return left / right
	default:
		return left * right
	}
}

func evaluateComparison(kind token.Kind, left, right float64) bool {
	switch kind {
	case token.Greater:
		return left > right
	case token.GreaterEqual:
		return left >= right
	case token.Less:
		return left < right
	default:
		return left <= right
	}
}
