package runtime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The set of
// implementations is closed: StringValue, NumberValue, BoolValue and NilValue.
type Value interface {
	Kind() Kind
	isValue()
}

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }
func (StringValue) isValue()     {}

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }
func (NumberValue) isValue()     {}

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }
func (BoolValue) isValue()     {}

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }
func (NilValue) isValue()   {}

var (
	ErrOperandNotNumber = errors.New("Operand must be a number")
	ErrOperandsMismatch = errors.New("Operands must be two numbers or two strings")
)

//-----------------------------------------------------------------------------
// Operations
//-----------------------------------------------------------------------------

// Equal reports structural equality. Values of different kinds are never equal.
func Equal(left, right Value) bool {
	switch l := left.(type) {
	case StringValue:
		r, ok := right.(StringValue)
		return ok && l.Val == r.Val
	case NumberValue:
		r, ok := right.(NumberValue)
		return ok && l.Val == r.Val
	case BoolValue:
		r, ok := right.(BoolValue)
		return ok && l.Val == r.Val
	case NilValue:
		_, ok := right.(NilValue)
		return ok
	case nil:
		return right == nil
	}
	return false
}

// Add implements `+`: numeric sum or string concatenation.
func Add(left, right Value) (Value, error) {
	switch l := left.(type) {
	case NumberValue:
		if r, ok := right.(NumberValue); ok {
			return NumberValue{Val: l.Val + r.Val}, nil
		}
	case StringValue:
		if r, ok := right.(StringValue); ok {
			return StringValue{Val: l.Val + r.Val}, nil
		}
	}
	return nil, ErrOperandsMismatch
}

// AsNumber unwraps a number operand.
func AsNumber(v Value) (float64, error) {
	if n, ok := v.(NumberValue); ok {
		return n.Val, nil
	}
	return 0, ErrOperandNotNumber
}

// IsTruthy: nil and false are falsey, everything else (0 and "" included) is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case nil, NilValue:
		return false
	case BoolValue:
		return val.Val
	default:
		return true
	}
}

// Stringify renders a value the way `print` shows it.
func Stringify(v Value) string {
	switch val := v.(type) {
	case StringValue:
		return val.Val
	case NumberValue:
		return FormatNumber(val.Val)
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case nil, NilValue:
		return "nil"
	default:
		return fmt.Sprintf("<%v>", v)
	}
}

// FormatNumber prints the shortest decimal text that round-trips. Infinities
// print as inf and -inf, NaN as NaN.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Inspect is Stringify with strings quoted; used by token and AST dumps.
func Inspect(v Value) string {
	if s, ok := v.(StringValue); ok {
		return strconv.Quote(s.Val)
	}
	return Stringify(v)
}
