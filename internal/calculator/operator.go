package calculator

import (
	"errors"
	"math"
)

var (
	// ErrDivisionByZero is returned when an operation would divide by zero
	ErrDivisionByZero = errors.New("attempted to divide by zero")

	// ErrInvalidOperation is returned when the operator is not one of + - * /
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrQuotientOverflow is returned when a quotient does not fit in 32 bits
	ErrQuotientOverflow = errors.New("arithmetic operation resulted in an overflow")
)

// Operator is the binary operation requested by the user
type Operator int

const (
	OpInvalid Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the operator symbol
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "invalid"
	}
}

// ParseOperator maps an input line to an Operator. The match is exact:
// surrounding whitespace or a different case makes the operator invalid.
func ParseOperator(s string) Operator {
	switch s {
	case "+":
		return OpAdd
	case "-":
		return OpSubtract
	case "*":
		return OpMultiply
	case "/":
		return OpDivide
	default:
		return OpInvalid
	}
}

// Options tunes how Apply evaluates operators
type Options struct {
	// CorrectMultiply makes OpMultiply multiply. When false OpMultiply
	// divides, matching the behavior users of the console calculator
	// have always observed.
	CorrectMultiply bool
}

// Apply evaluates a op b using wrapping 32-bit integer arithmetic.
// Division truncates toward zero; MinInt32 / -1 is an overflow error
// rather than a wrapped result.
func Apply(op Operator, a, b int32, opts Options) (int32, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		if opts.CorrectMultiply {
			return a * b, nil
		}
		return divide(a, b)
	case OpDivide:
		return divide(a, b)
	default:
		return 0, ErrInvalidOperation
	}
}

func divide(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt32 && b == -1 {
		return 0, ErrQuotientOverflow
	}
	return a / b, nil
}
