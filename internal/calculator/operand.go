package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedOperand is returned by ParseStrict when the input is not an integer
	ErrMalformedOperand = errors.New("input string was not in a correct format")

	// ErrOperandOverflow is returned by ParseStrict when the value does not fit in 32 bits
	ErrOperandOverflow = errors.New("value was either too large or too small for an int32")
)

// operandSpace is the whitespace allowed around an operand. Other Unicode
// spaces are part of the operand and make it malformed.
const operandSpace = " \t\n\v\f\r"

// ParseStrict parses a line as a 32-bit signed integer and reports failures.
// present is false when the input stream ended before a line was read; an
// absent line converts to zero rather than failing.
func ParseStrict(line string, present bool) (int32, error) {
	if !present {
		return 0, nil
	}

	v, err := strconv.ParseInt(strings.Trim(line, operandSpace), 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOperandOverflow, line)
		}
		return 0, fmt.Errorf("%w: %q", ErrMalformedOperand, line)
	}

	return int32(v), nil
}

// TryParse parses a line as a 32-bit signed integer, yielding zero on any failure.
func TryParse(line string) int32 {
	v, err := strconv.ParseInt(strings.Trim(line, operandSpace), 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
