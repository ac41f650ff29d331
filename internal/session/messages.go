package session

import (
	"errors"
	"fmt"

	"github.com/common-creation/calc/internal/calculator"
)

// Console messages, in the order a session prints them
const (
	PromptFirstNumber  = "Enter the first number:"
	PromptSecondNumber = "Enter the second number:"
	PromptOperator     = "Choose an operation: +,-,*,/"

	SumFormat    = "The sum of the two numbers is: %d"
	ResultFormat = "Result : %d"

	MsgDivisionByZero   = "Error: Division by zero is not allowed"
	MsgInvalidOperation = "Invalid operation. \n Please choose +,-,* or /."
)

// Reply is the line printed in response to the chosen operation
type Reply struct {
	Text string

	// Failed marks replies that report a user error instead of a result
	Failed bool
}

// Dispatch evaluates the operator line against both operands and returns
// the reply to print. The returned error is non-nil only when the
// operation cannot produce any reply, which ends the session abnormally.
func Dispatch(opLine string, a, b int32, opts calculator.Options) (Reply, error) {
	op := calculator.ParseOperator(opLine)
	if op == calculator.OpInvalid {
		return Reply{Text: MsgInvalidOperation, Failed: true}, nil
	}

	result, err := calculator.Apply(op, a, b, opts)
	if err != nil {
		if op == calculator.OpDivide && errors.Is(err, calculator.ErrDivisionByZero) {
			return Reply{Text: MsgDivisionByZero, Failed: true}, nil
		}
		return Reply{}, fmt.Errorf("%d %s %d: %w", a, op, b, err)
	}

	return Reply{Text: fmt.Sprintf(ResultFormat, result)}, nil
}

// Sum formats the unconditional sum line of the first pass
func Sum(a, b int32) string {
	return fmt.Sprintf(SumFormat, a+b)
}
