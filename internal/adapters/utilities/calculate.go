package utilities

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// ErrDivisionByZero is returned by calculate for "/" or "%" with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Calculate evaluates "<a> <op> <b>" on integers.
type Calculate struct{}

var _ ports.Utility = (*Calculate)(nil)

func (Calculate) Name() string        { return "calculate" }
func (Calculate) Description() string { return "integer arithmetic: calculate <a> <+|-|*|/|%> <b>" }

func (Calculate) Run(_ context.Context, args []string, s ports.Streams) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: calculate <a> <op> <b>")
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q is not an integer", args[0])
	}
	b, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%q is not an integer", args[2])
	}

	var result int
	switch op := args[1]; op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/", "%":
		if b == 0 {
			return ErrDivisionByZero
		}
		if op == "/" {
			result = a / b
		} else {
			result = a % b
		}
	default:
		return fmt.Errorf("the operator %q is not valid", op)
	}

	_, err = fmt.Fprintf(s.Out, "The result is: %d\n", result)
	return err
}
