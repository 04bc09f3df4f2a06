package calc

import (
	"fmt"
)

// Evaluate computes the value of a postfix token sequence.
func Evaluate(input Tokens) (float64, error) {
	var stack []float64

	pop := func() (float64, error) {
		if len(stack) == 0 {
			return 0, ErrTooManyOperations
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for _, t := range input {
		if t.Kind == Number {
			stack = append(stack, t.Value)
			continue
		}

		// The kind is checked before any operand is popped.
		op, ok := ops[t.Kind]
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrInvalidOperation, t.Kind)
		}
		rhs, err := pop()
		if err != nil {
			return 0, err
		}
		lhs, err := pop()
		if err != nil {
			return 0, err
		}
		v, err := op.fn(lhs, rhs)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, ErrInvalidResult
	}
	return stack[0], nil
}
