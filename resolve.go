package calc

import (
	"fmt"
)

// Resolve reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Operators of equal precedence associate to the
// left.
func Resolve(input Tokens) (Tokens, error) {
	var stack, output Tokens

	for _, t := range input {
		switch {
		case t.Kind == Number:
			output = append(output, t)

		case t.Kind.IsOperator():
			prec := ops[t.Kind].prec
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == OpenParen || prec < ops[top.Kind].prec {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case t.Kind == OpenParen:
			stack = append(stack, t)

		case t.Kind == CloseParen:
			for {
				if len(stack) == 0 {
					return nil, ErrUnmatchedParenthesis
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == OpenParen {
					break
				}
				output = append(output, top)
			}

		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, t.Kind)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == OpenParen {
			return nil, ErrUnmatchedParenthesis
		}
		output = append(output, top)
	}

	return output, nil
}
