package calc

import (
	"errors"
)

var (
	ErrInvalidResult        = errors.New("invalid result")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrDivideByZero         = errors.New("divide by zero")
	ErrTooManyOperations    = errors.New("too many operations")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrInvalidNumber        = errors.New("invalid number")
)
