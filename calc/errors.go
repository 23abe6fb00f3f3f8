package calc

import "errors"

// Engine errors. All of them leave the engine exactly as it was.
var (
	ErrInvalidOperation = errors.New("result is not a finite number")
	ErrInvalidState     = errors.New("active operand is not set")
	ErrStackUnderflow   = errors.New("stack is empty")
	ErrInvalidDigit     = errors.New("digit must be between 0 and 9")
	ErrInvalidListener  = errors.New("listener must be a non-nil comparable value")
)
