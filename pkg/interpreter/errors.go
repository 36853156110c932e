package interpreter

import "errors"

var (
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrInconsistentStore  = errors.New("inconsistent variable store")
	ErrUnsupportedOperand = errors.New("unsupported operand")
)
