package object

import "errors"

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrKindMismatch         = errors.New("kind mismatch")
	ErrDivisionByZero       = errors.New("division by zero")
)
