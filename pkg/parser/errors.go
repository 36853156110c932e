package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	ErrMalformedExpression   = errors.New("malformed expression")
	ErrUnbalancedParens      = fmt.Errorf("%w: unbalanced parentheses", ErrMalformedExpression)
	ErrInvalidLiteral        = errors.New("invalid literal")
)

// StatementError attaches the failing statement to a parse error.
type StatementError struct {
	Index     int
	Statement Statement
	Source    string
	Err       error
}

func (e StatementError) Error() string {
	return fmt.Sprintf("statement %d (%s): %v", e.Index+1, e.Source, e.Err)
}

func (e StatementError) Unwrap() error {
	return e.Err
}
