package operators

import (
	"fmt"
)

type Operator string

const (
	Multiplication Operator = "*"
	Division       Operator = "/"

	Addition    Operator = "+"
	Subtraction Operator = "-"

	Equal Operator = "=="

	Concat Operator = "++"
)

// Parse maps a single source symbol onto an arithmetic operator.
func Parse(symbol string) (Operator, error) {
	op := Operator(symbol)
	if !op.IsArithmetic() {
		return "", fmt.Errorf("%q is not an arithmetic operator", symbol)
	}

	return op, nil
}

func (o Operator) IsArithmetic() bool {
	switch o {
	case Addition,
		Subtraction,
		Multiplication,
		Division:
		return true
	default:
		return false
	}
}

func (o Operator) IsComparison() bool {
	return o == Equal
}

// Precedence returns the binding strength of an arithmetic operator. Non
// arithmetic operators, parentheses included, have precedence 0.
func (o Operator) Precedence() int {
	switch o {
	case Multiplication, Division:
		return 2
	case Addition, Subtraction:
		return 1
	default:
		return 0
	}
}

func (o Operator) HasGreaterPrecedence(other Operator) bool {
	if !o.IsArithmetic() || !other.IsArithmetic() {
		return false
	}

	return o.Precedence() > other.Precedence()
}

func (o Operator) HasEqualPrecedence(other Operator) bool {
	if !o.IsArithmetic() || !other.IsArithmetic() {
		return false
	}

	return o.Precedence() == other.Precedence()
}

func (o Operator) String() string {
	return string(o)
}
