package operators_test

import (
	"testing"

	"github.com/rhino1998/ample/pkg/operators"
	"github.com/stretchr/testify/require"
)

func TestOperatorPrecedence(t *testing.T) {
	r := require.New(t)

	r.True(operators.Multiplication.HasGreaterPrecedence(operators.Addition))
	r.True(operators.Division.HasGreaterPrecedence(operators.Subtraction))
	r.False(operators.Addition.HasGreaterPrecedence(operators.Multiplication))
	r.False(operators.Addition.HasGreaterPrecedence(operators.Subtraction))

	r.True(operators.Addition.HasEqualPrecedence(operators.Subtraction))
	r.True(operators.Multiplication.HasEqualPrecedence(operators.Division))
	r.False(operators.Multiplication.HasEqualPrecedence(operators.Addition))
}

func TestOperatorPrecedence_NonArithmetic(t *testing.T) {
	r := require.New(t)

	r.False(operators.Equal.HasEqualPrecedence(operators.Equal))
	r.False(operators.Operator("(").HasGreaterPrecedence(operators.Addition))
	r.False(operators.Multiplication.HasGreaterPrecedence(operators.Operator("(")))
}

func TestParse(t *testing.T) {
	r := require.New(t)

	for _, symbol := range []string{"+", "-", "*", "/"} {
		op, err := operators.Parse(symbol)
		r.NoError(err)
		r.Equal(symbol, op.String())
	}

	_, err := operators.Parse("=")
	r.Error(err)

	_, err = operators.Parse("==")
	r.Error(err)
}
