package object

import (
	"fmt"

	"github.com/rhino1998/ample/pkg/kinds"
	"github.com/rhino1998/ample/pkg/operators"
)

// Operate applies op to a and b and returns a new object holding the result.
// Neither operand's reference count is changed.
func (h *Heap) Operate(op operators.Operator, a, b *Object) (*Object, error) {
	a.mustBeLive("operation on")
	b.mustBeLive("operation on")

	if a.kind != b.kind {
		return nil, fmt.Errorf("%w: %s %s %s", ErrKindMismatch, a.kind, op, b.kind)
	}

	switch a.kind {
	case kinds.Int:
		return h.integerOperate(op, a.integer, b.integer)
	case kinds.String:
		switch op {
		case operators.Concat:
			return h.NewString(a.str + b.str), nil
		case operators.Equal:
			return h.NewBool(a.str == b.str), nil
		}
	case kinds.Bool:
		if op == operators.Equal {
			return h.NewBool(a.boolean == b.boolean), nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s %s", ErrUnsupportedOperation, a.kind, op, b.kind)
}

func (h *Heap) integerOperate(op operators.Operator, a, b int32) (*Object, error) {
	switch op {
	case operators.Addition:
		return h.NewInteger(a + b), nil
	case operators.Subtraction:
		return h.NewInteger(a - b), nil
	case operators.Multiplication:
		return h.NewInteger(a * b), nil
	case operators.Division:
		if b == 0 {
			return nil, fmt.Errorf("%w: %d / %d", ErrDivisionByZero, a, b)
		}
		return h.NewInteger(a / b), nil
	case operators.Equal:
		return h.NewBool(a == b), nil
	default:
		return nil, fmt.Errorf("%w: int %s int", ErrUnsupportedOperation, op)
	}
}

func (h *Heap) Add(a, b *Object) (*Object, error) {
	return h.Operate(operators.Addition, a, b)
}

func (h *Heap) Sub(a, b *Object) (*Object, error) {
	return h.Operate(operators.Subtraction, a, b)
}

func (h *Heap) Mul(a, b *Object) (*Object, error) {
	return h.Operate(operators.Multiplication, a, b)
}

func (h *Heap) Div(a, b *Object) (*Object, error) {
	return h.Operate(operators.Division, a, b)
}

func (h *Heap) Equal(a, b *Object) (*Object, error) {
	return h.Operate(operators.Equal, a, b)
}

func (h *Heap) Concat(a, b *Object) (*Object, error) {
	return h.Operate(operators.Concat, a, b)
}
