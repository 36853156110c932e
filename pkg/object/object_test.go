package object_test

import (
	"math"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/ample/pkg/kinds"
	"github.com/rhino1998/ample/pkg/object"
	"github.com/rhino1998/ample/pkg/operators"
	"github.com/stretchr/testify/require"
)

func newHeap(t *testing.T) (*object.Heap, *object.Tracker) {
	heap := object.NewHeap(slogt.New(t))
	tracker := object.NewTracker()
	heap.SetTrace(tracker.Record)
	return heap, tracker
}

func TestObject_Refcount(t *testing.T) {
	r := require.New(t)
	heap, tracker := newHeap(t)

	o := heap.NewInteger(5)
	r.Equal(1, o.Refcount())
	r.Equal(kinds.Int, o.Kind())

	o.Incref()
	r.Equal(2, o.Refcount())

	o.Decref()
	r.False(o.Freed())
	r.Equal(0, tracker.Count(object.EventFree, o.ID()))

	o.Decref()
	r.True(o.Freed())
	r.Equal(1, tracker.Count(object.EventFree, o.ID()))
	r.Empty(tracker.Leaked())

	r.Panics(func() { o.Decref() })
	r.Panics(func() { o.Incref() })
	r.Equal(1, tracker.Count(object.EventFree, o.ID()))
}

func TestObject_StringReleaseDropsPayload(t *testing.T) {
	r := require.New(t)
	heap, _ := newHeap(t)

	s := heap.NewString("hi")
	val, err := s.Str()
	r.NoError(err)
	r.Equal("hi", val)
	r.Equal(`"hi"`, s.String())

	s.Decref()
	r.True(s.Freed())
	r.Equal(object.Stats{Allocated: 1, Released: 1}, heap.Stats())
	r.Equal(0, heap.Stats().Live())
}

func TestObject_Accessors(t *testing.T) {
	r := require.New(t)
	heap, _ := newHeap(t)

	i := heap.NewInteger(-3)
	_, err := i.Str()
	r.ErrorIs(err, object.ErrKindMismatch)
	_, err = i.Bool()
	r.ErrorIs(err, object.ErrKindMismatch)
	r.Equal(int32(-3), i.Raw())
	r.Equal("-3", i.String())

	b := heap.NewBool(true)
	_, err = b.Int()
	r.ErrorIs(err, object.ErrKindMismatch)
	r.Equal("true", b.String())
}

func TestHeap_IntegerArithmetic(t *testing.T) {
	tests := []struct {
		op       operators.Operator
		a, b     int32
		expected int32
	}{
		{operators.Addition, 2, 3, 5},
		{operators.Subtraction, 10, 3, 7},
		{operators.Subtraction, 3, 10, -7},
		{operators.Multiplication, -4, 6, -24},
		{operators.Division, 7, 2, 3},
		{operators.Division, -7, 2, -3},
		{operators.Addition, math.MaxInt32, 1, math.MinInt32},
	}

	for _, test := range tests {
		t.Run(string(test.op), func(t *testing.T) {
			r := require.New(t)
			heap, tracker := newHeap(t)

			a := heap.NewInteger(test.a)
			b := heap.NewInteger(test.b)

			res, err := heap.Operate(test.op, a, b)
			r.NoError(err)
			r.Equal(1, res.Refcount())
			r.Equal(1, a.Refcount())
			r.Equal(1, b.Refcount())

			val, err := res.Int()
			r.NoError(err)
			r.Equal(test.expected, val)

			a.Decref()
			b.Decref()
			res.Decref()
			r.Empty(tracker.Leaked())
		})
	}
}

func TestHeap_DivisionByZero(t *testing.T) {
	r := require.New(t)
	heap, _ := newHeap(t)

	a := heap.NewInteger(1)
	zero := heap.NewInteger(0)

	_, err := heap.Div(a, zero)
	r.ErrorIs(err, object.ErrDivisionByZero)
	r.Equal(2, heap.Stats().Allocated)
}

func TestHeap_Equality(t *testing.T) {
	r := require.New(t)
	heap, _ := newHeap(t)

	eq, err := heap.Equal(heap.NewInteger(4), heap.NewInteger(4))
	r.NoError(err)
	r.Equal(kinds.Bool, eq.Kind())
	r.Equal(true, eq.Raw())

	eq, err = heap.Equal(heap.NewString("a"), heap.NewString("b"))
	r.NoError(err)
	r.Equal(false, eq.Raw())

	eq, err = heap.Equal(heap.NewBool(false), heap.NewBool(false))
	r.NoError(err)
	r.Equal(true, eq.Raw())
}

func TestHeap_Concat(t *testing.T) {
	r := require.New(t)
	heap, tracker := newHeap(t)

	a := heap.NewString("foo")
	b := heap.NewString("bar")

	c, err := heap.Concat(a, b)
	r.NoError(err)
	r.Equal("foobar", c.Raw())
	r.Equal(1, a.Refcount())
	r.Equal(1, b.Refcount())

	for _, o := range []*object.Object{a, b, c} {
		o.Decref()
	}
	r.Empty(tracker.Leaked())
}

func TestHeap_UnsupportedOperations(t *testing.T) {
	r := require.New(t)
	heap, _ := newHeap(t)

	_, err := heap.Add(heap.NewString("a"), heap.NewString("b"))
	r.ErrorIs(err, object.ErrUnsupportedOperation)

	_, err = heap.Mul(heap.NewBool(true), heap.NewBool(true))
	r.ErrorIs(err, object.ErrUnsupportedOperation)

	_, err = heap.Concat(heap.NewInteger(1), heap.NewInteger(2))
	r.ErrorIs(err, object.ErrUnsupportedOperation)

	_, err = heap.Add(heap.NewInteger(1), heap.NewString("2"))
	r.ErrorIs(err, object.ErrKindMismatch)
}

func TestTracker_Leaked(t *testing.T) {
	r := require.New(t)
	heap, tracker := newHeap(t)

	a := heap.NewInteger(1)
	b := heap.NewInteger(2)
	a.Decref()

	r.Equal([]uint64{b.ID()}, tracker.Leaked())
	r.Len(tracker.Events(), 3)
	r.Equal(object.EventFree, tracker.Events()[2].Type)
}
