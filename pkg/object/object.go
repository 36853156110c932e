package object

import (
	"fmt"
	"strconv"

	"github.com/rhino1998/ample/pkg/kinds"
)

// Object is a reference counted runtime value. Objects are only created by
// a Heap and start with a single reference owned by the caller.
type Object struct {
	heap     *Heap
	id       uint64
	kind     kinds.Kind
	refcount int
	freed    bool

	integer int32
	str     string
	boolean bool
}

func (o *Object) ID() uint64 {
	return o.id
}

func (o *Object) Kind() kinds.Kind {
	return o.kind
}

func (o *Object) Refcount() int {
	return o.refcount
}

// Freed reports whether the last reference to the object has been dropped.
func (o *Object) Freed() bool {
	return o.freed
}

// Incref records an additional owner of the object.
func (o *Object) Incref() {
	o.mustBeLive("increment")
	o.refcount++
}

// Decref drops one owner and frees the object when no owners remain.
func (o *Object) Decref() {
	o.mustBeLive("decrement")
	o.refcount--
	if o.refcount == 0 {
		o.release()
	}
}

func (o *Object) release() {
	o.str = ""
	o.freed = true
	o.heap.released(o)
}

func (o *Object) mustBeLive(action string) {
	if o.freed || o.refcount <= 0 {
		panic(fmt.Sprintf("%s of released object #%d", action, o.id))
	}
}

func (o *Object) Int() (int32, error) {
	if o.kind != kinds.Int {
		return 0, fmt.Errorf("%w: expected int, got %s", ErrKindMismatch, o.kind)
	}

	return o.integer, nil
}

func (o *Object) Str() (string, error) {
	if o.kind != kinds.String {
		return "", fmt.Errorf("%w: expected string, got %s", ErrKindMismatch, o.kind)
	}

	return o.str, nil
}

func (o *Object) Bool() (bool, error) {
	if o.kind != kinds.Bool {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrKindMismatch, o.kind)
	}

	return o.boolean, nil
}

// Raw returns the payload as a plain Go value.
func (o *Object) Raw() any {
	switch o.kind {
	case kinds.Int:
		return o.integer
	case kinds.String:
		return o.str
	case kinds.Bool:
		return o.boolean
	default:
		return nil
	}
}

func (o *Object) String() string {
	switch o.kind {
	case kinds.Int:
		return strconv.FormatInt(int64(o.integer), 10)
	case kinds.String:
		return strconv.Quote(o.str)
	case kinds.Bool:
		return strconv.FormatBool(o.boolean)
	default:
		return "<unknown>"
	}
}
