package ast

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle  = errors.New("invalid ast handle")
	ErrUnexpectedNode = errors.New("unexpected ast node")
)

// Arena is an append-only store of nodes. Handles handed out by an Arena stay
// valid for its lifetime.
type Arena struct {
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{
		// slot 0 backs NoHandle
		nodes: make([]Node, 1, 64),
	}
}

// Len returns the number of handles allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes) - 1
}

func (a *Arena) Add(n Node) Handle {
	if n == nil {
		panic("ast: adding nil node")
	}

	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1)
}

// Reserve allocates a handle whose node is supplied later with Set. This lets
// a parent take a lower handle than the children parsed after it.
func (a *Arena) Reserve() Handle {
	a.nodes = append(a.nodes, nil)
	return Handle(len(a.nodes) - 1)
}

// Set fills a handle obtained from Reserve. A slot can only be filled once.
func (a *Arena) Set(h Handle, n Node) error {
	if err := a.check(h); err != nil {
		return err
	}

	if a.nodes[h] != nil {
		return fmt.Errorf("%w: handle #%d is already set", ErrInvalidHandle, h)
	}

	a.nodes[h] = n
	return nil
}

func (a *Arena) Get(h Handle) (Node, error) {
	if err := a.check(h); err != nil {
		return nil, err
	}

	n := a.nodes[h]
	if n == nil {
		return nil, fmt.Errorf("%w: handle #%d was reserved but never set", ErrInvalidHandle, h)
	}

	return n, nil
}

func (a *Arena) check(h Handle) error {
	if !h.IsValid() {
		return fmt.Errorf("%w: no node", ErrInvalidHandle)
	}

	if int(h) >= len(a.nodes) {
		return fmt.Errorf("%w: handle #%d out of range", ErrInvalidHandle, h)
	}

	return nil
}

// As fetches the node at h and asserts its concrete type.
func As[T Node](a *Arena, h Handle) (T, error) {
	var zero T

	n, err := a.Get(h)
	if err != nil {
		return zero, err
	}

	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("%w: handle #%d is a %s, expected %T", ErrUnexpectedNode, h, n.Kind(), zero)
	}

	return t, nil
}
