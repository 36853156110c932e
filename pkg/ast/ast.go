// Package ast holds the syntax tree produced by the parser. Nodes live in an
// Arena and refer to each other through Handles rather than pointers.
package ast

import (
	"fmt"

	"github.com/rhino1998/ample/pkg/operators"
)

// Handle identifies a node in an Arena. The zero Handle never refers to a node.
type Handle uint32

const NoHandle Handle = 0

func (h Handle) IsValid() bool { return h != NoHandle }

type NodeKind int

const (
	KindInvalid NodeKind = iota
	KindScope
	KindAssignment
	KindBinaryOp
	KindInteger
	KindString
	KindIdentifier
)

func (k NodeKind) String() string {
	switch k {
	case KindScope:
		return "scope"
	case KindAssignment:
		return "assignment"
	case KindBinaryOp:
		return "binary_op"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindIdentifier:
		return "identifier"
	default:
		return "<invalid>"
	}
}

type Node interface {
	Kind() NodeKind
}

type Scope struct {
	Statements []Handle
}

func (*Scope) Kind() NodeKind { return KindScope }

type Assignment struct {
	Var  string
	Expr Handle
}

func (*Assignment) Kind() NodeKind { return KindAssignment }

// BinaryOp applies Op to Left and Right, where Left is the operand that
// appears first in the source.
type BinaryOp struct {
	Left  Handle
	Right Handle
	Op    operators.Operator
}

func (*BinaryOp) Kind() NodeKind { return KindBinaryOp }

type Integer struct {
	Value int32
}

func (*Integer) Kind() NodeKind { return KindInteger }

type String struct {
	Value string
}

func (*String) Kind() NodeKind { return KindString }

type Identifier struct {
	Name string
}

func (*Identifier) Kind() NodeKind { return KindIdentifier }

func (s *Scope) String() string {
	return fmt.Sprintf("scope(%d statements)", len(s.Statements))
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = #%d", a.Var, a.Expr)
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("#%d %s #%d", b.Left, b.Op, b.Right)
}

func (i *Integer) String() string {
	return fmt.Sprintf("%d", i.Value)
}

func (s *String) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (i *Identifier) String() string {
	return i.Name
}
