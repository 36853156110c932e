package ast

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Tree is a pointer-free rendering of a subtree, suitable for serialization.
type Tree struct {
	Handle Handle `yaml:"handle"`
	Kind   string `yaml:"kind"`

	Var   string  `yaml:"var,omitempty"`
	Op    string  `yaml:"op,omitempty"`
	Int   *int32  `yaml:"int,omitempty"`
	Str   *string `yaml:"str,omitempty"`
	Name  string  `yaml:"name,omitempty"`
	Left  *Tree   `yaml:"left,omitempty"`
	Right *Tree   `yaml:"right,omitempty"`
	Expr  *Tree   `yaml:"expr,omitempty"`
	Body  []*Tree `yaml:"body,omitempty"`
}

// Tree builds the rendering of the subtree rooted at h.
func (a *Arena) Tree(h Handle) (*Tree, error) {
	n, err := a.Get(h)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		Handle: h,
		Kind:   n.Kind().String(),
	}

	switch n := n.(type) {
	case *Scope:
		for _, stmt := range n.Statements {
			sub, err := a.Tree(stmt)
			if err != nil {
				return nil, err
			}
			t.Body = append(t.Body, sub)
		}
	case *Assignment:
		t.Var = n.Var
		t.Expr, err = a.Tree(n.Expr)
		if err != nil {
			return nil, err
		}
	case *BinaryOp:
		t.Op = n.Op.String()
		t.Left, err = a.Tree(n.Left)
		if err != nil {
			return nil, err
		}
		t.Right, err = a.Tree(n.Right)
		if err != nil {
			return nil, err
		}
	case *Integer:
		val := n.Value
		t.Int = &val
	case *String:
		val := n.Value
		t.Str = &val
	case *Identifier:
		t.Name = n.Name
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedNode, n)
	}

	return t, nil
}

// Dump writes the subtree rooted at h to w as YAML.
func (a *Arena) Dump(w io.Writer, h Handle) error {
	tree, err := a.Tree(h)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(tree)
	if err != nil {
		return fmt.Errorf("failed to encode ast: %w", err)
	}

	return enc.Close()
}
