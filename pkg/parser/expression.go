package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahrtr/gocontainer/stack"
	"github.com/edwingeng/deque"
	"github.com/rhino1998/ample/pkg/ast"
	"github.com/rhino1998/ample/pkg/lexer"
	"github.com/rhino1998/ample/pkg/operators"
)

// parseExpression converts an infix token range into a BinaryOp subtree by
// way of a postfix ordering.
func (p *Parser) parseExpression(tokens []lexer.Token) (ast.Handle, error) {
	input := deque.NewDeque()
	for _, tok := range tokens {
		input.PushBack(tok)
	}

	postfix, err := toPostfix(input)
	if err != nil {
		return ast.NoHandle, err
	}

	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		p.logger.Debug("postfix", "queue", formatQueue(postfix))
	}

	return p.foldPostfix(postfix)
}

// toPostfix runs the shunting-yard pass over the tokens queued in input,
// consuming them. Operators of equal precedence are emitted left to right.
func toPostfix(input deque.Deque) (deque.Deque, error) {
	output := deque.NewDeque()
	ops := stack.New()

	for input.Len() != 0 {
		tok := input.Front().(lexer.Token)
		input.PopFront()

		switch {
		case tok.Kind.IsOperand():
			output.PushBack(tok)
		case tok.Kind.IsOperator():
			op, err := tokenOperator(tok)
			if err != nil {
				return nil, err
			}

			for !ops.IsEmpty() {
				top := ops.Peek().(lexer.Token)
				if top.Kind == lexer.LParen {
					break
				}

				topOp, err := tokenOperator(top)
				if err != nil {
					return nil, err
				}

				if !topOp.HasGreaterPrecedence(op) && !topOp.HasEqualPrecedence(op) {
					break
				}

				ops.Pop()
				output.PushBack(top)
			}

			ops.Push(tok)
		case tok.Kind == lexer.LParen:
			ops.Push(tok)
		case tok.Kind == lexer.RParen:
			for {
				if ops.IsEmpty() {
					return nil, fmt.Errorf("%w: unmatched %s", ErrUnbalancedParens, tok)
				}

				top := ops.Pop().(lexer.Token)
				if top.Kind == lexer.LParen {
					break
				}

				output.PushBack(top)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %s", ErrMalformedExpression, tok)
		}
	}

	for !ops.IsEmpty() {
		top := ops.Pop().(lexer.Token)
		if top.Kind == lexer.LParen {
			return nil, fmt.Errorf("%w: unclosed %s", ErrUnbalancedParens, top)
		}

		output.PushBack(top)
	}

	return output, nil
}

// foldPostfix consumes a postfix queue and builds the tree it describes. The
// operand pushed earlier becomes the left side of each operator.
func (p *Parser) foldPostfix(postfix deque.Deque) (ast.Handle, error) {
	operands := stack.New()

	for postfix.Len() != 0 {
		tok := postfix.Front().(lexer.Token)
		postfix.PopFront()

		if tok.Kind.IsOperand() {
			node, err := p.literal(tok)
			if err != nil {
				return ast.NoHandle, err
			}

			operands.Push(node)
			continue
		}

		op, err := tokenOperator(tok)
		if err != nil {
			return ast.NoHandle, err
		}

		if operands.Size() < 2 {
			return ast.NoHandle, fmt.Errorf("%w: operator %s is missing an operand", ErrMalformedExpression, op)
		}

		right := operands.Pop().(ast.Handle)
		left := operands.Pop().(ast.Handle)

		operands.Push(p.arena.Add(&ast.BinaryOp{
			Left:  left,
			Right: right,
			Op:    op,
		}))
	}

	if operands.Size() != 1 {
		return ast.NoHandle, fmt.Errorf("%w: expected a single result, found %d operands", ErrMalformedExpression, operands.Size())
	}

	return operands.Pop().(ast.Handle), nil
}

func tokenOperator(tok lexer.Token) (operators.Operator, error) {
	op, err := operators.Parse(tok.Kind.String())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedExpression, err)
	}

	return op, nil
}

// formatQueue renders q front to back, leaving it as it was.
func formatQueue(q deque.Deque) string {
	n := q.Len()
	parts := make([]string, 0, n)
	for range n {
		tok := q.Front().(lexer.Token)
		q.PopFront()
		q.PushBack(tok)
		parts = append(parts, tok.String())
	}

	return strings.Join(parts, " ")
}
