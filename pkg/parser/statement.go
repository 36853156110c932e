package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rhino1998/ample/pkg/ast"
	"github.com/rhino1998/ample/pkg/lexer"
)

// Statement is the inclusive token range [Start, End] of one statement, not
// counting its delimiter.
type Statement struct {
	Start int
	End   int
}

func (s Statement) Len() int {
	return s.End - s.Start + 1
}

// Tokens returns the statement's slice of tokens.
func (s Statement) Tokens(tokens []lexer.Token) []lexer.Token {
	return tokens[s.Start : s.End+1]
}

func (s Statement) Source(tokens []lexer.Token) string {
	parts := make([]string, 0, s.Len())
	for _, tok := range s.Tokens(tokens) {
		parts = append(parts, tok.String())
	}

	return strings.Join(parts, " ")
}

// Segment splits tokens into statements on delimiter tokens. Statements
// without any tokens are dropped. A trailing statement need not be delimited.
func Segment(tokens []lexer.Token) []Statement {
	var statements []Statement

	start := 0
	for i, tok := range tokens {
		if tok.Kind != lexer.Delimiter {
			continue
		}

		if i > start {
			statements = append(statements, Statement{Start: start, End: i - 1})
		}
		start = i + 1
	}

	if start < len(tokens) {
		statements = append(statements, Statement{Start: start, End: len(tokens) - 1})
	}

	return statements
}

// parseStatement tries each statement form in priority order; the first to
// produce a node wins. It returns NoHandle without an error when no form
// matches.
func (p *Parser) parseStatement(tokens []lexer.Token, s Statement) (ast.Handle, error) {
	forms := []func([]lexer.Token, Statement) (ast.Handle, error){
		p.possibleAssignment,
		p.possibleInteger,
		p.possibleIdentifier,
		p.possibleArithmetic,
		p.possibleString,
	}

	for _, form := range forms {
		node, err := form(tokens, s)
		if err != nil {
			return ast.NoHandle, err
		}

		if node.IsValid() {
			return node, nil
		}
	}

	return ast.NoHandle, nil
}

func (p *Parser) possibleAssignment(tokens []lexer.Token, s Statement) (ast.Handle, error) {
	if s.Len() < 3 ||
		tokens[s.Start].Kind != lexer.Identifier ||
		tokens[s.Start+1].Kind != lexer.Assign ||
		tokens[s.Start+2].Kind == lexer.Assign {
		return ast.NoHandle, nil
	}

	name := tokens[s.Start].Text
	rhs := Statement{Start: s.Start + 2, End: s.End}

	expr, err := p.parseStatement(tokens, rhs)
	if err != nil {
		return ast.NoHandle, err
	}

	if !expr.IsValid() {
		return ast.NoHandle, fmt.Errorf("%w: cannot assign %q to %s", ErrUnrecognizedStatement, rhs.Source(tokens), name)
	}

	return p.arena.Add(&ast.Assignment{Var: name, Expr: expr}), nil
}

func (p *Parser) possibleInteger(tokens []lexer.Token, s Statement) (ast.Handle, error) {
	if s.Len() != 1 || tokens[s.Start].Kind != lexer.Integer {
		return ast.NoHandle, nil
	}

	return p.literal(tokens[s.Start])
}

func (p *Parser) possibleIdentifier(tokens []lexer.Token, s Statement) (ast.Handle, error) {
	if s.Len() != 1 || tokens[s.Start].Kind != lexer.Identifier {
		return ast.NoHandle, nil
	}

	return p.literal(tokens[s.Start])
}

func (p *Parser) possibleArithmetic(tokens []lexer.Token, s Statement) (ast.Handle, error) {
	if s.Len() < 2 ||
		tokens[s.Start].Kind != lexer.Integer ||
		!tokens[s.Start+1].Kind.IsOperator() {
		return ast.NoHandle, nil
	}

	return p.parseExpression(s.Tokens(tokens))
}

func (p *Parser) possibleString(tokens []lexer.Token, s Statement) (ast.Handle, error) {
	if s.Len() != 1 || tokens[s.Start].Kind != lexer.String {
		return ast.NoHandle, nil
	}

	return p.arena.Add(&ast.String{Value: tokens[s.Start].Text}), nil
}

// literal allocates the leaf node for an integer or identifier token.
func (p *Parser) literal(tok lexer.Token) (ast.Handle, error) {
	switch tok.Kind {
	case lexer.Integer:
		val, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return ast.NoHandle, fmt.Errorf("%w: integer %q: %w", ErrInvalidLiteral, tok.Text, err)
		}

		return p.arena.Add(&ast.Integer{Value: int32(val)}), nil
	case lexer.Identifier:
		return p.arena.Add(&ast.Identifier{Name: tok.Text}), nil
	default:
		return ast.NoHandle, fmt.Errorf("%w: %s is not an operand", ErrMalformedExpression, tok)
	}
}
