package parser

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/ample/pkg/ast"
	"github.com/rhino1998/ample/pkg/lexer"
)

type Config struct {
	// AllowUnrecognized skips statements that match no statement form
	// instead of failing the parse.
	AllowUnrecognized bool
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.AllowUnrecognized {
		logger.Debug("unrecognized statements will be skipped")
	}

	return nil
}

type Parser struct {
	logger *slog.Logger
	config Config
	arena  *ast.Arena
}

func New(logger *slog.Logger, arena *ast.Arena, config Config) (*Parser, error) {
	if arena == nil {
		return nil, fmt.Errorf("parser requires an ast arena")
	}

	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate parser config: %w", err)
	}

	return &Parser{
		logger: logger,
		config: config,
		arena:  arena,
	}, nil
}

// Parse builds the program in tokens into the arena and returns the handle of
// its Scope node.
func (p *Parser) Parse(tokens []lexer.Token) (ast.Handle, error) {
	head := p.arena.Reserve()

	var statements []ast.Handle
	for i, stmt := range Segment(tokens) {
		p.logger.Debug("statement", "index", i, "start", stmt.Start, "end", stmt.End)

		node, err := p.parseStatement(tokens, stmt)
		if err != nil {
			return ast.NoHandle, p.statementError(tokens, i, stmt, err)
		}

		if !node.IsValid() {
			if !p.config.AllowUnrecognized {
				return ast.NoHandle, p.statementError(tokens, i, stmt, ErrUnrecognizedStatement)
			}

			p.logger.Warn("skipping unrecognized statement", "index", i, "source", stmt.Source(tokens))
			continue
		}

		statements = append(statements, node)
	}

	err := p.arena.Set(head, &ast.Scope{Statements: statements})
	if err != nil {
		return ast.NoHandle, err
	}

	return head, nil
}

func (p *Parser) statementError(tokens []lexer.Token, index int, stmt Statement, err error) error {
	return StatementError{
		Index:     index,
		Statement: stmt,
		Source:    stmt.Source(tokens),
		Err:       err,
	}
}
