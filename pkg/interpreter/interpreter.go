package interpreter

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/ample/pkg/ast"
	"github.com/rhino1998/ample/pkg/kinds"
	"github.com/rhino1998/ample/pkg/object"
)

type Config struct {
	// AfterStatement is called after each top-level statement completes.
	AfterStatement func(stmt ast.Handle, env *Environment)

	// BeforeTeardown is called once the program stops, before the
	// environment releases its bindings.
	BeforeTeardown func(env *Environment)
}

func (c *Config) Validate(logger *slog.Logger) error {
	return nil
}

type Interpreter struct {
	logger *slog.Logger
	config Config
	arena  *ast.Arena
	heap   *object.Heap
	env    *Environment
}

func New(logger *slog.Logger, arena *ast.Arena, config Config) (*Interpreter, error) {
	if arena == nil {
		return nil, fmt.Errorf("interpreter requires an ast arena")
	}

	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate interpreter config: %w", err)
	}

	return &Interpreter{
		logger: logger,
		config: config,
		arena:  arena,
		heap:   object.NewHeap(logger),
		env:    newEnvironment(logger),
	}, nil
}

// Execute runs the program rooted at root with a fresh interpreter.
func Execute(logger *slog.Logger, arena *ast.Arena, root ast.Handle, config Config) error {
	in, err := New(logger, arena, config)
	if err != nil {
		return err
	}

	return in.Run(root)
}

func (in *Interpreter) Heap() *object.Heap {
	return in.heap
}

func (in *Interpreter) Environment() *Environment {
	return in.env
}

// Evaluate computes the value of an expression node. The caller owns the
// returned reference.
func (in *Interpreter) Evaluate(h ast.Handle) (*object.Object, error) {
	node, err := in.arena.Get(h)
	if err != nil {
		return nil, err
	}

	switch node := node.(type) {
	case *ast.Integer:
		return in.heap.NewInteger(node.Value), nil
	case *ast.String:
		return in.heap.NewString(node.Value), nil
	case *ast.BinaryOp:
		return in.evaluateBinaryOp(node)
	case *ast.Identifier:
		val, ok := in.env.Get(node.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, node.Name)
		}

		val.Incref()
		return val, nil
	default:
		return nil, fmt.Errorf("%w: %s is not an expression", ast.ErrUnexpectedNode, node.Kind())
	}
}

// Run evaluates each statement of the Scope at root in order. The first
// failing statement stops the run. Every variable is released before Run
// returns, whether or not it failed.
func (in *Interpreter) Run(root ast.Handle) error {
	scope, err := ast.As[*ast.Scope](in.arena, root)
	if err != nil {
		return fmt.Errorf("invalid program root: %w", err)
	}

	defer in.teardown()

	for i, stmt := range scope.Statements {
		err := in.executeStatement(stmt)
		if err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}

		if in.config.AfterStatement != nil {
			in.config.AfterStatement(stmt, in.env)
		}
	}

	return nil
}

func (in *Interpreter) teardown() {
	if in.config.BeforeTeardown != nil {
		in.config.BeforeTeardown(in.env)
	}

	in.env.Teardown()

	stats := in.heap.Stats()
	in.logger.Debug("run finished", "allocated", stats.Allocated, "released", stats.Released, "live", stats.Live())
}

func (in *Interpreter) executeStatement(stmt ast.Handle) error {
	node, err := in.arena.Get(stmt)
	if err != nil {
		return err
	}

	in.logger.Debug("execute", "handle", stmt, "kind", node.Kind())

	switch node := node.(type) {
	case *ast.Assignment:
		return in.executeAssignment(node)
	case *ast.BinaryOp:
		val, err := in.evaluateBinaryOp(node)
		if err != nil {
			return err
		}

		in.logger.Debug("discarding expression result", "value", val)
		val.Decref()

		return nil
	case *ast.Integer, *ast.String, *ast.Identifier:
		return nil
	default:
		return fmt.Errorf("%w: %s is not a statement", ast.ErrUnexpectedNode, node.Kind())
	}
}

func (in *Interpreter) executeAssignment(stmt *ast.Assignment) error {
	expr, err := in.arena.Get(stmt.Expr)
	if err != nil {
		return err
	}

	switch expr := expr.(type) {
	case *ast.Integer:
		return in.bind(stmt.Var, in.heap.NewInteger(expr.Value))
	case *ast.BinaryOp:
		val, err := in.evaluateBinaryOp(expr)
		if err != nil {
			return err
		}

		return in.bind(stmt.Var, val)
	case *ast.String:
		return in.bind(stmt.Var, in.heap.NewString(expr.Value))
	case *ast.Identifier:
		return in.env.Duplicate(expr.Name, stmt.Var)
	case *ast.Assignment:
		err := in.executeAssignment(expr)
		if err != nil {
			return err
		}

		return in.env.Duplicate(expr.Var, stmt.Var)
	default:
		return fmt.Errorf("%w: cannot assign %s to %s", ast.ErrUnexpectedNode, expr.Kind(), stmt.Var)
	}
}

// bind hands val over to the environment, dropping it if the environment
// refuses it.
func (in *Interpreter) bind(name string, val *object.Object) error {
	var err error
	switch val.Kind() {
	case kinds.Int:
		err = in.env.AssignInteger(name, val)
	case kinds.String:
		err = in.env.AssignString(name, val)
	default:
		err = fmt.Errorf("%w: cannot bind %s value to %s", object.ErrKindMismatch, val.Kind(), name)
	}

	if err != nil {
		val.Decref()
		return err
	}

	return nil
}

// evaluateBinaryOp returns a new object owned by the caller.
func (in *Interpreter) evaluateBinaryOp(op *ast.BinaryOp) (*object.Object, error) {
	left, err := in.evaluateOperand(op.Left)
	if err != nil {
		return nil, err
	}
	defer left.Decref()

	right, err := in.evaluateOperand(op.Right)
	if err != nil {
		return nil, err
	}
	defer right.Decref()

	return in.heap.Operate(op.Op, left, right)
}

func (in *Interpreter) evaluateOperand(h ast.Handle) (*object.Object, error) {
	node, err := in.arena.Get(h)
	if err != nil {
		return nil, err
	}

	switch node := node.(type) {
	case *ast.Integer:
		return in.heap.NewInteger(node.Value), nil
	case *ast.BinaryOp:
		return in.evaluateBinaryOp(node)
	case *ast.String:
		return nil, fmt.Errorf("%w: string %s in arithmetic", ErrUnsupportedOperand, node)
	case *ast.Identifier:
		return nil, fmt.Errorf("%w: identifier %s in arithmetic", ErrUnsupportedOperand, node)
	default:
		return nil, fmt.Errorf("%w: %s in arithmetic", ast.ErrUnexpectedNode, node.Kind())
	}
}
