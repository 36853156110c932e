package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rhino1998/ample/pkg/ast"
	"github.com/rhino1998/ample/pkg/interpreter"
	"github.com/rhino1998/ample/pkg/lexer"
	"github.com/rhino1998/ample/pkg/parser"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func debugFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "log parser and interpreter internals",
	}
}

func newLogger(c *cli.Command) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func tokenize(c *cli.Command) ([]lexer.Token, error) {
	if c.Args().Len() != 1 {
		return nil, fmt.Errorf("must provide exactly one ample file as argument")
	}

	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	tokens, err := lexer.Tokenize(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tokens, nil
}

func parse(c *cli.Command, logger *slog.Logger, config parser.Config) (*ast.Arena, ast.Handle, error) {
	tokens, err := tokenize(c)
	if err != nil {
		return nil, ast.NoHandle, err
	}

	arena := ast.NewArena()
	p, err := parser.New(logger, arena, config)
	if err != nil {
		return nil, ast.NoHandle, fmt.Errorf("failed to initialize parser: %w", err)
	}

	root, err := p.Parse(tokens)
	if err != nil {
		return nil, ast.NoHandle, fmt.Errorf("%s: %w", c.Args().First(), err)
	}

	return arena, root, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "ample",
		Usage: "Run ample programs",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Parse and execute an ample program",
				Flags: []cli.Flag{
					debugFlag(),
					&cli.BoolFlag{
						Name:  "vars",
						Usage: "print the variables left at the end of the run as yaml",
					},
					&cli.BoolFlag{
						Name:  "permissive",
						Usage: "skip unrecognized statements instead of failing",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					logger := newLogger(c)

					arena, root, err := parse(c, logger, parser.Config{
						AllowUnrecognized: c.Bool("permissive"),
					})
					if err != nil {
						return err
					}

					config := interpreter.Config{}
					if c.Bool("vars") {
						config.BeforeTeardown = func(env *interpreter.Environment) {
							enc := yaml.NewEncoder(os.Stdout)
							defer enc.Close()

							err := enc.Encode(env.Snapshot())
							if err != nil {
								logger.Error("failed to print variables", "error", err)
							}
						}
					}

					return interpreter.Execute(logger, arena, root, config)
				},
			},
			{
				Name:  "parse",
				Usage: "Print the syntax tree of an ample program as yaml",
				Flags: []cli.Flag{
					debugFlag(),
					&cli.BoolFlag{
						Name:  "permissive",
						Usage: "skip unrecognized statements instead of failing",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					logger := newLogger(c)

					arena, root, err := parse(c, logger, parser.Config{
						AllowUnrecognized: c.Bool("permissive"),
					})
					if err != nil {
						return err
					}

					return arena.Dump(os.Stdout, root)
				},
			},
			{
				Name:  "tokens",
				Usage: "Print the tokens of an ample program",
				Action: func(ctx context.Context, c *cli.Command) error {
					tokens, err := tokenize(c)
					if err != nil {
						return err
					}

					for _, tok := range tokens {
						fmt.Printf("%d:%d\t%s\t%s\n", tok.Line, tok.Col, tok.Kind, tok)
					}

					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
