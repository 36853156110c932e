package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var ErrLex = errors.New("lex error")

type PositionError struct {
	Line int
	Col  int
	Err  error
}

func (e PositionError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e PositionError) Unwrap() error {
	return e.Err
}

type lexer struct {
	r    *bufio.Reader
	ch   rune
	eof  bool
	line int
	col  int
}

// Tokenize splits the whole of r into tokens. The EOF token is not included.
func Tokenize(r io.Reader) ([]Token, error) {
	l := &lexer{r: bufio.NewReader(r), line: 1}
	l.read()

	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		if tok.Kind == EOF {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

var symbols = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': LParen,
	')': RParen,
	'=': Assign,
	';': Delimiter,
}

func (l *lexer) next() (Token, error) {
	l.skipWhitespace()
	if l.eof {
		return Token{Kind: EOF, Line: l.line, Col: l.col}, nil
	}

	line, col := l.line, l.col

	if kind, ok := symbols[l.ch]; ok {
		l.read()
		return Token{Kind: kind, Text: kind.String(), Line: line, Col: col}, nil
	}

	switch {
	case l.ch == '"':
		lit, err := l.readString()
		return Token{Kind: String, Text: lit, Line: line, Col: col}, err
	case isIdentStart(l.ch):
		return Token{Kind: Identifier, Text: l.readWhile(isIdentPart), Line: line, Col: col}, nil
	case isDigit(l.ch):
		lit := l.readWhile(isIdentPart)
		if strings.IndexFunc(lit, func(r rune) bool { return !isDigit(r) }) >= 0 {
			return Token{}, l.errorAt(line, col, "malformed integer %q", lit)
		}
		return Token{Kind: Integer, Text: lit, Line: line, Col: col}, nil
	default:
		return Token{}, l.errorAt(line, col, "unexpected character %q", l.ch)
	}
}

func (l *lexer) read() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}

	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	l.ch = ch
	l.col++
}

func (l *lexer) skipWhitespace() {
	for !l.eof {
		switch {
		case unicode.IsSpace(l.ch):
			l.read()
		case l.ch == '#':
			for !l.eof && l.ch != '\n' {
				l.read()
			}
		default:
			return
		}
	}
}

func (l *lexer) readWhile(pred func(rune) bool) string {
	var sb strings.Builder
	for !l.eof && pred(l.ch) {
		sb.WriteRune(l.ch)
		l.read()
	}

	return sb.String()
}

func (l *lexer) readString() (string, error) {
	line, col := l.line, l.col
	l.read() // opening quote

	var sb strings.Builder
	for {
		if l.eof || l.ch == '\n' {
			return "", l.errorAt(line, col, "unterminated string")
		}

		switch l.ch {
		case '"':
			l.read()
			return sb.String(), nil
		case '\\':
			l.read()
			if l.eof {
				return "", l.errorAt(line, col, "unterminated string")
			}

			switch l.ch {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '"', '\\':
				sb.WriteRune(l.ch)
			default:
				return "", l.errorAt(l.line, l.col, "unknown escape \\%c", l.ch)
			}
		default:
			sb.WriteRune(l.ch)
		}

		l.read()
	}
}

func (l *lexer) errorAt(line, col int, format string, args ...any) error {
	return PositionError{
		Line: line,
		Col:  col,
		Err:  fmt.Errorf("%w: %s", ErrLex, fmt.Sprintf(format, args...)),
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
