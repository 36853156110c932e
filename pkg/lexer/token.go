package lexer

import "fmt"

type Kind int

const (
	EOF Kind = iota
	Integer
	Identifier
	String
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	Assign
	Delimiter
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Integer:
		return "integer"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Assign:
		return "="
	case Delimiter:
		return ";"
	default:
		return "<unknown>"
	}
}

// IsOperator reports whether k is one of the four arithmetic symbols.
func (k Kind) IsOperator() bool {
	return k == Plus || k == Minus || k == Star || k == Slash
}

func (k Kind) IsOperand() bool {
	return k == Integer || k == Identifier
}

// Token is one lexical unit. Text holds the literal payload for integers,
// identifiers and strings, and the symbol itself for punctuation.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// Sym builds a punctuation token without position information.
func Sym(k Kind) Token {
	return Token{Kind: k, Text: k.String()}
}

func Int(text string) Token {
	return Token{Kind: Integer, Text: text}
}

func Ident(name string) Token {
	return Token{Kind: Identifier, Text: name}
}

func Str(val string) Token {
	return Token{Kind: String, Text: val}
}

func (t Token) String() string {
	switch t.Kind {
	case Integer, Identifier:
		return t.Text
	case String:
		return fmt.Sprintf("%q", t.Text)
	default:
		return t.Kind.String()
	}
}
