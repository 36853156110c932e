package kinds

type Kind int

const (
	Unknown Kind = iota
	Int
	String
	Bool
)

// IsBindable reports whether a variable may hold a value of this kind.
func (k Kind) IsBindable() bool {
	return k == Int || k == String
}

func (k Kind) IsNumeric() bool {
	return k == Int
}

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return "<unknown>"
	}
}
