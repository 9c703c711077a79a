// Package types implements the small static type model shared by the
// parser and the expression AST: scalar types with a storage width,
// and fixed-length arrays of them.
package types

import "fmt"

// Type is either a Simple scalar or an Array of some element Type.
// Equality is structural.
type Type interface {
	fmt.Stringer
	// Width returns the type's storage size in bytes.
	Width() int
	// Equal reports whether two types are structurally identical.
	Equal(other Type) bool
	// IsNumeric reports whether the type participates in max_type
	// promotion (int, float, char).
	IsNumeric() bool
}

// Simple is a scalar type: a lexeme naming it and its width in bytes.
type Simple struct {
	Lexeme string
	width  int
}

// Canonical simple types. Declared once and reused everywhere a
// built-in scalar type is needed, matching the lexer's interned
// type-name tokens.
var (
	Int   = Simple{Lexeme: "int", width: 4}
	Float = Simple{Lexeme: "float", width: 8}
	Char  = Simple{Lexeme: "char", width: 1}
	Bool  = Simple{Lexeme: "bool", width: 1}
)

func (s Simple) String() string { return s.Lexeme }
func (s Simple) Width() int     { return s.width }

func (s Simple) Equal(other Type) bool {
	o, ok := other.(Simple)
	return ok && o.Lexeme == s.Lexeme
}

func (s Simple) IsNumeric() bool {
	switch s.Lexeme {
	case "int", "float", "char":
		return true
	default:
		return false
	}
}

// NewSimple builds a Simple type from a lexeme and width, for type
// names parsed from source (the four built-ins above are the only
// ones the grammar can produce, but construction is not restricted to
// them so tests can build synthetic types).
func NewSimple(lexeme string, width int) Simple {
	return Simple{Lexeme: lexeme, width: width}
}

// Array is a fixed-length homogeneous array type.
type Array struct {
	Of     Type
	Length int
}

func (a Array) String() string { return fmt.Sprintf("%s[%d]", a.Of, a.Length) }
func (a Array) Width() int     { return a.Of.Width() * a.Length }

func (a Array) Equal(other Type) bool {
	o, ok := other.(Array)
	return ok && o.Length == a.Length && o.Of.Equal(a.Of)
}

func (a Array) IsNumeric() bool { return false }

// IsNumeric reports whether t participates in numeric promotion. It is
// a free function mirror of Type.IsNumeric for callers that only have
// a possibly-nil Type in hand.
func IsNumeric(t Type) bool {
	return t != nil && t.IsNumeric()
}

// MaxType implements the numeric-promotion rule used by ArithmeticOp
// and UnaryOp: if either operand is non-numeric, promotion fails (nil,
// false). Otherwise float dominates int dominates char.
func MaxType(a, b Type) (Type, bool) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil, false
	}
	if isLexeme(a, "float") || isLexeme(b, "float") {
		return Float, true
	}
	if isLexeme(a, "int") || isLexeme(b, "int") {
		return Int, true
	}
	return Char, true
}

func isLexeme(t Type, lexeme string) bool {
	s, ok := t.(Simple)
	return ok && s.Lexeme == lexeme
}
