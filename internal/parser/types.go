package parser

import (
	"github.com/cwbudde/go-tac/internal/errors"
	"github.com/cwbudde/go-tac/internal/token"
	"github.com/cwbudde/go-tac/internal/types"
)

// parseType parses "type := BASIC ( '[' INTEGER ']' )*": a scalar
// type name followed by zero or more fixed-length array dimensions,
// first-parsed dimension outermost.
//
// Dimensions are parsed left to right but must nest with the first
// one outermost (its stride is the product of all trailing
// dimensions' sizes, matching row-major a[x][y] addressing in
// offset): collect the sizes first, then build the Array chain from
// the last size inward, so the first size ends up as the outermost
// wrapper.
func (p *Parser) parseType() (types.Type, error) {
	if p.look.Tag != token.BASIC {
		return nil, errors.Syntax(p.lex.Line())
	}
	base := canonicalSimple(p.look.Lexeme)
	if err := p.advance(); err != nil {
		return nil, err
	}

	var sizes []int
	for p.isByte('[') {
		if err := p.matchByte('['); err != nil {
			return nil, err
		}
		if p.look.Tag != token.INTEGER {
			return nil, errors.Syntax(p.lex.Line())
		}
		length := p.look.IntVal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.matchByte(']'); err != nil {
			return nil, err
		}
		sizes = append(sizes, int(length))
	}

	typ := types.Type(base)
	for i := len(sizes) - 1; i >= 0; i-- {
		typ = types.Array{Of: typ, Length: sizes[i]}
	}
	return typ, nil
}

// canonicalSimple maps a scanned type-name lexeme to the shared
// canonical Simple value, so identical source type names always
// compare and promote identically.
func canonicalSimple(lexeme string) types.Simple {
	switch lexeme {
	case "int":
		return types.Int
	case "float":
		return types.Float
	case "char":
		return types.Char
	case "bool":
		return types.Bool
	default:
		return types.NewSimple(lexeme, 0)
	}
}
