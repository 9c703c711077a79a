// Package parser implements the recursive-descent, single-token
// look-ahead parser that turns a token stream into the typed syntax
// tree (internal/ast), consulting the type model (internal/types) and
// a nested symbol-table stack (internal/symtab) as it goes.
package parser

import (
	"io"

	"github.com/cwbudde/go-tac/internal/ast"
	"github.com/cwbudde/go-tac/internal/errors"
	"github.com/cwbudde/go-tac/internal/lexer"
	"github.com/cwbudde/go-tac/internal/symtab"
	"github.com/cwbudde/go-tac/internal/token"
)

// Parser holds one token of look-ahead over the scanner's output, the
// active symbol-table stack, and the running declaration-offset
// counter. The zero value is not usable; construct with New.
type Parser struct {
	lex  *lexer.Lexer
	look token.Token
	syms *symtab.Table

	// used is the running byte offset for the next declaration. It is
	// never reset between blocks (see DESIGN.md): offsets accumulate
	// across sibling and nested blocks. This matches the reference
	// implementation's behavior and has no effect on emitted TAC,
	// which never mentions offsets.
	used int
}

// New constructs a Parser reading from r and primes the look-ahead
// with the first token.
func New(r io.ByteReader) (*Parser, error) {
	p := &Parser{
		lex:  lexer.New(r),
		syms: symtab.New(),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance scans the next token into the look-ahead slot.
func (p *Parser) advance() error {
	tok, err := p.lex.Scan()
	if err != nil {
		return errors.Lexical(p.lex.Line(), err)
	}
	p.look = tok
	return nil
}

// match consumes the look-ahead token if its tag equals want,
// advancing past it. A mismatch is a syntax error.
func (p *Parser) match(want token.Tag) error {
	if p.look.Tag != want {
		return errors.Syntax(p.lex.Line())
	}
	return p.advance()
}

// matchByte is match for single-byte punctuation tokens.
func (p *Parser) matchByte(b byte) error {
	return p.match(token.Tag(b))
}

// isByte reports whether the look-ahead is the punctuation byte b.
func (p *Parser) isByte(b byte) bool {
	return p.look.Tag == token.Tag(b)
}

// ParseProgram parses a complete program (a single top-level block)
// and returns its root statement wrapped as an ast.Program. It does
// not itself emit any TAC; call Program.Generate for that.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	root, err := p.block()
	if err != nil {
		return nil, err
	}
	if p.look.Kind != token.Eof {
		return nil, errors.Syntax(p.lex.Line())
	}
	return &ast.Program{Root: root}, nil
}
