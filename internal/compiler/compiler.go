// Package compiler wires the scanner, parser, and code generator into
// the single entry point the external driver calls: read a source
// program, write its TAC translation.
package compiler

import (
	"bufio"
	"io"

	"github.com/cwbudde/go-tac/internal/codegen"
	"github.com/cwbudde/go-tac/internal/parser"
)

// Compile reads a complete program from r, translates it to three-
// address code, and writes the result to w. It is the only entry point
// that a driver (a CLI, a test harness) needs: everything upstream of
// it (scanning, parsing, symbol resolution, code generation) is an
// internal collaborator wired together here.
func Compile(r io.Reader, w io.Writer) error {
	p, err := parser.New(bufio.NewReader(r))
	if err != nil {
		return err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}

	g := codegen.New()
	if err := prog.Generate(g); err != nil {
		return err
	}

	_, err = io.WriteString(w, g.String())
	return err
}
