// Package codegen holds the label/temporary allocator and the
// text-level emission helpers shared by every AST node's TAC output.
// It is the sole point of contact between the syntax tree and the
// emitted instruction stream.
package codegen

import (
	"fmt"
	"strings"
)

// Gen is a per-compile name generator producing monotonically
// increasing label and temporary names, and the output buffer every
// expression and statement node writes through. Passing an explicit
// Gen down the tree (rather than mutating package-level counters)
// keeps a compile's numbering independent of any other compile running
// concurrently in the same process.
type Gen struct {
	out       strings.Builder
	nextLabel int
	nextTemp  int
}

// New returns a Gen whose counters start at 1, as required so that 0
// remains available as the "absent label" sentinel.
func New() *Gen {
	return &Gen{nextLabel: 1, nextTemp: 1}
}

// NewLabel allocates the next label number.
func (g *Gen) NewLabel() int {
	l := g.nextLabel
	g.nextLabel++
	return l
}

// NewTemp allocates and returns the next temporary index n; the
// temporary prints as "t<n>".
func (g *Gen) NewTemp() int {
	n := g.nextTemp
	g.nextTemp++
	return n
}

// Emit appends one instruction line: "\t<text>\n".
func (g *Gen) Emit(text string) {
	g.out.WriteByte('\t')
	g.out.WriteString(text)
	g.out.WriteByte('\n')
}

// Emitf is Emit with fmt.Sprintf formatting.
func (g *Gen) Emitf(format string, args ...any) {
	g.Emit(fmt.Sprintf(format, args...))
}

// EmitLabel appends a label placement "L<k>:" with no trailing
// newline: whatever follows continues on the same physical line,
// whether that is an instruction or another label.
func (g *Gen) EmitLabel(k int) {
	fmt.Fprintf(&g.out, "L%d:", k)
}

// EmitJumps appends the conditional branch(es) needed to use test as a
// boolean guard, targeting label to on true and label from on false.
// 0 means fall through (no jump emitted for that outcome):
//
//	to != 0 && from != 0:  "if <test> goto L<to>" then "goto L<from>"
//	to != 0 only:          "if <test> goto L<to>"
//	from != 0 only:        "iffalse <test> goto L<from>"
//	both 0:                nothing
func (g *Gen) EmitJumps(test string, to, from int) {
	switch {
	case to != 0 && from != 0:
		g.Emitf("if %s goto L%d", test, to)
		g.Emitf("goto L%d", from)
	case to != 0:
		g.Emitf("if %s goto L%d", test, to)
	case from != 0:
		g.Emitf("iffalse %s goto L%d", test, from)
	}
}

// String returns the accumulated output text.
func (g *Gen) String() string {
	return g.out.String()
}
