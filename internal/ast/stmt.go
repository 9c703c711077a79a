package ast

import (
	"github.com/cwbudde/go-tac/internal/codegen"
	"github.com/cwbudde/go-tac/internal/errors"
)

// Statement is implemented by every control-flow node. Generate emits
// the node's TAC; begin is the label already placed immediately before
// the statement's first instruction (the caller emits it), and after
// is the label that will be placed immediately after the statement's
// last instruction. 0 means "none" for either.
//
// After is a downward-propagating setter: it records the label of the
// nearest enclosing loop's exit point on every Break reachable from
// this statement, without mutating anything else. While and Do call it
// with their own after value; Seq, If and IfElse simply forward it to
// their children.
type Statement interface {
	Generate(g *codegen.Gen, begin, after int) error
	After(label int)
}

// Null is the empty statement (a bare ';').
type Null struct{}

func (*Null) Generate(*codegen.Gen, int, int) error { return nil }
func (*Null) After(int)                             {}

// Assign is a scalar assignment: id = expr.
type Assign struct {
	Id   *Identifier
	Expr Expression
}

func (a *Assign) Generate(g *codegen.Gen, _, _ int) error {
	x := a.Expr.Generate(g)
	g.Emitf("%s = %s", a.Id.String(), x.String())
	return nil
}

func (*Assign) After(int) {}

// AssignArray is an array-element assignment: array[index] = expr.
type AssignArray struct {
	Array *Identifier
	Index Expression
	Expr  Expression
}

func (a *AssignArray) Generate(g *codegen.Gen, _, _ int) error {
	idx := a.Index.Reduce(g)
	v := a.Expr.Reduce(g)
	g.Emitf("%s [ %s ] = %s", a.Array.String(), idx.String(), v.String())
	return nil
}

func (*AssignArray) After(int) {}

// Seq is a statement sequence: head followed by tail. Null operands
// collapse transparently so that Seq(Null, x), Seq(x, Null) and x emit
// identical text.
type Seq struct {
	Head Statement
	Tail Statement
}

func (s *Seq) Generate(g *codegen.Gen, begin, after int) error {
	_, headNull := s.Head.(*Null)
	_, tailNull := s.Tail.(*Null)
	switch {
	case headNull:
		return s.Tail.Generate(g, begin, after)
	case tailNull:
		return s.Head.Generate(g, begin, after)
	default:
		label := g.NewLabel()
		if err := s.Head.Generate(g, begin, label); err != nil {
			return err
		}
		g.EmitLabel(label)
		return s.Tail.Generate(g, label, after)
	}
}

func (s *Seq) After(label int) {
	s.Head.After(label)
	s.Tail.After(label)
}

// If is a one-armed conditional: if (cond) body.
type If struct {
	Cond Expression
	Body Statement
}

func (i *If) Generate(g *codegen.Gen, _, after int) error {
	i.Cond.Jumps(g, 0, after)
	label := g.NewLabel()
	g.EmitLabel(label)
	return i.Body.Generate(g, label, after)
}

func (i *If) After(label int) { i.Body.After(label) }

// IfElse is a two-armed conditional: if (cond) then else elseStmt.
type IfElse struct {
	Cond Expression
	Then Statement
	Else Statement
}

func (ie *IfElse) Generate(g *codegen.Gen, _, after int) error {
	lthen := g.NewLabel()
	lelse := g.NewLabel()
	ie.Cond.Jumps(g, 0, lelse)
	g.EmitLabel(lthen)
	if err := ie.Then.Generate(g, lthen, after); err != nil {
		return err
	}
	g.Emitf("goto L%d", after)
	g.EmitLabel(lelse)
	return ie.Else.Generate(g, lelse, after)
}

func (ie *IfElse) After(label int) {
	ie.Then.After(label)
	ie.Else.After(label)
}

// While is a pre-tested loop: while (cond) body.
type While struct {
	Cond Expression
	Body Statement
}

func (w *While) Generate(g *codegen.Gen, begin, after int) error {
	w.After(after)
	w.Cond.Jumps(g, 0, after)
	label := g.NewLabel()
	g.EmitLabel(label)
	if err := w.Body.Generate(g, label, begin); err != nil {
		return err
	}
	g.Emitf("goto L%d", begin)
	return nil
}

func (w *While) After(label int) { w.Body.After(label) }

// Do is a post-tested loop: do body while (cond).
type Do struct {
	Cond Expression
	Body Statement
}

func (d *Do) Generate(g *codegen.Gen, begin, after int) error {
	d.After(after)
	label := g.NewLabel()
	if err := d.Body.Generate(g, begin, label); err != nil {
		return err
	}
	g.EmitLabel(label)
	d.Cond.Jumps(g, begin, 0)
	return nil
}

func (d *Do) After(label int) { d.Body.After(label) }

// Break targets the nearest enclosing loop's after-label, recorded by
// that loop's After call at the start of its Generate. A Break generated before any
// enclosing While or Do has set its target is an error.
type Break struct {
	after int
}

func (b *Break) Generate(g *codegen.Gen, _, _ int) error {
	if b.after == 0 {
		return errors.UnenclosedBreak()
	}
	g.Emitf("goto L%d", b.after)
	return nil
}

func (b *Break) After(label int) { b.after = label }

// Program is the root of a compile: a single statement tree plus the
// driver that threads the outermost begin/after labels around it.
type Program struct {
	Root Statement
}

// Generate runs the program driver: allocate the outer begin and
// after labels, place begin immediately, generate the root statement
// between them, then place after.
func (p *Program) Generate(g *codegen.Gen) error {
	begin := g.NewLabel()
	after := g.NewLabel()
	g.EmitLabel(begin)
	if err := p.Root.Generate(g, begin, after); err != nil {
		return err
	}
	g.EmitLabel(after)
	return nil
}
