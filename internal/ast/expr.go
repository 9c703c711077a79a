// Package ast defines the expression and statement syntax tree built
// by the parser, and the two code-generation protocols every node
// implements: value generation (Generate/Reduce) and short-circuit
// jump-code generation (Jumps).
package ast

import (
	"fmt"

	"github.com/cwbudde/go-tac/internal/codegen"
	"github.com/cwbudde/go-tac/internal/errors"
	"github.com/cwbudde/go-tac/internal/token"
	"github.com/cwbudde/go-tac/internal/types"
)

// Expression is implemented by every value-producing AST node. Each
// node participates in two complementary translation modes:
//
//   - Generate reduces the expression to TAC, returning a node that
//     represents its value (a leaf returns itself; arithmetic and unary
//     operators return a copy over already-reduced operands; an array
//     access returns a copy over its generated index; relational and
//     logical operators return a fresh boolean temporary).
//   - Reduce further forces the result to an atomic address: an
//     identifier, a temporary, or a constant.
//   - Jumps emits the branch code to use the expression as a boolean
//     test, jumping to label `to` on true and `from` on false (0 means
//     fall through for that outcome).
type Expression interface {
	// Type returns the expression's static type.
	Type() types.Type
	// String renders the expression's printed form, as it appears
	// directly in emitted TAC text.
	String() string
	Generate(g *codegen.Gen) Expression
	Reduce(g *codegen.Gen) Expression
	Jumps(g *codegen.Gen, to, from int)
}

// reduceViaGenerate implements the generic operator reduction rule:
// generate the value, then force it into a fresh temporary. Every
// operator node (everything but the three leaf kinds) reduces this
// way; only the Generate step differs between node kinds.
func reduceViaGenerate(g *codegen.Gen, self Expression) Expression {
	x := self.Generate(g)
	t := NewTemp(g, self.Type())
	g.Emitf("%s = %s", t.String(), x.String())
	return t
}

// jumpsViaReduce is the fallback boolean test for operator nodes with
// no short-circuit shape of their own (arithmetic, unary): reduce to an
// atomic temporary, then test that temporary. Well-typed programs never
// exercise this path directly since these node types are never
// boolean-typed, but every Expression must implement Jumps. AccessOp
// tests its element the same way in its own Jumps.
func jumpsViaReduce(g *codegen.Gen, self Expression, to, from int) {
	t := self.Reduce(g)
	g.EmitJumps(t.String(), to, from)
}

// ---------------------------------------------------------------------
// Leaves: Constant, Identifier, Temp.
// ---------------------------------------------------------------------

// Constant is an integer, real, or boolean literal.
type Constant struct {
	Tok token.Token
	Typ types.Type
}

// TrueConstant and FalseConstant are the canonical boolean singletons.
var (
	TrueConstant  = &Constant{Tok: token.TrueWord, Typ: types.Bool}
	FalseConstant = &Constant{Tok: token.FalseWord, Typ: types.Bool}
)

// NewIntConstant builds an integer literal constant.
func NewIntConstant(v int64) *Constant {
	return &Constant{Tok: token.NewInteger(v), Typ: types.Int}
}

// NewRealConstant builds a real literal constant.
func NewRealConstant(v float64) *Constant {
	return &Constant{Tok: token.NewReal(v), Typ: types.Float}
}

func (c *Constant) Type() types.Type { return c.Typ }
func (c *Constant) String() string   { return c.Tok.String() }

func (c *Constant) Generate(*codegen.Gen) Expression { return c }
func (c *Constant) Reduce(*codegen.Gen) Expression   { return c }

func (c *Constant) Jumps(g *codegen.Gen, to, from int) {
	switch {
	case c.Tok.Tag == token.TRUE && to != 0:
		g.Emitf("goto L%d", to)
	case c.Tok.Tag == token.FALSE && from != 0:
		g.Emitf("goto L%d", from)
	}
}

// Identifier is a declared variable reference.
type Identifier struct {
	Name   string
	Typ    types.Type
	Offset int
}

func (i *Identifier) Type() types.Type { return i.Typ }
func (i *Identifier) String() string   { return i.Name }

func (i *Identifier) Generate(*codegen.Gen) Expression { return i }
func (i *Identifier) Reduce(*codegen.Gen) Expression   { return i }

func (i *Identifier) Jumps(g *codegen.Gen, to, from int) {
	g.EmitJumps(i.String(), to, from)
}

// Temp is a compiler-generated temporary, printed "t<n>".
type Temp struct {
	N   int
	Typ types.Type
}

// NewTemp allocates a fresh temporary of the given type from g.
func NewTemp(g *codegen.Gen, typ types.Type) *Temp {
	return &Temp{N: g.NewTemp(), Typ: typ}
}

func (t *Temp) Type() types.Type { return t.Typ }
func (t *Temp) String() string   { return fmt.Sprintf("t%d", t.N) }

func (t *Temp) Generate(*codegen.Gen) Expression { return t }
func (t *Temp) Reduce(*codegen.Gen) Expression   { return t }

func (t *Temp) Jumps(g *codegen.Gen, to, from int) {
	g.EmitJumps(t.String(), to, from)
}

// ---------------------------------------------------------------------
// Arithmetic, unary, and array-access operators.
// ---------------------------------------------------------------------

// ArithmeticOp is a binary numeric operator (+, -, *, /). Its type is
// the numeric promotion of its operands.
type ArithmeticOp struct {
	Op    string
	Typ   types.Type
	Left  Expression
	Right Expression
}

// NewArithmeticOp constructs an arithmetic node, rejecting operands
// that do not both promote to a common numeric type.
func NewArithmeticOp(op string, left, right Expression) (*ArithmeticOp, error) {
	typ, ok := types.MaxType(left.Type(), right.Type())
	if !ok {
		return nil, errors.TypeError()
	}
	return &ArithmeticOp{Op: op, Typ: typ, Left: left, Right: right}, nil
}

func (a *ArithmeticOp) Type() types.Type { return a.Typ }
func (a *ArithmeticOp) String() string   { return fmt.Sprintf("%s %s %s", a.Left, a.Op, a.Right) }

func (a *ArithmeticOp) Generate(g *codegen.Gen) Expression {
	return &ArithmeticOp{Op: a.Op, Typ: a.Typ, Left: a.Left.Reduce(g), Right: a.Right.Reduce(g)}
}

func (a *ArithmeticOp) Reduce(g *codegen.Gen) Expression { return reduceViaGenerate(g, a) }

func (a *ArithmeticOp) Jumps(g *codegen.Gen, to, from int) { jumpsViaReduce(g, a, to, from) }

// UnaryOp is a prefix numeric operator (unary minus). Its type is the
// promotion of int with its operand's type, covering numeric negation.
type UnaryOp struct {
	Op   string
	Typ  types.Type
	Rest Expression
}

// NewUnaryOp constructs a unary operator node.
func NewUnaryOp(op string, rest Expression) (*UnaryOp, error) {
	typ, ok := types.MaxType(types.Int, rest.Type())
	if !ok {
		return nil, errors.TypeError()
	}
	return &UnaryOp{Op: op, Typ: typ, Rest: rest}, nil
}

func (u *UnaryOp) Type() types.Type { return u.Typ }
func (u *UnaryOp) String() string   { return fmt.Sprintf("%s %s", u.Op, u.Rest) }

func (u *UnaryOp) Generate(g *codegen.Gen) Expression {
	return &UnaryOp{Op: u.Op, Typ: u.Typ, Rest: u.Rest.Reduce(g)}
}

func (u *UnaryOp) Reduce(g *codegen.Gen) Expression { return reduceViaGenerate(g, u) }

func (u *UnaryOp) Jumps(g *codegen.Gen, to, from int) { jumpsViaReduce(g, u, to, from) }

// AccessOp is an array element reference: array[index]. Its type is
// the element type of the array.
type AccessOp struct {
	Array *Identifier
	Index Expression
	Typ   types.Type
}

// NewAccessOp constructs an array-access node. array must have an
// Array type; its element type becomes the node's type.
func NewAccessOp(array *Identifier, index Expression) (*AccessOp, error) {
	arr, ok := array.Type().(types.Array)
	if !ok {
		return nil, errors.TypeError()
	}
	return &AccessOp{Array: array, Index: index, Typ: arr.Of}, nil
}

func (a *AccessOp) Type() types.Type { return a.Typ }
func (a *AccessOp) String() string   { return fmt.Sprintf("%s [ %s ]", a.Array, a.Index) }

func (a *AccessOp) Generate(g *codegen.Gen) Expression {
	return &AccessOp{Array: a.Array, Index: a.Index.Generate(g), Typ: a.Typ}
}

func (a *AccessOp) Reduce(g *codegen.Gen) Expression { return reduceViaGenerate(g, a) }

func (a *AccessOp) Jumps(g *codegen.Gen, to, from int) {
	t := a.Reduce(g)
	g.EmitJumps(t.String(), to, from)
}

// ---------------------------------------------------------------------
// Relational and logical (boolean) operators.
// ---------------------------------------------------------------------

// generateViaJumpTemplate implements the shared true/false-temp
// materialization used by RelationOp, NotLogicOp, AndLogicOp and
// OrLogicOp: jump to a fresh false-label on failure, fall through to
// set the result true, jump past the false branch, and converge.
func generateViaJumpTemplate(g *codegen.Gen, boolExpr Expression) Expression {
	f := g.NewLabel()
	boolExpr.Jumps(g, 0, f)
	t := NewTemp(g, types.Bool)
	g.Emitf("%s = true", t.String())
	a := g.NewLabel()
	g.Emitf("goto L%d", a)
	g.EmitLabel(f)
	g.Emitf("%s = false", t.String())
	g.EmitLabel(a)
	return t
}

// RelationOp is a binary comparison (==, !=, <, <=, >, >=). Operands
// must share an identical, non-array type; the result is bool.
type RelationOp struct {
	Op    string
	Left  Expression
	Right Expression
}

// NewRelationOp constructs a relational node.
func NewRelationOp(op string, left, right Expression) (*RelationOp, error) {
	lt, rt := left.Type(), right.Type()
	if lt == nil || rt == nil || !lt.Equal(rt) {
		return nil, errors.TypeErrorLower()
	}
	if _, isArray := lt.(types.Array); isArray {
		return nil, errors.TypeErrorLower()
	}
	return &RelationOp{Op: op, Left: left, Right: right}, nil
}

func (r *RelationOp) Type() types.Type { return types.Bool }
func (r *RelationOp) String() string   { return fmt.Sprintf("%s %s %s", r.Left, r.Op, r.Right) }

func (r *RelationOp) Generate(g *codegen.Gen) Expression { return generateViaJumpTemplate(g, r) }
func (r *RelationOp) Reduce(g *codegen.Gen) Expression   { return reduceViaGenerate(g, r) }

func (r *RelationOp) Jumps(g *codegen.Gen, to, from int) {
	lr := r.Left.Reduce(g)
	rr := r.Right.Reduce(g)
	g.EmitJumps(fmt.Sprintf("%s %s %s", lr, r.Op, rr), to, from)
}

// NotLogicOp is boolean negation (!). Its operand must be bool.
type NotLogicOp struct {
	Op   string
	Expr Expression
}

// NewNotLogicOp constructs a logical-not node; op must be "!".
func NewNotLogicOp(op string, expr Expression) (*NotLogicOp, error) {
	if op != "!" {
		return nil, errors.LexerError()
	}
	if et := expr.Type(); et == nil || !et.Equal(types.Bool) {
		return nil, errors.TypeErrorLower()
	}
	return &NotLogicOp{Op: op, Expr: expr}, nil
}

func (n *NotLogicOp) Type() types.Type { return types.Bool }
func (n *NotLogicOp) String() string   { return fmt.Sprintf("%s %s", n.Op, n.Expr) }

func (n *NotLogicOp) Generate(g *codegen.Gen) Expression { return generateViaJumpTemplate(g, n) }
func (n *NotLogicOp) Reduce(g *codegen.Gen) Expression   { return reduceViaGenerate(g, n) }

func (n *NotLogicOp) Jumps(g *codegen.Gen, to, from int) {
	n.Expr.Jumps(g, from, to)
}

// OrLogicOp is short-circuit logical or (||). Both operands must be bool.
type OrLogicOp struct {
	Left  Expression
	Right Expression
}

// NewOrLogicOp constructs a logical-or node.
func NewOrLogicOp(left, right Expression) (*OrLogicOp, error) {
	if !isBool(left) || !isBool(right) {
		return nil, errors.TypeErrorLower()
	}
	return &OrLogicOp{Left: left, Right: right}, nil
}

func (o *OrLogicOp) Type() types.Type { return types.Bool }
func (o *OrLogicOp) String() string   { return fmt.Sprintf("%s || %s", o.Left, o.Right) }

func (o *OrLogicOp) Generate(g *codegen.Gen) Expression { return generateViaJumpTemplate(g, o) }
func (o *OrLogicOp) Reduce(g *codegen.Gen) Expression   { return reduceViaGenerate(g, o) }

func (o *OrLogicOp) Jumps(g *codegen.Gen, to, from int) {
	label := to
	if label == 0 {
		label = g.NewLabel()
	}
	o.Left.Jumps(g, label, 0)
	o.Right.Jumps(g, to, from)
	if to == 0 {
		g.EmitLabel(label)
	}
}

// AndLogicOp is short-circuit logical and (&&). Both operands must be bool.
type AndLogicOp struct {
	Left  Expression
	Right Expression
}

// NewAndLogicOp constructs a logical-and node.
func NewAndLogicOp(left, right Expression) (*AndLogicOp, error) {
	if !isBool(left) || !isBool(right) {
		return nil, errors.TypeErrorLower()
	}
	return &AndLogicOp{Left: left, Right: right}, nil
}

func (a *AndLogicOp) Type() types.Type { return types.Bool }
func (a *AndLogicOp) String() string   { return fmt.Sprintf("%s && %s", a.Left, a.Right) }

func (a *AndLogicOp) Generate(g *codegen.Gen) Expression { return generateViaJumpTemplate(g, a) }
func (a *AndLogicOp) Reduce(g *codegen.Gen) Expression   { return reduceViaGenerate(g, a) }

func (a *AndLogicOp) Jumps(g *codegen.Gen, to, from int) {
	label := from
	if label == 0 {
		label = g.NewLabel()
	}
	a.Left.Jumps(g, 0, label)
	a.Right.Jumps(g, to, from)
	if from == 0 {
		g.EmitLabel(label)
	}
}

func isBool(e Expression) bool {
	t := e.Type()
	return t != nil && t.Equal(types.Bool)
}
