package parser

import (
	"github.com/cwbudde/go-tac/internal/ast"
	"github.com/cwbudde/go-tac/internal/errors"
	"github.com/cwbudde/go-tac/internal/token"
)

// block := '{' decls stmts '}'
// A block introduces a fresh symbol-table scope, shared by its
// declarations and its statements, popped again before returning.
func (p *Parser) block() (ast.Statement, error) {
	if err := p.matchByte('{'); err != nil {
		return nil, err
	}
	p.syms.Push()
	if err := p.decls(); err != nil {
		p.syms.Pop()
		return nil, err
	}
	body, err := p.stmts()
	p.syms.Pop()
	if err != nil {
		return nil, err
	}
	if err := p.matchByte('}'); err != nil {
		return nil, err
	}
	return body, nil
}

// decls := ( type ID ';' )*
// Each declaration enters the identifier into the current (innermost)
// scope at the next free offset, sized by its type's width.
func (p *Parser) decls() error {
	for p.look.Tag == token.BASIC {
		typ, err := p.parseType()
		if err != nil {
			return err
		}
		if p.look.Tag != token.ID {
			return errors.Syntax(p.lex.Line())
		}
		name := p.look.Lexeme
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.matchByte(';'); err != nil {
			return err
		}

		id := &ast.Identifier{Name: name, Typ: typ, Offset: p.used}
		p.used += typ.Width()
		p.syms.Put(name, id)
	}
	return nil
}

// stmts := stmt*
// Builds a right-recursive chain of Seq nodes terminated by Null; at
// generation time Seq places one label between each successive pair of
// statements.
func (p *Parser) stmts() (ast.Statement, error) {
	if p.isByte('}') {
		return &ast.Null{}, nil
	}
	head, err := p.stmt()
	if err != nil {
		return nil, err
	}
	tail, err := p.stmts()
	if err != nil {
		return nil, err
	}
	return &ast.Seq{Head: head, Tail: tail}, nil
}

// stmt dispatches on the look-ahead token to parse a single statement:
//
//	';'                          -> Null
//	'if' '(' bool ')' stmt       -> If, optionally extended by 'else' stmt
//	'while' '(' bool ')' stmt    -> While
//	'do' stmt 'while' '(' bool ')' ';' -> Do
//	'break' ';'                  -> Break
//	'{' block '}'                -> nested block
//	loc '=' bool ';'             -> Assign or AssignArray
func (p *Parser) stmt() (ast.Statement, error) {
	switch {
	case p.isByte(';'):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Null{}, nil

	case p.look.Tag == token.IF:
		return p.ifStmt()

	case p.look.Tag == token.WHILE:
		return p.whileStmt()

	case p.look.Tag == token.DO:
		return p.doStmt()

	case p.look.Tag == token.BREAK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.matchByte(';'); err != nil {
			return nil, err
		}
		return &ast.Break{}, nil

	case p.isByte('{'):
		return p.block()

	default:
		return p.assignStmt()
	}
}

func (p *Parser) ifStmt() (ast.Statement, error) {
	if err := p.match(token.IF); err != nil {
		return nil, err
	}
	if err := p.matchByte('('); err != nil {
		return nil, err
	}
	cond, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	if err := p.matchByte(')'); err != nil {
		return nil, err
	}
	then, err := p.stmt()
	if err != nil {
		return nil, err
	}
	if p.look.Tag != token.ELSE {
		return &ast.If{Cond: cond, Body: then}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	elseStmt, err := p.stmt()
	if err != nil {
		return nil, err
	}
	return &ast.IfElse{Cond: cond, Then: then, Else: elseStmt}, nil
}

func (p *Parser) whileStmt() (ast.Statement, error) {
	if err := p.match(token.WHILE); err != nil {
		return nil, err
	}
	if err := p.matchByte('('); err != nil {
		return nil, err
	}
	cond, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	if err := p.matchByte(')'); err != nil {
		return nil, err
	}
	body, err := p.stmt()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func (p *Parser) doStmt() (ast.Statement, error) {
	if err := p.match(token.DO); err != nil {
		return nil, err
	}
	body, err := p.stmt()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.WHILE); err != nil {
		return nil, err
	}
	if err := p.matchByte('('); err != nil {
		return nil, err
	}
	cond, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	if err := p.matchByte(')'); err != nil {
		return nil, err
	}
	if err := p.matchByte(';'); err != nil {
		return nil, err
	}
	return &ast.Do{Cond: cond, Body: body}, nil
}

// assignStmt parses the default production, loc '=' bool ';', where
// loc is either a plain identifier or an array element access.
func (p *Parser) assignStmt() (ast.Statement, error) {
	if p.look.Tag != token.ID {
		return nil, errors.Syntax(p.lex.Line())
	}
	name := p.look.Lexeme
	decl, err := p.syms.Get(name)
	if err != nil {
		return nil, err
	}
	id := decl.(*ast.Identifier)
	if err := p.advance(); err != nil {
		return nil, err
	}

	if !p.isByte('[') {
		if err := p.matchByte('='); err != nil {
			return nil, err
		}
		rhs, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		if err := p.matchByte(';'); err != nil {
			return nil, err
		}
		return &ast.Assign{Id: id, Expr: rhs}, nil
	}

	index, _, err := p.offset(id)
	if err != nil {
		return nil, err
	}
	if err := p.matchByte('='); err != nil {
		return nil, err
	}
	rhs, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	if err := p.matchByte(';'); err != nil {
		return nil, err
	}
	return &ast.AssignArray{Array: id, Index: index, Expr: rhs}, nil
}
