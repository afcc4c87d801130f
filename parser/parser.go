// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package parser reads the surface syntax of expressions, patterns, definitions and type
// annotations into the trees of package ast and package types.
package parser

import (
	"fmt"
	"strconv"

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/types"
)

// Parser is a recursive-descent parser over a fully scanned token slice. Function heads are
// recognized by backtracking to a saved token index.
type Parser struct {
	tokens []Token
	pos    int
}

// New scans input and returns a Parser for it.
func New(input string) (*Parser, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: toks}, nil
}

// ParseExpr parses a single expression spanning all of input.
func ParseExpr(input string) (ast.Expr, error) {
	p, err := New(input)
	if err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseProgram parses a single top-level statement: either a definition (`val x = 1`) or an
// expression, optionally followed by a semicolon.
func ParseProgram(input string) (ast.Expr, error) {
	p, err := New(input)
	if err != nil {
		return nil, err
	}
	stmt, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	p.accept(SEMICOLON)
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseStatements parses a sequence of top-level statements separated by semicolons. The
// semicolon after the last statement is optional.
func ParseStatements(input string) ([]ast.Expr, error) {
	p, err := New(input)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Expr
	for p.peek().Type != EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.accept(SEMICOLON) {
			break
		}
	}
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return stmts, nil
}

// ParsePattern parses a single pattern spanning all of input.
func ParsePattern(input string) (ast.Pat, error) {
	p, err := New(input)
	if err != nil {
		return nil, err
	}
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return pat, nil
}

// ParseType parses a single type annotation spanning all of input.
func ParseType(input string) (types.Type, error) {
	p, err := New(input)
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return t, nil
}

// Token cursor

func (p *Parser) peek() Token { return p.tokens[p.pos] }

func (p *Parser) peekAt(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) accept(t TokenType) bool {
	if p.peek().Type == t {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(t TokenType, context string) (Token, error) {
	tok := p.peek()
	if tok.Type != t {
		return tok, p.errorf(tok, "expected '%s' %s, found %s", t, context, tok.describe())
	}
	return p.next(), nil
}

func (p *Parser) expectEOF() error {
	if tok := p.peek(); tok.Type != EOF {
		return p.errorf(tok, "unexpected %s after end of input", tok.describe())
	}
	return nil
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) error {
	return &SyntaxError{
		Line:       tok.Line,
		Column:     tok.Column,
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: tok.Type == EOF,
	}
}

// Statements

func (p *Parser) parseStmt() (ast.Expr, error) {
	switch p.peek().Type {
	case VAL, VAR:
		return p.parseDefn()
	}
	return p.parseExpr()
}

// val p [: T] = e
func (p *Parser) parseDefn() (*ast.Defn, error) {
	d := &ast.Defn{Kind: ast.Val}
	if p.next().Type == VAR {
		d.Kind = ast.Var
	}
	pat, err := p.parsePatternAtom()
	if err != nil {
		return nil, err
	}
	d.Pat = pat
	if p.accept(COLON) {
		if d.Annotation, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(ASSIGN, "in definition"); err != nil {
		return nil, err
	}
	if d.Value, err = p.parseExpr(); err != nil {
		return nil, err
	}
	return d, nil
}

// Expressions

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch p.peek().Type {
	case IF:
		return p.parseIf()
	case MATCH:
		return p.parseMatch()
	}
	if fn, ok, err := p.tryFunc(); ok || err != nil {
		return fn, err
	}
	return p.parseCons()
}

// tryFunc parses `p => e` or `(p : T) => e` when the upcoming tokens form a function head.
// It restores the cursor and reports false otherwise. Errors after `=>` are not recoverable.
func (p *Parser) tryFunc() (ast.Expr, bool, error) {
	switch p.peek().Type {
	case LPAREN, IDENT, UNDERSCORE, INT, STRING, TRUE, FALSE, LBRACKET:
	default:
		return nil, false, nil
	}
	start := p.pos
	fn := &ast.Func{}

	pat, err := p.parsePatternAtom()
	if err == nil && p.peek().Type == FATARROW {
		fn.Pat = pat
	} else {
		p.pos = start
		if !p.accept(LPAREN) {
			return nil, false, nil
		}
		if pat, err = p.parsePattern(); err != nil || !p.accept(COLON) {
			p.pos = start
			return nil, false, nil
		}
		ann, err := p.parseType()
		if err != nil || !p.accept(RPAREN) || p.peek().Type != FATARROW {
			p.pos = start
			return nil, false, nil
		}
		fn.Pat, fn.Annotation = pat, ann
	}

	p.next() // =>
	if fn.Body, err = p.parseExpr(); err != nil {
		return nil, true, err
	}
	return fn, true, nil
}

// if c then a else b
func (p *Parser) parseIf() (ast.Expr, error) {
	p.next()
	e := &ast.If{}
	var err error
	if e.Cond, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if _, err = p.expect(THEN, "after condition"); err != nil {
		return nil, err
	}
	if e.Then, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if _, err = p.expect(ELSE, "in conditional"); err != nil {
		return nil, err
	}
	if e.Else, err = p.parseExpr(); err != nil {
		return nil, err
	}
	return e, nil
}

// match e with { case p => e; ... }
func (p *Parser) parseMatch() (ast.Expr, error) {
	p.next()
	e := &ast.Match{}
	var err error
	if e.Value, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if _, err = p.expect(WITH, "after match value"); err != nil {
		return nil, err
	}
	if _, err = p.expect(LBRACE, "to open match cases"); err != nil {
		return nil, err
	}
	for !p.accept(RBRACE) {
		if _, err = p.expect(CASE, "before match case"); err != nil {
			return nil, err
		}
		var c ast.MatchCase
		if c.Pat, err = p.parsePattern(); err != nil {
			return nil, err
		}
		if _, err = p.expect(FATARROW, "after case pattern"); err != nil {
			return nil, err
		}
		if c.Body, err = p.parseExpr(); err != nil {
			return nil, err
		}
		e.Cases = append(e.Cases, c)
		if !p.accept(SEMICOLON) {
			if _, err = p.expect(RBRACE, "after match case"); err != nil {
				return nil, err
			}
			break
		}
	}
	if len(e.Cases) == 0 {
		return nil, p.errorf(p.tokens[p.pos-1], "match requires at least one case")
	}
	return e, nil
}

// head :: tail
func (p *Parser) parseCons() (ast.Expr, error) {
	head, err := p.parseBinary(orLevel)
	if err != nil {
		return nil, err
	}
	if !p.accept(CONS) {
		return head, nil
	}
	tail, err := p.parseConsTail()
	if err != nil {
		return nil, err
	}
	return &ast.Cons{Head: head, Tail: tail}, nil
}

// The right operand of `::` may itself be a function, conditional or match.
func (p *Parser) parseConsTail() (ast.Expr, error) {
	switch p.peek().Type {
	case IF, MATCH:
		return p.parseExpr()
	}
	if fn, ok, err := p.tryFunc(); ok || err != nil {
		return fn, err
	}
	return p.parseCons()
}

// Binary operator levels, tightest first.
const (
	mulLevel = iota
	addLevel
	relLevel
	andLevel
	orLevel
)

var binaryOps = map[TokenType]struct {
	level int
	op    ast.Op
}{
	STAR:  {mulLevel, ast.Times},
	SLASH: {mulLevel, ast.Divide},
	PLUS:  {addLevel, ast.Plus},
	MINUS: {addLevel, ast.Minus},
	LT:    {relLevel, ast.Less},
	LE:    {relLevel, ast.LessEq},
	GT:    {relLevel, ast.Greater},
	GE:    {relLevel, ast.GreaterEq},
	EQ:    {relLevel, ast.Equal},
	NE:    {relLevel, ast.NotEqual},
	AND:   {andLevel, ast.And},
	OR:    {orLevel, ast.Or},
}

// Left-associative binary operators at the given level and tighter.
func (p *Parser) parseBinary(level int) (ast.Expr, error) {
	operand := func() (ast.Expr, error) {
		if level == mulLevel {
			return p.parseApp()
		}
		return p.parseBinary(level - 1)
	}
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		bin, ok := binaryOps[p.peek().Type]
		if !ok || bin.level != level {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: bin.op, Left: left, Right: right}
	}
}

// f x y
func (p *Parser) parseApp() (ast.Expr, error) {
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.peek().Type) {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = &ast.App{Func: fn, Arg: arg}
	}
	return fn, nil
}

func startsAtom(t TokenType) bool {
	switch t {
	case INT, STRING, TRUE, FALSE, IDENT, LPAREN, LBRACKET, LBRACE:
		return true
	}
	return false
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.next()
	switch tok.Type {
	case INT:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "integer literal %s is out of range", tok.Literal)
		}
		return &ast.Number{Value: n}, nil
	case STRING:
		return &ast.String{Value: tok.Literal}, nil
	case TRUE:
		return &ast.Boolean{Value: true}, nil
	case FALSE:
		return &ast.Boolean{Value: false}, nil
	case IDENT:
		return &ast.Identifier{Name: tok.Literal}, nil
	case LBRACKET:
		if _, err := p.expect(RBRACKET, "in empty list"); err != nil {
			return nil, err
		}
		return &ast.Nil{}, nil
	case LPAREN:
		if p.accept(RPAREN) {
			return &ast.Unit{}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(RPAREN, "to close parenthesized expression"); err != nil {
			return nil, err
		}
		return e, nil
	case LBRACE:
		return p.parseBlock()
	}
	return nil, p.errorf(tok, "expected an expression, found %s", tok.describe())
}

// { stmt; ... stmt; }
func (p *Parser) parseBlock() (ast.Expr, error) {
	b := &ast.Block{}
	for !p.accept(RBRACE) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, stmt)
		if !p.accept(SEMICOLON) {
			if _, err = p.expect(RBRACE, "after block statement"); err != nil {
				return nil, err
			}
			break
		}
	}
	if len(b.Stmts) == 0 {
		return nil, p.errorf(p.tokens[p.pos-1], "empty block")
	}
	if _, ok := b.Stmts[len(b.Stmts)-1].(*ast.Defn); ok {
		return nil, p.errorf(p.tokens[p.pos-1], "block must end with an expression")
	}
	return b, nil
}
