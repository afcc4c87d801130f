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

package ast

import (
	"github.com/wdamron/polyval/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Number)(nil)
	_ Expr = (*String)(nil)
	_ Expr = (*Boolean)(nil)
	_ Expr = (*Unit)(nil)
	_ Expr = (*Nil)(nil)
	_ Expr = (*Identifier)(nil)
	_ Expr = (*BinOp)(nil)
	_ Expr = (*Cons)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Block)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Defn)(nil)
)

// Integer literal: `1`
type Number struct {
	Value int64
}

// "Number"
func (e *Number) ExprName() string { return "Number" }

// String literal: `"abc"`
type String struct {
	Value string
}

// "String"
func (e *String) ExprName() string { return "String" }

// Boolean literal: `True`
type Boolean struct {
	Value bool
}

// "Boolean"
func (e *Boolean) ExprName() string { return "Boolean" }

// Unit literal: `()`
type Unit struct{}

// "Unit"
func (e *Unit) ExprName() string { return "Unit" }

// Empty list: `[]`
type Nil struct{}

// "Nil"
func (e *Nil) ExprName() string { return "Nil" }

// Variable
type Identifier struct {
	Name string
}

// "Identifier"
func (e *Identifier) ExprName() string { return "Identifier" }

// Op is a binary operator.
type Op int

const (
	Plus Op = iota
	Minus
	Times
	Divide
	Less
	LessEq
	Greater
	GreaterEq
	Equal
	NotEqual
	And
	Or
)

var opSyntax = [...]string{
	Plus:      "+",
	Minus:     "-",
	Times:     "*",
	Divide:    "/",
	Less:      "<",
	LessEq:    "<=",
	Greater:   ">",
	GreaterEq: ">=",
	Equal:     "==",
	NotEqual:  "!=",
	And:       "&&",
	Or:        "||",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSyntax) {
		return "<invalid-op>"
	}
	return opSyntax[op]
}

// IsArithmetic reports whether op is one of `+ - * /`.
func (op Op) IsArithmetic() bool { return op >= Plus && op <= Divide }

// IsRelational reports whether op is one of `< <= > >= == !=`.
func (op Op) IsRelational() bool { return op >= Less && op <= NotEqual }

// IsLogical reports whether op is `&&` or `||`.
func (op Op) IsLogical() bool { return op == And || op == Or }

// Binary operation: `a + b`, `a < b`, `a && b`
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr
}

// "BinOp"
func (e *BinOp) ExprName() string { return "BinOp" }

// List construction: `x :: xs`
type Cons struct {
	Head Expr
	Tail Expr
}

// "Cons"
func (e *Cons) ExprName() string { return "Cons" }

// Conditional: `if c then a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Abstraction: `x => x`, `(x : Int) => x`
type Func struct {
	Pat Pat
	// Annotation is the declared parameter type, or nil.
	Annotation types.Type
	Body       Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Application: `f x`
type App struct {
	Func Expr
	Arg  Expr
}

// "App"
func (e *App) ExprName() string { return "App" }

// Block: `{ val x = 1; x + 1; }`
//
// Every statement but the last may be a Defn. The last statement is the value of the block.
type Block struct {
	Stmts []Expr
}

// "Block"
func (e *Block) ExprName() string { return "Block" }

// Pattern-matching: `match xs with { case [] => 0; case x :: _ => x; }`
type Match struct {
	Value Expr
	Cases []MatchCase
}

// Case within a Match expression
type MatchCase struct {
	Pat  Pat
	Body Expr
}

// "Match"
func (e *Match) ExprName() string { return "Match" }

// DefnKind distinguishes `val` and `var` definitions.
type DefnKind int

const (
	Val DefnKind = iota
	Var
)

func (k DefnKind) String() string {
	if k == Var {
		return "var"
	}
	return "val"
}

// Definition: `val x : Int = 1`
//
// Definitions are statements; they may appear within a Block (other than in tail position)
// or at the top level of a program.
type Defn struct {
	Kind DefnKind
	Pat  Pat
	// Annotation is the declared type of the definition, or nil.
	Annotation types.Type
	Value      Expr
}

// "Defn"
func (e *Defn) ExprName() string { return "Defn" }
