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

package construct

import (
	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/types"
)

// Types

// Type variable: `a`
func TVar(name string) *types.Var {
	return &types.Var{Name: name}
}

// List type: `[Int]`
func TList(elem types.Type) *types.List {
	return &types.List{Elem: elem}
}

// Function type: `Int -> Int`
func TArrow(arg, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg, Return: ret}
}

// Curried function type: `Int -> Int -> Int`. At least one type must be given.
func TArrows(ts ...types.Type) types.Type {
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = &types.Arrow{Arg: ts[i], Return: t}
	}
	return t
}

// Type application: `f a`
func TApp(fn, arg types.Type) *types.App {
	return &types.App{Func: fn, Arg: arg}
}

// Polymorphic type-scheme: `a . b . a -> b`. The first name is bound outermost.
func TPoly(body types.Type, bound ...string) types.Type {
	for i := len(bound) - 1; i >= 0; i-- {
		body = &types.Poly{Bound: bound[i], Body: body}
	}
	return body
}

// Expressions

func Num(n int64) *ast.Number { return &ast.Number{Value: n} }
func Str(s string) *ast.String { return &ast.String{Value: s} }
func Bool(b bool) *ast.Boolean { return &ast.Boolean{Value: b} }
func Unit() *ast.Unit { return &ast.Unit{} }
func Nil() *ast.Nil { return &ast.Nil{} }
func Var(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

// Binary operation: `a + b`
func Bin(op ast.Op, left, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: op, Left: left, Right: right}
}

func Add(left, right ast.Expr) *ast.BinOp { return Bin(ast.Plus, left, right) }
func Sub(left, right ast.Expr) *ast.BinOp { return Bin(ast.Minus, left, right) }
func Mul(left, right ast.Expr) *ast.BinOp { return Bin(ast.Times, left, right) }
func Div(left, right ast.Expr) *ast.BinOp { return Bin(ast.Divide, left, right) }
func Lt(left, right ast.Expr) *ast.BinOp { return Bin(ast.Less, left, right) }
func Eq(left, right ast.Expr) *ast.BinOp { return Bin(ast.Equal, left, right) }
func And(left, right ast.Expr) *ast.BinOp { return Bin(ast.And, left, right) }
func Or(left, right ast.Expr) *ast.BinOp { return Bin(ast.Or, left, right) }

// List construction: `x :: xs`
func Cons(head, tail ast.Expr) *ast.Cons {
	return &ast.Cons{Head: head, Tail: tail}
}

// List literal built from cons cells: `1 :: 2 :: []`
func List(elems ...ast.Expr) ast.Expr {
	var list ast.Expr = Nil()
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons(elems[i], list)
	}
	return list
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Abstraction: `p => body`
func Func(pat ast.Pat, body ast.Expr) *ast.Func {
	return &ast.Func{Pat: pat, Body: body}
}

// Abstraction with a single named parameter: `x => body`
func Func1(name string, body ast.Expr) *ast.Func {
	return &ast.Func{Pat: PId(name), Body: body}
}

// Abstraction with an annotated parameter: `(x : Int) => body`
func FuncAnn(pat ast.Pat, annotation types.Type, body ast.Expr) *ast.Func {
	return &ast.Func{Pat: pat, Annotation: annotation, Body: body}
}

// Curried application: `f a b`
func Call(fn ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		fn = &ast.App{Func: fn, Arg: arg}
	}
	return fn
}

// Block: `{ s1; s2; }`
func Block(stmts ...ast.Expr) *ast.Block {
	return &ast.Block{Stmts: stmts}
}

// Definition: `val p = value`
func Val(pat ast.Pat, value ast.Expr) *ast.Defn {
	return &ast.Defn{Kind: ast.Val, Pat: pat, Value: value}
}

// Definition of a name: `val x = value`
func Val1(name string, value ast.Expr) *ast.Defn {
	return &ast.Defn{Kind: ast.Val, Pat: PId(name), Value: value}
}

// Annotated definition: `val p : T = value`
func ValAnn(pat ast.Pat, annotation types.Type, value ast.Expr) *ast.Defn {
	return &ast.Defn{Kind: ast.Val, Pat: pat, Annotation: annotation, Value: value}
}

// Pattern-matching: `match value with { cases }`
func Match(value ast.Expr, cases ...ast.MatchCase) *ast.Match {
	return &ast.Match{Value: value, Cases: cases}
}

// Match case: `case p => body`
func Case(pat ast.Pat, body ast.Expr) ast.MatchCase {
	return ast.MatchCase{Pat: pat, Body: body}
}

// Patterns

func PId(name string) *ast.IdPat { return &ast.IdPat{Name: name} }
func PWild() *ast.Wildcard { return &ast.Wildcard{} }
func PNum(n int64) *ast.NumberPat { return &ast.NumberPat{Value: n} }
func PStr(s string) *ast.StringPat { return &ast.StringPat{Value: s} }
func PBool(b bool) *ast.BooleanPat { return &ast.BooleanPat{Value: b} }
func PUnit() *ast.UnitPat { return &ast.UnitPat{} }
func PNil() *ast.NilPat { return &ast.NilPat{} }
func PCons(head, tail ast.Pat) *ast.ConsPat { return &ast.ConsPat{Head: head, Tail: tail} }
