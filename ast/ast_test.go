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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyval/types"
)

func num(n int64) *Number { return &Number{Value: n} }
func id(name string) *Identifier { return &Identifier{Name: name} }

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"arithmetic", &BinOp{Op: Plus, Left: num(1), Right: &BinOp{Op: Times, Left: num(2), Right: num(3)}}, "1 + 2 * 3"},
		{"left assoc", &BinOp{Op: Minus, Left: &BinOp{Op: Minus, Left: num(1), Right: num(2)}, Right: num(3)}, "1 - 2 - 3"},
		{"right operand", &BinOp{Op: Minus, Left: num(1), Right: &BinOp{Op: Minus, Left: num(2), Right: num(3)}}, "1 - (2 - 3)"},
		{"cons", &Cons{Head: num(1), Tail: &Cons{Head: num(2), Tail: &Nil{}}}, "1 :: 2 :: []"},
		{"nested list head", &Cons{Head: &Nil{}, Tail: &Nil{}}, "[] :: []"},
		{"application", &App{Func: &App{Func: id("f"), Arg: num(1)}, Arg: &App{Func: id("g"), Arg: num(2)}}, "f 1 (g 2)"},
		{"function", &Func{Pat: &IdPat{Name: "x"}, Body: &BinOp{Op: Plus, Left: id("x"), Right: num(1)}}, "x => x + 1"},
		{"annotated function", &Func{Pat: &IdPat{Name: "x"}, Annotation: types.Int, Body: id("x")}, "(x : Int) => x"},
		{"if", &If{Cond: &Boolean{Value: true}, Then: &String{Value: "a\"b"}, Else: &Unit{}}, `if True then "a\"b" else ()`},
		{"function argument", &App{Func: id("f"), Arg: &Func{Pat: &Wildcard{}, Body: num(0)}}, "f (_ => 0)"},
		{"block", &Block{Stmts: []Expr{
			&Defn{Pat: &IdPat{Name: "x"}, Annotation: types.Int, Value: num(1)},
			id("x"),
		}}, "{ val x : Int = 1; x; }"},
		{"match", &Match{Value: id("xs"), Cases: []MatchCase{
			{Pat: &NilPat{}, Body: num(0)},
			{Pat: &ConsPat{Head: &IdPat{Name: "x"}, Tail: &Wildcard{}}, Body: id("x")},
		}}, "match xs with { case [] => 0; case x :: _ => x; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprString(tt.expr))
		})
	}
}

func TestPatString(t *testing.T) {
	pat := &ConsPat{Head: &ConsPat{Head: &IdPat{Name: "a"}, Tail: &NilPat{}}, Tail: &ConsPat{Head: &NumberPat{Value: 2}, Tail: &Wildcard{}}}
	assert.Equal(t, "(a :: []) :: 2 :: _", PatString(pat))
	assert.Equal(t, []string{"a"}, PatNames(pat))
	assert.True(t, IsLiteral(&StringPat{Value: "s"}))
	assert.False(t, IsLiteral(&IdPat{Name: "s"}))
}

func TestWalkExpr(t *testing.T) {
	expr := &Block{Stmts: []Expr{
		&Defn{Pat: &IdPat{Name: "f"}, Value: &Func{Pat: &IdPat{Name: "x"}, Body: id("x")}},
		&App{Func: id("f"), Arg: num(1)},
	}}
	var names []string
	WalkExpr(expr, func(e Expr) { names = append(names, e.ExprName()) })
	assert.Equal(t, []string{"Block", "Defn", "Func", "Identifier", "App", "Identifier", "Number"}, names)
}

func TestValidate(t *testing.T) {
	defn := &Defn{Pat: &IdPat{Name: "x"}, Value: num(1)}

	require.NoError(t, Validate(&Block{Stmts: []Expr{defn, id("x")}}))
	require.NoError(t, Validate(defn))

	err := Validate(&Block{Stmts: []Expr{defn}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must end with an expression")

	require.Error(t, Validate(&Block{}))

	err = Validate(&If{Cond: &Boolean{}, Then: defn, Else: num(2)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Definition of x")
}
