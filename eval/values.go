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

package eval

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/wdamron/polyval/ast"
)

// Value is the result of evaluating an expression.
type Value interface {
	// Name of the kind of value.
	ValueName() string
	// Surface-syntax rendering of the value; functions render as `<fun>`.
	String() string
}

var (
	_ Value = Int(0)
	_ Value = Bool(false)
	_ Value = String("")
	_ Value = Unit{}
	_ Value = Nil{}
	_ Value = (*Cons)(nil)
	_ Value = (*Closure)(nil)
)

// Integer
type Int int64

func (v Int) ValueName() string { return "Int" }
func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }

// Boolean
type Bool bool

func (v Bool) ValueName() string { return "Bool" }
func (v Bool) String() string {
	if v {
		return "True"
	}
	return "False"
}

// String
type String string

func (v String) ValueName() string { return "String" }
func (v String) String() string    { return ast.QuoteString(string(v)) }

// Unit
type Unit struct{}

func (v Unit) ValueName() string { return "Unit" }
func (v Unit) String() string    { return "()" }

// Empty list
type Nil struct{}

func (v Nil) ValueName() string { return "List" }
func (v Nil) String() string    { return "[]" }

// Non-empty list
type Cons struct {
	Head Value
	Tail Value
}

func (v *Cons) ValueName() string { return "List" }

func (v *Cons) String() string {
	return "[" + strings.Join(lo.Map(Elements(v), func(e Value, _ int) string { return e.String() }), ", ") + "]"
}

// Function value: a parameter pattern and body, closed over the environment of its definition.
type Closure struct {
	Pat  ast.Pat
	Body ast.Expr
	Env  Env
}

func (v *Closure) ValueName() string { return "Function" }
func (v *Closure) String() string    { return "<fun>" }

// MakeList builds a list value from elements, first element at the head.
func MakeList(elems ...Value) Value {
	var list Value = Nil{}
	for i := len(elems) - 1; i >= 0; i-- {
		list = &Cons{Head: elems[i], Tail: list}
	}
	return list
}

// Elements returns the elements of a list value, or nil if v is not a list.
func Elements(v Value) []Value {
	var elems []Value
	for {
		switch l := v.(type) {
		case *Cons:
			elems = append(elems, l.Head)
			v = l.Tail
		default:
			return elems
		}
	}
}

// Equal reports whether a and b are structurally equal. Functions are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int, Bool, String, Unit, Nil:
		return a == b
	case *Cons:
		bc, ok := b.(*Cons)
		if !ok {
			return false
		}
		for {
			if !Equal(a.Head, bc.Head) {
				return false
			}
			at, aok := a.Tail.(*Cons)
			bt, bok := bc.Tail.(*Cons)
			if !aok || !bok {
				return Equal(a.Tail, bc.Tail)
			}
			a, bc = at, bt
		}
	}
	return false
}
