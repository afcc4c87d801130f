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
	"github.com/pkg/errors"
)

// WalkExpr calls f for e and each of its sub-expressions, parents before children.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Number, *String, *Boolean, *Unit, *Nil, *Identifier:
		f(e)

	case *BinOp:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *Cons:
		f(e)
		WalkExpr(e.Head, f)
		WalkExpr(e.Tail, f)

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Func:
		f(e)
		WalkExpr(e.Body, f)

	case *App:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)

	case *Block:
		f(e)
		for _, stmt := range e.Stmts {
			WalkExpr(stmt, f)
		}

	case *Match:
		f(e)
		WalkExpr(e.Value, f)
		for _, c := range e.Cases {
			WalkExpr(c.Body, f)
		}

	case *Defn:
		f(e)
		WalkExpr(e.Value, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// WalkPat calls f for p and each of its sub-patterns, parents before children.
func WalkPat(p Pat, f func(Pat)) {
	switch p := p.(type) {
	case *ConsPat:
		f(p)
		WalkPat(p.Head, f)
		WalkPat(p.Tail, f)
	case nil:
	default:
		f(p)
	}
}

// Validate checks the statement structure of e: blocks must be non-empty and end with an
// expression, and definitions may only appear as block statements (or at the top level, when
// e is itself a Defn).
func Validate(e Expr) error {
	stmts := make(map[*Defn]bool)
	if d, ok := e.(*Defn); ok {
		stmts[d] = true
	}
	var err error
	WalkExpr(e, func(e Expr) {
		if err != nil {
			return
		}
		switch e := e.(type) {
		case *Block:
			if len(e.Stmts) == 0 {
				err = errors.New("Empty block")
				return
			}
			if _, ok := e.Stmts[len(e.Stmts)-1].(*Defn); ok {
				err = errors.New("Block must end with an expression, not a definition")
				return
			}
			for _, stmt := range e.Stmts[:len(e.Stmts)-1] {
				if d, ok := stmt.(*Defn); ok {
					stmts[d] = true
				}
			}
		case *Defn:
			if !stmts[e] {
				err = errors.Errorf("Definition of %s is not a block statement", PatString(e.Pat))
			}
		}
	})
	return err
}
