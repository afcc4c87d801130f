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

// Package eval evaluates expressions directly over the AST.
//
// Evaluation does not consult inferred types; an expression which would be rejected by type
// inference fails at runtime with a *RuntimeError when it reaches an ill-typed operation.
package eval

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/polyval/ast"
)

// RuntimeError reports a failure during evaluation.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErrorf(format string, args ...interface{}) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// IsRuntimeError reports whether err (or an error it wraps) was produced by evaluation.
func IsRuntimeError(err error) bool {
	var re *RuntimeError
	return errors.As(err, &re)
}

// Eval evaluates expr within env.
func Eval(expr ast.Expr, env Env) (Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return Int(e.Value), nil

	case *ast.String:
		return String(e.Value), nil

	case *ast.Boolean:
		return Bool(e.Value), nil

	case *ast.Unit:
		return Unit{}, nil

	case *ast.Nil:
		return Nil{}, nil

	case *ast.Identifier:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, runtimeErrorf("Variable %s not found", e.Name)
		}
		return v, nil

	case *ast.BinOp:
		return evalBinOp(e, env)

	case *ast.Cons:
		head, err := Eval(e.Head, env)
		if err != nil {
			return nil, err
		}
		tail, err := Eval(e.Tail, env)
		if err != nil {
			return nil, err
		}
		switch tail.(type) {
		case Nil, *Cons:
			return &Cons{Head: head, Tail: tail}, nil
		}
		return nil, runtimeErrorf("Expected a list after ::, found %s", tail)

	case *ast.If:
		cond, err := Eval(e.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(Bool)
		if !ok {
			return nil, runtimeErrorf("Expected Bool in condition, found %s", cond)
		}
		if b {
			return Eval(e.Then, env)
		}
		return Eval(e.Else, env)

	case *ast.Func:
		return &Closure{Pat: e.Pat, Body: e.Body, Env: env}, nil

	case *ast.App:
		fn, err := Eval(e.Func, env)
		if err != nil {
			return nil, err
		}
		arg, err := Eval(e.Arg, env)
		if err != nil {
			return nil, err
		}
		return Apply(fn, arg)

	case *ast.Block:
		if len(e.Stmts) == 0 {
			return nil, runtimeErrorf("Empty block")
		}
		last := len(e.Stmts) - 1
		for _, stmt := range e.Stmts[:last] {
			if d, ok := stmt.(*ast.Defn); ok {
				next, _, err := EvalDefn(d, env)
				if err != nil {
					return nil, err
				}
				env = next
				continue
			}
			if _, err := Eval(stmt, env); err != nil {
				return nil, err
			}
		}
		if d, ok := e.Stmts[last].(*ast.Defn); ok {
			return nil, runtimeErrorf("Block must end with an expression, not the definition of %s", ast.PatString(d.Pat))
		}
		return Eval(e.Stmts[last], env)

	case *ast.Match:
		v, err := Eval(e.Value, env)
		if err != nil {
			return nil, err
		}
		for _, c := range e.Cases {
			if bound, ok := Bind(c.Pat, v, env); ok {
				return Eval(c.Body, bound)
			}
		}
		return nil, runtimeErrorf("No case matches %s", v)

	case *ast.Defn:
		return nil, runtimeErrorf("Definition of %s is only allowed as a block statement", ast.PatString(e.Pat))

	case nil:
		return nil, errors.New("Empty expression")
	}
	return nil, errors.Errorf("Unsupported expression %s", expr.ExprName())
}

// EvalDefn evaluates the value of a definition and binds its pattern. It returns the extended
// environment along with the defined value.
func EvalDefn(d *ast.Defn, env Env) (Env, Value, error) {
	v, err := Eval(d.Value, env)
	if err != nil {
		return env, nil, err
	}
	bound, ok := Bind(d.Pat, v, env)
	if !ok {
		return env, nil, runtimeErrorf("Value %s does not match pattern %s", v, ast.PatString(d.Pat))
	}
	return bound, v, nil
}

// Apply calls a function value with an argument.
func Apply(fn, arg Value) (Value, error) {
	c, ok := fn.(*Closure)
	if !ok {
		return nil, runtimeErrorf("Cannot apply %s, which is not a function", fn)
	}
	env, ok := Bind(c.Pat, arg, c.Env)
	if !ok {
		return nil, runtimeErrorf("Argument %s does not match parameter %s", arg, ast.PatString(c.Pat))
	}
	return Eval(c.Body, env)
}

// Bind matches v against p. On success it returns env extended with the names bound by p.
func Bind(p ast.Pat, v Value, env Env) (Env, bool) {
	switch p := p.(type) {
	case *ast.Wildcard:
		return env, true
	case *ast.IdPat:
		return env.Set(p.Name, v), true
	case *ast.NumberPat:
		return env, v == Int(p.Value)
	case *ast.StringPat:
		return env, v == String(p.Value)
	case *ast.BooleanPat:
		return env, v == Bool(p.Value)
	case *ast.UnitPat:
		return env, v == Unit{}
	case *ast.NilPat:
		return env, v == Nil{}
	case *ast.ConsPat:
		c, ok := v.(*Cons)
		if !ok {
			return env, false
		}
		if env, ok = Bind(p.Head, c.Head, env); !ok {
			return env, false
		}
		return Bind(p.Tail, c.Tail, env)
	}
	return env, false
}

func evalBinOp(e *ast.BinOp, env Env) (Value, error) {
	left, err := Eval(e.Left, env)
	if err != nil {
		return nil, err
	}

	if e.Op.IsLogical() {
		l, ok := left.(Bool)
		if !ok {
			return nil, runtimeErrorf("Expected Bool on the left of %s, found %s", e.Op, left)
		}
		if e.Op == ast.And && !bool(l) || e.Op == ast.Or && bool(l) {
			return l, nil
		}
		right, err := Eval(e.Right, env)
		if err != nil {
			return nil, err
		}
		if _, ok := right.(Bool); !ok {
			return nil, runtimeErrorf("Expected Bool on the right of %s, found %s", e.Op, right)
		}
		return right, nil
	}

	right, err := Eval(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.Equal:
		return Bool(Equal(left, right)), nil
	case ast.NotEqual:
		return Bool(!Equal(left, right)), nil
	}

	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		return nil, runtimeErrorf("Expected Int operands for %s, found %s and %s", e.Op, left, right)
	}
	switch e.Op {
	case ast.Plus:
		return l + r, nil
	case ast.Minus:
		return l - r, nil
	case ast.Times:
		return l * r, nil
	case ast.Divide:
		if r == 0 {
			return nil, runtimeErrorf("Division by zero")
		}
		return l / r, nil
	case ast.Less:
		return Bool(l < r), nil
	case ast.LessEq:
		return Bool(l <= r), nil
	case ast.Greater:
		return Bool(l > r), nil
	case ast.GreaterEq:
		return Bool(l >= r), nil
	}
	return nil, errors.Errorf("Unsupported operator %s", e.Op)
}
