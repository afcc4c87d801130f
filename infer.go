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

package polyval

import (
	"github.com/pkg/errors"

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/types"
)

// Generate produces the type of expr and the equations which must hold for expr to be well-typed
// within env. Identifiers are instantiated at each use and block definitions are generalized as
// they are bound; the returned equations are otherwise unsolved.
func (ti *InferenceContext) Generate(expr ast.Expr, env *StaticEnv) (types.Type, []types.Equation, error) {
	ti.continueFrom(env)
	t, eqs, err := ti.generate(expr, env)
	if err != nil {
		ti.fail(expr, err)
	}
	return t, eqs, err
}

// GeneratePattern produces the type of pat, the equations between its sub-patterns, and the
// bindings it introduces.
func (ti *InferenceContext) GeneratePattern(pat ast.Pat) (types.Type, []types.Equation, *StaticEnv, error) {
	t, eqs, bindings, err := ti.generatePattern(pat)
	if err != nil {
		ti.err = err
	}
	return t, eqs, bindings, err
}

// BindDefn infers the type of a definition's value, generalizes it within env, and returns env
// extended with the bindings of the definition's pattern. The equations of the definition's value
// are returned so that constraints on variables bound in env are not lost.
func (ti *InferenceContext) BindDefn(defn *ast.Defn, env *StaticEnv) (*StaticEnv, []types.Equation, error) {
	ti.continueFrom(env)
	env, eqs, _, err := ti.bindDefn(defn, env)
	if err != nil {
		ti.fail(defn, err)
	}
	return env, eqs, err
}

func (ti *InferenceContext) fail(e ast.Expr, err error) {
	if ti.err == nil {
		ti.invalid, ti.err = e, err
	}
}

func (ti *InferenceContext) generate(e ast.Expr, env *StaticEnv) (types.Type, []types.Equation, error) {
	switch e := e.(type) {
	case *ast.Number:
		return types.Int, nil, nil

	case *ast.String:
		return types.String, nil, nil

	case *ast.Boolean:
		return types.Bool, nil, nil

	case *ast.Unit:
		return types.Unit, nil, nil

	case *ast.Nil:
		return &types.List{Elem: ti.varTracker.New()}, nil, nil

	case *ast.Identifier:
		scheme, ok := env.Get(e.Name)
		if !ok {
			err := &UnboundIdentifierError{Name: e.Name}
			ti.fail(e, err)
			return nil, nil, err
		}
		return ti.instantiate(scheme), nil, nil

	case *ast.BinOp:
		lt, leqs, err := ti.generate(e.Left, env)
		if err != nil {
			return nil, nil, err
		}
		rt, reqs, err := ti.generate(e.Right, env)
		if err != nil {
			return nil, nil, err
		}
		var operand, result types.Type
		switch {
		case e.Op.IsArithmetic():
			operand, result = types.Int, types.Int
		case e.Op.IsRelational():
			operand, result = types.Int, types.Bool
		case e.Op.IsLogical():
			operand, result = types.Bool, types.Bool
		default:
			err := &UnimplementedError{Node: "operator " + e.Op.String()}
			ti.fail(e, err)
			return nil, nil, err
		}
		eqs := concat(leqs, reqs, []types.Equation{{Left: lt, Right: operand}, {Left: rt, Right: operand}})
		return result, eqs, nil

	case *ast.Cons:
		ht, heqs, err := ti.generate(e.Head, env)
		if err != nil {
			return nil, nil, err
		}
		tt, teqs, err := ti.generate(e.Tail, env)
		if err != nil {
			return nil, nil, err
		}
		list := &types.List{Elem: ht}
		return list, concat(heqs, teqs, []types.Equation{{Left: tt, Right: list}}), nil

	case *ast.If:
		ct, ceqs, err := ti.generate(e.Cond, env)
		if err != nil {
			return nil, nil, err
		}
		tt, teqs, err := ti.generate(e.Then, env)
		if err != nil {
			return nil, nil, err
		}
		et, eeqs, err := ti.generate(e.Else, env)
		if err != nil {
			return nil, nil, err
		}
		eqs := concat(ceqs, teqs, eeqs, []types.Equation{{Left: ct, Right: types.Bool}, {Left: tt, Right: et}})
		return tt, eqs, nil

	case *ast.Func:
		in, peqs, bindings, err := ti.generatePattern(e.Pat)
		if err != nil {
			ti.fail(e, err)
			return nil, nil, err
		}
		out, beqs, err := ti.generate(e.Body, Union(bindings, env))
		if err != nil {
			return nil, nil, err
		}
		eqs := concat(peqs, beqs)
		if e.Annotation != nil {
			eqs = append(eqs, types.Equation{Left: in, Right: ti.instantiate(e.Annotation)})
		}
		return &types.Arrow{Arg: in, Return: out}, eqs, nil

	case *ast.App:
		ft, feqs, err := ti.generate(e.Func, env)
		if err != nil {
			return nil, nil, err
		}
		at, aeqs, err := ti.generate(e.Arg, env)
		if err != nil {
			return nil, nil, err
		}
		out := ti.varTracker.New()
		eqs := concat(feqs, aeqs, []types.Equation{{Left: ft, Right: &types.Arrow{Arg: at, Return: out}}})
		return out, eqs, nil

	case *ast.Block:
		if len(e.Stmts) == 0 {
			err := structuralErrorf("Empty block")
			ti.fail(e, err)
			return nil, nil, err
		}
		var eqs []types.Equation
		last := len(e.Stmts) - 1
		for _, stmt := range e.Stmts[:last] {
			if defn, ok := stmt.(*ast.Defn); ok {
				next, deqs, _, err := ti.bindDefn(defn, env)
				if err != nil {
					return nil, nil, err
				}
				env, eqs = next, append(eqs, deqs...)
				continue
			}
			// the statement has no effect on the type of the block
			if _, _, err := ti.generate(stmt, env); err != nil {
				return nil, nil, err
			}
		}
		if defn, ok := e.Stmts[last].(*ast.Defn); ok {
			err := structuralErrorf("Block must end with an expression, not the definition of %s", ast.PatString(defn.Pat))
			ti.fail(e, err)
			return nil, nil, err
		}
		t, leqs, err := ti.generate(e.Stmts[last], env)
		if err != nil {
			return nil, nil, err
		}
		return t, append(eqs, leqs...), nil

	case *ast.Match:
		st, eqs, err := ti.generate(e.Value, env)
		if err != nil {
			return nil, nil, err
		}
		result := ti.varTracker.New()
		for _, c := range e.Cases {
			pt, peqs, bindings, err := ti.generatePattern(c.Pat)
			if err != nil {
				ti.fail(e, err)
				return nil, nil, err
			}
			bt, beqs, err := ti.generate(c.Body, Union(bindings, env))
			if err != nil {
				return nil, nil, err
			}
			eqs = concat(eqs, peqs, beqs, []types.Equation{{Left: pt, Right: st}, {Left: bt, Right: result}})
		}
		return result, eqs, nil

	case *ast.Defn:
		err := structuralErrorf("Definition of %s is only allowed as a block statement", ast.PatString(e.Pat))
		ti.fail(e, err)
		return nil, nil, err

	case nil:
		return nil, nil, errors.New("Empty expression")
	}

	err := &UnimplementedError{Node: e.ExprName()}
	ti.fail(e, err)
	return nil, nil, err
}

func (ti *InferenceContext) generatePattern(p ast.Pat) (types.Type, []types.Equation, *StaticEnv, error) {
	switch p := p.(type) {
	case *ast.NumberPat:
		return types.Int, nil, &StaticEnv{}, nil

	case *ast.StringPat:
		return types.String, nil, &StaticEnv{}, nil

	case *ast.BooleanPat:
		return types.Bool, nil, &StaticEnv{}, nil

	case *ast.UnitPat:
		return types.Unit, nil, &StaticEnv{}, nil

	case *ast.Wildcard:
		return ti.varTracker.New(), nil, &StaticEnv{}, nil

	case *ast.IdPat:
		tv := ti.varTracker.New()
		return tv, nil, (&StaticEnv{}).Set(p.Name, tv), nil

	case *ast.NilPat:
		return &types.List{Elem: ti.varTracker.New()}, nil, &StaticEnv{}, nil

	case *ast.ConsPat:
		ht, heqs, hbindings, err := ti.generatePattern(p.Head)
		if err != nil {
			return nil, nil, nil, err
		}
		tt, teqs, tbindings, err := ti.generatePattern(p.Tail)
		if err != nil {
			return nil, nil, nil, err
		}
		list := &types.List{Elem: ht}
		return list, concat(heqs, teqs, []types.Equation{{Left: list, Right: tt}}), Union(hbindings, tbindings), nil

	case nil:
		return nil, nil, nil, errors.New("Empty pattern")
	}
	return nil, nil, nil, &UnimplementedError{Node: p.PatName()}
}

// bindDefn returns the extended environment, the equations of the definition, and the generalized type-scheme.
func (ti *InferenceContext) bindDefn(d *ast.Defn, env *StaticEnv) (*StaticEnv, []types.Equation, types.Type, error) {
	switch d.Pat.(type) {
	case *ast.ConsPat, *ast.NilPat:
		err := structuralErrorf("Pattern %s cannot be used in a definition", ast.PatString(d.Pat))
		ti.fail(d, err)
		return nil, nil, nil, err
	}

	t, eqs, err := ti.generate(d.Value, env)
	if err != nil {
		return nil, nil, nil, err
	}
	if d.Annotation != nil {
		eqs = append(eqs, types.Equation{Left: t, Right: ti.instantiate(d.Annotation)})
	}
	if ast.IsLiteral(d.Pat) {
		pt, _, _, _ := ti.generatePattern(d.Pat)
		eqs = append(eqs, types.Equation{Left: pt, Right: t})
	}

	scheme, err := ti.generalize(eqs, env, t)
	if err != nil {
		ti.fail(d, err)
		return nil, nil, nil, err
	}

	if p, ok := d.Pat.(*ast.IdPat); ok {
		env = env.Set(p.Name, scheme)
	}
	return env, eqs, scheme, nil
}

func concat(lists ...[]types.Equation) []types.Equation {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	eqs := make([]types.Equation, 0, n)
	for _, l := range lists {
		eqs = append(eqs, l...)
	}
	return eqs
}
