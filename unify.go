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
	"github.com/wdamron/polyval/types"
)

// Substitution is the solution of a system of type equations: an ordered list of solved
// (type-variable, type) pairs. A later pair never binds a variable solved by an earlier pair, but
// the type of an earlier pair may mention variables solved by later pairs; Resolve follows them.
type Substitution struct {
	pairs []types.Equation
	index map[string]int
}

// Len returns the number of solved pairs.
func (s *Substitution) Len() int { return len(s.pairs) }

// Pairs returns the solved pairs in the order they were solved. The Left type of each pair is a *types.Var.
func (s *Substitution) Pairs() []types.Equation {
	pairs := make([]types.Equation, len(s.pairs))
	copy(pairs, s.pairs)
	return pairs
}

// Lookup returns the type solved for the type-variable name, if any.
func (s *Substitution) Lookup(name string) (types.Type, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.pairs[i].Right, true
}

func (s *Substitution) add(v *types.Var, t types.Type) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[v.Name] = len(s.pairs)
	s.pairs = append(s.pairs, types.Equation{Left: v, Right: t})
}

// Resolve applies the substitution to t, chasing chains of solved variables to their final types.
// Variables without a solution are left in place.
func (s *Substitution) Resolve(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		r := s.chase(t)
		if _, ok := r.(*types.Var); ok {
			return r
		}
		return s.Resolve(r)

	case *types.Arrow:
		return &types.Arrow{Arg: s.Resolve(t.Arg), Return: s.Resolve(t.Return)}

	case *types.App:
		return &types.App{Func: s.Resolve(t.Func), Arg: s.Resolve(t.Arg)}

	case *types.List:
		return &types.List{Elem: s.Resolve(t.Elem)}

	case *types.Poly:
		return &types.Poly{Bound: t.Bound, Body: s.Resolve(t.Body)}
	}
	return t
}

// chase follows variable-to-variable solutions, returning the first non-variable type or the
// last unsolved variable.
func (s *Substitution) chase(v *types.Var) types.Type {
	var t types.Type = v
	for {
		tv, ok := t.(*types.Var)
		if !ok {
			return t
		}
		next, ok := s.Lookup(tv.Name)
		if !ok {
			return tv
		}
		t = next
	}
}

// Unify solves a list of type equations.
//
// Equations are processed in order. Equal types are discarded; a type-variable is solved by the
// type it is equated with, and the solution is applied to every remaining equation; functions,
// lists and applications are decomposed into equations between their components. Any other pair
// of types is a *UnificationError. A variable equated with a compound type containing it is an
// *InfiniteTypeError.
func Unify(eqs []types.Equation) (*Substitution, error) {
	// stack of pending equations; the next equation is last
	work := make([]types.Equation, 0, len(eqs))
	for i := len(eqs) - 1; i >= 0; i-- {
		work = append(work, eqs[i])
	}

	s := &Substitution{}
	for len(work) > 0 {
		eq := work[len(work)-1]
		work = work[:len(work)-1]
		left, right := eq.Left, eq.Right

		if types.Equal(left, right) {
			continue
		}

		lv, leftIsVar := left.(*types.Var)
		rv, rightIsVar := right.(*types.Var)
		switch {
		case leftIsVar:
			if !rightIsVar && types.Occurs(lv.Name, right) {
				return nil, &InfiniteTypeError{Var: lv, Type: right}
			}
			s.add(lv, right)
			replaceInEquations(work, lv.Name, right)
			continue

		case rightIsVar:
			if types.Occurs(rv.Name, left) {
				return nil, &InfiniteTypeError{Var: rv, Type: left}
			}
			s.add(rv, left)
			replaceInEquations(work, rv.Name, left)
			continue
		}

		switch l := left.(type) {
		case *types.Arrow:
			if r, ok := right.(*types.Arrow); ok {
				work = append(work,
					types.Equation{Left: l.Return, Right: r.Return},
					types.Equation{Left: l.Arg, Right: r.Arg})
				continue
			}

		case *types.List:
			if r, ok := right.(*types.List); ok {
				work = append(work, types.Equation{Left: l.Elem, Right: r.Elem})
				continue
			}

		case *types.App:
			if r, ok := right.(*types.App); ok {
				work = append(work,
					types.Equation{Left: l.Arg, Right: r.Arg},
					types.Equation{Left: l.Func, Right: r.Func})
				continue
			}
		}

		return nil, &UnificationError{Left: left, Right: right}
	}
	return s, nil
}

func replaceInEquations(eqs []types.Equation, name string, with types.Type) {
	for i, eq := range eqs {
		eqs[i] = types.Equation{
			Left:  types.Replace(eq.Left, name, with),
			Right: types.Replace(eq.Right, name, with),
		}
	}
}
