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

package types

import (
	"strconv"

	"github.com/samber/lo"
)

// VarNames returns the names of all type-variables occurring in t, in order of first appearance.
// Names bound by a Poly are included.
func VarNames(t Type) []string {
	var names []string
	collectVarNames(t, false, nil, &names)
	return lo.Uniq(names)
}

// FreeVars returns the names of type-variables occurring free in t, in order of first appearance.
func FreeVars(t Type) []string {
	var names []string
	collectVarNames(t, true, nil, &names)
	return lo.Uniq(names)
}

func collectVarNames(t Type, freeOnly bool, bound []string, names *[]string) {
	switch t := t.(type) {
	case *Var:
		if freeOnly && lo.Contains(bound, t.Name) {
			return
		}
		*names = append(*names, t.Name)
	case *Arrow:
		collectVarNames(t.Arg, freeOnly, bound, names)
		collectVarNames(t.Return, freeOnly, bound, names)
	case *App:
		collectVarNames(t.Func, freeOnly, bound, names)
		collectVarNames(t.Arg, freeOnly, bound, names)
	case *List:
		collectVarNames(t.Elem, freeOnly, bound, names)
	case *Poly:
		collectVarNames(t.Body, freeOnly, append(bound[:len(bound):len(bound)], t.Bound), names)
	}
}

// Replace substitutes with for every free occurrence of the type-variable name within t.
// Unchanged sub-trees are shared with t.
func Replace(t Type, name string, with Type) Type {
	return Substitute(t, map[string]Type{name: with})
}

// Rename replaces every free occurrence of the type-variable from with a type-variable named to.
func Rename(t Type, from, to string) Type {
	return Replace(t, from, &Var{Name: to})
}

// Substitute simultaneously replaces free type-variables within t using m.
func Substitute(t Type, m map[string]Type) Type {
	if len(m) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if r, ok := m[t.Name]; ok {
			return r
		}
		return t
	case *Arrow:
		arg, ret := Substitute(t.Arg, m), Substitute(t.Return, m)
		if arg == t.Arg && ret == t.Return {
			return t
		}
		return &Arrow{Arg: arg, Return: ret}
	case *App:
		fn, arg := Substitute(t.Func, m), Substitute(t.Arg, m)
		if fn == t.Func && arg == t.Arg {
			return t
		}
		return &App{Func: fn, Arg: arg}
	case *List:
		elem := Substitute(t.Elem, m)
		if elem == t.Elem {
			return t
		}
		return &List{Elem: elem}
	case *Poly:
		inner := m
		if _, shadowed := m[t.Bound]; shadowed {
			inner = lo.OmitByKeys(m, []string{t.Bound})
		}
		body := Substitute(t.Body, inner)
		if body == t.Body {
			return t
		}
		return &Poly{Bound: t.Bound, Body: body}
	}
	return t
}

// Quantify binds every free type-variable of t in a Poly prefix. The first variable to appear
// is bound outermost.
func Quantify(t Type) Type {
	free := FreeVars(t)
	for i := len(free) - 1; i >= 0; i-- {
		t = &Poly{Bound: free[i], Body: t}
	}
	return t
}

// Canonical renames the type-variables of t to "1", "2", ... by order of first appearance.
//
// A leading Poly prefix is stripped before renaming and rebuilt afterwards, ordered by the new
// names; bound variables which do not occur in the body are bound innermost. Canonical is idempotent.
func Canonical(t Type) Type {
	var bound []string
	for {
		p, ok := t.(*Poly)
		if !ok {
			break
		}
		bound = append(bound, p.Bound)
		t = p.Body
	}

	r := renamer{names: make(map[string]string)}
	body := r.rename(t)
	for _, name := range bound {
		r.name(name)
	}

	prefix := lo.Filter(r.order, func(name string, _ int) bool { return lo.Contains(bound, name) })
	for i := len(prefix) - 1; i >= 0; i-- {
		body = &Poly{Bound: r.names[prefix[i]], Body: body}
	}
	return body
}

type renamer struct {
	names map[string]string
	order []string
}

func (r *renamer) name(old string) string {
	if name, ok := r.names[old]; ok {
		return name
	}
	name := strconv.Itoa(len(r.order) + 1)
	r.names[old] = name
	r.order = append(r.order, old)
	return name
}

func (r *renamer) rename(t Type) Type {
	switch t := t.(type) {
	case *Var:
		return &Var{Name: r.name(t.Name)}
	case *Arrow:
		arg := r.rename(t.Arg)
		return &Arrow{Arg: arg, Return: r.rename(t.Return)}
	case *App:
		fn := r.rename(t.Func)
		return &App{Func: fn, Arg: r.rename(t.Arg)}
	case *List:
		return &List{Elem: r.rename(t.Elem)}
	case *Poly:
		bound := r.name(t.Bound)
		return &Poly{Bound: bound, Body: r.rename(t.Body)}
	}
	return t
}
