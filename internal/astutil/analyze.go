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

package astutil

import (
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/internal/util"
)

// Analysis finds the top-level definitions each statement of a program refers to.
//
// Statements are numbered by their position in the program. A reference to a variable resolves
// to the innermost binding in scope: a pattern bound by a function, a match case or a block
// definition shadows any top-level definition with the same name.
type Analysis struct {
	Scopes     map[string]int // map from variable to defining statement (or -1 for locally-bound variables)
	ScopeStash []StashedScope // shadowed variable-scope mappings
	Graph      util.Graph     // edges from each statement to the statements it refers to
	Free       []string       // variables referenced before any binding, in order of first reference
	Err        error

	current int
	free    *set.Set[string]
}

type StashedScope struct {
	Name  string
	Index int
	Bound bool
}

func (a *Analysis) Init() {
	a.Scopes = make(map[string]int, 32)
	a.free = set.New[string](8)
}

func (a *Analysis) Reset() {
	for v := range a.Scopes {
		delete(a.Scopes, v)
	}
	a.ScopeStash, a.Graph, a.Free, a.Err, a.current = a.ScopeStash[:0], nil, nil, nil, 0
	a.free = set.New[string](8)
}

// Analyze builds the dependency graph of a program.
func (a *Analysis) Analyze(stmts []ast.Expr) error {
	if a.Scopes == nil {
		a.Init()
	}
	a.Graph = util.NewGraph(len(stmts))
	for i, stmt := range stmts {
		if err := ast.Validate(stmt); err != nil {
			a.Err = errors.Wrapf(err, "statement %d", i+1)
			return a.Err
		}
		a.current = i
		if d, ok := stmt.(*ast.Defn); ok {
			a.analyzeExpr(d.Value)
			// Top-level definitions are never unstashed; a later definition replaces an earlier one.
			for _, name := range ast.PatNames(d.Pat) {
				a.Scopes[name] = i
			}
			continue
		}
		a.analyzeExpr(stmt)
	}
	return nil
}

// Live reports, for each statement, whether the statement at index root depends on it,
// directly or transitively. The root itself is live.
func (a *Analysis) Live(root int) []bool { return a.Graph.Reachable(root) }

// Dependencies returns the statements root depends on, directly or transitively, in program order.
func (a *Analysis) Dependencies(root int) []int {
	live := a.Live(root)
	var deps []int
	for i, ok := range live {
		if ok && i != root {
			deps = append(deps, i)
		}
	}
	return deps
}

// returns 1 after stashing the variable's current mapping
func (a *Analysis) stash(name string) int {
	index, bound := a.Scopes[name]
	a.ScopeStash = append(a.ScopeStash, StashedScope{name, index, bound})
	return 1
}

func (a *Analysis) unstash(count int) {
	if count <= 0 {
		return
	}
	stash := a.ScopeStash
	unstashed := 0
	for i := len(stash) - 1; unstashed < count && i >= 0; i, unstashed = i-1, unstashed+1 {
		if stash[i].Bound {
			a.Scopes[stash[i].Name] = stash[i].Index
		} else {
			delete(a.Scopes, stash[i].Name)
		}
	}
	a.ScopeStash = a.ScopeStash[0 : len(stash)-unstashed]
}

// bind the variables of a pattern as local variables, returning the number of stashed mappings
func (a *Analysis) bind(p ast.Pat) int {
	stashed := 0
	for _, name := range ast.PatNames(p) {
		stashed += a.stash(name)
		a.Scopes[name] = -1
	}
	return stashed
}

func (a *Analysis) analyzeExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.Identifier:
		index, ok := a.Scopes[expr.Name]
		if !ok {
			if a.free.Insert(expr.Name) {
				a.Free = append(a.Free, expr.Name)
			}
			return
		}
		if index >= 0 {
			a.Graph.AddEdge(a.current, index)
		}

	case *ast.BinOp:
		a.analyzeExpr(expr.Left)
		a.analyzeExpr(expr.Right)

	case *ast.Cons:
		a.analyzeExpr(expr.Head)
		a.analyzeExpr(expr.Tail)

	case *ast.If:
		a.analyzeExpr(expr.Cond)
		a.analyzeExpr(expr.Then)
		a.analyzeExpr(expr.Else)

	case *ast.Func:
		stashed := a.bind(expr.Pat)
		a.analyzeExpr(expr.Body)
		a.unstash(stashed)

	case *ast.App:
		a.analyzeExpr(expr.Func)
		a.analyzeExpr(expr.Arg)

	case *ast.Block:
		stashed := 0
		for _, stmt := range expr.Stmts {
			if d, ok := stmt.(*ast.Defn); ok {
				a.analyzeExpr(d.Value)
				stashed += a.bind(d.Pat)
				continue
			}
			a.analyzeExpr(stmt)
		}
		a.unstash(stashed)

	case *ast.Match:
		a.analyzeExpr(expr.Value)
		for _, c := range expr.Cases {
			stashed := a.bind(c.Pat)
			a.analyzeExpr(c.Body)
			a.unstash(stashed)
		}
	}
}

// Prune removes the top-level definitions the last statement of a program does not depend on.
// A program whose last statement is a definition is returned unchanged.
func Prune(stmts []ast.Expr) ([]ast.Expr, error) {
	if len(stmts) == 0 {
		return stmts, nil
	}
	root := len(stmts) - 1
	if _, ok := stmts[root].(*ast.Defn); ok {
		return stmts, nil
	}
	var a Analysis
	if err := a.Analyze(stmts); err != nil {
		return nil, err
	}
	live := a.Live(root)
	pruned := make([]ast.Expr, 0, len(stmts))
	for i, stmt := range stmts {
		if live[i] {
			pruned = append(pruned, stmt)
		}
	}
	return pruned, nil
}
