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

// Package compile translates expressions into JavaScript source code.
//
// Integers compile to numbers, lists to nested `{ head, tail }` objects terminated by `null`, and
// the unit value to `undefined`. Blocks and matches compile to immediately-invoked arrow
// functions, so every expression compiles to a JavaScript expression.
package compile

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wdamron/polyval/ast"
)

// Runtime is the JavaScript helper used by Program to print the result of a program.
const Runtime = `const $show = (v) => {
  if (v === undefined) return "()";
  if (v === null) return "[]";
  if (typeof v === "boolean") return v ? "True" : "False";
  if (typeof v === "string") return JSON.stringify(v);
  if (typeof v === "function") return "<fun>";
  if (typeof v === "object") {
    const xs = [];
    for (let l = v; l !== null; l = l.tail) xs.push($show(l.head));
    return "[" + xs.join(", ") + "]";
  }
  return String(v);
};
`

// Expr compiles expr into a JavaScript expression.
func Expr(expr ast.Expr) (string, error) {
	if err := ast.Validate(expr); err != nil {
		return "", err
	}
	if d, ok := expr.(*ast.Defn); ok {
		return "", errors.Errorf("Cannot compile the definition of %s as an expression", ast.PatString(d.Pat))
	}
	return newCompiler().expr(expr, nil)
}

// Program compiles a sequence of top-level definitions followed by an optional result
// expression. The output is a script which defines each binding and prints the result.
func Program(defns []*ast.Defn, result ast.Expr) (string, error) {
	c := newCompiler()
	var sb strings.Builder
	sb.WriteString("\"use strict\";\n")
	sb.WriteString(Runtime)

	var sc *scope
	for _, d := range defns {
		if err := ast.Validate(d); err != nil {
			return "", err
		}
		stmt, next, err := c.defn(d, sc)
		if err != nil {
			return "", err
		}
		sc = next
		sb.WriteString(stmt)
		sb.WriteByte('\n')
	}
	if result != nil {
		if err := ast.Validate(result); err != nil {
			return "", err
		}
		js, err := c.expr(result, sc)
		if err != nil {
			return "", err
		}
		sb.WriteString("console.log($show(")
		sb.WriteString(js)
		sb.WriteString("));\n")
	}
	return sb.String(), nil
}

// scope maps source names to the JavaScript names of their bindings.
type scope struct {
	name   string
	js     string
	parent *scope
}

func (s *scope) bind(name, js string) *scope { return &scope{name: name, js: js, parent: s} }

func (s *scope) lookup(name string) (string, bool) {
	for ; s != nil; s = s.parent {
		if s.name == name {
			return s.js, true
		}
	}
	return "", false
}

type compiler struct {
	// bindings minted per source name
	names map[string]int
	temps int
}

func newCompiler() *compiler { return &compiler{names: make(map[string]int)} }

// fresh returns a JavaScript name for a new binding of name, distinct from every other binding
// in the program.
func (c *compiler) fresh(name string) string {
	n := c.names[name]
	c.names[name] = n + 1
	if n == 0 {
		return mangle(name)
	}
	return mangle(name) + "$" + strconv.Itoa(n)
}

func (c *compiler) temp() string {
	t := "$" + strconv.Itoa(c.temps)
	c.temps++
	return t
}

func (c *compiler) expr(e ast.Expr, sc *scope) (string, error) {
	switch e := e.(type) {
	case *ast.Number:
		if e.Value < 0 {
			return "(" + strconv.FormatInt(e.Value, 10) + ")", nil
		}
		return strconv.FormatInt(e.Value, 10), nil

	case *ast.String:
		return strconv.Quote(e.Value), nil

	case *ast.Boolean:
		return strconv.FormatBool(e.Value), nil

	case *ast.Unit:
		return "undefined", nil

	case *ast.Nil:
		return "null", nil

	case *ast.Identifier:
		if js, ok := sc.lookup(e.Name); ok {
			return js, nil
		}
		return mangle(e.Name), nil

	case *ast.BinOp:
		l, err := c.expr(e.Left, sc)
		if err != nil {
			return "", err
		}
		r, err := c.expr(e.Right, sc)
		if err != nil {
			return "", err
		}
		switch e.Op {
		case ast.Divide:
			return "Math.trunc(" + l + " / " + r + ")", nil
		case ast.Equal:
			return "(" + l + " === " + r + ")", nil
		case ast.NotEqual:
			return "(" + l + " !== " + r + ")", nil
		}
		return "(" + l + " " + e.Op.String() + " " + r + ")", nil

	case *ast.Cons:
		h, err := c.expr(e.Head, sc)
		if err != nil {
			return "", err
		}
		t, err := c.expr(e.Tail, sc)
		if err != nil {
			return "", err
		}
		return "{ head: " + h + ", tail: " + t + " }", nil

	case *ast.If:
		cond, err := c.expr(e.Cond, sc)
		if err != nil {
			return "", err
		}
		then, err := c.expr(e.Then, sc)
		if err != nil {
			return "", err
		}
		els, err := c.expr(e.Else, sc)
		if err != nil {
			return "", err
		}
		return "(" + cond + " ? " + then + " : " + els + ")", nil

	case *ast.Func:
		return c.function(e, sc)

	case *ast.App:
		fn, err := c.expr(e.Func, sc)
		if err != nil {
			return "", err
		}
		arg, err := c.expr(e.Arg, sc)
		if err != nil {
			return "", err
		}
		switch e.Func.(type) {
		case *ast.Identifier, *ast.App, *ast.Func, *ast.If, *ast.Block, *ast.Match:
		default:
			fn = "(" + fn + ")"
		}
		return fn + "(" + arg + ")", nil

	case *ast.Block:
		var sb strings.Builder
		sb.WriteString("(() => {")
		last := len(e.Stmts) - 1
		for _, stmt := range e.Stmts[:last] {
			sb.WriteByte(' ')
			if d, ok := stmt.(*ast.Defn); ok {
				js, next, err := c.defn(d, sc)
				if err != nil {
					return "", err
				}
				sc = next
				sb.WriteString(js)
				continue
			}
			js, err := c.expr(stmt, sc)
			if err != nil {
				return "", err
			}
			sb.WriteString(js)
			sb.WriteByte(';')
		}
		js, err := c.expr(e.Stmts[last], sc)
		if err != nil {
			return "", err
		}
		sb.WriteString(" return ")
		sb.WriteString(js)
		sb.WriteString("; })()")
		return sb.String(), nil

	case *ast.Match:
		v, err := c.expr(e.Value, sc)
		if err != nil {
			return "", err
		}
		tmp := c.temp()
		var sb strings.Builder
		sb.WriteString("((" + tmp + ") => {")
		for _, mc := range e.Cases {
			tests, binds, inner := c.pattern(mc.Pat, tmp, sc)
			body, err := c.expr(mc.Body, inner)
			if err != nil {
				return "", err
			}
			sb.WriteByte(' ')
			if len(tests) > 0 {
				sb.WriteString("if (" + strings.Join(tests, " && ") + ") ")
			}
			sb.WriteString("{ " + binds + "return " + body + "; }")
		}
		sb.WriteString(" throw new Error(\"No case matches\"); })(" + v + ")")
		return sb.String(), nil

	case *ast.Defn:
		return "", errors.Errorf("Definition of %s is only allowed as a block statement", ast.PatString(e.Pat))

	case nil:
		return "", errors.New("Empty expression")
	}
	return "", errors.Errorf("Cannot compile expression %s", e.ExprName())
}

func (c *compiler) function(f *ast.Func, sc *scope) (string, error) {
	switch p := f.Pat.(type) {
	case *ast.IdPat:
		js := c.fresh(p.Name)
		body, err := c.expr(f.Body, sc.bind(p.Name, js))
		if err != nil {
			return "", err
		}
		return "((" + js + ") => " + arrowBody(body) + ")", nil
	case *ast.Wildcard:
		body, err := c.expr(f.Body, sc)
		if err != nil {
			return "", err
		}
		return "((" + c.temp() + ") => " + arrowBody(body) + ")", nil
	}

	tmp := c.temp()
	tests, binds, inner := c.pattern(f.Pat, tmp, sc)
	body, err := c.expr(f.Body, inner)
	if err != nil {
		return "", err
	}
	return "((" + tmp + ") => { " + guard(tests) + binds + "return " + body + "; })", nil
}

// defn compiles a definition into statements and returns the scope extended with its bindings.
func (c *compiler) defn(d *ast.Defn, sc *scope) (string, *scope, error) {
	v, err := c.expr(d.Value, sc)
	if err != nil {
		return "", nil, err
	}
	if id, ok := d.Pat.(*ast.IdPat); ok {
		js := c.fresh(id.Name)
		return "const " + js + " = " + v + ";", sc.bind(id.Name, js), nil
	}
	tmp := c.temp()
	tests, binds, inner := c.pattern(d.Pat, tmp, sc)
	return strings.TrimSuffix("const "+tmp+" = "+v+"; "+guard(tests)+binds, " "), inner, nil
}

// pattern returns the conditions under which the value at path matches p, and the
// declarations for the names p binds.
func (c *compiler) pattern(p ast.Pat, path string, sc *scope) ([]string, string, *scope) {
	var (
		tests []string
		binds strings.Builder
	)
	var walk func(p ast.Pat, path string)
	walk = func(p ast.Pat, path string) {
		switch p := p.(type) {
		case *ast.IdPat:
			js := c.fresh(p.Name)
			sc = sc.bind(p.Name, js)
			binds.WriteString("const " + js + " = " + path + "; ")
		case *ast.NumberPat:
			tests = append(tests, path+" === "+strconv.FormatInt(p.Value, 10))
		case *ast.StringPat:
			tests = append(tests, path+" === "+strconv.Quote(p.Value))
		case *ast.BooleanPat:
			tests = append(tests, path+" === "+strconv.FormatBool(p.Value))
		case *ast.NilPat:
			tests = append(tests, path+" === null")
		case *ast.ConsPat:
			tests = append(tests, path+" !== null")
			walk(p.Head, path+".head")
			walk(p.Tail, path+".tail")
		}
	}
	walk(p, path)
	return tests, binds.String(), sc
}

func guard(tests []string) string {
	if len(tests) == 0 {
		return ""
	}
	return "if (!(" + strings.Join(tests, " && ") + ")) throw new Error(\"Pattern match failure\"); "
}

// An object literal must be parenthesized to be the body of an arrow function.
func arrowBody(body string) string {
	if strings.HasPrefix(body, "{") {
		return "(" + body + ")"
	}
	return body
}

var reserved = map[string]bool{
	"arguments": true, "await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "eval": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true, "new": true, "null": true,
	"package": true, "private": true, "protected": true, "public": true, "return": true,
	"static": true, "super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "undefined": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true, "NaN": true, "Infinity": true, "Math": true, "console": true,
}

// mangle renames identifiers which would clash with JavaScript keywords or globals.
func mangle(name string) string {
	if reserved[name] {
		return name + "$"
	}
	return name
}
