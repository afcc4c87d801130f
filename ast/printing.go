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
	"strconv"
	"strings"

	"github.com/wdamron/polyval/types"
)

// ExprString returns a string representation of an expression in surface syntax.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, loosest, expr)
	return sb.String()
}

// PatString returns a string representation of a pattern in surface syntax.
func PatString(pat Pat) string {
	var sb strings.Builder
	patString(&sb, false, pat)
	return sb.String()
}

// Binding levels, tightest first.
const (
	atomLevel = iota + 1
	appLevel
	mulLevel
	addLevel
	relLevel
	andLevel
	orLevel
	consLevel
	loosest
)

func level(e Expr) int {
	switch e := e.(type) {
	case *App:
		return appLevel
	case *BinOp:
		switch {
		case e.Op == Times || e.Op == Divide:
			return mulLevel
		case e.Op == Plus || e.Op == Minus:
			return addLevel
		case e.Op.IsRelational():
			return relLevel
		case e.Op == And:
			return andLevel
		}
		return orLevel
	case *Cons:
		return consLevel
	case *Func, *If, *Match, *Defn:
		return loosest
	case *Number:
		if e.Value < 0 {
			return addLevel
		}
	}
	return atomLevel
}

func exprString(sb *strings.Builder, max int, e Expr) {
	if level(e) > max {
		sb.WriteByte('(')
		exprString(sb, loosest, e)
		sb.WriteByte(')')
		return
	}

	switch e := e.(type) {
	case *Number:
		if e.Value < 0 {
			sb.WriteString("0 - ")
			sb.WriteString(strconv.FormatUint(uint64(-e.Value), 10))
			return
		}
		sb.WriteString(strconv.FormatInt(e.Value, 10))

	case *String:
		sb.WriteString(QuoteString(e.Value))

	case *Boolean:
		sb.WriteString(boolSyntax(e.Value))

	case *Unit:
		sb.WriteString("()")

	case *Nil:
		sb.WriteString("[]")

	case *Identifier:
		sb.WriteString(e.Name)

	case *BinOp:
		l := level(e)
		exprString(sb, l, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		exprString(sb, l-1, e.Right)

	case *Cons:
		exprString(sb, consLevel-1, e.Head)
		sb.WriteString(" :: ")
		exprString(sb, consLevel, e.Tail)

	case *If:
		sb.WriteString("if ")
		exprString(sb, loosest, e.Cond)
		sb.WriteString(" then ")
		exprString(sb, loosest, e.Then)
		sb.WriteString(" else ")
		exprString(sb, loosest, e.Else)

	case *Func:
		if e.Annotation != nil {
			sb.WriteByte('(')
			patString(sb, false, e.Pat)
			sb.WriteString(" : ")
			sb.WriteString(types.TypeString(e.Annotation))
			sb.WriteByte(')')
		} else {
			patString(sb, true, e.Pat)
		}
		sb.WriteString(" => ")
		exprString(sb, loosest, e.Body)

	case *App:
		exprString(sb, appLevel, e.Func)
		sb.WriteByte(' ')
		exprString(sb, atomLevel, e.Arg)

	case *Block:
		sb.WriteByte('{')
		for _, stmt := range e.Stmts {
			sb.WriteByte(' ')
			exprString(sb, loosest, stmt)
			sb.WriteByte(';')
		}
		sb.WriteString(" }")

	case *Match:
		sb.WriteString("match ")
		exprString(sb, loosest, e.Value)
		sb.WriteString(" with {")
		for _, c := range e.Cases {
			sb.WriteString(" case ")
			patString(sb, false, c.Pat)
			sb.WriteString(" => ")
			exprString(sb, loosest, c.Body)
			sb.WriteByte(';')
		}
		sb.WriteString(" }")

	case *Defn:
		sb.WriteString(e.Kind.String())
		sb.WriteByte(' ')
		patString(sb, true, e.Pat)
		if e.Annotation != nil {
			sb.WriteString(" : ")
			sb.WriteString(types.TypeString(e.Annotation))
		}
		sb.WriteString(" = ")
		exprString(sb, loosest, e.Value)

	case nil:
		sb.WriteString("<nil>")
	}
}

// simple is set where only an atomic pattern may appear.
func patString(sb *strings.Builder, simple bool, p Pat) {
	switch p := p.(type) {
	case *NumberPat:
		sb.WriteString(strconv.FormatInt(p.Value, 10))
	case *StringPat:
		sb.WriteString(QuoteString(p.Value))
	case *BooleanPat:
		sb.WriteString(boolSyntax(p.Value))
	case *UnitPat:
		sb.WriteString("()")
	case *Wildcard:
		sb.WriteByte('_')
	case *IdPat:
		sb.WriteString(p.Name)
	case *NilPat:
		sb.WriteString("[]")
	case *ConsPat:
		if simple {
			sb.WriteByte('(')
		}
		patString(sb, true, p.Head)
		sb.WriteString(" :: ")
		patString(sb, false, p.Tail)
		if simple {
			sb.WriteByte(')')
		}
	case nil:
		sb.WriteString("<nil>")
	}
}

func boolSyntax(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// QuoteString returns s as a string literal, escaping quotes, backslashes, newlines and tabs.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
