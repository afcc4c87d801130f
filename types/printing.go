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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns a string representation of a Type.
//
// Base types print as `Int`, `Bool`, `String` and `Unit`, lists as `[T]`, functions as `A -> B`
// and schemes as `a . T`. Variables named by a positive decimal number print as lowercase
// letters (1 is `a`, 26 is `z`, 27 is `aa`); other variable names print unchanged.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// VarName returns the display name of a type-variable.
func VarName(name string) string {
	n, err := strconv.Atoi(name)
	if err != nil || n <= 0 {
		return name
	}
	return letters(n)
}

var _letters [64]string

func init() {
	for i := 1; i < len(_letters); i++ {
		_letters[i] = encodeLetters(i)
	}
}

func letters(n int) string {
	if n < len(_letters) {
		return _letters[n]
	}
	return encodeLetters(n)
}

// bijective base-26
func encodeLetters(n int) string {
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('a' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// simple is set when t appears where a compound type must be parenthesized.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		p.sb.WriteString(VarName(t.Name))

	case *List:
		p.sb.WriteByte('[')
		typeString(p, false, t.Elem)
		p.sb.WriteByte(']')

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		switch t.Arg.(type) {
		case *Arrow, *Poly:
			typeString(p, true, t.Arg)
		default:
			typeString(p, false, t.Arg)
		}
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *App:
		if simple {
			p.sb.WriteByte('(')
		}
		switch t.Func.(type) {
		case *Arrow, *Poly:
			typeString(p, true, t.Func)
		default:
			typeString(p, false, t.Func)
		}
		p.sb.WriteByte(' ')
		typeString(p, true, t.Arg)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Poly:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString(VarName(t.Bound))
		p.sb.WriteString(" . ")
		typeString(p, false, t.Body)
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
