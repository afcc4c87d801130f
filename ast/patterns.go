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

// Pat is the base for all patterns.
type Pat interface {
	// Name of the syntax-type of the pattern.
	PatName() string
}

var (
	_ Pat = (*NumberPat)(nil)
	_ Pat = (*StringPat)(nil)
	_ Pat = (*BooleanPat)(nil)
	_ Pat = (*UnitPat)(nil)
	_ Pat = (*Wildcard)(nil)
	_ Pat = (*IdPat)(nil)
	_ Pat = (*ConsPat)(nil)
	_ Pat = (*NilPat)(nil)
)

// Integer literal pattern: `2`
type NumberPat struct {
	Value int64
}

func (p *NumberPat) PatName() string { return "NumberPat" }

// String literal pattern: `"a"`
type StringPat struct {
	Value string
}

func (p *StringPat) PatName() string { return "StringPat" }

// Boolean literal pattern: `True`
type BooleanPat struct {
	Value bool
}

func (p *BooleanPat) PatName() string { return "BooleanPat" }

// Unit pattern: `()`
type UnitPat struct{}

func (p *UnitPat) PatName() string { return "UnitPat" }

// Wildcard pattern: `_`
type Wildcard struct{}

func (p *Wildcard) PatName() string { return "Wildcard" }

// Identifier pattern: `x`
type IdPat struct {
	Name string
}

func (p *IdPat) PatName() string { return "IdPat" }

// Cons pattern: `x :: xs`
type ConsPat struct {
	Head Pat
	Tail Pat
}

func (p *ConsPat) PatName() string { return "ConsPat" }

// Empty-list pattern: `[]`
type NilPat struct{}

func (p *NilPat) PatName() string { return "NilPat" }

// IsLiteral reports whether p is a literal pattern.
func IsLiteral(p Pat) bool {
	switch p.(type) {
	case *NumberPat, *StringPat, *BooleanPat, *UnitPat:
		return true
	}
	return false
}

// PatNames returns the identifiers bound by p, in order.
func PatNames(p Pat) []string {
	var names []string
	WalkPat(p, func(p Pat) {
		if id, ok := p.(*IdPat); ok {
			names = append(names, id.Name)
		}
	})
	return names
}
