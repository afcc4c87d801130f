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

package parser

import (
	"strconv"

	"github.com/wdamron/polyval/ast"
)

// p :: p
func (p *Parser) parsePattern() (ast.Pat, error) {
	head, err := p.parsePatternAtom()
	if err != nil {
		return nil, err
	}
	if !p.accept(CONS) {
		return head, nil
	}
	tail, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	return &ast.ConsPat{Head: head, Tail: tail}, nil
}

func (p *Parser) parsePatternAtom() (ast.Pat, error) {
	tok := p.next()
	switch tok.Type {
	case INT:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "integer literal %s is out of range", tok.Literal)
		}
		return &ast.NumberPat{Value: n}, nil
	case STRING:
		return &ast.StringPat{Value: tok.Literal}, nil
	case TRUE:
		return &ast.BooleanPat{Value: true}, nil
	case FALSE:
		return &ast.BooleanPat{Value: false}, nil
	case UNDERSCORE:
		return &ast.Wildcard{}, nil
	case IDENT:
		return &ast.IdPat{Name: tok.Literal}, nil
	case LBRACKET:
		if _, err := p.expect(RBRACKET, "in empty-list pattern"); err != nil {
			return nil, err
		}
		return &ast.NilPat{}, nil
	case LPAREN:
		if p.accept(RPAREN) {
			return &ast.UnitPat{}, nil
		}
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(RPAREN, "to close parenthesized pattern"); err != nil {
			return nil, err
		}
		return pat, nil
	}
	return nil, p.errorf(tok, "expected a pattern, found %s", tok.describe())
}
