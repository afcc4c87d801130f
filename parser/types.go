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
	"github.com/wdamron/polyval/types"
)

// a . T, tfn a -> T
func (p *Parser) parseType() (types.Type, error) {
	tok := p.peek()
	switch {
	case tok.Type == TFN:
		p.next()
		name, err := p.expect(IDENT, "after tfn")
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(ARROW, "after quantified variable"); err != nil {
			return nil, err
		}
		body, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &types.Poly{Bound: name.Literal, Body: body}, nil

	case tok.Type == IDENT && p.peekAt(1).Type == DOT:
		p.next()
		p.next()
		body, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &types.Poly{Bound: tok.Literal, Body: body}, nil
	}
	return p.parseArrowType()
}

// A -> B
func (p *Parser) parseArrowType() (types.Type, error) {
	arg, err := p.parseAppType()
	if err != nil {
		return nil, err
	}
	if !p.accept(ARROW) {
		return arg, nil
	}
	ret, err := p.parseArrowReturn()
	if err != nil {
		return nil, err
	}
	return &types.Arrow{Arg: arg, Return: ret}, nil
}

// The return type of an arrow may be quantified: `Int -> a . a -> a`.
func (p *Parser) parseArrowReturn() (types.Type, error) {
	if tok := p.peek(); tok.Type == TFN || tok.Type == IDENT && p.peekAt(1).Type == DOT {
		return p.parseType()
	}
	return p.parseArrowType()
}

// F A
func (p *Parser) parseAppType() (types.Type, error) {
	t, err := p.parseAtomType()
	if err != nil {
		return nil, err
	}
	for startsAtomType(p.peek().Type) {
		arg, err := p.parseAtomType()
		if err != nil {
			return nil, err
		}
		t = &types.App{Func: t, Arg: arg}
	}
	return t, nil
}

func startsAtomType(t TokenType) bool {
	return t == IDENT || t == LPAREN || t == LBRACKET
}

func (p *Parser) parseAtomType() (types.Type, error) {
	tok := p.next()
	switch tok.Type {
	case IDENT:
		switch tok.Literal {
		case "Int":
			return types.Int, nil
		case "Bool":
			return types.Bool, nil
		case "String":
			return types.String, nil
		case "Unit":
			return types.Unit, nil
		}
		return &types.Var{Name: tok.Literal}, nil
	case LPAREN:
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(RPAREN, "to close parenthesized type"); err != nil {
			return nil, err
		}
		return t, nil
	case LBRACKET:
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(RBRACKET, "to close list type"); err != nil {
			return nil, err
		}
		return &types.List{Elem: elem}, nil
	}
	return nil, p.errorf(tok, "expected a type, found %s", tok.describe())
}
