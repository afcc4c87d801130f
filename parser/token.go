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

import "strconv"

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	IDENT
	INT
	STRING
	UNDERSCORE

	// keywords
	TRUE
	FALSE
	IF
	THEN
	ELSE
	VAL
	VAR
	MATCH
	WITH
	CASE
	TFN

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
	COLON
	DOT

	PLUS
	MINUS
	STAR
	SLASH
	LT
	LE
	GT
	GE
	EQ
	NE
	AND
	OR
	CONS
	ASSIGN
	FATARROW
	ARROW
)

var tokenNames = [...]string{
	EOF:        "end of input",
	ILLEGAL:    "illegal character",
	IDENT:      "identifier",
	INT:        "integer",
	STRING:     "string",
	UNDERSCORE: "_",
	TRUE:       "True",
	FALSE:      "False",
	IF:         "if",
	THEN:       "then",
	ELSE:       "else",
	VAL:        "val",
	VAR:        "var",
	MATCH:      "match",
	WITH:       "with",
	CASE:       "case",
	TFN:        "tfn",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	LBRACKET:   "[",
	RBRACKET:   "]",
	SEMICOLON:  ";",
	COLON:      ":",
	DOT:        ".",
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	LT:         "<",
	LE:         "<=",
	GT:         ">",
	GE:         ">=",
	EQ:         "==",
	NE:         "!=",
	AND:        "&&",
	OR:         "||",
	CONS:       "::",
	ASSIGN:     "=",
	FATARROW:   "=>",
	ARROW:      "->",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "token(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenNames[t]
}

var keywords = map[string]TokenType{
	"True":  TRUE,
	"False": FALSE,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"val":   VAL,
	"var":   VAR,
	"match": MATCH,
	"with":  WITH,
	"case":  CASE,
	"tfn":   TFN,
	"_":     UNDERSCORE,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token is a lexeme with its position. Line and Column are 1-based.
type Token struct {
	Type TokenType
	// Literal is the source text of the token; for strings it is the unescaped value.
	Literal string
	Line    int
	Column  int
}

// describe renders the token for error messages.
func (t Token) describe() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier " + t.Literal
	case INT:
		return "integer " + t.Literal
	case STRING:
		return "string " + strconv.Quote(t.Literal)
	case ILLEGAL:
		return "illegal character " + strconv.Quote(t.Literal)
	}
	return "'" + t.Type.String() + "'"
}
