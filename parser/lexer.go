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
	"strings"
	"unicode/utf8"
)

// Lexer splits source text into tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int

	err *SyntaxError
}

// NewLexer returns a Lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) atEnd() bool { return l.position >= len(l.input) }

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for !l.atEnd() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// Err returns the first lexical error, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// NextToken scans the next token. At the end of input it returns EOF repeatedly.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Line: l.line, Column: l.column}
	if l.atEnd() {
		tok.Type = EOF
		return tok
	}

	two := func(t TokenType, lit string) Token {
		l.readChar()
		l.readChar()
		tok.Type, tok.Literal = t, lit
		return tok
	}
	one := func(t TokenType) Token {
		tok.Type, tok.Literal = t, string(l.ch)
		l.readChar()
		return tok
	}

	switch l.ch {
	case '=':
		switch l.peekChar() {
		case '=':
			return two(EQ, "==")
		case '>':
			return two(FATARROW, "=>")
		}
		return one(ASSIGN)
	case '-':
		if l.peekChar() == '>' {
			return two(ARROW, "->")
		}
		return one(MINUS)
	case '<':
		if l.peekChar() == '=' {
			return two(LE, "<=")
		}
		return one(LT)
	case '>':
		if l.peekChar() == '=' {
			return two(GE, ">=")
		}
		return one(GT)
	case '!':
		if l.peekChar() == '=' {
			return two(NE, "!=")
		}
	case '&':
		if l.peekChar() == '&' {
			return two(AND, "&&")
		}
	case '|':
		if l.peekChar() == '|' {
			return two(OR, "||")
		}
	case ':':
		if l.peekChar() == ':' {
			return two(CONS, "::")
		}
		return one(COLON)
	case '+':
		return one(PLUS)
	case '*':
		return one(STAR)
	case '/':
		return one(SLASH)
	case '(':
		return one(LPAREN)
	case ')':
		return one(RPAREN)
	case '{':
		return one(LBRACE)
	case '}':
		return one(RBRACE)
	case '[':
		return one(LBRACKET)
	case ']':
		return one(RBRACKET)
	case ';':
		return one(SEMICOLON)
	case '.':
		return one(DOT)
	case '"':
		return l.readString(tok)
	default:
		if isLetter(l.ch) {
			start := l.position
			for isLetter(l.ch) || isDigit(l.ch) {
				l.readChar()
			}
			tok.Literal = l.input[start:l.position]
			tok.Type = LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			start := l.position
			for isDigit(l.ch) {
				l.readChar()
			}
			tok.Type, tok.Literal = INT, l.input[start:l.position]
			return tok
		}
	}

	tok = one(ILLEGAL)
	l.fail(tok.Line, tok.Column, "unexpected character "+quoteRune(tok.Literal), false)
	return tok
}

func (l *Lexer) readString(tok Token) Token {
	var sb strings.Builder
	l.readChar() // opening quote
	for {
		if l.atEnd() {
			l.fail(tok.Line, tok.Column, "unterminated string literal", true)
			tok.Type, tok.Literal = ILLEGAL, sb.String()
			return tok
		}
		switch l.ch {
		case '"':
			l.readChar()
			tok.Type, tok.Literal = STRING, sb.String()
			return tok
		case '\\':
			line, col := l.line, l.column
			l.readChar()
			switch l.ch {
			case '"', '\\':
				sb.WriteRune(l.ch)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				if l.atEnd() {
					continue
				}
				l.fail(line, col, "invalid escape sequence \\"+string(l.ch), false)
				sb.WriteRune(l.ch)
			}
			l.readChar()
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) fail(line, col int, msg string, incomplete bool) {
	if l.err == nil {
		l.err = &SyntaxError{Line: line, Column: col, Msg: msg, Incomplete: incomplete}
	}
}

// Tokenize scans all of input. The returned slice always ends with an EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks, l.Err()
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func quoteRune(s string) string { return "'" + s + "'" }
