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

package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyval/ast"
	. "github.com/wdamron/polyval/construct"
	"github.com/wdamron/polyval/parser"
)

func TestExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"7 / 2", "Math.trunc(7 / 2)"},
		{"1 == 2", "(1 === 2)"},
		{"a != b", "(a !== b)"},
		{"True && False || x", "((true && false) || x)"},
		{`"a\"b"`, `"a\"b"`},
		{"()", "undefined"},
		{"[]", "null"},
		{"1 :: []", "{ head: 1, tail: null }"},
		{"x => x", "((x) => x)"},
		{"_ => 1", "(($0) => 1)"},
		{"x => 1 :: []", "((x) => ({ head: 1, tail: null }))"},
		{"x => y => x + y", "((x) => ((y) => (x + y)))"},
		{"f 1 2", "f(1)(2)"},
		{"(x => x) 1", "((x) => x)(1)"},
		{"if True then \"a\" else \"b\"", `(true ? "a" : "b")`},
		{"new", "new$"},
		{"{ val x = 1; val x = x + 1; x; }", "(() => { const x = 1; const x$1 = (x + 1); return x$1; })()"},
		{"{ f 1; 2; }", "(() => { f(1); return 2; })()"},
		{"x => { val x = x; x; }", "((x) => (() => { const x$1 = x; return x$1; })())"},
		{"{ val () = (); 1; }", "(() => { const $0 = undefined; return 1; })()"},
		{"{ val 1 = n; 1; }", `(() => { const $0 = n; if (!($0 === 1)) throw new Error("Pattern match failure"); return 1; })()`},
		{"(h :: t) => h",
			`(($0) => { if (!($0 !== null)) throw new Error("Pattern match failure"); const h = $0.head; const t = $0.tail; return h; })`},
		{"match xs with { case [] => 0; case x :: _ => x; }",
			`(($0) => { if ($0 === null) { return 0; } if ($0 !== null) { const x = $0.head; return x; } throw new Error("No case matches"); })(xs)`},
		{"match 1 with { case _ => 2; }",
			`(($0) => { { return 2; } throw new Error("No case matches"); })(1)`},
		{"match b with { case True => \"t\"; case False => \"f\"; }",
			`(($0) => { if ($0 === true) { return "t"; } if ($0 === false) { return "f"; } throw new Error("No case matches"); })(b)`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := parser.ParseExpr(tt.src)
			require.NoError(t, err)
			js, err := Expr(e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, js)
		})
	}
}

func TestExprNegativeNumber(t *testing.T) {
	js, err := Expr(Sub(Num(1), Num(-5)))
	require.NoError(t, err)
	assert.Equal(t, "(1 - (-5))", js)
}

func TestExprErrors(t *testing.T) {
	_, err := Expr(Block())
	assert.EqualError(t, err, "Empty block")

	_, err = Expr(Block(Val1("x", Num(1))))
	assert.Error(t, err)

	_, err = Expr(Val1("x", Num(1)))
	assert.EqualError(t, err, "Cannot compile the definition of x as an expression")

	_, err = Expr(Add(Num(1), Val1("x", Num(1))))
	assert.Error(t, err)
}

func TestProgram(t *testing.T) {
	defns := []*ast.Defn{
		Val1("id", Func1("x", Var("x"))),
		Val1("n", Call(Var("id"), Num(1))),
		Val1("n", Add(Var("n"), Num(1))),
	}
	js, err := Program(defns, Mul(Var("n"), Num(2)))
	require.NoError(t, err)

	assert.Contains(t, js, Runtime)
	assert.Contains(t, js, "const id = ((x) => x);\n")
	assert.Contains(t, js, "const n = id(1);\n")
	assert.Contains(t, js, "const n$1 = (n + 1);\n")
	assert.Contains(t, js, "console.log($show((n$1 * 2)));\n")

	js, err = Program(defns[:1], nil)
	require.NoError(t, err)
	assert.NotContains(t, js, "console.log")
}
