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

package polyval_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/polyval"
	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/parser"
)

type sourceCase struct {
	src  string
	want string
}

// rewritings of an expression which must not change its type
var sourceModifiers = []func(string) string{
	func(s string) string { return s },
	func(s string) string { return "(" + s + ")" },
	func(s string) string { return "if True then " + s + " else " + s },
	func(s string) string { return "{(" + s + ");}" },
	func(s string) string { return "match 0 with {\n  case _ => " + s + ";\n}" },
}

func plusChain(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(" + ")
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

// arithmetic rewritings which always produce an Int
var intModifiers = []func(string) string{
	func(s string) string { return "(" + s + ")" + plusChain(1) },
	func(s string) string { return "(" + s + ")" + plusChain(10) },
	func(s string) string { return "(" + s + ")" + plusChain(16) },
	func(s string) string { return "(" + s + ")" + plusChain(20) },
}

func alternatingChain(start, n int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(start))
	for i := 1; i <= n; i++ {
		if i%2 == 1 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

func nestBlocks(inner string, depth int) string {
	for i := 0; i < depth; i++ {
		inner = "({" + inner + ";})"
	}
	return inner
}

func sourceCorpus() []sourceCase {
	var cases []sourceCase
	add := func(want string, srcs ...string) {
		for _, src := range srcs {
			cases = append(cases, sourceCase{src, want})
		}
	}

	for _, chain := range []string{
		"1 + 1 - 1 + 2 - 3 + 4 - 5 + 6 - 7 + 8 - 9 + 10",
		alternatingChain(4, 20),
		alternatingChain(9, 40),
		alternatingChain(13, 51),
	} {
		for _, m := range intModifiers {
			add("Int", m(chain))
			for _, m2 := range intModifiers[:2] {
				add("Int", m2(m(chain)))
			}
		}
	}

	add("Int",
		"{\n  val x = 1;\n  x;\n}",
		"{ val x = 1; val y = 2; x + y; }",
		"{ val a = 1; val b = 2; val c = a + b; val d = c + 3; val e = d - 1; e * 2; }",
		"{ val a = 5; val b = 10; val c = a * b; val d = c - a; val e = d / 2; val f = e + 3; f - 1; }",
		"{ val x = 10; val y = 20; val z = 30; val result = x + y - z * x / y + z; val finalResult = result + 5 - x; finalResult; }",
		"{ val x = 1; val y = x + 1; val z = y + 2; val result = x + y + z; val finalResult = result * 2; finalResult - 1; }",
		"{ val x = 1; val y = 2; val z = 3; val a = 4; val b = 5; val c = x + y + z + a + b; val d = c * x - y / z + a - b; val e = d + 10; val f = e - 2; val g = if f < 10 then 1 else 0; g; }",
		"if True then 1 else 2",
		"if False then 1 else 2",
		"if True then 1 else 2 + 3",
		"{ val x = True; if x then 1 else 2; }",
		"{ val x = True; val y = False; val z = if x then 1 else 2; val a = if y then 3 else 4; val b = z + a; val c = b + 5; c; }",
		nestBlocks("(2)", 30),
	)
	add("Bool", "1 < 2", "1 > 2", "1 <= 2", "1 >= 2", "1 == 2", "1 != 2")
	add("Unit", "()", "(())", "((((()))))", "{();}", nestBlocks("()", 5), nestBlocks("()", 40))
	add("String", `""`, `"hello"`, `"a a a ahgkleakl gaefkaj eflk"`)

	add("a . [a]", "[]")
	add("[Int]", "1 :: []", "1 :: 2 :: 3 :: []", "1 :: 2 :: 3 :: 4 :: 5 :: []")
	add("a . [[a]]", "[] :: []")
	add("a . [[[a]]]", "([] :: []) :: []")
	add("a . [[[[a]]]]", "(([] :: []) :: []) :: []")

	add("a . a -> a", "x => x", "a => { val x = a; x; }")
	add("Int -> Int", "x => x + 1", "x => x"+plusChain(10))
	add("Int -> Int -> Int", "x => y => x + y", "a => b => { val x = a; val y = b; x + y; }")
	add("Int -> Int -> Int -> Int", "x => y => z => x + y + z", "a => b => c => { val x = a; val y = b; val z = c; x + y + z; }")
	add("Int -> Int -> Int -> Int -> Int -> Int -> Int -> Int -> Int -> Int -> Int",
		"x => y => z => a => b => c => d => e => f => g => x + y + z + a + b + c + d + e + f + g",
		"x => y => z => a => b => c => d => e => f => g => x + y + z + a + b + c + d + e + f + g"+plusChain(10))
	add("a . Bool -> a -> a -> a", "a => b => c => if a then b else c")
	add("Int -> Bool -> Int -> Int",
		"(a : Int) => b => (c : Int) => if b then a else c",
		"(a : Int) => (b : Bool) => (c : Int) => if b then a else c",
		"(a : Int) => (b : Bool) => (c : Int) => if b then a else c"+plusChain(20))

	add("Int",
		"{val x : Int = 1;val y : Int -> Int = x => x + 1;y x;}",
		"{ val x = { val y = 1; val z = 2; y + z; }; val a : Int = 3; x + a; }",
		"{ val a = 1; val b = 2; val c = 3; val d = 4; val e = 5; val f = aa => bb => cc => dd => ee => aa + bb + cc + dd + ee; f a b c d e; }",
		`{
			val a = 1;
			val b = 2 + a;
			val c = 3 + a + a + a + a * 2 * b;
			val d = {
				val c : Unit = ();
				5;
			};
			val e = {
				val z = 5;
				z;
			};
			val f = aa => bb => cc => dd => ee => aa + bb + cc + dd + ee;
			f a b c d e;
		}`,
	)
	add("Int -> Int",
		"{\n  val x : Int = 1;\n  val u: Unit = ();\n  val y : Int -> Int = x => x + 1;\n  y;\n}",
		"{ val f = (x : Int) => (y : Int) => x + y; f 1; }",
	)

	add("Int",
		"match 1 + 1 with { case 1 => 1; case 2 => 2; case 3 => 3; case 4 => 4; case 5 => 5; }",
		"match 1 + 1 with { case x => x; }",
	)
	add("Bool",
		"match [] with { case [] => True; case _ :: _ => False; }",
		"match 1 + 1 with {\n  case x => {\n    val isLess = x < 2;\n    if isLess then True else False;\n  };\n}",
	)
	add("Unit", "match [] with { case [] => (); case _ => (); }")

	return cases
}

func TestSourceCorpus(t *testing.T) {
	for _, c := range sourceCorpus() {
		for i, modify := range sourceModifiers {
			src := modify(c.src)
			expr, err := parser.ParseExpr(src)
			require.NoError(t, err, "modifier %d: %s", i, src)
			ty, err := NewContext().Infer(expr, NewStaticEnv())
			require.NoError(t, err, "modifier %d: %s", i, src)
			assert.Equal(t, c.want, Display(ty), "modifier %d: %s", i, src)
		}
	}
}

func TestSourceTypeErrors(t *testing.T) {
	srcs := []string{
		"1 + True",
		"if 1 then 2 else 3",
		"if True then 1 else \"one\"",
		"1 :: True :: []",
		"x => x x",
		"{ val f : Int -> Int = x => x; f True; }",
		"match 1 with { case True => 0; }",
		"(x : Bool) => x + 1",
		"y",
	}
	for _, src := range srcs {
		expr, err := parser.ParseExpr(src)
		require.NoError(t, err, src)
		_, err = NewContext().Infer(expr, NewStaticEnv())
		require.Error(t, err, src)
		assert.True(t, IsTypeError(err), src)
	}
}

func TestSourceDefinitions(t *testing.T) {
	ctx := NewContext()
	env := NewStaticEnv()
	for _, src := range []string{
		"val id = x => x",
		"val const = x => y => x",
		"val twice = f => x => f (f x)",
		"val n : Int = id 1",
	} {
		stmt, err := parser.ParseProgram(src)
		require.NoError(t, err, src)
		defn, ok := stmt.(*ast.Defn)
		require.True(t, ok, src)
		env, _, err = ctx.Define(defn, env)
		require.NoError(t, err, src)
	}

	want := map[string]string{
		"id":    "a . a -> a",
		"const": "a . b . a -> b -> a",
		"twice": "a . (a -> a) -> a -> a",
		"n":     "Int",
	}
	for name, display := range want {
		ty, ok := env.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, display, Display(ty), name)
	}

	expr, err := parser.ParseExpr("twice (const 1) 2")
	require.NoError(t, err)
	ty, err := ctx.Infer(expr, env)
	require.NoError(t, err)
	assert.Equal(t, "Int", Display(ty))
}
