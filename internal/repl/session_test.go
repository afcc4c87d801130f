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

package repl

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyval"
	"github.com/wdamron/polyval/eval"
)

func mustEval(t *testing.T, s *Session, input string) *Result {
	t.Helper()
	res, err := s.Eval(input)
	require.NoError(t, err, input)
	return res
}

func TestSessionExpressions(t *testing.T) {
	s := New()
	assert.Equal(t, "3 : Int", mustEval(t, s, "1 + 2").String())
	assert.Equal(t, "<fun> : a . a -> a", mustEval(t, s, "x => x").String())
	assert.Equal(t, "[1, 2] : [Int]", mustEval(t, s, "1 :: 2 :: [];").String())
	assert.Equal(t, "3 : Int", mustEval(t, s, "{ val f = x => x + 1; f 2; }").String())
}

func TestSessionDefinitions(t *testing.T) {
	s := New()
	res := mustEval(t, s, "val id = x => x")
	assert.Equal(t, "id : a . a -> a = <fun>", res.String())
	require.NotNil(t, res.Definition)

	assert.Equal(t, "n : Int = 5", mustEval(t, s, "val n = id 5").String())
	assert.Equal(t, `s : String = "a"`, mustEval(t, s, `val s = id "a"`).String())
	assert.Equal(t, "6 : Int", mustEval(t, s, "n + 1").String())

	assert.Equal(t, "n : Bool = True", mustEval(t, s, "val n = True").String())
	assert.Equal(t, "True : Bool", mustEval(t, s, "n").String())

	v, ok := s.Values().Get("n")
	require.True(t, ok)
	assert.Equal(t, eval.Bool(true), v)
}

func TestSessionFailedDefinitionKeepsState(t *testing.T) {
	s := New()
	mustEval(t, s, "val x = 1")
	static, values := s.StaticEnv(), s.Values()

	// type error
	_, err := s.Eval("val x = 1 + True")
	require.Error(t, err)
	assert.True(t, polyval.IsTypeError(err))

	// runtime error
	_, err = s.Eval("val y = 1 / 0")
	require.Error(t, err)
	assert.True(t, eval.IsRuntimeError(err))

	// pattern mismatch at runtime
	_, err = s.Eval("val 2 = x + 0")
	require.Error(t, err)

	assert.Same(t, static, s.StaticEnv())
	assert.Equal(t, values, s.Values())
	assert.Equal(t, "1 : Int", mustEval(t, s, "x").String())
	_, err = s.Eval("y")
	assert.Error(t, err)
}

func TestSessionCommands(t *testing.T) {
	s := New()
	assert.Equal(t, "(no definitions)", mustEval(t, s, ":env").String())

	mustEval(t, s, "val const = x => y => x")
	mustEval(t, s, "val b = True")
	assert.Equal(t, "b : Bool\nconst : a . b . a -> b -> a", mustEval(t, s, ":env").String())

	res := mustEval(t, s, ":type const 1")
	assert.Equal(t, "a . a -> Int", res.String())
	assert.Nil(t, res.Value)

	dump := mustEval(t, s, ":ast 1 + 2").String()
	assert.Contains(t, dump, "ast.BinOp")
	assert.Contains(t, dump, "ast.Number")

	assert.Equal(t, Help, mustEval(t, s, ":help").String())
	assert.True(t, mustEval(t, s, ":quit").Quit)

	_, err := s.Eval(":frobnicate")
	assert.EqualError(t, err, "Unknown command :frobnicate; type :help for a list of commands")

	_, err = s.Eval(":type 1 + True")
	assert.Error(t, err)
}

func TestSessionPreludeAndReset(t *testing.T) {
	s := New()
	require.NoError(t, s.LoadPrelude([]string{"val id = x => x", "val twice = f => x => f (f x)"}))
	assert.Equal(t, "3 : Int", mustEval(t, s, "twice (x => x + 1) 1").String())

	mustEval(t, s, "val extra = 1")
	assert.Equal(t, "Session reset", mustEval(t, s, ":reset").String())
	_, err := s.Eval("extra")
	assert.Error(t, err)
	assert.Equal(t, "2 : Int", mustEval(t, s, "id 2").String())

	assert.Error(t, New().LoadPrelude([]string{"1 + 1"}))
	assert.Error(t, New().LoadPrelude([]string{"val x = y"}))
}

func TestSessionLogger(t *testing.T) {
	var buf bytes.Buffer
	s := New()
	s.SetLogger(log.New(&buf, "", 0))
	mustEval(t, s, "val id = x => x")
	assert.Contains(t, buf.String(), "define id : a . a -> a")
}

func TestIncomplete(t *testing.T) {
	assert.True(t, Incomplete("{ val x = 1;"))
	assert.True(t, Incomplete("if True then 1"))
	assert.True(t, Incomplete("match x with {"))
	assert.False(t, Incomplete("1 + 1"))
	assert.False(t, Incomplete("1 )"))
	assert.False(t, Incomplete(""))
	assert.False(t, Incomplete(":type {"))
}

func TestComplete(t *testing.T) {
	s := New()
	mustEval(t, s, "val twice = f => x => f (f x)")
	mustEval(t, s, "val two = 2")
	assert.Equal(t, []string{"twice", "two"}, s.Complete("tw"))
	assert.Equal(t, []string{"twice (twice", "twice (two"}, s.Complete("twice (tw"))
	assert.Equal(t, []string{":type"}, s.Complete(":ty"))
	assert.Empty(t, s.Complete(""))
}
