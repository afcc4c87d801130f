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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tv(name string) *Var { return &Var{Name: name} }
func arrow(arg, ret Type) *Arrow { return &Arrow{Arg: arg, Return: ret} }
func poly(bound string, body Type) *Poly { return &Poly{Bound: bound, Body: body} }

func TestVarName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"1", "a"},
		{"2", "b"},
		{"26", "z"},
		{"27", "aa"},
		{"28", "ab"},
		{"52", "az"},
		{"53", "ba"},
		{"702", "zz"},
		{"703", "aaa"},
		{"elem", "elem"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VarName(tt.name))
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"base", Int, "Int"},
		{"list", &List{Elem: Bool}, "[Bool]"},
		{"nested list", &List{Elem: &List{Elem: tv("1")}}, "[[a]]"},
		{"arrow", arrow(Int, Int), "Int -> Int"},
		{"right assoc", arrow(Int, arrow(Bool, String)), "Int -> Bool -> String"},
		{"left arrow", arrow(arrow(Int, Bool), Unit), "(Int -> Bool) -> Unit"},
		{"list of arrow", &List{Elem: arrow(Int, Int)}, "[Int -> Int]"},
		{"scheme", poly("1", arrow(tv("1"), tv("1"))), "a . a -> a"},
		{"nested scheme", poly("1", poly("2", arrow(tv("1"), tv("2")))), "a . b . a -> b"},
		{"scheme argument", arrow(poly("1", tv("1")), Int), "(a . a) -> Int"},
		{"application", &App{Func: tv("f"), Arg: Int}, "f Int"},
		{"application chain", &App{Func: &App{Func: tv("f"), Arg: Int}, Arg: Bool}, "f Int Bool"},
		{"application argument", &App{Func: tv("f"), Arg: &App{Func: tv("g"), Arg: Int}}, "f (g Int)"},
		{"application in arrow", arrow(&App{Func: tv("f"), Arg: Int}, Int), "f Int -> Int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeString(tt.typ))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(arrow(Int, &List{Elem: tv("1")}), arrow(&Const{Name: "Int"}, &List{Elem: tv("1")})))
	assert.False(t, Equal(arrow(Int, Int), arrow(Int, Bool)))
	assert.False(t, Equal(tv("1"), tv("2")))
	assert.False(t, Equal(Int, tv("1")))
	assert.False(t, Equal(&List{Elem: Int}, Int))
	assert.True(t, Equal(poly("1", tv("1")), poly("1", tv("1"))))
}

func TestOccurs(t *testing.T) {
	assert.True(t, Occurs("1", arrow(Int, &List{Elem: tv("1")})))
	assert.False(t, Occurs("2", arrow(Int, &List{Elem: tv("1")})))
	assert.False(t, Occurs("1", poly("1", tv("1"))))
	assert.True(t, Occurs("1", &App{Func: tv("2"), Arg: tv("1")}))
}

func TestReplace(t *testing.T) {
	in := arrow(tv("1"), &List{Elem: tv("2")})
	out := Replace(in, "2", Int)
	assert.Equal(t, "a -> [Int]", TypeString(out))
	assert.Equal(t, "a -> [b]", TypeString(in))

	// bound occurrences are not replaced
	scheme := poly("1", arrow(tv("1"), tv("2")))
	assert.Equal(t, "a . a -> Int", TypeString(Replace(scheme, "2", Int)))
	assert.Same(t, scheme, Replace(scheme, "1", Int))

	assert.Equal(t, "c -> [b]", TypeString(Rename(in, "1", "3")))
}

func TestSubstituteIsSimultaneous(t *testing.T) {
	swapped := Substitute(arrow(tv("1"), tv("2")), map[string]Type{"1": tv("2"), "2": tv("1")})
	assert.Equal(t, "b -> a", TypeString(swapped))
}

func TestVarNames(t *testing.T) {
	typ := arrow(tv("3"), arrow(tv("1"), &List{Elem: tv("3")}))
	assert.Equal(t, []string{"3", "1"}, VarNames(typ))
	assert.Equal(t, []string{"1"}, FreeVars(poly("3", typ)))
	assert.Equal(t, []string{"3", "1"}, VarNames(poly("3", typ)))
	assert.Empty(t, VarNames(arrow(Int, Bool)))
}

func TestQuantify(t *testing.T) {
	q := Quantify(arrow(tv("7"), arrow(tv("4"), tv("7"))))
	assert.Equal(t, "g . d . g -> d -> g", TypeString(q))
	assert.Same(t, Int, Quantify(Int))
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"monotype", arrow(Int, Int), "Int -> Int"},
		{"free variables", arrow(tv("9"), arrow(tv("4"), tv("9"))), "a -> b -> a"},
		{"prefix reordered", poly("4", poly("9", arrow(tv("9"), arrow(tv("4"), tv("9"))))), "a . b . a -> b -> a"},
		{"unused bound variable", poly("5", poly("9", arrow(tv("9"), tv("9")))), "a . b . a -> a"},
		{"annotation names", arrow(tv("elem"), tv("9")), "a -> b"},
		{"list", poly("12", &List{Elem: &List{Elem: tv("12")}}), "a . [[a]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Canonical(tt.typ)
			require.Equal(t, tt.want, TypeString(once))
			assert.True(t, Equal(once, Canonical(once)), "canonicalization must be idempotent")
		})
	}
}
