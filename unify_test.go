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

package polyval

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/polyval/construct"
	"github.com/wdamron/polyval/types"
)

func eq(left, right types.Type) types.Equation { return types.Equation{Left: left, Right: right} }

func TestUnify(t *testing.T) {
	tests := []struct {
		name    string
		eqs     []types.Equation
		resolve types.Type
		want    string
	}{
		{"empty", nil, TVar("1"), "a"},
		{"base types", []types.Equation{eq(types.Int, types.Int)}, types.Int, "Int"},
		{"variable", []types.Equation{eq(TVar("1"), types.Bool)}, TVar("1"), "Bool"},
		{"variable on the right", []types.Equation{eq(types.Bool, TVar("1"))}, TVar("1"), "Bool"},
		{"variable chain",
			[]types.Equation{eq(TVar("1"), TVar("2")), eq(TVar("2"), TVar("3")), eq(TVar("3"), types.String)},
			TVar("1"), "String"},
		{"functions",
			[]types.Equation{eq(TArrow(TVar("1"), types.Int), TArrow(types.Bool, TVar("2")))},
			TArrow(TVar("1"), TVar("2")), "Bool -> Int"},
		{"lists",
			[]types.Equation{eq(TList(TVar("1")), TList(TList(types.Int)))},
			TVar("1"), "[Int]"},
		{"applications",
			[]types.Equation{eq(TApp(TVar("f"), TVar("1")), TApp(TVar("g"), types.Int))},
			TApp(TVar("f"), TVar("1")), "g Int"},
		{"solution mentions later variables",
			[]types.Equation{eq(TVar("1"), TArrow(TVar("2"), TVar("3"))), eq(TVar("2"), types.Int), eq(TVar("3"), TList(TVar("2")))},
			TVar("1"), "Int -> [Int]"},
		{"unsolved variables remain",
			[]types.Equation{eq(TVar("1"), TArrow(TVar("2"), TVar("3"))), eq(TVar("3"), TVar("2"))},
			TVar("1"), "b -> b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Unify(tt.eqs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, types.TypeString(s.Resolve(tt.resolve)))
		})
	}
}

func TestUnifyCommutes(t *testing.T) {
	pairs := [][2]types.Type{
		{TVar("1"), TArrow(types.Int, TVar("2"))},
		{TArrow(TVar("1"), types.Int), TArrow(types.Bool, TVar("2"))},
		{TList(TVar("1")), TList(TArrow(TVar("2"), TVar("2")))},
		{TVar("1"), TVar("2")},
	}
	target := TArrow(TVar("1"), TVar("2"))
	for _, p := range pairs {
		forward, err := Unify([]types.Equation{eq(p[0], p[1])})
		require.NoError(t, err)
		backward, err := Unify([]types.Equation{eq(p[1], p[0])})
		require.NoError(t, err)

		a := types.Canonical(forward.Resolve(target))
		b := types.Canonical(backward.Resolve(target))
		assert.True(t, types.Equal(a, b), "%s vs %s", types.TypeString(a), types.TypeString(b))
	}
}

func TestUnifyRecordsSolvedPairs(t *testing.T) {
	s, err := Unify([]types.Equation{
		eq(TArrow(TVar("1"), TVar("2")), TArrow(types.Int, TVar("1"))),
	})
	require.NoError(t, err)
	pairs := s.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "a", types.TypeString(pairs[0].Left))
	assert.Equal(t, "Int", types.TypeString(pairs[0].Right))
	assert.Equal(t, "b", types.TypeString(pairs[1].Left))
	assert.Equal(t, "Int", types.TypeString(pairs[1].Right))

	solved, ok := s.Lookup("2")
	require.True(t, ok)
	assert.Same(t, types.Int, solved)
	_, ok = s.Lookup("3")
	assert.False(t, ok)
}

func TestUnifyFailures(t *testing.T) {
	t.Run("mismatched constructors", func(t *testing.T) {
		_, err := Unify([]types.Equation{eq(types.Int, TArrow(types.Bool, types.Bool))})
		var unifyErr *UnificationError
		require.ErrorAs(t, err, &unifyErr)
		assert.Equal(t, "Failed to unify Int with Bool -> Bool", err.Error())
	})

	t.Run("after substitution", func(t *testing.T) {
		_, err := Unify([]types.Equation{eq(TVar("1"), types.Int), eq(TVar("1"), types.String)})
		var unifyErr *UnificationError
		require.ErrorAs(t, err, &unifyErr)
		assert.Same(t, types.Int, unifyErr.Left)
		assert.Same(t, types.String, unifyErr.Right)
	})

	t.Run("list and function", func(t *testing.T) {
		_, err := Unify([]types.Equation{eq(TList(types.Int), TArrow(types.Int, types.Int))})
		require.Error(t, err)
	})

	t.Run("occurs check", func(t *testing.T) {
		_, err := Unify([]types.Equation{eq(TList(TVar("1")), TVar("1"))})
		var infinite *InfiniteTypeError
		require.ErrorAs(t, err, &infinite)
		assert.Equal(t, "1", infinite.Var.Name)
	})

	t.Run("indirect occurs check", func(t *testing.T) {
		_, err := Unify([]types.Equation{
			eq(TVar("1"), TList(TVar("2"))),
			eq(TVar("2"), TArrow(TVar("1"), types.Int)),
		})
		var infinite *InfiniteTypeError
		require.ErrorAs(t, err, &infinite)
	})
}

func TestUnifyLongChain(t *testing.T) {
	var eqs []types.Equation
	for i := 1; i < 2000; i++ {
		eqs = append(eqs, eq(TVar(strconv.Itoa(i)), TList(TVar(strconv.Itoa(i+1)))))
	}
	eqs = append(eqs, eq(TVar("2000"), types.Int))
	s, err := Unify(eqs)
	require.NoError(t, err)
	resolved := s.Resolve(TVar("1998"))
	assert.Equal(t, "[[Int]]", types.TypeString(resolved))
}
