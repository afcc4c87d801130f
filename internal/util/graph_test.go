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

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/wdamron/polyval/internal/util"
)

// 0 -> 1 -> 3
// 0 -> 2 -> 3
// 4 -> 0
func diamond() Graph {
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	g.AddEdge(4, 0)
	return g
}

func TestAddEdge(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	assert.Equal(t, []int{1, 2}, g[0])
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(2, 0))
	assert.Empty(t, g[1])
}

func TestTranspose(t *testing.T) {
	tr := diamond().Transpose()
	assert.Equal(t, Graph{{4}, {0}, {0}, {1, 2}, nil}, tr)
}

func TestPostOrder(t *testing.T) {
	g := diamond()
	assert.Equal(t, []int{3, 1, 2, 0}, g.PostOrder(0, false))
	assert.Equal(t, []int{0, 2, 1, 3}, g.PostOrder(0, true))
	assert.Equal(t, []int{3}, g.PostOrder(3, false))
	assert.Equal(t, []int{3, 1, 2, 0, 4}, g.PostOrder(4, false))
}

func TestReachable(t *testing.T) {
	g := diamond()
	assert.Equal(t, []bool{false, true, false, true, false}, g.Reachable(1))
	assert.Equal(t, []bool{false, true, true, true, false}, g.Reachable(1, 2))
	assert.Equal(t, []bool{true, true, true, true, true}, g.Reachable(4))
	assert.Equal(t, []bool{false, false, false, false, false}, g.Reachable())
}
