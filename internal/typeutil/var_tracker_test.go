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

package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarTracker(t *testing.T) {
	vt := VarTracker{NextId: 1}
	a, b := vt.New(), vt.New()
	assert.Equal(t, "1", a.Name)
	assert.Equal(t, "2", b.Name)
	assert.Equal(t, 2, vt.Count())

	vs := vt.NewList(3)
	assert.Len(t, vs, 3)
	assert.Equal(t, "5", vs[2].Name)

	vt.Reset()
	assert.Equal(t, 0, vt.Count())
	assert.Equal(t, "6", vt.New().Name)

	vt.Skip("3", "elem", "41")
	assert.Equal(t, 42, vt.NextId)
	vt.Skip("7")
	assert.Equal(t, 42, vt.NextId)
}
