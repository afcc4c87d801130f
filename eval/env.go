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

package eval

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// Env maps names to values. Env is persistent: Set returns a new environment and leaves the
// receiver unchanged. The zero Env is empty.
type Env struct {
	m *immutable.SortedMap
}

// NewEnv returns an empty environment.
func NewEnv() Env { return Env{emptyMap} }

func (e Env) sorted() *immutable.SortedMap {
	if e.m == nil {
		return emptyMap
	}
	return e.m
}

// Get the value bound to name.
func (e Env) Get(name string) (Value, bool) {
	v, ok := e.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Set binds name to v, shadowing any previous binding of name.
func (e Env) Set(name string, v Value) Env {
	return Env{e.sorted().Set(name, v)}
}

// Get the number of bindings in the environment.
func (e Env) Len() int { return e.sorted().Len() }

// Iterate over bindings in the environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e Env) Range(f func(name string, v Value) bool) {
	iter := e.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Value)) {
			return
		}
	}
}
