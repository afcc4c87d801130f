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
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"

	"github.com/wdamron/polyval/types"
)

// StaticEnv is a persistent type-environment mapping identifiers to type-schemes.
//
// Bindings are kept in insertion order. Lookups scan from the most recent binding, so a later
// binding of a name shadows every earlier binding of the same name. Updates return a new
// environment and never modify the receiver, so an environment may be shared freely.
type StaticEnv struct {
	// Next unused type-variable id. Inference seeds its fresh-variable source from this value.
	NextVarID int

	entries *immutable.List // of envEntry
}

type envEntry struct {
	Name string
	Type types.Type
}

var emptyEntries = immutable.NewList()

// Create an empty type-environment. Fresh type-variables are numbered from 1.
func NewStaticEnv() *StaticEnv {
	return &StaticEnv{NextVarID: 1, entries: emptyEntries}
}

func (e *StaticEnv) list() *immutable.List {
	if e == nil || e.entries == nil {
		return emptyEntries
	}
	return e.entries
}

func (e *StaticEnv) nextVarID() int {
	if e == nil || e.NextVarID < 1 {
		return 1
	}
	return e.NextVarID
}

// Set returns a copy of e with name bound to t. The new binding shadows any existing binding of name.
func (e *StaticEnv) Set(name string, t types.Type) *StaticEnv {
	return &StaticEnv{NextVarID: e.nextVarID(), entries: e.list().Append(envEntry{name, t})}
}

// Get returns the type-scheme bound to name by the most recent binding.
func (e *StaticEnv) Get(name string) (types.Type, bool) {
	l := e.list()
	for i := l.Len() - 1; i >= 0; i-- {
		if entry := l.Get(i).(envEntry); entry.Name == name {
			return entry.Type, true
		}
	}
	return nil, false
}

// Len returns the number of bindings in e, including shadowed bindings.
func (e *StaticEnv) Len() int { return e.list().Len() }

// Range calls f for each binding in e, oldest first. Shadowed bindings are included.
// If f returns false, iteration will be stopped.
func (e *StaticEnv) Range(f func(name string, t types.Type) bool) {
	iter := e.list().Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		entry := v.(envEntry)
		if !f(entry.Name, entry.Type) {
			return
		}
	}
}

// Map returns a copy of e with f applied to every bound type-scheme.
func (e *StaticEnv) Map(f func(types.Type) types.Type) *StaticEnv {
	l := emptyEntries
	e.Range(func(name string, t types.Type) bool {
		l = l.Append(envEntry{name, f(t)})
		return true
	})
	return &StaticEnv{NextVarID: e.nextVarID(), entries: l}
}

// Types returns every bound type-scheme, oldest first.
func (e *StaticEnv) Types() []types.Type {
	ts := make([]types.Type, 0, e.Len())
	e.Range(func(_ string, t types.Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// Names returns the distinct names bound in e, sorted.
func (e *StaticEnv) Names() []string {
	seen := make(map[string]bool, e.Len())
	names := make([]string, 0, e.Len())
	e.Range(func(name string, _ types.Type) bool {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return true
	})
	slices.Sort(names)
	return names
}

// WithNextVarID returns a copy of e whose fresh type-variables will be numbered from id.
func (e *StaticEnv) WithNextVarID(id int) *StaticEnv {
	return &StaticEnv{NextVarID: id, entries: e.list()}
}

// Union returns an environment containing the bindings of both a and b. Bindings in a take
// priority over bindings of the same name in b.
func Union(a, b *StaticEnv) *StaticEnv {
	next := b.nextVarID()
	if an := a.nextVarID(); an > next {
		next = an
	}
	if a.Len() == 0 {
		return &StaticEnv{NextVarID: next, entries: b.list()}
	}
	l := b.list()
	a.Range(func(name string, t types.Type) bool {
		l = l.Append(envEntry{name, t})
		return true
	})
	return &StaticEnv{NextVarID: next, entries: l}
}
