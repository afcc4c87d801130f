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
	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/wdamron/polyval/types"
)

// Generalize solves eqs, resolves t through the solution, and binds every type-variable of the
// resolved type which is not free in the (resolved) environment. Each generalized variable is
// replaced by a fresh variable; the first replacement is bound innermost.
func (ti *InferenceContext) Generalize(eqs []types.Equation, env *StaticEnv, t types.Type) (types.Type, error) {
	ti.continueFrom(env)
	scheme, err := ti.generalize(eqs, env, t)
	if err != nil {
		ti.err = err
	}
	return scheme, err
}

func (ti *InferenceContext) generalize(eqs []types.Equation, env *StaticEnv, t types.Type) (types.Type, error) {
	s, err := Unify(eqs)
	if err != nil {
		return nil, err
	}
	resolved := s.Resolve(t)

	envVars := set.New[string](env.Len())
	for _, scheme := range env.Map(s.Resolve).Types() {
		envVars.InsertSlice(types.FreeVars(scheme))
	}
	free := lo.Filter(types.FreeVars(resolved), func(name string, _ int) bool {
		return !envVars.Contains(name)
	})

	replacements := make(map[string]types.Type, len(free))
	fresh := ti.varTracker.NewList(len(free))
	for i, name := range free {
		replacements[name] = fresh[i]
	}
	scheme := types.Substitute(resolved, replacements)
	for _, tv := range fresh {
		scheme = &types.Poly{Bound: tv.Name, Body: scheme}
	}

	if ti.logger != nil {
		ti.logger.Printf("generalize: %d equations, %d solved, free %v: %s",
			len(eqs), s.Len(), free, types.TypeString(scheme))
	}
	return scheme, nil
}
