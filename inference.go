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
	"log"

	"github.com/pkg/errors"

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/internal/typeutil"
	"github.com/wdamron/polyval/types"
)

// InferenceContext is a re-usable context for type inference.
//
// The context owns the fresh-variable source. Infer and Define reset it from the environment they
// are given, so the variables they mint (and the types they return) do not depend on earlier calls.
// The lower-level operations (Generate, GeneratePattern, BindDefn, Generalize, Instantiate) continue
// from the current state of the source. A context may not be used concurrently.
type InferenceContext struct {
	varTracker typeutil.VarTracker
	logger     *log.Logger
	err        error
	invalid    ast.Expr
	needsReset bool
}

// Create a new type-inference context. A context may be re-used across calls of Infer.
func NewContext() *InferenceContext {
	return &InferenceContext{varTracker: typeutil.VarTracker{NextId: 1}}
}

// SetLogger enables tracing of generalization steps. A nil logger disables tracing.
func (ti *InferenceContext) SetLogger(logger *log.Logger) { ti.logger = logger }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// NextVarID returns the id of the next type-variable the context will allocate.
func (ti *InferenceContext) NextVarID() int { return ti.varTracker.NextId }

// Reset the state of the context. The context will be reset automatically between calls of Infer.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// begin starts a top-level inference: fresh variables are numbered from env.NextVarID, skipping
// any numeric variable names already present in env.
func (ti *InferenceContext) begin(env *StaticEnv) {
	ti.reset()
	ti.varTracker.NextId = env.nextVarID()
	env.Range(func(_ string, t types.Type) bool {
		ti.varTracker.Skip(types.VarNames(t)...)
		return true
	})
	ti.needsReset = true
}

func (ti *InferenceContext) continueFrom(env *StaticEnv) {
	if ti.varTracker.NextId < env.nextVarID() {
		ti.varTracker.NextId = env.nextVarID()
	}
	ti.needsReset = true
}

// Infer the type of expr within env.
//
// The equations generated for expr are solved and the type of expr is resolved through the
// solution. The result may contain free type-variables; see Display.
func (ti *InferenceContext) Infer(expr ast.Expr, env *StaticEnv) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	ti.begin(env)
	t, eqs, err := ti.generate(expr, env)
	if err != nil {
		ti.fail(expr, err)
		return nil, err
	}
	s, err := Unify(eqs)
	if err != nil {
		ti.fail(expr, err)
		return nil, err
	}
	if ti.logger != nil {
		ti.logger.Printf("infer: %d equations, %d solved", len(eqs), s.Len())
	}
	return s.Resolve(t), nil
}

// Define binds a top-level definition within env.
//
// The definition's value is inferred and generalized, its equations are solved, and the
// solution is applied to every binding of the returned environment. The returned environment's
// NextVarID is advanced past every variable allocated during the definition. On failure, env is
// unaffected and nil is returned.
func (ti *InferenceContext) Define(defn *ast.Defn, env *StaticEnv) (*StaticEnv, types.Type, error) {
	if defn == nil {
		return nil, nil, errors.New("Empty definition")
	}
	ti.begin(env)
	next, eqs, scheme, err := ti.bindDefn(defn, env)
	if err != nil {
		ti.fail(defn, err)
		return nil, nil, err
	}
	s, err := Unify(eqs)
	if err != nil {
		ti.fail(defn, err)
		return nil, nil, err
	}
	next = next.Map(s.Resolve).WithNextVarID(ti.varTracker.NextId)
	return next, s.Resolve(scheme), nil
}

// TypeOf infers the type of expr within env using a new context.
func TypeOf(expr ast.Expr, env *StaticEnv) (types.Type, error) {
	return NewContext().Infer(expr, env)
}

// Display returns the canonical string representation of an inferred type: every free
// type-variable is bound, and variables are renamed by order of first appearance.
func Display(t types.Type) string {
	return types.TypeString(types.Canonical(types.Quantify(t)))
}
