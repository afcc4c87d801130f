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

// Package polyval provides type inference for a small expression-oriented functional language
// with let-polymorphism.
//
// The type-system is Hindley-Milner with rank-1 (prenex) polymorphism. Inference is constraint-based:
// an expression is traversed to produce its type and a list of type equations, the equations are
// solved by unification, and the type is resolved through the solution. Definitions within blocks
// are solved and generalized one at a time, in order; a definition may use earlier definitions
// polymorphically but may not refer to itself.
//
//
// Supported Features:
//
//   * Integers, booleans, strings, unit, and homogeneous lists built with cons and nil
//   * First-class functions with pattern parameters and optional parameter annotations
//   * Blocks of sequential (non-recursive) definitions with optional type annotations
//   * Pattern-matching over literals, wildcards, identifiers, cons and nil patterns
//   * Occurs-checked unification
//   * Deterministic, canonical display of inferred types
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Unification: https://en.wikipedia.org/wiki/Unification_(computer_science)
package polyval
