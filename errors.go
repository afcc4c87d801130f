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
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/polyval/types"
)

var (
	_ error = (*UnboundIdentifierError)(nil)
	_ error = (*UnificationError)(nil)
	_ error = (*InfiniteTypeError)(nil)
	_ error = (*StructuralError)(nil)
	_ error = (*UnimplementedError)(nil)
)

// UnboundIdentifierError is returned when an identifier is not bound in the type-environment.
type UnboundIdentifierError struct {
	Name string
}

func (e *UnboundIdentifierError) Error() string {
	return "Variable " + e.Name + " not found"
}

// UnificationError is returned when two types with different constructors must be equal.
type UnificationError struct {
	Left  types.Type
	Right types.Type
}

func (e *UnificationError) Error() string {
	return "Failed to unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}

// InfiniteTypeError is returned when a type-variable must be equal to a type which contains it.
type InfiniteTypeError struct {
	Var  *types.Var
	Type types.Type
}

func (e *InfiniteTypeError) Error() string {
	return "Infinite type: " + types.TypeString(e.Var) + " occurs in " + types.TypeString(e.Type)
}

// StructuralError is returned for statements or patterns used where they are not allowed.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

// UnimplementedError is returned for expression or pattern kinds the inference engine does not handle.
type UnimplementedError struct {
	Node string
}

func (e *UnimplementedError) Error() string {
	return "Unhandled syntax: " + e.Node
}

func structuralErrorf(format string, args ...interface{}) error {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// IsTypeError reports whether err (or an error it wraps) was produced by type inference.
func IsTypeError(err error) bool {
	var (
		unbound  *UnboundIdentifierError
		unify    *UnificationError
		infinite *InfiniteTypeError
		shape    *StructuralError
		unknown  *UnimplementedError
	)
	return errors.As(err, &unbound) || errors.As(err, &unify) || errors.As(err, &infinite) ||
		errors.As(err, &shape) || errors.As(err, &unknown)
}
