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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string { return "Const" }
func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *App) TypeName() string   { return "App" }
func (t *Poly) TypeName() string  { return "Poly" }
func (t *List) TypeName() string  { return "List" }

var (
	_ Type = (*Const)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*App)(nil)
	_ Type = (*Poly)(nil)
	_ Type = (*List)(nil)
)

// Type constant: `Int`, `Bool`, etc
type Const struct {
	Name string
}

// Base types
var (
	Unit   = &Const{Name: "Unit"}
	Bool   = &Const{Name: "Bool"}
	String = &Const{Name: "String"}
	Int    = &Const{Name: "Int"}
)

// Type variable. Variables minted during inference are named by a decimal counter value;
// variables written in type annotations keep their source names.
type Var struct {
	Name string
}

// Function type: `Int -> Int`
type Arrow struct {
	Arg    Type
	Return Type
}

// Type application: `f a`
type App struct {
	Func Type
	Arg  Type
}

// Polymorphic scheme: `a . a -> a`. Multi-variable schemes nest, the outermost Poly binding
// the first variable.
type Poly struct {
	Bound string
	Body  Type
}

// List type: `[Int]`
type List struct {
	Elem Type
}

// Equation is an equality constraint between two types.
type Equation struct {
	Left  Type
	Right Type
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	case *App:
		b, ok := b.(*App)
		return ok && Equal(a.Func, b.Func) && Equal(a.Arg, b.Arg)
	case *Poly:
		b, ok := b.(*Poly)
		return ok && a.Bound == b.Bound && Equal(a.Body, b.Body)
	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)
	case nil:
		return b == nil
	}
	return false
}

// Occurs reports whether the type-variable name occurs free within t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *Arrow:
		return Occurs(name, t.Arg) || Occurs(name, t.Return)
	case *App:
		return Occurs(name, t.Func) || Occurs(name, t.Arg)
	case *List:
		return Occurs(name, t.Elem)
	case *Poly:
		return t.Bound != name && Occurs(name, t.Body)
	}
	return false
}
