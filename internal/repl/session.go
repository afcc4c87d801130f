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

// Package repl implements an interactive session: top-level definitions accumulate in a
// persistent type-environment and value-environment, expressions are type-checked and
// evaluated against them, and meta-commands inspect the session.
package repl

import (
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/wdamron/polyval"
	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/eval"
	"github.com/wdamron/polyval/parser"
)

// Help describes the meta-commands of a session.
const Help = `Enter an expression to evaluate it, or a definition (val x = e) to extend the session.
Commands:
  :type <expr>   show the type of an expression without evaluating it
  :env           list the definitions of the session
  :ast <expr>    dump the syntax tree of an expression
  :reset         discard every definition except the prelude
  :help          show this message
  :quit          leave the session`

var commands = []string{":type", ":env", ":ast", ":reset", ":help", ":quit"}

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

// Result describes the outcome of one input.
type Result struct {
	// Definition is set when the input was a definition.
	Definition *ast.Defn
	// Type is the displayed type of the value, or empty for meta-commands.
	Type string
	// Value is the evaluated value, or nil for meta-commands and :type.
	Value eval.Value
	// Text is the output of a meta-command.
	Text string
	// Quit is set by :quit.
	Quit bool
}

// String renders the result as the session prints it.
func (r *Result) String() string {
	switch {
	case r.Text != "":
		return r.Text
	case r.Definition != nil:
		return ast.PatString(r.Definition.Pat) + " : " + r.Type + " = " + r.Value.String()
	case r.Value != nil:
		return r.Value.String() + " : " + r.Type
	}
	return r.Type
}

// Session holds the state of an interactive session. A session may not be used concurrently.
type Session struct {
	ctx     *polyval.InferenceContext
	static  *polyval.StaticEnv
	values  eval.Env
	prelude []string
	logger  *log.Logger
}

// New creates a session with empty environments.
func New() *Session {
	return &Session{
		ctx:    polyval.NewContext(),
		static: polyval.NewStaticEnv(),
		values: eval.NewEnv(),
	}
}

// SetLogger enables tracing of type inference. A nil logger disables tracing.
func (s *Session) SetLogger(logger *log.Logger) {
	s.logger = logger
	s.ctx.SetLogger(logger)
}

// StaticEnv returns the current type-environment of the session.
func (s *Session) StaticEnv() *polyval.StaticEnv { return s.static }

// Values returns the current value-environment of the session.
func (s *Session) Values() eval.Env { return s.values }

// LoadPrelude evaluates each definition in defs. The definitions are kept and evaluated again
// by :reset. Loading stops at the first failing definition.
func (s *Session) LoadPrelude(defs []string) error {
	for i, src := range defs {
		stmt, err := parser.ParseProgram(src)
		if err != nil {
			return errors.Wrapf(err, "prelude[%d]", i)
		}
		d, ok := stmt.(*ast.Defn)
		if !ok {
			return errors.Errorf("prelude[%d]: %q is not a definition", i, src)
		}
		if _, err = s.define(d); err != nil {
			return errors.Wrapf(err, "prelude[%d]", i)
		}
		s.prelude = append(s.prelude, src)
	}
	return nil
}

// Reset discards every definition, then loads the prelude again.
func (s *Session) Reset() error {
	prelude := s.prelude
	s.static, s.values, s.prelude = polyval.NewStaticEnv(), eval.NewEnv(), nil
	return s.LoadPrelude(prelude)
}

// Eval handles one input: a meta-command, a definition or an expression. A definition which
// fails to type-check or evaluate leaves the session unchanged.
func (s *Session) Eval(input string) (*Result, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, ":") {
		return s.command(input)
	}

	stmt, err := parser.ParseProgram(input)
	if err != nil {
		return nil, err
	}
	return s.Exec(stmt)
}

// Exec type-checks and evaluates a parsed top-level statement.
func (s *Session) Exec(stmt ast.Expr) (*Result, error) {
	if d, ok := stmt.(*ast.Defn); ok {
		return s.define(d)
	}
	if err := ast.Validate(stmt); err != nil {
		return nil, err
	}
	t, err := s.ctx.Infer(stmt, s.static)
	if err != nil {
		return nil, err
	}
	v, err := eval.Eval(stmt, s.values)
	if err != nil {
		return nil, err
	}
	return &Result{Type: polyval.Display(t), Value: v}, nil
}

func (s *Session) define(d *ast.Defn) (*Result, error) {
	static, scheme, err := s.ctx.Define(d, s.static)
	if err != nil {
		return nil, err
	}
	values, v, err := eval.EvalDefn(d, s.values)
	if err != nil {
		return nil, err
	}
	s.static, s.values = static, values
	if s.logger != nil {
		s.logger.Printf("define %s : %s", ast.PatString(d.Pat), polyval.Display(scheme))
	}
	return &Result{Definition: d, Type: polyval.Display(scheme), Value: v}, nil
}

func (s *Session) command(input string) (*Result, error) {
	name, arg := input, ""
	if i := strings.IndexAny(input, " \t\n"); i >= 0 {
		name, arg = input[:i], strings.TrimSpace(input[i:])
	}

	switch name {
	case ":type", ":t":
		expr, err := parser.ParseExpr(arg)
		if err != nil {
			return nil, err
		}
		t, err := s.ctx.Infer(expr, s.static)
		if err != nil {
			return nil, err
		}
		return &Result{Type: polyval.Display(t)}, nil

	case ":env":
		lines := lo.FilterMap(s.static.Names(), func(name string, _ int) (string, bool) {
			t, ok := s.static.Get(name)
			return name + " : " + polyval.Display(t), ok
		})
		if len(lines) == 0 {
			return &Result{Text: "(no definitions)"}, nil
		}
		return &Result{Text: strings.Join(lines, "\n")}, nil

	case ":ast":
		stmt, err := parser.ParseProgram(arg)
		if err != nil {
			return nil, err
		}
		return &Result{Text: strings.TrimRight(dumper.Sdump(stmt), "\n")}, nil

	case ":reset":
		if err := s.Reset(); err != nil {
			return nil, err
		}
		return &Result{Text: "Session reset"}, nil

	case ":help", ":h", ":?":
		return &Result{Text: Help}, nil

	case ":quit", ":q":
		return &Result{Text: "Bye", Quit: true}, nil
	}
	return nil, errors.Errorf("Unknown command %s; type :help for a list of commands", name)
}

// Incomplete reports whether input is a prefix of a valid input, so that reading should
// continue on the next line.
func Incomplete(input string) bool {
	if trimmed := strings.TrimSpace(input); trimmed == "" || strings.HasPrefix(trimmed, ":") {
		return false
	}
	_, err := parser.ParseProgram(input)
	return err != nil && parser.IsIncomplete(err)
}

// Complete returns the completions of the last word of line: session commands for a leading
// colon, otherwise the names defined in the session.
func (s *Session) Complete(line string) []string {
	start := strings.LastIndexAny(line, " \t()[]{};:=") + 1
	if strings.HasPrefix(line, ":") && !strings.ContainsAny(line, " \t") {
		start = 0
	}
	prefix, word := line[:start], line[start:]
	candidates := s.static.Names()
	if start == 0 && strings.HasPrefix(word, ":") {
		candidates = commands
	}
	return lo.FilterMap(candidates, func(c string, _ int) (string, bool) {
		return prefix + c, word != "" && strings.HasPrefix(c, word)
	})
}
