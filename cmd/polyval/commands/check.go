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

package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/polyval"
	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Print the inferred types of a program",
	Long: `Infer the type of every top-level statement of a program.

Definitions print as "name : type", expressions as their type.

Examples:
  polyval check prog.pv
  polyval check -e 'f => x => f (f x)'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	stmts, name, err := loadStatements(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return checkStatements(stmts, name, cmd, func(stmt ast.Expr, t types.Type) {
		if d, ok := stmt.(*ast.Defn); ok {
			fmt.Fprintf(out, "%s : %s\n", ast.PatString(d.Pat), polyval.Display(t))
			return
		}
		fmt.Fprintln(out, polyval.Display(t))
	})
}

// checkStatements infers the type of each statement in turn, extending the environment with
// each definition, and reports every type to f.
func checkStatements(stmts []ast.Expr, name string, cmd *cobra.Command, f func(ast.Expr, types.Type)) error {
	ctx := polyval.NewContext()
	ctx.SetLogger(traceLogger(cmd.ErrOrStderr()))
	env := polyval.NewStaticEnv()
	for i, stmt := range stmts {
		if err := ast.Validate(stmt); err != nil {
			return errors.Wrapf(err, "%s: statement %d", name, i+1)
		}
		var (
			t   types.Type
			err error
		)
		if d, ok := stmt.(*ast.Defn); ok {
			env, t, err = ctx.Define(d, env)
		} else {
			t, err = ctx.Infer(stmt, env)
		}
		if err != nil {
			return errors.Wrapf(err, "%s: statement %d", name, i+1)
		}
		f(stmt, t)
	}
	return nil
}
