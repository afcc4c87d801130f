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

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/compile"
	"github.com/wdamron/polyval/internal/astutil"
	"github.com/wdamron/polyval/types"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a program to JavaScript",
	Long: `Type-check a program and print it compiled to a JavaScript script.

The program is a sequence of definitions, optionally followed by one expression whose value
the script prints.

With --prune, definitions the final expression does not depend on are left out of the script.

Example:
  polyval compile prog.pv | node`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

var prune bool

func init() {
	compileCmd.Flags().BoolVar(&prune, "prune", false, "Leave out definitions the result does not depend on")
}

func runCompile(cmd *cobra.Command, args []string) error {
	stmts, name, err := loadStatements(cmd, args)
	if err != nil {
		return err
	}
	if err = checkStatements(stmts, name, cmd, func(ast.Expr, types.Type) {}); err != nil {
		return err
	}
	if prune {
		n := len(stmts)
		if stmts, err = astutil.Prune(stmts); err != nil {
			return errors.Wrap(err, name)
		}
		if n > len(stmts) && trace {
			fmt.Fprintf(cmd.ErrOrStderr(), "polyval: pruned %d unused definitions\n", n-len(stmts))
		}
	}

	var (
		defns  []*ast.Defn
		result ast.Expr
	)
	for i, stmt := range stmts {
		if d, ok := stmt.(*ast.Defn); ok {
			defns = append(defns, d)
			continue
		}
		if i != len(stmts)-1 {
			return errors.Errorf("%s: statement %d: only the last statement may be an expression", name, i+1)
		}
		result = stmt
	}

	js, err := compile.Program(defns, result)
	if err != nil {
		return errors.Wrap(err, name)
	}
	fmt.Fprint(cmd.OutOrStdout(), js)
	return nil
}
