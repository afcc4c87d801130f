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
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/parser"
)

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

// readSource returns the program text selected by --expr, a file argument or standard input,
// along with a name for error messages.
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	switch {
	case sourceExpr != "":
		return sourceExpr, "<expr>", nil
	case len(args) > 0 && args[0] != "-":
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", args[0], errors.Wrap(err, "reading source")
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "<stdin>", errors.Wrap(err, "reading standard input")
	}
	return string(data), "<stdin>", nil
}

// loadStatements parses the selected program into top-level statements.
func loadStatements(cmd *cobra.Command, args []string) ([]ast.Expr, string, error) {
	src, name, err := readSource(cmd, args)
	if err != nil {
		return nil, name, err
	}
	stmts, err := parser.ParseStatements(src)
	if err != nil {
		return nil, name, errors.Wrap(err, name)
	}
	if len(stmts) == 0 {
		return nil, name, errors.Errorf("%s: no statements", name)
	}
	if dumpAST {
		for _, stmt := range stmts {
			dumper.Fdump(cmd.ErrOrStderr(), stmt)
		}
	}
	return stmts, name, nil
}
