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

	"github.com/wdamron/polyval/internal/repl"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Type-check and evaluate a program",
	Long: `Type-check and evaluate every top-level statement of a program.

Each expression statement prints as "value : type". Definitions print nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	stmts, name, err := loadStatements(cmd, args)
	if err != nil {
		return err
	}
	s := repl.New()
	s.SetLogger(traceLogger(cmd.ErrOrStderr()))
	out := cmd.OutOrStdout()
	for i, stmt := range stmts {
		res, err := s.Exec(stmt)
		if err != nil {
			return errors.Wrapf(err, "%s: statement %d", name, i+1)
		}
		if res.Definition == nil {
			fmt.Fprintln(out, res.String())
		}
	}
	return nil
}
