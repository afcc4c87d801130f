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

// Package commands provides the CLI commands of the polyval tool.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdamron/polyval/internal/config"
)

var (
	configPath string
	sourceExpr string
	trace      bool
	dumpAST    bool
)

var rootCmd = &cobra.Command{
	Use:   "polyval [file]",
	Short: "Type inference, evaluation and compilation for a small functional language",
	Long: `polyval infers principal types for a small functional language with let-polymorphism,
evaluates its programs, and compiles them to JavaScript.

Usage:
  polyval                       Start an interactive session
  polyval file.pv               Run a program (same as polyval run file.pv)
  polyval check -e 'x => x'     Print the type of an expression
  polyval compile file.pv       Print the program compiled to JavaScript
  polyval version               Print version`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && sourceExpr == "" {
			return runRepl(cmd, args)
		}
		return runRun(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVarP(&sourceExpr, "expr", "e", "", "Program text to use instead of a file")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "Trace type inference on stderr")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "Dump the syntax tree of each statement on stderr")
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// traceLogger returns the inference logger selected by --trace, or nil.
func traceLogger(w io.Writer) *log.Logger {
	if !trace {
		return nil
	}
	return log.New(w, "polyval: ", 0)
}
