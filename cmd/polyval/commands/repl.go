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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/polyval/ast"
	"github.com/wdamron/polyval/internal/config"
	"github.com/wdamron/polyval/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Enter expressions to evaluate them and definitions
(val x = e) to extend the session. Input continues on the next line while it is incomplete.
Type :help for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

// lineReader reads one line of input after showing a prompt.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

// scanReader reads lines from a non-interactive input without prompting.
type scanReader struct {
	sc *bufio.Scanner
}

func (r scanReader) Prompt(string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := repl.New()
	s.SetLogger(traceLogger(cmd.ErrOrStderr()))
	if err = s.LoadPrelude(cfg.Prelude); err != nil {
		return errors.Wrap(err, "loading prelude")
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if cmd.InOrStdin() != os.Stdin || !isTerminal(os.Stdin) {
		return replLoop(s, scanReader{bufio.NewScanner(cmd.InOrStdin())}, cfg, out, errOut, false, nil)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.Complete)

	home, _ := os.UserHomeDir()
	if histPath := cfg.HistoryPath(home); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(out, "polyval "+Version+" - type :help for help")
	color := cfg.UseColor(isTerminal(os.Stdout))
	return replLoop(s, ln, cfg, out, errOut, color, func(src string) {
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	})
}

// replLoop reads and evaluates inputs until end of input or :quit.
func replLoop(s *repl.Session, in lineReader, cfg *config.Config, out, errOut io.Writer, color bool, remember func(string)) error {
	for {
		src, ok, err := readInput(in, cfg.Prompt, cfg.ContinuationPrompt)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		if remember != nil {
			remember(src)
		}

		res, err := s.Eval(src)
		if err != nil {
			msg := err.Error()
			if color {
				msg = red(msg)
			}
			fmt.Fprintln(errOut, msg)
			continue
		}
		fmt.Fprintln(out, formatResult(res, color))
		if res.Quit {
			return nil
		}
	}
}

// readInput reads lines until they form a complete input. It reports false at end of input.
func readInput(in lineReader, prompt, cont string) (string, bool, error) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := in.Prompt(p)
		if err == io.EOF {
			return b.String(), b.Len() > 0, nil
		}
		if err == liner.ErrPromptAborted {
			// Ctrl-C discards the pending input
			return "", true, nil
		}
		if err != nil {
			return "", false, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !repl.Incomplete(b.String()) {
			return b.String(), true, nil
		}
	}
}

func formatResult(res *repl.Result, color bool) string {
	if !color || res.Text != "" {
		return res.String()
	}
	switch {
	case res.Definition != nil:
		return ast.PatString(res.Definition.Pat) + " : " + blue(res.Type) + " = " + res.Value.String()
	case res.Value != nil:
		return res.Value.String() + " : " + blue(res.Type)
	}
	return blue(res.Type)
}
