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

// Package config loads the YAML configuration of the polyval command.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up in the home directory.
const FileName = ".polyval.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of the REPL and the command-line tools.
type Config struct {
	// Prompt shown before each new input.
	Prompt string `yaml:"prompt,omitempty"`

	// ContinuationPrompt is shown while an incomplete input is continued on the next line.
	ContinuationPrompt string `yaml:"continuation_prompt,omitempty"`

	// HistoryFile stores REPL input history. Relative paths are resolved against the
	// home directory. An empty value after loading disables history.
	HistoryFile string `yaml:"history_file,omitempty"`

	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color,omitempty"`

	// Prelude lists definitions evaluated when a REPL session starts, e.g. `val id = x => x`.
	Prelude []string `yaml:"prelude,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// DefaultPath returns the path of the configuration file in the home directory, or the empty
// string if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads the configuration file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return Parse(data, path)
}

// Parse parses configuration content. The path argument is used only for error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Prompt == "" {
		c.Prompt = "polyval> "
	}
	if c.ContinuationPrompt == "" {
		c.ContinuationPrompt = "......> "
	}
	if c.HistoryFile == "" {
		c.HistoryFile = ".polyval_history"
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func (c *Config) validate(path string) error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("%s: color must be one of auto, always or never, not %q", path, c.Color)
	}
	for i, def := range c.Prelude {
		if def == "" {
			return errors.Errorf("%s: prelude[%d] is empty", path, i)
		}
	}
	return nil
}

// UseColor reports whether output should be colored, given whether it goes to a terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal
}

// HistoryPath resolves HistoryFile against home. It returns the empty string when history
// cannot be stored.
func (c *Config) HistoryPath(home string) string {
	if c.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}
