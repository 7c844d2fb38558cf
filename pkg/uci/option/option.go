// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package option implements functionality for declaring and setting
// UCI options.
//
// Every option couples an UCI type declaration, printed in response to
// the `uci` command, with a user defined storage function which is
// called with the parsed value whenever the option is set.
package option

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Option is the interface implemented by the different option types.
type Option interface {
	// Type returns the UCI type declaration of the option, everything
	// that follows "option name <name> type" on its declaration line.
	Type() string

	// Store parses the given setoption value and stores it.
	Store([]string) error

	// Initialize stores the option's default value.
	Initialize() error
}

// NewSchema returns a new option schema.
func NewSchema() Schema {
	return Schema{
		options: make(map[string]Option),
	}
}

// Schema represents the options supported by an UCI client, keyed by
// their names.
type Schema struct {
	options map[string]Option
}

// AddOption adds an option with the given name to the schema.
func (schema *Schema) AddOption(name string, option Option) {
	schema.options[name] = option
}

// SetDefaults stores the default values of every option in the schema.
func (schema *Schema) SetDefaults() error {
	for _, option := range schema.options {
		if err := option.Initialize(); err != nil {
			return err
		}
	}

	return nil
}

// SetOption sets the option with the given name to the given value.
func (schema *Schema) SetOption(name string, value []string) error {
	option, found := schema.options[name]
	if !found {
		return fmt.Errorf("set option: %q is not a valid option", name)
	}

	return option.Store(value)
}

// String converts the given Schema into the option declaration lines
// which are printed in response to the `uci` command. The lines are
// sorted by option name so the declarations are stable.
func (schema *Schema) String() string {
	names := make([]string, 0, len(schema.options))
	for name := range schema.options {
		names = append(names, name)
	}
	sort.Strings(names)

	var str string
	for _, name := range names {
		str += fmt.Sprintf("option name %s type %s\n", name, schema.options[name].Type())
	}

	return str
}

// single unwraps the value of an option which takes exactly one token.
func single(kind string, value []string) (string, error) {
	if len(value) != 1 {
		return "", fmt.Errorf("option %s: expected 1 value, received %d values", kind, len(value))
	}

	return value[0], nil
}

// Check represents an UCI option of type check: a boolean toggle.
type Check struct {
	Default bool
	Storage func(bool) error
}

var _ Option = (*Check)(nil)

func (option *Check) Type() string {
	return fmt.Sprintf("check default %v", option.Default)
}

func (option *Check) Store(value []string) error {
	raw, err := single("check", value)
	if err != nil {
		return err
	}

	boolean, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}

	return option.Storage(boolean)
}

func (option *Check) Initialize() error {
	return option.Storage(option.Default)
}

// Spin represents an UCI option of type spin: an integer inside an
// inclusive range.
type Spin struct {
	Default  int
	Min, Max int
	Storage  func(int) error
}

var _ Option = (*Spin)(nil)

func (option *Spin) Type() string {
	return fmt.Sprintf("spin default %v min %d max %d", option.Default, option.Min, option.Max)
}

func (option *Spin) Store(value []string) error {
	raw, err := single("spin", value)
	if err != nil {
		return err
	}

	integer, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}

	// out of bounds values are capped to the nearest bound and reported
	capped := min(max(integer, option.Min), option.Max)
	if err := option.Storage(capped); err != nil {
		return err
	}

	if capped != integer {
		return fmt.Errorf("option spin: value %d out of bounds [%d, %d], capped to %d", integer, option.Min, option.Max, capped)
	}

	return nil
}

func (option *Spin) Initialize() error {
	return option.Storage(option.Default)
}

// Button represents an UCI option of type button: setting it pings the
// engine instead of storing anything.
type Button struct {
	Ping func() error
}

var _ Option = (*Button)(nil)

func (option *Button) Type() string {
	return "button"
}

func (option *Button) Store(value []string) error {
	if len(value) > 0 {
		return fmt.Errorf("option button: expected no values, received %d values", len(value))
	}

	return option.Ping()
}

// Initialize does nothing: buttons have no default value.
func (option *Button) Initialize() error {
	return nil
}

// String represents an UCI option of type string.
type String struct {
	Default string
	Storage func(string) error
}

var _ Option = (*String)(nil)

func (option *String) Type() string {
	return fmt.Sprintf("string default %s", option.Default)
}

func (option *String) Store(value []string) error {
	return option.Storage(strings.Join(value, " "))
}

func (option *String) Initialize() error {
	return option.Storage(option.Default)
}
