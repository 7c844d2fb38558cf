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

// Package flag implements types representing the flags provided to UCI
// commands and their values.
//
// UCI command arguments are a flat list of tokens in which flag names
// and their arguments are interleaved in any order, so a flag is
// described by how many of the following tokens it consumes.
package flag

import "fmt"

// Flag describes a single flag of an UCI command by its arity.
type Flag struct {
	// number of tokens the flag consumes: 0 for a button flag, a
	// positive count for a fixed arity, or Rest for all remaining
	// tokens
	ArgN int
}

// Rest is the ArgN of a flag which consumes every remaining token.
const Rest = -1

// NewSchema initializes a new flag Schema.
func NewSchema() Schema {
	return Schema{
		flags: make(map[string]Flag),
	}
}

// Schema contains the flag schema of a command.
type Schema struct {
	flags map[string]Flag
}

// Button adds a flag with the given name which takes no arguments: it
// is either present or not. Its value is always nil.
func (s Schema) Button(name string) {
	s.flags[name] = Flag{ArgN: 0}
}

// Single adds a flag with the given name which takes one argument. Its
// value is of type string.
func (s Schema) Single(name string) {
	s.flags[name] = Flag{ArgN: 1}
}

// Array adds a flag with the given name which takes a fixed number of
// arguments. Its value is of type []string.
func (s Schema) Array(name string, argN int) {
	s.flags[name] = Flag{ArgN: argN}
}

// Variadic adds a flag with the given name which collects every
// remaining argument. Its value is of type []string.
func (s Schema) Variadic(name string) {
	s.flags[name] = Flag{ArgN: Rest}
}

// Parse parses the given argument list according to the given flag
// schema. It returns the values collected for each flag.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	for len(args) > 0 {
		name := args[0]
		args = args[1:]

		flag, known := s.flags[name]
		if !known {
			return values, fmt.Errorf("parse flags: unknown flag %q", name)
		}

		if values[name].Set {
			return values, fmt.Errorf("parse flags: flag %q already set", name)
		}

		var value any
		switch {
		case flag.ArgN == Rest:
			value, args = args, nil

		case flag.ArgN == 1:
			if len(args) == 0 {
				return values, argNumErr(name, 1, 0)
			}

			value, args = args[0], args[1:]

		case flag.ArgN > 1:
			if len(args) < flag.ArgN {
				return values, argNumErr(name, flag.ArgN, len(args))
			}

			collected := make([]string, flag.ArgN)
			copy(collected, args)
			value, args = collected, args[flag.ArgN:]
		}

		values[name] = Value{
			Set:   true,
			Value: value,
		}
	}

	return values, nil
}

// Values maps each flag's name to it's value in the current interaction.
type Values map[string]Value

// Value represents the value of a flag.
type Value struct {
	// Set stores whether or not this flag was set.
	Set bool

	// Value contains the value of the flag. It should be type casted
	// to it's proper type before use: see the documentation of the
	// schema methods for the value type of each flag arity.
	Value any
}

func argNumErr(flag string, expected, collected int) error {
	return fmt.Errorf("flag %s: expected %d args, collected %d args", flag, expected, collected)
}
