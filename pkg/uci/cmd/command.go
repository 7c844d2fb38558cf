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

// Package cmd implements types representing UCI commands and schemas of
// the commands supported by a client.
package cmd

import (
	"fmt"
	"io"

	"laptudirm.com/x/ivory/pkg/uci/flag"
)

// NewSchema initializes a new command schema.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema contains the command schema of a client.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add adds the given command to the Schema.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get fetches the command with the given name from the Schema.
func (s *Schema) Get(name string) (Command, bool) {
	command, found := s.commands[name]
	return command, found
}

// Command represents the schema of a GUI to Engine command.
type Command struct {
	// name of the command
	// this is the token which identifies the command in a prompt
	Name string

	// Run is the work function of the command. It is provided with an
	// Interaction which contains the parsed flag values and the reply
	// stream of the current command interaction.
	Run func(Interaction) error

	// Flags contains the flag schema of this command. The flags are
	// parsed from the provided args before the Run function is called.
	Flags flag.Schema
}

// RunWith parses the given arguments according to the command's flag
// schema and runs the command with the parsed values.
func (c Command) RunWith(args []string, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	return c.Run(Interaction{
		stdout:  schema.replyWriter,
		Command: c,

		Values: values,
	})
}

// Interaction encapsulates relevant information about a Command sent to
// the Engine by the GUI.
type Interaction struct {
	stdout io.Writer

	Command // parent Command

	// values provided for the command's flags
	Values flag.Values
}

// Print writes to the GUI's input. It is similar to fmt.Print.
func (i *Interaction) Print(a ...any) (int, error) {
	return fmt.Fprint(i.stdout, a...)
}

// Reply writes to the GUI's input. It is similar to fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes to the GUI's input. It is similar to fmt.Printf with
// a newline terminator.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
