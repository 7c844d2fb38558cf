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

// Package uci implements a client for the Universal Chess Interface
// protocol, which is used by chess engines to communicate with GUIs.
// http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"laptudirm.com/x/ivory/internal/logging"
	"laptudirm.com/x/ivory/pkg/uci/cmd"
)

var log = logging.GetLog("uci")

// NewClient creates a new uci.Client which listens to stdin for
// commands and has the default isready and quit commands added.
func NewClient() Client {
	return NewClientWith(os.Stdin, os.Stdout)
}

// NewClientWith creates a new uci.Client on the given communication
// streams instead of the standard ones. It is mainly useful for
// driving the client from tests.
func NewClientWith(stdin io.Reader, stdout io.Writer) Client {
	client := Client{
		// communication streams
		stdin:  stdin,
		stdout: stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)

	// add default commands
	client.AddCommand(cmdQuit)
	client.AddCommand(cmdIsReady)

	return client
}

// Client represents an UCI client.
type Client struct {
	stdin  io.Reader // GUI to Engine commands
	stdout io.Writer // Engine to GUI commands

	commands cmd.Schema // commands schema
}

// AddCommand adds the given command to the client's schema.
func (c *Client) AddCommand(cmd cmd.Command) {
	c.commands.Add(cmd)
}

// Start starts a repl listening for UCI commands which match the
// client's schema on the client's stdin.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	// read-eval-print loop
	for {
		// read prompt from the client's stdin
		prompt, err := reader.ReadString('\n')
		if err != nil {
			// read errors are probably fatal
			return err
		}

		// parse arguments from prompt
		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue // skip empty prompts
		}

		switch err := c.Run(args...); err {
		case nil:
			// no error: continue repl

		case errQuit:
			// errQuit is returned by the quit command to stop the
			// repl, so honour the request and return
			return nil

		default:
			// a malformed or unknown command is logged and ignored,
			// it must never take the engine down
			log.Warning(err)
		}
	}
}

// Run finds a command whose name matches the first of the given
// arguments, and runs it with the remaining arguments. It returns any
// error reported by the command.
func (c *Client) Run(args ...string) error {
	// separate command name and arguments
	name, args := args[0], args[1:]

	// get uci command
	command, found := c.commands.Get(name)
	if !found {
		// command with given name not found
		return fmt.Errorf("%s: command not found", name)
	}

	// run command with given arguments
	return command.RunWith(args, c.commands)
}

// Print acts as fmt.Print on the client's stdout.
func (c *Client) Print(a ...any) (int, error) {
	return fmt.Fprint(c.stdout, a...)
}

// Printf acts as fmt.Printf on the client's stdout.
func (c *Client) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.stdout, format, a...)
}

// Println acts as fmt.Println on the client's stdout.
func (c *Client) Println(a ...any) (int, error) {
	return fmt.Fprintln(c.stdout, a...)
}
