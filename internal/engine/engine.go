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

// Package engine assembles the UCI client of the engine from the
// command implementations and the shared engine context.
package engine

import (
	"io"

	"laptudirm.com/x/ivory/internal/engine/cmd"
	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/internal/engine/options"
	"laptudirm.com/x/ivory/pkg/uci"
)

// NewClient creates a new UCI client with all of the engine's commands
// and options registered.
func NewClient() *uci.Client {
	return setup(uci.NewClient())
}

// NewClientWith creates an engine client like NewClient, but on the
// given communication streams. It is used to drive the engine from
// tests.
func NewClientWith(stdin io.Reader, stdout io.Writer) *uci.Client {
	return setup(uci.NewClientWith(stdin, stdout))
}

// setup registers the engine's commands and options on the client.
func setup(client uci.Client) *uci.Client {
	engine := context.New(&client)

	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewPonderHit(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewD(engine))

	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Ponder", options.NewPonder(engine))

	// initialize the options with their default values
	if err := engine.OptionSchema.SetDefaults(); err != nil {
		panic(err)
	}

	return &client
}
