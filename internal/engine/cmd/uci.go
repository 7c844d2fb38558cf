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

// Package cmd implements the UCI commands supported by the engine.
package cmd

import (
	"laptudirm.com/x/ivory/internal/build"
	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/uci/cmd"
)

// UCI command uci
//
// Tells the engine to use the uci (universal chess interface). This
// will be sent once as the first command after program boot.
//
// After receiving the uci command the engine must identify itself with
// the id command, declare the settings it supports with the option
// command, and acknowledge the uci mode with uciok.
func NewUci(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "uci",
		Run: func(interaction cmd.Interaction) error {
			// identify engine
			interaction.Replyf("id name Ivory %s", build.Version)
			interaction.Reply("id author Rak Laptudirm")

			// declare supported options
			interaction.Print(engine.OptionSchema.String())

			// declare uci support
			interaction.Reply("uciok")

			return nil
		},
	}
}
