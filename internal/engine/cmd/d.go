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

package cmd

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/search/eval"
	"laptudirm.com/x/ivory/pkg/uci/cmd"
)

// Custom command d
//
// This command prints the current position using ascii art, along with
// it's fen string, zobrist key, and static evaluation.
func NewD(engine *context.Engine) cmd.Command {
	printer := message.NewPrinter(language.English)

	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			interaction.Print(engine.Search.String())

			score := eval.OfBoard(engine.Search.Board)
			interaction.Reply(printer.Sprintf("Eval: %d cp", int(score)))

			return nil
		},
	}
}
