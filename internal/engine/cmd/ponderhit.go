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
	"errors"

	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/uci/cmd"
)

// UCI command ponderhit
//
// The opponent has played the move the engine was pondering on. The
// ponder search is abandoned, the real position is restored, and a
// normal search with the time budget saved from the go command starts.
// That search emits the single bestmove of the original go.
func NewPonderHit(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "ponderhit",
		Run: func(interaction cmd.Interaction) error {
			if !engine.Pondering {
				return errors.New("ponderhit: no ponder search ongoing")
			}

			engine.Pondering = false

			// throw away the ponder search without a bestmove
			engine.AbortSearch()

			// restore the real position, with the pondered move made
			engine.Search.UpdatePosition(engine.PonderFEN)

			// think like a normal timed go
			engine.StartSearch(engine.PonderLimits)
			return nil
		},
	}
}
