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
	"strings"

	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/uci/cmd"
	"laptudirm.com/x/ivory/pkg/uci/flag"
)

// UCI command position [ fen <fenstring> | startpos ] moves <move>...
//
// Set up the position described in fenstring on the internal board and
// play the given moves on it. The moves are not checked for legality:
// the protocol guarantees that the GUI only sends legal moves.
//
// Note: no "new" command is needed. However, if this position is from a
// different game than the last position sent to the engine, the GUI
// should send a ucinewgame in between.
func NewPosition(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	// base position: the fen flag also collects any moves since the
	// length of a fen string is not fixed
	schema.Variadic("fen")
	schema.Button("startpos")

	// moves played on the base position
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			fen, moves, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			// a running search owns the board: cancel it and wait for
			// its bestmove before mutating anything
			engine.StopSearch()
			engine.WaitForSearch()

			engine.Search.UpdatePosition(fen)
			engine.Search.MakeMoves(moves...)

			return nil
		},
		Flags: schema,
	}
}

// parsePositionFlags parses the position data from the given flags.
func parsePositionFlags(values flag.Values) (string, []string, error) {
	var fen string
	var moves []string

	switch {
	// only one of the base position descriptors should be set
	case values["startpos"].Set && values["fen"].Set:
		return "", nil, errors.New("position: both startpos and fen flags found")

	case values["startpos"].Set:
		fen = board.StartFEN

		if values["moves"].Set {
			moves = values["moves"].Value.([]string)
		}

	case values["fen"].Set:
		fields := values["fen"].Value.([]string)

		// the variadic fen flag swallows the moves flag, so split the
		// fields at the moves token
		for i, field := range fields {
			if field == "moves" {
				moves = fields[i+1:]
				fields = fields[:i]
				break
			}
		}

		if len(fields) < 4 {
			return "", nil, errors.New("position: incomplete fen string")
		}

		fen = strings.Join(fields, " ")

	default:
		// one of fen or startpos has to be present
		return "", nil, errors.New("position: no startpos or fen flag")
	}

	return fen, moves, nil
}
