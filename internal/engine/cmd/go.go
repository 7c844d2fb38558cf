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
	"math"
	"strconv"

	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/search"
	"laptudirm.com/x/ivory/pkg/search/time"
	"laptudirm.com/x/ivory/pkg/uci/cmd"
	"laptudirm.com/x/ivory/pkg/uci/flag"
)

// UCI command go [flags]
//
// Start calculating on the position set up with the position command.
//
// Supported flags, all sent in the same prompt:
//
// ponder
//
//	Start searching in ponder mode: the last move of the position
//	command is the move the engine should ponder on. The search does
//	not end on its own, even if it finds a mate, until a ponderhit or
//	stop command arrives.
//
// wtime x / btime x
//
//	White/black has x msec left on the clock.
//
// winc x / binc x
//
//	White/black gains x msec per move.
//
// depth x
//
//	Search x plies only.
//
// nodes x
//
//	Search x nodes only.
//
// movetime x
//
//	Search for exactly x msec.
//
// infinite
//
//	Search until the stop command.
func NewGo(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Button("ponder")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			if engine.Searching() {
				// search already ongoing
				return errors.New("go: search currently in progress")
			}

			// parse search limits from the flags
			limits, err := parseSearchLimits(engine, interaction.Values)
			if err != nil {
				return err
			}

			// ponder search
			if interaction.Values["ponder"].Set {
				if !engine.Options.Ponder {
					return errors.New("go ponder: pondering is disabled")
				}

				board := engine.Search.Board

				// remember the real position and the opponent's
				// expected reply, and think about the position before
				// it on the opponent's time
				engine.Pondering = true
				engine.PonderLimits = limits
				engine.PonderFEN = board.FEN()

				if last := board.LastMove(); last != move.Null {
					board.UnmakeMove(last, false)
				}

				// the ponder search itself has no time budget
				limits = search.Limits{
					Depth:    search.MaxDepth,
					Infinite: true,
					Time:     &time.MoveManager{Duration: math.MaxInt32},
				}
			}

			engine.StartSearch(limits)
			return nil
		},

		Flags: schema,
	}
}

// parseSearchLimits parses the search flags and returns the limits.
func parseSearchLimits(engine *context.Engine, values flag.Values) (search.Limits, error) {
	var limits search.Limits

	// depth limit (default MaxDepth)
	limits.Depth = search.MaxDepth
	if depth := values["depth"]; depth.Set {
		d, err := strconv.Atoi(depth.Value.(string))
		if err != nil {
			return limits, err
		}

		limits.Depth = d
	}

	// node limit (default unlimited)
	if nodes := values["nodes"]; nodes.Set {
		n, err := strconv.Atoi(nodes.Value.(string))
		if err != nil {
			return limits, err
		}

		limits.Nodes = n
	}

	// check if wtime-btime controls are set
	timeSet := false
	if values["wtime"].Set || values["btime"].Set {
		if !values["wtime"].Set || !values["btime"].Set {
			return limits, errors.New("go: both wtime and btime should be set")
		}

		timeSet = true
	}

	switch {
	// only one of the base time controls should be set
	case (values["movetime"].Set && values["infinite"].Set),
		(values["infinite"].Set && timeSet),
		(timeSet && values["movetime"].Set):

		return limits, errors.New("go: multiple time controls set")

	case values["movetime"].Set:
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}

		limits.Time = &time.MoveManager{Duration: t}

	case timeSet:
		tc := &time.NormalManager{Us: engine.Search.SideToMove()}

		var err error

		tc.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string))
		if err != nil {
			return limits, err
		}

		tc.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string))
		if err != nil {
			return limits, err
		}

		if values["winc"].Set || values["binc"].Set {
			// if one is set, both should be set
			if !values["winc"].Set || !values["binc"].Set {
				return limits, errors.New("go: both winc and binc should be set")
			}

			tc.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string))
			if err != nil {
				return limits, err
			}

			tc.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

		limits.Time = tc

	case values["infinite"].Set:
		limits.Infinite = true

		// unnecessary, but keep as a failsafe
		fallthrough

	default:
		// movetime manager with a very large value: effectively
		// infinite
		limits.Time = &time.MoveManager{Duration: math.MaxInt32}
	}

	return limits, nil
}
