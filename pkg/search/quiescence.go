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

package search

import (
	"laptudirm.com/x/ivory/internal/util"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/search/eval"
)

// quiescence is a limited search which only considers tactical moves,
// i.e. captures and promotions. Stopping the main search at a fixed
// depth and evaluating positions in the middle of a capture sequence
// makes the evaluation unreliable, which is known as the horizon
// effect. Searching the tactical moves until a quiet position is
// reached prevents it.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	if search.shouldStop() {
		return 0
	}

	search.stats.SelDepth = util.Max(search.stats.SelDepth, plys)

	// the side to move is not forced to capture anything, so the
	// static evaluation acts as a lower bound on the node's score
	// https://www.chessprogramming.org/Quiescence_Search#Standing_Pat
	standPat := search.score()
	if standPat >= beta {
		return beta
	}
	alpha = util.Max(alpha, standPat)

	moves := search.Board.GenerateMoves(true)

	// no hash move, killers, or history here: captures are ordered
	// amongst themselves by MVV-LVA
	list := move.ScoreMoves(moves, eval.OfMove(
		search.Board, move.Null,
		[2]move.Move{}, &search.history,
	))

	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		search.Board.MakeMove(m, true)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove(m, true)
		search.stats.Nodes++

		if search.stopped.Load() {
			return 0
		}

		if score >= beta {
			return beta // fail high
		}

		alpha = util.Max(alpha, score)
	}

	return alpha
}
