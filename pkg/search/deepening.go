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
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/search/eval"
)

// iterativeDeepening is the main search function. It implements an
// iterative deepening loop which calls the negamax search function for
// increasing depths until a limit is reached or the search is stopped.
// It returns the principal variation and it's evaluation.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var pv move.Variation
	var score eval.Eval

	for depth := 1; depth <= search.limits.Depth; depth++ {
		search.stats.Depth = depth
		search.bestMoveThisIteration = move.Null
		search.bestEvalThisIteration = -eval.Inf
		search.rootMovesSearched = 0

		var childPV move.Variation
		result := search.negamax(0, depth, -eval.Inf, eval.Inf, &childPV, 0)

		if search.stopped.Load() {
			// the iteration was cut short: its result is usable only
			// if at least one root move was fully searched
			if search.rootMovesSearched > 0 && search.bestMoveThisIteration != move.Null {
				pv.Update(search.bestMoveThisIteration, move.Variation{})
				score = search.bestEvalThisIteration
			}

			break
		}

		score = result
		switch {
		case childPV.Move(0) != move.Null:
			pv = childPV
		case search.bestMoveThisIteration != move.Null:
			// the whole iteration was answered by the transposition
			// table, which yields no variation, only a best move
			pv.Update(search.bestMoveThisIteration, move.Variation{})
		}

		search.rootBest = pv.Move(0)

		// report the completed iteration to the GUI
		search.pv = pv
		search.pvScore = score
		search.sendReport()

		if !search.limits.Infinite && score > eval.WinInMaxPly && int(eval.Mate-score) <= depth {
			// a forced mate within the searched depth was proved, and
			// searching deeper can't improve on it
			break
		}
	}

	return pv, score
}
