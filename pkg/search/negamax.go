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
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
	"laptudirm.com/x/ivory/pkg/search/eval"
	"laptudirm.com/x/ivory/pkg/search/tt"
)

// negamax is a simplified version of the minmax searching algorithm,
// which uses a single function for both the maximizing and minimizing
// players. This can be achieved because chess is a zero-sum game and one
// player's advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount
// of nodes that need to be searched, due to the fact that a single
// refutation is enough to mark a position as worse compared to an
// already found one.
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation, extensions int) eval.Eval {
	if search.shouldStop() {
		// some search limit has been breached
		// the return value doesn't matter since this search's result
		// will be trashed and the previous iteration's will be used
		return 0
	}

	search.stats.SelDepth = util.Max(search.stats.SelDepth, plys)

	if plys > 0 {
		if search.isDraw() {
			// position is drawn by the 50-move rule or repetition
			return eval.Draw
		}

		// mate distance pruning: even a forced mate from this node
		// can't improve on a shorter mate found elsewhere
		alpha = util.Max(alpha, eval.MatedIn(plys))
		beta = util.Min(beta, eval.Mate-eval.Eval(plys))
		if alpha >= beta {
			return alpha
		}
	}

	// check for transposition table hits
	hashMove := move.Null
	if entry, hit := search.tt.Probe(search.Board.Hash); hit {
		// use the stored move for move ordering in any case
		hashMove = entry.Move

		if value, usable := entry.Usable(depth, alpha, beta, plys); usable {
			search.stats.TTHits++

			if plys == 0 {
				// keep the root iteration state in sync so that the
				// value is usable as a partial search result
				search.bestMoveThisIteration = entry.Move
				search.bestEvalThisIteration = value
				search.rootMovesSearched++
			}

			return value
		}
	}

	if depth <= 0 || plys >= MaxDepth {
		// depth limit reached: drop to quiescence search to prevent
		// the horizon effect from polluting the evaluation
		return search.quiescence(plys, alpha, beta)
	}

	moves := search.Board.GenerateMoves(false)
	if len(moves) == 0 {
		// no legal moves, so some type of mate

		if search.Board.IsInCheck() {
			return eval.MatedIn(plys) // checkmate
		}

		return eval.Draw // stalemate
	}

	// at the root the previous iteration's best move is the hash move
	if plys == 0 && search.rootBest != move.Null {
		hashMove = search.rootBest
	}

	// keep track of the original value of alpha for determining whether
	// the score will act as an upper bound entry in the transposition
	// table
	originalAlpha := alpha

	bestMove := move.Null

	// the current position takes part in repetition detection of its
	// subtree; the entry resets the window if the move leading here was
	// irreversible
	search.repetition.Push(search.Board.Hash, search.lastMoveWasIrreversible())
	defer search.repetition.TryPop()

	// move ordering; score the generated moves
	list := move.ScoreMoves(moves, eval.OfMove(
		search.Board, hashMove,
		search.killers[plys], &search.history,
	))

	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		isCapture := search.Board.Position[m.Target()] != piece.NoPiece || m.IsEnPassant()

		search.Board.MakeMove(m, true)

		// search interesting moves deeper
		extension := 0
		if extensions < MaxExtensions {
			movedType := search.Board.Position[m.Target()].Type()
			targetRank := m.Target().Rank()

			switch {
			case search.Board.IsInCheck():
				// the opponent is in check: forcing line
				extension = 1
			case movedType == piece.Pawn &&
				(targetRank == square.Rank2 || targetRank == square.Rank7):
				// a pawn one step from promotion
				extension = 1
			}
		}

		var childPV move.Variation
		var score eval.Eval

		// late move reductions: quiet moves late in the move order are
		// searched to a reduced depth with a null window, and searched
		// again properly only if they unexpectedly raise alpha
		// https://www.chessprogramming.org/Late_Move_Reductions
		needsFullSearch := true
		if extension == 0 && i >= 3 && depth >= 3 && !isCapture {
			score = -search.negamax(plys+1, depth-2, -alpha-1, -alpha, &childPV, extensions)
			needsFullSearch = score > alpha
		}

		if needsFullSearch {
			score = -search.negamax(
				plys+1, depth-1+extension,
				-beta, -alpha, &childPV,
				extensions+extension,
			)
		}

		search.Board.UnmakeMove(m, true)
		search.stats.Nodes++

		if search.stopped.Load() {
			// the child search was aborted so its score is garbage
			return 0
		}

		if plys == 0 {
			search.rootMovesSearched++
		}

		if score >= beta {
			// move is too good to be allowed by the opponent
			search.storeEntry(tt.Entry{
				Hash:  search.Board.Hash,
				Move:  m,
				Value: tt.EvalFrom(beta, plys),
				Type:  tt.LowerBound,
				Depth: uint8(depth),
			})

			if !isCapture {
				// remember quiet moves which cause cutoffs
				search.storeKiller(plys, m)
				search.updateHistory(m, depth)
			}

			return beta // fail high
		}

		if score > alpha {
			// new best move in the position
			alpha = score
			bestMove = m
			pv.Update(m, childPV)

			if plys == 0 {
				search.bestMoveThisIteration = m
				search.bestEvalThisIteration = score
			}
		}
	}

	entryType := tt.ExactEntry
	if alpha == originalAlpha {
		// no move improved alpha, so the exact score is at most alpha
		entryType = tt.UpperBound
	}

	search.storeEntry(tt.Entry{
		Hash:  search.Board.Hash,
		Move:  bestMove,
		Value: tt.EvalFrom(alpha, plys),
		Type:  entryType,
		Depth: uint8(depth),
	})

	return alpha
}

// storeEntry stores the given entry in the transposition table, unless
// the search is being cancelled, in which case the entry may be built
// from garbage values which would pollute the table.
func (search *Context) storeEntry(entry tt.Entry) {
	if !search.stopped.Load() {
		search.tt.Store(entry)
	}
}
