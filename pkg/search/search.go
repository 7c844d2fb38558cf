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

// Package search implements various functions used to search a
// position for the best move.
package search

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"laptudirm.com/x/ivory/internal/logging"
	"laptudirm.com/x/ivory/internal/util"
	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/search/eval"
	"laptudirm.com/x/ivory/pkg/search/repetition"
	"laptudirm.com/x/ivory/pkg/search/tt"
)

var log = logging.GetLog("search")

// maximum depth to search to
const MaxDepth = 256

// maximum number of extensions on a single root-to-leaf path
const MaxExtensions = 16

// NewContext creates a new search Context which reports search progress
// to the given reporter function and uses a transposition table of the
// given size in megabytes.
func NewContext(reporter func(Report), hash int) *Context {
	context := Context{
		Board:    board.New(board.StartFEN),
		tt:       tt.NewTable(hash),
		reporter: reporter,
	}
	context.stopped.Store(true)

	return &context
}

// Context stores the state of a search worker: the board being
// searched, the transposition table, and the various heuristic tables,
// along with per-search state like limits and statistics. A Context is
// reused between searches of the same game.
type Context struct {
	// search state
	Board *board.Board
	tt    *tt.Table

	repetition repetition.Table

	// heuristic tables: killers persist across the searches of a game
	// while the history table is cleared at the start of every search
	killers [MaxDepth + 1][2]move.Move
	history eval.HistoryTable

	// cooperative cancellation state: the search id invalidates the
	// delayed time-out callbacks of superseded searches
	stopped  atomic.Bool
	searchID atomic.Int64

	// search limits
	limits Limits

	// root iteration state
	rootBest              move.Move
	bestMoveThisIteration move.Move
	bestEvalThisIteration eval.Eval
	rootMovesSearched     int

	// last fully searched principal variation
	pv      move.Variation
	pvScore eval.Eval

	// stats
	stats    Stats
	lastInfo time.Time

	reporter func(Report)
}

// InProgress reports whether a search is in progress on the given context.
func (search *Context) InProgress() bool {
	return !search.stopped.Load()
}

// Stop stops any ongoing search on the given context. The main search
// function will return shortly after this function is called.
func (search *Context) Stop() {
	search.stopped.Store(true)
}

// NewGame clears all the state which carries over between the searches
// of a single game: the transposition table, the killer table, and the
// history table.
func (search *Context) NewGame() {
	search.tt.Clear()
	search.killers = [MaxDepth + 1][2]move.Move{}
	search.history.Clear()
}

// ResizeTT resizes the transposition table to the given size in
// megabytes, discarding its contents.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

// Search initializes the context for a new search and calls the main
// iterative deepening function. It checks if the position is illegal
// and recovers from any internal error so that a started search always
// produces a result.
func (search *Context) Search(limits Limits) (pv move.Variation, score eval.Eval, err error) {
	defer func() {
		if r := recover(); r != nil {
			// an internal invariant was violated: report the state
			// which caused it so it can be reproduced, and give up
			// on the current search
			err = fmt.Errorf("search: internal error: %v", r)
			log.Errorf("search died: %v", r)
			search.reportString(fmt.Sprintf("internal error: %v", r))
			search.reportString("moves " + fmt.Sprint(search.Board.GameMoves))
			search.reportString("position\n" + search.Board.String())
			search.Stop()
		}
	}()

	search.start(limits)
	defer search.Stop()

	// illegal position check; the king can be captured
	if search.Board.ColorInCheck(search.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal")
	}

	// the game may already have reached a drawn position, in which
	// case any legal move keeps the draw
	if search.isDraw() {
		if moves := search.Board.GenerateMoves(false); len(moves) > 0 {
			pv.Update(moves[0], move.Variation{})
		}

		return pv, eval.Draw, nil
	}

	pv, score = search.iterativeDeepening()

	// cancellation must never produce an empty result for a position
	// which has legal moves
	if pv.Move(0) == move.Null {
		if moves := search.Board.GenerateMoves(false); len(moves) > 0 {
			pv.Update(moves[0], move.Variation{})
		}
	}

	return pv, score, nil
}

// start initializes the search state at the start of a new search.
func (search *Context) start(limits Limits) {
	limits.Depth = util.Clamp(limits.Depth, 1, MaxDepth)
	if limits.Nodes == 0 {
		limits.Nodes = int(^uint(0) >> 1)
	}

	search.limits = limits

	// reset transient search state
	search.stats = Stats{SearchStart: time.Now()}
	search.lastInfo = time.Now()
	search.history.Clear()
	search.rootBest = move.Null
	search.pv.Clear()
	search.pvScore = 0

	// seed the repetition table with the game history
	search.repetition.Init(search.Board.RepetitionKeys)

	search.stopped.Store(false)
	id := search.searchID.Add(1)

	search.limits.Time.GetDeadline()
	search.armTimer(id)
}

// armTimer schedules a delayed cancellation of the search with the
// given id. A callback belonging to a superseded search is a no-op.
func (search *Context) armTimer(id int64) {
	if search.limits.Infinite {
		return
	}

	time.AfterFunc(search.limits.Time.ThinkTime(), func() {
		if search.searchID.Load() == id {
			search.Stop()
		}
	})
}

// shouldStop checks the various limits provided for the search and
// reports if the search should be stopped at that moment. It also
// periodically emits progress reports.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped.Load():
		// search already stopped
		// no checking necessary
		return true

	case search.stats.Nodes&1023 != 0:
		// only check once every 1024 nodes to prevent
		// spending too much time here
		return false

	default:
		// emit a progress report roughly every 100 milliseconds
		if time.Since(search.lastInfo) >= 100*time.Millisecond {
			search.sendReport()
		}

		if search.limits.Infinite {
			// infinite searches only stop on request
			return false
		}

		if search.stats.Nodes > search.limits.Nodes || search.limits.Time.Expired() {
			// node limit or time limit crossed
			search.Stop()
			return true
		}

		return false
	}
}

// score returns the static evaluation of the current context's internal
// board. Any changes to the evaluation function should be done here.
func (search *Context) score() eval.Eval {
	return eval.OfBoard(search.Board)
}

// lastMoveWasIrreversible checks whether the move leading to the
// current position was a capture or a pawn move.
func (search *Context) lastMoveWasIrreversible() bool {
	return search.Board.State.FiftyMoveCounter == 0
}

// isDraw checks whether the current position is drawn by the 50-move
// rule or by repetition. The first repeat inside the repetition window
// already counts as a draw.
func (search *Context) isDraw() bool {
	return search.Board.State.FiftyMoveCounter >= 100 ||
		search.repetition.Contains(search.Board.Hash)
}

// String returns a human-readable representation of the search board.
func (search *Context) String() string {
	return search.Board.String()
}

// UpdatePosition updates the search board with the given fen string.
func (search *Context) UpdatePosition(fen string) {
	search.Board = board.New(fen)
}

// MakeMoves makes the given UCI move strings on the search board. The
// moves are not checked for legality, as the UCI protocol guarantees
// that the host only sends legal moves.
func (search *Context) MakeMoves(moves ...string) {
	for _, m := range moves {
		search.Board.MakeMove(search.Board.NewMoveFromString(m), false)
	}
}

// SideToMove returns the side to move of the search board.
func (search *Context) SideToMove() piece.Color {
	return search.Board.SideToMove
}
