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

package eval_test

import (
	"testing"

	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/search/eval"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := board.New(board.StartFEN)

	if score := eval.OfBoard(b); score != 0 {
		t.Errorf("start position evaluates to %d", score)
	}
}

func TestEvaluationIsSideToMoveRelative(t *testing.T) {
	// mirrored positions must evaluate identically for both sides
	white := board.New("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := board.New("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")

	if w, b := eval.OfBoard(white), eval.OfBoard(black); w != b {
		t.Errorf("mirrored positions evaluate differently: %d != %d", w, b)
	}
}

func TestMaterialAdvantage(t *testing.T) {
	// white is up a queen
	b := board.New("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")

	if score := eval.OfBoard(b); score < eval.Eval(800) {
		t.Errorf("queen advantage evaluates to only %d", score)
	}
}

func TestMoveOrderingBands(t *testing.T) {
	// white can capture the d5 pawn with the e4 pawn or the knight,
	// and has a quiet rook move available
	b := board.New("rnbqkbnr/ppp1pppp/8/3p4/4P3/2N5/PPPP1PPP/R1BQKBNR w KQkq - 0 2")

	scorer := eval.OfMove(b, move.Null, [2]move.Move{}, &eval.HistoryTable{})

	pawnTakes := b.NewMoveFromString("e4d5")
	knightTakes := b.NewMoveFromString("c3d5")
	quiet := b.NewMoveFromString("a1b1")

	// pawn takes pawn is a better capture than knight takes pawn
	if scorer(pawnTakes) <= scorer(knightTakes) {
		t.Error("MVV-LVA does not prefer the cheaper attacker")
	}

	// the d5 pawn is defended by the queen, so both captures are
	// losing captures and order below the quiet move
	if scorer(quiet) <= scorer(knightTakes) {
		t.Error("losing capture ordered above a quiet move")
	}

	// capturing an undefended piece orders above quiet moves
	won := board.New("4k3/8/8/3r4/4P3/8/8/4K3 w - - 0 1")
	wonScorer := eval.OfMove(won, move.Null, [2]move.Move{}, &eval.HistoryTable{})

	winning := won.NewMoveFromString("e4d5")
	kingMove := won.NewMoveFromString("e1d2")

	if wonScorer(winning) <= wonScorer(kingMove) {
		t.Error("winning capture ordered below a quiet move")
	}

	// the hash move must dominate everything else
	hashScorer := eval.OfMove(b, quiet, [2]move.Move{}, &eval.HistoryTable{})
	if hashScorer(quiet) <= hashScorer(pawnTakes) {
		t.Error("hash move not ordered first")
	}
}

func TestMateScoreStrings(t *testing.T) {
	tests := []struct {
		score eval.Eval
		want  string
	}{
		{eval.Mate - 1, "mate 1"},
		{eval.Mate - 2, "mate 1"},
		{eval.Mate - 3, "mate 2"},
		{eval.MatedIn(2), "mate -1"},
		{100, "cp 100"},
		{-42, "cp -42"},
	}

	for _, test := range tests {
		if got := test.score.String(); got != test.want {
			t.Errorf("score %d: expected %q, got %q", test.score, test.want, got)
		}
	}
}
