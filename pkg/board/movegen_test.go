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

package board_test

import (
	"testing"

	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/square"
)

func TestEnPassantHorizontalPin(t *testing.T) {
	// both pawns stand between the king and a rook on the fifth rank:
	// capturing en passant would remove both and expose the king
	b := board.New("7k/8/8/KPp4r/8/8/8/8 w - c6 0 1")

	for _, m := range b.GenerateMoves(false) {
		if m.IsEnPassant() {
			t.Errorf("generated illegal en passant %s", m)
		}
	}
}

func TestEnPassantLegal(t *testing.T) {
	// without the horizontal pin the same capture is legal
	b := board.New("7k/8/8/1Pp5/8/8/8/7K w - c6 0 1")

	found := false
	for _, m := range b.GenerateMoves(false) {
		if m.IsEnPassant() && m.Source() == square.B5 && m.Target() == square.C6 {
			found = true
		}
	}

	if !found {
		t.Error("legal en passant capture not generated")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// the black king is checked by both the knight and the rook
	b := board.New("4k3/8/3N4/8/8/8/8/4R1K1 b - - 0 1")

	moves := b.GenerateMoves(false)
	if len(moves) == 0 {
		t.Fatal("no moves generated in double check")
	}

	for _, m := range moves {
		if m.Source() != square.E8 {
			t.Errorf("non-king move %s generated in double check", m)
		}
	}
}

func TestStalemate(t *testing.T) {
	b := board.New("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	if moves := b.GenerateMoves(false); len(moves) != 0 {
		t.Errorf("expected no moves in stalemate, got %v", moves)
	}

	if b.IsInCheck() {
		t.Error("stalemated side reported in check")
	}
}

func TestStartPositionMoves(t *testing.T) {
	b := board.New(board.StartFEN)

	if moves := b.GenerateMoves(false); len(moves) != 20 {
		t.Errorf("expected 20 moves in the start position, got %d", len(moves))
	}
}

func TestCapturesOnlyGeneration(t *testing.T) {
	// every move generated in captures-only mode must be a capture or
	// a queen/knight promotion
	b := board.New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	for _, m := range b.GenerateMoves(true) {
		isCapture := b.Position[m.Target()] != 0 || m.IsEnPassant()
		isPromotion := m.MoveFlag() == move.FlagPromoteQueen ||
			m.MoveFlag() == move.FlagPromoteKnight

		if !isCapture && !isPromotion {
			t.Errorf("quiet move %s generated in captures-only mode", m)
		}
	}
}
