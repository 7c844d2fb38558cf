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
)

// walk makes every legal move of the given board up to the given depth,
// calling check on the board after every make and unmake.
func walk(t *testing.T, b *board.Board, depth int, check func(*board.Board)) {
	t.Helper()

	if depth == 0 {
		return
	}

	for _, m := range b.GenerateMoves(false) {
		before := b.FEN()
		beforeHash := b.Hash

		b.MakeMove(m, true)
		check(b)

		walk(t, b, depth-1, check)

		b.UnmakeMove(m, true)
		check(b)

		if after := b.FEN(); after != before {
			t.Fatalf("%s: board not restored\nbefore %s\nafter  %s", m, before, after)
		}

		if b.Hash != beforeHash {
			t.Fatalf("%s: hash not restored: %X != %X", m, b.Hash, beforeHash)
		}
	}
}

func TestMakeUnmakeRestoresBoard(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := board.New(fen)
			walk(t, b, 3, func(*board.Board) {})
		})
	}
}

func TestIncrementalZobrist(t *testing.T) {
	// the incrementally updated hash must always equal the hash
	// calculated from scratch
	b := board.New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	walk(t, b, 3, func(b *board.Board) {
		if b.Hash != b.CalculateZobrist() {
			t.Fatalf("incremental hash diverged at %s", b.FEN())
		}
	})
}

func TestMoveGenerationIsLegal(t *testing.T) {
	// after making any generated move, the side that just moved must
	// not be left in check
	b := board.New("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")

	walk(t, b, 3, func(b *board.Board) {
		if b.ColorInCheck(b.SideToMove.Other()) {
			t.Fatalf("move left own king in check at %s", b.FEN())
		}
	})
}

func TestUCIMoveRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
	}

	for _, fen := range fens {
		b := board.New(fen)

		for _, m := range b.GenerateMoves(false) {
			if decoded := b.NewMoveFromString(m.String()); decoded != m {
				t.Errorf("%s: decoding %q gave %q", fen, m, decoded)
			}
		}
	}
}
