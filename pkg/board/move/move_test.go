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

package move_test

import (
	"testing"

	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

func TestMoveFields(t *testing.T) {
	m := move.New(square.E2, square.E4, move.FlagPawnTwoUp)

	if m.Source() != square.E2 || m.Target() != square.E4 {
		t.Errorf("wrong squares: %s %s", m.Source(), m.Target())
	}

	if m.MoveFlag() != move.FlagPawnTwoUp {
		t.Errorf("wrong flag: %d", m.MoveFlag())
	}

	if m.IsPromotion() || m.IsCastle() || m.IsEnPassant() {
		t.Error("wrong special move classification")
	}
}

func TestPromotionFlags(t *testing.T) {
	// the promotion flags are contiguous and larger than every other
	// flag, and map back to their piece types
	types := []piece.Type{piece.Queen, piece.Knight, piece.Rook, piece.Bishop}

	for _, p := range types {
		m := move.New(square.E7, square.E8, move.PromotionFlag(p))

		if !m.IsPromotion() {
			t.Errorf("%v promotion not classified as promotion", p)
		}

		if m.PromotionPiece() != p {
			t.Errorf("wrong promotion piece: expected %v, got %v", p, m.PromotionPiece())
		}
	}

	for _, flag := range []move.Flag{
		move.FlagNone, move.FlagEnPassant, move.FlagCastle, move.FlagPawnTwoUp,
	} {
		if move.New(square.E2, square.E4, flag).IsPromotion() {
			t.Errorf("flag %d wrongly classified as promotion", flag)
		}
	}
}

func TestMoveStrings(t *testing.T) {
	tests := []struct {
		move move.Move
		want string
	}{
		{move.Null, "0000"},
		{move.New(square.E2, square.E4, move.FlagNone), "e2e4"},
		{move.New(square.E1, square.G1, move.FlagCastle), "e1g1"},
		{move.New(square.E7, square.E8, move.FlagPromoteQueen), "e7e8q"},
		{move.New(square.A2, square.A1, move.FlagPromoteKnight), "a2a1n"},
	}

	for _, test := range tests {
		if got := test.move.String(); got != test.want {
			t.Errorf("expected %q, got %q", test.want, got)
		}
	}
}
