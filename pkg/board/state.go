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

package board

import (
	"laptudirm.com/x/ivory/pkg/board/castling"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
	"laptudirm.com/x/ivory/pkg/board/zobrist"
)

// GameState is an immutable snapshot of the irreversible parts of a
// position. A new snapshot is pushed when a move is made and popped when
// it is unmade, which is what makes moves reversible.
type GameState struct {
	// piece captured by the move leading to this state, for unmake
	CapturedPiece piece.Piece

	// file of the current en passant target square, stored 1-indexed
	// so that 0 represents no en passant square
	EnPassantFile int8

	CastlingRights castling.Rights

	// number of plys since the last capture or pawn move, for
	// positions drawn by the 50-move rule
	FiftyMoveCounter int

	// zobrist key of this position
	Hash zobrist.Key
}

// EnPassantSquare returns the en passant target square of the state for
// the given side to move, or square.None if there is none.
func (state *GameState) EnPassantSquare(stm piece.Color) square.Square {
	if state.EnPassantFile == 0 {
		return square.None
	}

	rank := square.Rank6
	if stm == piece.Black {
		rank = square.Rank3
	}

	return square.New(square.File(state.EnPassantFile-1), rank)
}
