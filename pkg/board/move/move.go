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

// Package move declares a compact chess move representation and related
// utility functions.
package move

import (
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// Move represents a chess move. It packs the source square, the target
// square, and a flag describing any special nature of the move into 16
// bits. Any other information about the move, like the moving piece or
// a captured piece, is provided by the board it is played on.
//
// Format: MSB [flag 4 bits][target 6 bits][source 6 bits] LSB
type Move uint16

// MaxN is the maximum number of legal moves in any chess position.
// Move buffers of this capacity never need to grow.
// https://www.chessprogramming.org/Chess_Position#cite_note-4
const MaxN = 218

// Null Move represents a "do nothing" move on the chessboard. It is
// represented by "0000", and is useful for returning errors.
const Null Move = 0

// Flag describes the special nature of a Move, if any.
type Flag uint16

// constants representing the various move flags: the promotion flags are
// contiguous and larger than every other flag, which makes checking for
// a promotion a single comparison
const (
	FlagNone Flag = iota
	FlagEnPassant
	FlagCastle
	FlagPawnTwoUp
	FlagPromoteQueen
	FlagPromoteKnight
	FlagPromoteRook
	FlagPromoteBishop
)

const (
	// bit width of each field
	sourceWidth = 6
	targetWidth = 6

	// bit offsets of each field
	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	flagOffset   = targetOffset + targetWidth

	// bit masks of each field
	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
)

// New creates a new Move value with the provided data.
func New(source, target square.Square, flag Flag) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(flag) << flagOffset
	return m
}

// String converts a move to it's long algebraic notation form.
// For example "e2e4", "e1g1"(castling), "d7d8q"(promotion), "0000"(null).
func (m Move) String() string {
	// null move is a special case
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()

	// add promotion indicator
	if m.IsPromotion() {
		s += m.PromotionPiece().String()
	}

	return s
}

// Source returns the source square of the move.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the target square of the move.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// MoveFlag returns the flag of the move.
func (m Move) MoveFlag() Flag {
	return Flag(m >> flagOffset)
}

// IsPromotion checks if the move is a promotion.
func (m Move) IsPromotion() bool {
	return m.MoveFlag() >= FlagPromoteQueen
}

// IsEnPassant checks if the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.MoveFlag() == FlagEnPassant
}

// IsCastle checks if the move is a castling move.
func (m Move) IsCastle() bool {
	return m.MoveFlag() == FlagCastle
}

// PromotionPiece returns the piece type the move promotes to, or
// piece.NoType if the move is not a promotion.
func (m Move) PromotionPiece() piece.Type {
	switch m.MoveFlag() {
	case FlagPromoteQueen:
		return piece.Queen
	case FlagPromoteKnight:
		return piece.Knight
	case FlagPromoteRook:
		return piece.Rook
	case FlagPromoteBishop:
		return piece.Bishop
	default:
		return piece.NoType
	}
}

// PromotionFlag returns the move flag which promotes to the given piece
// type.
func PromotionFlag(t piece.Type) Flag {
	switch t {
	case piece.Queen:
		return FlagPromoteQueen
	case piece.Knight:
		return FlagPromoteKnight
	case piece.Rook:
		return FlagPromoteRook
	case piece.Bishop:
		return FlagPromoteBishop
	default:
		panic("promotion flag: invalid promotion piece")
	}
}
