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

// Package board implements a complete chess board along with legal move
// generation and other related utilities.
package board

import (
	"fmt"

	"laptudirm.com/x/ivory/pkg/board/attacks"
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/mailbox"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
	"laptudirm.com/x/ivory/pkg/board/zobrist"
)

// Board represents the state of a chessboard at a given position. It is
// mutated in place by MakeMove and UnmakeMove, and all of its redundant
// representations are kept consistent incrementally.
type Board struct {
	// position data
	Hash     zobrist.Key
	Position mailbox.Board // 8x8 for fast lookup
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	// convenience bitboards rebuilt after every make/unmake
	Occupied     bitboard.Board
	OrthoSliders [piece.ColorN]bitboard.Board
	DiagSliders  [piece.ColorN]bitboard.Board

	// per colored piece square lists
	Lists [piece.N]PieceList

	// number of non-pawn non-king pieces of each color
	MajorMinorN [piece.ColorN]int

	SideToMove piece.Color

	// move counters
	Plys      int
	FullMoves int

	// current irreversible state and the stack of prior ones
	State  GameState
	states []GameState

	// zobrist keys of every position since the last irreversible move,
	// maintained only for moves made outside search
	RepetitionKeys []zobrist.Key

	// all the moves made on this board outside search
	GameMoves []move.Move

	// lazily computed check information, reset on every state change
	checkKnown bool
	inCheck    bool
}

// String converts a Board into a human readable string.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// FillSquare puts the given piece on the given empty square, updating
// the mailbox, the bitboards, the piece list, and the zobrist hash.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	if t == piece.King {
		b.Kings[c] = s
	}

	b.ColorBBs[c].Set(s)
	b.PieceBBs[t].Set(s)
	b.Lists[p].Add(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// ClearSquare removes the piece on the given square, updating the
// mailbox, the bitboards, the piece list, and the zobrist hash.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Lists[p].Remove(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// movePiece moves the given piece from one square to another. The
// target square must be empty.
func (b *Board) movePiece(from, to square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	if t == piece.King {
		b.Kings[c] = to
	}

	fromTo := bitboard.Squares[from] | bitboard.Squares[to]
	b.ColorBBs[c] ^= fromTo
	b.PieceBBs[t] ^= fromTo
	b.Lists[p].Move(from, to)

	b.Position[from] = piece.NoPiece
	b.Position[to] = p

	b.Hash ^= zobrist.PieceSquare[p][from]
	b.Hash ^= zobrist.PieceSquare[p][to]
}

// refreshConvenienceBBs rebuilds the bitboards which are derived from
// the piece and color bitboards.
func (b *Board) refreshConvenienceBBs() {
	b.Occupied = b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]

	for c := piece.White; c <= piece.Black; c++ {
		rq := b.PieceBBs[piece.Rook] | b.PieceBBs[piece.Queen]
		bq := b.PieceBBs[piece.Bishop] | b.PieceBBs[piece.Queen]

		b.OrthoSliders[c] = rq & b.ColorBBs[c]
		b.DiagSliders[c] = bq & b.ColorBBs[c]
	}
}

// Pawns returns the bitboard of pawns of the given color.
func (b *Board) Pawns(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Pawn] & b.ColorBBs[c]
}

// Knights returns the bitboard of knights of the given color.
func (b *Board) Knights(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

// Bishops returns the bitboard of bishops of the given color.
func (b *Board) Bishops(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

// Rooks returns the bitboard of rooks of the given color.
func (b *Board) Rooks(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Rook] & b.ColorBBs[c]
}

// Queens returns the bitboard of queens of the given color.
func (b *Board) Queens(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

// King returns the bitboard of the king of the given color.
func (b *Board) King(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.King] & b.ColorBBs[c]
}

// IsAttacked checks whether the given square is attacked by any piece
// of the given color.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	if attacks.Pawn[them.Other()][s]&b.Pawns(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&b.Knights(them) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&b.King(them) != bitboard.Empty {
		return true
	}

	if attacks.Bishop(s, b.Occupied)&b.DiagSliders[them] != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, b.Occupied)&b.OrthoSliders[them] != bitboard.Empty
}

// IsInCheck checks whether the side to move's king is attacked. The
// result is memoized until the next make or unmake.
func (b *Board) IsInCheck() bool {
	if !b.checkKnown {
		b.inCheck = b.IsAttacked(b.Kings[b.SideToMove], b.SideToMove.Other())
		b.checkKnown = true
	}

	return b.inCheck
}

// ColorInCheck checks whether the king of the given color is attacked.
// Unlike IsInCheck the result is not memoized.
func (b *Board) ColorInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// CalculateZobrist calculates the zobrist key of the current position
// from scratch. It is only used for debugging the incremental hash:
// board.Hash should always equal the calculated key.
func (b *Board) CalculateZobrist() zobrist.Key {
	var key zobrist.Key

	for s := square.A1; s <= square.H8; s++ {
		if p := b.Position[s]; p != piece.NoPiece {
			key ^= zobrist.PieceSquare[p][s]
		}
	}

	key ^= zobrist.EnPassant[b.State.EnPassantFile]
	key ^= zobrist.Castling[b.State.CastlingRights]

	if b.SideToMove == piece.Black {
		key ^= zobrist.SideToMove
	}

	return key
}
