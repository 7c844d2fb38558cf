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
	"strings"

	"laptudirm.com/x/ivory/pkg/board/castling"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
	"laptudirm.com/x/ivory/pkg/board/zobrist"
)

// MakeMove plays the given legal move on the Board. The inSearch flag
// reports whether the move is being made inside a search tree: moves
// made outside search are additionally recorded in the game history and
// the repetition key list.
func (b *Board) MakeMove(m move.Move, inSearch bool) {
	source := m.Source()
	target := m.Target()
	flag := m.MoveFlag()

	us := b.SideToMove
	them := us.Other()

	movingPiece := b.Position[source]

	newState := GameState{
		CastlingRights:   b.State.CastlingRights,
		FiftyMoveCounter: b.State.FiftyMoveCounter + 1,
	}

	// during en passant the capture square differs from the target
	captureSq := target
	if flag == move.FlagEnPassant {
		if us == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}
	}

	if capturedPiece := b.Position[captureSq]; capturedPiece != piece.NoPiece {
		b.ClearSquare(captureSq)

		if !capturedPiece.Is(piece.Pawn) {
			b.MajorMinorN[them]--
		}

		newState.CapturedPiece = capturedPiece
		newState.FiftyMoveCounter = 0
	}

	b.movePiece(source, target, movingPiece)

	if movingPiece.Is(piece.Pawn) {
		newState.FiftyMoveCounter = 0
	}

	switch {
	case flag == move.FlagCastle:
		// castle the rook to the other side of the king
		rookInfo := castling.Rooks[target]
		b.movePiece(rookInfo.From, rookInfo.To, rookInfo.RookType)

	case flag == move.FlagPawnTwoUp:
		// record the en passant file 1-indexed so 0 means none
		newState.EnPassantFile = int8(source.File()) + 1

	case m.IsPromotion():
		// replace the pawn with the promoted piece
		b.ClearSquare(target)
		b.FillSquare(target, piece.New(m.PromotionPiece(), us))
		b.MajorMinorN[us]++
	}

	// moves from or to the rook and king home squares lose the
	// corresponding castling rights
	b.Hash ^= zobrist.Castling[newState.CastlingRights]
	newState.CastlingRights &^= castling.RightUpdates[source]
	newState.CastlingRights &^= castling.RightUpdates[target]
	b.Hash ^= zobrist.Castling[newState.CastlingRights]

	// switch out the en passant files in the hash
	b.Hash ^= zobrist.EnPassant[b.State.EnPassantFile]
	b.Hash ^= zobrist.EnPassant[newState.EnPassantFile]

	// switch turn
	b.Plys++
	b.Hash ^= zobrist.SideToMove
	if b.SideToMove = them; b.SideToMove == piece.White {
		b.FullMoves++
	}

	b.refreshConvenienceBBs()
	b.checkKnown = false

	// push the new state
	newState.Hash = b.Hash
	b.states = append(b.states, b.State)
	b.State = newState

	if !inSearch {
		b.GameMoves = append(b.GameMoves, m)

		if newState.FiftyMoveCounter == 0 {
			// irreversible move: prior positions can never repeat
			b.RepetitionKeys = b.RepetitionKeys[:0]
		}
		b.RepetitionKeys = append(b.RepetitionKeys, b.Hash)
	}
}

// UnmakeMove unmakes the given move, which must be the last move played
// on the Board. The position and game state are restored to their
// pre-make values. Outside search only the last repetition key is
// dropped: keys cleared by an irreversible move are not restored.
func (b *Board) UnmakeMove(m move.Move, inSearch bool) {
	// switch turn back
	b.Plys--
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}

	us := b.SideToMove
	them := us.Other()

	source := m.Source()
	target := m.Target()
	flag := m.MoveFlag()

	capturedPiece := b.State.CapturedPiece

	// un-promote before un-moving so that the pawn returns
	movedPiece := b.Position[target]
	if m.IsPromotion() {
		movedPiece = piece.New(piece.Pawn, us)
		b.ClearSquare(target)
		b.FillSquare(target, movedPiece)
		b.MajorMinorN[us]--
	}

	b.movePiece(target, source, movedPiece)

	switch flag {
	case move.FlagCastle:
		// un-castle the rook
		rookInfo := castling.Rooks[target]
		b.movePiece(rookInfo.To, rookInfo.From, rookInfo.RookType)

	case move.FlagEnPassant:
		// the captured pawn returns behind the target square
		captureSq := target
		if us == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}

		b.FillSquare(captureSq, capturedPiece)

	default:
		if capturedPiece != piece.NoPiece {
			b.FillSquare(target, capturedPiece)

			if !capturedPiece.Is(piece.Pawn) {
				b.MajorMinorN[them]++
			}
		}
	}

	// pop the old state; the stored hash undoes every incremental
	// change without recomputation
	b.State = b.states[len(b.states)-1]
	b.states = b.states[:len(b.states)-1]
	b.Hash = b.State.Hash

	b.refreshConvenienceBBs()
	b.checkKnown = false

	if !inSearch {
		b.GameMoves = b.GameMoves[:len(b.GameMoves)-1]

		if n := len(b.RepetitionKeys); n > 0 {
			b.RepetitionKeys = b.RepetitionKeys[:n-1]
		}
	}
}

// MakeNullMove passes the turn to the opponent without moving any
// piece. It must not be called while the side to move is in check.
func (b *Board) MakeNullMove() {
	newState := b.State
	newState.CapturedPiece = piece.NoPiece

	// clear the en passant square
	b.Hash ^= zobrist.EnPassant[b.State.EnPassantFile]
	newState.EnPassantFile = 0
	b.Hash ^= zobrist.EnPassant[newState.EnPassantFile]

	// switch turn
	b.Plys++
	b.Hash ^= zobrist.SideToMove
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}

	b.checkKnown = false

	newState.Hash = b.Hash
	b.states = append(b.states, b.State)
	b.State = newState
}

// UnmakeNullMove unmakes the last null move made on the Board.
func (b *Board) UnmakeNullMove() {
	b.Plys--
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}

	b.State = b.states[len(b.states)-1]
	b.states = b.states[:len(b.states)-1]
	b.Hash = b.State.Hash

	b.checkKnown = false
}

// LastMove returns the last move made on the Board outside search, or
// move.Null if no moves have been made.
func (b *Board) LastMove() move.Move {
	if len(b.GameMoves) == 0 {
		return move.Null
	}

	return b.GameMoves[len(b.GameMoves)-1]
}

// NewMoveFromString decodes the given UCI move string into a move.Move
// by adding the necessary contextual information from the Board. The
// move is not checked for legality.
func (b *Board) NewMoveFromString(m string) move.Move {
	source := square.NewFromString(m[:2])
	target := square.NewFromString(m[2:4])

	flag := move.FlagNone

	p := b.Position[source]
	switch {
	case len(m) == 5:
		t := piece.NewFromString(strings.ToLower(m[4:])).Type()
		flag = move.PromotionFlag(t)

	case p.Is(piece.Pawn) && target == b.State.EnPassantSquare(b.SideToMove):
		flag = move.FlagEnPassant

	case p.Is(piece.Pawn) && (target-source == 16 || source-target == 16):
		flag = move.FlagPawnTwoUp

	case p.Is(piece.King) && (target-source == 2 || source-target == 2):
		flag = move.FlagCastle
	}

	return move.New(source, target, flag)
}
