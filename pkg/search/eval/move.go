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

package eval

import (
	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/board/attacks"
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// MoveFunc represents a move evaluation function used for ordering.
type MoveFunc func(move.Move) int32

// HistoryTable stores the history scores of quiet moves, indexed by the
// side to move and the source and target squares of the move.
// https://www.chessprogramming.org/History_Heuristic
type HistoryTable [piece.ColorN][square.N][square.N]int32

// Clear clears the given history table.
func (h *HistoryTable) Clear() {
	*h = HistoryTable{}
}

// move ordering bands: each band is larger than anything the bands
// below it can reach so the order between them is strict
const (
	hashMoveScore       int32 = 1 << 30
	winningCaptureScore int32 = 1 << 24
	promotionScore      int32 = 1 << 22
	killerScore         int32 = 1 << 20
	losingCaptureScore  int32 = -(1 << 24)

	// penalties for quiet moves landing on attacked squares
	pawnAttackPenalty  int32 = -50
	pieceAttackPenalty int32 = -25
)

// OfMove returns a move evaluation function for ordering the moves of
// the given position. The hash move is searched first, followed by
// winning captures, promotions, killers, history-scored quiet moves,
// and finally losing captures.
func OfMove(b *board.Board, hashMove move.Move, killers [2]move.Move, history *HistoryTable) MoveFunc {
	them := b.SideToMove.Other()

	// squares the enemy pawns and pieces attack, used to demote
	// captures which can be met by a recapture and quiet moves which
	// walk into an attack
	pawnAttacks := attacks.PawnsLeft(b.Pawns(them), them) |
		attacks.PawnsRight(b.Pawns(them), them)
	pieceAttacks := pieceAttackedSquares(b, them)

	return func(m move.Move) int32 {
		if m == hashMove {
			// hash move from a previous search of this position is
			// most likely to be the best move
			return hashMoveScore
		}

		source := m.Source()
		target := m.Target()

		capturedType := b.Position[target].Type()
		if m.IsEnPassant() {
			capturedType = piece.Pawn
		}

		isCapture := capturedType != piece.NoType

		if isCapture {
			// capturing a valuable piece with a cheap one is likely
			// to win material
			attackerType := b.Position[source].Type()
			score := int32(Material[capturedType] - Material[attackerType])

			if (pawnAttacks | pieceAttacks).IsSet(target) {
				// opponent can recapture, drop a band
				return losingCaptureScore + score
			}

			return winningCaptureScore + score
		}

		// only non-capturing queen promotions get the promotion bonus
		if m.MoveFlag() == move.FlagPromoteQueen {
			return promotionScore
		}

		if m == killers[0] || m == killers[1] {
			// quiet moves which caused cutoffs at the same ply in
			// sibling nodes
			return killerScore
		}

		// quiet moves are ordered by their history score and the
		// change in their piece-square value
		p := b.Position[source]
		score := history[b.SideToMove][source][target]
		score += int32(psqt(psqtMG[p.Type()], target, p.Color()) -
			psqt(psqtMG[p.Type()], source, p.Color()))

		switch {
		case pawnAttacks.IsSet(target):
			score += pawnAttackPenalty
		case pieceAttacks.IsSet(target):
			score += pieceAttackPenalty
		}

		return score
	}
}

// pieceAttackedSquares returns the squares attacked by the non-pawn
// pieces of the given color.
func pieceAttackedSquares(b *board.Board, by piece.Color) bitboard.Board {
	attacked := attacks.King[b.Kings[by]]

	for knights := b.Knights(by); knights != bitboard.Empty; {
		attacked |= attacks.Knight[knights.Pop()]
	}

	for diag := b.DiagSliders[by]; diag != bitboard.Empty; {
		attacked |= attacks.Bishop(diag.Pop(), b.Occupied)
	}

	for ortho := b.OrthoSliders[by]; ortho != bitboard.Empty; {
		attacked |= attacks.Rook(ortho.Pop(), b.Occupied)
	}

	return attacked
}
