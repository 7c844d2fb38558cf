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
	"laptudirm.com/x/ivory/pkg/board/attacks"
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/castling"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// GenerateMoves generates a move list of all the legal moves in the
// current position. If capturesOnly is true, only captures and queen
// and knight promotions are generated, which is the move set searched
// during quiescence.
func (b *Board) GenerateMoves(capturesOnly bool) []move.Move {
	s := moveGenState{Board: b, CapturesOnly: capturesOnly}
	s.Init()

	s.appendKingMoves()

	if s.CheckN < 2 {
		// only king moves are possible in double check
		s.appendKnightMoves()
		s.appendSlidingMoves()
		s.appendPawnMoves()
	}

	return s.MoveList
}

// moveGenState stores various utility data generated and used during
// move generation. It is separate from Board since this data does not
// need to persist between move generations.
type moveGenState struct {
	// board from which the moves are generated
	*Board

	// movelist that stores the generated moves
	MoveList []move.Move

	// movegen type (captures and queen/knight promotions only?)
	CapturesOnly bool

	Us, Them piece.Color

	// friendly king position
	KingSq square.Square

	// color bitboards classified by side to move
	Friends bitboard.Board
	Enemies bitboard.Board

	// squares attacked by enemy pieces, with sliding attacks computed
	// with the friendly king removed from the blockers
	SeenByEnemy bitboard.Board

	// check information: the number of checkers, and the squares which
	// block or capture every checker (universe if not in check)
	CheckN   int
	CheckRay bitboard.Board

	// squares of pieces pinned to the king, along with their pin rays
	PinRays bitboard.Board

	// places where non-king pieces may move to
	// calculated as ^Friends & CheckRay, or Enemies & CheckRay when
	// generating captures only
	Target bitboard.Board
}

// Init initializes the utility bitboards necessary for generation.
func (s *moveGenState) Init() {
	s.Us = s.SideToMove
	s.Them = s.Us.Other()

	s.KingSq = s.Kings[s.Us]

	s.Friends = s.ColorBBs[s.Us]
	s.Enemies = s.ColorBBs[s.Them]

	s.calculateCheckRay()
	s.calculatePinRays()
	s.SeenByEnemy = s.seenSquares(s.Them)

	if s.CapturesOnly {
		s.Target = s.Enemies & s.CheckRay
	} else {
		s.Target = ^s.Friends & s.CheckRay
	}

	s.MoveList = make([]move.Move, 0, move.MaxN)
}

// calculateCheckRay calculates the check ray bitmask of the current
// position, along with the number of checkers.
//
// The check ray is defined as all the squares to which a friendly piece
// can move to block or capture every checker. This is the checking piece
// and, for a sliding checker, the squares between it and the king. The
// bitmask is universe if the king is not in check. In double check it
// holds whatever checker squares were found and only king moves are
// generated.
func (s *moveGenState) calculateCheckRay() {
	s.CheckN = 0
	s.CheckRay = bitboard.Empty

	pawns := s.Pawns(s.Them) & attacks.Pawn[s.Us][s.KingSq]
	knights := s.Knights(s.Them) & attacks.Knight[s.KingSq]
	bishops := s.DiagSliders[s.Them] & attacks.Bishop(s.KingSq, s.Occupied)
	rooks := s.OrthoSliders[s.Them] & attacks.Rook(s.KingSq, s.Occupied)

	// a pawn and a knight can't be checking the king at the same time
	// as they are not sliding pieces so discovered attacks are impossible
	switch {
	case pawns != bitboard.Empty:
		s.CheckRay |= pawns
		s.CheckN++

	case knights != bitboard.Empty:
		s.CheckRay |= knights
		s.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		s.CheckRay |= attacks.Between[s.KingSq][bishopSq] | bitboard.Squares[bishopSq]
		s.CheckN++
	}

	// 2 is the largest possible value of CheckN so short circuit if
	// that has been reached
	if s.CheckN < 2 && rooks != bitboard.Empty {
		if s.CheckN == 0 && rooks.Count() > 1 {
			// double check by two rooks/queens, only after promotion
			s.CheckN += 2
		} else {
			rookSq := rooks.FirstOne()
			s.CheckRay |= attacks.Between[s.KingSq][rookSq] | bitboard.Squares[rookSq]
			s.CheckN++
		}
	}

	if s.CheckN == 0 {
		// king is not in check so the check ray is universe
		s.CheckRay = bitboard.Universe
	}
}

// calculatePinRays calculates the pin rays of the current position.
//
// A friendly piece is pinned if it is the only piece standing between an
// enemy slider and the friendly king. The pin rays contain, for every
// pin, the squares between the king and the pinning piece along with the
// pinning piece's own square. A
// pinned piece may only move along the line through its square and the
// king's square.
func (s *moveGenState) calculatePinRays() {
	s.PinRays = bitboard.Empty

	// consider enemy orthogonal sliders which would attack the king if
	// not for intervening pieces: the king's rook attack set computed
	// with only the enemies as blockers contains exactly those
	for rooks := s.OrthoSliders[s.Them] & attacks.Rook(s.KingSq, s.Enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		possiblePin := attacks.Between[s.KingSq][rook] | bitboard.Squares[rook]

		// if exactly one friendly piece blocks the ray, it is pinned
		if (possiblePin & s.Friends).Count() == 1 {
			s.PinRays |= possiblePin
		}
	}

	for bishops := s.DiagSliders[s.Them] & attacks.Bishop(s.KingSq, s.Enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		possiblePin := attacks.Between[s.KingSq][bishop] | bitboard.Squares[bishop]

		if (possiblePin & s.Friends).Count() == 1 {
			s.PinRays |= possiblePin
		}
	}
}

// pinAllows checks whether moving a piece from the given square to the
// given square is allowed with regards to pins: either the piece is not
// pinned, or the move stays on the line through its square and the king.
func (s *moveGenState) pinAllows(from, to square.Square) bool {
	return !s.PinRays.IsSet(from) || attacks.Line[s.KingSq][from].IsSet(to)
}

// seenSquares returns a bitboard containing all the squares that are
// seen (attacked) by pieces of the given color. The friendly king is not
// considered a sliding ray blocker by seenSquares since it has to move
// away from the attack, exposing the blocked squares.
func (s *moveGenState) seenSquares(by piece.Color) bitboard.Board {
	// don't consider the friendly king as a blocker
	blockers := s.Occupied &^ s.King(by.Other())

	pawns := s.Pawns(by)
	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights := s.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}

	for diag := s.DiagSliders[by]; diag != bitboard.Empty; {
		seen |= attacks.Bishop(diag.Pop(), blockers)
	}

	for ortho := s.OrthoSliders[by]; ortho != bitboard.Empty; {
		seen |= attacks.Rook(ortho.Pop(), blockers)
	}

	seen |= attacks.King[s.Kings[by]]

	return seen
}

func (s *moveGenState) appendKingMoves() {
	// the king can't move to squares occupied by a friend or seen by
	// an enemy
	kingMoves := attacks.King[s.KingSq] &^ (s.Friends | s.SeenByEnemy)
	if s.CapturesOnly {
		kingMoves &= s.Enemies
	}

	s.serializeMoves(s.KingSq, kingMoves, move.FlagNone)

	if s.CheckN == 0 && !s.CapturesOnly {
		// castling is only possible if the king is not in check
		s.appendCastlingMoves()
	}
}

func (s *moveGenState) appendCastlingMoves() {
	// for each castling move the following things are checked:
	// 1. castling that side is legal (king and rook haven't moved)
	// 2. no pieces occupy the space between the king and the rook
	// 3. the squares the king moves through are not seen by the enemy
	// if all the conditions are satisfied castling that side is legal

	switch s.Us {
	case piece.White:
		if s.State.CastlingRights&castling.WhiteK != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E1, square.G1, move.FlagCastle))
		}

		if s.State.CastlingRights&castling.WhiteQ != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E1, square.C1, move.FlagCastle))
		}

	case piece.Black:
		if s.State.CastlingRights&castling.BlackK != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E8, square.G8, move.FlagCastle))
		}

		if s.State.CastlingRights&castling.BlackQ != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E8, square.C8, move.FlagCastle))
		}
	}
}

func (s *moveGenState) appendKnightMoves() {
	// pinned knights can never move
	for knights := s.Knights(s.Us) &^ s.PinRays; knights != bitboard.Empty; {
		from := knights.Pop()
		s.serializeMoves(from, attacks.Knight[from]&s.Target, move.FlagNone)
	}
}

func (s *moveGenState) appendSlidingMoves() {
	ortho := s.OrthoSliders[s.Us]
	diag := s.DiagSliders[s.Us]

	if s.CheckN > 0 {
		// a pinned piece can never resolve a check
		ortho &^= s.PinRays
		diag &^= s.PinRays
	}

	for ortho != bitboard.Empty {
		from := ortho.Pop()
		moves := attacks.Rook(from, s.Occupied) & s.Target

		if s.PinRays.IsSet(from) {
			// pinned sliders only move along their pin line
			moves &= attacks.Line[s.KingSq][from]
		}

		s.serializeMoves(from, moves, move.FlagNone)
	}

	for diag != bitboard.Empty {
		from := diag.Pop()
		moves := attacks.Bishop(from, s.Occupied) & s.Target

		if s.PinRays.IsSet(from) {
			moves &= attacks.Line[s.KingSq][from]
		}

		s.serializeMoves(from, moves, move.FlagNone)
	}
}

func (s *moveGenState) appendPawnMoves() {
	// various properties which change depending on the side to move

	// adding down to a square gives the square "below" it, where
	// "below" is towards the moving player's own side
	var down square.Square

	var promotionRank bitboard.Board
	var doublePushRank bitboard.Board

	switch s.Us {
	case piece.White:
		down = -8
		promotionRank = bitboard.Rank8
		doublePushRank = bitboard.Rank3

	case piece.Black:
		down = 8
		promotionRank = bitboard.Rank1
		doublePushRank = bitboard.Rank6
	}

	pawns := s.Pawns(s.Us)
	empty := ^s.Occupied

	// pawn pushes: the double push rank contains the single push
	// targets from which another push is a legal double push
	pushesSingle := attacks.PawnPush(pawns, s.Us) & empty
	pushesDouble := attacks.PawnPush(pushesSingle&doublePushRank, s.Us) & empty & s.CheckRay
	pushesSingle &= s.CheckRay

	if !s.CapturesOnly {
		for simple := pushesSingle &^ promotionRank; simple != bitboard.Empty; {
			to := simple.Pop()
			from := to + down

			if s.pinAllows(from, to) {
				s.MoveList = append(s.MoveList, move.New(from, to, move.FlagNone))
			}
		}

		for double := pushesDouble; double != bitboard.Empty; {
			to := double.Pop()
			from := to + down + down

			if s.pinAllows(from, to) {
				s.MoveList = append(s.MoveList, move.New(from, to, move.FlagPawnTwoUp))
			}
		}
	}

	// push promotions are generated even in captures-only mode
	for promotions := pushesSingle & promotionRank; promotions != bitboard.Empty; {
		to := promotions.Pop()
		from := to + down

		if s.pinAllows(from, to) {
			s.appendPromotions(from, to)
		}
	}

	// pawn captures towards the a-file and the h-file
	capturesL := attacks.PawnsLeft(pawns, s.Us) & s.Enemies & s.CheckRay
	capturesR := attacks.PawnsRight(pawns, s.Us) & s.Enemies & s.CheckRay

	for simple := capturesL &^ promotionRank; simple != bitboard.Empty; {
		to := simple.Pop()
		from := to + down + 1

		if s.pinAllows(from, to) {
			s.MoveList = append(s.MoveList, move.New(from, to, move.FlagNone))
		}
	}

	for simple := capturesR &^ promotionRank; simple != bitboard.Empty; {
		to := simple.Pop()
		from := to + down - 1

		if s.pinAllows(from, to) {
			s.MoveList = append(s.MoveList, move.New(from, to, move.FlagNone))
		}
	}

	for promotions := capturesL & promotionRank; promotions != bitboard.Empty; {
		to := promotions.Pop()
		from := to + down + 1

		if s.pinAllows(from, to) {
			s.appendPromotions(from, to)
		}
	}

	for promotions := capturesR & promotionRank; promotions != bitboard.Empty; {
		to := promotions.Pop()
		from := to + down - 1

		if s.pinAllows(from, to) {
			s.appendPromotions(from, to)
		}
	}

	s.appendEnPassantMoves(down)
}

func (s *moveGenState) appendEnPassantMoves(down square.Square) {
	epSq := s.State.EnPassantSquare(s.Us)
	if epSq == square.None {
		return
	}

	// square of the enemy pawn captured en passant
	capturedSq := epSq + down

	// en passant either blocks the check on the target square or
	// captures the checking pawn, otherwise it can't resolve a check
	epMask := bitboard.Squares[epSq] | bitboard.Squares[capturedSq]
	if s.CheckRay&epMask == bitboard.Empty {
		return
	}

	// if the king and an enemy rook or queen share the rank of the two
	// pawns, removing both pawns may expose the king to a rank attack,
	// so an extra check is needed
	epRank := bitboard.Ranks[capturedSq.Rank()]
	enemyOrtho := s.OrthoSliders[s.Them] & epRank
	possiblePin := bitboard.Squares[s.KingSq]&epRank != bitboard.Empty &&
		enemyOrtho != bitboard.Empty

	for fromBB := attacks.Pawn[s.Them][epSq] & s.Pawns(s.Us); fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if !s.pinAllows(from, epSq) {
			continue
		}

		// re-run the rook attack from the king with both pawns removed
		// from the blockers and fail if an enemy slider hits
		pawnsMask := bitboard.Squares[from] | bitboard.Squares[capturedSq]
		if possiblePin && attacks.Rook(s.KingSq, s.Occupied&^pawnsMask)&enemyOrtho != bitboard.Empty {
			continue
		}

		s.MoveList = append(s.MoveList, move.New(from, epSq, move.FlagEnPassant))
	}
}

// appendPromotions appends the possible promotions of the given pawn
// move to the move list. Under-promotions to rooks and bishops are
// skipped in captures-only generation.
func (s *moveGenState) appendPromotions(from, to square.Square) {
	s.MoveList = append(s.MoveList,
		move.New(from, to, move.FlagPromoteQueen),
		move.New(from, to, move.FlagPromoteKnight),
	)

	if !s.CapturesOnly {
		s.MoveList = append(s.MoveList,
			move.New(from, to, move.FlagPromoteRook),
			move.New(from, to, move.FlagPromoteBishop),
		)
	}
}

// serializeMoves serializes the given move bitboard into the movelist.
func (s *moveGenState) serializeMoves(from square.Square, moves bitboard.Board, flag move.Flag) {
	for toBB := moves; toBB != bitboard.Empty; {
		to := toBB.Pop()
		s.MoveList = append(s.MoveList, move.New(from, to, flag))
	}
}
