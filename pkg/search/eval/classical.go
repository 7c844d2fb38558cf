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
	"laptudirm.com/x/ivory/internal/util"
	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/board/attacks"
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// the scale of the endgame transition: 0 is the middle game and
// transitionScale is reached once the enemy has only pawns and its king
const transitionScale = 256

// material at which the endgame transition starts, the value of two
// rooks, a bishop, and a knight
const endgameStart = 2*500 + 320 + 300

// OfBoard statically evaluates the given position in centipawns from
// the perspective of the side to move. The evaluation is classical:
// material, piece-square tables, pawn structure, king safety, and a
// mop-up term for won endgames.
func OfBoard(b *board.Board) Eval {
	score := evaluateColor(b, piece.White) - evaluateColor(b, piece.Black)

	if b.SideToMove == piece.Black {
		score = -score
	}

	return score
}

// materialOf returns the material of the given color without pawns and
// the king, which is the measure used for the endgame transition.
func materialOf(b *board.Board, c piece.Color) Eval {
	var material Eval
	for t := piece.Knight; t <= piece.Queen; t++ {
		material += Eval(b.Lists[piece.New(t, c)].Count()) * Material[t]
	}

	return material
}

// transitionOf returns the endgame transition of the given color's
// evaluation, in the range [0, transitionScale]. The transition depends
// on the material of the opponent: with few enemy pieces left the
// endgame tables take over.
func transitionOf(b *board.Board, c piece.Color) Eval {
	enemyMaterial := materialOf(b, c.Other())
	return transitionScale - util.Min(transitionScale, enemyMaterial*transitionScale/endgameStart)
}

// evaluateColor returns the evaluation of the given color's pieces.
func evaluateColor(b *board.Board, us piece.Color) Eval {
	them := us.Other()
	transition := transitionOf(b, us)

	var score Eval

	// material and piece-square tables, interpolated between the middle
	// game and end game tables by the endgame transition
	for t := piece.Pawn; t <= piece.King; t++ {
		list := &b.Lists[piece.New(t, us)]

		score += Eval(list.Count()) * Material[t]

		for i := 0; i < list.Count(); i++ {
			s := list.Square(i)
			mg := psqt(psqtMG[t], s, us)
			eg := psqt(psqtEG[t], s, us)
			score += util.Lerp(mg, eg, transition, transitionScale)
		}
	}

	score += evaluatePawns(b, us)
	score += evaluateKing(b, us, transition)

	// reward cornering the enemy king when clearly ahead in a winning
	// endgame, which helps the search find mates with bare material
	myMaterial := materialOf(b, us) + Eval(b.Pawns(us).Count())*Material[piece.Pawn]
	enemyMaterial := materialOf(b, them) + Eval(b.Pawns(them).Count())*Material[piece.Pawn]

	if myMaterial > enemyMaterial+2*Material[piece.Pawn] && transition > 0 {
		kingSq := b.Kings[us]
		enemyKingSq := b.Kings[them]

		mopUp := Eval(attacks.CenterManhattan[enemyKingSq]) * 10
		mopUp += Eval(14-attacks.Manhattan[kingSq][enemyKingSq]) * 4

		score += mopUp * transition / transitionScale
	}

	return score
}

// evaluatePawns returns the pawn structure evaluation of the given
// color: bonuses for passed pawns and penalties for isolated ones.
func evaluatePawns(b *board.Board, us piece.Color) Eval {
	them := us.Other()

	friendly := b.Pawns(us)
	enemy := b.Pawns(them)

	var score Eval
	isolatedN := 0

	for pawns := friendly; pawns != bitboard.Empty; {
		s := pawns.Pop()

		if passedPawnMasks[us][s]&enemy == bitboard.Empty {
			// number of squares away from promotion
			left := int(square.Rank8 - s.Rank())
			if us == piece.Black {
				left = int(s.Rank())
			}

			score += passedPawnBonus[left]
		}

		if adjacentFiles[s.File()]&friendly == bitboard.Empty {
			isolatedN++
		}
	}

	score += isolatedPawnPenalty[isolatedN]

	return score
}

// evaluateKing returns the king safety evaluation of the given color: a
// squared penalty for missing pawn shield squares and a penalty for
// open files towards the king while the enemy has heavy pieces.
func evaluateKing(b *board.Board, us piece.Color, transition Eval) Eval {
	them := us.Other()
	kingSq := b.Kings[us]
	kingFile := kingSq.File()

	// king safety only matters while the enemy has attacking material
	if transition == transitionScale {
		return 0
	}

	// a centralized king guards no flank and gets no shield penalty,
	// the central squares are penalized by the piece-square tables
	if kingFile > square.FileC && kingFile < square.FileF {
		return 0
	}

	var penalty Eval

	// squared penalty for missing shield pawns in front of the king
	shield := pawnShieldMasks[us][kingSq] & bitboard.Ranks[shieldRank(us, kingSq)]
	missing := Eval(shield.Count() - (shield & b.Pawns(us)).Count())
	penalty += missing * missing * 15

	// extra penalty for open and semi-open files towards the king when
	// the enemy still has rooks or queens to use them
	if b.OrthoSliders[them] != bitboard.Empty {
		files := bitboard.Files[kingFile] | adjacentFiles[kingFile]
		for f := kingFile - 1; f <= kingFile+1; f++ {
			if f < square.FileA || f > square.FileH {
				continue
			}

			file := files & bitboard.Files[f]
			switch {
			case file&(b.Pawns(us)|b.Pawns(them)) == bitboard.Empty:
				penalty += 25 // fully open file
			case file&b.Pawns(us) == bitboard.Empty:
				penalty += 15 // semi-open file
			}
		}
	}

	// the penalty tapers off as the enemy material disappears
	return -penalty * (transitionScale - transition) / transitionScale
}

// shieldRank returns the rank directly in front of a king of the given
// color, clamped to the board.
func shieldRank(us piece.Color, kingSq square.Square) square.Rank {
	if us == piece.White {
		return util.Min(kingSq.Rank()+1, square.Rank8)
	}

	return util.Max(kingSq.Rank()-1, square.Rank1)
}
