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
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// material values of the chess pieces
var Material = [piece.TypeN]Eval{
	piece.Pawn:   100,
	piece.Knight: 300,
	piece.Bishop: 320,
	piece.Rook:   500,
	piece.Queen:  900,
}

// piece-square tables
//
// The tables are written from white's perspective with the eighth rank
// as the first row, which is how a chessboard is usually diagrammed.
// The psqt function takes care of the perspective flip.

var pawnsMG = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnsEG = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	80, 80, 80, 80, 80, 80, 80, 80,
	50, 50, 50, 50, 50, 50, 50, 50,
	30, 30, 30, 30, 30, 30, 30, 30,
	20, 20, 20, 20, 20, 20, 20, 20,
	10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knights = [square.N]Eval{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishops = [square.N]Eval{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rooks = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queens = [square.N]Eval{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMG = [square.N]Eval{
	-80, -70, -70, -70, -70, -70, -70, -80,
	-60, -60, -60, -60, -60, -60, -60, -60,
	-40, -50, -50, -60, -60, -50, -50, -40,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, -5, -5, -5, -5, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEG = [square.N]Eval{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, -5, 20, 30, 30, 20, -5, -10,
	-15, -10, 35, 45, 45, 35, -10, -15,
	-20, -15, 30, 40, 40, 30, -15, -20,
	-25, -20, 20, 25, 25, 20, -20, -25,
	-25, -30, 0, 0, 0, 0, -30, -25,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// middle game piece-square tables indexed by piece type
var psqtMG = [piece.TypeN]*[square.N]Eval{
	piece.Pawn:   &pawnsMG,
	piece.Knight: &knights,
	piece.Bishop: &bishops,
	piece.Rook:   &rooks,
	piece.Queen:  &queens,
	piece.King:   &kingMG,
}

// end game piece-square tables indexed by piece type: only the pawn and
// king tables change as the game progresses
var psqtEG = [piece.TypeN]*[square.N]Eval{
	piece.Pawn:   &pawnsEG,
	piece.Knight: &knights,
	piece.Bishop: &bishops,
	piece.Rook:   &rooks,
	piece.Queen:  &queens,
	piece.King:   &kingEG,
}

// psqt returns the value of the given table for a piece of the given
// color on the given square.
func psqt(table *[square.N]Eval, s square.Square, c piece.Color) Eval {
	if c == piece.White {
		// the tables are diagrammed from white's perspective, so the
		// ranks have to be flipped for white pieces
		s ^= 56
	}

	return table[s]
}

// bonus for a passed pawn indexed by the number of squares it is away
// from promotion
var passedPawnBonus = [8]Eval{0, 120, 80, 50, 30, 15, 15, 0}

// penalty for isolated pawns indexed by their count
var isolatedPawnPenalty = [9]Eval{0, -10, -25, -50, -75, -75, -75, -75, -75}

// pawn structure lookup tables
var (
	// squares which must be free of enemy pawns for a pawn on the
	// indexed square to be passed
	passedPawnMasks [piece.ColorN][square.N]bitboard.Board

	// files adjacent to the indexed file, for isolated pawn checks
	adjacentFiles [square.FileN]bitboard.Board

	// squares in front of a king on the indexed square which shield it
	// from attacks when occupied by friendly pawns
	pawnShieldMasks [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for f := square.FileA; f <= square.FileH; f++ {
		adjacentFiles[f] = bitboard.Files[f].East() | bitboard.Files[f].West()
	}

	for s := square.A1; s <= square.H8; s++ {
		span := bitboard.Files[s.File()] | adjacentFiles[s.File()]

		var frontW, frontB bitboard.Board
		for r := s.Rank() + 1; r <= square.Rank8; r++ {
			frontW |= bitboard.Ranks[r]
		}
		for r := s.Rank() - 1; r >= square.Rank1; r-- {
			frontB |= bitboard.Ranks[r]
		}

		passedPawnMasks[piece.White][s] = span & frontW
		passedPawnMasks[piece.Black][s] = span & frontB

		shield := bitboard.Squares[s]
		shield |= shield.East() | shield.West()
		pawnShieldMasks[piece.White][s] = shield.North() | shield.North().North()
		pawnShieldMasks[piece.Black][s] = shield.South() | shield.South().South()
	}
}
