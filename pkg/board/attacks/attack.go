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

// Package attacks provides precomputed attack bitboards and lookup
// tables for every piece type, along with utility tables like the
// squares between two squares and distances between squares.
package attacks

import (
	"laptudirm.com/x/ivory/internal/util"
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
	Pawn   [piece.ColorN][square.N]bitboard.Board
)

// lookup tables for square relationships
var (
	// Between contains the squares strictly between two squares, or
	// empty if the squares are not collinear.
	Between [square.N][square.N]bitboard.Board

	// Line contains every square on the infinite line through two
	// squares, including both, or empty if they are not collinear.
	Line [square.N][square.N]bitboard.Board
)

// lookup tables for square distances
var (
	// Manhattan is the number of orthogonal king steps between squares.
	Manhattan [square.N][square.N]int

	// Chebyshev is the number of king moves between squares.
	Chebyshev [square.N][square.N]int

	// CenterManhattan is the manhattan distance of a square from the
	// center of the board.
	CenterManhattan [square.N]int
)

// init initializes the attack bitboard lookup tables for non-sliding
// pieces and the square relationship tables.
func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}

	initLineTables()
	initDistanceTables()
}

// PawnPush shifts the given pawn bitboard one rank forward relative to
// the given color.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft shifts the given pawn bitboard to its capture targets
// towards the a-file relative to the given color.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight shifts the given pawn bitboard to its capture targets
// towards the h-file relative to the given color.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

// board is a utility type for safely building an attack bitboard from a
// given origin square.
type board struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack adds the given square to the provided attack bitboard, but
// only if the square lies on the board, i.e, within a1 to h8.
func (b *board) addAttack(fileOffset square.File, rankOffset square.Rank) {
	attackFile := b.origin.File() + fileOffset
	attackRank := b.origin.Rank() + rankOffset

	switch {
	case attackFile < 0, attackFile > square.FileH, attackRank < 0, attackRank > square.Rank8:
		return
	}

	attackSquare := square.New(attackFile, attackRank)
	b.board.Set(attackSquare)
}

// kingAttacksFrom generates an attack bitboard containing all the
// possible squares a king can move to from the given square.
func kingAttacksFrom(from square.Square) bitboard.Board {
	b := board{origin: from}

	b.addAttack(1, 0)   // E
	b.addAttack(1, 1)   // NE
	b.addAttack(0, 1)   // N
	b.addAttack(-1, 1)  // NW
	b.addAttack(-1, 0)  // W
	b.addAttack(-1, -1) // SW
	b.addAttack(0, -1)  // S
	b.addAttack(1, -1)  // SE

	return b.board
}

// knightAttacksFrom generates an attack bitboard containing all the
// possible squares a knight can move to from the given square.
func knightAttacksFrom(from square.Square) bitboard.Board {
	b := board{origin: from}

	b.addAttack(2, 1)   // noEaEa
	b.addAttack(1, 2)   // noNoEa
	b.addAttack(-1, 2)  // noNoWe
	b.addAttack(-2, 1)  // noWeWe
	b.addAttack(-2, -1) // soWeWe
	b.addAttack(-1, -2) // soSoWe
	b.addAttack(1, -2)  // soSoEa
	b.addAttack(2, -1)  // soEaEa

	return b.board
}

// pawnAttacksFrom generates an attack bitboard containing the capture
// squares of a pawn of the given color from the given square.
func pawnAttacksFrom(from square.Square, c piece.Color) bitboard.Board {
	b := board{origin: from}

	up := square.Rank(1)
	if c == piece.Black {
		up = -1
	}

	b.addAttack(1, up)  // capture towards h-file
	b.addAttack(-1, up) // capture towards a-file

	return b.board
}

// initLineTables computes the Between and Line lookup tables by walking
// rays in every compass direction from every square.
func initLineTables() {
	// compass directions as (file, rank) offsets
	directions := [8][2]square.File{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1}, // orthogonal
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1}, // diagonal
	}

	for s1 := square.A1; s1 <= square.H8; s1++ {
		for _, dir := range directions {
			df, dr := dir[0], square.Rank(dir[1])

			// full line through s1 in the current direction
			line := bitboard.Squares[s1]
			for _, way := range [2]square.File{1, -1} {
				file := s1.File() + df*way
				rank := s1.Rank() + dr*square.Rank(way)
				for file >= 0 && file <= square.FileH && rank >= 0 && rank <= square.Rank8 {
					line.Set(square.New(file, rank))
					file += df * way
					rank += dr * square.Rank(way)
				}
			}

			// walk the ray and record between/line masks
			between := bitboard.Empty
			file := s1.File() + df
			rank := s1.Rank() + dr
			for file >= 0 && file <= square.FileH && rank >= 0 && rank <= square.Rank8 {
				s2 := square.New(file, rank)
				Between[s1][s2] = between
				Line[s1][s2] = line

				between.Set(s2)
				file += df
				rank += dr
			}
		}
	}
}

// initDistanceTables computes the distance lookup tables.
func initDistanceTables() {
	for s1 := square.A1; s1 <= square.H8; s1++ {
		fileDist := util.Max(3-int(s1.File()), int(s1.File())-4)
		rankDist := util.Max(3-int(s1.Rank()), int(s1.Rank())-4)
		CenterManhattan[s1] = fileDist + rankDist

		for s2 := square.A1; s2 <= square.H8; s2++ {
			fileDiff := util.Abs(int(s1.File()) - int(s2.File()))
			rankDiff := util.Abs(int(s1.Rank()) - int(s2.Rank()))

			Manhattan[s1][s2] = fileDiff + rankDiff
			Chebyshev[s1][s2] = util.Max(fileDiff, rankDiff)
		}
	}
}
