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

// Package castling declares types and tables for representing and
// updating the castling rights of a position.
package castling

import (
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// Rights represents the castling rights of a position as a 4-bit set.
type Rights byte

// constants representing the various castling rights
const (
	WhiteK Rights = 1 << 0
	WhiteQ Rights = 1 << 1
	BlackK Rights = 1 << 2
	BlackQ Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteK | WhiteQ
	Black Rights = BlackK | BlackQ

	All Rights = White | Black

	N = 16
)

// NewRights creates an instance of Rights from the given fen field.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteK
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQ
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackK
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQ
	}

	return rights
}

// String converts the given Rights into it's fen field representation.
func (c Rights) String() string {
	var str string

	if c&WhiteK != 0 {
		str += "K"
	}

	if c&WhiteQ != 0 {
		str += "Q"
	}

	if c&BlackK != 0 {
		str += "k"
	}

	if c&BlackQ != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RightUpdates is a lookup table containing the castling rights that are
// lost when a move starts or ends on the given square. Only the corner
// squares and the king home squares contain non-zero entries.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQ,
	square.H1: WhiteK,
	square.E1: White,
	square.A8: BlackQ,
	square.H8: BlackK,
	square.E8: Black,
}

// RookInfo is a struct which contains information about castling a rook.
type RookInfo struct {
	From, To square.Square // source and target squares of the rook
	RookType piece.Piece   // piece.Piece representation of the rook
}

// Rooks is a lookup table which provides information about castling a
// rook when a king castles. The table is indexed using the king's target
// square. Squares other than the king's target squares during castling
// contain the zero-value of RookInfo: RookInfo{}.
var Rooks = [square.N]RookInfo{
	square.G1: {
		From:     square.H1,
		To:       square.F1,
		RookType: piece.WhiteRook,
	},
	square.C1: {
		From:     square.A1,
		To:       square.D1,
		RookType: piece.WhiteRook,
	},
	square.G8: {
		From:     square.H8,
		To:       square.F8,
		RookType: piece.BlackRook,
	},
	square.C8: {
		From:     square.A8,
		To:       square.D8,
		RookType: piece.BlackRook,
	},
}
