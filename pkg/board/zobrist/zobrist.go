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

// Package zobrist provides random keys used for incrementally hashing
// chess positions.
// https://www.chessprogramming.org/Zobrist_Hashing
package zobrist

import (
	"laptudirm.com/x/ivory/pkg/board/castling"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// Key is a 64-bit zobrist hash of a chess position.
type Key uint64

// EnPassantN is the number of en passant states a position can have: no
// en passant square, or one on each of the eight files. The en passant
// file is stored 1-indexed so that 0 represents no en passant square.
const EnPassantN = square.FileN + 1

var PieceSquare [piece.N][square.N]Key
var EnPassant [EnPassantN]Key
var Castling [castling.N]Key
var SideToMove Key

// The key tables are filled from a splitmix64 sequence. The generator
// is seeded with a fixed constant so that the keys, and therefore any
// persisted hashes, are stable across runs.
//
// splitmix64 simply scrambles an incrementing counter, which makes it
// stateless enough to inline here, and its output passes BigCrush both
// forwards and in reverse.
// https://prng.di.unimi.it/splitmix64.c
func keySequence(seed uint64) func() Key {
	state := seed

	return func() Key {
		state += 0x9e3779b97f4a7c15

		z := state
		z ^= z >> 30
		z *= 0xbf58476d1ce4e5b9
		z ^= z >> 27
		z *= 0x94d049bb133111eb

		return Key(z ^ z>>31)
	}
}

func init() {
	nextKey := keySequence(0x1234567890abcdef)

	// piece square numbers
	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = nextKey()
		}
	}

	// en passant file numbers
	// index 0, representing no en passant square, is a real key which
	// is always part of the hash, so it cancels itself out between
	// incremental updates
	for f := 0; f < EnPassantN; f++ {
		EnPassant[f] = nextKey()
	}

	// castling right numbers
	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = nextKey()
	}

	// black to move number
	SideToMove = nextKey()
}
