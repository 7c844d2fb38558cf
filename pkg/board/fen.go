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
	"strconv"
	"strings"

	"laptudirm.com/x/ivory/pkg/board/castling"
	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/board/square"
	"laptudirm.com/x/ivory/pkg/board/zobrist"
)

// StartFEN is the fen string of the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New creates an instance of a *Board from the given fen string. The
// half-move clock and the full-move counter fields are optional and
// default to 0 and 1 respectively.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func New(fen string) *Board {
	var board Board
	fields := strings.Fields(fen)

	// generate position
	ranks := strings.Split(fields[0], "/")
	for rankID, rankData := range ranks {
		fileID := square.FileA
		rank := square.Rank8 - square.Rank(rankID)

		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				fileID += square.File(id - '0') // skip over empty squares
				continue
			}

			board.FillSquare(square.New(fileID, rank), piece.NewFromString(string(id)))
			fileID++
		}
	}

	// side to move
	board.SideToMove = piece.NewColor(fields[1])
	if board.SideToMove == piece.Black {
		board.Hash ^= zobrist.SideToMove
	}

	// castling rights
	board.State.CastlingRights = castling.NewRights(fields[2])
	board.Hash ^= zobrist.Castling[board.State.CastlingRights]

	// en passant target square
	if ep := square.NewFromString(fields[3]); ep != square.None {
		board.State.EnPassantFile = int8(ep.File()) + 1
	}
	board.Hash ^= zobrist.EnPassant[board.State.EnPassantFile]

	// optional move counters
	if len(fields) > 4 {
		board.State.FiftyMoveCounter, _ = strconv.Atoi(fields[4])
	}

	board.FullMoves = 1
	if len(fields) > 5 {
		board.FullMoves, _ = strconv.Atoi(fields[5])
	}

	// non-pawn non-king material counts
	for c := piece.White; c <= piece.Black; c++ {
		board.MajorMinorN[c] = (board.ColorBBs[c] &^
			board.PieceBBs[piece.Pawn] &^ board.PieceBBs[piece.King]).Count()
	}

	board.refreshConvenienceBBs()

	board.State.Hash = board.Hash
	board.RepetitionKeys = append(board.RepetitionKeys, board.Hash)

	return &board
}

// FEN returns the fen string of the current Board position.
func (b *Board) FEN() string {
	var fen string
	fen += b.Position.FEN() + " "
	fen += b.SideToMove.String() + " "
	fen += b.State.CastlingRights.String() + " "
	fen += b.State.EnPassantSquare(b.SideToMove).String() + " "
	fen += strconv.Itoa(b.State.FiftyMoveCounter) + " "
	fen += strconv.Itoa(b.FullMoves)
	return fen
}
