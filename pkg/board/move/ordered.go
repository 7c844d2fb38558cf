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

package move

// ScoreMoves scores each move in the provided move-list according to the
// provided scorer function and returns an OrderedMoveList containing them.
func ScoreMoves(moveList []Move, scorer func(Move) int32) OrderedMoveList {
	ordered := make([]OrderedMove, len(moveList))

	for i, move := range moveList {
		ordered[i] = NewOrdered(move, scorer(move))
	}

	return OrderedMoveList{
		moves:  ordered,
		Length: len(moveList),
	}
}

// OrderedMoveList represents an ordered/ranked move list.
type OrderedMoveList struct {
	moves  []OrderedMove // moves will be sorted lazily
	Length int           // number of moves in move-list
}

// PickMove finds the best move (move with the highest score) from the
// unsorted moves and puts it at the index position.
func (list *OrderedMoveList) PickMove(index int) Move {
	// perform a single selection sort iteration
	// the full array is not sorted since most of the moves
	// will never be searched due to alpha-beta pruning

	bestIndex := index
	bestScore := list.moves[index].Score()

	for i := index + 1; i < list.Length; i++ {
		if score := list.moves[i].Score(); score > bestScore {
			bestIndex = i
			bestScore = score
		}
	}

	list.moves[index], list.moves[bestIndex] = list.moves[bestIndex], list.moves[index]

	return list.moves[index].Move()
}

// NewOrdered creates a new ordered move with the provided move and score.
func NewOrdered(m Move, score int32) OrderedMove {
	// [ score 32 bits ] [ padding 16 bits ] [ move 16 bits ]
	return OrderedMove(uint64(uint32(score))<<32 | uint64(m))
}

// An OrderedMove represents a move that can be ranked in a move-list.
type OrderedMove uint64

// Score returns the OrderedMove's score.
func (m OrderedMove) Score() int32 {
	return int32(m >> 32)
}

// Move returns the OrderedMove's move.
func (m OrderedMove) Move() Move {
	return Move(m & 0xFFFF)
}
