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

import "laptudirm.com/x/ivory/pkg/board/square"

// PieceList keeps a collection of the squares occupied by one
// kind of piece. A parallel square to index map makes removing and
// moving pieces constant time operations. It is used to iterate over
// the pieces of a kind without scanning a bitboard, mainly during
// evaluation.
type PieceList struct {
	// occupied squares; Remove fills the freed slot with the last entry,
	// so the order is not the insertion order
	squares [16]square.Square

	// index of each occupied square in squares
	indexOf [square.N]int

	count int
}

// Count returns the number of squares in the list.
func (l *PieceList) Count() int {
	return l.count
}

// Square returns the ith occupied square of the list.
func (l *PieceList) Square(i int) square.Square {
	return l.squares[i]
}

// Add appends the given square to the list.
func (l *PieceList) Add(s square.Square) {
	l.squares[l.count] = s
	l.indexOf[s] = l.count
	l.count++
}

// Remove removes the given square from the list by moving the last
// entry into its place.
func (l *PieceList) Remove(s square.Square) {
	index := l.indexOf[s]
	l.count--

	last := l.squares[l.count]
	l.squares[index] = last
	l.indexOf[last] = index
}

// Move moves the piece on the from square to the to square.
func (l *PieceList) Move(from, to square.Square) {
	index := l.indexOf[from]
	l.squares[index] = to
	l.indexOf[to] = index
}
