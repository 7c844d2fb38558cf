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

package attacks

import (
	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// rook generates the attack set of a rook on the given square with the
// given blockers by walking each orthogonal ray until it is stopped. If
// mask is true, the squares on the board edge along each ray are left
// out, which generates the blocker mask used by the magic tables.
func rook(s square.Square, blockers bitboard.Board, mask bool) bitboard.Board {
	return slidingAttacks(s, blockers, mask, [4][2]square.File{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	})
}

// bishop generates the attack set of a bishop on the given square with
// the given blockers, in the same manner as rook.
func bishop(s square.Square, blockers bitboard.Board, mask bool) bitboard.Board {
	return slidingAttacks(s, blockers, mask, [4][2]square.File{
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	})
}

// slidingAttacks walks the given rays from the given square and collects
// the attacked squares, stopping each ray at the first blocker.
func slidingAttacks(s square.Square, blockers bitboard.Board, mask bool, rays [4][2]square.File) bitboard.Board {
	attacks := bitboard.Empty

	for _, ray := range rays {
		df, dr := ray[0], square.Rank(ray[1])

		file := s.File() + df
		rank := s.Rank() + dr
		for file >= 0 && file <= square.FileH && rank >= 0 && rank <= square.Rank8 {
			target := square.New(file, rank)

			if mask {
				// the edge square of a ray can't block anything
				// so leave it out of the blocker mask
				nextFile := file + df
				nextRank := rank + dr
				if nextFile < 0 || nextFile > square.FileH ||
					nextRank < 0 || nextRank > square.Rank8 {
					break
				}
			}

			attacks.Set(target)

			if blockers.IsSet(target) {
				break // ray is blocked
			}

			file += df
			rank += dr
		}
	}

	return attacks
}
