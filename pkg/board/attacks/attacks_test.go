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
	"testing"

	"laptudirm.com/x/ivory/pkg/board/bitboard"
	"laptudirm.com/x/ivory/pkg/board/square"
)

// TestMagicAttacks verifies the magic lookup tables against the slow
// ray-walking attack generator for pseudo-random blocker sets.
func TestMagicAttacks(t *testing.T) {
	rand := prng(20240518)

	for s := square.A1; s <= square.H8; s++ {
		for i := 0; i < 64; i++ {
			blockers := bitboard.Board(rand.next() & rand.next())

			if got, want := Rook(s, blockers), rook(s, blockers, false); got != want {
				t.Fatalf("rook attacks wrong on %s with blockers %x", s, blockers)
			}

			if got, want := Bishop(s, blockers), bishop(s, blockers, false); got != want {
				t.Fatalf("bishop attacks wrong on %s with blockers %x", s, blockers)
			}
		}
	}
}

func TestBetweenAndLine(t *testing.T) {
	// squares strictly between a1 and h8
	between := Between[square.A1][square.H8]
	if between.Count() != 6 || !between.IsSet(square.D4) {
		t.Errorf("wrong between mask for a1-h8:\n%s", between)
	}

	// the full diagonal through c3 and f6
	line := Line[square.C3][square.F6]
	if line.Count() != 8 || !line.IsSet(square.A1) || !line.IsSet(square.H8) {
		t.Errorf("wrong line mask for c3-f6:\n%s", line)
	}

	// non-collinear squares have empty masks
	if Between[square.A1][square.B3] != bitboard.Empty {
		t.Error("between mask for non-collinear squares is not empty")
	}

	if Line[square.A1][square.B3] != bitboard.Empty {
		t.Error("line mask for non-collinear squares is not empty")
	}
}

func TestDistances(t *testing.T) {
	if d := Chebyshev[square.A1][square.H8]; d != 7 {
		t.Errorf("chebyshev a1-h8 = %d", d)
	}

	if d := Manhattan[square.A1][square.H8]; d != 14 {
		t.Errorf("manhattan a1-h8 = %d", d)
	}

	if d := CenterManhattan[square.A1]; d != 6 {
		t.Errorf("center manhattan a1 = %d", d)
	}

	if d := CenterManhattan[square.E4]; d != 0 {
		t.Errorf("center manhattan e4 = %d", d)
	}
}
