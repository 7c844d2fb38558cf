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

package board_test

import (
	"fmt"
	"testing"

	"laptudirm.com/x/ivory/pkg/board"
)

// reference node counts from https://www.chessprogramming.org/Perft_Results
var perftTests = []struct {
	fen    string
	counts []int
}{
	{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		[]int{20, 400, 8902, 197281, 4865609},
	},
	{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]int{48, 2039, 97862, 4085603},
	},
	{
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]int{14, 191, 2812, 43238, 674624},
	},
	{
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		[]int{6, 264, 9467, 422333},
	},
	{
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		[]int{44, 1486, 62379, 2103487},
	},
	{
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		[]int{46, 2079, 89890, 3894594},
	},
}

func TestPerft(t *testing.T) {
	for _, test := range perftTests {
		for depth, expected := range test.counts {
			name := fmt.Sprintf("%s depth %d", test.fen, depth+1)
			t.Run(name, func(t *testing.T) {
				if nodes := board.Perft(test.fen, depth+1); nodes != expected {
					t.Errorf("wrong node count: expected %d, got %d", expected, nodes)
				}
			})
		}
	}
}

func BenchmarkPerft(b *testing.B) {
	for i := 0; i < b.N; i++ {
		board.Perft(board.StartFEN, 4)
	}
}
