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

// Command crosscheck verifies the engine's move generator against a
// reference implementation. It walks through the games of a PGN file
// and compares the number of legal moves of every reached position
// against the number reported by the notnil/chess library, reporting any
// positions where the two counts disagree. The moves themselves are not
// compared.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/notnil/chess"
	"gopkg.in/freeeve/pgn.v1"

	"laptudirm.com/x/ivory/pkg/board"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: crosscheck <games.pgn>")
		os.Exit(2)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var positions, mismatches int

	ps := pgn.NewPGNScanner(f)
	for ps.Next() {
		game, err := ps.Scan()
		if err != nil {
			log.Printf("skipping game: %v", err)
			continue
		}

		b := pgn.NewBoard()
		for _, move := range game.Moves {
			if err := b.MakeMove(move); err != nil {
				break
			}

			fen := b.String()
			positions++

			if !checkPosition(fen) {
				mismatches++
			}
		}
	}

	fmt.Printf("crosscheck: %d positions, %d mismatches\n", positions, mismatches)
	if mismatches > 0 {
		os.Exit(1)
	}
}

// checkPosition compares the number of the engine's legal moves for the
// given fen against the reference library's and reports whether they
// agree.
func checkPosition(fen string) bool {
	ours := board.New(fen).GenerateMoves(false)

	fenOpt, err := chess.FEN(fen)
	if err != nil {
		log.Printf("bad fen %q: %v", fen, err)
		return true
	}

	reference := chess.NewGame(fenOpt).ValidMoves()

	if len(ours) != len(reference) {
		log.Printf("mismatch at %q: generated %d moves, reference has %d",
			fen, len(ours), len(reference))
		return false
	}

	return true
}
