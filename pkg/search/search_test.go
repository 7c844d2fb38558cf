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

package search_test

import (
	"math"
	stdtime "time"

	"testing"

	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/search"
	"laptudirm.com/x/ivory/pkg/search/eval"
	"laptudirm.com/x/ivory/pkg/search/time"
)

// newContext creates a search context for the given fen which drops
// all of its reports.
func newContext(fen string) *search.Context {
	context := search.NewContext(func(search.Report) {}, 16)
	context.UpdatePosition(fen)
	return context
}

// movetime returns limits for a search of the given milliseconds.
func movetime(ms int) search.Limits {
	return search.Limits{
		Depth: search.MaxDepth,
		Time:  &time.MoveManager{Duration: ms},
	}
}

func TestStartPositionSearch(t *testing.T) {
	context := newContext("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	start := stdtime.Now()
	pv, _, err := context.Search(movetime(100))
	if err != nil {
		t.Fatal(err)
	}

	if elapsed := stdtime.Since(start); elapsed > 300*stdtime.Millisecond {
		t.Errorf("search overshot its budget: took %v", elapsed)
	}

	if pv.Move(0) == move.Null {
		t.Error("no best move returned for the start position")
	}
}

func TestBackRankMateInOne(t *testing.T) {
	context := newContext("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	pv, score, err := context.Search(movetime(500))
	if err != nil {
		t.Fatal(err)
	}

	if best := pv.Move(0).String(); best != "a1a8" {
		t.Errorf("expected bestmove a1a8, got %s", best)
	}

	if score <= eval.WinInMaxPly || score.MateIn() != 1 {
		t.Errorf("expected mate in 1, got score %s", score)
	}
}

func TestAvoidsFoolsMate(t *testing.T) {
	// after 1. f3 e5, pushing the g-pawn two squares allows Qh4 mate
	context := newContext("rnbqkbnr/pppp1ppp/8/4p3/8/5P2/PPPPP1PP/RNBQKBNR w KQkq e6 0 2")

	pv, _, err := context.Search(movetime(200))
	if err != nil {
		t.Fatal(err)
	}

	if best := pv.Move(0).String(); best == "g2g4" {
		t.Errorf("engine played the losing move %s", best)
	}
}

func TestGettingMatedScore(t *testing.T) {
	// black's only move is Kg8, after which Rb8 is a ladder mate
	context := newContext("7k/R7/1R6/8/8/8/8/6K1 b - - 0 1")

	_, score, err := context.Search(search.Limits{
		Depth: 5,
		Time:  &time.MoveManager{Duration: math.MaxInt32},
	})
	if err != nil {
		t.Fatal(err)
	}

	if score >= eval.LoseInMaxPly || score.MateIn() != -1 {
		t.Errorf("expected score mate -1, got %s", score)
	}
}

func TestStalemateScore(t *testing.T) {
	context := newContext("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	pv, score, err := context.Search(movetime(100))
	if err != nil {
		t.Fatal(err)
	}

	if score != eval.Draw {
		t.Errorf("expected draw score in stalemate, got %s", score)
	}

	if pv.Move(0) != move.Null {
		t.Errorf("expected no best move in stalemate, got %s", pv.Move(0))
	}
}

func TestRepetitionDraw(t *testing.T) {
	context := newContext("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	context.MakeMoves(
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	)

	pv, score, err := context.Search(movetime(100))
	if err != nil {
		t.Fatal(err)
	}

	if score != eval.Draw {
		t.Errorf("expected draw score after repetition, got %s", score)
	}

	if pv.Move(0) == move.Null {
		t.Error("no move returned for a drawn but playable position")
	}
}

func TestCancellationYieldsMove(t *testing.T) {
	context := newContext("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	type result struct {
		pv  move.Variation
		err error
	}

	results := make(chan result, 1)
	go func() {
		pv, _, err := context.Search(search.Limits{
			Depth:    search.MaxDepth,
			Infinite: true,
			Time:     &time.MoveManager{Duration: math.MaxInt32},
		})
		results <- result{pv, err}
	}()

	// let the search spin up before cancelling it
	for !context.InProgress() {
		stdtime.Sleep(stdtime.Millisecond)
	}
	stdtime.Sleep(50 * stdtime.Millisecond)
	context.Stop()

	res := <-results
	if res.err != nil {
		t.Fatal(res.err)
	}

	if res.pv.Move(0) == move.Null {
		t.Error("cancellation produced no best move")
	}
}
