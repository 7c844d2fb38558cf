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

package repetition_test

import (
	"testing"

	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/search/repetition"
)

func TestWindowAndResets(t *testing.T) {
	var table repetition.Table

	table.Push(1, false)
	table.Push(2, false)
	table.Push(3, false)

	// the window excludes the newest entry itself
	if table.Contains(3) {
		t.Error("window should not include the top entry")
	}

	if !table.Contains(1) || !table.Contains(2) {
		t.Error("window should include prior entries")
	}

	// a reset cuts off all prior history
	table.Push(4, true)
	if table.Contains(1) || table.Contains(2) || table.Contains(3) {
		t.Error("reset should cut off prior entries")
	}

	// popping the reset entry restores the old window
	table.TryPop()
	if !table.Contains(1) {
		t.Error("pop should restore the previous window")
	}
}

func TestTryPopOnEmpty(t *testing.T) {
	var table repetition.Table

	// popping an empty table must not panic
	table.TryPop()
	table.TryPop()

	if table.Contains(1) {
		t.Error("empty table contains a key")
	}
}

func TestKnightShuffleRepetition(t *testing.T) {
	// shuffling the knights back and forth returns to the start
	// position, which counts as a repetition draw
	b := board.New(board.StartFEN)
	startKey := b.Hash

	moves := []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	}

	for _, m := range moves {
		b.MakeMove(b.NewMoveFromString(m), false)
	}

	if b.Hash != startKey {
		t.Fatalf("position after shuffle differs from start: %X != %X", b.Hash, startKey)
	}

	var table repetition.Table
	table.Init(b.RepetitionKeys)

	if !table.Contains(startKey) {
		t.Error("repetition table does not contain the repeated position")
	}
}
