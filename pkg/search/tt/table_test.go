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

package tt_test

import (
	"testing"

	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/square"
	"laptudirm.com/x/ivory/pkg/search/eval"
	"laptudirm.com/x/ivory/pkg/search/tt"
)

func TestStoreProbe(t *testing.T) {
	table := tt.NewTable(1)

	entry := tt.Entry{
		Hash:  0xdeadbeef,
		Move:  move.New(square.E2, square.E4, move.FlagPawnTwoUp),
		Value: 35,
		Type:  tt.ExactEntry,
		Depth: 5,
	}

	table.Store(entry)

	fetched, hit := table.Probe(0xdeadbeef)
	if !hit {
		t.Fatal("stored entry not found")
	}

	if fetched != entry {
		t.Errorf("wrong entry: expected %+v, got %+v", entry, fetched)
	}

	// a different key mapping to any slot must miss
	if _, hit := table.Probe(0xcafebabe); hit {
		t.Error("probe hit for a key which was never stored")
	}
}

func TestMateScoreNormalization(t *testing.T) {
	// a mate score stored at one ply from root must reproduce the
	// same mate distance when retrieved at another
	tests := []struct {
		score        eval.Eval
		storePlys    int
		retrievePlys int
	}{
		{eval.Mate - 3, 2, 4},
		{eval.Mate - 7, 5, 1},
		{eval.MatedIn(4), 3, 6},
		{42, 2, 9}, // non-mate scores pass through unchanged
	}

	for _, test := range tests {
		stored := tt.EvalFrom(test.score, test.storePlys)
		retrieved := stored.Eval(test.retrievePlys)

		// the distance from the node itself must be preserved
		wantFromNode := test.score
		switch {
		case test.score > eval.WinInMaxPly:
			wantFromNode = test.score + eval.Eval(test.storePlys) - eval.Eval(test.retrievePlys)
		case test.score < eval.LoseInMaxPly:
			wantFromNode = test.score - eval.Eval(test.storePlys) + eval.Eval(test.retrievePlys)
		}

		if retrieved != wantFromNode {
			t.Errorf("score %d stored at ply %d, retrieved at ply %d: expected %d, got %d",
				test.score, test.storePlys, test.retrievePlys, wantFromNode, retrieved)
		}
	}
}

func TestHashfull(t *testing.T) {
	table := tt.NewTable(1)

	if table.Hashfull() != 0 {
		t.Errorf("fresh table reports hashfull %d", table.Hashfull())
	}

	table.Store(tt.Entry{Hash: 1, Type: tt.ExactEntry})
	if table.Hashfull() < 0 || table.Hashfull() > 1000 {
		t.Errorf("hashfull out of permille range: %d", table.Hashfull())
	}

	table.Clear()
	if table.Hashfull() != 0 {
		t.Errorf("cleared table reports hashfull %d", table.Hashfull())
	}
}
