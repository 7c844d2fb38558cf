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

// Package repetition implements a table for detecting repeated
// positions during search. For simplicity, a position is treated as a
// draw by repetition on its first repeat inside the table's window,
// instead of the strict threefold rule.
package repetition

import "laptudirm.com/x/ivory/pkg/board/zobrist"

// Table is a sliding window of the zobrist keys of the positions
// leading up to the current one. A parallel array of reset indexes
// encodes the cut-off points created by irreversible moves: positions
// before a reset can never repeat again and are skipped.
type Table struct {
	keys   []zobrist.Key
	resets []int
}

// Init clears the table and seeds it with the given keys, which are the
// repetition-relevant keys of the game leading up to the search root.
func (t *Table) Init(keys []zobrist.Key) {
	t.keys = t.keys[:0]
	t.resets = t.resets[:0]

	for _, key := range keys {
		t.Push(key, false)
	}
}

// Push appends the given key to the table. If reset is true the new
// entry starts a fresh window, cutting off all the prior history, which
// is done when the move leading to the position was irreversible.
func (t *Table) Push(key zobrist.Key, reset bool) {
	index := len(t.keys)
	t.keys = append(t.keys, key)

	switch {
	case reset, index == 0:
		// this entry is its own reset point
		t.resets = append(t.resets, index)
	default:
		// inherit the previous entry's reset point
		t.resets = append(t.resets, t.resets[index-1])
	}
}

// TryPop removes the newest entry from the table. Popping an empty
// table is a no-op.
func (t *Table) TryPop() {
	if n := len(t.keys); n > 0 {
		t.keys = t.keys[:n-1]
		t.resets = t.resets[:n-1]
	}
}

// Contains reports whether the given key occurs inside the current
// window, which spans from the newest entry's reset index up to, but
// not including, the newest entry itself.
func (t *Table) Contains(key zobrist.Key) bool {
	top := len(t.keys) - 1
	if top < 0 {
		return false
	}

	for i := t.resets[top]; i < top; i++ {
		if t.keys[i] == key {
			return true
		}
	}

	return false
}
