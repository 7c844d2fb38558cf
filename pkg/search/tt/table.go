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

// Package tt implements a transposition table which caches the results
// of previous searches of a position to make revisiting them cheaper.
// https://www.chessprogramming.org/Transposition_Table
package tt

import (
	"unsafe"

	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/board/zobrist"
	"laptudirm.com/x/ivory/pkg/search/eval"
)

// EntrySize stores the size in bytes of a tt entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a new transposition table with a size equal to or
// less than the given number of megabytes.
func NewTable(mbs int) *Table {
	// compute table size (number of entries)
	size := (mbs * 1024 * 1024) / EntrySize

	return &Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Table represents a transposition table. It is a direct mapped cache
// indexed by the zobrist keys of the stored positions.
type Table struct {
	table []Entry // hash table
	size  int     // table size

	// approximate number of used entries, for the hashfull metric
	used int
}

// Clear clears the given transposition table.
func (tt *Table) Clear() {
	clear(tt.table)
	tt.used = 0
}

// Resize resizes the given transposition table to the new size. All the
// stored entries are discarded.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize

	*tt = Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Hashfull returns the fraction of the table which is in use, in
// permille, as reported in the UCI info lines.
func (tt *Table) Hashfull() int {
	if tt.size == 0 {
		return 0
	}

	return tt.used * 1000 / tt.size
}

// Store puts the given data into the transposition table. The table
// uses an always-replace scheme, so whatever entry is occupying the
// given entry's slot is overwritten.
func (tt *Table) Store(entry Entry) {
	target := &tt.table[tt.indexOf(entry.Hash)]

	if target.Type == NoEntry {
		tt.used++
	}

	*target = entry
}

// Probe fetches the data associated with the given zobrist key from the
// transposition table. It returns the fetched data and whether it is
// usable or not. It guards against hash collisions and empty entries by
// verifying the full stored key.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := tt.table[tt.indexOf(hash)]
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

// indexOf is the hash function used by the transposition table.
func (tt *Table) indexOf(hash zobrist.Key) int {
	return int(hash % zobrist.Key(tt.size))
}

// Entry represents a transposition table entry.
type Entry struct {
	// complete hash of the position; to guard against
	// transposition table index collisions
	Hash zobrist.Key

	// best move found in the position
	// used for move ordering even when the value is unusable
	Move move.Move

	// evaluation info
	Value Eval      // value of the position
	Type  EntryType // bound type of the value

	// depth the position was searched to
	Depth uint8
}

// Usable checks whether the entry's value can be used at a node with
// the given remaining depth and alpha-beta bounds. If it can, the value
// corrected to the given plys from root is returned.
func (entry *Entry) Usable(depth int, alpha, beta eval.Eval, plys int) (eval.Eval, bool) {
	if int(entry.Depth) < depth {
		// entry is from a shallower search: worse quality
		return 0, false
	}

	value := entry.Value.Eval(plys)

	switch entry.Type {
	case ExactEntry:
		return value, true
	case LowerBound:
		return value, value >= beta
	case UpperBound:
		return value, value <= alpha
	default:
		return 0, false
	}
}

// EntryType represents the type of a transposition table entry's
// value: whether it exists, and if it is an exact score or a bound.
type EntryType uint8

// constants representing various transposition table entry types
const (
	NoEntry EntryType = iota // no entry exists

	ExactEntry // the value is an exact score
	LowerBound // the value is a lower bound on the exact score
	UpperBound // the value is an upper bound on the exact score
)

// EvalFrom converts a given mate score from "n plys till mate from
// root" to "n plys till mate from current position" so that it is
// reusable in other subtrees at different depths.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}

	return Eval(score)
}

// Eval represents the evaluation of a transposition table entry. For
// mate scores, it stores "n plys till mate from current position"
// instead of the "n plys till mate from root" used during search.
type Eval eval.Eval

// Eval converts a transposition table entry score from "n plys till
// mate from current position" to "n plys till mate from root", which is
// the format used during search.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)

	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}

	return score
}
