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

package search

import (
	"laptudirm.com/x/ivory/pkg/board/move"
)

// storeKiller tries to store the given quiet move from the given ply as
// one of its two killer moves. The current head killer is demoted to
// the second slot.
// https://www.chessprogramming.org/Killer_Move
func (search *Context) storeKiller(plys int, killer move.Move) {
	if killer != search.killers[plys][0] {
		search.killers[plys][1] = search.killers[plys][0]
		search.killers[plys][0] = killer
	}
}

// updateHistory increases the history score of the given quiet move
// which caused a beta cutoff at the given remaining depth. Cutoffs from
// deeper searches get a quadratically larger bonus.
func (search *Context) updateHistory(m move.Move, depth int) {
	entry := &search.history[search.Board.SideToMove][m.Source()][m.Target()]
	*entry += int32(depth * depth)
}
