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
	"laptudirm.com/x/ivory/pkg/search/time"
)

// Limits contains the various limits which decide how long a search can
// run for. It should be passed to the main search function when starting
// a new search.
type Limits struct {
	// search tree limits
	Nodes int
	Depth int

	// search time limits
	Infinite bool
	Time     time.Manager
}

// UpdateLimits updates the search limits while a search is in progress.
// The caller should make sure
// that a search is indeed in progress before calling UpdateLimits.
func (search *Context) UpdateLimits(limits Limits) {
	limits.Depth = MaxDepth
	if limits.Nodes == 0 {
		limits.Nodes = int(^uint(0) >> 1)
	}

	search.limits = limits

	search.limits.Time.GetDeadline()
	search.armTimer(search.searchID.Load())
}
