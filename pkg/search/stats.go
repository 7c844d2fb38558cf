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
	"fmt"
	"time"

	"laptudirm.com/x/ivory/internal/util"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/search/eval"
)

// Stats stores a search's various statistics.
type Stats struct {
	// time when the search started
	SearchStart time.Time

	TTHits int // transposition table hits
	Nodes  int // positions (nodes) searched

	Depth    int // current iterative deepening depth
	SelDepth int // maximum ply from root reached, extensions included
}

// GenerateReport generates a statistics report from the current search
// context. It contains all the relevant stats that anyone might want to
// know about a search in progress.
func (search *Context) GenerateReport() Report {
	searchTime := time.Since(search.stats.SearchStart)

	return Report{
		Depth:    search.stats.Depth,
		SelDepth: search.stats.SelDepth,

		Nodes: search.stats.Nodes,
		Nps:   float64(search.stats.Nodes) / util.Max(0.001, searchTime.Seconds()),

		Hashfull: search.tt.Hashfull(),

		Time: searchTime,

		Score: search.pvScore,
		PV:    search.pv,
	}
}

// sendReport generates a report and sends it to the context's reporter.
func (search *Context) sendReport() {
	search.lastInfo = time.Now()

	if search.reporter != nil {
		search.reporter(search.GenerateReport())
	}
}

// reportString sends a diagnostic string to the context's reporter.
func (search *Context) reportString(s string) {
	if search.reporter != nil {
		search.reporter(Report{String: s})
	}
}

// Report represents a report of various statistics about a search.
type Report struct {
	// if non-empty, the report is a diagnostic info string and every
	// other field is ignored
	String string

	// depth stats
	Depth    int // current iterative deepening depth
	SelDepth int // max ply from root reached

	// node stats
	Nodes int
	Nps   float64

	// fraction of the transposition table in use, in permille
	Hashfull int

	// search time stats
	Time time.Duration

	// principal variation stats
	Score eval.Eval
	PV    move.Variation
}

// UCI converts a Report into an UCI compatible info line.
func (report Report) UCI() string {
	if report.String != "" {
		return "info string " + report.String
	}

	line := fmt.Sprintf(
		"info depth %d seldepth %d time %d nodes %d nps %.f score %s hashfull %d",
		report.Depth, report.SelDepth, report.Time.Milliseconds(),
		report.Nodes, report.Nps, report.Score, report.Hashfull,
	)

	if report.PV.Length() > 0 {
		line += " pv " + report.PV.String()
	}

	return line
}
