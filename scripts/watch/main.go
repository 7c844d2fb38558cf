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

// Command watch runs an infinite search on the given position and
// displays its progress in a small terminal dashboard. Press q to stop
// the search and quit.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/search"
	"laptudirm.com/x/ivory/pkg/search/time"
)

func main() {
	fen := board.StartFEN
	if len(os.Args) > 1 {
		fen = strings.Join(os.Args[1:], " ")
	}

	if err := run(fen); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fen string) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	stats := widgets.NewParagraph()
	stats.Title = "search"
	stats.SetRect(0, 0, 80, 6)

	position := widgets.NewParagraph()
	position.Title = "position"
	position.Text = fen
	position.SetRect(0, 6, 80, 9)

	ui.Render(stats, position)

	reports := make(chan search.Report, 16)
	context := search.NewContext(func(report search.Report) {
		if report.String != "" {
			return
		}

		// drop reports instead of ever blocking the searcher
		select {
		case reports <- report:
		default:
		}
	}, 64)
	context.UpdatePosition(fen)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = context.Search(search.Limits{
			Depth:    search.MaxDepth,
			Infinite: true,
			Time:     &time.MoveManager{Duration: math.MaxInt32},
		})
	}()

	events := ui.PollEvents()
	for {
		select {
		case report := <-reports:
			stats.Text = fmt.Sprintf(
				"depth  %d/%d\nnodes  %d\nspeed  %.f nps\npv     %s",
				report.Depth, report.SelDepth, report.Nodes,
				report.Nps, report.PV.String(),
			)
			ui.Render(stats)

		case e := <-events:
			if e.Type == ui.KeyboardEvent && (e.ID == "q" || e.ID == "<C-c>") {
				context.Stop()
				<-done
				return nil
			}

		case <-done:
			return nil
		}
	}
}
