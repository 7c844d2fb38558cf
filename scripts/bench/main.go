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

// Command bench runs fixed-depth searches on a small suite of positions
// and reports the speed of the engine. It renders a depth against speed
// chart to bench.html for comparing changes to the search.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/ivory/pkg/board"
	"laptudirm.com/x/ivory/pkg/search"
	"laptudirm.com/x/ivory/pkg/search/time"
)

// positions searched by the benchmark: the start position, a tactical
// middle game, and an endgame
var positions = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

const benchDepth = 8

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var reports []search.Report

	context := search.NewContext(func(report search.Report) {
		if report.String == "" {
			reports = append(reports, report)
		}
	}, 64)

	bar := progressbar.Default(int64(len(positions)), "searching")

	var totalNodes int
	var nps [benchDepth]float64

	for _, fen := range positions {
		reports = reports[:0]
		context.UpdatePosition(fen)

		_, _, err := context.Search(search.Limits{
			Depth: benchDepth,
			Time:  &time.MoveManager{Duration: math.MaxInt32},
		})
		if err != nil {
			return err
		}

		var nodes int
		for _, report := range reports {
			if report.Depth >= 1 && report.Depth <= benchDepth {
				nps[report.Depth-1] = report.Nps
			}
			nodes = report.Nodes
		}
		totalNodes += nodes

		_ = bar.Add(1)
	}

	colorstring.Printf("[green]bench complete:[reset] %d nodes\n", totalNodes)

	return renderChart(nps[:])
}

// renderChart renders the depth against speed chart to bench.html.
func renderChart(nps []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "search speed by depth"}),
	)

	depths := make([]string, len(nps))
	values := make([]opts.LineData, len(nps))
	for i, n := range nps {
		depths[i] = fmt.Sprint(i + 1)
		values[i] = opts.LineData{Value: n}
	}

	line.SetXAxis(depths).AddSeries("nps", values)

	f, err := os.Create("bench.html")
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
