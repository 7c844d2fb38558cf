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

package time_test

import (
	stdtime "time"

	"testing"

	"laptudirm.com/x/ivory/pkg/board/piece"
	"laptudirm.com/x/ivory/pkg/search/time"
)

func TestNormalManagerThinkTime(t *testing.T) {
	tests := []struct {
		name            string
		time, increment int
		want            stdtime.Duration
	}{
		{
			// remaining/40 + 0.8*increment
			name: "with increment",
			time: 40000, increment: 1000,
			want: 1800 * stdtime.Millisecond,
		},
		{
			// increment ignored when remaining <= 2*increment
			name: "low time high increment",
			time: 1000, increment: 1000,
			want: 50 * stdtime.Millisecond,
		},
		{
			// floor of min(50, remaining/4)
			name: "very low time",
			time: 100, increment: 0,
			want: 25 * stdtime.Millisecond,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			manager := time.NormalManager{Us: piece.White}
			manager.Time[piece.White] = test.time
			manager.Increment[piece.White] = test.increment

			manager.GetDeadline()

			if got := manager.ThinkTime(); got != test.want {
				t.Errorf("expected think time %v, got %v", test.want, got)
			}
		})
	}
}

func TestMoveManager(t *testing.T) {
	manager := time.MoveManager{Duration: 100}
	manager.GetDeadline()

	if manager.Expired() {
		t.Error("deadline expired immediately")
	}

	if manager.ThinkTime() != 100*stdtime.Millisecond {
		t.Errorf("wrong think time: %v", manager.ThinkTime())
	}

	stdtime.Sleep(120 * stdtime.Millisecond)

	if !manager.Expired() {
		t.Error("deadline not expired after its duration")
	}
}
