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

// Package time implements various types and functions used to manage
// the time allocated to searching a position.
package time

import (
	"time"

	"laptudirm.com/x/ivory/internal/util"
	"laptudirm.com/x/ivory/pkg/board/piece"
)

// Manager represents a search time manager.
type Manager interface {
	// GetDeadline calculates the optimal amount of time to be used
	// and sets a deadline internally for the search's end.
	GetDeadline()

	// ThinkTime returns the duration calculated by GetDeadline.
	ThinkTime() time.Duration

	// Expired reports if the search deadline has been crossed.
	Expired() bool
}

// NormalManager is the standard time manager which uses the wtime,
// btime, winc, and binc values provided by the GUI to calculate the
// optimal search time.
type NormalManager struct {
	Us piece.Color // side to move

	Time, Increment [piece.ColorN]int

	// MaxThinkTime optionally caps the calculated think time. A value
	// of 0 means no cap.
	MaxThinkTime int

	think    time.Duration
	deadline time.Time
}

// compile time check that NormalManager implements Manager
var _ Manager = (*NormalManager)(nil)

func (c *NormalManager) GetDeadline() {
	remaining := c.Time[c.Us]
	increment := c.Increment[c.Us]

	// use a fraction of the remaining time, plus most of the increment
	// which is gained back after the move is made
	think := remaining / 40
	if remaining > 2*increment {
		think += increment * 8 / 10
	}

	// never think for less than 50ms, unless very low on time
	think = util.Max(think, util.Min(50, remaining/4))

	if c.MaxThinkTime > 0 {
		think = util.Min(think, c.MaxThinkTime)
	}

	c.think = time.Duration(think) * time.Millisecond
	c.deadline = time.Now().Add(c.think)
}

func (c *NormalManager) ThinkTime() time.Duration {
	return c.think
}

func (c *NormalManager) Expired() bool {
	return time.Now().After(c.deadline)
}

// MoveManager is the time manager used when the GUI wants to time a
// search by move-time. The full provided duration is always used.
type MoveManager struct {
	Duration int

	think    time.Duration
	deadline time.Time
}

// compile time check that MoveManager implements Manager
var _ Manager = (*MoveManager)(nil)

func (c *MoveManager) GetDeadline() {
	c.think = time.Duration(c.Duration) * time.Millisecond
	c.deadline = time.Now().Add(c.think)
}

func (c *MoveManager) ThinkTime() time.Duration {
	return c.think
}

func (c *MoveManager) Expired() bool {
	return time.Now().After(c.deadline)
}
