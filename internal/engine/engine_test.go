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

package engine_test

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"testing"

	"laptudirm.com/x/ivory/internal/engine"
	"laptudirm.com/x/ivory/pkg/uci"
)

// syncBuffer is an output stream which can be written to by the search
// worker while the test inspects it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// bestmoves returns the number of bestmove lines emitted so far.
func (b *syncBuffer) bestmoves() int {
	return strings.Count(b.String(), "bestmove ")
}

// waitBestmoves waits until the given number of bestmove lines have
// been emitted, failing the test on timeout.
func (b *syncBuffer) waitBestmoves(t *testing.T, n int) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for b.bestmoves() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for bestmove\noutput:\n%s", b.String())
		}

		time.Sleep(5 * time.Millisecond)
	}
}

// newPondering creates an engine client writing to a fresh buffer,
// with a ponder search running on the position after 1. e4 e5.
func newPondering(t *testing.T) (*uci.Client, *syncBuffer) {
	t.Helper()

	out := &syncBuffer{}
	client := engine.NewClientWith(strings.NewReader(""), out)

	run := func(args ...string) {
		t.Helper()
		if err := client.Run(args...); err != nil {
			t.Fatal(err)
		}
	}

	// the last move is the opponent's expected reply to ponder on
	run("position", "startpos", "moves", "e2e4", "e7e5")
	run("go", "ponder", "wtime", "2000", "btime", "2000")

	// the ponder search must not produce any output on its own
	time.Sleep(150 * time.Millisecond)
	if n := out.bestmoves(); n != 0 {
		t.Fatalf("ponder search emitted %d bestmoves before ponderhit\noutput:\n%s",
			n, out.String())
	}

	return client, out
}

func TestPonderHit(t *testing.T) {
	client, out := newPondering(t)

	// the pondered move was played: the engine converts into a timed
	// search and emits the single bestmove of the original go
	if err := client.Run("ponderhit"); err != nil {
		t.Fatal(err)
	}

	out.waitBestmoves(t, 1)

	// no second bestmove or stray ponder result may leak through
	time.Sleep(250 * time.Millisecond)
	if n := out.bestmoves(); n != 1 {
		t.Fatalf("expected exactly 1 bestmove after ponderhit, got %d\noutput:\n%s",
			n, out.String())
	}
}

func TestPonderStop(t *testing.T) {
	client, out := newPondering(t)

	// the host aborted the ponder: exactly one bestmove is emitted and
	// nothing else follows until the next go
	if err := client.Run("stop"); err != nil {
		t.Fatal(err)
	}

	out.waitBestmoves(t, 1)

	time.Sleep(250 * time.Millisecond)
	if n := out.bestmoves(); n != 1 {
		t.Fatalf("expected exactly 1 bestmove after stop, got %d\noutput:\n%s",
			n, out.String())
	}

	// the engine is idle again and a new go produces a new bestmove
	if err := client.Run("go", "movetime", "50"); err != nil {
		t.Fatal(err)
	}

	out.waitBestmoves(t, 2)
}
