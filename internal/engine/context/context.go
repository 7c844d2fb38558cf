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

// Package context defines the state shared between the UCI commands of
// the engine, including the search worker.
package context

import (
	"runtime"
	"sync/atomic"

	"laptudirm.com/x/ivory/internal/logging"
	"laptudirm.com/x/ivory/pkg/board/move"
	"laptudirm.com/x/ivory/pkg/search"
	"laptudirm.com/x/ivory/pkg/uci"
	"laptudirm.com/x/ivory/pkg/uci/option"
)

var log = logging.GetLog("engine")

// Engine represents the engine's shared state. The UCI commands run on
// the protocol goroutine, while all searching happens on a single
// long-lived worker goroutine which owns the board while it runs.
//
// The protocol goroutine must not mutate the board or the search state
// while a search is in progress: commands which need to do so first
// cancel the search and wait for the worker to finish.
type Engine struct {
	// engine's uci client
	Client *uci.Client

	// current search context
	Search *search.Context

	// wake signals for the search worker
	wake chan *Request
	last *Request

	// pondering state, used only by the protocol goroutine
	Pondering    bool
	PonderLimits search.Limits
	PonderFEN    string

	// uci options
	OptionSchema option.Schema
	Options      Options
}

// Options contains the values of the UCI options supported by the
// engine.
type Options struct {
	Ponder bool // name Ponder type check
	Hash   int  // name Hash type spin
}

// Request represents a single search request handed to the worker.
type Request struct {
	Limits search.Limits

	// if set, the worker does not emit a bestmove for this search;
	// used when a ponder search is converted into a normal one
	discard atomic.Bool

	// closed by the worker once the search has completed
	done chan struct{}
}

// New creates a new Engine context attached to the given client and
// starts its search worker.
func New(client *uci.Client) *Engine {
	engine := &Engine{
		Client:       client,
		OptionSchema: option.NewSchema(),
		wake:         make(chan *Request),
	}

	engine.Search = search.NewContext(func(report search.Report) {
		_, _ = client.Println(report.UCI())
	}, 16)

	go engine.worker()

	return engine
}

// worker is the search worker loop. It blocks on the wake channel, runs
// the requested search, emits the bestmove, and blocks again.
func (e *Engine) worker() {
	for req := range e.wake {
		pv, _, err := e.Search.Search(req.Limits)
		if err != nil {
			log.Errorf("search: %v", err)
		}

		if !req.discard.Load() {
			switch best, ponder := pv.Move(0), pv.Move(1); {
			case ponder == move.Null:
				_, _ = e.Client.Printf("bestmove %s\n", best)
			default:
				_, _ = e.Client.Printf("bestmove %s ponder %s\n", best, ponder)
			}
		}

		close(req.done)
	}
}

// StartSearch wakes the worker with a new search request. It must only
// be called when no search is in progress.
func (e *Engine) StartSearch(limits search.Limits) {
	req := &Request{Limits: limits, done: make(chan struct{})}
	e.last = req
	e.wake <- req
}

// Searching reports whether a search request is currently being worked
// on, from the wake signal until its bestmove is emitted.
func (e *Engine) Searching() bool {
	if e.last == nil {
		return false
	}

	select {
	case <-e.last.done:
		return false
	default:
		return true
	}
}

// StopSearch requests the cooperative cancellation of the current
// search. The worker will emit a bestmove shortly afterwards.
func (e *Engine) StopSearch() {
	e.Search.Stop()
}

// WaitForSearch blocks until the current search, if any, has finished
// and its bestmove has been emitted. Commands which mutate the board
// must call this after cancelling to acquire ownership of it.
func (e *Engine) WaitForSearch() {
	if e.last != nil {
		<-e.last.done
	}
}

// AbortSearch cancels the current search and discards its result: no
// bestmove is emitted. It blocks until the worker is done.
func (e *Engine) AbortSearch() {
	if e.last == nil {
		return
	}

	e.last.discard.Store(true)

	// wait for the search to actually start before stopping it, in
	// case the worker has not picked up the request yet
	for !e.Search.InProgress() && e.Searching() {
		runtime.Gosched()
	}

	e.Search.Stop()
	e.WaitForSearch()
}
