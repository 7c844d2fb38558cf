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

// Package options implements the UCI options supported by the engine.
package options

import (
	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/uci/option"
)

// UCI option Hash, type spin
//
// The size in MB allocated for the transposition table. Values above
// the maximum are capped by the option bounds rather than crashing the
// allocation.
func NewHash(engine *context.Engine) option.Option {
	return &option.Spin{
		Default: 16,
		Min:     1,
		Max:     1024,
		Storage: func(hash int) error {
			engine.Options.Hash = hash

			// the worker owns the table while searching
			engine.StopSearch()
			engine.WaitForSearch()

			engine.Search.ResizeTT(hash)
			return nil
		},
	}
}
