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

package options

import (
	"laptudirm.com/x/ivory/internal/engine/context"
	"laptudirm.com/x/ivory/pkg/uci/option"
)

// UCI option Ponder, type check
//
// This means the engine is able to think on the opponent's time. The
// GUI sends this whenever pondering is possible or not.
//
// Note: the engine does not start pondering on its own; the GUI starts
// ponder searches with go ponder.
func NewPonder(engine *context.Engine) option.Option {
	return &option.Check{
		Default: true,
		Storage: func(ponder bool) error {
			engine.Options.Ponder = ponder
			return nil
		},
	}
}
