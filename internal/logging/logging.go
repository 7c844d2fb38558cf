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

// Package logging configures the loggers used across the engine. All
// loggers write to stderr so that stdout stays reserved for the UCI
// conversation with the GUI.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7.7s} %{module:-8.8s} %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")

	logging.SetBackend(leveled)
}

// GetLog returns a logger for the given module which writes to the
// engine's shared stderr backend.
func GetLog(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel changes the log level of every logger handed out by GetLog.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
