//
// Bitboard-Chess-Engine - a bitboard/magic-bitboard move generation core
//
// MIT License
//
// Copyright (c) 2020-2026 Bitboard-Chess-Engine contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging sets up the single shared logger used across the
// engine, backed by op/go-logging.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	once sync.Once
	log  *logging.Logger
)

// GetLog returns the shared engine logger, initializing its backend on
// first use with the default level (Info). Call SetLevel afterwards to
// change verbosity, e.g. once config has been loaded.
func GetLog() *logging.Logger {
	once.Do(func() {
		log = logging.MustGetLogger("bbengine")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		backendFormatter := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(backendFormatter)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
	})
	return log
}

// SetLevel changes the minimum level the shared logger emits. Valid
// names are "debug", "info", "warning", "error", "critical" (case
// insensitive); unrecognized names leave the level unchanged.
func SetLevel(name string) {
	GetLog()
	lvl, err := logging.LogLevel(name)
	if err != nil {
		return
	}
	logging.SetLevel(lvl, "")
}
