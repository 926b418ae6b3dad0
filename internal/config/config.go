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

// Package config holds the globally available configuration values,
// populated from defaults, a TOML file or command line flags.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile holds the path to the config file to read (relative to the
// working directory, unless absolute).
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Perft  perftConfiguration
	Magics magicsConfiguration
}

type logConfiguration struct {
	// Level is one of "debug", "info", "warning", "error", "critical".
	Level string
}

type perftConfiguration struct {
	// DefaultDepth is used by the perft command when no depth is given.
	DefaultDepth int
	// MoveListCapacity sizes the move list's backing array; 256 is a
	// conservative ceiling for any legal position.
	MoveListCapacity int
}

type magicsConfiguration struct {
	// Precomputed selects whether the magic search starts from the
	// per-rank tuned seed table (true, production-like) or from one
	// generic seed shared by every square (false, slower: more
	// candidates are tried per square before a magic is found).
	Precomputed bool
	// SearchBudget bounds the number of magic candidates tried per
	// square before the search gives up and falls back to 0, per the
	// magic search failure handling.
	SearchBudget int
}

func defaults() conf {
	return conf{
		Log: logConfiguration{
			Level: "info",
		},
		Perft: perftConfiguration{
			DefaultDepth:     5,
			MoveListCapacity: 256,
		},
		Magics: magicsConfiguration{
			Precomputed:  true,
			SearchBudget: 100_000_000,
		},
	}
}

// Setup reads the configuration file (if present) and populates
// Settings, falling back to defaults for anything the file doesn't
// set. Idempotent: subsequent calls are no-ops.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			fmt.Fprintf(os.Stderr, "config: could not parse %s, using defaults (%v)\n", ConfFile, err)
			Settings = defaults()
		}
	}
	initialized = true
}

// String renders the current settings via reflection, for debug
// printing at startup.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Configuration:\n")
	v := reflect.ValueOf(*c)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sb.WriteString(fmt.Sprintf("[%s]\n", t.Field(i).Name))
		group := v.Field(i)
		groupType := group.Type()
		for j := 0; j < group.NumField(); j++ {
			sb.WriteString(fmt.Sprintf("  %-20s = %v\n", groupType.Field(j).Name, group.Field(j).Interface()))
		}
	}
	return sb.String()
}
