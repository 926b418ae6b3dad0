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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	d := defaults()
	assert.Equal(t, "info", d.Log.Level)
	assert.Equal(t, 5, d.Perft.DefaultDepth)
	assert.Equal(t, 256, d.Perft.MoveListCapacity)
	assert.True(t, d.Magics.Precomputed)
	assert.Equal(t, 100_000_000, d.Magics.SearchBudget)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	first := Settings
	Settings.Log.Level = "debug"
	Setup()
	assert.Equal(t, "debug", Settings.Log.Level, "second Setup call must be a no-op")
	assert.NotEqual(t, first.Log.Level, Settings.Log.Level)
	initialized = false
}

func TestStringRendersAllGroups(t *testing.T) {
	c := defaults()
	s := c.String()
	assert.Contains(t, s, "[Log]")
	assert.Contains(t, s, "[Perft]")
	assert.Contains(t, s, "[Magics]")
}
