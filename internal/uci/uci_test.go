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

package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/config"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

func init() {
	config.Setup()
}

func newHandler() (*Handler, *bytes.Buffer) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	return h, &out
}

func TestUciCommandPrintsIdentification(t *testing.T) {
	h, out := newHandler()
	h.Command("uci")
	assert.Contains(t, out.String(), "id name Bitboard-Chess-Engine")
	assert.Contains(t, out.String(), "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	h, out := newHandler()
	h.Command("isready")
	assert.Equal(t, "readyok\n", out.String())
}

func TestQuitCommandStopsLoop(t *testing.T) {
	h, _ := newHandler()
	assert.True(t, h.Command("quit"))
	assert.False(t, h.Command("isready"))
}

func TestPositionStartposWithMoves(t *testing.T) {
	h, _ := newHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, types.White, h.pos.SideToMove())
	assert.Equal(t, types.WP, h.pos.PieceAt(types.SqE4))
	assert.Equal(t, types.BP, h.pos.PieceAt(types.SqE5))
}

func TestPositionFen(t *testing.T) {
	h, _ := newHandler()
	h.Command("position fen 8/8/8/8/8/8/8/4K2k w - - 0 1")
	assert.Equal(t, types.WK, h.pos.PieceAt(types.SqE1))
}

func TestGoCommandReturnsBestMove(t *testing.T) {
	h, out := newHandler()
	h.Command("go depth 1")
	assert.Contains(t, out.String(), "bestmove")
}
