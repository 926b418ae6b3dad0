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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
)

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 5 is slow; skipped with -short")
	}
	expected := []uint64{0, 20, 400, 8902, 197281, 4865609}
	p := position.New()
	for depth := 1; depth <= 5; depth++ {
		r := Run(p, depth)
		assert.Equal(t, expected[depth], r.Nodes, "perft(%d) from start position", depth)
	}
}

func TestPerftStartPositionShallow(t *testing.T) {
	expected := []uint64{0, 20, 400, 8902}
	p := position.New()
	for depth := 1; depth <= 3; depth++ {
		r := Run(p, depth)
		assert.Equal(t, expected[depth], r.Nodes, "perft(%d) from start position", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 4 is slow; skipped with -short")
	}
	expected := []uint64{0, 48, 2039, 97862, 4085603}
	p, err := position.NewFromFEN(kiwipeteFen)
	assert.NoError(t, err)
	for depth := 1; depth <= 4; depth++ {
		r := Run(p, depth)
		assert.Equal(t, expected[depth], r.Nodes, "perft(%d) from kiwipete", depth)
	}
}

func TestPerftKiwipeteShallow(t *testing.T) {
	expected := []uint64{0, 48, 2039}
	p, err := position.NewFromFEN(kiwipeteFen)
	assert.NoError(t, err)
	for depth := 1; depth <= 2; depth++ {
		r := Run(p, depth)
		assert.Equal(t, expected[depth], r.Nodes, "perft(%d) from kiwipete", depth)
	}
}

func TestDivideSumsToSameTotalAsRun(t *testing.T) {
	p := position.New()
	total := Divide(p, 3)
	assert.Equal(t, uint64(8902), total)
}
