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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

func assertInvariants(t *testing.T, p *Position) {
	t.Helper()

	var seen types.Bitboard
	for piece := types.WP; piece < types.PieceNone; piece++ {
		assert.Zero(t, seen&p.piecesBb[piece], "piece bitboards are not pairwise disjoint")
		seen |= p.piecesBb[piece]
	}

	assert.Equal(t, p.OccupiedBb(types.White)|p.OccupiedBb(types.Black), p.OccupiedBb(types.Both))
	assert.Equal(t, 1, p.PieceBb(types.WK).PopCount(), "white must have exactly one king")
	assert.Equal(t, 1, p.PieceBb(types.BK).PopCount(), "black must have exactly one king")
}

func TestStartPositionInvariants(t *testing.T) {
	p := New()
	assertInvariants(t, p)
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.CastlingAll, p.CastlingRights())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewFromFEN(fen)
		assert.NoError(t, err)
		assertInvariants(t, p)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestParseFenRejectsTooFewFields(t *testing.T) {
	_, err := NewFromFEN("not a fen")
	assert.Error(t, err)
}

func TestPieceAt(t *testing.T) {
	p := New()
	assert.Equal(t, types.WR, p.PieceAt(types.SqA1))
	assert.Equal(t, types.BK, p.PieceAt(types.SqE8))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE4))
}

func TestKingSquare(t *testing.T) {
	p := New()
	assert.Equal(t, types.SqE1, p.KingSquare(types.White))
	assert.Equal(t, types.SqE8, p.KingSquare(types.Black))
}
