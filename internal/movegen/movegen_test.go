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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

func TestGenerateStartPositionHas20Moves(t *testing.T) {
	p := position.New()
	var list types.MoveList
	Generate(p, &list)
	assert.Equal(t, 20, list.Len())
}

func TestGeneratePawnPromotionsAllFour(t *testing.T) {
	p, err := position.NewFromFEN("8/4P3/8/8/8/8/8/k6K w - - 0 1")
	assert.NoError(t, err)
	var list types.MoveList
	Generate(p, &list)

	promos := map[types.Piece]bool{}
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == types.SqE7 {
			assert.True(t, m.IsPromotion())
			promos[m.Promoted()] = true
		}
	}
	assert.Len(t, promos, 4)
}

func TestGenerateEnPassantCapture(t *testing.T) {
	p, err := position.NewFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	var list types.MoveList
	Generate(p, &list)

	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsEnPassant() {
			assert.Equal(t, types.SqE5, m.From())
			assert.Equal(t, types.SqD6, m.To())
			found = true
		}
	}
	assert.True(t, found, "expected an en passant move in the list")
}

func TestGenerateCastlingBothSides(t *testing.T) {
	p, err := position.NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	var list types.MoveList
	Generate(p, &list)

	kingSide, queenSide := false, false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsCastling() && m.To() == types.SqG1 {
			kingSide = true
		}
		if m.IsCastling() && m.To() == types.SqC1 {
			queenSide = true
		}
	}
	assert.True(t, kingSide)
	assert.True(t, queenSide)
}

func TestGenerateCastlingBlockedByAttackedSquare(t *testing.T) {
	// Black rook on f8 attacks f1, so white cannot castle king side
	// (the king would cross an attacked square).
	p, err := position.NewFromFEN("r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	assert.NoError(t, err)
	var list types.MoveList
	Generate(p, &list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.IsCastling() && m.To() == types.SqG1, "king side castle should be blocked")
	}
}

func TestParseMoveUciMatchesGeneratedMove(t *testing.T) {
	p := position.New()
	m := ParseMoveUci(p, "e2e4")
	assert.NotEqual(t, types.MoveNone, m)
	assert.Equal(t, types.SqE2, m.From())
	assert.Equal(t, types.SqE4, m.To())
	assert.True(t, m.IsDoublePush())

	assert.Equal(t, types.MoveNone, ParseMoveUci(p, "e9e9"))
}
