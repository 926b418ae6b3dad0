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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

func TestIsSquareAttackedByPawn(t *testing.T) {
	pieces := func(p types.Piece) types.Bitboard {
		if p == types.BP {
			return types.SqD5.Bb()
		}
		return types.BbZero
	}
	// A black pawn on d5 attacks c4 and e4.
	assert.True(t, IsSquareAttacked(types.SqD5.Bb(), types.SqC4, types.Black, pieces))
	assert.True(t, IsSquareAttacked(types.SqD5.Bb(), types.SqE4, types.Black, pieces))
	assert.False(t, IsSquareAttacked(types.SqD5.Bb(), types.SqD4, types.Black, pieces))
}

func TestIsSquareAttackedByRook(t *testing.T) {
	occ := types.SqA1.Bb() | types.SqA8.Bb()
	pieces := func(p types.Piece) types.Bitboard {
		if p == types.WR {
			return types.SqA1.Bb()
		}
		return types.BbZero
	}
	assert.True(t, IsSquareAttacked(occ, types.SqA4, types.White, pieces))
	assert.False(t, IsSquareAttacked(occ, types.SqB4, types.White, pieces))
}

func TestIsSquareAttackedByKnight(t *testing.T) {
	pieces := func(p types.Piece) types.Bitboard {
		if p == types.WN {
			return types.SqG1.Bb()
		}
		return types.BbZero
	}
	assert.True(t, IsSquareAttacked(types.SqG1.Bb(), types.SqF3, types.White, pieces))
	assert.False(t, IsSquareAttacked(types.SqG1.Bb(), types.SqF2, types.White, pieces))
}
