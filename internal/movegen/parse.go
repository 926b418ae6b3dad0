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
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

// ParseMoveUci parses a UCI long algebraic move string (e.g. "e2e4" or
// "e7e8q") against the pseudo-legal moves currently available in pos,
// returning the matching packed Move, or MoveNone if uci does not name
// any move in that set.
func ParseMoveUci(pos *position.Position, uci string) types.Move {
	if len(uci) < 4 {
		return types.MoveNone
	}
	from := types.MakeSquare(uci[0:2])
	to := types.MakeSquare(uci[2:4])
	if from == types.SqNone || to == types.SqNone {
		return types.MoveNone
	}
	var promo byte
	if len(uci) >= 5 {
		promo = uci[4]
	}

	var list types.MoveList
	Generate(pos, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if !m.IsPromotion() {
			if promo == 0 {
				return m
			}
			continue
		}
		if promo != 0 && m.Promoted().TypeOf().Char()+('a'-'A') == promo {
			return m
		}
	}
	return types.MoveNone
}
