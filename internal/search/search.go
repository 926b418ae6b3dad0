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

// Package search is a placeholder for the evaluation/search engine
// that would normally sit on top of the move generation core. It
// always returns the first legal move it finds, which is enough to
// drive the UCI protocol loop end to end without implicating this
// repository's actual subject matter: move generation.
package search

import (
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/logging"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/movegen"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

var log = logging.GetLog()

// FindMove returns a legal move for the side to move in pos, or
// MoveNone if the position has no legal moves (checkmate or
// stalemate).
func FindMove(pos *position.Position) types.Move {
	var list types.MoveList
	movegen.Generate(pos, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		prev, ok := pos.MakeMove(m, position.AllMoves)
		if !ok {
			continue
		}
		pos.UnmakeMove(prev)
		return m
	}
	log.Debugf("search: no legal move in position %s", pos.FEN())
	return types.MoveNone
}
