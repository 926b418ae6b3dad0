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

import "github.com/Veelow92/Bitboard-Chess-Engine/internal/types"

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by, given the combined board occupancy occ.
//
// The trick used here is the same in both directions: to test whether
// a pawn/knight/king/slider of "by" attacks sq, place that same piece
// type on sq and see if its attack set reaches a square actually
// occupied by an attacker of that type and color.
func IsSquareAttacked(occ types.Bitboard, sq types.Square, by types.Color, pieceBb func(types.Piece) types.Bitboard) bool {
	if types.PawnAttacks(by.Flip(), sq)&pieceBb(types.MakePiece(by, types.Pawn)) != 0 {
		return true
	}
	if types.KnightAttacks(sq)&pieceBb(types.MakePiece(by, types.Knight)) != 0 {
		return true
	}
	if types.KingAttacks(sq)&pieceBb(types.MakePiece(by, types.King)) != 0 {
		return true
	}
	bishopsQueens := pieceBb(types.MakePiece(by, types.Bishop)) | pieceBb(types.MakePiece(by, types.Queen))
	if GetBishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pieceBb(types.MakePiece(by, types.Rook)) | pieceBb(types.MakePiece(by, types.Queen))
	if GetRookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}
