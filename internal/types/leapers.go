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

package types

// Precomputed leaper attack tables: pawn captures (per color), knight
// jumps and king steps. These never depend on blockers, unlike the
// slider tables built by the magic bitboard package, so they are
// computed once here and looked up directly.
var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
)

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		var wp, bp Bitboard
		if f > 0 && r > 0 {
			wp = wp.Set(SquareOf(File(f-1), Rank(r-1)))
		}
		if f < 7 && r > 0 {
			wp = wp.Set(SquareOf(File(f+1), Rank(r-1)))
		}
		if f > 0 && r < 7 {
			bp = bp.Set(SquareOf(File(f-1), Rank(r+1)))
		}
		if f < 7 && r < 7 {
			bp = bp.Set(SquareOf(File(f+1), Rank(r+1)))
		}
		pawnAttacks[White][sq] = wp
		pawnAttacks[Black][sq] = bp

		var kn Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kn = kn.Set(SquareOf(File(nf), Rank(nr)))
			}
		}
		knightAttacks[sq] = kn

		var ki Bitboard
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				ki = ki.Set(SquareOf(File(nf), Rank(nr)))
			}
		}
		kingAttacks[sq] = ki
	}
}

// PawnAttacks returns the squares a color's pawn standing on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight standing on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king standing on sq attacks (one
// step in any direction, ignoring castling).
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}
