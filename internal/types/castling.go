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

// CastlingRights is a four-bit mask of remaining castling rights.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0

	CastlingWhiteKing  CastlingRights = 1
	CastlingWhiteQueen CastlingRights = 2
	CastlingBlackKing  CastlingRights = 4
	CastlingBlackQueen CastlingRights = 8

	CastlingAll CastlingRights = CastlingWhiteKing | CastlingWhiteQueen | CastlingBlackKing | CastlingBlackQueen
)

// Has reports whether all bits of rhs are set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}

func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastlingWhiteKing) {
		s += "K"
	}
	if lhs.Has(CastlingWhiteQueen) {
		s += "Q"
	}
	if lhs.Has(CastlingBlackKing) {
		s += "k"
	}
	if lhs.Has(CastlingBlackQueen) {
		s += "q"
	}
	return s
}

// castlingRightsMask holds, for each square, the mask to AND the current
// castling rights with whenever a move touches that square as source or
// target. Every square holds CastlingAll (no change) except the four
// rook corners and the two king home squares, whose masks clear the
// right(s) that square touching them invalidates.
var castlingRightsMask = func() [SqLength]CastlingRights {
	var t [SqLength]CastlingRights
	for i := range t {
		t[i] = CastlingAll
	}
	t[SqE1] = CastlingAll &^ (CastlingWhiteKing | CastlingWhiteQueen)
	t[SqA1] = CastlingAll &^ CastlingWhiteQueen
	t[SqH1] = CastlingAll &^ CastlingWhiteKing
	t[SqE8] = CastlingAll &^ (CastlingBlackKing | CastlingBlackQueen)
	t[SqA8] = CastlingAll &^ CastlingBlackQueen
	t[SqH8] = CastlingAll &^ CastlingBlackKing
	return t
}()

// CastlingRightsMask returns the AND-mask for sq: apply it to the current
// castling rights once for the move's source square and once for its
// target square to correctly update rights for king moves, rook moves
// and rooks being captured on their home square.
func CastlingRightsMask(sq Square) CastlingRights {
	return castlingRightsMask[sq]
}
