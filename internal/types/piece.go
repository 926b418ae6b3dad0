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

// Piece is a tagged enumeration of the twelve piece kinds. The ordering
// is load-bearing: code arithmetic (e.g. "the six piece kinds of a
// color", color = piece/6) depends on white pieces occupying 0..5 and
// black pieces occupying 6..11, pawn-knight-bishop-rook-queen-king order
// within each color.
type Piece int8

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	PieceNone
	PieceLength = PieceNone
)

var pieceChar = [PieceLength]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// MakePiece returns the piece of color c and type pt. pt must not be
// PtNone.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt) - 1)
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	if p < BP {
		return White
	}
	return Black
}

// TypeOf returns the piece type, ignoring color.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(int(p)%6) + Pawn
}

// Char returns the FEN letter for the piece (uppercase for white,
// lowercase for black), or '.' for PieceNone.
func (p Piece) Char() byte {
	if p == PieceNone || p < 0 || p >= PieceLength {
		return '.'
	}
	return pieceChar[p]
}

func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar returns the piece represented by a single FEN letter, or
// PieceNone if c is not a recognized piece letter.
func PieceFromChar(c byte) Piece {
	for i, pc := range pieceChar {
		if pc == c {
			return Piece(i)
		}
	}
	return PieceNone
}

// IsValid reports whether p is one of the twelve piece kinds.
func (p Piece) IsValid() bool {
	return p >= WP && p < PieceLength
}
