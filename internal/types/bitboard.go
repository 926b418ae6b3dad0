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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned word, one bit per board square (bit k
// corresponds to Square(k)).
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

const (
	FileABb Bitboard = 0x0101010101010101
	FileHBb Bitboard = FileABb << 7
	Rank8Bb Bitboard = 0x00000000000000FF
	Rank1Bb Bitboard = Rank8Bb << 56

	notFileA Bitboard = ^FileABb
	notFileH Bitboard = ^FileHBb
)

// sqBb caches the single-bit bitboard for every square.
var sqBb = func() [SqLength]Bitboard {
	var t [SqLength]Bitboard
	for sq := SqA8; sq < SqNone; sq++ {
		t[sq] = Bitboard(1) << uint(sq)
	}
	return t
}()

// Bb returns the single-bit bitboard of sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Set returns b with the bit for sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sqBb[sq]
}

// Clear returns b with the bit for sq cleared. Uses the AND-NOT form,
// which (unlike a conditional XOR) is idempotent when the bit is already
// clear.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// Test reports whether the bit for sq is set in b.
func (b Bitboard) Test(sq Square) bool {
	return b&sqBb[sq] != 0
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if
// b is zero.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears the least significant set bit of *b and returns its
// square, or SqNone if *b was already zero.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// Shift moves every set bit of b one square in direction d, discarding
// bits that would wrap around a file edge or fall off the board.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b & notFileH) << 1
	case West:
		return (b & notFileA) >> 1
	case Northeast:
		return (b & notFileH) >> 7
	case Northwest:
		return (b & notFileA) >> 9
	case Southeast:
		return (b & notFileH) << 9
	case Southwest:
		return (b & notFileA) << 7
	default:
		return b
	}
}

// String renders the bitboard as an 8x8 grid, rank 8 at the top, for
// debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for sq := SqA8; sq < SqNone; sq++ {
		if b.Test(sq) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('.')
		}
		if sq.FileOf() == FileH {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
