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

import "fmt"

// Move packs a single move into the low 24 bits of a uint32:
//
//	bits  0- 5  source square   (0..63)
//	bits  6-11  target square   (0..63)
//	bits 12-15  moving piece    (Piece, 0..11)
//	bits 16-19  promoted piece  (Piece, or PieceNone if no promotion)
//	bit     20  capture flag
//	bit     21  double pawn push flag
//	bit     22  en passant capture flag
//	bit     23  castling flag
//
// The layout intentionally leaves bits above 23 unused so a future move
// ordering score can be packed into the high bits without disturbing the
// decode masks below.
type Move uint32

const MoveNone Move = 0

const (
	moveFromShift  = 0
	moveFromMask   = 0x3F
	moveToShift    = 6
	moveToMask     = 0x3F
	movePieceShift = 12
	movePieceMask  = 0xF
	movePromoShift = 16
	movePromoMask  = 0xF
	moveCaptureBit = 1 << 20
	moveDoubleBit  = 1 << 21
	moveEnPassBit  = 1 << 22
	moveCastleBit  = 1 << 23
)

// MoveFlags carries the four boolean tags of a move (capture, double
// push, en passant, castling) to CreateMove, so callers don't have to
// remember positional bool arguments.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castling   bool
}

// CreateMove packs a move from its fields. promoted is PieceNone when
// the move is not a promotion.
func CreateMove(from, to Square, piece, promoted Piece, flags MoveFlags) Move {
	m := Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(piece)<<movePieceShift |
		Move(promoted)<<movePromoShift
	if flags.Capture {
		m |= moveCaptureBit
	}
	if flags.DoublePush {
		m |= moveDoubleBit
	}
	if flags.EnPassant {
		m |= moveEnPassBit
	}
	if flags.Castling {
		m |= moveCastleBit
	}
	return m
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveFromMask)
}

// To returns the move's target square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveToMask)
}

// Piece returns the piece making the move.
func (m Move) Piece() Piece {
	return Piece((m >> movePieceShift) & movePieceMask)
}

// Promoted returns the promotion piece, or PieceNone if this move is
// not a promotion.
func (m Move) Promoted() Piece {
	return Piece((m >> movePromoShift) & movePromoMask)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promoted() != PieceNone
}

// IsCapture reports whether the move captures a piece (including en
// passant captures).
func (m Move) IsCapture() bool {
	return m&moveCaptureBit != 0
}

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m&moveDoubleBit != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m&moveEnPassBit != 0
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m&moveCastleBit != 0
}

// StringUci renders the move in UCI long algebraic notation, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promoted().TypeOf().Char() + ('a' - 'A'))
	}
	return s
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return m.StringUci()
}

// StringBits renders the raw field layout of the move, for debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf("from=%s to=%s piece=%s promo=%s capture=%v double=%v ep=%v castle=%v",
		m.From(), m.To(), m.Piece(), m.Promoted(), m.IsCapture(), m.IsDoublePush(), m.IsEnPassant(), m.IsCastling())
}

// defaultListCapacity sizes a MoveList's backing array the first time
// it is used. Move generation never produces more than a few dozen
// moves in any legal chess position; 256 is a conservative ceiling.
// SetCapacity overrides it, normally from config.Settings.Perft.MoveListCapacity.
var defaultListCapacity = 256

// SetCapacity overrides the capacity newly-allocated MoveLists get.
// Only affects lists whose backing array hasn't been allocated yet
// (i.e. that haven't had Add or Clear called on them); call it during
// startup, before move generation begins.
func SetCapacity(n int) {
	if n > 0 {
		defaultListCapacity = n
	}
}

// MoveList is a list of pseudo-legal or legal moves backed by a slice
// allocated on first use at defaultListCapacity.
type MoveList struct {
	moves []Move
	size  int
}

// Add appends m to the list. It panics if the list is already at
// capacity, which would indicate a move generation bug rather than a
// reachable chess position.
func (l *MoveList) Add(m Move) {
	if l.moves == nil {
		l.moves = make([]Move, defaultListCapacity)
	}
	l.moves[l.size] = m
	l.size++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.size
}

// At returns the i'th move in the list.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Clear empties the list for reuse, allocating its backing array at
// defaultListCapacity if this is the list's first use.
func (l *MoveList) Clear() {
	if l.moves == nil {
		l.moves = make([]Move, defaultListCapacity)
	}
	l.size = 0
}

// Slice returns the list's moves as a plain slice backed by the list's
// internal array; callers must not retain it past the next Add/Clear.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.size]
}
