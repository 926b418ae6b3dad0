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

package position

import (
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/assert"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/attacks"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

// Mode selects which pseudo-legal moves MakeMove actually applies.
type Mode int

const (
	// AllMoves applies any pseudo-legal move.
	AllMoves Mode = iota
	// CapturesOnly rejects moves that do not capture a piece.
	CapturesOnly
)

// State is a snapshot of everything MakeMove mutates. UnmakeMove restores a
// Position to exactly this state; it is the "unmake" half of the
// engine's snapshot/restore make/unmake idiom.
type State struct {
	piecesBb        [types.PieceLength]types.Bitboard
	occupiedBb      [types.ColorLength + 1]types.Bitboard
	side            types.Color
	enPassantSquare types.Square
	castlingRights  types.CastlingRights
	halfMoveClock   int
	fullMoveNo      int
}

// snapshot captures the current board state for later restore.
func (p *Position) snapshot() State {
	return State{
		piecesBb:        p.piecesBb,
		occupiedBb:      p.occupiedBb,
		side:            p.side,
		enPassantSquare: p.enPassantSquare,
		castlingRights:  p.castlingRights,
		halfMoveClock:   p.halfMoveClock,
		fullMoveNo:      p.fullMoveNo,
	}
}

// restore writes a previously captured snapshot back onto the board.
func (p *Position) restore(s State) {
	p.piecesBb = s.piecesBb
	p.occupiedBb = s.occupiedBb
	p.side = s.side
	p.enPassantSquare = s.enPassantSquare
	p.castlingRights = s.castlingRights
	p.halfMoveClock = s.halfMoveClock
	p.fullMoveNo = s.fullMoveNo
}

// MakeMove applies m to the board and returns the pre-move state plus
// whether the move was legal. On an illegal move (own king left in
// check) or a rejected captures-only quiet move, the board is left
// unchanged and ok is false; the returned State is only meaningful
// when ok is true, and must then be passed to UnmakeMove to undo it.
func (p *Position) MakeMove(m types.Move, mode Mode) (prev State, ok bool) {
	if mode == CapturesOnly && !m.IsCapture() {
		return State{}, false
	}

	prev = p.snapshot()

	us := p.side
	them := us.Flip()
	from, to := m.From(), m.To()
	piece := m.Piece()

	if assert.DEBUG {
		assert.Assert(p.piecesBb[piece].Test(from), "MakeMove: no %s on %s for move %s", piece, from, m)
		assert.Assert(piece.ColorOf() == us, "MakeMove: %s does not belong to side to move %s", piece, us)
	}

	p.piecesBb[piece] = p.piecesBb[piece].Clear(from).Set(to)

	if m.IsCapture() && !m.IsEnPassant() {
		for pt := types.Pawn; pt <= types.King; pt++ {
			capturedPiece := types.MakePiece(them, pt)
			if p.piecesBb[capturedPiece].Test(to) {
				p.piecesBb[capturedPiece] = p.piecesBb[capturedPiece].Clear(to)
				break
			}
		}
	}

	if m.IsPromotion() {
		p.piecesBb[piece] = p.piecesBb[piece].Clear(to)
		p.piecesBb[m.Promoted()] = p.piecesBb[m.Promoted()].Set(to)
	}

	if m.IsEnPassant() {
		capturedSq := to.To(them.PawnDirection())
		p.piecesBb[types.MakePiece(them, types.Pawn)] = p.piecesBb[types.MakePiece(them, types.Pawn)].Clear(capturedSq)
	}

	p.enPassantSquare = types.SqNone
	if m.IsDoublePush() {
		p.enPassantSquare = to.To(them.PawnDirection())
	}

	if m.IsCastling() {
		switch to {
		case types.SqG1:
			p.piecesBb[types.WR] = p.piecesBb[types.WR].Clear(types.SqH1).Set(types.SqF1)
		case types.SqC1:
			p.piecesBb[types.WR] = p.piecesBb[types.WR].Clear(types.SqA1).Set(types.SqD1)
		case types.SqG8:
			p.piecesBb[types.BR] = p.piecesBb[types.BR].Clear(types.SqH8).Set(types.SqF8)
		case types.SqC8:
			p.piecesBb[types.BR] = p.piecesBb[types.BR].Clear(types.SqA8).Set(types.SqD8)
		}
	}

	p.castlingRights &= types.CastlingRightsMask(from)
	p.castlingRights &= types.CastlingRightsMask(to)

	p.rebuildOccupancies()
	p.side = them
	if us == types.Black {
		p.fullMoveNo++
	}
	if m.IsCapture() || piece.TypeOf() == types.Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	kingSq := p.KingSquare(us)
	if attacks.IsSquareAttacked(p.occupiedBb[types.Both], kingSq, them, p.PieceBb) {
		p.restore(prev)
		return prev, false
	}

	return prev, true
}

// UnmakeMove restores the board to the state captured by the matching
// MakeMove call.
func (p *Position) UnmakeMove(prev State) {
	p.restore(prev)
}
