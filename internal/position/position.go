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

// Package position represents the chess board: twelve piece bitboards,
// three aggregate occupancy bitboards, side to move, en passant target
// and castling rights. Create one with New() for the standard starting
// position or NewFromFEN() to set up an arbitrary position.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/logging"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

var log = logging.GetLog()

// StartFen is the FEN record of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the board: a value type holding exactly the state
// described by a FEN record plus the two move counters. It is cheap
// enough to copy wholesale, which is how the make/unmake engine
// implements its snapshot/restore.
type Position struct {
	piecesBb   [types.PieceLength]types.Bitboard
	occupiedBb [types.ColorLength + 1]types.Bitboard

	side            types.Color
	enPassantSquare types.Square
	castlingRights  types.CastlingRights

	halfMoveClock int
	fullMoveNo    int
}

// New returns the board set up in the standard starting position.
func New() *Position {
	p, err := NewFromFEN(StartFen)
	if err != nil {
		// StartFen is a compile-time constant known to be well-formed.
		panic(err)
	}
	return p
}

// NewFromFEN parses fen and returns the resulting board.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.SetupFromFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SetupFromFEN resets the board in place from a FEN record. Per the
// board model's open question on malformed FEN, parsing rejects
// malformed input with a descriptive error rather than silently
// producing a corrupt board: too few fields, an unrecognized piece
// character, a piece placed past the 64th square, an unrecognized
// side-to-move token, an unrecognized castling letter, or an en
// passant token that is neither "-" nor a valid square all fail. The
// length of each rank is not checked: '/' is skipped, so a short or
// long rank shifts the following pieces instead of failing. It never
// panics. Only the two move counters are tolerant — an unparsable
// half-move or full-move field is left at its default (0 and 1),
// since neither affects board legality.
func (p *Position) SetupFromFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	*p = Position{enPassantSquare: types.SqNone}

	sq := types.SqA8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			continue
		case c >= '1' && c <= '8':
			sq += types.Square(c - '0')
		default:
			piece := types.PieceFromChar(byte(c))
			if piece == types.PieceNone {
				return fmt.Errorf("position: fen %q: invalid piece char %q", fen, c)
			}
			if !sq.IsValid() {
				return fmt.Errorf("position: fen %q: board overruns 64 squares", fen)
			}
			p.piecesBb[piece] = p.piecesBb[piece].Set(sq)
			sq++
		}
	}

	switch fields[1] {
	case "w":
		p.side = types.White
	case "b":
		p.side = types.Black
	default:
		return fmt.Errorf("position: fen %q: invalid side to move %q", fen, fields[1])
	}

	p.castlingRights = types.CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights |= types.CastlingWhiteKing
			case 'Q':
				p.castlingRights |= types.CastlingWhiteQueen
			case 'k':
				p.castlingRights |= types.CastlingBlackKing
			case 'q':
				p.castlingRights |= types.CastlingBlackQueen
			default:
				return fmt.Errorf("position: fen %q: invalid castling letter %q", fen, c)
			}
		}
	}

	if fields[3] == "-" {
		p.enPassantSquare = types.SqNone
	} else {
		p.enPassantSquare = types.MakeSquare(fields[3])
		if p.enPassantSquare == types.SqNone {
			return fmt.Errorf("position: fen %q: invalid en passant square %q", fen, fields[3])
		}
	}

	p.halfMoveClock = 0
	p.fullMoveNo = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNo = n
		}
	}

	p.rebuildOccupancies()
	log.Debugf("position: parsed fen %q", fen)
	return nil
}

// rebuildOccupancies recomputes the three aggregate occupancy
// bitboards from the twelve piece bitboards.
func (p *Position) rebuildOccupancies() {
	var white, black types.Bitboard
	for pt := types.WP; pt <= types.WK; pt++ {
		white |= p.piecesBb[pt]
	}
	for pt := types.BP; pt <= types.BK; pt++ {
		black |= p.piecesBb[pt]
	}
	p.occupiedBb[types.White] = white
	p.occupiedBb[types.Black] = black
	p.occupiedBb[types.Both] = white | black
}

// PieceBb returns the bitboard of a single piece kind.
func (p *Position) PieceBb(piece types.Piece) types.Bitboard {
	return p.piecesBb[piece]
}

// OccupiedBb returns the aggregate occupancy of c (White, Black or Both).
func (p *Position) OccupiedBb(c types.Color) types.Bitboard {
	return p.occupiedBb[c]
}

// SideToMove returns whose turn it is to move.
func (p *Position) SideToMove() types.Color {
	return p.side
}

// EnPassantSquare returns the current en passant target square, or
// SqNone if there isn't one.
func (p *Position) EnPassantSquare() types.Square {
	return p.enPassantSquare
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() types.CastlingRights {
	return p.castlingRights
}

// PieceAt returns the piece occupying sq, or PieceNone if it is empty.
func (p *Position) PieceAt(sq types.Square) types.Piece {
	for piece := types.WP; piece < types.PieceNone; piece++ {
		if p.piecesBb[piece].Test(sq) {
			return piece
		}
	}
	return types.PieceNone
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.piecesBb[types.MakePiece(c, types.King)].Lsb()
}

// FEN renders the current board as a FEN record.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := types.Rank8; r < types.RankLength; r++ {
		empty := 0
		for f := types.FileA; f < types.FileLength; f++ {
			sq := types.SquareOf(f, r)
			piece := p.PieceAt(sq)
			if piece == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != types.RankLength-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.side.String())

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())

	sb.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNo))
	return sb.String()
}

// String renders the board as an 8x8 grid for debugging, followed by
// its FEN record.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for r := types.Rank8; r < types.RankLength; r++ {
		sb.WriteString(r.String())
		sb.WriteString(" |")
		for f := types.FileA; f < types.FileLength; f++ {
			piece := p.PieceAt(types.SquareOf(f, r))
			sb.WriteByte(' ')
			sb.WriteByte(piece.Char())
			sb.WriteString(" |")
		}
		sb.WriteString("\n  +---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	sb.WriteString("FEN: ")
	sb.WriteString(p.FEN())
	return sb.String()
}
