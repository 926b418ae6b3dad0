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

// Package movegen generates pseudo-legal moves for the side to move on
// a given position: moves that obey piece-movement rules but may leave
// the mover's own king in check. The make/unmake step in package
// position rejects those post hoc.
package movegen

import (
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/attacks"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// Generate clears list and fills it with every pseudo-legal move for
// the side to move in pos.
func Generate(pos *position.Position, list *types.MoveList) {
	list.Clear()
	generatePawnMoves(pos, list)
	generatePieceMoves(pos, types.Knight, list)
	generatePieceMoves(pos, types.Bishop, list)
	generatePieceMoves(pos, types.Rook, list)
	generatePieceMoves(pos, types.Queen, list)
	generatePieceMoves(pos, types.King, list)
	generateCastling(pos, list)
}

func generatePawnMoves(pos *position.Position, list *types.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	piece := types.MakePiece(us, types.Pawn)
	pawns := pos.PieceBb(piece)
	empty := ^pos.OccupiedBb(types.Both)
	theirs := pos.OccupiedBb(them)
	push := us.PawnDirection()

	promoRank := types.Rank8
	startRank := types.Rank2
	if us == types.Black {
		promoRank = types.Rank1
		startRank = types.Rank7
	}

	b := pawns
	for b != 0 {
		from := b.PopLsb()

		// Single push and promotions.
		to := from.To(push)
		if to != types.SqNone && empty.Test(to) {
			if to.RankOf() == promoRank {
				addPromotions(list, from, to, piece, false, false)
			} else {
				list.Add(types.CreateMove(from, to, piece, types.PieceNone, types.MoveFlags{}))
			}

			// Double push, only possible right after a clear single push.
			if from.RankOf() == startRank {
				to2 := to.To(push)
				if to2 != types.SqNone && empty.Test(to2) {
					list.Add(types.CreateMove(from, to2, piece, types.PieceNone, types.MoveFlags{DoublePush: true}))
				}
			}
		}

		// Diagonal captures, including promotion-captures.
		captures := types.PawnAttacks(us, from) & theirs
		for captures != 0 {
			capTo := captures.PopLsb()
			if capTo.RankOf() == promoRank {
				addPromotions(list, from, capTo, piece, true, false)
			} else {
				list.Add(types.CreateMove(from, capTo, piece, types.PieceNone, types.MoveFlags{Capture: true}))
			}
		}

		// En passant.
		ep := pos.EnPassantSquare()
		if ep != types.SqNone && types.PawnAttacks(us, from).Test(ep) {
			list.Add(types.CreateMove(from, ep, piece, types.PieceNone, types.MoveFlags{Capture: true, EnPassant: true}))
		}
	}
}

func addPromotions(list *types.MoveList, from, to types.Square, piece types.Piece, capture, enPassant bool) {
	us := piece.ColorOf()
	for _, pt := range promotionPieces {
		list.Add(types.CreateMove(from, to, piece, types.MakePiece(us, pt), types.MoveFlags{Capture: capture, EnPassant: enPassant}))
	}
}

func generatePieceMoves(pos *position.Position, pt types.PieceType, list *types.MoveList) {
	us := pos.SideToMove()
	piece := types.MakePiece(us, pt)
	own := pos.OccupiedBb(us)
	occ := pos.OccupiedBb(types.Both)
	opp := pos.OccupiedBb(us.Flip())

	b := pos.PieceBb(piece)
	for b != 0 {
		from := b.PopLsb()
		var attackSet types.Bitboard
		switch pt {
		case types.Knight:
			attackSet = types.KnightAttacks(from)
		case types.King:
			attackSet = types.KingAttacks(from)
		default:
			attackSet = attacks.GetSliderAttacks(pt, from, occ)
		}
		targets := attackSet &^ own
		for targets != 0 {
			to := targets.PopLsb()
			list.Add(types.CreateMove(from, to, piece, types.PieceNone, types.MoveFlags{Capture: opp.Test(to)}))
		}
	}
}

func generateCastling(pos *position.Position, list *types.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	occ := pos.OccupiedBb(types.Both)
	rights := pos.CastlingRights()

	if us == types.White {
		if rights.Has(types.CastlingWhiteKing) &&
			!occ.Test(types.SqF1) && !occ.Test(types.SqG1) &&
			!attacks.IsSquareAttacked(occ, types.SqE1, them, pos.PieceBb) &&
			!attacks.IsSquareAttacked(occ, types.SqF1, them, pos.PieceBb) {
			list.Add(types.CreateMove(types.SqE1, types.SqG1, types.WK, types.PieceNone, types.MoveFlags{Castling: true}))
		}
		if rights.Has(types.CastlingWhiteQueen) &&
			!occ.Test(types.SqB1) && !occ.Test(types.SqC1) && !occ.Test(types.SqD1) &&
			!attacks.IsSquareAttacked(occ, types.SqE1, them, pos.PieceBb) &&
			!attacks.IsSquareAttacked(occ, types.SqD1, them, pos.PieceBb) {
			list.Add(types.CreateMove(types.SqE1, types.SqC1, types.WK, types.PieceNone, types.MoveFlags{Castling: true}))
		}
		return
	}

	if rights.Has(types.CastlingBlackKing) &&
		!occ.Test(types.SqF8) && !occ.Test(types.SqG8) &&
		!attacks.IsSquareAttacked(occ, types.SqE8, them, pos.PieceBb) &&
		!attacks.IsSquareAttacked(occ, types.SqF8, them, pos.PieceBb) {
		list.Add(types.CreateMove(types.SqE8, types.SqG8, types.BK, types.PieceNone, types.MoveFlags{Castling: true}))
	}
	if rights.Has(types.CastlingBlackQueen) &&
		!occ.Test(types.SqB8) && !occ.Test(types.SqC8) && !occ.Test(types.SqD8) &&
		!attacks.IsSquareAttacked(occ, types.SqE8, them, pos.PieceBb) &&
		!attacks.IsSquareAttacked(occ, types.SqD8, them, pos.PieceBb) {
		list.Add(types.CreateMove(types.SqE8, types.SqC8, types.BK, types.PieceNone, types.MoveFlags{Castling: true}))
	}
}
