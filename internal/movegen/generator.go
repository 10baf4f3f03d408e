//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

package movegen

import (
	"github.com/ckirsch/chesscore/internal/attacks"
	"github.com/ckirsch/chesscore/internal/moveslice"
	"github.com/ckirsch/chesscore/internal/position"
	. "github.com/ckirsch/chesscore/internal/types"
)

// promotionTypes lists the four piece types a pawn may promote to, in the
// order moves are generated (queen first, as it is almost always the
// choice a caller wants tried first).
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateLegalMoves returns every legal move for the side to move in pos,
// in no particular guaranteed order beyond king-moves-first, pawns-before-
// pieces, castling-last (an implementation detail, not a contract).
func GenerateLegalMoves(pos *position.Position) moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(64)
	GenerateLegalMovesInto(pos, moves)
	return *moves
}

// GenerateLegalMovesInto appends every legal move for the side to move in
// pos onto dst, letting a caller reuse a MoveSlice's backing array across
// calls (useful in Perft's hot loop).
func GenerateLegalMovesInto(pos *position.Position, dst *moveslice.MoveSlice) {
	us := pos.SideToMove()
	them := us.Flip()
	a := Analyze(pos)
	kingSq := pos.KingSquare(us)

	generateKingMoves(pos, us, a, kingSq, dst)

	if a.Checkers.PopCount() >= 2 {
		return // double check: only the king may move
	}

	generatePawnMoves(pos, us, them, a, dst)
	generateKnightMoves(pos, us, a, dst)
	generateSliderMoves(pos, us, Bishop, a, dst)
	generateSliderMoves(pos, us, Rook, a, dst)
	generateSliderMoves(pos, us, Queen, a, dst)

	if a.Checkers == BbZero {
		generateCastling(pos, us, a, dst)
	}
}

func generateKingMoves(pos *position.Position, us Color, a *Analysis, kingSq Square, dst *moveslice.MoveSlice) {
	targets := attacks.KingAttacks(kingSq) &^ pos.OccupiedBy(us) &^ a.EnemyAttacks
	for _, to := range targets.Squares() {
		dst.PushBack(NewMove(kingSq, to))
	}
}

func generateKnightMoves(pos *position.Position, us Color, a *Analysis, dst *moveslice.MoveSlice) {
	for _, from := range pos.PiecesBb(us, Knight).Squares() {
		if a.PinMask[from] != BbAll {
			continue // a pinned knight can never legally move
		}
		targets := attacks.KnightAttacks(from) &^ pos.OccupiedBy(us) & a.CheckMask
		for _, to := range targets.Squares() {
			dst.PushBack(NewMove(from, to))
		}
	}
}

func generateSliderMoves(pos *position.Position, us Color, pt PieceType, a *Analysis, dst *moveslice.MoveSlice) {
	occ := pos.Occupied()
	for _, from := range pos.PiecesBb(us, pt).Squares() {
		var raw Bitboard
		switch pt {
		case Bishop:
			raw = attacks.BishopAttacks(from, occ)
		case Rook:
			raw = attacks.RookAttacks(from, occ)
		case Queen:
			raw = attacks.QueenAttacks(from, occ)
		}
		targets := raw &^ pos.OccupiedBy(us) & a.CheckMask & a.PinMask[from]
		for _, to := range targets.Squares() {
			dst.PushBack(NewMove(from, to))
		}
	}
}

func generatePawnMoves(pos *position.Position, us, them Color, a *Analysis, dst *moveslice.MoveSlice) {
	occ := pos.Occupied()
	pushDir := us.PushDirection()
	promRank := promotionRank(us)
	doublePushFromRank := doublePushOrigin(us)

	for _, from := range pos.PiecesBb(us, Pawn).Squares() {
		pinMask := a.PinMask[from]

		if to1 := from.To(pushDir); to1 != SqNone && !occ.Has(to1) {
			if a.CheckMask.Has(to1) && pinMask.Has(to1) {
				addPawnMove(dst, from, to1, promRank)
			}
			if from.RankOf() == doublePushFromRank {
				if to2 := to1.To(pushDir); to2 != SqNone && !occ.Has(to2) &&
					a.CheckMask.Has(to2) && pinMask.Has(to2) {
					dst.PushBack(NewMoveType(from, to2, DoublePawnPush))
				}
			}
		}

		for _, to := range attacks.PawnAttacks(us, from).Squares() {
			if pos.OccupiedBy(them).Has(to) && a.CheckMask.Has(to) && pinMask.Has(to) {
				addPawnMove(dst, from, to, promRank)
			}
		}

		generateEnPassant(pos, us, them, a, from, dst)
	}
}

func addPawnMove(dst *moveslice.MoveSlice, from, to Square, promRank Rank) {
	if to.RankOf() == promRank {
		for _, pt := range promotionTypes {
			dst.PushBack(NewPromotion(from, to, pt))
		}
		return
	}
	dst.PushBack(NewMove(from, to))
}

// generateEnPassant handles the single most intricate legality case. A
// capturing pawn that is pinned along any ray other than its capture
// diagonal is rejected by the PinMask[from].Has(ep) test below (a pawn pinned
// along the capture diagonal itself stays on the pin ray and may capture).
// What the ordinary per-square pin mask
// cannot see is the rank-file discovered check: both pawns vanish from the
// same rank in the same instant, which can open a rook/queen attack on the
// king even though neither pawn alone is pinned.
func generateEnPassant(pos *position.Position, us, them Color, a *Analysis, from Square, dst *moveslice.MoveSlice) {
	ep := pos.EnPassantSquare()
	if ep == SqNone || !attacks.PawnAttacks(us, from).Has(ep) {
		return
	}
	capturedSq := ep.To(them.PushDirection())
	if !a.CheckMask.Has(ep) && !a.CheckMask.Has(capturedSq) {
		return
	}
	if !a.PinMask[from].Has(ep) {
		return
	}

	occ := pos.Occupied().Clear(from).Clear(capturedSq).Set(ep)
	kingSq := pos.KingSquare(us)
	orthoSliders := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	if attacks.RookAttacks(kingSq, occ)&orthoSliders != BbZero {
		return
	}

	dst.PushBack(NewMoveType(from, ep, EnPassant))
}

func promotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

func doublePushOrigin(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// castlingSide describes one of the four castling possibilities: the king's
// destination, the squares that must be empty, and the squares (including
// the king's start and end) that must not be attacked.
type castlingSide struct {
	right      CastlingRights
	kingFrom   Square
	kingTo     Square
	mustEmpty  Bitboard
	mustBeSafe [3]Square
}

var castlingSides = [4]castlingSide{
	{CastlingWhiteOO, SqE1, SqG1, SquaresBb(SqF1, SqG1), [3]Square{SqE1, SqF1, SqG1}},
	{CastlingWhiteOOO, SqE1, SqC1, SquaresBb(SqB1, SqC1, SqD1), [3]Square{SqE1, SqD1, SqC1}},
	{CastlingBlackOO, SqE8, SqG8, SquaresBb(SqF8, SqG8), [3]Square{SqE8, SqF8, SqG8}},
	{CastlingBlackOOO, SqE8, SqC8, SquaresBb(SqB8, SqC8, SqD8), [3]Square{SqE8, SqD8, SqC8}},
}

func generateCastling(pos *position.Position, us Color, a *Analysis, dst *moveslice.MoveSlice) {
	occ := pos.Occupied()
	for _, side := range castlingSides {
		isWhiteSide := side.right == CastlingWhiteOO || side.right == CastlingWhiteOOO
		if isWhiteSide != (us == White) {
			continue
		}
		if !pos.CastlingRights().Has(side.right) {
			continue
		}
		if occ&side.mustEmpty != BbZero {
			continue
		}
		safe := true
		for _, sq := range side.mustBeSafe {
			if a.EnemyAttacks.Has(sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		moveType := CastleKingside
		if side.kingTo == SqC1 || side.kingTo == SqC8 {
			moveType = CastleQueenside
		}
		dst.PushBack(NewMoveType(side.kingFrom, side.kingTo, moveType))
	}
}
