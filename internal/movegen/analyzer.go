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

// Package movegen analyzes a position (enemy attacks, checkers, check and
// pin masks) and, from that analysis, enumerates the position's exactly
// legal moves.
package movegen

import (
	"github.com/ckirsch/chesscore/internal/attacks"
	"github.com/ckirsch/chesscore/internal/position"
	. "github.com/ckirsch/chesscore/internal/types"
)

// Analysis is the intermediate result the generator needs to turn pseudo
// legal moves into exactly legal ones without trying each move on the board.
type Analysis struct {
	// EnemyAttacks is every square attacked by the side not to move, computed
	// with the moving side's king removed from the occupancy so that a king
	// retreating directly away from a slider is still correctly seen as
	// moving into check.
	EnemyAttacks Bitboard

	// Checkers is the set of enemy pieces currently giving check.
	Checkers Bitboard

	// CheckMask is the set of squares a non-king move is allowed to land on:
	// BbAll when not in check, the ray between the king and a single slider
	// checker (plus the checker's square) when in single check, and BbZero
	// (no non-king move is legal) when in double check.
	CheckMask Bitboard

	// PinMask, indexed by the square of one of the moving side's own pieces,
	// is the set of squares that piece may still move to without exposing
	// its king: BbAll if the piece is not pinned, otherwise the ray from the
	// king through the piece to (and including) the pinning slider.
	PinMask [SqLength]Bitboard
}

// Analyze computes enemy attacks, checkers, the check mask, and per-square
// pin masks for the side to move in pos.
func Analyze(pos *position.Position) *Analysis {
	us := pos.SideToMove()
	them := us.Flip()
	kingSq := pos.KingSquare(us)

	occWithoutKing := pos.Occupied().Clear(kingSq)

	a := &Analysis{}
	for sq := SqA1; sq <= SqH8; sq++ {
		a.PinMask[sq] = BbAll
	}

	a.EnemyAttacks = enemyAttacks(pos, them, occWithoutKing)
	a.Checkers = checkers(pos, us, them, kingSq)

	switch a.Checkers.PopCount() {
	case 0:
		a.CheckMask = BbAll
	case 1:
		checkerSq := a.Checkers.Lsb()
		a.CheckMask = a.Checkers | attacks.Between(kingSq, checkerSq)
	default:
		a.CheckMask = BbZero
	}

	computePins(pos, us, them, kingSq, a)

	return a
}

// enemyAttacks unions the attack sets of every enemy piece against occ (the
// real occupancy with the side-to-move's king removed).
func enemyAttacks(pos *position.Position, them Color, occ Bitboard) Bitboard {
	var att Bitboard
	for _, sq := range pos.PiecesBb(them, Pawn).Squares() {
		att |= attacks.PawnAttacks(them, sq)
	}
	for _, sq := range pos.PiecesBb(them, Knight).Squares() {
		att |= attacks.KnightAttacks(sq)
	}
	for _, sq := range pos.PiecesBb(them, Bishop).Squares() {
		att |= attacks.BishopAttacks(sq, occ)
	}
	for _, sq := range pos.PiecesBb(them, Rook).Squares() {
		att |= attacks.RookAttacks(sq, occ)
	}
	for _, sq := range pos.PiecesBb(them, Queen).Squares() {
		att |= attacks.QueenAttacks(sq, occ)
	}
	att |= attacks.KingAttacks(pos.KingSquare(them))
	return att
}

// IsInCheck reports whether the side to move's king is attacked. It computes
// only the checker set, not the full analysis, so callers probing many
// positions (search, game-end detection) don't pay for attack and pin masks
// they never read.
func IsInCheck(pos *position.Position) bool {
	us := pos.SideToMove()
	return checkers(pos, us, us.Flip(), pos.KingSquare(us)) != BbZero
}

// checkers finds every enemy piece giving check, using the "reverse attack"
// trick: generate attacks of each piece type as if that piece type stood on
// the king's square, and intersect with the actual enemy pieces of that
// type. A piece in the intersection must indeed attack the king, since
// attack patterns for a given type are symmetric.
func checkers(pos *position.Position, us, them Color, kingSq Square) Bitboard {
	occ := pos.Occupied()
	var c Bitboard
	c |= attacks.PawnAttacks(us, kingSq) & pos.PiecesBb(them, Pawn)
	c |= attacks.KnightAttacks(kingSq) & pos.PiecesBb(them, Knight)
	c |= attacks.BishopAttacks(kingSq, occ) & (pos.PiecesBb(them, Bishop) | pos.PiecesBb(them, Queen))
	c |= attacks.RookAttacks(kingSq, occ) & (pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen))
	return c
}

// computePins walks all eight ray directions from the king. If the first
// piece found along a ray belongs to us and the next piece along the same
// ray is an enemy slider that attacks along that direction, the first piece
// is pinned: it may only move within the ray between the king and the
// pinner, inclusive of the pinner's square.
func computePins(pos *position.Position, us, them Color, kingSq Square, a *Analysis) {
	occ := pos.Occupied()
	orthoSliders := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	diagSliders := pos.PiecesBb(them, Bishop) | pos.PiecesBb(them, Queen)

	walk := func(dirs []Direction, sliders Bitboard) {
		for _, d := range dirs {
			firstSq := nearestAlongRay(kingSq, d, occ)
			if firstSq == SqNone || !pos.OccupiedBy(us).Has(firstSq) {
				continue
			}
			pinnerSq := nearestAlongRay(firstSq, d, occ)
			if pinnerSq == SqNone || !sliders.Has(pinnerSq) {
				continue
			}
			a.PinMask[firstSq] = attacks.Between(kingSq, pinnerSq) | SquareBb(pinnerSq)
		}
	}

	walk(Orthogonal[:], orthoSliders)
	walk(Diagonal[:], diagSliders)
}

// nearestAlongRay steps from sq in direction d and returns the first
// occupied square encountered, or SqNone if the ray runs off the board
// first.
func nearestAlongRay(sq Square, d Direction, occ Bitboard) Square {
	s := sq
	for {
		next := s.To(d)
		if next == SqNone {
			return SqNone
		}
		if occ.Has(next) {
			return next
		}
		s = next
	}
}
