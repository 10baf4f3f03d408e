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

package attacks

import (
	. "github.com/ckirsch/chesscore/internal/types"
)

// knightSteps and kingSteps are the leaper offsets expressed as (file, rank)
// deltas rather than Direction values, since a knight's step is not a
// composition of the eight ray directions.
var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var (
	knightAttacksTbl [64]Bitboard
	kingAttacksTbl   [64]Bitboard
	// pawnAttacksTbl is indexed [color][square]; a pawn has no attacks of its
	// own color definition without knowing which side it plays for.
	pawnAttacksTbl [2][64]Bitboard
)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		knightAttacksTbl[sq] = leaperMask(f, r, knightSteps[:])
		kingAttacksTbl[sq] = leaperMask(f, r, kingSteps[:])
		pawnAttacksTbl[White][sq] = leaperMask(f, r, [][2]int{{1, 1}, {-1, 1}})
		pawnAttacksTbl[Black][sq] = leaperMask(f, r, [][2]int{{1, -1}, {-1, -1}})
	}
}

func leaperMask(f, r int, steps [][2]int) Bitboard {
	var m Bitboard
	for _, s := range steps {
		ff, rr := f+s[0], r+s[1]
		if ff < 0 || ff > 7 || rr < 0 || rr > 7 {
			continue
		}
		m = m.Set(MakeSquare(File(ff), Rank(rr)))
	}
	return m
}

// KnightAttacks returns the knight's attack set from sq. Blocker-independent,
// so no occupancy parameter is needed.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacksTbl[sq]
}

// KingAttacks returns the king's one-step attack set from sq (castling is
// handled separately by the move generator, not as part of this table).
func KingAttacks(sq Square) Bitboard {
	return kingAttacksTbl[sq]
}

// PawnAttacks returns the squares a pawn of color c standing on sq attacks
// (diagonal captures only, not the push squares).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTbl[c][sq]
}
