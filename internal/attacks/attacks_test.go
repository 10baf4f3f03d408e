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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ckirsch/chesscore/internal/types"
)

// TestMagicMatchesRayCast checks the magic lookup against the ray-cast
// reference directly rather than only through ensureMagics' internal
// self-test: for every square and a handful of representative occupancies,
// the O(1) magic lookup must agree exactly with the slow generator.
func TestMagicMatchesRayCast(t *testing.T) {
	occupancies := []Bitboard{
		BbZero,
		BbAll,
		SquaresBb(SqD4, SqD5, SqE4, SqE5),
		SquaresBb(SqA1, SqH8, SqA8, SqH1),
		SquaresBb(SqB2, SqG7, SqC3, SqF6),
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		for _, occ := range occupancies {
			assert.Equal(t, RookAttacksSlow(sq, occ), RookAttacks(sq, occ), "rook %s occ %#x", sq, uint64(occ))
			assert.Equal(t, BishopAttacksSlow(sq, occ), BishopAttacks(sq, occ), "bishop %s occ %#x", sq, uint64(occ))
		}
	}
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	occ := SquaresBb(SqD4, SqD5, SqE4, SqE5, SqB2, SqG7)
	for sq := SqA1; sq <= SqH8; sq++ {
		want := RookAttacks(sq, occ) | BishopAttacks(sq, occ)
		assert.Equal(t, want, QueenAttacks(sq, occ))
	}
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	occ := SquareBb(SqD4)
	attacks := RookAttacks(SqD1, occ)
	assert.True(t, attacks.Has(SqD4), "rook should reach the blocker")
	assert.False(t, attacks.Has(SqD5), "rook should not see past the blocker")
	assert.True(t, attacks.Has(SqA1))
	assert.True(t, attacks.Has(SqH1))
}

func TestKnightAttacksCorner(t *testing.T) {
	attacks := KnightAttacks(SqA1)
	assert.Equal(t, SquaresBb(SqB3, SqC2), attacks)
}

func TestKingAttacksCorner(t *testing.T) {
	attacks := KingAttacks(SqA1)
	assert.Equal(t, SquaresBb(SqA2, SqB1, SqB2), attacks)
}

func TestPawnAttacksBothColors(t *testing.T) {
	assert.Equal(t, SquaresBb(SqD5, SqF5), PawnAttacks(White, SqE4))
	assert.Equal(t, SquaresBb(SqD3, SqF3), PawnAttacks(Black, SqE4))
	assert.Equal(t, SquareBb(SqB5), PawnAttacks(White, SqA4))
}

func TestBetweenIsEmptyForAdjacentSquares(t *testing.T) {
	assert.Equal(t, BbZero, Between(SqE1, SqE2))
	assert.Equal(t, SquaresBb(SqE2, SqE3), Between(SqE1, SqE4))
	assert.Equal(t, BbZero, Between(SqE1, SqH5), "not aligned on any ray")
}
