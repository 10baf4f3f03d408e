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

// RayAttacks steps from sq in each of the given directions, setting each
// destination square, and stops a ray as soon as it sets an occupied square
// (the blocker itself is included in the attack set; the slider attacks it
// but cannot pass through it). This is the ground-truth reference used both
// to build the magic tables and to cross-check them in tests.
func RayAttacks(sq Square, occupied Bitboard, dirs []Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			attacks = attacks.Set(next)
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attacks
}

// RookAttacksSlow computes rook attacks on occupied by ray-casting the four
// orthogonal directions.
func RookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return RayAttacks(sq, occupied, Orthogonal[:])
}

// BishopAttacksSlow computes bishop attacks on occupied by ray-casting the
// four diagonal directions.
func BishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return RayAttacks(sq, occupied, Diagonal[:])
}

// between returns the squares strictly between a and b if they share a rank,
// file, or diagonal; otherwise BbZero. Used by the check-mask computation
// (squares a slider-check can be blocked on) and is exported for the
// move-generator package.
func between(a, b Square) Bitboard {
	if a == b {
		return BbZero
	}
	fa, ra := int(a.FileOf()), int(a.RankOf())
	fb, rb := int(b.FileOf()), int(b.RankOf())
	df, dr := fb-fa, rb-ra
	var stepF, stepR int
	switch {
	case df == 0 && dr != 0:
		stepR = sign(dr)
	case dr == 0 && df != 0:
		stepF = sign(df)
	case df == dr:
		stepF, stepR = sign(df), sign(dr)
	case df == -dr:
		stepF, stepR = sign(df), sign(dr)
	default:
		return BbZero
	}
	var m Bitboard
	f, r := fa+stepF, ra+stepR
	for f != fb || r != rb {
		m = m.Set(MakeSquare(File(f), Rank(r)))
		f += stepF
		r += stepR
	}
	return m
}

// Between exposes the strictly-between-squares ray for two squares sharing
// a rank, file, or diagonal (empty otherwise, or when a == b).
func Between(a, b Square) Bitboard {
	return between(a, b)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// blockerSubsets enumerates every subset of mask using the Carry-Rippler
// trick (https://www.chessprogramming.org/Traversing_Subsets_of_a_Set),
// calling visit once per subset including the empty set.
func blockerSubsets(mask Bitboard, visit func(subset Bitboard)) {
	var subset Bitboard
	for {
		visit(subset)
		subset = (subset - mask) & mask
		if subset == BbZero {
			return
		}
	}
}
