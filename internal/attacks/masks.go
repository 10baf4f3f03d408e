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

// Package attacks builds and serves the precomputed attack tables sliding
// and leaping pieces need: blocker masks, the slow ray-cast reference
// generator, the fancy-magic lookup tables, and the knight/king/pawn tables.
// The blocker masks and the knight/king/pawn tables are built at package
// init; the magic tables are built once, lazily, behind a package-level
// sync.Once. All of them are immutable thereafter.
package attacks

import (
	. "github.com/ckirsch/chesscore/internal/types"
)

// rookMask returns the rook blocker mask for sq: the squares on sq's rank and
// file, excluding sq itself and the rank/file's edge squares (an attacker
// sitting on the edge can never be blocked further outward).
func rookMask(sq Square) Bitboard {
	f, r := sq.FileOf(), sq.RankOf()
	var m Bitboard
	for rr := Rank2; rr < Rank8; rr++ {
		if rr != r {
			m = m.Set(MakeSquare(f, rr))
		}
	}
	for ff := FileB; ff < FileG+1; ff++ {
		if ff != f {
			m = m.Set(MakeSquare(ff, r))
		}
	}
	return m
}

// bishopMask returns the bishop blocker mask for sq: the squares on sq's two
// diagonals excluding sq and the outermost (edge) diagonal squares.
func bishopMask(sq Square) Bitboard {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	var m Bitboard
	for ff, rr := f+1, r+1; ff < 7 && rr < 7; ff, rr = ff+1, rr+1 {
		m = m.Set(MakeSquare(File(ff), Rank(rr)))
	}
	for ff, rr := f-1, r+1; ff > 0 && rr < 7; ff, rr = ff-1, rr+1 {
		m = m.Set(MakeSquare(File(ff), Rank(rr)))
	}
	for ff, rr := f+1, r-1; ff < 7 && rr > 0; ff, rr = ff+1, rr-1 {
		m = m.Set(MakeSquare(File(ff), Rank(rr)))
	}
	for ff, rr := f-1, r-1; ff > 0 && rr > 0; ff, rr = ff-1, rr-1 {
		m = m.Set(MakeSquare(File(ff), Rank(rr)))
	}
	return m
}

// rookMasks and bishopMasks are the 64-entry precomputed tables; cheap
// enough to build eagerly at package init rather than behind the lazy
// magic-table Once (they have no startup self-test to gate on).
var (
	rookMasks   [64]Bitboard
	bishopMasks [64]Bitboard
)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rookMasks[sq] = rookMask(sq)
		bishopMasks[sq] = bishopMask(sq)
	}
}
