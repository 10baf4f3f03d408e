/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares: bit i is set iff square i is a member.
type Bitboard uint64

// BbZero is the empty set.
const BbZero Bitboard = 0

// BbAll is the universal set (every square).
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// fileMask and rankMask compute a file/rank mask directly from square
// arithmetic. They take no package-level state, so the named masks below
// and the fileBb/rankBb/sqBb lookup arrays can both be built straight off
// of them without caring which package var initializes first.
func fileMask(f File) Bitboard {
	var m Bitboard
	for r := Rank1; r < RankNone; r++ {
		m |= Bitboard(1) << uint(MakeSquare(f, r))
	}
	return m
}

func rankMask(r Rank) Bitboard {
	var m Bitboard
	for f := FileA; f < FileNone; f++ {
		m |= Bitboard(1) << uint(MakeSquare(f, r))
	}
	return m
}

// FileA_Bb ... FileH_Bb and Rank1_Bb ... Rank8_Bb are the named file and
// rank constant masks.
var (
	FileA_Bb = fileMask(FileA)
	FileB_Bb = fileMask(FileB)
	FileC_Bb = fileMask(FileC)
	FileD_Bb = fileMask(FileD)
	FileE_Bb = fileMask(FileE)
	FileF_Bb = fileMask(FileF)
	FileG_Bb = fileMask(FileG)
	FileH_Bb = fileMask(FileH)

	Rank1_Bb = rankMask(Rank1)
	Rank2_Bb = rankMask(Rank2)
	Rank3_Bb = rankMask(Rank3)
	Rank4_Bb = rankMask(Rank4)
	Rank5_Bb = rankMask(Rank5)
	Rank6_Bb = rankMask(Rank6)
	Rank7_Bb = rankMask(Rank7)
	Rank8_Bb = rankMask(Rank8)
)

// file and rank lookup arrays, plus per-square singleton bitboards,
// computed once at package init from the same square arithmetic.
var (
	fileBb [FileNone]Bitboard
	rankBb [RankNone]Bitboard
	sqBb   [SqNone]Bitboard
)

func init() {
	for f := FileA; f < FileNone; f++ {
		fileBb[f] = fileMask(f)
	}
	for r := Rank1; r < RankNone; r++ {
		rankBb[r] = rankMask(r)
	}
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
}

// Bb returns the square's singleton bitboard.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// FileMaskOf returns FILE_A shifted to the file of sq.
func FileMaskOf(sq Square) Bitboard {
	return fileBb[sq.FileOf()]
}

// RankMaskOf returns RANK_1 shifted to the rank of sq.
func RankMaskOf(sq Square) Bitboard {
	return rankBb[sq.RankOf()]
}

// SquareBb builds a bitboard from a single square.
func SquareBb(sq Square) Bitboard {
	return sqBb[sq]
}

// SquaresBb builds a bitboard from a list of squares.
func SquaresBb(sqs ...Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b |= sqBb[sq]
	}
	return b
}

// Has reports whether sq is a member.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sqBb[sq]
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// Toggle returns b with sq's membership flipped.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ sqBb[sq]
}

// PopCount returns the number of member squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Empty reports whether the set has no members.
func (b Bitboard) Empty() bool {
	return b == BbZero
}

// Lsb returns the lowest-indexed member square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest-indexed member square, or SqNone if empty.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	*b &= *b - 1
	return sq
}

// North shifts every member one rank up (no file-wrap concern on this axis).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts every member one rank down.
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts every member one file right, dropping members on file H
// to avoid wrapping onto file A of the next rank.
func (b Bitboard) East() Bitboard {
	return (b &^ FileH_Bb) << 1
}

// West shifts every member one file left, dropping members on file A.
func (b Bitboard) West() Bitboard {
	return (b &^ FileA_Bb) >> 1
}

// Northeast, Southeast, Northwest, Southwest compose the orthogonal shifts
// above and back the diagonal cases of Shift. (The slow ray-cast attack
// generator and the pin-ray walk step with Square.To instead.)
func (b Bitboard) Northeast() Bitboard { return b.North().East() }
func (b Bitboard) Southeast() Bitboard { return b.South().East() }
func (b Bitboard) Northwest() Bitboard { return b.North().West() }
func (b Bitboard) Southwest() Bitboard { return b.South().West() }

// Shift moves every member one step in direction d, masking off file wrap
// for the four diagonal and two horizontal directions.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b.North()
	case South:
		return b.South()
	case East:
		return b.East()
	case West:
		return b.West()
	case Northeast:
		return b.Northeast()
	case Southeast:
		return b.Southeast()
	case Northwest:
		return b.Northwest()
	case Southwest:
		return b.Southwest()
	default:
		return BbZero
	}
}

// Squares returns the member squares in ascending order. The returned slice
// is a fresh copy, so callers may freely mutate the receiver afterwards.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for t := b; t != BbZero; {
		out = append(out, t.PopLsb())
	}
	return out
}

// String renders the bitboard as an 8x8 grid, rank 8 on top, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f < FileNone; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
