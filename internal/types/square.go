/*
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

// Package types holds the small, immutable value types shared by every
// other package in this module: squares, files, ranks, colors, pieces,
// castling rights and the packed Move representation.
package types

import "fmt"

// Square represents exactly one square on a chess board, numbered 0 (a1)
// through 63 (h8) in rank-major, little-endian-file order: index = rank*8 + file.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SqLength is the number of real board squares, convenient for sizing
// [Square]T arrays (SqNone itself is not a valid index into them).
const SqLength = 64

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare builds a square from file and rank; SqNone for out-of-range input.
func MakeSquare(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)<<3 | uint8(f))
}

// ParseSquare reads a square from its algebraic notation (e.g. "e4").
// Returns SqNone if s is not exactly two characters or names no square.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return MakeSquare(f, r)
}

// String renders the square in algebraic notation, or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func Distance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// To steps one square in direction d, returning SqNone on board-edge wraparound.
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		t := int(sq) + int(d)
		if t < 0 || t > int(SqH8) {
			return SqNone
		}
		return Square(t)
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		t := int(sq) + int(d)
		if t < 0 || t > int(SqH8) {
			return SqNone
		}
		return Square(t)
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		t := int(sq) + int(d)
		if t < 0 || t > int(SqH8) {
			return SqNone
		}
		return Square(t)
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}
