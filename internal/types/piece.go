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

package types

// Piece packs a PieceType and a Color into a single small value:
// bit 3 is the color, bits 0-2 are the piece type.
type Piece int8

// PieceNone is the empty-square sentinel.
const PieceNone Piece = 0

// MakePiece packs color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 | int8(pt))
}

// TypeOf returns the piece type.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ColorOf returns the owning color.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid reports whether p is not PieceNone and carries a real piece type.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// Char returns a FEN-style single character: upper-case for White, lower for Black.
func (p Piece) Char() string {
	if p == PieceNone {
		return "-"
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return string(c[0] - 'A' + 'a')
	}
	return c
}
