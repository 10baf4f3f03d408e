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

import (
	"fmt"
)

// MoveType distinguishes the special-case moves from a plain Normal move.
type MoveType uint8

const (
	Normal MoveType = iota
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
	moveTypeLength
)

func (t MoveType) IsValid() bool {
	return t < moveTypeLength
}

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "normal"
	case DoublePawnPush:
		return "double-push"
	case EnPassant:
		return "en-passant"
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	case Promotion:
		return "promotion"
	default:
		return "invalid"
	}
}

// Move is a chess move packed into a 32-bit value type, following the
// packed-enum convention used throughout this codebase (Piece, CastlingRights):
//
//	bits 0-5:   to-square
//	bits 6-11:  from-square
//	bits 12-13: promotion piece type, stored as (pt - Knight) so it fits 2 bits
//	bits 14-16: move type
//	bits 17-31: reserved for a search move-ordering score; this core never writes it
type Move uint32

// MoveNone is the zero value and is never a valid move.
const MoveNone Move = 0

const (
	fromShift  = 6
	promShift  = 12
	typeShift  = 14
	squareMask = 0x3F

	toMask   Move = squareMask
	fromMask Move = squareMask << fromShift
	promMask Move = 3 << promShift
	typeMask Move = 7 << typeShift
)

// NewMove builds a Normal move between two squares.
func NewMove(from, to Square) Move {
	return Move(to) | Move(from)<<fromShift
}

// NewMoveType builds a move carrying the given MoveType (for everything
// except promotions, which also need a promotion piece type).
func NewMoveType(from, to Square, t MoveType) Move {
	return Move(to) | Move(from)<<fromShift | Move(t)<<typeShift
}

// NewPromotion builds a Promotion move to the given piece type
// (one of Knight, Bishop, Rook, Queen).
func NewPromotion(from, to Square, promType PieceType) Move {
	return Move(to) | Move(from)<<fromShift | Move(promType-Knight)<<promShift | Move(Promotion)<<typeShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PromotionType returns the promoted-to piece type. Only meaningful when
// Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promMask)>>promShift) + Knight
}

// IsValid reports whether the move has valid squares and a valid move/promotion type.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || !m.Type().IsValid() {
		return false
	}
	if m.Type() == Promotion && !m.PromotionType().IsValid() {
		return false
	}
	return true
}

// String renders the move UCI-style (e.g. "e2e4", "a7a8q").
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += string(rune(m.PromotionType().Char()[0] + 'a' - 'A'))
	}
	return s
}

// GoString supports %#v and debugging output.
func (m Move) GoString() string {
	return fmt.Sprintf("Move{%s %s}", m.String(), m.Type())
}
