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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ckirsch/chesscore/internal/types"
)

func TestPositionCreation(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, StartFEN, p.FEN())
}

func TestParseFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
		"8/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestParseFenRejectsGarbage(t *testing.T) {
	_, err := ParseFEN("not a fen")
	assert.Error(t, err)
}

func TestMakeUnmakeMoveNormal(t *testing.T) {
	p := NewPosition()
	before := p.FEN()

	p.MakeMove(NewMove(SqG1, SqF3))
	assert.Equal(t, PieceNone, p.PieceOn(SqG1))
	assert.Equal(t, MakePiece(White, Knight), p.PieceOn(SqF3))
	assert.Equal(t, Black, p.SideToMove())

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeMoveDoublePushSetsEnPassantSquare(t *testing.T) {
	p := NewPosition()
	before := p.FEN()

	p.MakeMove(NewMoveType(SqE2, SqE4, DoublePawnPush))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqE4))
	assert.Equal(t, SqE3, p.EnPassantSquare())

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeMoveCapture(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 3 7")
	assert.NoError(t, err)
	before := p.FEN()

	p.MakeMove(NewMove(SqE4, SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqD5))
	assert.Equal(t, PieceNone, p.PieceOn(SqE4))
	assert.Equal(t, 0, p.HalfMoveClock())

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeMoveEnPassant(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := p.FEN()

	p.MakeMove(NewMoveType(SqE2, SqE4, DoublePawnPush))
	p.MakeMove(NewMoveType(SqD4, SqE3, EnPassant))
	assert.Equal(t, PieceNone, p.PieceOn(SqE4))
	assert.Equal(t, MakePiece(Black, Pawn), p.PieceOn(SqE3))

	p.UnmakeMove()
	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeMoveCastling(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.FEN()

	p.MakeMove(NewMoveType(SqE1, SqG1, CastleKingside))
	assert.Equal(t, MakePiece(White, King), p.PieceOn(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqE1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
	assert.True(t, p.CastlingRights().Has(CastlingBlack))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeMovePromotion(t *testing.T) {
	p, err := ParseFEN("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := p.FEN()

	p.MakeMove(NewPromotion(SqE7, SqE8, Queen))
	assert.Equal(t, MakePiece(White, Queen), p.PieceOn(SqE8))
	assert.Equal(t, PieceNone, p.PieceOn(SqE7))

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeMovePromotionCapture(t *testing.T) {
	p, err := ParseFEN("3rk3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := p.FEN()

	p.MakeMove(NewPromotion(SqE7, SqD8, Knight))
	assert.Equal(t, MakePiece(White, Knight), p.PieceOn(SqD8))

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
}

func TestHalfMoveClockResetsOnPawnMoveAndCapture(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 5 10")
	assert.NoError(t, err)
	assert.Equal(t, 5, p.HalfMoveClock())

	p.MakeMove(NewMove(SqE1, SqD1))
	assert.Equal(t, 6, p.HalfMoveClock())
	p.UnmakeMove()

	p.MakeMove(NewMove(SqE4, SqD5))
	assert.Equal(t, 0, p.HalfMoveClock())
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition()
	clone := p.Clone()
	clone.MakeMove(NewMove(SqE2, SqE4))

	assert.Equal(t, StartFEN, p.FEN())
	assert.NotEqual(t, p.FEN(), clone.FEN())
}

func TestLastMove(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, MoveNone, p.LastMove())

	m := NewMove(SqE2, SqE4)
	p.MakeMove(m)
	assert.Equal(t, m, p.LastMove())
}
