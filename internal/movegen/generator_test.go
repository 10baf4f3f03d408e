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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ckirsch/chesscore/internal/position"
	. "github.com/ckirsch/chesscore/internal/types"
)

func legalMoves(t *testing.T, fen string) []Move {
	t.Helper()
	pos, err := position.ParseFEN(fen)
	assert.NoError(t, err)
	moves := GenerateLegalMoves(pos)
	out := make([]Move, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		out[i] = moves.At(i)
	}
	return out
}

func TestStartingPositionHas20Moves(t *testing.T) {
	pos, err := position.ParseFEN(position.StartFEN)
	assert.NoError(t, err)
	assert.False(t, IsInCheck(pos))
	assert.Len(t, legalMoves(t, position.StartFEN), 20)
}

func TestScholarsMateIsCheckmate(t *testing.T) {
	const fen = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"
	pos, err := position.ParseFEN(fen)
	assert.NoError(t, err)
	assert.True(t, IsInCheck(pos), "black king is in check")
	assert.Empty(t, legalMoves(t, fen))
}

func TestIsInCheckMatchesCheckerSet(t *testing.T) {
	cases := []struct {
		fen     string
		inCheck bool
	}{
		{position.StartFEN, false},
		{"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", true},
		{"4r3/8/8/8/8/3n4/8/4K2k w - - 0 1", true},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", false},
	}
	for _, tc := range cases {
		pos, err := position.ParseFEN(tc.fen)
		assert.NoError(t, err)
		assert.Equal(t, tc.inCheck, IsInCheck(pos), tc.fen)
		assert.Equal(t, tc.inCheck, Analyze(pos).Checkers != BbZero, tc.fen)
	}
}

func TestCastlingAvailableProducesTwoCastlingMoves(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	var kingside, queenside int
	for _, m := range legalMoves(t, fen) {
		switch m.Type() {
		case CastleKingside:
			kingside++
			assert.Equal(t, SqE1, m.From())
			assert.Equal(t, SqG1, m.To())
		case CastleQueenside:
			queenside++
			assert.Equal(t, SqE1, m.From())
			assert.Equal(t, SqC1, m.To())
		}
	}
	assert.Equal(t, 1, kingside)
	assert.Equal(t, 1, queenside)
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	// a black rook on f8 attacks f1, the square the king must pass through
	// to castle kingside; queenside is untouched and stays legal.
	const fen = "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	var queensideFound bool
	for _, m := range legalMoves(t, fen) {
		assert.NotEqual(t, CastleKingside, m.Type())
		if m.Type() == CastleQueenside {
			queensideFound = true
		}
	}
	assert.True(t, queensideFound, "queenside castling is untouched by the attack on f1")
}

func TestEnPassantFenProducesExactlyOneEnPassantMove(t *testing.T) {
	const fen = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
	var found int
	for _, m := range legalMoves(t, fen) {
		if m.Type() == EnPassant {
			found++
			assert.Equal(t, SqF5, m.From())
			assert.Equal(t, SqE6, m.To())
		}
	}
	assert.Equal(t, 1, found)
}

func TestEnPassantByPawnPinnedOffCaptureDiagonalIsIllegal(t *testing.T) {
	// the white pawn on d5 is pinned on the a8-h1 diagonal by the bishop on
	// h1; capturing e6 en passant would slide it off that diagonal and
	// expose the king on a8, even though no check is currently given.
	const fen = "K3k3/8/8/3Pp3/8/8/8/7b w - e6 0 1"
	for _, m := range legalMoves(t, fen) {
		assert.NotEqual(t, EnPassant, m.Type(), "pinned pawn must not capture en passant")
	}
}

func TestPromotionFenProducesFourPromotions(t *testing.T) {
	const fen = "8/P7/8/8/8/8/8/4K2k w - - 0 1"
	var promotions []Move
	for _, m := range legalMoves(t, fen) {
		if m.Type() == Promotion {
			assert.Equal(t, SqA7, m.From())
			assert.Equal(t, SqA8, m.To())
			promotions = append(promotions, m)
		}
	}
	assert.Len(t, promotions, 4)

	seen := map[PieceType]bool{}
	for _, m := range promotions {
		seen[m.PromotionType()] = true
	}
	assert.True(t, seen[Queen])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Bishop])
	assert.True(t, seen[Knight])
}

func TestPinnedKnightHasNoMoves(t *testing.T) {
	// the knight on e4 stands between the white king on e1 and the black
	// rook on e8, so it is pinned along the e-file.
	const fen = "4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1"
	for _, m := range legalMoves(t, fen) {
		assert.NotEqual(t, SqE4, m.From(), "the pinned knight on e4 must not move")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// white king on e1 is attacked simultaneously by the rook on e8 (file)
	// and the knight on d3 (only a king move escapes both).
	const fen = "4r3/8/8/8/8/3n4/8/4K2k w - - 0 1"
	pos, err := position.ParseFEN(fen)
	assert.NoError(t, err)
	assert.Equal(t, 2, Analyze(pos).Checkers.PopCount())
	for _, m := range legalMoves(t, fen) {
		assert.Equal(t, SqE1, m.From())
	}
}

func TestNoDuplicateMoves(t *testing.T) {
	moves := legalMoves(t, position.StartFEN)
	seen := map[Move]bool{}
	for _, m := range moves {
		assert.False(t, seen[m], "duplicate move %s", m)
		seen[m] = true
	}
}

func TestEveryMoveLeavesOwnKingSafe(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := position.ParseFEN(fen)
	assert.NoError(t, err)
	us := pos.SideToMove()

	moves := GenerateLegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		stillInCheck := checkers(pos, us, pos.SideToMove(), pos.KingSquare(us))
		assert.Equal(t, BbZero, stillInCheck, "move %s left our king in check", m)
		pos.UnmakeMove()
	}
}
