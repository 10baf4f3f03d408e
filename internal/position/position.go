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

// Package position represents a chess board and its position: an 8x8 piece
// array backed by per-color/per-type bitboards, castling rights, en passant
// target, move counters, and a history stack for MakeMove/UnmakeMove.
//
// Create a position with NewPosition() for the standard starting position
// or ParseFEN(fen) for an arbitrary one.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ckirsch/chesscore/internal/assert"
	. "github.com/ckirsch/chesscore/internal/types"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoState captures everything MakeMove changes that UnmakeMove cannot
// recompute purely from the move itself.
type undoState struct {
	move            Move
	movedPiece      Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is a mutable chess board. The zero value is not valid; use
// NewPosition or ParseFEN.
type Position struct {
	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [ColorLength]Bitboard
	kingSquare      [ColorLength]Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	sideToMove      Color

	history []undoState
}

// castlingLoss[sq] is the castling right(s) forfeited the moment a piece
// moves off of, or a capture lands on, sq: the four rook home squares and
// the two king home squares.
var castlingLoss [SqLength]CastlingRights

func init() {
	castlingLoss[SqE1] = CastlingWhite
	castlingLoss[SqH1] = CastlingWhiteOO
	castlingLoss[SqA1] = CastlingWhiteOOO
	castlingLoss[SqE8] = CastlingBlack
	castlingLoss[SqH8] = CastlingBlackOO
	castlingLoss[SqA8] = CastlingBlackOOO
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: starting FEN failed to parse: %v", err))
	}
	return p
}

// ParseFEN builds a Position from a Forsyth-Edwards string. Only the piece
// placement field is mandatory; side-to-move, castling, en passant, and the
// two move counters default as FEN specifies when omitted.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("position: empty fen")
	}

	p := &Position{
		sideToMove:      White,
		enPassantSquare: SqNone,
		fullMoveNumber:  1,
	}
	for sq := SqA1; sq < SqNone; sq++ {
		p.board[sq] = PieceNone
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			sq = sq.To(South).To(South)
		case c >= '1' && c <= '8':
			sq += Square(c - '0')
		default:
			pt, color, err := pieceFromChar(c)
			if err != nil {
				return nil, fmt.Errorf("position: %w", err)
			}
			if sq >= SqNone {
				return nil, fmt.Errorf("position: fen runs past the board")
			}
			p.placePiece(MakePiece(color, pt), sq)
			sq++
		}
	}
	if sq != SqA2 {
		return nil, fmt.Errorf("position: fen does not describe exactly 64 squares")
	}

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
		default:
			return nil, fmt.Errorf("position: invalid side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights |= CastlingWhiteOO
			case 'Q':
				p.castlingRights |= CastlingWhiteOOO
			case 'k':
				p.castlingRights |= CastlingBlackOO
			case 'q':
				p.castlingRights |= CastlingBlackOOO
			default:
				return nil, fmt.Errorf("position: invalid castling rights %q", fields[2])
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		epSq := ParseSquare(fields[3])
		if epSq == SqNone {
			return nil, fmt.Errorf("position: invalid en passant square %q", fields[3])
		}
		p.enPassantSquare = epSq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("position: invalid halfmove clock %q", fields[4])
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("position: invalid fullmove number %q", fields[5])
		}
		if n < 1 {
			n = 1
		}
		p.fullMoveNumber = n
	}

	return p, nil
}

func pieceFromChar(c rune) (PieceType, Color, error) {
	color := White
	lc := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lc = c + ('a' - 'A')
	}
	switch lc {
	case 'p':
		return Pawn, color, nil
	case 'n':
		return Knight, color, nil
	case 'b':
		return Bishop, color, nil
	case 'r':
		return Rook, color, nil
	case 'q':
		return Queen, color, nil
	case 'k':
		return King, color, nil
	default:
		return PtNone, color, fmt.Errorf("invalid piece character %q", c)
	}
}

// FEN renders the position back into Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f < FileNone; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	if p.enPassantSquare == SqNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.enPassantSquare.String())
	}
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

// Clone returns a deep, independent copy of the position (history included).
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]undoState(nil), p.history...)
	return &c
}

func (p *Position) placePiece(piece Piece, sq Square) {
	p.board[sq] = piece
	color, pt := piece.ColorOf(), piece.TypeOf()
	p.piecesBb[color][pt] = p.piecesBb[color][pt].Set(sq)
	p.occupiedBb[color] = p.occupiedBb[color].Set(sq)
	if pt == King {
		p.kingSquare[color] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	p.board[sq] = PieceNone
	color, pt := piece.ColorOf(), piece.TypeOf()
	p.piecesBb[color][pt] = p.piecesBb[color][pt].Clear(sq)
	p.occupiedBb[color] = p.occupiedBb[color].Clear(sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.placePiece(p.removePiece(from), to)
}

// MakeMove commits m to the board. The caller is responsible for only
// passing moves produced by the move generator (legality is not rechecked
// here, per the same convention the generator itself follows).
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	movedPiece := p.board[from]
	color := movedPiece.ColorOf()
	capturedPiece := p.board[to]

	p.history = append(p.history, undoState{
		move:            m,
		movedPiece:      movedPiece,
		capturedPiece:   capturedPiece,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
	})

	p.enPassantSquare = SqNone

	switch m.Type() {
	case EnPassant:
		capSq := to.To(color.Flip().PushDirection())
		p.removePiece(capSq)
		p.movePiece(from, to)
		p.halfMoveClock = 0
	case Promotion:
		if capturedPiece != PieceNone {
			p.removePiece(to)
		}
		p.removePiece(from)
		p.placePiece(MakePiece(color, m.PromotionType()), to)
		p.halfMoveClock = 0
	case CastleKingside, CastleQueenside:
		p.movePiece(from, to)
		rookFrom, rookTo := castlingRookSquares(to)
		p.movePiece(rookFrom, rookTo)
		p.halfMoveClock++
	default: // Normal, DoublePawnPush
		if capturedPiece != PieceNone {
			p.removePiece(to)
		}
		p.movePiece(from, to)
		if movedPiece.TypeOf() == Pawn {
			p.halfMoveClock = 0
			if m.Type() == DoublePawnPush {
				p.enPassantSquare = to.To(color.Flip().PushDirection())
			}
		} else if capturedPiece != PieceNone {
			p.halfMoveClock = 0
		} else {
			p.halfMoveClock++
		}
	}

	p.castlingRights &^= castlingLoss[from] | castlingLoss[to]

	if color == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()

	if assert.DEBUG {
		assert.Assert(p.board[p.kingSquare[White]] == MakePiece(White, King), "white king square out of sync after %s", m)
		assert.Assert(p.board[p.kingSquare[Black]] == MakePiece(Black, King), "black king square out of sync after %s", m)
	}
}

// UnmakeMove restores the position to its state before the most recent
// MakeMove call. It panics if called with no move on the history stack.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	if n == 0 {
		panic("position: UnmakeMove called on initial position")
	}
	st := p.history[n-1]
	p.history = p.history[:n-1]

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullMoveNumber--
	}
	p.castlingRights = st.castlingRights
	p.enPassantSquare = st.enPassantSquare
	p.halfMoveClock = st.halfMoveClock

	from, to := st.move.From(), st.move.To()
	switch st.move.Type() {
	case EnPassant:
		p.movePiece(to, from)
		capSq := to.To(st.movedPiece.ColorOf().Flip().PushDirection())
		p.placePiece(MakePiece(st.movedPiece.ColorOf().Flip(), Pawn), capSq)
	case Promotion:
		p.removePiece(to)
		p.placePiece(st.movedPiece, from)
		if st.capturedPiece != PieceNone {
			p.placePiece(st.capturedPiece, to)
		}
	case CastleKingside, CastleQueenside:
		p.movePiece(to, from)
		rookFrom, rookTo := castlingRookSquares(to)
		p.movePiece(rookTo, rookFrom)
	default:
		p.movePiece(to, from)
		if st.capturedPiece != PieceNone {
			p.placePiece(st.capturedPiece, to)
		}
	}
}

// castlingRookSquares returns the rook's (from, to) squares for a castling
// move whose king destination is to.
func castlingRookSquares(kingTo Square) (Square, Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("position: %s is not a castling destination", kingTo))
	}
}

// PieceOn returns the piece on sq, or PieceNone if it is empty.
func (p *Position) PieceOn(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of pieces of type pt belonging to c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBy returns the union of all of c's pieces.
func (p *Position) OccupiedBy(c Color) Bitboard {
	return p.occupiedBb[c]
}

// Occupied returns every occupied square on the board, either color.
func (p *Position) Occupied() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the 50-move-rule half-move counter.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// LastMove returns the most recently made move, or MoveNone if the
// position has no history.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return MoveNone
	}
	return p.history[len(p.history)-1].move
}

// String renders the board as an 8x8 grid for debugging, matching the
// package's logging conventions.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f < FileNone; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.Char() + " ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(p.FEN())
	return sb.String()
}
