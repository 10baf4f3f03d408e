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
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	. "github.com/ckirsch/chesscore/internal/types"

	"github.com/ckirsch/chesscore/internal/logging"
)

// magicEntry is a single square's fancy-magic record: mask, magic multiplier,
// shift, and the offset into the shared attack table for the piece kind.
type magicEntry struct {
	mask   Bitboard
	magic  Bitboard
	shift  uint
	offset int
}

// index computes the fancy-magic table index for a given occupancy:
//
//	offset[s] + ((occupied & mask[s]) * magic[s]) >> shift[s]
func (m *magicEntry) index(occupied Bitboard) int {
	return m.offset + int((occupied&m.mask)*m.magic>>m.shift)
}

// Known-good fancy-magic constants, hardcoded instead of searched for with a
// PRNG at startup. verifyMagics checks them against the ray-cast reference
// the first time the tables are built.
var rookMagics = [64]Bitboard{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

var bishopMagics = [64]Bitboard{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookShifts = [64]uint{
	52, 53, 53, 53, 53, 53, 53, 52, 53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53, 53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53, 53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53, 52, 53, 53, 53, 53, 53, 53, 52,
}

var bishopShifts = [64]uint{
	58, 59, 59, 59, 59, 59, 59, 58, 59, 59, 59, 59, 59, 59, 59, 59,
	59, 59, 57, 57, 57, 57, 59, 59, 59, 59, 57, 55, 55, 57, 59, 59,
	59, 59, 57, 55, 55, 57, 59, 59, 59, 59, 57, 57, 57, 57, 59, 59,
	59, 59, 59, 59, 59, 59, 59, 59, 58, 59, 59, 59, 59, 59, 59, 58,
}

var (
	rookEntries   [64]magicEntry
	bishopEntries [64]magicEntry
	rookTable     []Bitboard
	bishopTable   []Bitboard

	magicOnce sync.Once
)

// EnsureMagicsInitialized forces the shared magic attack tables to be built
// and self-verified right now rather than lazily at the first attack
// lookup. Safe to call more than once; only the first call does any work.
func EnsureMagicsInitialized() {
	ensureMagics()
}

// ensureMagics builds the shared rook/bishop attack tables exactly once,
// verifying every entry against the ray-cast reference before publishing
// them. Any mismatch is a programmer error (wrong constants) and panics at
// first use.
func ensureMagics() {
	magicOnce.Do(func() {
		buildMagics(rookMasks, rookMagics, rookShifts, Orthogonal[:], RookAttacksSlow, &rookEntries, &rookTable)
		buildMagics(bishopMasks, bishopMagics, bishopShifts, Diagonal[:], BishopAttacksSlow, &bishopEntries, &bishopTable)
		if err := verifyMagics(); err != nil {
			logging.GetLog().Errorf("magic bitboard self-test failed: %v", err)
			panic(err)
		}
	})
}

func buildMagics(masks, magicConsts [64]Bitboard, shifts [64]uint, dirs []Direction,
	slow func(Square, Bitboard) Bitboard, entries *[64]magicEntry, table *[]Bitboard) {

	offset := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		mask := masks[sq]
		shift := shifts[sq]
		size := 1 << (64 - shift)
		entries[sq] = magicEntry{mask: mask, magic: magicConsts[sq], shift: shift, offset: offset}
		offset += size
	}
	*table = make([]Bitboard, offset)
	for sq := SqA1; sq <= SqH8; sq++ {
		e := &entries[sq]
		blockerSubsets(e.mask, func(subset Bitboard) {
			idx := e.index(subset)
			(*table)[idx] = slow(sq, subset)
		})
	}
}

// verifyMagics checks, for every square and every blocker subset of its
// mask, that the magic-table lookup agrees with the slow ray-cast reference.
// Per-square checks run concurrently via errgroup and the first failure
// (if any) is returned.
func verifyMagics() error {
	var g errgroup.Group
	for sq := SqA1; sq <= SqH8; sq++ {
		sq := sq
		g.Go(func() error {
			if err := verifySquare(sq, &rookEntries[sq], rookTable, RookAttacksSlow); err != nil {
				return fmt.Errorf("rook %s: %w", sq, err)
			}
			if err := verifySquare(sq, &bishopEntries[sq], bishopTable, BishopAttacksSlow); err != nil {
				return fmt.Errorf("bishop %s: %w", sq, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// verifySquare walks every blocker subset of e's mask and checks that the
// shared attack table agrees with the slow ray-cast reference at e's index.
func verifySquare(sq Square, e *magicEntry, table []Bitboard, slow func(Square, Bitboard) Bitboard) error {
	var failure error
	blockerSubsets(e.mask, func(subset Bitboard) {
		if failure != nil {
			return
		}
		want := slow(sq, subset)
		got := table[e.index(subset)]
		if got != want {
			failure = fmt.Errorf("index collision for occupancy %#x: got %#x want %#x", uint64(subset), uint64(got), uint64(want))
		}
	})
	return failure
}

// RookAttacks returns the rook's attack set from sq given the current total
// occupancy, via O(1) magic lookup.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	ensureMagics()
	e := &rookEntries[sq]
	return rookTable[e.index(occupied)]
}

// BishopAttacks returns the bishop's attack set from sq given the current
// total occupancy, via O(1) magic lookup.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	ensureMagics()
	e := &bishopEntries[sq]
	return bishopTable[e.index(occupied)]
}

// QueenAttacks is the union of rook and bishop attacks at the same square
// and occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}
