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
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ckirsch/chesscore/internal/moveslice"
	"github.com/ckirsch/chesscore/internal/position"
	. "github.com/ckirsch/chesscore/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft counts leaf nodes of the legal move tree to validate the move
// generator: a wrong count at some depth always traces back to a specific
// rule bug (a missing en passant, an over-eager castling right, ...).
type Perft struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	stopFlag   bool
}

// NewPerft creates an empty Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop aborts a running perft, checked between moves at every recursion
// level. Intended for a perft started on its own goroutine from a CLI.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run performs a perft search from fen to depth and prints a summary in
// the style of a UCI engine's perft command. Depths below 1 are clamped
// to 1.
func (pf *Perft) Run(fen string, depth int) error {
	if depth < 1 {
		depth = 1
	}
	pf.reset()

	pos, err := position.ParseFEN(fen)
	if err != nil {
		return err
	}

	out.Printf("Performing Perft Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	nodes := pf.search(pos, depth)
	elapsed := time.Since(start)

	if pf.stopFlag {
		out.Print("Perft stopped\n")
		return nil
	}

	pf.Nodes = nodes
	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = (pf.Nodes * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds())
	}

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", pf.Nodes)
	out.Printf("   Captures  : %d\n", pf.Captures)
	out.Printf("   EnPassant : %d\n", pf.EnPassants)
	out.Printf("   Castles   : %d\n", pf.Castles)
	out.Printf("   Promotions: %d\n", pf.Promotions)
	out.Printf("   Checks    : %d\n", pf.Checks)
	out.Printf("-----------------------------------------\n")
	return nil
}

// search is the recursive node counter. At the leaf ply it classifies
// each move before playing it so the summary counters stay accurate
// without a second pass over the tree.
func (pf *Perft) search(pos *position.Position, depth int) uint64 {
	if pf.stopFlag {
		return 0
	}

	moves := moveslice.NewMoveSlice(64)
	GenerateLegalMovesInto(pos, moves)

	if depth == 1 {
		for i := 0; i < moves.Len(); i++ {
			pf.classify(pos, moves.At(i))
		}
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len() && !pf.stopFlag; i++ {
		pos.MakeMove(moves.At(i))
		nodes += pf.search(pos, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}

func (pf *Perft) classify(pos *position.Position, m Move) {
	switch m.Type() {
	case EnPassant:
		pf.EnPassants++
		pf.Captures++
	case CastleKingside, CastleQueenside:
		pf.Castles++
	default:
		if pos.PieceOn(m.To()) != PieceNone {
			pf.Captures++
		}
	}
	if m.Type() == Promotion {
		pf.Promotions++
	}
	pos.MakeMove(m)
	if Analyze(pos).Checkers != BbZero {
		pf.Checks++
	}
	pos.UnmakeMove()
}

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.Captures = 0
	pf.EnPassants = 0
	pf.Castles = 0
	pf.Promotions = 0
	pf.Checks = 0
}

// NodeCount returns the plain leaf-node count reachable from pos in
// exactly depth plies, with none of Perft's move-classification bookkeeping.
// This is the function perft correctness tests call directly.
func NodeCount(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := moveslice.NewMoveSlice(64)
	GenerateLegalMovesInto(pos, moves)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		pos.MakeMove(moves.At(i))
		nodes += NodeCount(pos, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}

// PerftParallel is NodeCountParallel under the name external callers expect
// from a perft tool's public surface.
func PerftParallel(pos *position.Position, depth int, workers int) uint64 {
	return NodeCountParallel(pos, depth, workers)
}

// NodeCountParallel computes the same total as NodeCount but starts one
// goroutine per root move, at most workers of them running at once, each
// walking its own subtree on its own cloned Position. workers <= 0 defaults to runtime.NumCPU(). A weighted
// semaphore bounds how many subtrees run at once, the same primitive used
// to cap concurrently running search work.
func NodeCountParallel(pos *position.Position, depth int, workers int) uint64 {
	if depth == 0 {
		return 1
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rootMoves := moveslice.NewMoveSlice(64)
	GenerateLegalMovesInto(pos, rootMoves)
	if depth == 1 {
		return uint64(rootMoves.Len())
	}

	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	var total uint64
	var wg sync.WaitGroup
	for i := 0; i < rootMoves.Len(); i++ {
		child := pos.Clone()
		child.MakeMove(rootMoves.At(i))

		_ = sem.Acquire(ctx, 1) // ctx is context.Background(), error is always nil
		wg.Add(1)
		go func(p *position.Position) {
			defer wg.Done()
			defer sem.Release(1)
			atomic.AddUint64(&total, NodeCount(p, depth-1))
		}(child)
	}
	wg.Wait()
	return total
}
