//
// Bitboard-Chess-Engine - a bitboard/magic-bitboard move generation core
//
// MIT License
//
// Copyright (c) 2020-2026 Bitboard-Chess-Engine contributors
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

// Package perft implements the performance-test node counter, the
// canonical correctness oracle for a chess move generator: it counts
// leaf nodes of the full move tree to a given depth and, in divide
// mode, breaks that count down per root move for bisection debugging.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/logging"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/movegen"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/util"
)

var log = logging.GetLog()
var out = message.NewPrinter(language.English)

// Result accumulates node and tag counters from a perft run.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

// Run counts the leaf nodes of the move tree rooted at pos to the
// given depth. depth <= 0 is treated as 1.
func Run(pos *position.Position, depth int) Result {
	if depth <= 0 {
		depth = 1
	}
	var r Result
	r.Nodes = perft(pos, depth, &r)
	return r
}

func perft(pos *position.Position, depth int, r *Result) uint64 {
	if depth == 0 {
		return 1
	}

	var list types.MoveList
	movegen.Generate(pos, &list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		prev, ok := pos.MakeMove(m, position.AllMoves)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			tally(m, r)
		} else {
			nodes += perft(pos, depth-1, r)
		}
		pos.UnmakeMove(prev)
	}
	return nodes
}

func tally(m types.Move, r *Result) {
	if m.IsCapture() {
		r.Captures++
	}
	if m.IsEnPassant() {
		r.EnPassant++
	}
	if m.IsCastling() {
		r.Castles++
	}
	if m.IsPromotion() {
		r.Promotions++
	}
}

// RunAndReport runs Run and prints a summary report, in the style of a
// UCI engine's "go perft" diagnostic output.
func RunAndReport(pos *position.Position, depth int) Result {
	out.Printf("Performing PERFT test to depth %d\n", depth)
	out.Printf("FEN: %s\n", pos.FEN())
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	r := Run(pos, depth)
	elapsed := time.Since(start)

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(int64(r.Nodes), elapsed))
	out.Printf("Nodes        : %d\n", r.Nodes)
	out.Printf("Captures     : %d\n", r.Captures)
	out.Printf("EnPassant    : %d\n", r.EnPassant)
	out.Printf("Castles      : %d\n", r.Castles)
	out.Printf("Promotions   : %d\n", r.Promotions)
	out.Printf("-----------------------------------------\n")
	log.Debugf("perft: depth=%d nodes=%d elapsed=%s", depth, r.Nodes, elapsed)
	return r
}

// Divide runs perft one ply at a time from the root, printing each
// root move's algebraic notation alongside the node count of its
// subtree. Used to bisect a move generation bug against a reference
// engine's per-move counts.
func Divide(pos *position.Position, depth int) uint64 {
	if depth <= 0 {
		depth = 1
	}

	var list types.MoveList
	movegen.Generate(pos, &list)

	var total uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		prev, ok := pos.MakeMove(m, position.AllMoves)
		if !ok {
			continue
		}
		var r Result
		nodes := perft(pos, depth-1, &r)
		pos.UnmakeMove(prev)
		out.Printf("%s: %d\n", m.StringUci(), nodes)
		total += nodes
	}
	out.Printf("-----------------------------------------\n")
	out.Printf("Total: %d\n", total)
	return total
}
