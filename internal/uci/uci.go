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

// Package uci implements the line-oriented Universal Chess Interface
// text protocol loop. It is a thin shell around the move generation
// core: its only contract with the core is to parse a position
// command, parse a go command, and print identification.
package uci

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/config"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/logging"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/movegen"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/perft"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/search"
)

var log = logging.GetLog()

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler runs the UCI command loop against an input and output
// stream. Create one with NewHandler and call Loop to drive it from
// stdin/stdout, or Command to feed it a single line (useful for
// tests).
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer
	pos *position.Position
}

// NewHandler returns a Handler wired to r and w, with the board set up
// in the standard starting position.
func NewHandler(r io.Reader, w io.Writer) *Handler {
	return &Handler{
		in:  bufio.NewScanner(r),
		out: bufio.NewWriter(w),
		pos: position.New(),
	}
}

// Loop reads commands from the input stream until "quit" or EOF.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.handle(h.in.Text()) {
			return
		}
	}
}

// Command feeds a single line to the handler, for tests and debugging.
// Returns whether the line was "quit".
func (h *Handler) Command(cmd string) bool {
	return h.handle(cmd)
}

func (h *Handler) send(s string) {
	h.out.WriteString(s)
	h.out.WriteByte('\n')
	h.out.Flush()
}

func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	log.Debugf("uci: received %q", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)

	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.cmdUci()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.New()
	case "position":
		h.cmdPosition(tokens[1:])
	case "go":
		h.cmdGo(tokens[1:])
	case "perft":
		h.cmdPerft(tokens[1:])
	default:
		log.Debugf("uci: ignoring unknown command %q", tokens[0])
	}
	return false
}

func (h *Handler) cmdUci() {
	h.send("id name Bitboard-Chess-Engine")
	h.send("id author the Bitboard-Chess-Engine contributors")
	h.send("uciok")
}

func (h *Handler) cmdPosition(tokens []string) {
	if len(tokens) == 0 {
		return
	}

	var rest []string
	switch tokens[0] {
	case "startpos":
		h.pos = position.New()
		rest = tokens[1:]
	case "fen":
		// FEN is six whitespace separated fields; collect until we hit
		// "moves" or run out of tokens.
		i := 1
		for i < len(tokens) && tokens[i] != "moves" {
			i++
		}
		fen := strings.Join(tokens[1:i], " ")
		p, err := position.NewFromFEN(fen)
		if err != nil {
			log.Warningf("uci: position fen: %v", err)
			return
		}
		h.pos = p
		rest = tokens[i:]
	default:
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, uciMove := range rest[1:] {
			m := movegen.ParseMoveUci(h.pos, uciMove)
			if m == 0 {
				log.Warningf("uci: position moves: unknown move %q", uciMove)
				break
			}
			if _, ok := h.pos.MakeMove(m, position.AllMoves); !ok {
				log.Warningf("uci: position moves: illegal move %q", uciMove)
				break
			}
		}
	}
}

func (h *Handler) cmdGo(tokens []string) {
	_ = tokens // depth/time controls are not implemented by the search stub
	m := search.FindMove(h.pos)
	h.send("bestmove " + m.String())
}

func (h *Handler) cmdPerft(tokens []string) {
	depth := config.Settings.Perft.DefaultDepth
	if len(tokens) > 0 {
		if d, err := strconv.Atoi(tokens[0]); err == nil {
			depth = d
		}
	}
	perft.RunAndReport(h.pos, depth)
}
