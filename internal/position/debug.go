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

package position

import (
	"strings"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/attacks"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

// StringAttackedBy renders an 8x8 grid marking every square attacked by
// the given side with 'x', for use while developing or debugging
// IsSquareAttacked and the magic attack tables.
func (p *Position) StringAttackedBy(by types.Color) string {
	var sb strings.Builder
	sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for r := types.Rank8; r < types.RankLength; r++ {
		sb.WriteString(r.String())
		sb.WriteString(" |")
		for f := types.FileA; f < types.FileLength; f++ {
			sq := types.SquareOf(f, r)
			mark := byte(' ')
			if attacks.IsSquareAttacked(p.OccupiedBb(types.Both), sq, by, p.PieceBb) {
				mark = 'x'
			}
			sb.WriteByte(' ')
			sb.WriteByte(mark)
			sb.WriteString(" |")
		}
		sb.WriteString("\n  +---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
