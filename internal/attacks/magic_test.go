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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

// enumerateSubsets returns every subset of mask's set bits, the
// Carry-Rippler way, mirroring the construction algorithm itself so
// the test is an independent check of the resulting tables.
func enumerateSubsets(mask types.Bitboard) []types.Bitboard {
	var subsets []types.Bitboard
	b := types.BbZero
	for {
		subsets = append(subsets, b)
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return subsets
}

func TestRookAttacksMatchOnTheFly(t *testing.T) {
	squares := []types.Square{types.SqA1, types.SqD4, types.SqH8, types.SqE1, types.SqA8}
	dirs := [4]types.Direction{types.North, types.East, types.South, types.West}
	for _, sq := range squares {
		mask := rookMagics[sq].mask
		for _, occ := range enumerateSubsets(mask) {
			want := slidingAttack(&dirs, sq, occ)
			got := GetRookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook attacks mismatch at %s for occupancy %v", sq, occ)
		}
	}
}

func TestBishopAttacksMatchOnTheFly(t *testing.T) {
	squares := []types.Square{types.SqA1, types.SqD4, types.SqH8, types.SqE1, types.SqA8}
	dirs := [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}
	for _, sq := range squares {
		mask := bishopMagics[sq].mask
		for _, occ := range enumerateSubsets(mask) {
			want := slidingAttack(&dirs, sq, occ)
			got := GetBishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop attacks mismatch at %s for occupancy %v", sq, occ)
		}
	}
}

func TestNonBlockingOccupancyDoesNotChangeAttacks(t *testing.T) {
	// Adding a square outside the attack mask must never change the
	// resulting attack set.
	base := types.BbZero
	withExtra := base.Set(types.SqH8)
	assert.Equal(t, GetRookAttacks(types.SqA1, base), GetRookAttacks(types.SqA1, withExtra))
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := types.SqD4.Bb() | types.SqD6.Bb() | types.SqF4.Bb()
	want := GetRookAttacks(types.SqD4, occ) | GetBishopAttacks(types.SqD4, occ)
	assert.Equal(t, want, GetQueenAttacks(types.SqD4, occ))
}

func TestFindMagicExhaustsBudgetAndReportsFailure(t *testing.T) {
	m := &magic{mask: types.SqD4.Bb() | types.SqD6.Bb(), shift: 62, attacks: make([]types.Bitboard, 4)}
	occupancy := []types.Bitboard{types.BbZero, m.mask}
	reference := []types.Bitboard{types.SqA1.Bb(), types.SqH8.Bb()}

	_, attempts, ok := findMagic(m, occupancy, reference, newPrnG(1), 0)
	assert.False(t, ok)
	assert.Equal(t, 0, attempts)
}

func TestInitMagicsZeroesTableOnSearchFailure(t *testing.T) {
	restoreBudget, restoreTuned := searchBudget, useTunedSeeds
	t.Cleanup(func() {
		searchBudget, useTunedSeeds = restoreBudget, restoreTuned
		Recompute()
	})

	searchBudget = 0 // SetSearchBudget ignores non-positive values
	Recompute()

	for sq := types.SqA8; sq < types.SqNone; sq++ {
		assert.Equal(t, types.BbZero, rookMagics[sq].number, "square %s should have a zeroed magic after budget exhaustion", sq)
	}
}

func TestRecomputeWithGenericSeedStillProducesCorrectTables(t *testing.T) {
	restoreBudget, restoreTuned := searchBudget, useTunedSeeds
	t.Cleanup(func() {
		searchBudget, useTunedSeeds = restoreBudget, restoreTuned
		Recompute()
	})

	SetUseTunedSeeds(false)
	SetSearchBudget(defaultSearchBudget)
	Recompute()

	dirs := [4]types.Direction{types.North, types.East, types.South, types.West}
	for _, sq := range []types.Square{types.SqA1, types.SqD4, types.SqH8} {
		mask := rookMagics[sq].mask
		for _, occ := range enumerateSubsets(mask) {
			assert.Equal(t, slidingAttack(&dirs, sq, occ), GetRookAttacks(sq, occ))
		}
	}
}
