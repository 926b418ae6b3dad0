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

// Package attacks precomputes the sliding piece attack tables (magic
// bitboards) and the combined attacked-square test used by move
// generation and legality checking.
package attacks

import (
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/logging"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
)

var log = logging.GetLog()

// magic holds the fancy magic bitboard parameters for a single square:
// the relevant occupancy mask, the magic multiplier, the attack table
// slice for this square and the shift needed to turn a masked occupancy
// into a table index.
//
// The approach (and the magic search loop below) follows the
// well-known "fancy magic bitboards" technique popularized by
// Stockfish; see https://www.chessprogramming.org/Magic_Bitboards.
type magic struct {
	mask    types.Bitboard
	number  types.Bitboard
	attacks []types.Bitboard
	shift   uint
}

func (m *magic) index(occupied types.Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

var (
	rookTable  []types.Bitboard
	rookMagics [types.SqLength]magic

	bishopTable  []types.Bitboard
	bishopMagics [types.SqLength]magic
)

var rookDirections = [4]types.Direction{types.North, types.East, types.South, types.West}
var bishopDirections = [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}

// tunedSeeds hold one PRNG seed per rank index. They are starting
// points for the search, not magic numbers themselves; any seed
// eventually finds a working magic, these need several times fewer
// candidates in total than genericSeed. Used whenever useTunedSeeds is
// true.
var tunedSeeds = [types.RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// genericSeed feeds every rank's search when useTunedSeeds is false,
// giving up the faster convergence tunedSeeds provide. With the default
// searchBudget it still finds a magic for every square.
const genericSeed = 1

const defaultSearchBudget = 100_000_000

var (
	searchBudget  = defaultSearchBudget
	useTunedSeeds = true
)

func init() {
	rookTable = make([]types.Bitboard, 0x19000)
	bishopTable = make([]types.Bitboard, 0x1480)
	Recompute()
}

// SetSearchBudget overrides the number of magic-number candidates tried
// per square before the search gives up on that square. Takes effect on
// the next call to Recompute. Non-positive values are ignored.
func SetSearchBudget(n int) {
	if n > 0 {
		searchBudget = n
	}
}

// SetUseTunedSeeds selects whether the per-rank tuned seed table is
// used (true, the default), or whether every rank's search starts from
// the same generic seed (false), which needs more candidates per
// square before a magic is found.
func SetUseTunedSeeds(tuned bool) {
	useTunedSeeds = tuned
}

// Recompute rebuilds the rook and bishop attack tables from the
// current searchBudget/useTunedSeeds settings. init calls it once with
// the defaults; cmd/bbengine calls it again after config.Setup() has
// had a chance to override them.
func Recompute() {
	initMagics(rookTable, &rookMagics, &rookDirections)
	initMagics(bishopTable, &bishopMagics, &bishopDirections)
}

// initMagics computes the magic numbers and attack tables for all 64
// squares along the four given ray directions (rook or bishop rays).
func initMagics(table []types.Bitboard, magics *[types.SqLength]magic, directions *[4]types.Direction) {
	var occupancy, reference [4096]types.Bitboard

	for sq := types.SqA8; sq < types.SqNone; sq++ {
		edges := ((types.Rank1Bb | types.Rank8Bb) &^ rankBb(sq.RankOf())) |
			((types.FileABb | types.FileHBb) &^ fileBb(sq.FileOf()))

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, types.BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == types.SqA8 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size(magics[sq-1].mask):]
		}

		n := enumerateOccupancies(directions, sq, m.mask, &occupancy, &reference)

		seed := uint64(genericSeed)
		if useTunedSeeds {
			seed = tunedSeeds[sq.RankOf()]
		}
		rng := newPrnG(seed)

		number, attempts, ok := findMagic(m, occupancy[:n], reference[:n], rng, searchBudget)
		if !ok {
			log.Errorf("attacks: no magic found for square %s after %d attempts, zeroing its table", sq, attempts)
			m.number = 0
			for i := 0; i < n; i++ {
				m.attacks[i] = types.BbZero
			}
			continue
		}
		m.number = number
	}
}

// enumerateOccupancies fills occupancy/reference with every subset of
// mask and the on-the-fly sliding attack set for that subset (the
// Carry-Rippler trick; see
// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set), and
// returns how many subsets there were.
func enumerateOccupancies(directions *[4]types.Direction, sq types.Square, mask types.Bitboard, occupancy, reference *[4096]types.Bitboard) int {
	n := 0
	b := types.BbZero
	for {
		occupancy[n] = b
		reference[n] = slidingAttack(directions, sq, b)
		n++
		b = (b - mask) & mask
		if b == 0 {
			return n
		}
	}
}

// findMagic draws sparse candidates from rng and tests each against
// every (occupancy, reference) pair, accepting the first candidate that
// produces no destructive collision (two different occupancies mapping
// to the same index but different attack sets). Gives up after budget
// candidates and reports ok=false; the caller decides what to do with
// an un-magicked square.
func findMagic(m *magic, occupancy, reference []types.Bitboard, rng *prnG, budget int) (number types.Bitboard, attempts int, ok bool) {
	var epoch [4096]int

	for attempts = 1; attempts <= budget; attempts++ {
		candidate := sparseCandidate(rng, m.mask)
		m.number = candidate

		collision := false
		for i, occ := range occupancy {
			idx := m.index(occ)
			if epoch[idx] < attempts {
				epoch[idx] = attempts
				m.attacks[idx] = reference[i]
			} else if m.attacks[idx] != reference[i] {
				collision = true
				break
			}
		}
		if !collision {
			return candidate, attempts, true
		}
	}
	return 0, budget, false
}

// sparseCandidate draws xorshift64star values until one passes the
// cheap pre-filter (at least 6 bits set in the top byte of mask times
// the candidate); sparse candidates converge to a valid magic far
// faster than uniformly random ones. Draws rejected by the filter are
// not counted against the search budget, since the filter is nearly
// free.
func sparseCandidate(rng *prnG, mask types.Bitboard) types.Bitboard {
	for {
		candidate := types.Bitboard(rng.sparseRand())
		if ((candidate * mask) >> 56).PopCount() >= 6 {
			return candidate
		}
	}
}

func size(mask types.Bitboard) int {
	return 1 << uint(mask.PopCount())
}

func rankBb(r types.Rank) types.Bitboard {
	return types.Rank8Bb << uint(8*int(r))
}

func fileBb(f types.File) types.Bitboard {
	return types.FileABb << uint(f)
}

// slidingAttack walks each of the four ray directions from sq on an
// empty-except-for-occupied board, stopping after (and including) the
// first occupied square. Only used to build the precomputed tables, so
// its loop-in-loop cost is irrelevant at runtime.
func slidingAttack(directions *[4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == types.SqNone {
				break
			}
			s = next
			attack = attack.Set(s)
			if occupied.Test(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the xorshift64star pseudo-random number generator used to
// search for magic numbers. Based on the public-domain generator by
// Sebastiano Vigna (2014); see http://vigna.di.unimi.it/ftp/papers/xorshift.pdf.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces candidates with roughly 1/8th of their bits set
// on average, which converge to a valid magic number much faster than
// uniformly random 64-bit values.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

// GetBishopAttacks returns the bishop attack set from sq given board
// occupancy occ.
func GetBishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occ)]
}

// GetRookAttacks returns the rook attack set from sq given board
// occupancy occ.
func GetRookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occ)]
}

// GetQueenAttacks returns the queen attack set from sq given board
// occupancy occ (the union of the rook and bishop attack sets).
func GetQueenAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return GetBishopAttacks(sq, occ) | GetRookAttacks(sq, occ)
}

// GetSliderAttacks returns the attack set of the given slider piece
// type (Bishop, Rook or Queen) from sq given board occupancy occ.
func GetSliderAttacks(pt types.PieceType, sq types.Square, occ types.Bitboard) types.Bitboard {
	switch pt {
	case types.Bishop:
		return GetBishopAttacks(sq, occ)
	case types.Rook:
		return GetRookAttacks(sq, occ)
	case types.Queen:
		return GetQueenAttacks(sq, occ)
	default:
		return types.BbZero
	}
}
