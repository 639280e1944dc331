package board

// Magic-bitboard sliding attacks for rooks ("cardinal": N/S/E/W rays) and bishops
// ("ordinal": diagonal rays), keyed by a fixed-width perfect hash of the blocking
// occupancy, per the component design: shift 52 (12-bit index) for cardinal, shift 55
// (9-bit index) for ordinal, uniformly across all squares rather than a per-square
// minimal index width. A wider-than-minimal index is still collision-free: the known
// magic numbers below were validated for an index with at most this many bits, and
// keeping more top bits of the product than strictly necessary only refines, never
// collides, the hash (see DESIGN.md).
const (
	cardinalIndexBits = 12
	ordinalIndexBits  = 9

	cardinalShift = 64 - cardinalIndexBits
	ordinalShift  = 64 - ordinalIndexBits
)

// CardinalBlockers[s] / OrdinalBlockers[s] are the "relevant occupancy" masks: the rays
// from s in the given geometry, excluding the outer board edge (since a blocker on the
// edge can never be jumped over, its presence or absence does not affect the attack set).
var (
	CardinalBlockers [NumSquares]Bitboard
	OrdinalBlockers  [NumSquares]Bitboard

	cardinalAttacks [NumSquares][1 << cardinalIndexBits]Bitboard
	ordinalAttacks  [NumSquares][1 << ordinalIndexBits]Bitboard
)

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		CardinalBlockers[sq] = cardinalRayAttacks(sq, EmptyBitboard) &^ edgeMask(sq)
		OrdinalBlockers[sq] = ordinalRayAttacks(sq, EmptyBitboard) &^ edgeMask(sq)
	}

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		fillMagicTable(sq, CardinalBlockers[sq], cardinalMagics[sq], cardinalShift, cardinalAttacks[sq][:], cardinalRayAttacks)
		fillMagicTable(sq, OrdinalBlockers[sq], ordinalMagics[sq], ordinalShift, ordinalAttacks[sq][:], ordinalRayAttacks)
	}
}

// edgeMask returns the board edge squares irrelevant as blockers for a slider on sq: a ray
// always terminates on the edge it reaches, so a blocker there never needs to be
// distinguished from "no blocker" (own-rank/own-file edges are kept since a rook on the
// edge attacks along it).
func edgeMask(sq Square) Bitboard {
	edges := (BitRank(Rank1) | BitRank(Rank8)) &^ BitRank(sq.Rank())
	edges |= (BitFile(FileA) | BitFile(FileH)) &^ BitFile(sq.File())
	return edges
}

// fillMagicTable enumerates every blocker subset of mask, computes its magic index, and
// stores the true ray attack (computed on the fly) at that index.
func fillMagicTable(sq Square, mask Bitboard, magic uint64, shift uint, table []Bitboard, rays func(Square, Bitboard) Bitboard) {
	bitSquares := toSquares(mask)
	n := len(bitSquares)
	for i := 0; i < 1<<uint(n); i++ {
		occ := occupancySubset(i, bitSquares)
		idx := magicIndex(occ, magic, shift)
		table[idx] = rays(sq, occ)
	}
}

func magicIndex(occ Bitboard, magic uint64, shift uint) uint64 {
	return (uint64(occ) * magic) >> shift
}

// occupancySubset returns the subset of bits (indexed by bitSquares) selected by index.
func occupancySubset(index int, bitSquares []Square) Bitboard {
	var occ Bitboard
	for i, sq := range bitSquares {
		if index&(1<<uint(i)) != 0 {
			occ |= BitMask(sq)
		}
	}
	return occ
}

func toSquares(b Bitboard) []Square {
	var ret []Square
	for b != 0 {
		ret = append(ret, b.PopFirstSquare())
	}
	return ret
}

// cardinalRayAttacks/ordinalRayAttacks compute a slider's attack set by tracing each ray
// until (and including) the first blocker in occupied. Used only at init time to
// populate the magic tables; CardinalAttacks/OrdinalAttacks are the hot-path lookups.
func cardinalRayAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	attacks |= traceRay(sq, occupied, ShiftNorth)
	attacks |= traceRay(sq, occupied, ShiftSouth)
	attacks |= traceRay(sq, occupied, ShiftEast)
	attacks |= traceRay(sq, occupied, ShiftWest)
	return attacks
}

func ordinalRayAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	attacks |= traceRay(sq, occupied, func(b Bitboard) Bitboard { return ShiftNorth(ShiftEast(b)) })
	attacks |= traceRay(sq, occupied, func(b Bitboard) Bitboard { return ShiftNorth(ShiftWest(b)) })
	attacks |= traceRay(sq, occupied, func(b Bitboard) Bitboard { return ShiftSouth(ShiftEast(b)) })
	attacks |= traceRay(sq, occupied, func(b Bitboard) Bitboard { return ShiftSouth(ShiftWest(b)) })
	return attacks
}

func traceRay(sq Square, occupied Bitboard, step func(Bitboard) Bitboard) Bitboard {
	var attacks Bitboard
	bb := step(BitMask(sq))
	for bb != 0 {
		attacks |= bb
		if bb&occupied != 0 {
			break
		}
		bb = step(bb)
	}
	return attacks
}

// CardinalAttacks returns the squares a rook on sq attacks given the full board
// occupancy, stopping at (and including) the first blocker in each of the four
// directions.
func CardinalAttacks(sq Square, occupied Bitboard) Bitboard {
	blockers := occupied & CardinalBlockers[sq]
	idx := magicIndex(blockers, cardinalMagics[sq], cardinalShift)
	return cardinalAttacks[sq][idx]
}

// OrdinalAttacks returns the squares a bishop on sq attacks given the full board
// occupancy.
func OrdinalAttacks(sq Square, occupied Bitboard) Bitboard {
	blockers := occupied & OrdinalBlockers[sq]
	idx := magicIndex(blockers, ordinalMagics[sq], ordinalShift)
	return ordinalAttacks[sq][idx]
}
