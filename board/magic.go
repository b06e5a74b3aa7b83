package board

// Magic bitboard engine for sliding piece attacks. Offline-searched
// multipliers (see cmd/magicgen) hash masked blocker patterns into a
// shared flat attack table.

import "fmt"

// magicEntry holds the multiply-shift hashing data for a single square.
type magicEntry struct {
	mask   Bitboard // relevant occupancy mask (excludes non-blocking edges)
	magic  uint64   // magic multiplier
	shift  uint8    // bits to shift right (64 - popcount(mask))
	offset uint32   // base index into moveTable
}

const (
	bishopTableSize = 5248
	rookTableSize   = 102400
	moveTableSize   = bishopTableSize + rookTableSize
)

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry

	// moveTable is shared by both sliders: bishop slots first,
	// rook slots after. Populated once, read-only afterwards.
	moveTable [moveTableSize]Bitboard

	// Unobstructed rays per square.
	bishopRayTable [64]Bitboard
	rookRayTable   [64]Bitboard
)

// Slider step deltas as (rank, file) pairs.
var (
	rookDeltas   = [4][2]int{{+1, 0}, {-1, 0}, {0, +1}, {0, -1}}
	bishopDeltas = [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}
)

// slidingAttacksRef walks rays square by square, stopping at the first
// occupied square (inclusive). Used for table construction and as the
// reference in tests, never on the query path.
func slidingAttacksRef(sq Square, deltas *[4][2]int, occupied Bitboard) Bitboard {
	attacks := Empty
	rank, file := int(sq.Rank()), int(sq.File())
	for _, d := range deltas {
		for r, f := rank+d[0], file+d[1]; r >= 0 && r <= 7 && f >= 0 && f <= 7; r, f = r+d[0], f+d[1] {
			s := NewSquare(File(f), Rank(r))
			attacks = attacks.Set(s)
			if occupied.IsSet(s) {
				break
			}
		}
	}
	return attacks
}

func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacksRef(sq, &rookDeltas, occupied)
}

func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacksRef(sq, &bishopDeltas, occupied)
}

func initRays() {
	for sq := A1; sq <= H8; sq++ {
		rookRayTable[sq] = rookAttacksSlow(sq, Empty)
		bishopRayTable[sq] = bishopAttacksSlow(sq, Empty)
	}
}

// relevantMask returns the blocker mask for a slider on sq: the ray
// squares whose occupancy can change the attack set. Border squares
// never block anything beyond themselves, so they are stripped unless
// the slider sits on that border itself. Trick source: stockfish.
func relevantMask(sq Square, rays Bitboard) Bitboard {
	border := (bbRank1 | bbRank8) &^ rankMasks[sq.Rank()]
	border |= (bbFileA | bbFileH) &^ fileMasks[sq.File()]
	return rays &^ border
}

func rookMask(sq Square) Bitboard {
	return relevantMask(sq, rookRayTable[sq])
}

func bishopMask(sq Square) Bitboard {
	return relevantMask(sq, bishopRayTable[sq])
}

func initMagicAttacks() {
	end := buildMagicEntries(bishopMagics[:], &bishopMagicNumbers, bishopMask, 0)
	if end != bishopTableSize {
		panic(fmt.Sprintf("board: bishop magic table is %d slots, want %d", end, bishopTableSize))
	}
	end = buildMagicEntries(rookMagics[:], &rookMagicNumbers, rookMask, bishopTableSize)
	if end != moveTableSize {
		panic(fmt.Sprintf("board: rook magic table ends at %d, want %d", end, moveTableSize))
	}

	// Prove bounds before the table is populated or queried.
	verifyMagicBounds(bishopMagics[:], "bishop")
	verifyMagicBounds(rookMagics[:], "rook")

	fillMoveTable(bishopMagics[:], bishopAttacksSlow)
	fillMoveTable(rookMagics[:], rookAttacksSlow)
}

func buildMagicEntries(entries []magicEntry, magics *[64]uint64, maskOf func(Square) Bitboard, base uint32) uint32 {
	offset := base
	for sq := A1; sq <= H8; sq++ {
		mask := maskOf(sq)
		bits := mask.PopCount()
		entries[sq] = magicEntry{
			mask:   mask,
			magic:  magics[sq],
			shift:  uint8(64 - bits),
			offset: offset,
		}
		offset += 1 << bits
	}
	return offset
}

// verifyMagicBounds proves that every index the multiply-shift hash
// can produce stays inside moveTable. Multiplying by the full mask is
// the extremal case for this hash, so checking it covers every blocker
// subset. A violation means the generated tables are broken and the
// process must not come up.
func verifyMagicBounds(entries []magicEntry, name string) {
	for sq := A1; sq <= H8; sq++ {
		m := &entries[sq]
		maxIndex := (m.magic * uint64(m.mask)) >> m.shift
		if uint64(m.offset)+maxIndex >= uint64(len(moveTable)) {
			panic(fmt.Sprintf("board: %s magic for %v indexes out of bounds", name, sq))
		}
	}
}

func fillMoveTable(entries []magicEntry, slow func(Square, Bitboard) Bitboard) {
	for sq := A1; sq <= H8; sq++ {
		m := &entries[sq]
		// Carry-Rippler trick to enumerate all subsets of the mask.
		for subset := Bitboard(0); ; {
			idx := (uint64(subset) * m.magic) >> m.shift
			moveTable[m.offset+uint32(idx)] = slow(sq, subset)
			subset = (subset - m.mask) & m.mask
			if subset == 0 {
				break
			}
		}
	}
}

// RookAttacksMagic returns rook attacks via the portable
// multiply-shift engine.
func RookAttacksMagic(sq Square, blockers Bitboard) Bitboard {
	m := &rookMagics[sq]
	idx := (uint64(blockers&m.mask) * m.magic) >> m.shift
	// Table slots can be shared between blocker patterns; the ray
	// intersection trims any over-inclusive bits.
	return moveTable[m.offset+uint32(idx)] & rookRayTable[sq]
}

// BishopAttacksMagic returns bishop attacks via the portable
// multiply-shift engine.
func BishopAttacksMagic(sq Square, blockers Bitboard) Bitboard {
	m := &bishopMagics[sq]
	idx := (uint64(blockers&m.mask) * m.magic) >> m.shift
	return moveTable[m.offset+uint32(idx)] & bishopRayTable[sq]
}
