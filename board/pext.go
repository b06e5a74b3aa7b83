package board

// Bit-extract/deposit engine for sliding piece attacks. Blocker bits
// are compressed to a dense index with pext; the stored attack set is
// kept compressed onto the square's ray bits and expanded with pdep.
// On amd64 with BMI2 the two operations are single instructions;
// everywhere else the software fallback below is used.

import (
	"fmt"
	"math/bits"
)

// pextEntry indexes the compressed attack table for a single square.
type pextEntry struct {
	mask   Bitboard // relevant occupancy mask, same as the magic mask
	offset uint32   // base index into pextTable
}

var (
	bishopPext [64]pextEntry
	rookPext   [64]pextEntry

	// pextTable stores each attack set compressed onto its square's
	// ray bits; rook rays have at most 14 squares, so uint16 fits.
	pextTable [moveTableSize]uint16
)

// Active pext/pdep implementations, swapped for the hardware versions
// once at startup when the CPU supports them.
var (
	pextFn = pextSoft
	pdepFn = pdepSoft
)

// pextSoft extracts the bits of x selected by mask, packed into the
// low bits of the result.
func pextSoft(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// pdepSoft deposits the low bits of x onto the set bit positions of mask.
func pdepSoft(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}

func initPextAttacks() {
	end := buildPextEntries(bishopPext[:], bishopMask, 0)
	if end != bishopTableSize {
		panic(fmt.Sprintf("board: bishop pext table is %d slots, want %d", end, bishopTableSize))
	}
	end = buildPextEntries(rookPext[:], rookMask, bishopTableSize)
	if end != moveTableSize {
		panic(fmt.Sprintf("board: rook pext table ends at %d, want %d", end, moveTableSize))
	}

	verifyPextBounds(bishopPext[:], "bishop")
	verifyPextBounds(rookPext[:], "rook")

	fillPextTable(bishopPext[:], bishopRayTable[:], bishopAttacksSlow)
	fillPextTable(rookPext[:], rookRayTable[:], rookAttacksSlow)
}

func buildPextEntries(entries []pextEntry, maskOf func(Square) Bitboard, base uint32) uint32 {
	offset := base
	for sq := A1; sq <= H8; sq++ {
		mask := maskOf(sq)
		entries[sq] = pextEntry{mask: mask, offset: offset}
		offset += 1 << mask.PopCount()
	}
	return offset
}

// verifyPextBounds proves that every index pext can produce stays
// inside pextTable. Extracting a full board gives the all-ones index
// (1<<popcount(mask))-1, the extremal case. A violation means broken
// generated tables and must stop the process.
func verifyPextBounds(entries []pextEntry, name string) {
	for sq := A1; sq <= H8; sq++ {
		e := &entries[sq]
		maxIndex := uint64(1)<<e.mask.PopCount() - 1
		if uint64(e.offset)+maxIndex >= uint64(len(pextTable)) {
			panic(fmt.Sprintf("board: %s pext entry for %v indexes out of bounds", name, sq))
		}
	}
}

func fillPextTable(entries []pextEntry, rays []Bitboard, slow func(Square, Bitboard) Bitboard) {
	for sq := A1; sq <= H8; sq++ {
		e := &entries[sq]
		count := uint32(1) << e.mask.PopCount()
		for idx := uint32(0); idx < count; idx++ {
			occ := Bitboard(pdepSoft(uint64(idx), uint64(e.mask)))
			attack := slow(sq, occ)
			pextTable[e.offset+idx] = uint16(pextSoft(uint64(attack), uint64(rays[sq])))
		}
	}
}

// RookAttacksPext returns rook attacks via the bit-extract/deposit
// engine. Bit-for-bit identical to RookAttacksMagic.
func RookAttacksPext(sq Square, blockers Bitboard) Bitboard {
	e := &rookPext[sq]
	idx := pextFn(uint64(blockers), uint64(e.mask))
	return Bitboard(pdepFn(uint64(pextTable[e.offset+uint32(idx)]), uint64(rookRayTable[sq])))
}

// BishopAttacksPext returns bishop attacks via the bit-extract/deposit
// engine. Bit-for-bit identical to BishopAttacksMagic.
func BishopAttacksPext(sq Square, blockers Bitboard) Bitboard {
	e := &bishopPext[sq]
	idx := pextFn(uint64(blockers), uint64(e.mask))
	return Bitboard(pdepFn(uint64(pextTable[e.offset+uint32(idx)]), uint64(bishopRayTable[sq])))
}
