package board

// Slider engine selection. Exactly one of the two engines is bound to
// the exported lookups at init time; the query path never branches on
// CPU features.

import "fmt"

var (
	rookAttackFn   = RookAttacksMagic
	bishopAttackFn = BishopAttacksMagic

	pextSelected bool
)

// selectSliderEngine binds the fastest engine the CPU supports. The
// bit-extract engine is only enabled after it has been checked against
// the multiply-shift engine square by square.
func selectSliderEngine() {
	if !hasFastPext() {
		return
	}
	enableFastPext()
	verifyEngineAgreement()
	rookAttackFn, bishopAttackFn = RookAttacksPext, BishopAttacksPext
	pextSelected = true
}

// verifyEngineAgreement checks that both engines return identical
// attack sets for every square over empty, full, exactly-mask and
// pseudo-random blocker boards. Disagreement means one of the
// generated table sets is broken, which is fatal.
func verifyEngineAgreement() {
	rng := newPRNG(0xB10CBEA7DECADE01)
	for sq := A1; sq <= H8; sq++ {
		boards := [3]Bitboard{Empty, Universe, rookMagics[sq].mask | bishopMagics[sq].mask}
		for _, blockers := range boards {
			compareEngines(sq, blockers)
		}
		for i := 0; i < 32; i++ {
			compareEngines(sq, Bitboard(rng.next()))
		}
	}
}

func compareEngines(sq Square, blockers Bitboard) {
	if RookAttacksMagic(sq, blockers) != RookAttacksPext(sq, blockers) {
		panic(fmt.Sprintf("board: rook engines disagree on %v blockers=%#x", sq, uint64(blockers)))
	}
	if BishopAttacksMagic(sq, blockers) != BishopAttacksPext(sq, blockers) {
		panic(fmt.Sprintf("board: bishop engines disagree on %v blockers=%#x", sq, uint64(blockers)))
	}
}

// UsingPext reports whether the hardware bit-extract engine is active.
func UsingPext() bool {
	return pextSelected
}

// RookAttacks returns the squares a rook on sq attacks given the
// occupied squares in blockers.
func RookAttacks(sq Square, blockers Bitboard) Bitboard {
	return rookAttackFn(sq, blockers)
}

// BishopAttacks returns the squares a bishop on sq attacks given the
// occupied squares in blockers.
func BishopAttacks(sq Square, blockers Bitboard) Bitboard {
	return bishopAttackFn(sq, blockers)
}

// QueenAttacks returns the squares a queen on sq attacks given the
// occupied squares in blockers.
func QueenAttacks(sq Square, blockers Bitboard) Bitboard {
	return rookAttackFn(sq, blockers) | bishopAttackFn(sq, blockers)
}
