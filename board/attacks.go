package board

// Pre-computed attack tables for non-sliding pieces and geometric
// queries. Everything here is populated once at init and read-only
// afterwards, so concurrent queries need no synchronization.

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square] capture squares
	pawnPushes    [2][64]Bitboard // [Color][Square] push targets, double included

	// Between and Line bitboards for geometric queries.
	betweenBB [64][64]Bitboard // squares strictly between two aligned squares
	lineBB    [64][64]Bitboard // full edge-to-edge line through two squares

	adjacentFileMasks [8]Bitboard
)

// Castling destination squares for both colors: c1, g1, c8, g8.
const castleMoves = Bitboard(1)<<C1 | Bitboard(1)<<G1 | Bitboard(1)<<C8 | Bitboard(1)<<G8

// Origin and landing ranks for two-square pawn advances.
const (
	pawnDoubleSource = bbRank2 | bbRank7
	pawnDoubleDest   = bbRank4 | bbRank5
)

func init() {
	initRays()
	initMagicAttacks()
	initPextAttacks()
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initBetweenBB()
	initLineBB()
	initAdjacentFiles()
	selectSliderEngine()
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		attacks := Empty
		attacks |= (bb << 17) & notFileA  // NNE
		attacks |= (bb << 15) & notFileH  // NNW
		attacks |= (bb >> 17) & notFileH  // SSW
		attacks |= (bb >> 15) & notFileA  // SSE
		attacks |= (bb << 10) & notFileAB // ENE
		attacks |= (bb << 6) & notFileGH  // WNW
		attacks |= (bb >> 10) & notFileGH // WSW
		attacks |= (bb >> 6) & notFileAB  // ESE

		knightAttacks[sq] = attacks
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		attacks := bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()

		kingAttacks[sq] = attacks
	}
}

func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()

		pawnPushes[White][sq] = bb.North()
		pawnPushes[Black][sq] = bb.South()
		if sq.Rank() == Rank2 {
			pawnPushes[White][sq] |= bb.North().North()
		}
		if sq.Rank() == Rank7 {
			pawnPushes[Black][sq] |= bb.South().South()
		}
	}
}

func initBetweenBB() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			f1, r1 := int(sq1.File()), int(sq1.Rank())
			f2, r2 := int(sq2.File()), int(sq2.Rank())

			df := sign(f2 - f1)
			dr := sign(r2 - r1)

			if df == 0 && dr == 0 {
				continue
			}
			if df != 0 && dr != 0 && abs(f2-f1) != abs(r2-r1) {
				continue // not on a diagonal
			}

			between := Empty
			for f, r := f1+df, r1+dr; f != f2 || r != r2; f, r = f+df, r+dr {
				between = between.Set(NewSquare(File(f), Rank(r)))
			}
			betweenBB[sq1][sq2] = between
		}
	}
}

func initLineBB() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			f1, r1 := int(sq1.File()), int(sq1.Rank())
			f2, r2 := int(sq2.File()), int(sq2.Rank())

			df := sign(f2 - f1)
			dr := sign(r2 - r1)

			if df == 0 && dr == 0 {
				continue
			}
			if df != 0 && dr != 0 && abs(f2-f1) != abs(r2-r1) {
				continue
			}

			line := Empty
			for f, r := f1, r1; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f-df, r-dr {
				line = line.Set(NewSquare(File(f), Rank(r)))
			}
			for f, r := f1+df, r1+dr; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+df, r+dr {
				line = line.Set(NewSquare(File(f), Rank(r)))
			}
			lineBB[sq1][sq2] = line
		}
	}
}

func initAdjacentFiles() {
	for f := FileA; f <= FileH; f++ {
		mask := fileMasks[f]
		adjacentFileMasks[f] = mask.East() | mask.West()
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// RookRays returns the full unobstructed rook ray set for a square.
func RookRays(sq Square) Bitboard {
	return rookRayTable[sq]
}

// BishopRays returns the full unobstructed bishop ray set for a square.
func BishopRays(sq Square) Bitboard {
	return bishopRayTable[sq]
}

// PawnAttacks returns the capture squares for a pawn of the given
// color, intersected with blockers: a capture destination is only
// returned when actually occupied.
func PawnAttacks(sq Square, c Color, blockers Bitboard) Bitboard {
	return pawnAttacks[c][sq] & blockers
}

// PawnQuiets returns the non-capture push squares for a pawn of the
// given color. The square directly ahead is probed through a wrapping
// step used purely as a bit index; when it is occupied no push is
// possible at all, double push included.
func PawnQuiets(sq Square, c Color, blockers Bitboard) Bitboard {
	if blockers.IsSet(sq.ForwardWrap(c)) {
		return Empty
	}
	return pawnPushes[c][sq] &^ blockers
}

// PawnMoves returns all pawn moves for a square: captures and quiets
// combined with XOR, since a square is never both a capture and a
// quiet destination for the same pawn.
func PawnMoves(sq Square, c Color, blockers Bitboard) Bitboard {
	return PawnAttacks(sq, c, blockers) ^ PawnQuiets(sq, c, blockers)
}

// CastleMoves returns the castling destination squares for both colors.
func CastleMoves() Bitboard {
	return castleMoves
}

// Between returns the squares strictly between two aligned squares,
// empty if unaligned or adjacent. Symmetric in its arguments.
func Between(sq1, sq2 Square) Bitboard {
	return betweenBB[sq1][sq2]
}

// Line returns the full edge-to-edge line through two aligned squares,
// empty if unaligned. Symmetric in its arguments.
func Line(sq1, sq2 Square) Bitboard {
	return lineBB[sq1][sq2]
}

// Aligned returns true if three squares share a rank, file or diagonal.
func Aligned(sq1, sq2, sq3 Square) bool {
	return lineBB[sq1][sq2].IsSet(sq3)
}

// RankMask returns the mask of all squares on a rank.
func RankMask(r Rank) Bitboard {
	return rankMasks[r]
}

// FileMask returns the mask of all squares on a file.
func FileMask(f File) Bitboard {
	return fileMasks[f]
}

// AdjacentFilesMask returns the squares on the one or two files next
// to a file.
func AdjacentFilesMask(f File) Bitboard {
	return adjacentFileMasks[f]
}

// PawnDoublePushSourceMask returns the origin ranks for two-square
// pawn advances (ranks 2 and 7).
func PawnDoublePushSourceMask() Bitboard {
	return pawnDoubleSource
}

// PawnDoublePushDestMask returns the landing ranks for two-square pawn
// advances (ranks 4 and 5).
func PawnDoublePushDestMask() Bitboard {
	return pawnDoubleDest
}
