package board

// Zobrist key tables for position hashing. The keys are one more set
// of generated read-only tables: a fixed-seed PRNG makes them
// reproducible across runs and platforms. This package only exposes
// the constants; combining them into position hashes is the caller's
// business.

var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [16]uint64       // all castling-rights combinations
	zobristSideToMove uint64           // xored in when black is to move
)

func init() {
	initZobrist()
}

// xorshift64* PRNG, seeded once so the keys are stable.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x9D38E44D12C1B917)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for f := FileA; f <= FileH; f++ {
		zobristEnPassant[f] = rng.next()
	}

	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// ZobristPiece returns the key for a piece of a color on a square.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the key for an en passant file.
func ZobristEnPassant(f File) uint64 {
	return zobristEnPassant[f]
}

// ZobristCastling returns the key for a castling-rights combination.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr&AllCastling]
}

// ZobristSideToMove returns the key xored in when black is to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}
