package board

import "testing"

func bbOf(squares ...Square) Bitboard {
	b := Empty
	for _, sq := range squares {
		b = b.Set(sq)
	}
	return b
}

func TestRookAttacksOpenBoard(t *testing.T) {
	got := RookAttacks(D4, Empty)
	want := (FileMask(FileD) | RankMask(Rank4)) &^ SquareBB(D4)

	if got != want {
		t.Errorf("rook on d4, open board:\ngot\n%vwant\n%v", got, want)
	}
	if got.PopCount() != 14 {
		t.Errorf("rook on d4 should attack 14 squares, got %d", got.PopCount())
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	blockers := SquareBB(D6)
	got := RookAttacks(D4, blockers)
	want := bbOf(D1, D2, D3, D5, D6, A4, B4, C4, E4, F4, G4, H4)

	if got != want {
		t.Errorf("rook on d4, blocker d6:\ngot\n%vwant\n%v", got, want)
	}
	if got.IsSet(D7) || got.IsSet(D8) {
		t.Error("squares beyond the blocker must be excluded")
	}
	if !got.IsSet(D6) {
		t.Error("the first occupied square must be included")
	}
}

func TestBishopAttacksOpenBoard(t *testing.T) {
	got := BishopAttacks(A1, Empty)
	want := bbOf(B2, C3, D4, E5, F6, G7, H8)

	if got != want {
		t.Errorf("bishop on a1, open board:\ngot\n%vwant\n%v", got, want)
	}
}

func TestQueenAttacksIsRookPlusBishop(t *testing.T) {
	rng := newPRNG(0x51EE7)
	for i := 0; i < 64; i++ {
		sq := Square(i)
		blockers := Bitboard(rng.next())
		want := RookAttacks(sq, blockers) | BishopAttacks(sq, blockers)
		if got := QueenAttacks(sq, blockers); got != want {
			t.Fatalf("queen attacks mismatch on %v", sq)
		}
	}
}

// TestBlockingCorrectness checks both engines against a square-by-square
// ray walk over random occupancies: everything up to and including the
// first blocker, nothing beyond it.
func TestBlockingCorrectness(t *testing.T) {
	rng := newPRNG(0xA77AC4)
	for sq := A1; sq <= H8; sq++ {
		for i := 0; i < 200; i++ {
			blockers := Bitboard(rng.next() & rng.next())

			if got, want := RookAttacksMagic(sq, blockers), rookAttacksSlow(sq, blockers); got != want {
				t.Fatalf("rook magic on %v blockers=%#x:\ngot\n%vwant\n%v", sq, uint64(blockers), got, want)
			}
			if got, want := BishopAttacksMagic(sq, blockers), bishopAttacksSlow(sq, blockers); got != want {
				t.Fatalf("bishop magic on %v blockers=%#x:\ngot\n%vwant\n%v", sq, uint64(blockers), got, want)
			}
			if got, want := RookAttacksPext(sq, blockers), rookAttacksSlow(sq, blockers); got != want {
				t.Fatalf("rook pext on %v blockers=%#x:\ngot\n%vwant\n%v", sq, uint64(blockers), got, want)
			}
			if got, want := BishopAttacksPext(sq, blockers), bishopAttacksSlow(sq, blockers); got != want {
				t.Fatalf("bishop pext on %v blockers=%#x:\ngot\n%vwant\n%v", sq, uint64(blockers), got, want)
			}
		}
	}
}

func TestRayContainment(t *testing.T) {
	rng := newPRNG(0xC0117A1)
	for sq := A1; sq <= H8; sq++ {
		for i := 0; i < 100; i++ {
			blockers := Bitboard(rng.next())
			if atk := RookAttacks(sq, blockers); atk&^RookRays(sq) != 0 {
				t.Fatalf("rook attacks from %v escape the rays", sq)
			}
			if atk := BishopAttacks(sq, blockers); atk&^BishopRays(sq) != 0 {
				t.Fatalf("bishop attacks from %v escape the rays", sq)
			}
		}
	}
}

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{A1, bbOf(B3, C2)},
		{H8, bbOf(G6, F7)},
		{D4, bbOf(B3, B5, C2, C6, E2, E6, F3, F5)},
	}

	for _, tc := range tests {
		if got := KnightAttacks(tc.sq); got != tc.want {
			t.Errorf("knight on %v:\ngot\n%vwant\n%v", tc.sq, got, tc.want)
		}
	}
}

func TestKingAttacks(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{A1, bbOf(A2, B1, B2)},
		{E4, bbOf(D3, D4, D5, E3, E5, F3, F4, F5)},
		{H8, bbOf(G7, G8, H7)},
	}

	for _, tc := range tests {
		if got := KingAttacks(tc.sq); got != tc.want {
			t.Errorf("king on %v:\ngot\n%vwant\n%v", tc.sq, got, tc.want)
		}
	}
}

func TestPawnMovesE2(t *testing.T) {
	// Open board: single and double push.
	if got, want := PawnQuiets(E2, White, Empty), bbOf(E3, E4); got != want {
		t.Errorf("pawn e2 quiets open board:\ngot\n%vwant\n%v", got, want)
	}

	// Blocker directly ahead kills both pushes.
	if got := PawnQuiets(E2, White, SquareBB(E3)); got != Empty {
		t.Errorf("pawn e2 quiets with e3 blocked = %v, want empty", got)
	}

	// Blocker on the double-push square only kills the double push.
	if got, want := PawnQuiets(E2, White, SquareBB(E4)), bbOf(E3); got != want {
		t.Errorf("pawn e2 quiets with e4 blocked:\ngot\n%vwant\n%v", got, want)
	}

	// Captures only where victims stand.
	victims := bbOf(D3, F3)
	if got := PawnAttacks(E2, White, victims); got != victims {
		t.Errorf("pawn e2 attacks = %v, want d3+f3", got)
	}
	if got := PawnAttacks(E2, White, Empty); got != Empty {
		t.Errorf("pawn e2 attacks on empty board = %v, want empty", got)
	}
}

func TestPawnMovesBlack(t *testing.T) {
	if got, want := PawnQuiets(D7, Black, Empty), bbOf(D6, D5); got != want {
		t.Errorf("black pawn d7 quiets:\ngot\n%vwant\n%v", got, want)
	}
	victims := bbOf(C6, E6)
	if got := PawnAttacks(D7, Black, victims); got != victims {
		t.Errorf("black pawn d7 attacks = %v", got)
	}
}

// TestPawnExclusivity verifies that a square is never simultaneously a
// capture and a quiet destination, which is what licenses PawnMoves to
// combine them with XOR.
func TestPawnExclusivity(t *testing.T) {
	rng := newPRNG(0xFACADE)
	for sq := A1; sq <= H8; sq++ {
		for _, c := range []Color{White, Black} {
			for i := 0; i < 50; i++ {
				blockers := Bitboard(rng.next())
				attacks := PawnAttacks(sq, c, blockers)
				quiets := PawnQuiets(sq, c, blockers)
				if attacks&quiets != 0 {
					t.Fatalf("pawn %v %v overlap: attacks=%v quiets=%v", c, sq, attacks, quiets)
				}
				if got := PawnMoves(sq, c, blockers); got != attacks|quiets {
					t.Fatalf("PawnMoves(%v, %v) != attacks|quiets", sq, c)
				}
			}
		}
	}
}

func TestCastleMoves(t *testing.T) {
	if got, want := CastleMoves(), bbOf(C1, G1, C8, G8); got != want {
		t.Errorf("CastleMoves = %v, want c1 g1 c8 g8", got)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		a, b Square
		want Bitboard
	}{
		{A1, A8, bbOf(A2, A3, A4, A5, A6, A7)},
		{A1, B2, Empty},          // adjacent
		{A1, H8, bbOf(B2, C3, D4, E5, F6, G7)},
		{A1, B3, Empty},          // unaligned
		{C4, F4, bbOf(D4, E4)},
	}

	for _, tc := range tests {
		if got := Between(tc.a, tc.b); got != tc.want {
			t.Errorf("Between(%v, %v):\ngot\n%vwant\n%v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLine(t *testing.T) {
	if got, want := Line(A1, A8), FileMask(FileA); got != want {
		t.Errorf("Line(a1, a8):\ngot\n%vwant\n%v", got, want)
	}
	if got, want := Line(A1, H8), bbOf(A1, B2, C3, D4, E5, F6, G7, H8); got != want {
		t.Errorf("Line(a1, h8):\ngot\n%vwant\n%v", got, want)
	}
	if got := Line(A1, B3); got != Empty {
		t.Errorf("Line(a1, b3) = %v, want empty", got)
	}
}

func TestBetweenAndLineSymmetry(t *testing.T) {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			if Between(a, b) != Between(b, a) {
				t.Fatalf("Between(%v, %v) not symmetric", a, b)
			}
			if Line(a, b) != Line(b, a) {
				t.Fatalf("Line(%v, %v) not symmetric", a, b)
			}
		}
	}
}

func TestAligned(t *testing.T) {
	if !Aligned(A1, C3, E5) {
		t.Error("a1 c3 e5 should be aligned")
	}
	if Aligned(A1, C3, E4) {
		t.Error("a1 c3 e4 should not be aligned")
	}
}

func TestMasks(t *testing.T) {
	if RankMask(Rank4).PopCount() != 8 || FileMask(FileD).PopCount() != 8 {
		t.Error("rank/file masks should have 8 squares")
	}
	if got, want := AdjacentFilesMask(FileA), FileMask(FileB); got != want {
		t.Errorf("AdjacentFilesMask(a) = %v", got)
	}
	if got, want := AdjacentFilesMask(FileD), FileMask(FileC)|FileMask(FileE); got != want {
		t.Errorf("AdjacentFilesMask(d) = %v", got)
	}
	if got, want := PawnDoublePushSourceMask(), RankMask(Rank2)|RankMask(Rank7); got != want {
		t.Errorf("double push source = %v", got)
	}
	if got, want := PawnDoublePushDestMask(), RankMask(Rank4)|RankMask(Rank5); got != want {
		t.Errorf("double push dest = %v", got)
	}
}

func TestRaysMatchOpenBoardAttacks(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if RookRays(sq) != RookAttacks(sq, Empty) {
			t.Errorf("rook rays on %v differ from open-board attacks", sq)
		}
		if BishopRays(sq) != BishopAttacks(sq, Empty) {
			t.Errorf("bishop rays on %v differ from open-board attacks", sq)
		}
	}
}
