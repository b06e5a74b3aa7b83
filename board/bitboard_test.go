package board

import "testing"

func TestBitboardBasicOps(t *testing.T) {
	b := Empty.Set(E4).Set(A1).Set(H8)

	if b.PopCount() != 3 {
		t.Errorf("PopCount = %d, want 3", b.PopCount())
	}
	if !b.IsSet(E4) || !b.IsSet(A1) || !b.IsSet(H8) {
		t.Error("expected squares not set")
	}
	if b.IsSet(E5) {
		t.Error("E5 should not be set")
	}

	b = b.Clear(E4)
	if b.IsSet(E4) {
		t.Error("E4 should be cleared")
	}

	b = b.Toggle(E4).Toggle(A1)
	if !b.IsSet(E4) || b.IsSet(A1) {
		t.Error("Toggle broken")
	}
}

func TestBitboardLSBMSB(t *testing.T) {
	b := SquareBB(C3) | SquareBB(F6)
	if b.LSB() != C3 {
		t.Errorf("LSB = %v, want C3", b.LSB())
	}
	if b.MSB() != F6 {
		t.Errorf("MSB = %v, want F6", b.MSB())
	}
	if Empty.LSB() != NoSquare || Empty.MSB() != NoSquare {
		t.Error("empty board should report NoSquare")
	}
}

func TestBitboardPopLSBOrder(t *testing.T) {
	b := SquareBB(B2) | SquareBB(D4) | SquareBB(G7)
	want := []Square{B2, D4, G7}
	for i, w := range want {
		if got := b.PopLSB(); got != w {
			t.Errorf("PopLSB #%d = %v, want %v", i, got, w)
		}
	}
	if !b.Empty() {
		t.Error("board should be empty after pops")
	}
}

func TestBitboardShiftEdges(t *testing.T) {
	if got := SquareBB(H4).East(); got != Empty {
		t.Errorf("H4.East() = %v, want empty", got)
	}
	if got := SquareBB(A4).West(); got != Empty {
		t.Errorf("A4.West() = %v, want empty", got)
	}
	if got := SquareBB(E4).North(); got != SquareBB(E5) {
		t.Errorf("E4.North() = %v", got)
	}
	if got := SquareBB(H4).NorthEast() | SquareBB(H4).SouthEast(); got != Empty {
		t.Error("east diagonals off file h should be empty")
	}
	if got := SquareBB(A4).NorthWest() | SquareBB(A4).SouthWest(); got != Empty {
		t.Error("west diagonals off file a should be empty")
	}
}

func TestBitboardSquares(t *testing.T) {
	b := SquareBB(A1) | SquareBB(E4) | SquareBB(H8)
	squares := b.Squares()
	if len(squares) != 3 {
		t.Fatalf("Squares len = %d", len(squares))
	}

	count := 0
	b.ForEach(func(sq Square) {
		if !b.IsSet(sq) {
			t.Errorf("ForEach visited unset square %v", sq)
		}
		count++
	})
	if count != 3 {
		t.Errorf("ForEach visited %d squares", count)
	}
}

func TestUniverseIsAllSquares(t *testing.T) {
	b := Empty
	for sq := A1; sq <= H8; sq++ {
		b = b.Set(sq)
	}
	if b != Universe {
		t.Errorf("union of all squares = %#x", uint64(b))
	}
}
