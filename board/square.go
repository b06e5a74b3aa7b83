// Package board provides move-generation primitives for a chess rules
// engine: a 64-bit board-square set and O(1) attack lookups for every
// piece type, backed by magic bitboards with a BMI2 fast path.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// Rank represents a board rank (0=rank 1 .. 7=rank 8).
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// File represents a board file (0=file a .. 7=file h).
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Up returns the next rank toward rank 8, wrapping rank 8 to rank 1.
func (r Rank) Up() Rank {
	return (r + 1) & 7
}

// Down returns the next rank toward rank 1, wrapping rank 1 to rank 8.
func (r Rank) Down() Rank {
	return (r - 1) & 7
}

// Right returns the next file toward file h, wrapping file h to file a.
func (f File) Right() File {
	return (f + 1) & 7
}

// Left returns the next file toward file a, wrapping file a to file h.
func (f File) Left() File {
	return (f - 1) & 7
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// NewSquare creates a square from file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)<<3 ^ Square(f)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(File(file), Rank(rank)), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// Up returns the square one rank up, or false on the last rank.
func (sq Square) Up() (Square, bool) {
	if sq.Rank() == Rank8 {
		return NoSquare, false
	}
	return sq + 8, true
}

// Down returns the square one rank down, or false on the first rank.
func (sq Square) Down() (Square, bool) {
	if sq.Rank() == Rank1 {
		return NoSquare, false
	}
	return sq - 8, true
}

// Left returns the square one file toward file a, or false on file a.
func (sq Square) Left() (Square, bool) {
	if sq.File() == FileA {
		return NoSquare, false
	}
	return sq - 1, true
}

// Right returns the square one file toward file h, or false on file h.
func (sq Square) Right() (Square, bool) {
	if sq.File() == FileH {
		return NoSquare, false
	}
	return sq + 1, true
}

// Forward returns the square one rank ahead from c's point of view,
// or false past the board edge.
func (sq Square) Forward(c Color) (Square, bool) {
	if c == White {
		return sq.Up()
	}
	return sq.Down()
}

// Backward returns the square one rank behind from c's point of view,
// or false past the board edge.
func (sq Square) Backward(c Color) (Square, bool) {
	if c == White {
		return sq.Down()
	}
	return sq.Up()
}

// Wrapping navigation. A wrapped result is a valid table index but not
// a real neighbor on the board; callers must only use it to probe
// board-shaped tables, never hand it out as a position.

// UpWrap returns the square one rank up, wrapping rank 8 to rank 1.
func (sq Square) UpWrap() Square {
	return NewSquare(sq.File(), sq.Rank().Up())
}

// DownWrap returns the square one rank down, wrapping rank 1 to rank 8.
func (sq Square) DownWrap() Square {
	return NewSquare(sq.File(), sq.Rank().Down())
}

// LeftWrap returns the square one file left, wrapping file a to file h.
func (sq Square) LeftWrap() Square {
	return NewSquare(sq.File().Left(), sq.Rank())
}

// RightWrap returns the square one file right, wrapping file h to file a.
func (sq Square) RightWrap() Square {
	return NewSquare(sq.File().Right(), sq.Rank())
}

// ForwardWrap returns the square one rank ahead from c's point of
// view, wrapping around the board edge.
func (sq Square) ForwardWrap(c Color) Square {
	if c == White {
		return sq.UpWrap()
	}
	return sq.DownWrap()
}

// BackwardWrap returns the square one rank behind from c's point of
// view, wrapping around the board edge.
func (sq Square) BackwardWrap(c Color) Square {
	if c == White {
		return sq.DownWrap()
	}
	return sq.UpWrap()
}
