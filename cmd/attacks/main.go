// attacks prints attack-set diagrams for a piece on a square, given an
// optional list of blocker squares. Handy for eyeballing the tables
// and for comparing the two slider engines.
//
// Usage:
//
//	attacks [-engine auto|magic|pext] [-color white|black] <piece> <square> [blockers]
//
//	attacks rook d4 d6,f4
//	attacks -color black pawn d7 c6,e6
//	attacks -engine pext bishop a1
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hailam/magicmoves/board"
)

var (
	engine    = flag.String("engine", "auto", "slider engine: auto, magic or pext")
	colorName = flag.String("color", "white", "pawn color: white or black")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: attacks [-engine auto|magic|pext] [-color white|black] <piece> <square> [blockers]")
		os.Exit(2)
	}

	sq, err := board.ParseSquare(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}

	blockers := board.Empty
	if flag.NArg() > 2 {
		blockers, err = parseSquares(flag.Arg(2))
		if err != nil {
			log.Fatal(err)
		}
	}

	color := board.White
	switch *colorName {
	case "white":
	case "black":
		color = board.Black
	default:
		log.Fatalf("unknown color %q", *colorName)
	}

	rook, bishop, err := sliderEngines(*engine)
	if err != nil {
		log.Fatal(err)
	}

	var attacks board.Bitboard
	switch strings.ToLower(flag.Arg(0)) {
	case "rook", "r":
		attacks = rook(sq, blockers)
	case "bishop", "b":
		attacks = bishop(sq, blockers)
	case "queen", "q":
		attacks = rook(sq, blockers) | bishop(sq, blockers)
	case "knight", "n":
		attacks = board.KnightAttacks(sq)
	case "king", "k":
		attacks = board.KingAttacks(sq)
	case "pawn", "p":
		attacks = board.PawnMoves(sq, color, blockers)
	default:
		log.Fatalf("unknown piece %q", flag.Arg(0))
	}

	if blockers != board.Empty {
		fmt.Printf("blockers:\n%v\n", blockers)
	}
	fmt.Printf("attacks from %v:\n%v\n", sq, attacks)
	fmt.Printf("%d squares: %v\n", attacks.PopCount(), attacks.Squares())
}

func sliderEngines(name string) (rook, bishop func(board.Square, board.Bitboard) board.Bitboard, err error) {
	switch name {
	case "auto":
		return board.RookAttacks, board.BishopAttacks, nil
	case "magic":
		return board.RookAttacksMagic, board.BishopAttacksMagic, nil
	case "pext":
		return board.RookAttacksPext, board.BishopAttacksPext, nil
	default:
		return nil, nil, fmt.Errorf("unknown engine %q", name)
	}
}

func parseSquares(list string) (board.Bitboard, error) {
	b := board.Empty
	for _, name := range strings.Split(list, ",") {
		sq, err := board.ParseSquare(strings.TrimSpace(name))
		if err != nil {
			return board.Empty, err
		}
		b = b.Set(sq)
	}
	return b, nil
}
