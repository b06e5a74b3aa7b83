// magicgen searches for magic multipliers offline and emits the
// generated board/magic_numbers.go table source. The runtime never
// searches magics; this tool is the build-time half of the scheme.
//
// Found magics are cached in a local BadgerDB so interrupted or
// repeated runs skip squares that already have a verified multiplier.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math/bits"
	"math/rand"
	"os"
	"time"

	"github.com/hailam/magicmoves/internal/magicstore"
)

var (
	outPath  = flag.String("out", "board/magic_numbers.go", "output file for the generated tables")
	piece    = flag.String("piece", "both", "which tables to search: rook, bishop or both")
	maxTries = flag.Uint64("tries", 100_000_000, "maximum candidates per square")
	seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed for the search")
	noCache  = flag.Bool("nocache", false, "skip the on-disk search cache")
)

type sliderSpec struct {
	name   string
	deltas [4][2]int // (rank, file) steps
}

var (
	rookSpec   = sliderSpec{"rook", [4][2]int{{+1, 0}, {-1, 0}, {0, +1}, {0, -1}}}
	bishopSpec = sliderSpec{"bishop", [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}}
)

func main() {
	flag.Parse()

	var store *magicstore.Store
	if !*noCache {
		dir, err := magicstore.DefaultDir()
		if err == nil {
			store, err = magicstore.Open(dir)
		}
		if err != nil {
			log.Printf("Warning: search cache unavailable: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	rng := rand.New(rand.NewSource(*seed))

	var rookMagics, bishopMagics [64]uint64
	switch *piece {
	case "rook":
		rookMagics = searchAll(rookSpec, rng, store)
		bishopMagics = searchAll(bishopSpec, rng, store) // still needed for a complete file
	case "bishop":
		bishopMagics = searchAll(bishopSpec, rng, store)
		rookMagics = searchAll(rookSpec, rng, store)
	case "both":
		bishopMagics = searchAll(bishopSpec, rng, store)
		rookMagics = searchAll(rookSpec, rng, store)
	default:
		log.Fatalf("unknown -piece %q", *piece)
	}

	src, err := render(&bishopMagics, &rookMagics)
	if err != nil {
		log.Fatalf("rendering tables: %v", err)
	}
	if err := os.WriteFile(*outPath, src, 0644); err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}
	log.Printf("wrote %s", *outPath)
}

// searchAll finds (or loads from the cache) a verified magic for every
// square of one slider.
func searchAll(spec sliderSpec, rng *rand.Rand, store *magicstore.Store) [64]uint64 {
	var magics [64]uint64

	for sq := 0; sq < 64; sq++ {
		mask := relevantMask(sq, &spec.deltas)
		subsets, attacks := enumerateSubsets(sq, mask, &spec.deltas)

		if store != nil {
			if cached, err := store.Load(spec.name, sq); err != nil {
				log.Printf("Warning: cache read failed for %s/%d: %v", spec.name, sq, err)
			} else if cached != nil && perfectHash(cached.Magic, mask, subsets, attacks) {
				magics[sq] = cached.Magic
				continue
			}
		}

		magic, tries := searchSquare(mask, subsets, attacks, rng)
		if magic == 0 {
			log.Fatalf("no %s magic found for square %d in %d tries", spec.name, sq, *maxTries)
		}
		magics[sq] = magic
		log.Printf("%s %2d: %#016x after %d tries", spec.name, sq, magic, tries)

		if store != nil {
			entry := &magicstore.Entry{
				Magic: magic,
				Bits:  bits.OnesCount64(mask),
				Tries: tries,
				Found: time.Now().UTC(),
			}
			if err := store.Save(spec.name, sq, entry); err != nil {
				log.Printf("Warning: cache write failed for %s/%d: %v", spec.name, sq, err)
			}
		}
	}

	return magics
}

// searchSquare tries sparse random multipliers until one perfectly
// hashes every blocker subset at shift 64-popcount(mask).
func searchSquare(mask uint64, subsets, attacks []uint64, rng *rand.Rand) (uint64, uint64) {
	for try := uint64(1); try <= *maxTries; try++ {
		// Sparse candidates succeed far more often.
		magic := rng.Uint64() & rng.Uint64() & rng.Uint64()
		// Quick reject: the hash needs entropy in the top bits.
		if bits.OnesCount64((mask*magic)&0xFF00_0000_0000_0000) < 6 {
			continue
		}
		if perfectHash(magic, mask, subsets, attacks) {
			return magic, try
		}
	}
	return 0, *maxTries
}

// perfectHash reports whether magic maps every subset to a distinct
// slot, allowing constructive collisions (same attack set).
func perfectHash(magic, mask uint64, subsets, attacks []uint64) bool {
	shift := uint(64 - bits.OnesCount64(mask))
	table := make([]uint64, len(subsets))
	for i, subset := range subsets {
		idx := (subset * magic) >> shift
		if table[idx] != 0 && table[idx] != attacks[i] {
			return false
		}
		table[idx] = attacks[i]
	}
	return true
}

// enumerateSubsets lists every blocker subset of mask with its attack
// set, via the Carry-Rippler trick.
func enumerateSubsets(sq int, mask uint64, deltas *[4][2]int) (subsets, attacks []uint64) {
	for subset := uint64(0); ; {
		subsets = append(subsets, subset)
		attacks = append(attacks, slidingAttacks(sq, deltas, subset))
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return subsets, attacks
}

// relevantMask strips the ray squares whose occupancy cannot change
// the attack set: the border, except when the slider sits on it.
func relevantMask(sq int, deltas *[4][2]int) uint64 {
	const (
		fileA = 0x0101010101010101
		fileH = fileA << 7
		rank1 = 0xFF
		rank8 = uint64(rank1) << 56
	)
	border := (rank1 | rank8) &^ (uint64(rank1) << (8 * uint(sq/8)))
	border |= (fileA | fileH) &^ (uint64(fileA) << uint(sq%8))
	return slidingAttacks(sq, deltas, 0) &^ border
}

func slidingAttacks(sq int, deltas *[4][2]int, occupied uint64) uint64 {
	var attacks uint64
	rank, file := sq/8, sq%8
	for _, d := range deltas {
		for r, f := rank+d[0], file+d[1]; r >= 0 && r <= 7 && f >= 0 && f <= 7; r, f = r+d[0], f+d[1] {
			bit := uint64(1) << uint(r*8+f)
			attacks |= bit
			if occupied&bit != 0 {
				break
			}
		}
	}
	return attacks
}

func render(bishop, rook *[64]uint64) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by cmd/magicgen. DO NOT EDIT.\n\n")
	buf.WriteString("package board\n\n")
	buf.WriteString("// Magic multipliers per square, found by offline random search. Each\n")
	buf.WriteString("// perfectly hashes every blocker subset of the square's relevant mask\n")
	buf.WriteString("// at shift 64-popcount(mask).\n\n")
	writeArray(&buf, "bishopMagicNumbers", bishop)
	buf.WriteString("\n")
	writeArray(&buf, "rookMagicNumbers", rook)
	return format.Source(buf.Bytes())
}

func writeArray(buf *bytes.Buffer, name string, magics *[64]uint64) {
	fmt.Fprintf(buf, "var %s = [64]uint64{\n", name)
	for row := 0; row < 16; row++ {
		buf.WriteString("\t")
		for col := 0; col < 4; col++ {
			fmt.Fprintf(buf, "0x%016X, ", magics[row*4+col])
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
}
