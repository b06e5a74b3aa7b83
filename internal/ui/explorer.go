// Package ui implements the interactive attack-set explorer using
// Ebitengine: pick a piece and a square, click blockers onto the
// board, and watch the attack set update.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/magicmoves/board"
)

// Screen layout constants.
const (
	tileSize  = 80
	margin    = 24
	hudHeight = 88

	ScreenWidth  = margin*2 + tileSize*8
	ScreenHeight = margin*2 + tileSize*8 + hudHeight
)

var (
	lightSquare  = color.RGBA{R: 0xF0, G: 0xD9, B: 0xB5, A: 0xFF}
	darkSquare   = color.RGBA{R: 0xB5, G: 0x88, B: 0x63, A: 0xFF}
	attackTint   = color.RGBA{R: 0x46, G: 0xB4, B: 0x5A, A: 0x90}
	originTint   = color.RGBA{R: 0x3C, G: 0x78, B: 0xD8, A: 0x70}
	background   = color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xFF}
	hudTextColor = color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
)

// Game is the explorer state: one piece on one square plus a set of
// blockers, everything else derived per frame.
type Game struct {
	piece    board.PieceType
	color    board.Color
	origin   board.Square
	blockers board.Bitboard
	sprites  *SpriteManager
}

// NewGame creates the explorer with a rook on d4 and an empty board.
func NewGame() *Game {
	return &Game{
		piece:   board.Rook,
		color:   board.White,
		origin:  board.D4,
		sprites: NewSpriteManager(tileSize),
	}
}

// Update handles input: left click toggles a blocker, right click
// moves the piece, letter keys switch the piece type.
func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if sq, ok := squareAt(ebiten.CursorPosition()); ok && sq != g.origin {
			g.blockers = g.blockers.Toggle(sq)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if sq, ok := squareAt(ebiten.CursorPosition()); ok {
			g.origin = sq
			g.blockers = g.blockers.Clear(sq)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.piece = board.Rook
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.piece = board.Bishop
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.piece = board.Queen
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.piece = board.Knight
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.piece = board.King
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.piece = board.Pawn
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.color = g.color.Other()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.blockers = board.Empty
	}

	return nil
}

// attacks returns the current attack set for the selected piece.
func (g *Game) attacks() board.Bitboard {
	switch g.piece {
	case board.Rook:
		return board.RookAttacks(g.origin, g.blockers)
	case board.Bishop:
		return board.BishopAttacks(g.origin, g.blockers)
	case board.Queen:
		return board.QueenAttacks(g.origin, g.blockers)
	case board.Knight:
		return board.KnightAttacks(g.origin)
	case board.King:
		return board.KingAttacks(g.origin)
	case board.Pawn:
		return board.PawnMoves(g.origin, g.color, g.blockers)
	default:
		return board.Empty
	}
}

// Draw renders the board, highlights, pieces and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	attacks := g.attacks()

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := squareOrigin(sq)

		tile := lightSquare
		if (int(sq.File())+int(sq.Rank()))%2 == 0 {
			tile = darkSquare
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), tileSize, tileSize, tile, false)

		if attacks.IsSet(sq) {
			vector.DrawFilledRect(screen, float32(x), float32(y), tileSize, tileSize, attackTint, false)
		}
		if sq == g.origin {
			vector.DrawFilledRect(screen, float32(x), float32(y), tileSize, tileSize, originTint, false)
		}

		if g.blockers.IsSet(sq) {
			g.sprites.DrawBlockerAt(screen, x, y)
		}
	}

	ox, oy := squareOrigin(g.origin)
	g.sprites.DrawPieceAt(screen, g.piece, ox, oy)

	g.drawHUD(screen, attacks)
}

func (g *Game) drawHUD(screen *ebiten.Image, attacks board.Bitboard) {
	engine := "portable magic"
	if board.UsingPext() {
		engine = "BMI2 pext"
	}

	lines := []string{
		fmt.Sprintf("%s %s on %v  |  %d blockers  |  %d attacked squares",
			g.color, g.piece, g.origin, g.blockers.PopCount(), attacks.PopCount()),
		fmt.Sprintf("slider engine: %s", engine),
		"left click: toggle blocker   right click: move piece   R/B/Q/N/K/P: piece   C: color   X: clear",
	}

	face := GetRegularFace()
	if face == nil {
		return
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(margin, float64(margin+8*tileSize+16+i*22))
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, line, face, op)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// squareOrigin returns the top-left pixel of a square; rank 8 is drawn
// at the top.
func squareOrigin(sq board.Square) (int, int) {
	x := margin + int(sq.File())*tileSize
	y := margin + (7-int(sq.Rank()))*tileSize
	return x, y
}

// squareAt maps a pixel position back to a square.
func squareAt(px, py int) (board.Square, bool) {
	fx := (px - margin) / tileSize
	fy := (py - margin) / tileSize
	if px < margin || py < margin || fx < 0 || fx > 7 || fy < 0 || fy > 7 {
		return board.NoSquare, false
	}
	return board.NewSquare(board.File(fx), board.Rank(7-fy)), true
}
