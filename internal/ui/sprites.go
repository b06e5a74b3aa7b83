package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/magicmoves/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages the piece and blocker sprites.
type SpriteManager struct {
	pieces      map[board.PieceType]*ebiten.Image
	blocker     *ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with sprites of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.PieceType]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadSprites()
	return sm
}

// pieceFiles maps piece types to their asset file paths. The explorer
// shows one piece at a time, so a single (white) sprite set suffices.
var pieceFiles = map[board.PieceType]string{
	board.Pawn:   "assets/pieces/wP.svg",
	board.Knight: "assets/pieces/wN.svg",
	board.Bishop: "assets/pieces/wB.svg",
	board.Rook:   "assets/pieces/wR.svg",
	board.Queen:  "assets/pieces/wQ.svg",
	board.King:   "assets/pieces/wK.svg",
}

const blockerFile = "assets/pieces/blocker.svg"

// loadSprites rasterizes all embedded SVG assets.
func (sm *SpriteManager) loadSprites() {
	for pt, path := range pieceFiles {
		if img := sm.rasterize(path); img != nil {
			sm.pieces[pt] = img
		}
	}
	sm.blocker = sm.rasterize(blockerFile)
}

// rasterize renders one SVG asset at renderScale times the display size.
func (sm *SpriteManager) rasterize(path string) *ebiten.Image {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read asset %s: %v", path, err)
		return nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to parse SVG %s: %v", path, err)
		return nil
	}

	renderSize := int(float64(sm.size) * sm.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	return ebiten.NewImageFromImage(rgba)
}

// DrawPieceAt draws the sprite for a piece type at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, pt board.PieceType, x, y int) {
	sm.drawSprite(screen, sm.pieces[pt], x, y)
}

// DrawBlockerAt draws the blocker marker at the given pixel coordinates.
func (sm *SpriteManager) DrawBlockerAt(screen *ebiten.Image, x, y int) {
	sm.drawSprite(screen, sm.blocker, x, y)
}

func (sm *SpriteManager) drawSprite(screen, sprite *ebiten.Image, x, y int) {
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of the sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
