// magicmoves - an interactive attack-set explorer built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/magicmoves/internal/ui"
)

func main() {
	game := ui.NewGame()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("MagicMoves Explorer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
