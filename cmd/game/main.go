package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Isle-Drifter/internal/assets"
	"github.com/Garsondee/Isle-Drifter/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var seed int64
	var tiledMap bool
	var winW, winH int

	flag.Int64Var(&seed, "seed", 0, "island seed (0 picks one from the clock)")
	flag.BoolVar(&tiledMap, "tiled", false, "load the embedded authored map instead of generating an island")
	flag.IntVar(&winW, "w", 1600, "window width")
	flag.IntVar(&winH, "h", 900, "window height")
	flag.Parse()

	tmxPath := ""
	if tiledMap {
		tmxPath = assets.IslandMap
	}
	g, err := game.New(seed, tmxPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Isle Drifter")
	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
