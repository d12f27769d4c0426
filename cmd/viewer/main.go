//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"metablob/internal/app"
	"metablob/internal/core"
	_ "metablob/internal/shapes/cellular"
	_ "metablob/internal/shapes/metaball"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Shapes()[cfg.Shape]
	if !ok {
		log.Fatalf("unknown shape %q (available: %v)", cfg.Shape, core.ShapeNames())
	}

	shape := factory(cfg.ShapeConfig())
	game := app.New(shape, cfg.Scale, cfg.StartSeed(), cfg.Rate)
	size := shape.Size()

	ebiten.SetWindowTitle("metablob: " + shape.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
