//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"colorgrow/internal/app"
	"colorgrow/internal/core"
	_ "colorgrow/internal/sims/colorgrow"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, ok := factory(cfg.SimConfig()).(app.Sim)
	if !ok {
		log.Fatalf("sim %q has no color grid", cfg.Sim)
	}

	ctrl := app.NewController(sim, app.WithLogger(log.Default()))
	if err := ctrl.Reset(cfg.Seed); err != nil {
		log.Fatal(err)
	}

	game := app.New(ctrl, cfg.Scale, cfg.Delay, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("colorgrow: tree-structured color automaton")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
