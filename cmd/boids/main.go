package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/cli"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

func main() {
	fs := flag.NewFlagSet("boids", flag.ExitOnError)
	flags := cli.NewFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Config(fs)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	sim, err := simulation.Start(ctx, cfg, flags.Track, flags.Logger())
	if err != nil {
		log.Fatal(err)
	}
	defer sim.Stop(ctx)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	if err := ebiten.RunGame(simulation.NewGame(ctx, sim, cfg)); err != nil {
		log.Fatal(err)
	}
}
