// Command flock-headless runs the flock for a number of ticks without any display
// and prints the final snapshot as JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/cli"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

func main() {
	fs := flag.NewFlagSet("flock-headless", flag.ExitOnError)
	flags := cli.NewFlags(fs)
	ticks := fs.Int("ticks", 1000, "number of ticks to run")
	compact := fs.Bool("compact", false, "print the snapshot on a single line")
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Config(fs)
	if err != nil {
		log.Fatal(err)
	}

	// stdout carries the snapshot, logs go to stderr
	logger := golog.New(golog.WarningLevel, os.Stderr)
	if flags.Verbose {
		logger = golog.New(golog.DebugLevel, os.Stderr)
	}

	engine, err := flock.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < flags.Track && i < engine.Len(); i++ {
		if err := engine.SetTracked(flock.AgentID(i), true); err != nil {
			log.Fatal(err)
		}
	}
	for _, w := range cfg.Warnings() {
		logger.Warnf("config: %s", w)
	}

	start := time.Now()
	for range *ticks {
		engine.Tick()
	}
	logger.Debugf("%d ticks of %d agents in %s", engine.Ticks(), engine.Len(), time.Since(start))

	opts := protojson.MarshalOptions{}
	if !*compact {
		opts.Multiline = true
		opts.Indent = "  "
	}
	b, err := opts.Marshal(flock.Snapshot(engine, uuid.NewString()))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(b))
}
