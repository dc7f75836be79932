// Command flock-server runs the flock at a fixed tick rate and streams snapshots
// to websocket clients on /ws.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/cli"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/stream"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

func main() {
	fs := flag.NewFlagSet("flock-server", flag.ExitOnError)
	flags := cli.NewFlags(fs)
	addr := fs.String("addr", ":8080", "listen address")
	tps := fs.Int("tps", 30, "ticks per second")
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Config(fs)
	if err != nil {
		log.Fatal(err)
	}
	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := flags.Logger()
	sim, err := simulation.Start(ctx, cfg, flags.Track, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer sim.Stop(context.Background())

	hub := stream.NewHub(sim, logger)
	go hub.Run(ctx, sim.Snapshots())

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(*tps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := sim.Tick(ctx, 1); err != nil {
					logger.Errorf("tick: %v", err)
				}
			}
		}
	}()

	srv := &http.Server{Addr: *addr, Handler: hub.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Server started at http://localhost%s (ws: /ws, snapshot: /snapshot)", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http serve error: %v", err)
	}
}
