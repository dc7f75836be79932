// Package cli holds the command line options shared by the flock commands.
package cli

import (
	"flag"
	"fmt"
	"os"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// Flags are the options every command accepts. Flags given on the command line
// override the values of the configuration file.
type Flags struct {
	ConfigPath string
	Seed       uint64
	Population int
	Track      int
	Verbose    bool
}

// NewFlags registers the shared flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a JSON or TOML configuration file")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed, overrides the configuration")
	fs.IntVar(&f.Population, "population", 0, "number of agents, overrides the configuration")
	fs.IntVar(&f.Track, "track", 2, "number of agents tracked from the start")
	fs.BoolVar(&f.Verbose, "v", false, "debug logging")
	return f
}

// Config builds the run configuration once fs has been parsed.
func (f *Flags) Config(fs *flag.FlagSet) (flock.Config, error) {
	cfg := flock.DefaultConfig()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = flock.LoadConfig(f.ConfigPath); err != nil {
			return flock.Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.Seed
		case "population":
			cfg.Population = f.Population
		}
	})
	if f.Track < 0 {
		return flock.Config{}, fmt.Errorf("track must not be negative, got %d", f.Track)
	}
	if err := cfg.Validate(); err != nil {
		return flock.Config{}, err
	}
	return cfg, nil
}

// Logger returns the actor system logger for the requested verbosity.
func (f *Flags) Logger() golog.Logger {
	if f.Verbose {
		return golog.New(golog.DebugLevel, os.Stdout)
	}
	return golog.New(golog.InfoLevel, os.Stdout)
}
