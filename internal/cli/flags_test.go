package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

func parse(t *testing.T, args ...string) (*Flags, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := NewFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f, fs
}

func TestFlags_Defaults(t *testing.T) {
	f, fs := parse(t)
	cfg, err := f.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, flock.DefaultConfig(), cfg)
	assert.Equal(t, 2, f.Track)
}

func TestFlags_OverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flock.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 5, "population": 40, "visionRadius": 120}`), 0o600))

	f, fs := parse(t, "-config", path, "-seed", "0")
	cfg, err := f.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Seed, "an explicit zero seed wins over the file")
	assert.Equal(t, 40, cfg.Population)
	assert.Equal(t, 120.0, cfg.VisionRadius)
}

func TestFlags_Errors(t *testing.T) {
	f, fs := parse(t, "-population", "0")
	_, err := f.Config(fs)
	assert.ErrorIs(t, err, flock.ErrInvalidConfiguration)

	f, fs = parse(t, "-track", "-1")
	_, err = f.Config(fs)
	assert.Error(t, err)

	f, fs = parse(t, "-config", filepath.Join(t.TempDir(), "missing.json"))
	_, err = f.Config(fs)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlags_Logger(t *testing.T) {
	f, _ := parse(t, "-v")
	assert.NotNil(t, f.Logger())
}
