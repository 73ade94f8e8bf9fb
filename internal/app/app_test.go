package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lava-flight/internal/config"
)

func defaultSettings(t *testing.T) config.Settings {
	t.Helper()
	s, err := config.Load("")
	require.NoError(t, err)
	return s
}

func TestOverrideOnlyAppliesSetFlags(t *testing.T) {
	s := defaultSettings(t)
	s.Flight.Start = mgl32.Vec3{10, 20, 30}

	cfg := NewConfig()
	fs := flag.NewFlagSet("flightsim", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "9", "-z", "2200", "-tps", "30"}))
	cfg.Override(&s, fs)

	assert.Equal(t, int64(9), s.Flight.Seed)
	assert.Equal(t, mgl32.Vec3{10, 20, 2200}, s.Flight.Start)
	assert.Equal(t, 30, s.TPS)
	assert.Equal(t, "info", s.LogLevel)
}

func TestGeneratedTerrainKeepsVentClear(t *testing.T) {
	s := defaultSettings(t)

	grid, err := LoadTerrain(s)
	require.NoError(t, err)

	vent := s.Flight.Volcano
	ground := grid.Height(vent.X(), vent.Y())
	assert.Greater(t, vent.Z()-ground, s.Flight.Params.BombRadius)
	assert.Less(t, grid.Height(s.Flight.Start.X(), s.Flight.Start.Y()), s.Flight.Start.Z())

	minX, minY, maxX, maxY := grid.Extent()
	assert.Less(t, minX, vent.X())
	assert.Less(t, minY, vent.Y())
	assert.Greater(t, maxX, s.Flight.Start.X())
	assert.Greater(t, maxY, s.Flight.Start.Y())
}

func TestLoadTerrainFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.dem")
	require.NoError(t, os.WriteFile(path, []byte("2 2\n1 2\n3 4\n"), 0o644))
	s := defaultSettings(t)
	s.TerrainFile = path

	grid, err := LoadTerrain(s)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.W)
	lo, hi := grid.Range()
	assert.Equal(t, float32(1), lo)
	assert.Equal(t, float32(4), hi)
}

func TestNewWorldReportsMissingTerrain(t *testing.T) {
	s := defaultSettings(t)
	s.TerrainFile = filepath.Join(t.TempDir(), "missing.dem")

	_, err := NewWorld(s, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading terrain")
}

func TestNewWorldFlies(t *testing.T) {
	s := defaultSettings(t)
	world, err := NewWorld(s, zerolog.Nop())
	require.NoError(t, err)

	world.Scene.IncreaseSpeed()
	for range 240 {
		world.Scene.Update(1.0 / 60)
	}

	assert.False(t, world.Scene.ShouldExit())
	assert.Equal(t, 240, world.Scene.Frames())
	assert.Positive(t, world.Scene.LavaBombCount())
}
