package app

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"lava-flight/internal/config"
	"lava-flight/internal/sims/flight"
	"lava-flight/internal/terrain"
)

const (
	// terrainMargin pads generated terrain beyond the start and the vent.
	terrainMargin = 20000
	// maxGeneratedSamples bounds the generated grid on each axis.
	maxGeneratedSamples = 2049
	volcanoRadius       = 6000
)

// World bundles a scene with the terrain it flies over.
type World struct {
	Scene   *flight.Scene
	Terrain *terrain.Grid
}

// NewWorld loads or generates terrain and builds the scene on top of it.
func NewWorld(s config.Settings, log zerolog.Logger, opts ...flight.Option) (*World, error) {
	grid, err := LoadTerrain(s)
	if err != nil {
		return nil, err
	}
	lo, hi := grid.Range()
	log.Info().
		Int("width", grid.W).
		Int("height", grid.H).
		Float32("min_height", lo).
		Float32("max_height", hi).
		Str("source", terrainSource(s)).
		Msg("terrain ready")

	opts = append([]flight.Option{flight.WithLogger(log)}, opts...)
	return &World{
		Scene:   flight.NewScene(s.Flight, grid, opts...),
		Terrain: grid,
	}, nil
}

func terrainSource(s config.Settings) string {
	if s.TerrainFile != "" {
		return s.TerrainFile
	}
	return "generated"
}

// LoadTerrain reads the configured DEM file, or generates hills with a cone
// under the volcano vent when no file is set.
func LoadTerrain(s config.Settings) (*terrain.Grid, error) {
	if s.TerrainFile != "" {
		grid, err := terrain.LoadDEMFile(s.TerrainFile, s.TerrainCellSize)
		if err != nil {
			return nil, fmt.Errorf("loading terrain: %w", err)
		}
		return grid, nil
	}

	cfg := s.Flight
	half := terrainMargin + maxAbs(cfg.Start.X(), cfg.Start.Y(), cfg.Volcano.X(), cfg.Volcano.Y())
	samples := int(2*half/s.TerrainCellSize) + 1
	if samples > maxGeneratedSamples {
		samples = maxGeneratedSamples
	}

	hills := terrain.DefaultHills()
	// Keep the vent clear of the ground so fresh bombs are not buried.
	peak := cfg.Volcano.Z() - 2*cfg.Params.BombRadius
	if peak < 0 {
		peak = 0
	}
	volcano := terrain.Volcano{
		X:      cfg.Volcano.X(),
		Y:      cfg.Volcano.Y(),
		Peak:   peak,
		Radius: volcanoRadius,
	}
	return terrain.Generate(samples, samples, s.TerrainCellSize, cfg.Seed, hills, volcano), nil
}

func maxAbs(values ...float32) float32 {
	var m float64
	for _, v := range values {
		m = math.Max(m, math.Abs(float64(v)))
	}
	return float32(m)
}
