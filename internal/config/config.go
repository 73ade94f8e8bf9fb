// Package config loads host settings and flight parameters from defaults, an
// optional config file and LAVAFLIGHT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"lava-flight/internal/sims/flight"
)

// EnvPrefix is prepended to every key when reading environment overrides.
const EnvPrefix = "LAVAFLIGHT"

// Settings is the resolved configuration for one run.
type Settings struct {
	LogLevel     string
	TPS          int
	WindowWidth  int
	WindowHeight int

	// TerrainFile names a DEM height grid; empty selects generated terrain.
	TerrainFile     string
	TerrainCellSize float32

	Flight flight.Config
}

var worldKeys = []string{
	"seed",
	"start_x", "start_y", "start_z",
	"volcano_x", "volcano_y", "volcano_z",
}

// FlightKeys lists every key that feeds flight.Config.
func FlightKeys() []string {
	return append(append([]string{}, worldKeys...), flight.ParamKeys()...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("tps", 60)
	v.SetDefault("window_width", 960)
	v.SetDefault("window_height", 600)
	v.SetDefault("terrain_file", "")
	v.SetDefault("terrain_cell_size", 100)

	def := flight.DefaultConfig()
	v.SetDefault("seed", def.Seed)
	for axis, name := range []string{"x", "y", "z"} {
		v.SetDefault("start_"+name, def.Start[axis])
		v.SetDefault("volcano_"+name, def.Volcano[axis])
	}
	for key, value := range def.Params.Values() {
		v.SetDefault(key, value)
	}
}

// Load resolves settings. An empty path skips the config file; otherwise the
// file type follows its extension.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := Settings{
		LogLevel:        v.GetString("log_level"),
		TPS:             v.GetInt("tps"),
		WindowWidth:     v.GetInt("window_width"),
		WindowHeight:    v.GetInt("window_height"),
		TerrainFile:     v.GetString("terrain_file"),
		TerrainCellSize: float32(v.GetFloat64("terrain_cell_size")),
		Flight:          flight.DefaultConfig(),
	}

	overrides := make(map[string]string)
	for _, key := range FlightKeys() {
		overrides[key] = v.GetString(key)
	}
	if rejected := s.Flight.Apply(overrides); len(rejected) > 0 {
		sort.Strings(rejected)
		return Settings{}, fmt.Errorf("invalid values for %s", strings.Join(rejected, ", "))
	}

	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

func (s Settings) validate() error {
	var errs []error
	if s.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", s.TPS))
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.WindowWidth, s.WindowHeight))
	}
	if s.TerrainCellSize <= 0 {
		errs = append(errs, fmt.Errorf("terrain_cell_size %s must be positive", strconv.FormatFloat(float64(s.TerrainCellSize), 'g', -1, 32)))
	}
	if err := s.Flight.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
