package app

import (
	"flag"

	"lava-flight/internal/config"
)

// Config represents the command-line parameters for the application. Flags
// that are not given on the command line leave the loaded settings alone.
type Config struct {
	ConfigPath string
	LogLevel   string
	TPS        int
	Seed       int64
	X, Y, Z    float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{LogLevel: "info", TPS: 60, Seed: 1337, Z: 1500}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "config file (json, yaml or toml)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the lava bomb sampler")
	fs.Float64Var(&c.X, "x", c.X, "aircraft start x")
	fs.Float64Var(&c.Y, "y", c.Y, "aircraft start y")
	fs.Float64Var(&c.Z, "z", c.Z, "aircraft start altitude")
}

// Override copies every flag explicitly set on fs into s.
func (c *Config) Override(s *config.Settings, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			s.LogLevel = c.LogLevel
		case "tps":
			s.TPS = c.TPS
		case "seed":
			s.Flight.Seed = c.Seed
		case "x":
			s.Flight.Start[0] = float32(c.X)
		case "y":
			s.Flight.Start[1] = float32(c.Y)
		case "z":
			s.Flight.Start[2] = float32(c.Z)
		}
	})
}
