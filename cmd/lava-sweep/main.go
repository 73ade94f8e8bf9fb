package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"lava-flight/internal/app"
	"lava-flight/internal/config"
	"lava-flight/internal/logging"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	configPath := flag.String("config", "", "config file (json, yaml or toml)")
	runs := flag.Int("runs", 16, "number of independent flights")
	seed := flag.Int64("seed", 1337, "seed of the first run; run i uses seed+i")
	steps := flag.Int("steps", 3600, "frames to simulate per run")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	speed := flag.Int("speed", 5, "cruise speed the scripted pilot holds")
	realtime := flag.Bool("realtime", false, "pace frames at 1/dt per second")
	logLevel := flag.String("log-level", "info", "log level")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	log := logging.New(*logLevel, os.Stderr)

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	values := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Warn().Str("override", kv).Msg("ignoring override without '='")
			continue
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	for _, key := range settings.Flight.Apply(values) {
		log.Warn().Str("key", key).Msg("ignoring unusable override")
	}
	if err := settings.Flight.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flight parameters")
	}
	if *dt <= 0 {
		log.Fatal().Float64("dt", *dt).Msg("dt must be positive")
	}

	grid, err := app.LoadTerrain(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("building terrain")
	}

	fmt.Printf("Flying %d runs (%d workers, %d steps of %.4fs, speed %d)\n", *runs, *workers, *steps, *dt, *speed)
	if err := settings.Flight.Parameters().Write(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("writing parameters")
	}

	start := time.Now()
	results := app.Sweep(settings.Flight, grid, app.SweepOptions{
		Runs:     *runs,
		Seed:     *seed,
		Steps:    *steps,
		DT:       float32(*dt),
		Workers:  *workers,
		Speed:    *speed,
		Realtime: *realtime,
	}, log)
	elapsed := time.Since(start)

	crashes := 0
	totalFrames := 0
	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range results {
		status := "survived"
		if res.Crashed {
			status = "crashed"
			crashes++
		}
		totalFrames += res.Frames
		fmt.Printf("%2d) seed=%d frames=%d %s peak=%d died=%d explosions=%d fragments=%d volcano=%d\n",
			i+1, res.Seed, res.Frames, status, res.PeakPopulation, res.Died, res.Explosions, res.Fragments, res.VolcanoSpawns)
	}
	if len(results) > 0 {
		fmt.Printf("\nCrashed %d/%d, mean frames survived %.1f\n",
			crashes, len(results), float64(totalFrames)/float64(len(results)))
	}
}
