//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lava-flight/internal/app"
	"lava-flight/internal/config"
	"lava-flight/internal/logging"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		logging.New("info", os.Stderr).Fatal().Err(err).Msg("loading configuration")
	}
	cfg.Override(&settings, flag.CommandLine)

	log := logging.New(settings.LogLevel, os.Stderr)
	if err := settings.Flight.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flight parameters")
	}
	log.Info().
		Int64("seed", settings.Flight.Seed).
		Int("tps", settings.TPS).
		Interface("start", settings.Flight.Start).
		Msg("starting flight")

	world, err := app.NewWorld(settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("building world")
	}

	game := app.New(world, settings.WindowWidth, settings.WindowHeight, settings.TPS, log)

	ebiten.SetWindowTitle("lava-flight")
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}
