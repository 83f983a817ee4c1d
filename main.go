package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ebiten-platformer/assets"
	"ebiten-platformer/components"
	"ebiten-platformer/config"
	"ebiten-platformer/data"
	"ebiten-platformer/ecs"
	"ebiten-platformer/systems"
)

func main() {
	configPath := flag.String("config", "game.env", "key=value settings file, overridden by the environment")
	scenePath := flag.String("scene", "", "scene file to load; overrides SCENE_PATH")
	demo := flag.Bool("demo", false, "build the built-in demo scene instead of loading a file")
	logLevel := flag.String("log-level", "", "log level; overrides LOG_LEVEL")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	registry := ecs.NewRegistry(ecs.WithLogger(log.Logger))
	if err := components.Register(registry); err != nil {
		log.Fatal().Err(err).Msg("failed to register components")
	}
	if err := systems.Register(registry); err != nil {
		log.Fatal().Err(err).Msg("failed to register systems")
	}

	messages := systems.NewMessageLog()
	messages.Subscribe(registry.Events())

	state := ecs.NewGameState()
	manager := assets.NewManager(cfg.AssetRoot, cfg.SampleRate, cfg.Volume, log.Logger)
	if *demo {
		data.BuildDemoScene(registry, manager, state)
	} else {
		loader := data.NewSceneLoader(registry, manager, log.Logger)
		if _, err := loader.LoadFile(cfg.ScenePath, state); err != nil {
			log.Fatal().Err(err).Str("scene", cfg.ScenePath).Msg("failed to load scene")
		}
	}
	log.Info().Int("entities", registry.Len()).Strs("systems", registry.Systems()).Msg("world ready")

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(cfg, registry, state, messages)); err != nil {
		log.Error().Err(err).Msg("game exited with error")
	}
}
