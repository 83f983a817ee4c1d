// Package config holds the runtime settings of the game. Values come from
// built-in defaults, then an optional key=value file, then the environment.
package config

import (
	"os"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config is read from a file such as
//
//	WINDOW_WIDTH=960
//	SCENE_PATH=scenes/level1.json
//
// with environment variables of the same names taking precedence.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
	Fullscreen   bool
	// TPS is the fixed update rate in ticks per second
	TPS int

	ScenePath string
	AssetRoot string

	SampleRate int
	Volume     float64

	LogLevel string
}

// Default returns the settings used when nothing overrides them
func Default() Config {
	return Config{
		WindowWidth:  960,
		WindowHeight: 540,
		WindowTitle:  "Ebiten Platformer",
		TPS:          60,
		ScenePath:    "scenes/level1.json",
		AssetRoot:    ".",
		SampleRate:   44100,
		Volume:       1,
		LogLevel:     "info",
	}
}

// Load returns the defaults overridden by path (when it exists) and the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	builder := jlconfig.FromEnv()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			builder = jlconfig.From(path).FromEnv()
		} else if !os.IsNotExist(err) {
			return cfg, eris.Wrapf(err, "failed to stat config file %s", path)
		}
	}

	if err := builder.To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config")
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot start with
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return eris.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return eris.Errorf("invalid TPS %d", c.TPS)
	}
	if c.SampleRate <= 0 {
		return eris.Errorf("invalid sample rate %d", c.SampleRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return eris.Errorf("volume %v out of range [0,1]", c.Volume)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel, info when unset
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
